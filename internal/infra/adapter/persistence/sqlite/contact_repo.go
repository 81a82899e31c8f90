package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"osint-tracker/internal/domain/entity"
	"osint-tracker/internal/repository"
)

type ContactRepo struct{ db *sql.DB }

func NewContactRepo(db *sql.DB) repository.ContactRepository {
	return &ContactRepo{db: db}
}

func scanContact(scanner interface{ Scan(dest ...any) error }) (*entity.Contact, error) {
	var contact entity.Contact
	var createdAt string
	if err := scanner.Scan(&contact.ID, &contact.Label, &contact.Value, &contact.Description, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if contact.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (repo *ContactRepo) Get(ctx context.Context, id int64) (*entity.Contact, error) {
	const query = `
SELECT id, label, value, description, created_at
FROM contacts
WHERE id = ?
LIMIT 1`
	contact, err := scanContact(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return contact, nil
}

func (repo *ContactRepo) List(ctx context.Context) ([]*entity.Contact, error) {
	const query = `
SELECT id, label, value, description, created_at
FROM contacts
ORDER BY created_at DESC, id DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	contacts := make([]*entity.Contact, 0, 20)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

func (repo *ContactRepo) Create(ctx context.Context, contact *entity.Contact) (int64, error) {
	const query = `
INSERT INTO contacts
(label, value, description, created_at)
VALUES (?, ?, ?, ?)
`
	res, err := repo.db.ExecContext(ctx, query,
		contact.Label, contact.Value, contact.Description, formatTime(contact.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("Create: ExecContext: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("Create: LastInsertId: %w", err)
	}
	return id, nil
}

func (repo *ContactRepo) Update(ctx context.Context, contact *entity.Contact) error {
	const query = `
UPDATE contacts SET
    label       = ?,
    value       = ?,
    description = ?
WHERE id = ?
`
	res, err := repo.db.ExecContext(ctx, query,
		contact.Label, contact.Value, contact.Description, contact.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (repo *ContactRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM contacts WHERE id = ?`

	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
