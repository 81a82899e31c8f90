package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"osint-tracker/internal/domain/entity"
	"osint-tracker/internal/repository"
)

type SubjectRepo struct{ db *sql.DB }

func NewSubjectRepo(db *sql.DB) repository.SubjectRepository {
	return &SubjectRepo{db: db}
}

const subjectColumns = `id, name_en, name_fa, location, event_context, notes, status, risk_level, created_at`

func scanSubject(scanner interface{ Scan(dest ...any) error }) (*entity.Subject, error) {
	var subject entity.Subject
	var status, risk, createdAt string
	err := scanner.Scan(
		&subject.ID, &subject.NameEN, &subject.NameFA, &subject.Location,
		&subject.EventContext, &subject.Notes, &status, &risk, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	subject.Status = entity.Status(status)
	subject.RiskLevel = entity.RiskLevel(risk)
	if subject.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &subject, nil
}

func (repo *SubjectRepo) Get(ctx context.Context, id int64) (*entity.Subject, error) {
	const query = `
SELECT ` + subjectColumns + `
FROM subjects
WHERE id = ?
LIMIT 1`
	subject, err := scanSubject(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return subject, nil
}

func (repo *SubjectRepo) List(ctx context.Context, filter repository.SubjectFilter) ([]*entity.Subject, error) {
	var conditions []string
	var args []any
	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.RiskLevel != nil {
		conditions = append(conditions, "risk_level = ?")
		args = append(args, string(*filter.RiskLevel))
	}

	query := `SELECT ` + subjectColumns + ` FROM subjects`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	subjects := make([]*entity.Subject, 0, 50)
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return subjects, nil
}

func (repo *SubjectRepo) Create(ctx context.Context, subject *entity.Subject) (int64, error) {
	const query = `
INSERT INTO subjects
(name_en, name_fa, location, event_context, notes, status, risk_level, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`
	res, err := repo.db.ExecContext(ctx, query,
		subject.NameEN, subject.NameFA, subject.Location, subject.EventContext,
		subject.Notes, string(subject.Status), string(subject.RiskLevel),
		formatTime(subject.CreatedAt),
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

// Update writes the mutable fields only; name_en, name_fa, location,
// event_context and created_at are immutable after creation.
func (repo *SubjectRepo) Update(ctx context.Context, subject *entity.Subject) error {
	const query = `
UPDATE subjects SET
    status     = ?,
    risk_level = ?,
    notes      = ?
WHERE id = ?
`
	res, err := repo.db.ExecContext(ctx, query,
		string(subject.Status), string(subject.RiskLevel), subject.Notes, subject.ID,
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

func (repo *SubjectRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM subjects WHERE id = ?`

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
