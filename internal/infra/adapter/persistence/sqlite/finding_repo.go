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

type FindingRepo struct{ db *sql.DB }

func NewFindingRepo(db *sql.DB) repository.FindingRepository {
	return &FindingRepo{db: db}
}

const findingColumns = `id, title, finding_type, description, source_url, source_name, importance, tags, subject_id, created_at`

func scanFinding(scanner interface{ Scan(dest ...any) error }) (*entity.Finding, error) {
	var finding entity.Finding
	var tags, createdAt string
	var subjectID sql.NullInt64
	err := scanner.Scan(
		&finding.ID, &finding.Title, &finding.FindingType, &finding.Description,
		&finding.SourceURL, &finding.SourceName, &finding.Importance,
		&tags, &subjectID, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	if finding.Tags, err = decodeTags(tags); err != nil {
		return nil, err
	}
	if subjectID.Valid {
		finding.SubjectID = &subjectID.Int64
	}
	if finding.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &finding, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func (repo *FindingRepo) Get(ctx context.Context, id int64) (*entity.Finding, error) {
	const query = `
SELECT ` + findingColumns + `
FROM findings
WHERE id = ?
LIMIT 1`
	finding, err := scanFinding(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return finding, nil
}

func (repo *FindingRepo) List(ctx context.Context, filter repository.FindingFilter) ([]*entity.Finding, error) {
	var conditions []string
	var args []any
	if filter.FindingType != nil {
		conditions = append(conditions, "finding_type = ?")
		args = append(args, *filter.FindingType)
	}
	if filter.Importance != nil {
		conditions = append(conditions, "importance = ?")
		args = append(args, *filter.Importance)
	}

	query := `SELECT ` + findingColumns + ` FROM findings`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	findings := make([]*entity.Finding, 0, 50)
	for rows.Next() {
		finding, err := scanFinding(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		findings = append(findings, finding)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return findings, nil
}

func (repo *FindingRepo) Create(ctx context.Context, finding *entity.Finding) (int64, error) {
	const query = `
INSERT INTO findings
(title, finding_type, description, source_url, source_name, importance, tags, subject_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`
	tags, err := encodeTags(finding.Tags)
	if err != nil {
		return 0, fmt.Errorf("Create: %w", err)
	}
	res, err := repo.db.ExecContext(ctx, query,
		finding.Title, finding.FindingType, finding.Description,
		finding.SourceURL, finding.SourceName, finding.Importance,
		tags, nullableID(finding.SubjectID), formatTime(finding.CreatedAt),
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

func (repo *FindingRepo) Update(ctx context.Context, finding *entity.Finding) error {
	const query = `
UPDATE findings SET
    title        = ?,
    finding_type = ?,
    description  = ?,
    source_url   = ?,
    source_name  = ?,
    importance   = ?,
    tags         = ?,
    subject_id   = ?
WHERE id = ?
`
	tags, err := encodeTags(finding.Tags)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	res, err := repo.db.ExecContext(ctx, query,
		finding.Title, finding.FindingType, finding.Description,
		finding.SourceURL, finding.SourceName, finding.Importance,
		tags, nullableID(finding.SubjectID), finding.ID,
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

func (repo *FindingRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM findings WHERE id = ?`

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
