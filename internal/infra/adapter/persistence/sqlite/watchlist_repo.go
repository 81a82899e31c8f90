package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"osint-tracker/internal/domain/entity"
	"osint-tracker/internal/repository"
)

type TwitterAccountRepo struct{ db *sql.DB }

func NewTwitterAccountRepo(db *sql.DB) repository.TwitterAccountRepository {
	return &TwitterAccountRepo{db: db}
}

func scanTwitterAccount(scanner interface{ Scan(dest ...any) error }) (*entity.TwitterAccount, error) {
	var account entity.TwitterAccount
	var createdAt string
	if err := scanner.Scan(&account.ID, &account.Username, &account.Description, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if account.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &account, nil
}

func (repo *TwitterAccountRepo) Get(ctx context.Context, id int64) (*entity.TwitterAccount, error) {
	const query = `
SELECT id, username, description, created_at
FROM twitter_accounts
WHERE id = ?
LIMIT 1`
	account, err := scanTwitterAccount(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return account, nil
}

func (repo *TwitterAccountRepo) GetByUsername(ctx context.Context, username string) (*entity.TwitterAccount, error) {
	const query = `
SELECT id, username, description, created_at
FROM twitter_accounts
WHERE username = ?
LIMIT 1`
	account, err := scanTwitterAccount(repo.db.QueryRowContext(ctx, query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByUsername: QueryRowContext: %w", err)
	}
	return account, nil
}

func (repo *TwitterAccountRepo) List(ctx context.Context) ([]*entity.TwitterAccount, error) {
	const query = `
SELECT id, username, description, created_at
FROM twitter_accounts
ORDER BY created_at DESC, id DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	accounts := make([]*entity.TwitterAccount, 0, entity.WatchListCap)
	for rows.Next() {
		account, err := scanTwitterAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (repo *TwitterAccountRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM twitter_accounts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("Count: QueryRowContext: %w", err)
	}
	return count, nil
}

func (repo *TwitterAccountRepo) Create(ctx context.Context, account *entity.TwitterAccount) (int64, error) {
	const query = `
INSERT INTO twitter_accounts
(username, description, created_at)
VALUES (?, ?, ?)
`
	res, err := repo.db.ExecContext(ctx, query,
		account.Username, account.Description, formatTime(account.CreatedAt),
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

func (repo *TwitterAccountRepo) Update(ctx context.Context, account *entity.TwitterAccount) error {
	const query = `UPDATE twitter_accounts SET description = ? WHERE id = ?`

	res, err := repo.db.ExecContext(ctx, query, account.Description, account.ID)
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

func (repo *TwitterAccountRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM twitter_accounts WHERE id = ?`

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

type NewsSourceRepo struct{ db *sql.DB }

func NewNewsSourceRepo(db *sql.DB) repository.NewsSourceRepository {
	return &NewsSourceRepo{db: db}
}

func scanNewsSource(scanner interface{ Scan(dest ...any) error }) (*entity.NewsSource, error) {
	var source entity.NewsSource
	var createdAt string
	if err := scanner.Scan(&source.ID, &source.Name, &source.URL, &source.Description, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if source.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &source, nil
}

func (repo *NewsSourceRepo) Get(ctx context.Context, id int64) (*entity.NewsSource, error) {
	const query = `
SELECT id, name, url, description, created_at
FROM news_sources
WHERE id = ?
LIMIT 1`
	source, err := scanNewsSource(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return source, nil
}

func (repo *NewsSourceRepo) GetByURL(ctx context.Context, url string) (*entity.NewsSource, error) {
	const query = `
SELECT id, name, url, description, created_at
FROM news_sources
WHERE url = ?
LIMIT 1`
	source, err := scanNewsSource(repo.db.QueryRowContext(ctx, query, url))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByURL: QueryRowContext: %w", err)
	}
	return source, nil
}

func (repo *NewsSourceRepo) List(ctx context.Context) ([]*entity.NewsSource, error) {
	const query = `
SELECT id, name, url, description, created_at
FROM news_sources
ORDER BY created_at DESC, id DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sources := make([]*entity.NewsSource, 0, entity.WatchListCap)
	for rows.Next() {
		source, err := scanNewsSource(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		sources = append(sources, source)
	}
	return sources, rows.Err()
}

func (repo *NewsSourceRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM news_sources`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("Count: QueryRowContext: %w", err)
	}
	return count, nil
}

func (repo *NewsSourceRepo) Create(ctx context.Context, source *entity.NewsSource) (int64, error) {
	const query = `
INSERT INTO news_sources
(name, url, description, created_at)
VALUES (?, ?, ?, ?)
`
	res, err := repo.db.ExecContext(ctx, query,
		source.Name, source.URL, source.Description, formatTime(source.CreatedAt),
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

func (repo *NewsSourceRepo) Update(ctx context.Context, source *entity.NewsSource) error {
	const query = `UPDATE news_sources SET description = ? WHERE id = ?`

	res, err := repo.db.ExecContext(ctx, query, source.Description, source.ID)
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

func (repo *NewsSourceRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM news_sources WHERE id = ?`

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
