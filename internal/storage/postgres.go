package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Postgres keeps items in the local_storage table. It works with any
// database/sql driver speaking the postgres dialect, pgx in production.
type Postgres struct {
	dbpool  *sql.DB
	timeout time.Duration
}

func NewPostgres(dbpool *sql.DB, timeout time.Duration) *Postgres {
	return &Postgres{
		dbpool:  dbpool,
		timeout: timeout,
	}
}

func (p *Postgres) EnsureSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS local_storage (
			item_key   TEXT PRIMARY KEY,
			item_value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if _, err := p.dbpool.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (p *Postgres) GetItem(key string) (string, bool, error) {
	query := `
		SELECT item_value FROM local_storage WHERE item_key = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	var value string
	if err := p.dbpool.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return value, true, nil
}

func (p *Postgres) SetItem(key, value string) error {
	query := `
		INSERT INTO local_storage (item_key, item_value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (item_key) DO UPDATE
		SET item_value = EXCLUDED.item_value, updated_at = NOW()
	`

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if _, err := p.dbpool.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (p *Postgres) Close() error {
	return p.dbpool.Close()
}
