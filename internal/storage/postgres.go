package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Postgres keeps one row per store in a key/value blob table.
type Postgres struct{ db *sql.DB }

// NewPostgres creates the backing table if it does not exist yet.
func NewPostgres(db *sql.DB) (*Postgres, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS store_state (
		    key        TEXT PRIMARY KEY,
		    value      JSONB NOT NULL,
		    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return nil, fmt.Errorf("create store_state table: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT value FROM store_state WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return value, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO store_state (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM store_state WHERE key = $1`, key)
	return err
}
