package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// documentKey is the fixed key under which the progress document lives.
const documentKey = "jigasha-data"

// DocumentRepo provides access to the persisted progress document and to
// the flat legacy fields left behind by earlier schema generations.
type DocumentRepo interface {
	// LoadDocument returns the serialized document, or ok=false if none
	// has been written yet.
	LoadDocument(ctx context.Context) (data []byte, ok bool, err error)

	// SaveDocument replaces the serialized document.
	SaveDocument(ctx context.Context, data []byte) error

	// GetValue returns the raw value stored under key, or ok=false if
	// the key is absent. Used only by legacy migration.
	GetValue(ctx context.Context, key string) (value string, ok bool, err error)

	// DeleteValues removes the given keys. Missing keys are not an error.
	DeleteValues(ctx context.Context, keys ...string) error
}

// documentRepo implements DocumentRepo over the entries table.
type documentRepo struct {
	db *sql.DB
}

func (r *documentRepo) LoadDocument(ctx context.Context) ([]byte, bool, error) {
	v, ok, err := r.get(ctx, documentKey)
	if err != nil {
		return nil, false, err
	}
	return []byte(v), ok, nil
}

func (r *documentRepo) SaveDocument(ctx context.Context, data []byte) error {
	const q = `
INSERT INTO entries (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, q, documentKey, string(data), time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (r *documentRepo) GetValue(ctx context.Context, key string) (string, bool, error) {
	return r.get(ctx, key)
}

func (r *documentRepo) DeleteValues(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE key = ?`, k); err != nil {
			return fmt.Errorf("delete %s: %w", k, err)
		}
	}
	return nil
}

func (r *documentRepo) get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM entries WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return v, true, nil
}
