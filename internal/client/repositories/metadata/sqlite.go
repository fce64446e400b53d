package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/geofeed/internal/dbx"
)

// Statements against the table created by the 00001 migration.
const (
	selectValueSQL = `SELECT value FROM metadata WHERE key = ?`
	upsertSQL      = `INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	deleteKeySQL = `DELETE FROM metadata WHERE key = ?`
	deleteAllSQL = `DELETE FROM metadata`
	selectAllSQL = `SELECT key, value FROM metadata ORDER BY key`
)

// SQLiteRepository keeps client state in the local state database.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	switch err := r.db.QueryRowContext(ctx, selectValueSQL, key).Scan(&value); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, opError("get", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := r.db.ExecContext(ctx, upsertSQL, key, value); err != nil {
		return opError("set", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, deleteKeySQL, key); err != nil {
		return opError("delete", key, err)
	}
	return nil
}

// Clear drops every entry, including the remembered username.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteAllSQL); err != nil {
		return opError("clear", "", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, selectAllSQL)
	if err != nil {
		return nil, opError("list", "", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Key, &e.Value); err != nil {
			return nil, opError("list", "", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, opError("list", "", err)
	}
	return out, nil
}

// opError names the operation and key so state failures are traceable in
// logs. Both repositories use it.
func opError(op, key string, err error) error {
	if key == "" {
		return fmt.Errorf("metadata %s: %w", op, err)
	}
	return fmt.Errorf("metadata %s %q: %w", op, key, err)
}
