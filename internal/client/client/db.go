package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/geofeed/internal/client/migrations"
	"github.com/dmitrijs2005/geofeed/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/geofeed/internal/filex"
	"github.com/redis/go-redis/v9"

	_ "modernc.org/sqlite"
)

func RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrations.Up(ctx, db)
}

// InitDatabase opens (creating if needed) the SQLite state database at dsn
// and applies migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// OpenMetadata returns the metadata repository for dsn: a redis:// or
// rediss:// URL selects Redis, anything else is a SQLite path. The returned
// func releases the underlying connection.
func OpenMetadata(ctx context.Context, dsn string) (metadata.Repository, func() error, error) {
	if strings.HasPrefix(dsn, "redis://") || strings.HasPrefix(dsn, "rediss://") {
		opts, err := redis.ParseURL(dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("parse redis url: %w", err)
		}
		rdb := redis.NewClient(opts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return metadata.NewRedisRepository(rdb, ""), rdb.Close, nil
	}

	db, err := InitDatabase(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	return metadata.NewSQLiteRepository(db), db.Close, nil
}
