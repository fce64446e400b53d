package metadata

import (
	"context"
)

// Entry is one stored record.
type Entry struct {
	Key   string
	Value []byte
}

// Repository is a durable key/value store. Get returns (nil, nil) for a
// missing key and Delete of a missing key is not an error. List returns
// entries ordered by key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]Entry, error)
	Clear(ctx context.Context) error
}
