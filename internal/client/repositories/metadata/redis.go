package metadata

import (
	"context"
	"errors"
	"sort"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the hash holding all metadata entries.
const DefaultRedisKey = "geofeed:metadata"

// RedisRepository keeps metadata in a single Redis hash so several client
// processes can share one session.
type RedisRepository struct {
	rdb redis.UniversalClient
	key string
}

func NewRedisRepository(rdb redis.UniversalClient, key string) *RedisRepository {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisRepository{rdb: rdb, key: key}
}

func (r *RedisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.rdb.HGet(ctx, r.key, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, opError("get", key, err)
	}
	return v, nil
}

func (r *RedisRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.rdb.HSet(ctx, r.key, key, value).Err(); err != nil {
		return opError("set", key, err)
	}
	return nil
}

func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	if err := r.rdb.HDel(ctx, r.key, key).Err(); err != nil {
		return opError("delete", key, err)
	}
	return nil
}

func (r *RedisRepository) Clear(ctx context.Context) error {
	if err := r.rdb.Del(ctx, r.key).Err(); err != nil {
		return opError("clear", "", err)
	}
	return nil
}

func (r *RedisRepository) List(ctx context.Context) ([]Entry, error) {
	all, err := r.rdb.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, opError("list", "", err)
	}
	out := make([]Entry, 0, len(all))
	for k, v := range all {
		out = append(out, Entry{Key: k, Value: []byte(v)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}
