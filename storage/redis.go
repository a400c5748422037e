package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lixenwraith/folio-arcade/progress"
)

// encodeRecord is swapped in tests to reach the encode failure path
var encodeRecord = json.Marshal

// Redis stores the record as a JSON string value under the key
type Redis struct {
	rdb *redis.Client
}

// NewRedis wraps an existing client
func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

// OpenRedis connects using a redis:// URL and verifies the connection
func OpenRedis(ctx context.Context, url string) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	return &Redis{rdb: rdb}, nil
}

func (r *Redis) Load(ctx context.Context, key string) (progress.Record, bool, error) {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return progress.Record{}, false, nil
	}
	if err != nil {
		return progress.Record{}, false, fmt.Errorf("failed to load progress: %w", err)
	}
	var rec progress.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return progress.Record{}, false, fmt.Errorf("corrupt progress record: %w", err)
	}
	return rec, true, nil
}

func (r *Redis) Save(ctx context.Context, key string, rec progress.Record) error {
	raw, err := encodeRecord(rec)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}
	if err := r.rdb.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
