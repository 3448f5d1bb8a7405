// Package redis implements ports.Store against a real or
// miniredis-backed Redis server, for hosts that want the `db` binding
// to survive a process restart.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/JangRuBin2/rulang/pkg/value"
)

// Store implements ports.Store against Redis. Values are JSON-encoded
// under `prefix+key`; a sorted set at `prefix+"index"` (scored by
// expiry time) tracks live keys so List can enumerate them without a
// Redis KEYS scan. Actual expiry is enforced by Redis itself via SET's
// TTL; the index is lazily swept by wall-clock expiry, and List also
// checks that each indexed key still exists, so it doesn't report keys
// Redis already dropped.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithPrefix sets the Redis key prefix. Defaults to "rulang:".
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// WithTTL sets a fixed expiry applied to every Put. Zero (the
// default) means keys never expire.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// NewFromClient wraps an already-configured go-redis client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	s := &Store{client: client, prefix: "rulang:"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) dataKey(key string) string { return s.prefix + key }
func (s *Store) indexKey() string          { return s.prefix + "index" }

// noExpiry is a score far enough in the future that a TTL-less Put's
// index entry is never swept by evictExpired.
func noExpiry() float64 {
	return float64(time.Now().AddDate(100, 0, 0).UnixNano())
}

func (s *Store) Get(ctx context.Context, key string) (value.Value, bool, error) {
	raw, err := s.client.Get(ctx, s.dataKey(key)).Result()
	if err == backend.Nil {
		return value.NewNull(), false, nil
	}
	if err != nil {
		return value.NewNull(), false, fmt.Errorf("redis get %q: %w", key, err)
	}
	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return value.NewNull(), false, fmt.Errorf("decode %q: %w", key, err)
	}
	v, err := fromJSON(payload)
	if err != nil {
		return value.NewNull(), false, err
	}
	return v, true, nil
}

func (s *Store) Put(ctx context.Context, key string, v value.Value) error {
	payload, err := toJSON(v)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	score := noExpiry()
	if s.ttl > 0 {
		score = float64(time.Now().Add(s.ttl).UnixNano())
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.dataKey(key), raw, s.ttl)
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{Score: score, Member: key})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis put %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.dataKey(key))
	pipe.ZRem(ctx, s.indexKey(), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis delete %q: %w", key, err)
	}
	return nil
}

func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	s.evictExpired(ctx)
	members, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list: %w", err)
	}
	pipe := s.client.Pipeline()
	exists := make(map[string]*backend.IntCmd)
	for _, m := range members {
		if strings.HasPrefix(m, prefix) {
			exists[m] = pipe.Exists(ctx, s.dataKey(m))
		}
	}
	if len(exists) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("redis list: %w", err)
		}
	}
	keys := make([]string, 0, len(exists))
	for _, m := range members {
		if cmd, ok := exists[m]; ok && cmd.Val() > 0 {
			keys = append(keys, m)
		}
	}
	return keys, nil
}

func (s *Store) evictExpired(ctx context.Context) {
	cutoff := fmt.Sprintf("%d", time.Now().UnixNano())
	s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", cutoff)
}
