package ports

import (
	"context"

	"github.com/JangRuBin2/rulang/pkg/value"
)

// Store is the CRUD backend the `db` binding wraps for handler bodies.
// Implementations back it with an in-process map (pkg/adapters/memory)
// or Redis (pkg/adapters/redis).
type Store interface {
	Get(ctx context.Context, key string) (value.Value, bool, error)
	Put(ctx context.Context, key string, v value.Value) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)
}
