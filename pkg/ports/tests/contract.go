// Package tests holds reusable contract test suites that every
// ports.Store implementation must pass, so pkg/adapters/memory and
// pkg/adapters/redis are exercised against the same behavioral spec.
package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JangRuBin2/rulang/pkg/ports"
	"github.com/JangRuBin2/rulang/pkg/value"
)

// StoreContractTest verifies that store complies with ports.Store.
func StoreContractTest(t *testing.T, store ports.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("Get_Missing", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Put_And_Get", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "greeting", value.NewString("hi")))

		v, ok, err := store.Get(ctx, "greeting")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "hi", v.Str())
	})

	t.Run("Put_Overwrites", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "counter", value.NewNumber(1)))
		require.NoError(t, store.Put(ctx, "counter", value.NewNumber(2)))

		v, ok, err := store.Get(ctx, "counter")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 2.0, v.Num())
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "temp", value.NewBoolean(true)))
		require.NoError(t, store.Delete(ctx, "temp"))

		_, ok, err := store.Get(ctx, "temp")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("List_ByPrefix", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "user:1", value.NewString("a")))
		require.NoError(t, store.Put(ctx, "user:2", value.NewString("b")))
		require.NoError(t, store.Put(ctx, "order:1", value.NewString("c")))

		keys, err := store.List(ctx, "user:")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"user:1", "user:2"}, keys)
	})
}
