package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryIdempotencyStore(t *testing.T) {
	ctx := context.Background()

	t.Run("returns nil on a miss", func(t *testing.T) {
		store := NewMemoryIdempotencyStore(time.Hour)

		rec, err := store.Get(ctx, "unknown")
		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("replays a stored record", func(t *testing.T) {
		store := NewMemoryIdempotencyStore(time.Hour)

		put := Record{
			Key:         "evt-42",
			StatusCode:  200,
			Body:        json.RawMessage(`{"success":true}`),
			ContentType: "application/json",
			CompletedAt: time.Now().UTC(),
		}
		require.NoError(t, store.Put(ctx, put))

		got, err := store.Get(ctx, "evt-42")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 200, got.StatusCode)
		assert.JSONEq(t, `{"success":true}`, string(got.Body))
	})

	t.Run("expired records read as misses", func(t *testing.T) {
		store := NewMemoryIdempotencyStore(-time.Second)

		require.NoError(t, store.Put(ctx, Record{Key: "evt-old", StatusCode: 200}))

		got, err := store.Get(ctx, "evt-old")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("records are copied out", func(t *testing.T) {
		store := NewMemoryIdempotencyStore(time.Hour)
		require.NoError(t, store.Put(ctx, Record{Key: "evt-1", StatusCode: 200}))

		first, err := store.Get(ctx, "evt-1")
		require.NoError(t, err)
		first.StatusCode = 500

		second, err := store.Get(ctx, "evt-1")
		require.NoError(t, err)
		assert.Equal(t, 200, second.StatusCode)
	})
}
