package correlation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("reuses inbound value verbatim", func(t *testing.T) {
		assert.Equal(t, "test-123", Resolve("test-123"))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "abc", Resolve("  abc "))
	})

	t.Run("generates a UUID when inbound is empty", func(t *testing.T) {
		id := Resolve("")
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("generates a UUID when inbound is blank", func(t *testing.T) {
		id := Resolve("   ")
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("generated values are unique", func(t *testing.T) {
		seen := make(map[string]struct{}, 1000)
		for i := 0; i < 1000; i++ {
			seen[Resolve("")] = struct{}{}
		}
		assert.Len(t, seen, 1000)
	})
}

func TestContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, FromContext(ctx))

	ctx = WithContext(ctx, "req-42")
	assert.Equal(t, "req-42", FromContext(ctx))
}
