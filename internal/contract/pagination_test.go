package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name                    string
		page, limit, total      int
		wantPage, wantLimit     int
		wantTotal, wantTotalPgs int
	}{
		{"exact division", 1, 10, 100, 1, 10, 100, 10},
		{"remainder rounds up", 1, 10, 101, 1, 10, 101, 11},
		{"empty collection", 1, 10, 0, 1, 10, 0, 0},
		{"single partial page", 3, 25, 7, 3, 25, 7, 1},
		{"limit clamped to max", 1, 500, 300, 1, 100, 300, 3},
		{"page floored to one", 0, 10, 5, 1, 10, 5, 1},
		{"negative total treated as zero", 1, 10, -4, 1, 10, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantLimit, p.Limit)
			assert.Equal(t, tc.wantTotal, p.Total)
			assert.Equal(t, tc.wantTotalPgs, p.TotalPages)
		})
	}
}

func TestNormalizePageQuery(t *testing.T) {
	t.Run("defaults when absent", func(t *testing.T) {
		page, limit := NormalizePageQuery("", "")
		assert.Equal(t, 1, page)
		assert.Equal(t, DefaultLimit, limit)
	})

	t.Run("passes sane values through", func(t *testing.T) {
		page, limit := NormalizePageQuery("3", "50")
		assert.Equal(t, 3, page)
		assert.Equal(t, 50, limit)
	})

	t.Run("clamps limit to the maximum", func(t *testing.T) {
		_, limit := NormalizePageQuery("1", "500")
		assert.Equal(t, MaxLimit, limit)
	})

	t.Run("floors page to one", func(t *testing.T) {
		page, _ := NormalizePageQuery("0", "10")
		assert.Equal(t, 1, page)
		page, _ = NormalizePageQuery("-2", "10")
		assert.Equal(t, 1, page)
	})

	t.Run("unparseable values fall back to defaults", func(t *testing.T) {
		page, limit := NormalizePageQuery("abc", "lots")
		assert.Equal(t, 1, page)
		assert.Equal(t, DefaultLimit, limit)
	})
}

func TestParsePagination(t *testing.T) {
	t.Run("accepts a consistent descriptor", func(t *testing.T) {
		p, err := ParsePagination([]byte(`{"page":2,"limit":10,"total":35,"totalPages":4}`))
		require.NoError(t, err)
		assert.Equal(t, 2, p.Page)
	})

	t.Run("rejects limit above the maximum", func(t *testing.T) {
		_, err := ParsePagination([]byte(`{"page":1,"limit":101,"total":0,"totalPages":0}`))
		var sve *SchemaValidationError
		require.ErrorAs(t, err, &sve)
		assert.Equal(t, "limit", sve.Field)
	})

	t.Run("rejects page zero", func(t *testing.T) {
		_, err := ParsePagination([]byte(`{"page":0,"limit":10,"total":0,"totalPages":0}`))
		var sve *SchemaValidationError
		require.ErrorAs(t, err, &sve)
		assert.Equal(t, "page", sve.Field)
	})

	t.Run("rejects an inconsistent totalPages", func(t *testing.T) {
		_, err := ParsePagination([]byte(`{"page":1,"limit":10,"total":35,"totalPages":3}`))
		var sve *SchemaValidationError
		require.ErrorAs(t, err, &sve)
		assert.Equal(t, "totalPages", sve.Field)
		assert.Contains(t, sve.Constraint, "ceil(total/limit)")
	})

	t.Run("rejects a negative total", func(t *testing.T) {
		_, err := ParsePagination([]byte(`{"page":1,"limit":10,"total":-1,"totalPages":0}`))
		var sve *SchemaValidationError
		require.ErrorAs(t, err, &sve)
		assert.Equal(t, "total", sve.Field)
	})
}
