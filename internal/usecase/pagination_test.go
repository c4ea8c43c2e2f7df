package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageInfo(t *testing.T) {
	t.Parallel()

	t.Run("derives the page count", func(t *testing.T) {
		t.Parallel()

		info := NewPageInfo(2, 10, 25)

		assert.Equal(t, 2, info.Page)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, int64(25), info.Total)
		assert.Equal(t, 3, info.TotalPages)
	})

	t.Run("normalizes out-of-range inputs", func(t *testing.T) {
		t.Parallel()

		info := NewPageInfo(0, 0, 5)

		assert.Equal(t, 1, info.Page)
		assert.Equal(t, DefaultPageLimit, info.Limit)
		assert.Equal(t, 1, info.TotalPages)
	})

	t.Run("handles an empty listing", func(t *testing.T) {
		t.Parallel()

		info := NewPageInfo(1, 20, 0)

		assert.Equal(t, 0, info.TotalPages)
	})
}
