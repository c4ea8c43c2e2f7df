package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, pageOffset(1, 20))
	assert.Equal(t, 20, pageOffset(2, 20))
	assert.Equal(t, 40, pageOffset(3, 20))
	// Page numbers below 1 clamp to the first page.
	assert.Equal(t, 0, pageOffset(0, 20))
	assert.Equal(t, 0, pageOffset(-5, 20))
}

func TestOrderClause(t *testing.T) {
	t.Parallel()

	allowed := map[string]string{
		"name":       "name",
		"created_at": "created_at",
	}

	assert.Equal(t, "name ASC", orderClause("name", "asc", allowed, "created_at"))
	assert.Equal(t, "name DESC", orderClause("name", "desc", allowed, "created_at"))
	assert.Equal(t, "name ASC", orderClause("NAME", "ASC", allowed, "created_at"))
	// Unknown direction defaults to DESC.
	assert.Equal(t, "name DESC", orderClause("name", "sideways", allowed, "created_at"))
	// Columns outside the allow-list fall back to the default, so user
	// input can never reach the SQL string.
	assert.Equal(t, "created_at ASC", orderClause("key_hash; DROP TABLE", "asc", allowed, "created_at"))
	assert.Equal(t, "created_at DESC", orderClause("", "", allowed, "created_at"))
}
