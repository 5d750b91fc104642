package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMetaPagination(t *testing.T) {
	meta := NewMeta(2, 10, 25)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 10, meta.PerPage)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(25), meta.TotalCount)

	meta = NewMeta(1, 2, 5)
	assert.Equal(t, 3, meta.TotalPages)

	meta = NewMeta(1, 5, 0)
	assert.Equal(t, 0, meta.TotalPages)
}

// ?page and ?limit come straight off the query string; zero and negative
// values must be clamped instead of dividing by zero.
func TestNewMetaClampsOutOfRangeInput(t *testing.T) {
	assert.NotPanics(t, func() {
		meta := NewMeta(0, 0, 5)
		assert.Equal(t, 1, meta.CurrentPage)
		assert.Equal(t, 1, meta.PerPage)
		assert.Equal(t, 5, meta.TotalPages)
	})

	meta := NewMeta(-3, -1, 7)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, 1, meta.PerPage)
	assert.Equal(t, 7, meta.TotalPages)
}
