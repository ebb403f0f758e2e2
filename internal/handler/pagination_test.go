package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponse(t *testing.T) {
	resp := NewPaginatedResponse([]int{1, 2, 3}, 25, 2, 10)

	assert.Equal(t, int64(25), resp.Meta.TotalItems)
	assert.Equal(t, 3, resp.Meta.TotalPages)
	assert.Equal(t, 2, resp.Meta.CurrentPage)
	assert.Equal(t, 10, resp.Meta.PageSize)
	assert.Len(t, resp.Data, 3)
}

func TestNewPaginatedResponseZeroLimit(t *testing.T) {
	resp := NewPaginatedResponse([]string{}, 0, 1, 0)
	assert.Equal(t, 0, resp.Meta.TotalPages)
	assert.Equal(t, 1, resp.Meta.PageSize)
}
