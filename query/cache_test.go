package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsonlens/jsonlens/types"
)

func TestBuildCacheLowercasesWholeRows(t *testing.T) {
	records := []types.Record{
		record(t, `{"name": "Ada", "address": {"city": "London"}}`),
		record(t, `{"name": "Grace", "tags": ["Fortran", "Navy"]}`),
	}
	cache := BuildCache(records)

	assert.Equal(t, 2, cache.Len())

	// Nested values and key names are both searchable.
	assert.True(t, cache.Match(0, "london"))
	assert.True(t, cache.Match(0, "address"))
	assert.True(t, cache.Match(1, "fortran"))
	assert.False(t, cache.Match(0, "fortran"))
}

func TestCacheMatchExpectsLoweredQuery(t *testing.T) {
	cache := BuildCache([]types.Record{record(t, `{"name": "Ada"}`)})

	assert.True(t, cache.Match(0, "ada"))
	assert.False(t, cache.Match(0, "Ada"), "caller lowercases the query once per run")
	assert.True(t, cache.Match(0, strings.ToLower("ADA")))
}

func TestCacheEmptyQueryMatchesAll(t *testing.T) {
	cache := BuildCache([]types.Record{record(t, `{"a": 1}`)})
	assert.True(t, cache.Match(0, ""))
}

func TestBuildCacheEmptyInput(t *testing.T) {
	assert.Equal(t, 0, BuildCache(nil).Len())
}
