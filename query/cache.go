package query

import (
	"encoding/json"
	"strings"

	"github.com/jsonlens/jsonlens/types"
)

// Cache holds the precomputed full-text haystack for every record of a
// dataset: the lowercased canonical JSON serialization, keyed by row index.
// Records here have value semantics, so row position stands in for the
// object identity an identity-keyed cache would use. The cache is built
// once per dataset load and discarded wholesale with it; it is never
// patched incrementally.
type Cache struct {
	texts []string
}

// BuildCache precomputes the search text for every record. Marshaling a
// decoded record sorts object keys, which makes the serialization
// canonical: two deep-equal records always produce the same haystack.
func BuildCache(records []types.Record) *Cache {
	texts := make([]string, len(records))
	for i, record := range records {
		raw, err := json.Marshal(record)
		if err != nil {
			// Decoded JSON values always re-marshal; an empty haystack
			// (matches nothing) is the safe fallback.
			continue
		}
		texts[i] = strings.ToLower(string(raw))
	}
	return &Cache{texts: texts}
}

// Len returns the number of rows the cache covers.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.texts)
}

// Match reports whether the row at index i matches the query. An empty
// query matches every row. The query must already be lowercased; Run
// lowercases it once per pipeline pass.
func (c *Cache) Match(i int, loweredQuery string) bool {
	if loweredQuery == "" {
		return true
	}
	if c == nil || i < 0 || i >= len(c.texts) {
		return false
	}
	return strings.Contains(c.texts[i], loweredQuery)
}
