package query

import (
	"golang.org/x/text/collate"

	"github.com/jsonlens/jsonlens/internal/pathres"
	"github.com/jsonlens/jsonlens/types"
)

// Comparator orders records by a single field path with type-aware
// comparison: numeric when both sides parse as finite numbers, collated
// string comparison otherwise. A record with no resolved value sorts as
// the empty string.
type Comparator struct {
	field      string
	descending bool
	collator   *collate.Collator
}

// NewComparator builds a comparator for the given sort specification.
func NewComparator(spec types.SortSpec) *Comparator {
	return &Comparator{
		field:      spec.Field,
		descending: spec.Descending,
		collator:   newCollator(),
	}
}

// Compare returns a negative number when a orders before b, zero when they
// are equal, and a positive number otherwise. Callers must use a stable
// sort so that equal records keep their original relative order.
func (c *Comparator) Compare(a, b types.Record) int {
	left := c.sortKey(a)
	right := c.sortKey(b)

	var result int
	leftNum, leftOK := parseFloat(left)
	rightNum, rightOK := parseFloat(right)
	switch {
	case leftOK && rightOK:
		switch {
		case leftNum < rightNum:
			result = -1
		case leftNum > rightNum:
			result = 1
		}
	default:
		result = c.collator.CompareString(left, right)
	}

	if c.descending {
		result = -result
	}
	return result
}

// sortKey extracts the first resolved value for the sort field, as a
// string. Missing values and nulls both key as "".
func (c *Comparator) sortKey(record types.Record) string {
	value, ok := pathres.First(record, c.field)
	if !ok || value == nil {
		return ""
	}
	return Stringify(value)
}
