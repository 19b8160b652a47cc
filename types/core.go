package types

// Record is one JSON object from a loaded dataset, decoded with the
// standard library's generic mapping (objects become map[string]interface{},
// arrays []interface{}, numbers float64). Records are treated as immutable
// once loaded: the query pipeline and viewport layers only ever read them.
type Record = map[string]interface{}

// Operator identifies a filter comparison. Unrecognized operators are not
// an error; they simply never match.
type Operator string

const (
	// OpContains matches when the operand is a case-insensitive substring
	// of the stringified value.
	OpContains Operator = "contains"

	// OpEquals matches on exact string equality with the operand.
	OpEquals Operator = "equals"

	// OpGreaterThan and OpLessThan compare numerically after a
	// locale-independent float parse of both sides. Either side failing
	// to parse means no match.
	OpGreaterThan Operator = ">"
	OpLessThan    Operator = "<"

	// OpBetween matches numerically, inclusive on both bounds
	// (Operand1..Operand2).
	OpBetween Operator = "between"

	// OpIsEmpty and OpIsNotEmpty test whether the stringified, trimmed
	// value is the empty string.
	OpIsEmpty    Operator = "is_empty"
	OpIsNotEmpty Operator = "is_not_empty"

	// Array-shape operators. These apply when the filter field names a
	// top-level property whose value is literally an array; they test the
	// array's length.
	OpLengthEquals Operator = "length_equals"
	OpLengthGt     Operator = "length_gt"
	OpLengthLt     Operator = "length_lt"
)

// FilterSpec describes one column filter. Field is a dot-separated leaf
// path; Operand2 is only meaningful for the between operator.
type FilterSpec struct {
	ID       string   `json:"id"`
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Operand1 string   `json:"operand1"`
	Operand2 string   `json:"operand2,omitempty"`
}

// SortSpec describes the active sort: a leaf field path and a direction.
// The zero value (empty Field) means no sort.
type SortSpec struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// IsZero reports whether no sort is set.
func (s SortSpec) IsZero() bool {
	return s.Field == ""
}

// QueryOptions bundles the three query pipeline inputs. An empty Query
// matches every record; an empty Filters slice passes trivially; a zero
// Sort leaves the filtered order unchanged.
type QueryOptions struct {
	Query   string
	Filters []FilterSpec
	Sort    SortSpec
}

// ViewportWindow is the contiguous index range of rows that must be
// materialized for display, plus the spacer heights that stand in for
// everything outside it. It is derived state, recomputed on every scroll,
// resize, row-count change, or row measurement; it is never persisted.
//
// When RowCount > 0 the indices satisfy 0 <= Start <= End < RowCount.
// An empty window has End < Start.
type ViewportWindow struct {
	Start int
	End   int

	// LeadingSpacer and TrailingSpacer are the pixel heights of the
	// unrendered regions before Start and after End.
	LeadingSpacer  float64
	TrailingSpacer float64
}

// IsEmpty reports whether the window contains no rows.
func (w ViewportWindow) IsEmpty() bool {
	return w.End < w.Start
}

// Rows returns the number of rows covered by the window.
func (w ViewportWindow) Rows() int {
	if w.IsEmpty() {
		return 0
	}
	return w.End - w.Start + 1
}
