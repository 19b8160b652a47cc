package query

import (
	"strconv"
	"strings"

	"github.com/jsonlens/jsonlens/internal/pathres"
	"github.com/jsonlens/jsonlens/types"
)

// Matches tests one record against one filter specification.
//
// When the filter field is a plain top-level property holding an array,
// only the array-shape operators apply, against the array's length; any
// other operator on that shape is a no-op that keeps the record.
//
// Otherwise the field path is resolved, which may fan out across arrays,
// and the filter matches if any resolved value satisfies the operator.
// Nulls never match anything, and a path that resolves to no values
// matches nothing.
func Matches(record types.Record, spec types.FilterSpec) bool {
	if !strings.Contains(spec.Field, ".") {
		if arr, ok := record[spec.Field].([]interface{}); ok {
			return matchesArrayShape(len(arr), spec)
		}
	}

	for _, value := range pathres.Resolve(record, spec.Field) {
		if value == nil {
			continue
		}
		if matchesValue(Stringify(value), spec) {
			return true
		}
	}
	return false
}

// MatchesAll reports whether the record passes every filter (logical AND).
// An empty filter list passes trivially.
func MatchesAll(record types.Record, specs []types.FilterSpec) bool {
	for _, spec := range specs {
		if !Matches(record, spec) {
			return false
		}
	}
	return true
}

func matchesArrayShape(length int, spec types.FilterSpec) bool {
	switch spec.Operator {
	case types.OpIsEmpty:
		return length == 0
	case types.OpIsNotEmpty:
		return length != 0
	case types.OpLengthEquals, types.OpLengthGt, types.OpLengthLt:
		want, err := strconv.Atoi(strings.TrimSpace(spec.Operand1))
		if err != nil {
			return false
		}
		switch spec.Operator {
		case types.OpLengthEquals:
			return length == want
		case types.OpLengthGt:
			return length > want
		default:
			return length < want
		}
	default:
		// Value operators don't apply to an array as a whole; the filter
		// is inert rather than a rejection.
		return true
	}
}

func matchesValue(value string, spec types.FilterSpec) bool {
	switch spec.Operator {
	case types.OpContains:
		return strings.Contains(strings.ToLower(value), strings.ToLower(spec.Operand1))
	case types.OpEquals:
		return value == spec.Operand1
	case types.OpGreaterThan, types.OpLessThan:
		v, okValue := parseFloat(value)
		bound, okBound := parseFloat(spec.Operand1)
		if !okValue || !okBound {
			return false
		}
		if spec.Operator == types.OpGreaterThan {
			return v > bound
		}
		return v < bound
	case types.OpBetween:
		v, okValue := parseFloat(value)
		lo, okLo := parseFloat(spec.Operand1)
		hi, okHi := parseFloat(spec.Operand2)
		if !okValue || !okLo || !okHi {
			return false
		}
		return v >= lo && v <= hi
	case types.OpIsEmpty:
		return strings.TrimSpace(value) == ""
	case types.OpIsNotEmpty:
		return strings.TrimSpace(value) != ""
	default:
		// Unrecognized operators (including array-shape operators on a
		// non-array position) never match.
		return false
	}
}
