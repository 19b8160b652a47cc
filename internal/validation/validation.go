// Package validation checks filter and sort specifications before they
// reach interactive surfaces. The query engine itself treats a malformed
// filter as a non-match rather than an error; validation exists so the
// CLI can tell the user what is wrong instead of silently returning
// nothing.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsonlens/jsonlens/types"
)

// knownOperators lists every operator the filter evaluator understands.
var knownOperators = map[types.Operator]struct{}{
	types.OpContains:     {},
	types.OpEquals:       {},
	types.OpGreaterThan:  {},
	types.OpLessThan:     {},
	types.OpBetween:      {},
	types.OpIsEmpty:      {},
	types.OpIsNotEmpty:   {},
	types.OpLengthEquals: {},
	types.OpLengthGt:     {},
	types.OpLengthLt:     {},
}

// ValidateFilter checks one filter specification for consistency.
func ValidateFilter(spec types.FilterSpec) error {
	if spec.Field == "" {
		return fmt.Errorf("filter field cannot be empty")
	}
	if _, ok := knownOperators[spec.Operator]; !ok {
		return fmt.Errorf("unknown operator %q", spec.Operator)
	}

	switch spec.Operator {
	case types.OpGreaterThan, types.OpLessThan:
		if err := requireNumber(spec.Operand1, "operand"); err != nil {
			return fmt.Errorf("operator %q: %w", spec.Operator, err)
		}
	case types.OpBetween:
		if err := requireNumber(spec.Operand1, "lower bound"); err != nil {
			return fmt.Errorf("operator %q: %w", spec.Operator, err)
		}
		if err := requireNumber(spec.Operand2, "upper bound"); err != nil {
			return fmt.Errorf("operator %q: %w", spec.Operator, err)
		}
	case types.OpLengthEquals, types.OpLengthGt, types.OpLengthLt:
		if _, err := strconv.Atoi(strings.TrimSpace(spec.Operand1)); err != nil {
			return fmt.Errorf("operator %q: operand %q is not an integer", spec.Operator, spec.Operand1)
		}
	}
	return nil
}

// ValidateFilters checks a whole filter list and reports the first
// problem, identified by filter position.
func ValidateFilters(specs []types.FilterSpec) error {
	for i, spec := range specs {
		if err := ValidateFilter(spec); err != nil {
			return fmt.Errorf("filter %d: %w", i+1, err)
		}
	}
	return nil
}

// ValidateSort checks a sort specification. The zero value (no sort) is
// valid.
func ValidateSort(spec types.SortSpec) error {
	if spec.IsZero() && spec.Descending {
		return fmt.Errorf("sort direction set without a sort field")
	}
	return nil
}

func requireNumber(operand, role string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(operand), 64); err != nil {
		return fmt.Errorf("%s %q is not a number", role, operand)
	}
	return nil
}
