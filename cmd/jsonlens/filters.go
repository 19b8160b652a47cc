package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jsonlens/jsonlens/internal/validation"
	"github.com/jsonlens/jsonlens/types"
)

// parseFilterSpecs turns repeated --filter values of the form
// field:operator[:operand[:operand2]] into filter specifications. The
// field may itself contain dots; only the first colons split.
func parseFilterSpecs(values []string) ([]types.FilterSpec, error) {
	if len(values) == 0 {
		return nil, nil
	}
	specs := make([]types.FilterSpec, 0, len(values))
	for _, value := range values {
		parts := strings.SplitN(value, ":", 4)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid filter %q: want field:operator[:operand[:operand2]]", value)
		}
		spec := types.FilterSpec{
			ID:       uuid.New().String(),
			Field:    parts[0],
			Operator: types.Operator(parts[1]),
		}
		if len(parts) > 2 {
			spec.Operand1 = parts[2]
		}
		if len(parts) > 3 {
			spec.Operand2 = parts[3]
		}
		if err := validation.ValidateFilter(spec); err != nil {
			return nil, fmt.Errorf("invalid filter %q: %w", value, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// parseSortSpec parses --sort values of the form field or field:desc.
func parseSortSpec(value string) (types.SortSpec, error) {
	if value == "" {
		return types.SortSpec{}, nil
	}
	field, direction, found := strings.Cut(value, ":")
	spec := types.SortSpec{Field: field}
	if found {
		switch strings.ToLower(direction) {
		case "asc":
		case "desc":
			spec.Descending = true
		default:
			return types.SortSpec{}, fmt.Errorf("invalid sort direction %q: want asc or desc", direction)
		}
	}
	if err := validation.ValidateSort(spec); err != nil {
		return types.SortSpec{}, err
	}
	return spec, nil
}
