package validation

import (
	"strings"
	"testing"

	"github.com/jsonlens/jsonlens/types"
)

func TestValidateFilter(t *testing.T) {
	tests := []struct {
		name    string
		spec    types.FilterSpec
		wantErr string
	}{
		{
			name: "valid contains",
			spec: types.FilterSpec{Field: "name", Operator: types.OpContains, Operand1: "ada"},
		},
		{
			name: "valid numeric comparison",
			spec: types.FilterSpec{Field: "age", Operator: types.OpGreaterThan, Operand1: "30"},
		},
		{
			name: "numeric operand may carry whitespace",
			spec: types.FilterSpec{Field: "age", Operator: types.OpLessThan, Operand1: " 40 "},
		},
		{
			name: "valid between",
			spec: types.FilterSpec{Field: "age", Operator: types.OpBetween, Operand1: "1", Operand2: "9"},
		},
		{
			name: "valid emptiness",
			spec: types.FilterSpec{Field: "nickname", Operator: types.OpIsEmpty},
		},
		{
			name: "valid length",
			spec: types.FilterSpec{Field: "tags", Operator: types.OpLengthGt, Operand1: "2"},
		},
		{
			name:    "empty field",
			spec:    types.FilterSpec{Operator: types.OpContains},
			wantErr: "field cannot be empty",
		},
		{
			name:    "unknown operator",
			spec:    types.FilterSpec{Field: "name", Operator: types.Operator("regex")},
			wantErr: "unknown operator",
		},
		{
			name:    "non-numeric comparison operand",
			spec:    types.FilterSpec{Field: "age", Operator: types.OpGreaterThan, Operand1: "old"},
			wantErr: "is not a number",
		},
		{
			name:    "between missing upper bound",
			spec:    types.FilterSpec{Field: "age", Operator: types.OpBetween, Operand1: "1"},
			wantErr: "upper bound",
		},
		{
			name:    "length operand must be an integer",
			spec:    types.FilterSpec{Field: "tags", Operator: types.OpLengthEquals, Operand1: "2.5"},
			wantErr: "not an integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilter(tt.spec)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateFiltersReportsPosition(t *testing.T) {
	specs := []types.FilterSpec{
		{Field: "a", Operator: types.OpContains},
		{Field: "b", Operator: types.OpGreaterThan, Operand1: "x"},
	}

	err := ValidateFilters(specs)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "filter 2:") {
		t.Errorf("expected the position in the error, got %v", err)
	}

	if err := ValidateFilters(nil); err != nil {
		t.Errorf("empty list should validate: %v", err)
	}
}

func TestValidateSort(t *testing.T) {
	if err := ValidateSort(types.SortSpec{}); err != nil {
		t.Errorf("zero sort should validate: %v", err)
	}
	if err := ValidateSort(types.SortSpec{Field: "age", Descending: true}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateSort(types.SortSpec{Descending: true}); err == nil {
		t.Error("direction without a field should be rejected")
	}
}
