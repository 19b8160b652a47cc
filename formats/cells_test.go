package formats

import (
	"reflect"
	"testing"

	"github.com/jsonlens/jsonlens/types"
)

func TestCells(t *testing.T) {
	records := []types.Record{
		{
			"name":    "Ada",
			"age":     float64(36),
			"address": map[string]interface{}{"city": "London"},
			"orders": []interface{}{
				map[string]interface{}{"sku": "a-1"},
				map[string]interface{}{"sku": "b-2"},
			},
		},
		{
			"name":     "Ray",
			"nickname": nil,
		},
	}
	columns := []string{"name", "age", "address.city", "orders.sku", "nickname"}

	got := Cells(records, columns)
	want := [][]string{
		{"Ada", "36", "London", "a-1, b-2", ""},
		{"Ray", "", "", "", ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCellsEmpty(t *testing.T) {
	if got := Cells(nil, []string{"a"}); len(got) != 0 {
		t.Errorf("expected no rows, got %v", got)
	}
	got := Cells([]types.Record{{"a": float64(1)}}, nil)
	if len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("expected one empty row, got %v", got)
	}
}
