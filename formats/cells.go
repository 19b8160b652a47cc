package formats

import (
	"strings"

	"github.com/jsonlens/jsonlens/internal/pathres"
	"github.com/jsonlens/jsonlens/query"
	"github.com/jsonlens/jsonlens/types"
)

// Cells stringifies the visible columns of each record into render-ready
// cell text. A column that fans out to several values joins them with
// ", "; a column that resolves to nothing renders empty.
func Cells(records []types.Record, columns []string) [][]string {
	rows := make([][]string, len(records))
	for i, record := range records {
		row := make([]string, len(columns))
		for j, column := range columns {
			row[j] = cellText(record, column)
		}
		rows[i] = row
	}
	return rows
}

func cellText(record types.Record, column string) string {
	values := pathres.Resolve(record, column)
	switch len(values) {
	case 0:
		return ""
	case 1:
		return query.Stringify(values[0])
	default:
		parts := make([]string, len(values))
		for i, value := range values {
			parts[i] = query.Stringify(value)
		}
		return strings.Join(parts, ", ")
	}
}
