package formats

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// The built-in formats. table is the interactive default; csv, json and
// yaml exist for piping a window into other tools.
var (
	Table = &OutputFormat{Name: "table", Extension: ".txt", Render: renderTable}
	CSV   = &OutputFormat{Name: "csv", Extension: ".csv", Render: renderCSV}
	JSON  = &OutputFormat{Name: "json", Extension: ".json", Render: renderJSON}
	YAML  = &OutputFormat{Name: "yaml", Extension: ".yaml", Render: renderYAML}
)

func init() {
	for _, format := range []*OutputFormat{Table, CSV, JSON, YAML} {
		if err := Register(format); err != nil {
			panic(err)
		}
	}
}

// renderTable lays the rows out in aligned columns with a header rule.
func renderTable(columns []string, rows [][]string) (string, error) {
	widths := make([]int, len(columns))
	for i, column := range columns {
		widths[i] = len(column)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var builder strings.Builder
	writeRow := func(cells []string) {
		for i, width := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i > 0 {
				builder.WriteString("  ")
			}
			builder.WriteString(cell)
			if i < len(widths)-1 {
				builder.WriteString(strings.Repeat(" ", width-len(cell)))
			}
		}
		builder.WriteString("\n")
	}

	writeRow(columns)
	for i, width := range widths {
		if i > 0 {
			builder.WriteString("  ")
		}
		builder.WriteString(strings.Repeat("-", width))
	}
	builder.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return builder.String(), nil
}

func renderCSV(columns []string, rows [][]string) (string, error) {
	var builder strings.Builder
	writer := csv.NewWriter(&builder)
	if err := writer.Write(columns); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return builder.String(), nil
}

// renderJSON emits one object per row, keyed by column, pretty-printed.
func renderJSON(columns []string, rows [][]string) (string, error) {
	objects := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		object := make(map[string]string, len(columns))
		for i, column := range columns {
			if i < len(row) {
				object[column] = row[i]
			}
		}
		objects = append(objects, object)
	}
	raw, err := json.MarshalIndent(objects, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal rows: %w", err)
	}
	return string(raw) + "\n", nil
}

func renderYAML(columns []string, rows [][]string) (string, error) {
	objects := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		object := make(map[string]string, len(columns))
		for i, column := range columns {
			if i < len(row) {
				object[column] = row[i]
			}
		}
		objects = append(objects, object)
	}
	raw, err := yaml.Marshal(objects)
	if err != nil {
		return "", fmt.Errorf("marshal rows: %w", err)
	}
	return string(raw), nil
}
