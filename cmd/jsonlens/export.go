package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsonlens/jsonlens/export"
)

var (
	exportOutput string
	exportRows   string
)

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export the filtered view as pretty-printed JSON",
	Long: `Export runs the same query pipeline as view and writes the resulting
records as a pretty-printed JSON array. Re-loading an exported file
reproduces the exported record set exactly.

With --rows, only the given row indexes of the filtered view (0-based,
comma separated) are exported.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&viewQuery, "query", "q", "", "Full-text search string")
	exportCmd.Flags().StringArrayVarP(&viewFilters, "filter", "f", nil, "Column filter field:operator[:operand[:operand2]] (repeatable)")
	exportCmd.Flags().StringVarP(&viewSort, "sort", "s", "", "Sort by field (field or field:desc)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path (default: derived from FILE with a timestamp)")
	exportCmd.Flags().StringVar(&exportRows, "rows", "", "Comma-separated row indexes of the filtered view to export")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	rows, _, err := runPipeline(cmd, args[0])
	if err != nil {
		return err
	}

	output := exportOutput
	if output == "" {
		base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		output = export.Filename(base, time.Now())
	}

	if exportRows != "" {
		indexes, err := parseRowIndexes(exportRows)
		if err != nil {
			return err
		}
		raw, err := export.Subset(rows, indexes)
		if err != nil {
			return err
		}
		if err := export.WriteRaw(output, raw); err != nil {
			return err
		}
	} else {
		if err := export.WriteFile(output, rows); err != nil {
			return err
		}
	}

	fmt.Printf("exported %s\n", output)
	return nil
}

func parseRowIndexes(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	indexes := make([]int, 0, len(parts))
	for _, part := range parts {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid row index %q", part)
		}
		indexes = append(indexes, i)
	}
	return indexes, nil
}
