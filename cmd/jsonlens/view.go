package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsonlens/jsonlens/formats"
	"github.com/jsonlens/jsonlens/jsonlens"
	"github.com/jsonlens/jsonlens/query"
	"github.com/jsonlens/jsonlens/session"
	"github.com/jsonlens/jsonlens/types"
	"github.com/jsonlens/jsonlens/viewport"
)

var (
	viewQuery    string
	viewFilters  []string
	viewSort     string
	viewFormat   string
	viewHide     []string
	viewScroll   float64
	viewHeight   float64
	rowHeight    float64
	viewOverscan int
)

var viewCmd = &cobra.Command{
	Use:   "view FILE",
	Short: "Render a JSON file as a searched, filtered, sorted table",
	Long: `View loads FILE, runs the query pipeline over it, and renders the
result. With --height set, only the viewport window around --scroll is
rendered, the way a virtualized UI would materialize rows; without it the
whole filtered view is rendered.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVarP(&viewQuery, "query", "q", "", "Full-text search string")
	viewCmd.Flags().StringArrayVarP(&viewFilters, "filter", "f", nil, "Column filter field:operator[:operand[:operand2]] (repeatable)")
	viewCmd.Flags().StringVarP(&viewSort, "sort", "s", "", "Sort by field (field or field:desc)")
	viewCmd.Flags().StringVar(&viewFormat, "format", "", "Output format: table|csv|json|yaml")
	viewCmd.Flags().StringArrayVar(&viewHide, "hide", nil, "Hide a column (repeatable)")
	viewCmd.Flags().Float64Var(&viewScroll, "scroll", 0, "Viewport scroll offset in pixels")
	viewCmd.Flags().Float64Var(&viewHeight, "height", 0, "Viewport height in pixels (0 renders everything)")
	viewCmd.Flags().Float64Var(&rowHeight, "row-height", 0, "Estimated row height in pixels")
	viewCmd.Flags().IntVar(&viewOverscan, "overscan", -1, "Extra rows rendered beyond the visible range")

	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	rows, dataset, err := runPipeline(cmd, args[0])
	if err != nil {
		return err
	}

	sess := session.New()
	applyPersistedColumns(sess, dataset.Schema)
	for _, column := range viewHide {
		sess.SetColumnHidden(column, true)
	}
	columns := sess.VisibleColumns(dataset.Schema)

	windowRows := rows
	var window types.ViewportWindow
	windowed := viewHeight > 0
	if windowed {
		estimate := rowHeight
		if estimate == 0 {
			estimate = config.GetFloat64("row-height")
		}
		overscan := viewOverscan
		if overscan < 0 {
			overscan = config.GetInt("overscan")
		}
		table := viewport.NewOffsetTable(len(rows), estimate)
		window = table.Window(viewScroll, viewHeight, overscan)
		if window.IsEmpty() {
			windowRows = nil
		} else {
			windowRows = rows[window.Start : window.End+1]
		}
	}

	name := viewFormat
	if name == "" {
		name = config.GetString("format")
	}
	format, err := formats.Get(name)
	if err != nil {
		return err
	}

	out, err := format.Render(columns, formats.Cells(windowRows, columns))
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	fmt.Print(out)

	if windowed && name == "table" {
		if window.IsEmpty() {
			fmt.Printf("(no rows in viewport; %d filtered rows)\n", len(rows))
		} else {
			fmt.Printf("(rows %d-%d of %d; %.0fpx above, %.0fpx below)\n",
				window.Start, window.End, len(rows),
				window.LeadingSpacer, window.TrailingSpacer)
		}
	}
	return nil
}

// runPipeline loads the file and produces the filtered, sorted row view
// shared by the view and export commands.
func runPipeline(cmd *cobra.Command, path string) ([]types.Record, *jsonlens.Dataset, error) {
	filters, err := parseFilterSpecs(viewFilters)
	if err != nil {
		return nil, nil, err
	}
	sortSpec, err := parseSortSpec(viewSort)
	if err != nil {
		return nil, nil, err
	}

	store := jsonlens.NewStore(logger)
	dataset, err := store.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	opts := types.QueryOptions{Query: viewQuery, Filters: filters, Sort: sortSpec}
	rows, err := query.NewEngine().Run(cmd.Context(), dataset.Snapshot(), opts)
	if err != nil {
		return nil, nil, err
	}
	return rows, dataset, nil
}

// applyPersistedColumns overlays the saved visible-column set, if any.
func applyPersistedColumns(sess *session.Session, schema []string) {
	visible, err := session.NewFileVisibilityStore(columnsFilePath()).Load()
	if err != nil {
		logger.Warn("column visibility unavailable", "error", err)
		return
	}
	if visible != nil {
		sess.SetVisibleColumns(schema, visible)
	}
}
