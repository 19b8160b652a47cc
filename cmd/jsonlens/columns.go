package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsonlens/jsonlens/jsonlens"
	"github.com/jsonlens/jsonlens/session"
)

var (
	columnsHide  []string
	columnsShow  []string
	columnsReset bool
)

var columnsCmd = &cobra.Command{
	Use:   "columns FILE",
	Short: "Show or change which columns are visible",
	Long: `Columns manages the persisted column visibility set used by view.
Without flags it lists every discovered column and whether it is
currently visible. Changes are saved back to the visibility store.`,
	Args: cobra.ExactArgs(1),
	RunE: runColumns,
}

func init() {
	columnsCmd.Flags().StringArrayVar(&columnsHide, "hide", nil, "Hide a column (repeatable)")
	columnsCmd.Flags().StringArrayVar(&columnsShow, "show", nil, "Show a column (repeatable)")
	columnsCmd.Flags().BoolVar(&columnsReset, "reset", false, "Show every column again")

	rootCmd.AddCommand(columnsCmd)
}

func runColumns(cmd *cobra.Command, args []string) error {
	store := jsonlens.NewStore(logger)
	dataset, err := store.LoadFile(args[0])
	if err != nil {
		return err
	}

	visibility := session.NewFileVisibilityStore(columnsFilePath())
	sess := session.New()

	if !columnsReset {
		saved, err := visibility.Load()
		if err != nil {
			return err
		}
		if saved != nil {
			sess.SetVisibleColumns(dataset.Schema, saved)
		}
	}

	for _, column := range columnsHide {
		sess.SetColumnHidden(column, true)
	}
	for _, column := range columnsShow {
		sess.SetColumnHidden(column, false)
	}

	changed := columnsReset || len(columnsHide) > 0 || len(columnsShow) > 0
	visible := sess.VisibleColumns(dataset.Schema)
	if changed {
		if err := visibility.Save(visible); err != nil {
			return err
		}
	}

	visibleSet := make(map[string]struct{}, len(visible))
	for _, column := range visible {
		visibleSet[column] = struct{}{}
	}
	for _, column := range dataset.Schema {
		marker := " "
		if _, ok := visibleSet[column]; ok {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, column)
	}
	return nil
}
