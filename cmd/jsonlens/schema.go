package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsonlens/jsonlens/jsonlens"
)

var schemaCmd = &cobra.Command{
	Use:   "schema FILE",
	Short: "Print the discovered columns of a JSON file",
	Long: `Schema loads FILE and prints its flat column space: every leaf field
path discovered across all records, in first-seen order.`,
	Args: cobra.ExactArgs(1),
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	store := jsonlens.NewStore(logger)
	dataset, err := store.LoadFile(args[0])
	if err != nil {
		return err
	}

	for _, column := range dataset.Schema {
		fmt.Println(column)
	}
	fmt.Printf("%d columns, %d records\n", len(dataset.Schema), dataset.Len())
	return nil
}
