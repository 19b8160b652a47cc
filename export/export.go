// Package export serializes a subsequence of the current dataset as
// pretty-printed JSON for download. Exports round-trip: loading an
// exported subset reproduces a deep-equal record set, formatting aside.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jsonlens/jsonlens/types"
)

// Records serializes the given records as a pretty-printed JSON array
// with two-space indentation. A nil or empty input exports as "[]".
func Records(records []types.Record) ([]byte, error) {
	if records == nil {
		records = []types.Record{}
	}
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal records: %w", err)
	}
	return append(raw, '\n'), nil
}

// Subset serializes only the records at the given indexes, in the given
// order. Indexes outside the record range are skipped rather than
// faulted on, so a selection that outlived a filter change degrades
// gracefully.
func Subset(records []types.Record, indexes []int) ([]byte, error) {
	subset := make([]types.Record, 0, len(indexes))
	for _, i := range indexes {
		if i < 0 || i >= len(records) {
			continue
		}
		subset = append(subset, records[i])
	}
	return Records(subset)
}

// WriteFile exports records to path atomically: the JSON is written to a
// temp file first and renamed into place, so a failed export never leaves
// a truncated file behind.
func WriteFile(path string, records []types.Record) error {
	raw, err := Records(records)
	if err != nil {
		return err
	}
	return WriteRaw(path, raw)
}

// WriteRaw writes an already-serialized export to path with the same
// temp-then-rename discipline as WriteFile.
func WriteRaw(path string, raw []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}
