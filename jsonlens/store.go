package jsonlens

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jsonlens/jsonlens/query"
	"github.com/jsonlens/jsonlens/types"
)

// Dataset is one immutable generation of loaded data together with
// everything derived from it: the discovered schema and the search cache.
// A Dataset is built completely before it becomes visible, and it is
// replaced wholesale by the next load; nothing is ever patched in place.
type Dataset struct {
	// ID tags the generation, for logs and for detecting stale pipeline
	// results after a reload.
	ID string

	Records []types.Record
	Schema  []string
	Cache   *query.Cache

	LoadedAt time.Time
}

// Snapshot returns the dataset view the query pipeline consumes.
func (d *Dataset) Snapshot() query.Snapshot {
	return query.Snapshot{Records: d.Records, Cache: d.Cache}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Store owns the single canonical in-memory dataset. Loading a new one
// atomically replaces the records, schema and search cache as a unit;
// readers either see the old generation or the new one, never a mix.
type Store struct {
	lock   *lockManager
	logger *slog.Logger
	data   *Dataset
}

// NewStore creates a store holding an empty dataset.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		lock:   newLockManager(),
		logger: logger,
		data:   emptyDataset(),
	}
}

func emptyDataset() *Dataset {
	return &Dataset{
		ID:       uuid.New().String(),
		Cache:    query.BuildCache(nil),
		LoadedAt: time.Now(),
	}
}

// Load parses raw text into a new dataset and installs it. A top-level
// object becomes a one-record dataset; a top-level array of objects
// becomes one record per element. On any parse failure Load returns a
// *ParseError and the current dataset, schema and search cache remain
// exactly as they were.
func (s *Store) Load(raw []byte) (*Dataset, error) {
	records, raws, err := parseRecords(raw)
	if err != nil {
		s.logger.Warn("dataset load rejected", "error", err)
		return nil, err
	}

	schema, err := DetectFields(raws)
	if err != nil {
		s.logger.Warn("schema discovery failed", "error", err)
		return nil, err
	}

	dataset := &Dataset{
		ID:       uuid.New().String(),
		Records:  records,
		Schema:   schema,
		Cache:    query.BuildCache(records),
		LoadedAt: time.Now(),
	}

	_ = s.lock.execute(writeOperation, func() error {
		s.data = dataset
		return nil
	})

	s.logger.Info("dataset loaded",
		"dataset", dataset.ID,
		"records", len(records),
		"columns", len(schema))
	return dataset, nil
}

// LoadFile reads path and loads its contents.
func (s *Store) LoadFile(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return s.Load(raw)
}

// Dataset returns the current generation. The returned value is shared
// and must be treated as read-only.
func (s *Store) Dataset() *Dataset {
	var data *Dataset
	_ = s.lock.execute(readOperation, func() error {
		data = s.data
		return nil
	})
	return data
}

// parseRecords decodes raw text into pipeline records plus the raw bytes
// of each record for the ordered schema walk.
func parseRecords(raw []byte) ([]types.Record, [][]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil, &ParseError{Reason: "input is empty"}
	}

	switch trimmed[0] {
	case '[':
		var elements []json.RawMessage
		if err := json.Unmarshal(trimmed, &elements); err != nil {
			return nil, nil, &ParseError{Reason: "invalid JSON", Err: err}
		}
		records := make([]types.Record, 0, len(elements))
		raws := make([][]byte, 0, len(elements))
		for i, element := range elements {
			var record types.Record
			if err := json.Unmarshal(element, &record); err != nil || record == nil {
				return nil, nil, &ParseError{
					Reason: fmt.Sprintf("array element %d is not an object", i),
					Err:    err,
				}
			}
			records = append(records, record)
			raws = append(raws, element)
		}
		return records, raws, nil
	case '{':
		var record types.Record
		if err := json.Unmarshal(trimmed, &record); err != nil {
			return nil, nil, &ParseError{Reason: "invalid JSON", Err: err}
		}
		return []types.Record{record}, [][]byte{trimmed}, nil
	default:
		if !json.Valid(trimmed) {
			return nil, nil, &ParseError{Reason: "invalid JSON"}
		}
		return nil, nil, &ParseError{Reason: "top-level value must be an object or an array of objects"}
	}
}
