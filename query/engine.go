// Package query composes the search cache, filter evaluator and sort
// comparator into one pure transformation from a dataset snapshot to the
// visible row order.
package query

import (
	"context"
	"sort"
	"strings"

	"github.com/jsonlens/jsonlens/types"
)

// checkEvery is how many records the filter pass examines between
// context checks. Large filter passes over 10^5+ rows must be
// interruptible so a superseded run can be abandoned quickly.
const checkEvery = 4096

// Snapshot is the immutable input to one pipeline run: the dataset's
// records and their prebuilt search cache, index-aligned.
type Snapshot struct {
	Records []types.Record
	Cache   *Cache
}

// Engine runs the query pipeline. It holds no per-dataset state, so one
// engine can serve successive dataset generations.
type Engine struct{}

// NewEngine creates a query pipeline engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Run produces the visible row order for the snapshot under the given
// options: records matching the search query AND every filter, in original
// order, then stably sorted when a sort is set. The snapshot is never
// mutated and no record is synthesized or duplicated, so the result is
// always a permutation-subset of the input.
//
// Identical inputs always produce identical output, which lets callers
// memoize on the options. Run returns ctx.Err() when cancelled; a
// cancelled run yields no partial result.
func (e *Engine) Run(ctx context.Context, snap Snapshot, opts types.QueryOptions) ([]types.Record, error) {
	rows, err := e.filterPass(ctx, snap, opts)
	if err != nil {
		return nil, err
	}

	if !opts.Sort.IsZero() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		comparator := NewComparator(opts.Sort)
		sort.SliceStable(rows, func(i, j int) bool {
			return comparator.Compare(rows[i], rows[j]) < 0
		})
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return rows, nil
}

// filterPass applies search and filters in one chunked scan over the
// records, preserving original order.
func (e *Engine) filterPass(ctx context.Context, snap Snapshot, opts types.QueryOptions) ([]types.Record, error) {
	if opts.Query == "" && len(opts.Filters) == 0 {
		// Nothing to evaluate; the view is the whole dataset. The copy
		// keeps later sorting from disturbing the snapshot's own slice.
		rows := make([]types.Record, len(snap.Records))
		copy(rows, snap.Records)
		return rows, nil
	}

	loweredQuery := strings.ToLower(opts.Query)
	var rows []types.Record
	for i, record := range snap.Records {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if !snap.Cache.Match(i, loweredQuery) {
			continue
		}
		if !MatchesAll(record, opts.Filters) {
			continue
		}
		rows = append(rows, record)
	}
	return rows, nil
}
