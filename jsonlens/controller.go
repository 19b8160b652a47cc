package jsonlens

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/bep/debounce"

	"github.com/jsonlens/jsonlens/query"
	"github.com/jsonlens/jsonlens/types"
)

// DefaultDebounce is the quiet interval that collapses a burst of query
// edits into a single pipeline run.
const DefaultDebounce = 250 * time.Millisecond

// Result is one completed pipeline output, tagged with the dataset
// generation and run generation it was computed from. Only the most
// recently issued run is ever delivered; superseded runs are abandoned
// without merging.
type Result struct {
	DatasetID  string
	Generation uint64
	Options    types.QueryOptions
	Rows       []types.Record
}

// Controller owns the query lifecycle over a store: it debounces bursts of
// query, filter, and sort edits, cancels in-flight pipeline runs when a
// newer one is issued, and delivers only current results to its callback.
// The viewport layer must only ever consume delivered results, so it
// always operates on the most recently completed pipeline output.
type Controller struct {
	store   *Store
	engine  *query.Engine
	logger  *slog.Logger
	deliver func(Result)

	scheduleRun func(func())

	mu      sync.Mutex
	options types.QueryOptions
	gen     uint64
	cancel  context.CancelFunc
}

// NewController wires a controller to a store. deliver is invoked, on the
// run's own goroutine, once per completed non-superseded run. A
// non-positive interval falls back to DefaultDebounce.
func NewController(store *Store, interval time.Duration, deliver func(Result)) *Controller {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	return &Controller{
		store:       store,
		engine:      query.NewEngine(),
		logger:      store.logger,
		deliver:     deliver,
		scheduleRun: debounce.New(interval),
	}
}

// SetQuery schedules a debounced pipeline run with a new search string.
func (c *Controller) SetQuery(q string) {
	c.mu.Lock()
	c.options.Query = q
	c.mu.Unlock()
	c.scheduleRun(c.launch)
}

// SetFilters schedules a debounced pipeline run with a new filter list.
func (c *Controller) SetFilters(filters []types.FilterSpec) {
	c.mu.Lock()
	c.options.Filters = filters
	c.mu.Unlock()
	c.scheduleRun(c.launch)
}

// SetSort schedules a debounced pipeline run with a new sort.
func (c *Controller) SetSort(sort types.SortSpec) {
	c.mu.Lock()
	c.options.Sort = sort
	c.mu.Unlock()
	c.scheduleRun(c.launch)
}

// Options returns the currently effective query options.
func (c *Controller) Options() types.QueryOptions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.options
}

// Load replaces the dataset through the store and immediately launches a
// pipeline run for it; a reload is not a keystroke and is not debounced.
func (c *Controller) Load(raw []byte) (*Dataset, error) {
	dataset, err := c.store.Load(raw)
	if err != nil {
		return nil, err
	}
	c.launch()
	return dataset, nil
}

// RunNow executes the pipeline synchronously with the current options,
// bypassing the debouncer. In-flight asynchronous runs are superseded
// just as with a debounced run.
func (c *Controller) RunNow(ctx context.Context) (Result, error) {
	dataset, opts, gen, runCtx, cancel := c.begin(ctx)
	defer cancel()

	rows, err := c.engine.Run(runCtx, dataset.Snapshot(), opts)
	if err != nil {
		return Result{}, err
	}
	return Result{
		DatasetID:  dataset.ID,
		Generation: gen,
		Options:    opts,
		Rows:       rows,
	}, nil
}

// launch starts an asynchronous pipeline run, cancelling any run still in
// flight. Latest-request-wins: a result is delivered only if no newer run
// was issued while it computed.
func (c *Controller) launch() {
	dataset, opts, gen, ctx, _ := c.begin(context.Background())

	go func() {
		started := time.Now()
		rows, err := c.engine.Run(ctx, dataset.Snapshot(), opts)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				c.logger.Warn("pipeline run failed", "dataset", dataset.ID, "error", err)
			}
			return
		}

		c.mu.Lock()
		stale := gen != c.gen
		c.mu.Unlock()
		if stale {
			// A newer run was issued while this one computed.
			return
		}

		c.logger.Debug("pipeline run completed",
			"dataset", dataset.ID,
			"rows", len(rows),
			"elapsed", time.Since(started))
		if c.deliver != nil {
			c.deliver(Result{
				DatasetID:  dataset.ID,
				Generation: gen,
				Options:    opts,
				Rows:       rows,
			})
		}
	}()
}

// begin claims a new run generation: it cancels the previous run's
// context and snapshots the inputs the run will use.
func (c *Controller) begin(parent context.Context) (*Dataset, types.QueryOptions, uint64, context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = cancel
	c.gen++
	gen := c.gen
	opts := c.options
	c.mu.Unlock()

	return c.store.Dataset(), opts, gen, ctx, cancel
}
