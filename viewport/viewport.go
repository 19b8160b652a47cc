// Package viewport computes which contiguous range of rows must be
// materialized for display at a given scroll position. It maintains a
// cumulative-offset table over per-row heights, initialized to a uniform
// estimate and refined as rows are actually measured during rendering, so
// window recomputation stays O(log n + window) even for datasets with
// hundreds of thousands of rows.
package viewport

import (
	"sort"

	"github.com/jsonlens/jsonlens/types"
)

// DefaultRowHeight is the uniform height estimate used for rows that have
// not been measured yet.
const DefaultRowHeight = 36

// OffsetTable tracks per-row heights and their running sum for one
// displayed row sequence. It is rebuilt from the estimate whenever the row
// count changes; measured heights never carry over across dataset loads.
//
// OffsetTable is not safe for concurrent use. Scroll handling is
// single-threaded and the table only ever serves the most recently
// completed pipeline output.
type OffsetTable struct {
	estimate float64
	heights  []float64
	// offsets[i] is the cumulative height of rows [0, i); offsets has
	// rowCount+1 entries so offsets[rowCount] is the total height.
	offsets []float64
}

// NewOffsetTable creates a table for rowCount rows, every one assumed to
// be estimate pixels tall. A non-positive estimate falls back to
// DefaultRowHeight.
func NewOffsetTable(rowCount int, estimate float64) *OffsetTable {
	if estimate <= 0 {
		estimate = DefaultRowHeight
	}
	t := &OffsetTable{estimate: estimate}
	t.Reset(rowCount)
	return t
}

// Reset discards all measured heights and rebuilds the table for a new row
// count from the uniform estimate. Called whenever the displayed sequence
// changes: a new dataset or a new query pipeline output.
func (t *OffsetTable) Reset(rowCount int) {
	if rowCount < 0 {
		rowCount = 0
	}
	t.heights = make([]float64, rowCount)
	t.offsets = make([]float64, rowCount+1)
	for i := 0; i < rowCount; i++ {
		t.heights[i] = t.estimate
		t.offsets[i+1] = t.offsets[i] + t.estimate
	}
}

// Len returns the number of rows the table covers.
func (t *OffsetTable) Len() int {
	return len(t.heights)
}

// TotalHeight returns the cumulative height of all rows.
func (t *OffsetTable) TotalHeight() float64 {
	return t.offsets[len(t.offsets)-1]
}

// Offset returns the cumulative height of all rows before index i. The
// index is clamped to [0, rowCount].
func (t *OffsetTable) Offset(i int) float64 {
	if i < 0 {
		i = 0
	}
	if i >= len(t.offsets) {
		i = len(t.offsets) - 1
	}
	return t.offsets[i]
}

// Height returns the current height of row i, measured or estimated.
func (t *OffsetTable) Height(i int) float64 {
	if i < 0 || i >= len(t.heights) {
		return 0
	}
	return t.heights[i]
}

// SetHeight records the measured height of row i and shifts every offset
// after it by the difference. It reports whether the stored height
// actually changed, so callers know a recompute is due when the row lies
// inside the current window. Out-of-range indices and non-positive
// heights are ignored.
func (t *OffsetTable) SetHeight(i int, height float64) bool {
	if i < 0 || i >= len(t.heights) || height <= 0 {
		return false
	}
	delta := height - t.heights[i]
	if delta == 0 {
		return false
	}
	t.heights[i] = height
	for j := i + 1; j < len(t.offsets); j++ {
		t.offsets[j] += delta
	}
	return true
}

// Window computes the minimal contiguous row range covering the viewport
// [scroll, scroll+viewportHeight), expanded by overscan rows on each side
// and clamped to the table, together with the spacer heights that stand in
// for the unrendered rows.
//
// Degenerate inputs degrade to an empty-but-valid window: zero rows or a
// non-positive viewport height yield End < Start, and negative or
// overflowing scroll offsets are clamped, never faulted on.
func (t *OffsetTable) Window(scroll, viewportHeight float64, overscan int) types.ViewportWindow {
	rowCount := len(t.heights)
	total := t.TotalHeight()
	if rowCount == 0 || viewportHeight <= 0 {
		return types.ViewportWindow{Start: 0, End: -1, TrailingSpacer: total}
	}
	if overscan < 0 {
		overscan = 0
	}
	if scroll < 0 {
		scroll = 0
	}
	if scroll > total {
		scroll = total
	}

	// The row containing the scroll offset: the largest index whose
	// cumulative offset is still <= scroll.
	rawStart := sort.Search(rowCount, func(i int) bool {
		return t.offsets[i+1] > scroll
	})
	if rawStart == rowCount {
		rawStart = rowCount - 1
	}

	// Walk forward until the viewport bottom is covered.
	bottom := scroll + viewportHeight
	rawEnd := rawStart
	for rawEnd < rowCount-1 && t.offsets[rawEnd+1] < bottom {
		rawEnd++
	}

	start := rawStart - overscan
	if start < 0 {
		start = 0
	}
	end := rawEnd + overscan
	if end > rowCount-1 {
		end = rowCount - 1
	}

	return types.ViewportWindow{
		Start:          start,
		End:            end,
		LeadingSpacer:  t.offsets[start],
		TrailingSpacer: total - t.offsets[end+1],
	}
}
