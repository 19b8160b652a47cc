package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonlens/jsonlens/types"
)

func TestWindowUniformHeights(t *testing.T) {
	table := NewOffsetTable(100_000, 36)

	w := table.Window(3600, 720, 5)
	assert.Equal(t, 95, w.Start)
	assert.Equal(t, 124, w.End)
	assert.Equal(t, float64(95*36), w.LeadingSpacer)
	assert.Equal(t, float64(100_000*36-125*36), w.TrailingSpacer)
	assert.Equal(t, 30, w.Rows())
}

func TestWindowSpacersPreserveTotalHeight(t *testing.T) {
	table := NewOffsetTable(1000, 20)

	for _, scroll := range []float64{0, 133, 9999, 20_000} {
		w := table.Window(scroll, 300, 3)
		rendered := table.Offset(w.End+1) - table.Offset(w.Start)
		assert.Equal(t, table.TotalHeight(), w.LeadingSpacer+rendered+w.TrailingSpacer,
			"scroll %v", scroll)
	}
}

func TestWindowClampsAtEdges(t *testing.T) {
	table := NewOffsetTable(50, 10)

	// Negative scroll behaves like the top.
	top := table.Window(-500, 100, 5)
	assert.Equal(t, 0, top.Start)
	assert.Zero(t, top.LeadingSpacer)

	// Scroll past the end still yields a valid window at the bottom.
	bottom := table.Window(10_000, 100, 5)
	assert.Equal(t, 49, bottom.End)
	assert.Zero(t, bottom.TrailingSpacer)
	assert.LessOrEqual(t, bottom.Start, bottom.End)
}

func TestWindowOverscanClampedToBounds(t *testing.T) {
	table := NewOffsetTable(10, 36)

	w := table.Window(0, 36*100, 50)
	assert.Equal(t, 0, w.Start)
	assert.Equal(t, 9, w.End)
	assert.Zero(t, w.LeadingSpacer)
	assert.Zero(t, w.TrailingSpacer)
}

func TestWindowDegenerateInputs(t *testing.T) {
	empty := NewOffsetTable(0, 36)
	w := empty.Window(0, 720, 5)
	assert.True(t, w.IsEmpty())
	assert.Zero(t, w.Rows())

	table := NewOffsetTable(100, 36)
	w = table.Window(50, 0, 5)
	assert.True(t, w.IsEmpty(), "non-positive viewport height renders nothing")
	assert.Equal(t, table.TotalHeight(), w.TrailingSpacer)

	w = table.Window(50, -10, 5)
	assert.True(t, w.IsEmpty())

	// Negative overscan is treated as zero.
	w = table.Window(0, 36, -3)
	assert.Equal(t, 0, w.Start)
	assert.Equal(t, 0, w.End)
}

func TestSetHeightShiftsLaterOffsets(t *testing.T) {
	table := NewOffsetTable(5, 10)
	require.Equal(t, float64(50), table.TotalHeight())

	assert.True(t, table.SetHeight(1, 30))
	assert.Equal(t, float64(30), table.Height(1))
	assert.Equal(t, float64(10), table.Offset(1))
	assert.Equal(t, float64(40), table.Offset(2))
	assert.Equal(t, float64(70), table.TotalHeight())

	// Re-measuring to the same value reports no change.
	assert.False(t, table.SetHeight(1, 30))

	// Out-of-range and non-positive measurements are ignored.
	assert.False(t, table.SetHeight(-1, 10))
	assert.False(t, table.SetHeight(5, 10))
	assert.False(t, table.SetHeight(2, 0))
}

func TestWindowWithMeasuredHeights(t *testing.T) {
	table := NewOffsetTable(10, 10)
	// Row 0 grows tall enough to fill the whole viewport on its own.
	require.True(t, table.SetHeight(0, 100))

	w := table.Window(0, 50, 0)
	assert.Equal(t, types.ViewportWindow{Start: 0, End: 0, TrailingSpacer: 90}, w)

	// Scrolled past row 0, the window starts inside the tall row's shadow.
	w = table.Window(105, 20, 0)
	assert.Equal(t, 1, w.Start)
	assert.Equal(t, 3, w.End)
	assert.Equal(t, float64(100), w.LeadingSpacer)
}

func TestResetDiscardsMeasurements(t *testing.T) {
	table := NewOffsetTable(4, 10)
	table.SetHeight(2, 99)

	table.Reset(6)
	assert.Equal(t, 6, table.Len())
	assert.Equal(t, float64(60), table.TotalHeight())
	assert.Equal(t, float64(10), table.Height(2))

	table.Reset(-1)
	assert.Equal(t, 0, table.Len())
	assert.Zero(t, table.TotalHeight())
}
