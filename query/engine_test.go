package query

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonlens/jsonlens/types"
)

func snapshot(t *testing.T, raws ...string) Snapshot {
	t.Helper()
	records := make([]types.Record, 0, len(raws))
	for _, raw := range raws {
		records = append(records, record(t, raw))
	}
	return Snapshot{Records: records, Cache: BuildCache(records)}
}

func TestRunFilterOnly(t *testing.T) {
	snap := snapshot(t, `{"age": 25}`, `{"age": 35}`, `{"age": "x"}`)
	opts := types.QueryOptions{
		Filters: []types.FilterSpec{{ID: "f", Field: "age", Operator: types.OpGreaterThan, Operand1: "30"}},
	}

	rows, err := NewEngine().Run(context.Background(), snap, opts)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(35), rows[0]["age"])
}

func TestRunSearchThenFilterThenSort(t *testing.T) {
	snap := snapshot(t,
		`{"name": "Ada", "team": "core", "age": 36}`,
		`{"name": "Grace", "team": "core", "age": 45}`,
		`{"name": "Quinn", "team": "infra", "age": 29}`,
		`{"name": "Ray", "team": "core", "age": 28}`,
	)
	opts := types.QueryOptions{
		Query:   "CORE",
		Filters: []types.FilterSpec{{ID: "f", Field: "age", Operator: types.OpLessThan, Operand1: "40"}},
		Sort:    types.SortSpec{Field: "age", Descending: true},
	}

	rows, err := NewEngine().Run(context.Background(), snap, opts)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ada", rows[0]["name"])
	assert.Equal(t, "Ray", rows[1]["name"])
}

func TestRunNoOptionsReturnsAllRowsInOrder(t *testing.T) {
	snap := snapshot(t, `{"n": 1}`, `{"n": 2}`, `{"n": 3}`)

	rows, err := NewEngine().Run(context.Background(), snap, types.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, float64(i+1), row["n"])
	}
}

func TestRunDoesNotMutateSnapshot(t *testing.T) {
	snap := snapshot(t, `{"n": 3}`, `{"n": 1}`, `{"n": 2}`)

	_, err := NewEngine().Run(context.Background(), snap, types.QueryOptions{
		Sort: types.SortSpec{Field: "n"},
	})
	require.NoError(t, err)

	// Sorting reorders the result slice, not the snapshot.
	assert.Equal(t, float64(3), snap.Records[0]["n"])
	assert.Equal(t, float64(1), snap.Records[1]["n"])
	assert.Equal(t, float64(2), snap.Records[2]["n"])
}

func TestRunIsDeterministic(t *testing.T) {
	snap := snapshot(t,
		`{"name": "b", "age": 2}`,
		`{"name": "a", "age": 2}`,
		`{"name": "c", "age": 1}`,
	)
	opts := types.QueryOptions{Sort: types.SortSpec{Field: "age"}}

	first, err := NewEngine().Run(context.Background(), snap, opts)
	require.NoError(t, err)
	second, err := NewEngine().Run(context.Background(), snap, opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Stable sort preserves original order among equal keys.
	assert.Equal(t, "c", first[0]["name"])
	assert.Equal(t, "b", first[1]["name"])
	assert.Equal(t, "a", first[2]["name"])
}

func TestRunCancelledContext(t *testing.T) {
	raws := make([]string, 0, checkEvery+1)
	for i := 0; i <= checkEvery; i++ {
		raws = append(raws, fmt.Sprintf(`{"n": %d}`, i))
	}
	snap := snapshot(t, raws...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows, err := NewEngine().Run(ctx, snap, types.QueryOptions{Query: "1"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, rows, "a cancelled run yields no partial result")
}

func TestRunEmptySnapshot(t *testing.T) {
	snap := Snapshot{Cache: BuildCache(nil)}

	rows, err := NewEngine().Run(context.Background(), snap, types.QueryOptions{
		Query: "x",
		Sort:  types.SortSpec{Field: "n"},
	})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
