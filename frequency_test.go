package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsoluteFrequency(t *testing.T) {
	stats := NewStats(foodDataset(t))

	table, err := stats.AbsoluteFrequency("calories")
	require.NoError(t, err)

	// First-appearance order, null counted as its own category.
	var values []Cell
	total := 0
	for _, e := range table.Entries() {
		values = append(values, e.Value)
		total += e.Count
	}
	assert.Equal(t, []Cell{Num(52), Num(89), NA(), Num(130)}, values)
	assert.Equal(t, 5, total, "counts sum to the row count, nulls included")

	n, ok := table.Count(Num(52))
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	_, ok = table.Count(Num(7))
	assert.False(t, ok)
}

func TestRelativeFrequency(t *testing.T) {
	stats := NewStats(foodDataset(t))

	table, err := stats.RelativeFrequency("category")
	require.NoError(t, err)
	sum := 0.0
	for _, e := range table.Entries() {
		sum += e.Prop
	}
	assert.InDelta(t, 1.0, sum, 1e-12, "no nulls: proportions sum to 1")

	p, ok := table.Prop(Tok("fruit"))
	assert.True(t, ok)
	assert.InDelta(t, 0.6, p, 1e-12)

	// With nulls present, non-null proportions sum to the non-null
	// fraction: the denominator is all rows.
	table, err = stats.RelativeFrequency("calories")
	require.NoError(t, err)
	sum = 0.0
	for _, e := range table.Entries() {
		if !e.Value.IsNull() {
			sum += e.Prop
		}
	}
	assert.InDelta(t, 0.8, sum, 1e-12)
}

func TestCumulativeFrequencyAbsolute(t *testing.T) {
	stats := singleColumn(t, numCol(3, 1, 2, 1, 3, 3))

	out, err := stats.CumulativeFrequency("x", Absolute)
	require.NoError(t, err)
	require.Len(t, out, 3)

	// Ascending keys, monotone running counts, final equals row count.
	assert.Equal(t, Num(1), out[0].Value)
	assert.Equal(t, 2, out[0].Count)
	assert.Equal(t, Num(2), out[1].Value)
	assert.Equal(t, 3, out[1].Count)
	assert.Equal(t, Num(3), out[2].Value)
	assert.Equal(t, 6, out[2].Count)
}

func TestCumulativeFrequencyRelative(t *testing.T) {
	stats := singleColumn(t, []Cell{Tok("b"), Tok("a"), Tok("b"), Tok("c")})

	out, err := stats.CumulativeFrequency("x", Relative)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, Tok("a"), out[0].Value)
	assert.InDelta(t, 0.25, out[0].Prop, 1e-12)
	assert.Equal(t, Tok("b"), out[1].Value)
	assert.InDelta(t, 0.75, out[1].Prop, 1e-12)
	assert.Equal(t, Tok("c"), out[2].Value)
	assert.InDelta(t, 1.0, out[2].Prop, 1e-12, "final running proportion is 1")
}

func TestCumulativeFrequencyErrors(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
		mode  CumulativeMode
		want  error
	}{
		{name: "invalid mode", cells: numCol(1, 2), mode: "median", want: ErrUnknownMethod},
		{name: "mixed kinds", cells: []Cell{Num(1), Tok("a")}, mode: Absolute, want: ErrNotComparable},
		{name: "null not orderable", cells: []Cell{Num(1), NA()}, mode: Absolute, want: ErrNotComparable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := singleColumn(t, tt.cells).CumulativeFrequency("x", tt.mode)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
