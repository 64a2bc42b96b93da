package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// foodDataset is the shared fixture: five rows of food facts with one
// null in each numeric column.
func foodDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := New(
		Col{Name: "calories", Cells: []Cell{Num(52), Num(89), NA(), Num(52), Num(130)}},
		Col{Name: "price", Cells: []Cell{Num(1.2), Num(0.5), Num(2.0), Num(1.2), NA()}},
		Col{Name: "category", Cells: []Cell{Tok("fruit"), Tok("fruit"), Tok("dairy"), Tok("fruit"), Tok("grain")}},
	)
	require.NoError(t, err)
	return ds
}

func numCol(vals ...float64) []Cell {
	cells := make([]Cell, len(vals))
	for i, v := range vals {
		cells[i] = Num(v)
	}
	return cells
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		cols []Col
	}{
		{name: "no columns", cols: nil},
		{name: "empty column", cols: []Col{{Name: "a", Cells: nil}}},
		{
			name: "ragged columns",
			cols: []Col{
				{Name: "a", Cells: numCol(1, 2, 3)},
				{Name: "b", Cells: numCol(1, 2)},
			},
		},
		{
			name: "duplicate name",
			cols: []Col{
				{Name: "a", Cells: numCol(1)},
				{Name: "a", Cells: numCol(2)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cols...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDataset)
		})
	}
}

func TestDatasetAccess(t *testing.T) {
	ds := foodDataset(t)

	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, []string{"calories", "price", "category"}, ds.Columns())
	assert.True(t, ds.Has("price"))
	assert.False(t, ds.Has("vitamin"))

	cells, err := ds.Column("calories")
	require.NoError(t, err)
	assert.Len(t, cells, 5)
	assert.Equal(t, Num(52), cells[0])
	assert.True(t, cells[2].IsNull())

	_, err = ds.Column("vitamin")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestDatasetMutation(t *testing.T) {
	ds := foodDataset(t)

	require.NoError(t, ds.SetColumn("calories", numCol(1, 2, 3, 4, 5)))
	cells, err := ds.Column("calories")
	require.NoError(t, err)
	assert.Equal(t, Num(5), cells[4])

	err = ds.SetColumn("calories", numCol(1, 2))
	assert.ErrorIs(t, err, ErrInvalidDataset)
	err = ds.SetColumn("vitamin", numCol(1, 2, 3, 4, 5))
	assert.ErrorIs(t, err, ErrColumnNotFound)

	require.NoError(t, ds.AddColumn("vitamin", numCol(9, 8, 7, 6, 5)))
	assert.Equal(t, []string{"calories", "price", "category", "vitamin"}, ds.Columns())
	err = ds.AddColumn("vitamin", numCol(1, 2, 3, 4, 5))
	assert.ErrorIs(t, err, ErrInvalidDataset)

	require.NoError(t, ds.DropColumn("price"))
	assert.False(t, ds.Has("price"))
	assert.Equal(t, []string{"calories", "category", "vitamin"}, ds.Columns())
	assert.ErrorIs(t, ds.DropColumn("price"), ErrColumnNotFound)
}

// Mutation through one collaborator is visible through every holder of
// the shared reference.
func TestDatasetSharedMutation(t *testing.T) {
	ds := foodDataset(t)
	stats := NewStats(ds)
	missing := NewMissingValues(ds, nil)

	require.NoError(t, missing.DropNA())

	assert.Equal(t, 3, ds.Len())
	mean, err := stats.Mean("calories")
	require.NoError(t, err)
	assert.InDelta(t, (52.0+89.0+52.0)/3.0, mean, 1e-12)
}

func TestCellCompare(t *testing.T) {
	n, err := Num(1).Compare(Num(2))
	require.NoError(t, err)
	assert.Equal(t, -1, n)

	n, err = Tok("b").Compare(Tok("a"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = Num(1).Compare(Tok("a"))
	assert.ErrorIs(t, err, ErrNotComparable)
	_, err = NA().Compare(Num(1))
	assert.ErrorIs(t, err, ErrNotComparable)
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "1.5", Num(1.5).String())
	assert.Equal(t, "42", Num(42).String())
	assert.Equal(t, "fruit", Tok("fruit").String())
	assert.Equal(t, "null", NA().String())
}
