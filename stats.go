package tabular

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Stats computes descriptive statistics over a Dataset. It holds a
// read-only reference to the dataset and never mutates it; results
// always reflect the dataset's current contents, including mutations
// made by preprocessing collaborators sharing the reference.
//
// Unless stated otherwise, each operation works on the null-filtered
// view of a column (its cells with absence markers removed) and fails
// with ErrNoValues when that view is empty.
type Stats struct {
	ds *Dataset
}

// NewStats returns a statistics engine over ds.
func NewStats(ds *Dataset) *Stats {
	return &Stats{ds: ds}
}

// dropNulls returns the null-filtered view of cells.
func dropNulls(cells []Cell) []Cell {
	out := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if !c.IsNull() {
			out = append(out, c)
		}
	}
	return out
}

// numericValues extracts the float values of cells, failing with
// ErrNotNumeric on the first token. Nulls are not expected here;
// callers filter them first.
func numericValues(column string, cells []Cell) ([]float64, error) {
	vals := make([]float64, len(cells))
	for i, c := range cells {
		if !c.IsNumber() {
			return nil, errors.Wrapf(ErrNotNumeric,
				"column %q contains %s %q", column, c.Kind(), c)
		}
		vals[i] = c.Float()
	}
	return vals, nil
}

// valid returns the null-filtered view of a column, or ErrColumnNotFound
// / ErrNoValues.
func (s *Stats) valid(column string) ([]Cell, error) {
	cells, err := s.ds.Column(column)
	if err != nil {
		return nil, err
	}
	view := dropNulls(cells)
	if len(view) == 0 {
		return nil, errors.Wrapf(ErrNoValues, "column %q has no non-null values", column)
	}
	return view, nil
}

// Mean returns the arithmetic mean of the null-filtered view.
func (s *Stats) Mean(column string) (float64, error) {
	view, err := s.valid(column)
	if err != nil {
		return 0, err
	}
	vals, err := numericValues(column, view)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals)), nil
}

// Median returns the central value of the null-filtered view sorted
// ascending; for an even count, the average of the two central values.
// All non-null values must be numeric.
func (s *Stats) Median(column string) (float64, error) {
	view, err := s.valid(column)
	if err != nil {
		return 0, err
	}
	vals, err := numericValues(column, view)
	if err != nil {
		return 0, err
	}
	sort.Float64s(vals)
	mid := len(vals) / 2
	if len(vals)%2 == 0 {
		return (vals[mid-1] + vals[mid]) / 2, nil
	}
	return vals[mid], nil
}

// Mode returns every value tied at the maximum occurrence count in the
// null-filtered view, in first-appearance order. A column may be
// multimodal, so the result is a list.
func (s *Stats) Mode(column string) ([]Cell, error) {
	view, err := s.valid(column)
	if err != nil {
		return nil, err
	}
	table := tally(view)
	max := 0
	for _, e := range table.entries {
		if e.Count > max {
			max = e.Count
		}
	}
	var modes []Cell
	for _, e := range table.entries {
		if e.Count == max {
			modes = append(modes, e.Value)
		}
	}
	return modes, nil
}

// Variance returns the population variance (denominator N) of the
// null-filtered view. Mean and deviation sum use the same view.
func (s *Stats) Variance(column string) (float64, error) {
	view, err := s.valid(column)
	if err != nil {
		return 0, err
	}
	vals, err := numericValues(column, view)
	if err != nil {
		return 0, err
	}
	mean := 0.0
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))
	sum := 0.0
	for _, v := range vals {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(vals)), nil
}

// Stdev returns the population standard deviation of the column.
func (s *Stats) Stdev(column string) (float64, error) {
	v, err := s.Variance(column)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Covariance returns the population covariance of two columns over the
// index-aligned pairs where both cells are numeric and non-null. The
// same pair set feeds the emptiness check, both means, the deviation
// products and the denominator, so Covariance(c, c) equals Variance(c).
func (s *Stats) Covariance(columnA, columnB string) (float64, error) {
	a, err := s.ds.Column(columnA)
	if err != nil {
		return 0, err
	}
	b, err := s.ds.Column(columnB)
	if err != nil {
		return 0, err
	}
	var xs, ys []float64
	for i := range a {
		if a[i].IsNumber() && b[i].IsNumber() {
			xs = append(xs, a[i].Float())
			ys = append(ys, b[i].Float())
		}
	}
	if len(xs) == 0 {
		return 0, errors.Wrapf(ErrNoValues,
			"no valid pairs between columns %q and %q", columnA, columnB)
	}
	n := float64(len(xs))
	meanX, meanY := 0.0, 0.0
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= n
	meanY /= n
	sum := 0.0
	for i := range xs {
		sum += (xs[i] - meanX) * (ys[i] - meanY)
	}
	return sum / n, nil
}

// Itemset returns the set of distinct values in the column, nulls
// included. It fails with ErrNoValues only when the column has zero
// rows (possible on row-filter results).
func (s *Stats) Itemset(column string) (CellSet, error) {
	cells, err := s.ds.Column(column)
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, errors.Wrapf(ErrNoValues, "column %q is empty", column)
	}
	return NewCellSetFrom(cells), nil
}
