package tabular

import (
	"log/slog"

	"github.com/pkg/errors"
)

// LabelMapping records the integer code assigned to each distinct
// non-null value of a column, for inverse lookup after encoding.
type LabelMapping map[Cell]int

// Encoder turns categorical columns of a shared Dataset into numeric
// ones, mutating the dataset in place. It computes everything it needs
// before the first write, so a failing column leaves the dataset
// untouched.
type Encoder struct {
	ds  *Dataset
	log *slog.Logger
}

// NewEncoder returns an encoder over ds. A nil logger falls back to
// slog.Default.
func NewEncoder(ds *Dataset, logger *slog.Logger) *Encoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Encoder{ds: ds, log: logger}
}

func (e *Encoder) targets(columns []string) ([]string, error) {
	if len(columns) == 0 {
		return e.ds.Columns(), nil
	}
	for _, c := range columns {
		if !e.ds.Has(c) {
			return nil, errors.Wrapf(ErrColumnNotFound, "column %q", c)
		}
	}
	return columns, nil
}

// categories returns the distinct non-null values of cells in ascending
// order. Mixing numbers and tokens fails with ErrNotComparable.
func categories(column string, cells []Cell) ([]Cell, error) {
	set := NewCellSetFrom(dropNulls(cells))
	elems := set.Elements()
	for i := 1; i < len(elems); i++ {
		if _, err := elems[0].Compare(elems[i]); err != nil {
			return nil, errors.Wrapf(err, "column %q", column)
		}
	}
	// Elements is already ordered within a single kind.
	return elems, nil
}

// Label replaces each target column with integer codes assigned by
// ascending order of the column's distinct non-null values; nulls pass
// through as nulls. The returned mapping per column recovers the
// original categories.
func (e *Encoder) Label(columns ...string) (map[string]LabelMapping, error) {
	cols, err := e.targets(columns)
	if err != nil {
		return nil, err
	}

	encoded := make(map[string][]Cell, len(cols))
	mappings := make(map[string]LabelMapping, len(cols))
	for _, c := range cols {
		cells := e.ds.cols[c]
		cats, err := categories(c, cells)
		if err != nil {
			return nil, err
		}
		codes := make(LabelMapping, len(cats))
		for i, cat := range cats {
			codes[cat] = i
		}
		out := make([]Cell, len(cells))
		for i, cell := range cells {
			if cell.IsNull() {
				out[i] = NA()
			} else {
				out[i] = Num(float64(codes[cell]))
			}
		}
		encoded[c] = out
		mappings[c] = codes
	}

	for _, c := range cols {
		if err := e.ds.SetColumn(c, encoded[c]); err != nil {
			return nil, err
		}
	}
	e.log.Info("label encoded columns", slog.Int("columns", len(cols)))
	return mappings, nil
}

// OneHot replaces each target column with one 0/1 indicator column per
// distinct non-null value, named "<column>_<value>" in ascending value
// order, and drops the original column. Rows that are null in the
// original get 0 in every indicator.
func (e *Encoder) OneHot(columns ...string) error {
	cols, err := e.targets(columns)
	if err != nil {
		return err
	}

	type indicator struct {
		name  string
		cells []Cell
	}
	plan := make(map[string][]indicator, len(cols))
	planned := make(map[string]struct{})
	for _, c := range cols {
		cells := e.ds.cols[c]
		cats, err := categories(c, cells)
		if err != nil {
			return err
		}
		inds := make([]indicator, 0, len(cats))
		for _, cat := range cats {
			name := c + "_" + cat.String()
			if _, dup := planned[name]; dup || e.ds.Has(name) {
				return errors.Wrapf(ErrInvalidDataset,
					"indicator column %q already exists", name)
			}
			planned[name] = struct{}{}
			ind := indicator{name: name, cells: make([]Cell, len(cells))}
			for i, cell := range cells {
				if cell == cat {
					ind.cells[i] = Num(1)
				} else {
					ind.cells[i] = Num(0)
				}
			}
			inds = append(inds, ind)
		}
		plan[c] = inds
	}

	added := 0
	for _, c := range cols {
		for _, ind := range plan[c] {
			if err := e.ds.AddColumn(ind.name, ind.cells); err != nil {
				return err
			}
			added++
		}
		if err := e.ds.DropColumn(c); err != nil {
			return err
		}
	}
	e.log.Info("one-hot encoded columns",
		slog.Int("columns", len(cols)),
		slog.Int("indicators", added))
	return nil
}
