package tabular

import (
	"log/slog"

	"github.com/pkg/errors"
)

// FillMethod names the strategy FillNA uses to compute fill values.
type FillMethod string

const (
	FillMean    FillMethod = "mean"
	FillMedian  FillMethod = "median"
	FillMode    FillMethod = "mode"
	FillDefault FillMethod = "default_value"
)

// MissingValues filters and repairs null cells of a shared Dataset.
// FillNA and DropNA mutate the dataset in place; the mutation is
// visible to every holder of the reference.
type MissingValues struct {
	ds  *Dataset
	log *slog.Logger
}

// NewMissingValues returns a processor over ds. A nil logger falls back
// to slog.Default.
func NewMissingValues(ds *Dataset, logger *slog.Logger) *MissingValues {
	if logger == nil {
		logger = slog.Default()
	}
	return &MissingValues{ds: ds, log: logger}
}

// targets resolves the column subset: empty means every column, and any
// unknown name fails up front, before a single row is touched.
func (m *MissingValues) targets(columns []string) ([]string, error) {
	if len(columns) == 0 {
		return m.ds.Columns(), nil
	}
	for _, c := range columns {
		if !m.ds.Has(c) {
			return nil, errors.Wrapf(ErrColumnNotFound, "column %q", c)
		}
	}
	return columns, nil
}

// filterRows keeps the rows for which keep is true, across all columns.
// The result may have zero rows.
func (m *MissingValues) filterRows(keep func(row int) bool) *Dataset {
	names := m.ds.Columns()
	cols := make(map[string][]Cell, len(names))
	for _, n := range names {
		cols[n] = []Cell{}
	}
	rows := 0
	for i := 0; i < m.ds.Len(); i++ {
		if !keep(i) {
			continue
		}
		for _, n := range names {
			cols[n] = append(cols[n], m.ds.cols[n][i])
		}
		rows++
	}
	return newFiltered(names, cols, rows)
}

// IsNA returns a new dataset holding the rows with at least one null
// cell among the given columns (all columns when none are given). The
// source dataset is not modified.
func (m *MissingValues) IsNA(columns ...string) (*Dataset, error) {
	cols, err := m.targets(columns)
	if err != nil {
		return nil, err
	}
	return m.filterRows(func(row int) bool {
		for _, c := range cols {
			if m.ds.cols[c][row].IsNull() {
				return true
			}
		}
		return false
	}), nil
}

// NotNA returns a new dataset holding the rows with no null cell among
// the given columns (all columns when none are given).
func (m *MissingValues) NotNA(columns ...string) (*Dataset, error) {
	cols, err := m.targets(columns)
	if err != nil {
		return nil, err
	}
	return m.filterRows(func(row int) bool {
		for _, c := range cols {
			if m.ds.cols[c][row].IsNull() {
				return false
			}
		}
		return true
	}), nil
}

// FillNA replaces the null cells of the target columns with a value
// derived by method: the column mean, median, first mode, or the
// caller-supplied def for FillDefault. An unknown method fails with
// ErrUnknownMethod.
//
// The call is all-or-nothing: every fill value is computed, and the
// method validated, before the first column is written, so a failing
// column leaves the dataset untouched.
func (m *MissingValues) FillNA(method FillMethod, def Cell, columns ...string) error {
	cols, err := m.targets(columns)
	if err != nil {
		return err
	}
	stats := NewStats(m.ds)

	fills := make(map[string]Cell, len(cols))
	for _, c := range cols {
		switch method {
		case FillMean:
			v, err := stats.Mean(c)
			if err != nil {
				return errors.Wrapf(err, "fill value for column %q", c)
			}
			fills[c] = Num(v)
		case FillMedian:
			v, err := stats.Median(c)
			if err != nil {
				return errors.Wrapf(err, "fill value for column %q", c)
			}
			fills[c] = Num(v)
		case FillMode:
			modes, err := stats.Mode(c)
			if err != nil {
				return errors.Wrapf(err, "fill value for column %q", c)
			}
			fills[c] = modes[0]
		case FillDefault:
			fills[c] = def
		default:
			return errors.Wrapf(ErrUnknownMethod, "fill method %q", method)
		}
	}

	filled := 0
	for _, c := range cols {
		cells := m.ds.cols[c]
		out := make([]Cell, len(cells))
		for i, cell := range cells {
			if cell.IsNull() {
				out[i] = fills[c]
				filled++
			} else {
				out[i] = cell
			}
		}
		if err := m.ds.SetColumn(c, out); err != nil {
			return err
		}
	}
	m.log.Info("filled missing values",
		slog.String("method", string(method)),
		slog.Int("columns", len(cols)),
		slog.Int("cells", filled))
	return nil
}

// DropNA removes the rows with null cells in the given columns,
// replacing the shared dataset's contents in place.
func (m *MissingValues) DropNA(columns ...string) error {
	kept, err := m.NotNA(columns...)
	if err != nil {
		return err
	}
	dropped := m.ds.Len() - kept.Len()
	m.ds.assign(kept)
	m.log.Info("dropped rows with missing values",
		slog.Int("dropped", dropped),
		slog.Int("remaining", kept.Len()))
	return nil
}
