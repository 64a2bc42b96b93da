package tabular

import (
	"log/slog"

	"github.com/pkg/errors"
)

// Scaler rescales the numeric cells of a shared Dataset in place.
// Non-numeric cells, nulls included, pass through unchanged, and a
// column without a single numeric cell is skipped. A degenerate column
// (zero range, zero variance) maps every numeric cell to 0.
type Scaler struct {
	ds    *Dataset
	stats *Stats
	log   *slog.Logger
}

// NewScaler returns a scaler over ds. A nil logger falls back to
// slog.Default.
func NewScaler(ds *Dataset, logger *slog.Logger) *Scaler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scaler{ds: ds, stats: NewStats(ds), log: logger}
}

func (s *Scaler) targets(columns []string) ([]string, error) {
	if len(columns) == 0 {
		return s.ds.Columns(), nil
	}
	for _, c := range columns {
		if !s.ds.Has(c) {
			return nil, errors.Wrapf(ErrColumnNotFound, "column %q", c)
		}
	}
	return columns, nil
}

// MinMax rescales each target column to [0, 1]: (x - min) / (max - min)
// over the column's numeric cells. Min and max are computed directly
// from the numeric cells, not through the statistics engine.
func (s *Scaler) MinMax(columns ...string) error {
	cols, err := s.targets(columns)
	if err != nil {
		return err
	}
	scaled := 0
	for _, c := range cols {
		cells := s.ds.cols[c]
		min, max, any := minMaxNumeric(cells)
		if !any {
			s.log.Debug("skipping column without numeric cells", slog.String("column", c))
			continue
		}
		rng := max - min
		out := make([]Cell, len(cells))
		for i, cell := range cells {
			switch {
			case !cell.IsNumber():
				out[i] = cell
			case rng == 0:
				out[i] = Num(0)
			default:
				out[i] = Num((cell.Float() - min) / rng)
			}
		}
		if err := s.ds.SetColumn(c, out); err != nil {
			return err
		}
		scaled++
	}
	s.log.Info("applied min-max scaling", slog.Int("columns", scaled))
	return nil
}

// Standard rescales each target column to z-scores: (x - mean) / stdev,
// with mean and stdev taken from the statistics engine over the
// column's null-filtered view. A column mixing numbers and tokens makes
// the engine fail with a type error.
func (s *Scaler) Standard(columns ...string) error {
	cols, err := s.targets(columns)
	if err != nil {
		return err
	}
	scaled := 0
	for _, c := range cols {
		cells := s.ds.cols[c]
		if _, _, any := minMaxNumeric(cells); !any {
			s.log.Debug("skipping column without numeric cells", slog.String("column", c))
			continue
		}
		mean, err := s.stats.Mean(c)
		if err != nil {
			return err
		}
		stdev, err := s.stats.Stdev(c)
		if err != nil {
			return err
		}
		out := make([]Cell, len(cells))
		for i, cell := range cells {
			switch {
			case !cell.IsNumber():
				out[i] = cell
			case stdev == 0:
				out[i] = Num(0)
			default:
				out[i] = Num((cell.Float() - mean) / stdev)
			}
		}
		if err := s.ds.SetColumn(c, out); err != nil {
			return err
		}
		scaled++
	}
	s.log.Info("applied standard scaling", slog.Int("columns", scaled))
	return nil
}

// minMaxNumeric returns the minimum and maximum over the numeric cells,
// and whether any numeric cell exists at all.
func minMaxNumeric(cells []Cell) (min, max float64, any bool) {
	for _, c := range cells {
		if !c.IsNumber() {
			continue
		}
		v := c.Float()
		if !any {
			min, max, any = v, v, true
			continue
		}
		if v < min {
			min = v
		} else if v > max {
			max = v
		}
	}
	return min, max, any
}
