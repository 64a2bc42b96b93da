package tabular

import (
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteFrequencyChart renders the absolute frequency table of a column
// as a PNG bar chart and writes it to w. Bars appear in
// first-appearance order on a nominal axis, null counted as its own
// category. The dataset is only read.
func WriteFrequencyChart(w io.Writer, s *Stats, column, title string) error {
	table, err := s.AbsoluteFrequency(column)
	if err != nil {
		return err
	}

	values := make(plotter.Values, table.Len())
	labels := make([]string, table.Len())
	for i, e := range table.Entries() {
		values[i] = float64(e.Count)
		labels[i] = e.Value.String()
	}

	p, err := plot.New()
	if err != nil {
		return errors.Wrap(err, "create plot")
	}
	p.Title.Text = title
	p.Y.Label.Text = "count"

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return errors.Wrapf(err, "bar chart for column %q", column)
	}
	p.Add(bars)
	p.NominalX(labels...)

	wt, err := p.WriterTo(4*vg.Inch, 3*vg.Inch, "png")
	if err != nil {
		return errors.Wrapf(err, "render chart for column %q", column)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "write chart")
	}
	return nil
}
