package tabular

import (
	"sort"

	"github.com/pkg/errors"
)

// FrequencyEntry is one distinct value of a column with its occurrence
// count and, for relative tables, its proportion of all rows.
type FrequencyEntry struct {
	Value Cell
	Count int
	Prop  float64
}

// FrequencyTable lists the distinct values of a column in
// first-appearance order. Nulls count as a category of their own.
type FrequencyTable struct {
	entries []FrequencyEntry
	index   map[Cell]int
}

// Len returns the number of distinct values.
func (t *FrequencyTable) Len() int { return len(t.entries) }

// Entries returns the table rows in first-appearance order. The slice
// is the table's own storage.
func (t *FrequencyTable) Entries() []FrequencyEntry { return t.entries }

// Count returns the occurrence count of value.
func (t *FrequencyTable) Count(value Cell) (int, bool) {
	i, ok := t.index[value]
	if !ok {
		return 0, false
	}
	return t.entries[i].Count, true
}

// Prop returns the proportion of value. Zero on absolute tables.
func (t *FrequencyTable) Prop(value Cell) (float64, bool) {
	i, ok := t.index[value]
	if !ok {
		return 0, false
	}
	return t.entries[i].Prop, true
}

// tally counts distinct cells in first-appearance order.
func tally(cells []Cell) *FrequencyTable {
	t := &FrequencyTable{index: make(map[Cell]int)}
	for _, c := range cells {
		i, seen := t.index[c]
		if !seen {
			t.index[c] = len(t.entries)
			t.entries = append(t.entries, FrequencyEntry{Value: c})
			i = len(t.entries) - 1
		}
		t.entries[i].Count++
	}
	return t
}

// AbsoluteFrequency maps each distinct value of the column, nulls
// included, to its occurrence count. It fails with ErrNoValues on a
// zero-row column.
func (s *Stats) AbsoluteFrequency(column string) (*FrequencyTable, error) {
	cells, err := s.ds.Column(column)
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, errors.Wrapf(ErrNoValues, "column %q is empty", column)
	}
	return tally(cells), nil
}

// RelativeFrequency maps each distinct value to count divided by the
// total row count. The denominator deliberately includes null rows:
// proportions are of all rows, not only valid ones, so they sum to the
// non-null fraction when nulls are present.
func (s *Stats) RelativeFrequency(column string) (*FrequencyTable, error) {
	t, err := s.AbsoluteFrequency(column)
	if err != nil {
		return nil, err
	}
	total := float64(s.ds.Len())
	for i := range t.entries {
		t.entries[i].Prop = float64(t.entries[i].Count) / total
	}
	return t, nil
}

// CumulativeMode selects the frequency measure accumulated by
// CumulativeFrequency.
type CumulativeMode string

const (
	Absolute CumulativeMode = "absolute"
	Relative CumulativeMode = "relative"
)

// CumulativeEntry is one distinct value with the running total of all
// values up to and including it, in ascending value order. Count is the
// running count in absolute mode, Prop the running proportion in
// relative mode.
type CumulativeEntry struct {
	Value Cell
	Count int
	Prop  float64
}

// CumulativeFrequency computes the chosen frequency table, sorts the
// distinct values ascending, and emits the running sum per value. The
// distinct values must be mutually orderable: a column mixing numbers
// and tokens, or containing nulls, fails with ErrNotComparable. An
// unknown mode fails with ErrUnknownMethod.
func (s *Stats) CumulativeFrequency(column string, mode CumulativeMode) ([]CumulativeEntry, error) {
	if mode != Absolute && mode != Relative {
		return nil, errors.Wrapf(ErrUnknownMethod, "cumulative frequency mode %q", mode)
	}
	var (
		t   *FrequencyTable
		err error
	)
	if mode == Absolute {
		t, err = s.AbsoluteFrequency(column)
	} else {
		t, err = s.RelativeFrequency(column)
	}
	if err != nil {
		return nil, err
	}

	out := make([]CumulativeEntry, len(t.entries))
	for i, e := range t.entries {
		out[i] = CumulativeEntry{Value: e.Value, Count: e.Count, Prop: e.Prop}
	}
	if err := sortCells(column, out); err != nil {
		return nil, err
	}

	count := 0
	prop := 0.0
	for i := range out {
		count += out[i].Count
		prop += out[i].Prop
		out[i].Count = count
		out[i].Prop = prop
	}
	return out, nil
}

// sortCells sorts entries ascending by value under the strict same-kind
// ordering, failing before sorting when any two values are not mutually
// orderable.
func sortCells(column string, entries []CumulativeEntry) error {
	for i := 1; i < len(entries); i++ {
		if _, err := entries[0].Value.Compare(entries[i].Value); err != nil {
			return errors.Wrapf(err, "column %q", column)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		n, _ := entries[i].Value.Compare(entries[j].Value)
		return n < 0
	})
	return nil
}
