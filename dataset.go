package tabular

import "github.com/pkg/errors"

// Col is a named column used to construct a Dataset. Keeping columns in
// a slice preserves their order; a bare map would not.
type Col struct {
	Name  string
	Cells []Cell
}

// Dataset is a rectangular mapping of column name to an ordered
// sequence of cells. All columns have the same number of rows; the i-th
// cells across columns form the i-th row.
//
// A Dataset is a single shared mutable container: the statistics engine
// holds a read-only reference, while the preprocessing collaborators
// hold the same reference and replace, add or drop columns in place.
// Mutation through one collaborator is visible to every other holder.
// There is no internal locking; concurrent use is not supported.
type Dataset struct {
	names []string
	cols  map[string][]Cell
	rows  int
}

// New constructs a validated Dataset. It fails with ErrInvalidDataset
// when no columns are given, a name repeats, a column is empty, or the
// column lengths differ.
func New(cols ...Col) (*Dataset, error) {
	if len(cols) == 0 {
		return nil, errors.Wrap(ErrInvalidDataset, "dataset needs at least one column")
	}
	d := &Dataset{
		names: make([]string, 0, len(cols)),
		cols:  make(map[string][]Cell, len(cols)),
		rows:  len(cols[0].Cells),
	}
	if d.rows == 0 {
		return nil, errors.Wrapf(ErrInvalidDataset, "column %q is empty", cols[0].Name)
	}
	for _, c := range cols {
		if _, dup := d.cols[c.Name]; dup {
			return nil, errors.Wrapf(ErrInvalidDataset, "duplicate column %q", c.Name)
		}
		if len(c.Cells) != d.rows {
			return nil, errors.Wrapf(ErrInvalidDataset,
				"column %q has %d rows, want %d", c.Name, len(c.Cells), d.rows)
		}
		d.names = append(d.names, c.Name)
		d.cols[c.Name] = c.Cells
	}
	return d, nil
}

// newFiltered builds a dataset from a row filter result. Unlike New it
// accepts zero rows: filtering may legitimately keep nothing.
func newFiltered(names []string, cols map[string][]Cell, rows int) *Dataset {
	return &Dataset{names: names, cols: cols, rows: rows}
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.rows }

// Columns returns the column names in construction order.
func (d *Dataset) Columns() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)
	return names
}

// Has reports whether a column named name exists.
func (d *Dataset) Has(name string) bool {
	_, ok := d.cols[name]
	return ok
}

// Column returns the cells of the named column, or ErrColumnNotFound.
// The returned slice is the dataset's own storage; callers must not
// modify it and should replace columns through SetColumn instead.
func (d *Dataset) Column(name string) ([]Cell, error) {
	cells, ok := d.cols[name]
	if !ok {
		return nil, errors.Wrapf(ErrColumnNotFound, "column %q", name)
	}
	return cells, nil
}

// SetColumn replaces the contents of an existing column. The new cells
// must keep the rectangular shape.
func (d *Dataset) SetColumn(name string, cells []Cell) error {
	if _, ok := d.cols[name]; !ok {
		return errors.Wrapf(ErrColumnNotFound, "column %q", name)
	}
	if len(cells) != d.rows {
		return errors.Wrapf(ErrInvalidDataset,
			"column %q replacement has %d rows, want %d", name, len(cells), d.rows)
	}
	d.cols[name] = cells
	return nil
}

// AddColumn appends a new column. The name must be unused and the cells
// must keep the rectangular shape.
func (d *Dataset) AddColumn(name string, cells []Cell) error {
	if _, ok := d.cols[name]; ok {
		return errors.Wrapf(ErrInvalidDataset, "column %q already exists", name)
	}
	if len(cells) != d.rows {
		return errors.Wrapf(ErrInvalidDataset,
			"column %q has %d rows, want %d", name, len(cells), d.rows)
	}
	d.names = append(d.names, name)
	d.cols[name] = cells
	return nil
}

// DropColumn removes a column.
func (d *Dataset) DropColumn(name string) error {
	if _, ok := d.cols[name]; !ok {
		return errors.Wrapf(ErrColumnNotFound, "column %q", name)
	}
	delete(d.cols, name)
	for i, n := range d.names {
		if n == name {
			d.names = append(d.names[:i], d.names[i+1:]...)
			break
		}
	}
	return nil
}

// assign replaces the contents of d with those of o, in place, so that
// every holder of the shared reference sees the new rows. Used by
// DropNA.
func (d *Dataset) assign(o *Dataset) {
	d.names = o.names
	d.cols = o.cols
	d.rows = o.rows
}

// check re-verifies the rectangular invariant. The facade runs it at
// construction, mirroring validation of externally assembled data.
func (d *Dataset) check() error {
	if len(d.names) == 0 {
		return errors.Wrap(ErrInvalidDataset, "dataset needs at least one column")
	}
	for _, name := range d.names {
		if len(d.cols[name]) != d.rows {
			return errors.Wrapf(ErrInvalidDataset,
				"column %q has %d rows, want %d", name, len(d.cols[name]), d.rows)
		}
	}
	return nil
}
