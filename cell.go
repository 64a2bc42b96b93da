package tabular

import (
	"strconv"

	"github.com/pkg/errors"
)

// Kind tells which variant a Cell holds.
type Kind int

const (
	Null   Kind = iota // explicit absence marker
	Number             // 64-bit float
	Token              // categorical value
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Token:
		return "token"
	}
	return "null"
}

// Cell is a single value of a column: a number, a categorical token or
// an explicit null. The zero value is the null cell.
//
// Cell is a plain comparable struct, so cells can be compared with ==
// and used as map keys.
type Cell struct {
	kind Kind
	num  float64
	tok  string
}

// Num returns a numeric cell.
func Num(v float64) Cell { return Cell{kind: Number, num: v} }

// Tok returns a categorical cell.
func Tok(s string) Cell { return Cell{kind: Token, tok: s} }

// NA returns the null cell.
func NA() Cell { return Cell{} }

// Kind returns the variant of c.
func (c Cell) Kind() Kind { return c.kind }

// IsNull reports whether c is the absence marker.
func (c Cell) IsNull() bool { return c.kind == Null }

// IsNumber reports whether c holds a number.
func (c Cell) IsNumber() bool { return c.kind == Number }

// Float returns the numeric value of c. Meaningful for Number cells
// only; other kinds return 0.
func (c Cell) Float() float64 { return c.num }

// Token returns the categorical value of c.
func (c Cell) Token() string { return c.tok }

// String renders the cell as used in derived column names and logs.
func (c Cell) String() string {
	switch c.kind {
	case Number:
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	case Token:
		return c.tok
	}
	return "null"
}

// Compare orders two cells of the same kind and returns -1, 0 or +1.
// Cells of different kinds, and null cells, are not mutually orderable;
// comparing them fails with ErrNotComparable.
func (c Cell) Compare(o Cell) (int, error) {
	if c.kind == Null || o.kind == Null || c.kind != o.kind {
		return 0, errors.Wrapf(ErrNotComparable, "cannot order %s (%s) against %s (%s)",
			c, c.kind, o, o.kind)
	}
	if c.kind == Number {
		switch {
		case c.num < o.num:
			return -1, nil
		case c.num > o.num:
			return 1, nil
		}
		return 0, nil
	}
	switch {
	case c.tok < o.tok:
		return -1, nil
	case c.tok > o.tok:
		return 1, nil
	}
	return 0, nil
}

// totalOrder is a deterministic ordering over all cells: nulls first,
// then numbers, then tokens. It only exists so sets and tables can be
// iterated stably; it implies no semantic comparability.
func totalOrder(a, b Cell) int {
	if a.kind != b.kind {
		return int(a.kind) - int(b.kind)
	}
	if n, err := a.Compare(b); err == nil {
		return n
	}
	return 0
}
