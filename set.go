package tabular

import (
	"fmt"
	"sort"
	"strings"
)

// CellSet is a set of cell values.
type CellSet map[Cell]struct{}

func NewCellSet() CellSet {
	return make(CellSet)
}

func NewCellSetFrom(init []Cell) CellSet {
	s := NewCellSet()
	for _, c := range init {
		s.Add(c)
	}
	return s
}

func (s CellSet) String() string {
	var b strings.Builder
	b.WriteString("[ ")
	for _, c := range s.Elements() {
		fmt.Fprintf(&b, "%s ", c)
	}
	b.WriteString("]")
	return b.String()
}

// Add adds c to s.
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Del removes c from s.
func (s CellSet) Del(c Cell) {
	delete(s, c)
}

// Contains reports membership of c in s.
func (s CellSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Join adds all elements of t to s.
func (s CellSet) Join(t CellSet) {
	for c := range t {
		s[c] = struct{}{}
	}
}

// Intersect returns the intersection of s and t.
func (s CellSet) Intersect(t CellSet) CellSet {
	intersection := NewCellSet()
	for c := range s {
		if t.Contains(c) {
			intersection.Add(c)
		}
	}
	return intersection
}

// Remove removes all elements of t from s. (Set difference)
func (s CellSet) Remove(t CellSet) {
	for c := range t {
		delete(s, c)
	}
}

// Equals compares s to a slice t.
func (s CellSet) Equals(t []Cell) bool {
	if len(s) != len(t) {
		return false
	}
	for _, c := range t {
		if _, ok := s[c]; !ok {
			return false
		}
	}
	return true
}

// Elements returns the members of s in the deterministic total order
// (nulls, then numbers, then tokens).
func (s CellSet) Elements() []Cell {
	elems := make([]Cell, 0, len(s))
	for c := range s {
		elems = append(elems, c)
	}
	sort.Slice(elems, func(i, j int) bool {
		return totalOrder(elems[i], elems[j]) < 0
	})
	return elems
}
