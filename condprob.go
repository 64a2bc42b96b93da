package tabular

import "github.com/pkg/errors"

// ConditionalProbability treats the column as an ordered sequence and
// estimates P(next | given): the probability that a cell equals next
// when its immediate predecessor equals given. It scans every adjacent
// index pair, counts predecessors equal to given, and among those the
// successors equal to next; the result is the ratio of the two counts.
//
// A column of fewer than two rows has no adjacent pairs and fails with
// ErrUndefined; so does a given value never observed as a predecessor,
// since the conditional probability would divide by zero.
func (s *Stats) ConditionalProbability(column string, next, given Cell) (float64, error) {
	cells, err := s.ds.Column(column)
	if err != nil {
		return 0, err
	}
	if len(cells) < 2 {
		return 0, errors.Wrapf(ErrUndefined,
			"column %q has %d rows, no consecutive pairs exist", column, len(cells))
	}
	preceding, joint := 0, 0
	for i := 0; i < len(cells)-1; i++ {
		if cells[i] != given {
			continue
		}
		preceding++
		if cells[i+1] == next {
			joint++
		}
	}
	if preceding == 0 {
		return 0, errors.Wrapf(ErrUndefined,
			"%s never precedes another value in column %q", given, column)
	}
	return float64(joint) / float64(preceding), nil
}
