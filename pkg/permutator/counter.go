package permutator

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoLists   = errors.New("no list to permutate")
	ErrEmptyList = errors.New("list is empty")
	ErrOverflow  = errors.New("too many combinations")
)

// Counter tracks the position of each list cursor.
//
// Cursors count in mixed radix: Lens[i] is the radix of digit i, digit 0 is
// the most significant and the last digit varies fastest.
type Counter struct {
	// Current cursor of each list.
	Indexes []int
	// Length of each list.
	Lens []int
	// Index of the next combination to produce.
	Position int
	// Product of Lens.
	Total int
}

func NewCounter(lens []int) (c Counter, err error) {
	if len(lens) == 0 {
		return c, ErrNoLists
	}
	total := 1
	for i, l := range lens {
		if l <= 0 {
			return c, fmt.Errorf("list #%d: %w", i, ErrEmptyList)
		}
		if total > math.MaxInt/l {
			return c, fmt.Errorf("%d lists: %w", len(lens), ErrOverflow)
		}
		total *= l
	}

	c.Lens = make([]int, len(lens))
	copy(c.Lens, lens)
	c.Indexes = make([]int, len(lens))
	c.Total = total
	return c, nil
}

// Increment moves cursors to the next combination, starting at list last.
//
// Loops lists from right to left. A cursor reaching the end of its list is
// reset and carries to the previous list. The first cursor never wraps:
// reaching Total is what signals exhaustion.
func (c *Counter) Increment(last int) {
	for i := last; i >= 0; i-- {
		if c.Indexes[i]+1 < c.Lens[i] {
			// (0, 1, 1) -> (0, 1, 2)
			c.Indexes[i]++
			return
		}
		if i == 0 {
			return
		}
		// (0, 1, 2) -> (0, 2, 0)
		c.Indexes[i] = 0
	}
}

func (c *Counter) Reset() {
	clear(c.Indexes)
	c.Position = 0
}

// Seek overwrites position and cursors, e.g. to resume a saved enumeration.
//
// Panics if indexes does not match lists or is out of range.
func (c *Counter) Seek(position int, indexes []int) {
	if len(indexes) != len(c.Lens) {
		panic(fmt.Sprintf("permutator: got %d indexes for %d lists", len(indexes), len(c.Lens)))
	}
	if position < 0 || position > c.Total {
		panic(fmt.Sprintf("permutator: position %d out of range [0, %d]", position, c.Total))
	}
	for i, index := range indexes {
		if index < 0 || index >= c.Lens[i] {
			panic(fmt.Sprintf("permutator: index %d out of range for list #%d of length %d", index, i, c.Lens[i]))
		}
	}
	copy(c.Indexes, indexes)
	c.Position = position
}

// Decode returns the cursors of the combination at position.
//
// Position Total decodes as the last combination, as reached by Increment.
func (c Counter) Decode(position int) []int {
	if position < 0 || position > c.Total {
		panic(fmt.Sprintf("permutator: position %d out of range [0, %d]", position, c.Total))
	}
	indexes := make([]int, len(c.Lens))
	if position == c.Total {
		for i, l := range c.Lens {
			indexes[i] = l - 1
		}
		if len(c.Lens) > 1 {
			// Last increment carried up to the first list, which does not wrap.
			clear(indexes[1:])
		}
		return indexes
	}
	for i := len(c.Lens) - 1; i >= 0; i-- {
		indexes[i] = position % c.Lens[i]
		position /= c.Lens[i]
	}
	return indexes
}

func (c Counter) HasMore() bool {
	return c.Position < c.Total
}
