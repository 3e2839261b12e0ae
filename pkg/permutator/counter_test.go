package permutator_test

import (
	"math"

	"github.com/dalibo/permutate/pkg/permutator"
)

func (suite *Suite) TestCounterErrors() {
	r := suite.Require()

	_, err := permutator.NewCounter(nil)
	r.ErrorIs(err, permutator.ErrNoLists)

	_, err = permutator.NewCounter([]int{2, 0, 3})
	r.ErrorIs(err, permutator.ErrEmptyList)
	r.ErrorContains(err, "list #1")

	_, err = permutator.NewCounter([]int{math.MaxInt / 2, 3})
	r.ErrorIs(err, permutator.ErrOverflow)
}

func (suite *Suite) TestCounterIncrement() {
	r := suite.Require()

	c, err := permutator.NewCounter([]int{2, 1, 3})
	r.Nil(err)
	r.Equal(6, c.Total)
	r.Equal([]int{0, 0, 0}, c.Indexes)

	c.Increment(2)
	r.Equal([]int{0, 0, 1}, c.Indexes)
	c.Increment(2)
	r.Equal([]int{0, 0, 2}, c.Indexes)
	// Carry over the single value list.
	c.Increment(2)
	r.Equal([]int{1, 0, 0}, c.Indexes)
	c.Increment(2)
	c.Increment(2)
	r.Equal([]int{1, 0, 2}, c.Indexes)
	// First list never wraps.
	c.Increment(2)
	r.Equal([]int{1, 0, 0}, c.Indexes)
}

func (suite *Suite) TestCounterDecode() {
	r := suite.Require()

	c, err := permutator.NewCounter([]int{3, 2, 4, 1})
	r.Nil(err)
	for position := 0; position <= c.Total; position++ {
		r.Equal(c.Indexes, c.Decode(position), "position %d", position)
		c.Position++
		c.Increment(3)
	}
	r.Panics(func() { c.Decode(c.Total + 1) })
	r.Panics(func() { c.Decode(-1) })
}

func (suite *Suite) TestCounterResetAndSeek() {
	r := suite.Require()

	c, err := permutator.NewCounter([]int{2, 3})
	r.Nil(err)
	indexes := []int{1, 2}
	c.Seek(5, indexes)
	r.Equal(5, c.Position)
	r.Equal([]int{1, 2}, c.Indexes)
	r.True(c.HasMore())

	// Seek copies indexes.
	indexes[0] = 0
	r.Equal([]int{1, 2}, c.Indexes)

	c.Reset()
	r.Equal(0, c.Position)
	r.Equal([]int{0, 0}, c.Indexes)
	r.Equal([]int{2, 3}, c.Lens)
	r.Equal(6, c.Total)

	r.Panics(func() { c.Seek(0, []int{0}) })
	r.Panics(func() { c.Seek(0, []int{0, 3}) })
	r.Panics(func() { c.Seek(7, []int{0, 0}) })

	c.Seek(6, []int{1, 0})
	r.False(c.HasMore())
}
