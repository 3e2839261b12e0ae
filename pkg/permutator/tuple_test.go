package permutator_test

import (
	"github.com/samber/lo"

	"github.com/dalibo/permutate/pkg/permutator"
)

func (suite *Suite) TestTuple() {
	r := suite.Require()

	p := lo.Must(permutator.NewTuple3(
		[]string{"A", "B"},
		[]int{0, 1, 2},
		[]bool{false, true},
	))
	r.Equal(12, p.Total())
	all := collect(p)
	r.Len(all, 12)

	type tuple = permutator.Tuple3[string, int, bool]
	r.Equal(tuple{"A", 0, false}, all[0])
	r.Equal(tuple{"A", 0, true}, all[1])
	r.Equal(tuple{"A", 1, false}, all[2])
	r.Equal(tuple{"B", 2, false}, all[10])
	r.Equal(tuple{"B", 2, true}, all[11])

	s, i, b := all[5].Unpack()
	r.Equal("A", s)
	r.Equal(2, i)
	r.True(b)
	r.Equal([]any{"B", 0, false}, all[6].Values())
}

func (suite *Suite) TestTupleBuffer() {
	r := suite.Require()

	p := lo.Must(permutator.NewTuple2([]rune("xyz"), []float64{0.5, 1.5}))
	expected := collect(p.Clone())

	buffer, ok := p.Next()
	r.True(ok)
	got := []permutator.Tuple2[rune, float64]{buffer}
	for p.NextInto(&buffer) {
		got = append(got, buffer)
	}
	r.Equal(expected, got)
	r.Equal(permutator.Tuple2[rune, float64]{'z', 1.5}, buffer)
}

func (suite *Suite) TestTupleLargest() {
	r := suite.Require()

	two := []int{0, 1}
	p := lo.Must(permutator.NewTuple12(two, two, two, two, two, two, two, two, two, two, []string{"a"}, two))
	r.Equal(2048, p.Total())
	last, ok := p.Nth(2047)
	r.True(ok)
	r.Equal(permutator.Tuple12[int, int, int, int, int, int, int, int, int, int, string, int]{
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1, "a", 1,
	}, last)

	_, err := permutator.NewTuple2([]int{1}, []string{})
	r.ErrorIs(err, permutator.ErrEmptyList)
}
