package permutator_test

import (
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/dalibo/permutate/pkg/permutator"
)

var digits = []string{"1", "2", "3"}

func expectedDigits() (out [][]string) {
	for _, a := range digits {
		for _, b := range digits {
			for _, c := range digits {
				out = append(out, []string{a, b, c})
			}
		}
	}
	return
}

func collect[C any](p *permutator.Permutator[C]) (out []C) {
	for {
		combination, ok := p.Next()
		if !ok {
			return
		}
		out = append(out, combination)
	}
}

func (suite *Suite) TestOrder() {
	r := suite.Require()

	p := lo.Must(permutator.NewLists(digits, digits, digits))
	r.Equal(27, p.Total())
	all := collect(p)
	r.Equal([]string{"1", "1", "1"}, all[0])
	r.Equal([]string{"1", "1", "2"}, all[1])
	r.Equal([]string{"1", "1", "3"}, all[2])
	r.Equal([]string{"1", "2", "1"}, all[3])
	r.Equal(expectedDigits(), all)
}

func (suite *Suite) TestCount() {
	r := suite.Require()

	p := lo.Must(permutator.NewLists([]int{1, 2}, []int{1, 2, 3, 4}, []int{1, 2, 3}))
	r.Equal(24, p.Total())
	r.Len(collect(p), 24)
	r.Equal(0, p.Remaining())

	// Exhausted forever.
	for range 3 {
		_, ok := p.Next()
		r.False(ok)
		_, ok = p.Nth(0)
		r.False(ok)
	}
	var buffer []int
	r.False(p.NextInto(&buffer))
	r.Nil(buffer)
}

func (suite *Suite) TestMillion() {
	r := suite.Require()

	ten := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	p := lo.Must(permutator.NewLists(ten, ten, ten, ten, ten, ten))
	buffer, ok := p.Next()
	r.True(ok)
	count := 1
	for p.NextInto(&buffer) {
		count++
	}
	r.Equal(1_000_000, count)
	r.Equal([]string{"9", "9", "9", "9", "9", "9"}, buffer)
}

func (suite *Suite) TestMismatchedLengths() {
	r := suite.Require()

	p := lo.Must(permutator.NewLists(
		[]string{"0", "1"},
		[]string{"A", "B"},
		[]string{"a", "b", "c"},
		[]string{"_"},
	))
	all := collect(p)
	r.Len(all, 12)
	r.Equal([]string{"0", "A", "a", "_"}, all[0])
	r.Equal([]string{"0", "A", "b", "_"}, all[1])
	r.Equal([]string{"0", "B", "a", "_"}, all[3])
	r.Equal([]string{"1", "A", "a", "_"}, all[6])
	r.Equal([]string{"1", "B", "c", "_"}, all[11])
}

func (suite *Suite) TestRepeated() {
	r := suite.Require()

	repeated := lo.Must(permutator.NewRepeated(digits))
	r.Equal(27, repeated.Total())
	lists := lo.Must(permutator.NewLists(digits, digits, digits))
	r.Equal(collect(lists), collect(repeated))

	single := lo.Must(permutator.NewLists(digits))
	r.Equal([][]string{{"1"}, {"2"}, {"3"}}, collect(single))
}

func (suite *Suite) TestBufferReuse() {
	r := suite.Require()

	inputs := []*permutator.Permutator[[]string]{
		lo.Must(permutator.NewRepeated(digits)),
		lo.Must(permutator.NewLists([]string{"0", "1"}, []string{"A"}, []string{"a", "b", "c"})),
	}
	for _, p := range inputs {
		expected := collect(p.Clone())

		buffer, ok := p.Next()
		r.True(ok)
		got := [][]string{slices.Clone(buffer)}
		for p.NextInto(&buffer) {
			got = append(got, slices.Clone(buffer))
		}
		r.Equal(expected, got)
	}
}

func (suite *Suite) TestBufferSize() {
	r := suite.Require()

	p := lo.Must(permutator.NewLists(digits, digits))
	short := make([]string, 1)
	r.Panics(func() { p.NextInto(&short) })
	long := make([]string, 3)
	r.Panics(func() { p.NextInto(&long) })

	r2 := lo.Must(permutator.NewRepeated(digits))
	r.Panics(func() { r2.NextInto(&short) })
}

func (suite *Suite) TestReset() {
	r := suite.Require()

	p := lo.Must(permutator.NewRepeated(digits))
	first := collect(p)
	r.Equal(expectedDigits(), first)

	p.Reset()
	position, indexes := p.Position()
	r.Equal(0, position)
	r.Equal([]int{0, 0, 0}, indexes)
	r.Equal(first, collect(p))
}

func (suite *Suite) TestNth() {
	r := suite.Require()

	expected := expectedDigits()
	p := lo.Must(permutator.NewLists(digits, digits, digits))
	combination, ok := p.Nth(10)
	r.True(ok)
	r.Equal(expected[10], combination)
	combination, ok = p.Nth(0)
	r.True(ok)
	r.Equal(expected[11], combination)
	combination, ok = p.Next()
	r.True(ok)
	r.Equal(expected[12], combination)

	combination, ok = p.Nth(13)
	r.True(ok)
	r.Equal(expected[26], combination)
	_, ok = p.Next()
	r.False(ok)

	p.Reset()
	_, ok = p.Nth(27)
	r.False(ok)
	r.Equal(0, p.Remaining())

	r.Panics(func() { p.Nth(-1) })
}

func (suite *Suite) TestPosition() {
	r := suite.Require()

	expected := expectedDigits()
	p := lo.Must(permutator.NewLists(digits, digits, digits))
	_, _ = p.Nth(4)
	position, indexes := p.Position()
	r.Equal(5, position)
	r.Equal([]int{0, 1, 2}, indexes)

	rest := collect(p)
	r.Equal(expected[5:], rest)

	p.SetPosition(position, indexes)
	r.Equal(22, p.Remaining())
	r.Equal(rest, collect(p))

	r.Panics(func() { p.SetPosition(0, []int{0, 0}) })
	r.Panics(func() { p.SetPosition(0, []int{0, 0, 3}) })
}

func (suite *Suite) TestJump() {
	r := suite.Require()

	expected := expectedDigits()
	p := lo.Must(permutator.NewRepeated(digits))
	for _, position := range []int{26, 0, 13, 9} {
		p.Jump(position)
		combination, ok := p.Next()
		r.True(ok)
		r.Equal(expected[position], combination)
	}

	p.Jump(27)
	_, ok := p.Next()
	r.False(ok)
}

func (suite *Suite) TestAll() {
	r := suite.Require()

	p := lo.Must(permutator.NewLists(digits, digits, digits))
	var got [][]string
	for combination := range p.All() {
		got = append(got, combination)
		if len(got) == 5 {
			break
		}
	}
	r.Equal(expectedDigits()[:5], got)
	// Break stops on yielded combination.
	combination, _ := p.Next()
	r.Equal(expectedDigits()[5], combination)
}

func (suite *Suite) TestPartition() {
	r := suite.Require()

	p := lo.Must(permutator.NewLists(digits, digits, digits))
	ranges := p.Partition(4)
	r.Equal([]permutator.Range{
		{Start: 0, End: 7},
		{Start: 7, End: 14},
		{Start: 14, End: 21},
		{Start: 21, End: 27},
	}, ranges)

	r.Len(p.Partition(100), 27)
	r.Equal([]permutator.Range{{Start: 0, End: 27}}, p.Partition(1))
	r.Panics(func() { p.Partition(0) })
}

func (suite *Suite) TestSliceConcurrently() {
	r := suite.Require()

	p := lo.Must(permutator.NewRepeated(digits))
	ranges := p.Partition(4)
	chunks := make([][][]string, len(ranges))
	var wg sync.WaitGroup
	for i, rg := range ranges {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for combination := range p.Slice(rg.Start, rg.End) {
				chunks[i] = append(chunks[i], combination)
			}
		}()
	}
	wg.Wait()

	r.Equal(expectedDigits(), slices.Concat(chunks...))
	// Receiver is untouched.
	position, _ := p.Position()
	r.Equal(0, position)
	r.Panics(func() { p.Slice(3, 28) })
}

func (suite *Suite) TestErrors() {
	r := suite.Require()

	_, err := permutator.NewLists[string]()
	r.ErrorIs(err, permutator.ErrNoLists)
	_, err = permutator.NewLists([]string{"a"}, []string{})
	r.ErrorIs(err, permutator.ErrEmptyList)
	_, err = permutator.NewRepeated([]string{})
	r.ErrorIs(err, permutator.ErrNoLists)
	_, err = permutator.NewRepeated(make([]byte, 32))
	r.ErrorIs(err, permutator.ErrOverflow)
}
