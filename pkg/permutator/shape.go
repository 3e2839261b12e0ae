package permutator

import (
	"fmt"

	"github.com/samber/lo"
)

// Shape abstracts the lists being permutated.
//
// C is the type of a combination: a slice for homogeneous lists, a tuple for
// heterogeneous lists. A Shape is only read by a Permutator, never written.
type Shape[C any] interface {
	// Len returns the number of lists.
	Len() int
	// Lens returns the length of each list.
	Lens() []int
	// Item allocates the combination pointed by indexes.
	Item(indexes []int) C
	// Fill writes the combination pointed by indexes in buffer.
	Fill(indexes []int, buffer *C)
}

// Repeated permutates a single list with itself.
//
// A list of N values is treated as N lists, yielding N-tuples of values drawn
// with repetition.
type Repeated[T any] []T

func (r Repeated[T]) Len() int {
	return len(r)
}

func (r Repeated[T]) Lens() []int {
	return lo.Times(len(r), func(int) int { return len(r) })
}

func (r Repeated[T]) Item(indexes []int) []T {
	out := make([]T, len(indexes))
	for i, index := range indexes {
		out[i] = r[index]
	}
	return out
}

func (r Repeated[T]) Fill(indexes []int, buffer *[]T) {
	checkBuffer(len(*buffer), len(indexes))
	for i, index := range indexes {
		(*buffer)[i] = r[index]
	}
}

// Lists permutates lists of values of the same type.
type Lists[T any] [][]T

func (l Lists[T]) Len() int {
	return len(l)
}

func (l Lists[T]) Lens() []int {
	return lo.Map(l, func(list []T, _ int) int { return len(list) })
}

func (l Lists[T]) Item(indexes []int) []T {
	out := make([]T, len(indexes))
	for i, index := range indexes {
		out[i] = l[i][index]
	}
	return out
}

func (l Lists[T]) Fill(indexes []int, buffer *[]T) {
	checkBuffer(len(*buffer), len(indexes))
	for i, index := range indexes {
		(*buffer)[i] = l[i][index]
	}
}

func checkBuffer(size, want int) {
	if size != want {
		panic(fmt.Sprintf("permutator: buffer has %d slots, want %d", size, want))
	}
}
