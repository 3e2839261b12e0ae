// Package permutator enumerates the cartesian product of lists.
//
// A Permutator lazily yields one combination at a time, picking one value from
// each list. The last list varies fastest:
//
//	[1 2] x [a b] -> [1 a], [1 b], [2 a], [2 b]
//
// Lists are borrowed and never modified. Enumeration state is owned by each
// Permutator, so clones may run concurrently over the same lists.
package permutator

import (
	"fmt"
	"iter"
)

type Permutator[C any] struct {
	counter Counter
	shape   Shape[C]
	last    int
}

// New returns a Permutator over shape.
//
// Fails if there is no list, if a list is empty or if the number of
// combinations overflows int.
func New[C any](shape Shape[C]) (*Permutator[C], error) {
	counter, err := NewCounter(shape.Lens())
	if err != nil {
		return nil, err
	}
	return &Permutator[C]{
		counter: counter,
		shape:   shape,
		last:    shape.Len() - 1,
	}, nil
}

// NewRepeated permutates list with itself, len(list) times.
func NewRepeated[T any](list []T) (*Permutator[[]T], error) {
	return New[[]T](Repeated[T](list))
}

func NewLists[T any](lists ...[]T) (*Permutator[[]T], error) {
	return New[[]T](Lists[T](lists))
}

// Next returns the next combination in a new value.
//
// Returns false once all combinations have been produced.
func (p *Permutator[C]) Next() (combination C, ok bool) {
	if !p.counter.HasMore() {
		return
	}
	combination = p.shape.Item(p.counter.Indexes)
	p.advance()
	return combination, true
}

// NextInto overwrites buffer with the next combination.
//
// Use NextInto to avoid allocating a combination for each step. Get the
// first buffer from Next(), then reuse it. buffer is overwritten on each call:
// don't keep references to its previous content.
//
// Panics if buffer does not have a slot for each list.
func (p *Permutator[C]) NextInto(buffer *C) bool {
	if !p.counter.HasMore() {
		return false
	}
	p.shape.Fill(p.counter.Indexes, buffer)
	p.advance()
	return true
}

// Nth skips n combinations and returns the following one.
//
// Nth(0) is Next(). Skipped combinations are not materialized.
func (p *Permutator[C]) Nth(n int) (combination C, ok bool) {
	if n < 0 {
		panic(fmt.Sprintf("permutator: negative skip %d", n))
	}
	for ; n > 0; n-- {
		if !p.counter.HasMore() {
			return
		}
		p.advance()
	}
	return p.Next()
}

func (p *Permutator[C]) advance() {
	p.counter.Position++
	p.counter.Increment(p.last)
}

// Total returns the number of combinations.
func (p *Permutator[C]) Total() int {
	return p.counter.Total
}

// Remaining returns the number of combinations not yet produced.
func (p *Permutator[C]) Remaining() int {
	return p.counter.Total - p.counter.Position
}

// Position returns the index of the next combination and a copy of cursors.
//
// Pass these values to SetPosition to resume enumeration.
func (p *Permutator[C]) Position() (int, []int) {
	indexes := make([]int, len(p.counter.Indexes))
	copy(indexes, p.counter.Indexes)
	return p.counter.Position, indexes
}

// SetPosition restores a state returned by Position.
//
// Panics if indexes does not match lists.
func (p *Permutator[C]) SetPosition(position int, indexes []int) {
	p.counter.Seek(position, indexes)
}

// Jump moves to the combination at position, without enumerating previous
// combinations.
func (p *Permutator[C]) Jump(position int) {
	p.counter.Seek(position, p.counter.Decode(position))
}

// Reset rewinds the Permutator to the first combination.
func (p *Permutator[C]) Reset() {
	p.counter.Reset()
}

// Clone returns a Permutator with its own state, sharing the same lists.
func (p *Permutator[C]) Clone() *Permutator[C] {
	clone := *p
	clone.counter.Indexes = make([]int, len(p.counter.Indexes))
	copy(clone.counter.Indexes, p.counter.Indexes)
	return &clone
}

// All yields remaining combinations, each in a new value.
func (p *Permutator[C]) All() iter.Seq[C] {
	return func(yield func(C) bool) {
		for {
			combination, ok := p.Next()
			if !ok || !yield(combination) {
				return
			}
		}
	}
}

// Slice yields combinations from position start up to end, excluded.
//
// Slice enumerates on a clone and leaves p untouched. The returned sequence
// may be consumed in another goroutine.
func (p *Permutator[C]) Slice(start, end int) iter.Seq[C] {
	if start < 0 || end > p.counter.Total || start > end {
		panic(fmt.Sprintf("permutator: bad slice [%d:%d] of %d combinations", start, end, p.counter.Total))
	}
	clone := p.Clone()
	return func(yield func(C) bool) {
		clone.Jump(start)
		for i := start; i < end; i++ {
			combination, _ := clone.Next()
			if !yield(combination) {
				return
			}
		}
	}
}

// Range is a half-open interval of combination positions.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int {
	return r.End - r.Start
}

// Partition splits combinations in at most n contiguous ranges of even size.
func (p *Permutator[C]) Partition(n int) (ranges []Range) {
	if n <= 0 {
		panic(fmt.Sprintf("permutator: bad partition count %d", n))
	}
	total := p.counter.Total
	n = min(n, total)
	size, rest := total/n, total%n
	start := 0
	for i := range n {
		end := start + size
		if i < rest {
			end++
		}
		ranges = append(ranges, Range{Start: start, End: end})
		start = end
	}
	return
}
