package permutator

// Heterogeneous lists of fixed arity. Each list has its own value type and each
// combination is a tuple of matching types.

// Tuple2 is a combination of Lists2.
type Tuple2[T0, T1 any] struct {
	V0 T0
	V1 T1
}

func (t Tuple2[T0, T1]) Unpack() (T0, T1) {
	return t.V0, t.V1
}

func (t Tuple2[T0, T1]) Values() []any {
	return []any{t.V0, t.V1}
}

type Lists2[T0, T1 any] struct {
	L0 []T0
	L1 []T1
}

func (l Lists2[T0, T1]) Len() int {
	return 2
}

func (l Lists2[T0, T1]) Lens() []int {
	return []int{len(l.L0), len(l.L1)}
}

func (l Lists2[T0, T1]) Item(indexes []int) Tuple2[T0, T1] {
	return Tuple2[T0, T1]{
		l.L0[indexes[0]],
		l.L1[indexes[1]],
	}
}

func (l Lists2[T0, T1]) Fill(indexes []int, buffer *Tuple2[T0, T1]) {
	buffer.V0 = l.L0[indexes[0]]
	buffer.V1 = l.L1[indexes[1]]
}

func NewTuple2[T0, T1 any](l0 []T0, l1 []T1) (*Permutator[Tuple2[T0, T1]], error) {
	return New[Tuple2[T0, T1]](Lists2[T0, T1]{l0, l1})
}

// Tuple3 is a combination of Lists3.
type Tuple3[T0, T1, T2 any] struct {
	V0 T0
	V1 T1
	V2 T2
}

func (t Tuple3[T0, T1, T2]) Unpack() (T0, T1, T2) {
	return t.V0, t.V1, t.V2
}

func (t Tuple3[T0, T1, T2]) Values() []any {
	return []any{t.V0, t.V1, t.V2}
}

type Lists3[T0, T1, T2 any] struct {
	L0 []T0
	L1 []T1
	L2 []T2
}

func (l Lists3[T0, T1, T2]) Len() int {
	return 3
}

func (l Lists3[T0, T1, T2]) Lens() []int {
	return []int{len(l.L0), len(l.L1), len(l.L2)}
}

func (l Lists3[T0, T1, T2]) Item(indexes []int) Tuple3[T0, T1, T2] {
	return Tuple3[T0, T1, T2]{
		l.L0[indexes[0]],
		l.L1[indexes[1]],
		l.L2[indexes[2]],
	}
}

func (l Lists3[T0, T1, T2]) Fill(indexes []int, buffer *Tuple3[T0, T1, T2]) {
	buffer.V0 = l.L0[indexes[0]]
	buffer.V1 = l.L1[indexes[1]]
	buffer.V2 = l.L2[indexes[2]]
}

func NewTuple3[T0, T1, T2 any](l0 []T0, l1 []T1, l2 []T2) (*Permutator[Tuple3[T0, T1, T2]], error) {
	return New[Tuple3[T0, T1, T2]](Lists3[T0, T1, T2]{l0, l1, l2})
}

// Tuple4 is a combination of Lists4.
type Tuple4[T0, T1, T2, T3 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
}

func (t Tuple4[T0, T1, T2, T3]) Unpack() (T0, T1, T2, T3) {
	return t.V0, t.V1, t.V2, t.V3
}

func (t Tuple4[T0, T1, T2, T3]) Values() []any {
	return []any{t.V0, t.V1, t.V2, t.V3}
}

type Lists4[T0, T1, T2, T3 any] struct {
	L0 []T0
	L1 []T1
	L2 []T2
	L3 []T3
}

func (l Lists4[T0, T1, T2, T3]) Len() int {
	return 4
}

func (l Lists4[T0, T1, T2, T3]) Lens() []int {
	return []int{len(l.L0), len(l.L1), len(l.L2), len(l.L3)}
}

func (l Lists4[T0, T1, T2, T3]) Item(indexes []int) Tuple4[T0, T1, T2, T3] {
	return Tuple4[T0, T1, T2, T3]{
		l.L0[indexes[0]],
		l.L1[indexes[1]],
		l.L2[indexes[2]],
		l.L3[indexes[3]],
	}
}

func (l Lists4[T0, T1, T2, T3]) Fill(indexes []int, buffer *Tuple4[T0, T1, T2, T3]) {
	buffer.V0 = l.L0[indexes[0]]
	buffer.V1 = l.L1[indexes[1]]
	buffer.V2 = l.L2[indexes[2]]
	buffer.V3 = l.L3[indexes[3]]
}

func NewTuple4[T0, T1, T2, T3 any](l0 []T0, l1 []T1, l2 []T2, l3 []T3) (*Permutator[Tuple4[T0, T1, T2, T3]], error) {
	return New[Tuple4[T0, T1, T2, T3]](Lists4[T0, T1, T2, T3]{l0, l1, l2, l3})
}

// Tuple5 is a combination of Lists5.
type Tuple5[T0, T1, T2, T3, T4 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

func (t Tuple5[T0, T1, T2, T3, T4]) Unpack() (T0, T1, T2, T3, T4) {
	return t.V0, t.V1, t.V2, t.V3, t.V4
}

func (t Tuple5[T0, T1, T2, T3, T4]) Values() []any {
	return []any{t.V0, t.V1, t.V2, t.V3, t.V4}
}

type Lists5[T0, T1, T2, T3, T4 any] struct {
	L0 []T0
	L1 []T1
	L2 []T2
	L3 []T3
	L4 []T4
}

func (l Lists5[T0, T1, T2, T3, T4]) Len() int {
	return 5
}

func (l Lists5[T0, T1, T2, T3, T4]) Lens() []int {
	return []int{len(l.L0), len(l.L1), len(l.L2), len(l.L3), len(l.L4)}
}

func (l Lists5[T0, T1, T2, T3, T4]) Item(indexes []int) Tuple5[T0, T1, T2, T3, T4] {
	return Tuple5[T0, T1, T2, T3, T4]{
		l.L0[indexes[0]],
		l.L1[indexes[1]],
		l.L2[indexes[2]],
		l.L3[indexes[3]],
		l.L4[indexes[4]],
	}
}

func (l Lists5[T0, T1, T2, T3, T4]) Fill(indexes []int, buffer *Tuple5[T0, T1, T2, T3, T4]) {
	buffer.V0 = l.L0[indexes[0]]
	buffer.V1 = l.L1[indexes[1]]
	buffer.V2 = l.L2[indexes[2]]
	buffer.V3 = l.L3[indexes[3]]
	buffer.V4 = l.L4[indexes[4]]
}

func NewTuple5[T0, T1, T2, T3, T4 any](l0 []T0, l1 []T1, l2 []T2, l3 []T3, l4 []T4) (*Permutator[Tuple5[T0, T1, T2, T3, T4]], error) {
	return New[Tuple5[T0, T1, T2, T3, T4]](Lists5[T0, T1, T2, T3, T4]{l0, l1, l2, l3, l4})
}

// Tuple6 is a combination of Lists6.
type Tuple6[T0, T1, T2, T3, T4, T5 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

func (t Tuple6[T0, T1, T2, T3, T4, T5]) Unpack() (T0, T1, T2, T3, T4, T5) {
	return t.V0, t.V1, t.V2, t.V3, t.V4, t.V5
}

func (t Tuple6[T0, T1, T2, T3, T4, T5]) Values() []any {
	return []any{t.V0, t.V1, t.V2, t.V3, t.V4, t.V5}
}

type Lists6[T0, T1, T2, T3, T4, T5 any] struct {
	L0 []T0
	L1 []T1
	L2 []T2
	L3 []T3
	L4 []T4
	L5 []T5
}

func (l Lists6[T0, T1, T2, T3, T4, T5]) Len() int {
	return 6
}

func (l Lists6[T0, T1, T2, T3, T4, T5]) Lens() []int {
	return []int{len(l.L0), len(l.L1), len(l.L2), len(l.L3), len(l.L4), len(l.L5)}
}

func (l Lists6[T0, T1, T2, T3, T4, T5]) Item(indexes []int) Tuple6[T0, T1, T2, T3, T4, T5] {
	return Tuple6[T0, T1, T2, T3, T4, T5]{
		l.L0[indexes[0]],
		l.L1[indexes[1]],
		l.L2[indexes[2]],
		l.L3[indexes[3]],
		l.L4[indexes[4]],
		l.L5[indexes[5]],
	}
}

func (l Lists6[T0, T1, T2, T3, T4, T5]) Fill(indexes []int, buffer *Tuple6[T0, T1, T2, T3, T4, T5]) {
	buffer.V0 = l.L0[indexes[0]]
	buffer.V1 = l.L1[indexes[1]]
	buffer.V2 = l.L2[indexes[2]]
	buffer.V3 = l.L3[indexes[3]]
	buffer.V4 = l.L4[indexes[4]]
	buffer.V5 = l.L5[indexes[5]]
}

func NewTuple6[T0, T1, T2, T3, T4, T5 any](l0 []T0, l1 []T1, l2 []T2, l3 []T3, l4 []T4, l5 []T5) (*Permutator[Tuple6[T0, T1, T2, T3, T4, T5]], error) {
	return New[Tuple6[T0, T1, T2, T3, T4, T5]](Lists6[T0, T1, T2, T3, T4, T5]{l0, l1, l2, l3, l4, l5})
}

// Tuple7 is a combination of Lists7.
type Tuple7[T0, T1, T2, T3, T4, T5, T6 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

func (t Tuple7[T0, T1, T2, T3, T4, T5, T6]) Unpack() (T0, T1, T2, T3, T4, T5, T6) {
	return t.V0, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6
}

func (t Tuple7[T0, T1, T2, T3, T4, T5, T6]) Values() []any {
	return []any{t.V0, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6}
}

type Lists7[T0, T1, T2, T3, T4, T5, T6 any] struct {
	L0 []T0
	L1 []T1
	L2 []T2
	L3 []T3
	L4 []T4
	L5 []T5
	L6 []T6
}

func (l Lists7[T0, T1, T2, T3, T4, T5, T6]) Len() int {
	return 7
}

func (l Lists7[T0, T1, T2, T3, T4, T5, T6]) Lens() []int {
	return []int{len(l.L0), len(l.L1), len(l.L2), len(l.L3), len(l.L4), len(l.L5), len(l.L6)}
}

func (l Lists7[T0, T1, T2, T3, T4, T5, T6]) Item(indexes []int) Tuple7[T0, T1, T2, T3, T4, T5, T6] {
	return Tuple7[T0, T1, T2, T3, T4, T5, T6]{
		l.L0[indexes[0]],
		l.L1[indexes[1]],
		l.L2[indexes[2]],
		l.L3[indexes[3]],
		l.L4[indexes[4]],
		l.L5[indexes[5]],
		l.L6[indexes[6]],
	}
}

func (l Lists7[T0, T1, T2, T3, T4, T5, T6]) Fill(indexes []int, buffer *Tuple7[T0, T1, T2, T3, T4, T5, T6]) {
	buffer.V0 = l.L0[indexes[0]]
	buffer.V1 = l.L1[indexes[1]]
	buffer.V2 = l.L2[indexes[2]]
	buffer.V3 = l.L3[indexes[3]]
	buffer.V4 = l.L4[indexes[4]]
	buffer.V5 = l.L5[indexes[5]]
	buffer.V6 = l.L6[indexes[6]]
}

func NewTuple7[T0, T1, T2, T3, T4, T5, T6 any](l0 []T0, l1 []T1, l2 []T2, l3 []T3, l4 []T4, l5 []T5, l6 []T6) (*Permutator[Tuple7[T0, T1, T2, T3, T4, T5, T6]], error) {
	return New[Tuple7[T0, T1, T2, T3, T4, T5, T6]](Lists7[T0, T1, T2, T3, T4, T5, T6]{l0, l1, l2, l3, l4, l5, l6})
}

// Tuple8 is a combination of Lists8.
type Tuple8[T0, T1, T2, T3, T4, T5, T6, T7 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
}

func (t Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]) Unpack() (T0, T1, T2, T3, T4, T5, T6, T7) {
	return t.V0, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7
}

func (t Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]) Values() []any {
	return []any{t.V0, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7}
}

type Lists8[T0, T1, T2, T3, T4, T5, T6, T7 any] struct {
	L0 []T0
	L1 []T1
	L2 []T2
	L3 []T3
	L4 []T4
	L5 []T5
	L6 []T6
	L7 []T7
}

func (l Lists8[T0, T1, T2, T3, T4, T5, T6, T7]) Len() int {
	return 8
}

func (l Lists8[T0, T1, T2, T3, T4, T5, T6, T7]) Lens() []int {
	return []int{len(l.L0), len(l.L1), len(l.L2), len(l.L3), len(l.L4), len(l.L5), len(l.L6), len(l.L7)}
}

func (l Lists8[T0, T1, T2, T3, T4, T5, T6, T7]) Item(indexes []int) Tuple8[T0, T1, T2, T3, T4, T5, T6, T7] {
	return Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]{
		l.L0[indexes[0]],
		l.L1[indexes[1]],
		l.L2[indexes[2]],
		l.L3[indexes[3]],
		l.L4[indexes[4]],
		l.L5[indexes[5]],
		l.L6[indexes[6]],
		l.L7[indexes[7]],
	}
}

func (l Lists8[T0, T1, T2, T3, T4, T5, T6, T7]) Fill(indexes []int, buffer *Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]) {
	buffer.V0 = l.L0[indexes[0]]
	buffer.V1 = l.L1[indexes[1]]
	buffer.V2 = l.L2[indexes[2]]
	buffer.V3 = l.L3[indexes[3]]
	buffer.V4 = l.L4[indexes[4]]
	buffer.V5 = l.L5[indexes[5]]
	buffer.V6 = l.L6[indexes[6]]
	buffer.V7 = l.L7[indexes[7]]
}

func NewTuple8[T0, T1, T2, T3, T4, T5, T6, T7 any](l0 []T0, l1 []T1, l2 []T2, l3 []T3, l4 []T4, l5 []T5, l6 []T6, l7 []T7) (*Permutator[Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]], error) {
	return New[Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]](Lists8[T0, T1, T2, T3, T4, T5, T6, T7]{l0, l1, l2, l3, l4, l5, l6, l7})
}

// Tuple9 is a combination of Lists9.
type Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
}

func (t Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]) Unpack() (T0, T1, T2, T3, T4, T5, T6, T7, T8) {
	return t.V0, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8
}

func (t Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]) Values() []any {
	return []any{t.V0, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8}
}

type Lists9[T0, T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	L0 []T0
	L1 []T1
	L2 []T2
	L3 []T3
	L4 []T4
	L5 []T5
	L6 []T6
	L7 []T7
	L8 []T8
}

func (l Lists9[T0, T1, T2, T3, T4, T5, T6, T7, T8]) Len() int {
	return 9
}

func (l Lists9[T0, T1, T2, T3, T4, T5, T6, T7, T8]) Lens() []int {
	return []int{len(l.L0), len(l.L1), len(l.L2), len(l.L3), len(l.L4), len(l.L5), len(l.L6), len(l.L7), len(l.L8)}
}

func (l Lists9[T0, T1, T2, T3, T4, T5, T6, T7, T8]) Item(indexes []int) Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8] {
	return Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]{
		l.L0[indexes[0]],
		l.L1[indexes[1]],
		l.L2[indexes[2]],
		l.L3[indexes[3]],
		l.L4[indexes[4]],
		l.L5[indexes[5]],
		l.L6[indexes[6]],
		l.L7[indexes[7]],
		l.L8[indexes[8]],
	}
}

func (l Lists9[T0, T1, T2, T3, T4, T5, T6, T7, T8]) Fill(indexes []int, buffer *Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]) {
	buffer.V0 = l.L0[indexes[0]]
	buffer.V1 = l.L1[indexes[1]]
	buffer.V2 = l.L2[indexes[2]]
	buffer.V3 = l.L3[indexes[3]]
	buffer.V4 = l.L4[indexes[4]]
	buffer.V5 = l.L5[indexes[5]]
	buffer.V6 = l.L6[indexes[6]]
	buffer.V7 = l.L7[indexes[7]]
	buffer.V8 = l.L8[indexes[8]]
}

func NewTuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8 any](l0 []T0, l1 []T1, l2 []T2, l3 []T3, l4 []T4, l5 []T5, l6 []T6, l7 []T7, l8 []T8) (*Permutator[Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]], error) {
	return New[Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]](Lists9[T0, T1, T2, T3, T4, T5, T6, T7, T8]{l0, l1, l2, l3, l4, l5, l6, l7, l8})
}

// Tuple10 is a combination of Lists10.
type Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
	V9 T9
}

func (t Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]) Unpack() (T0, T1, T2, T3, T4, T5, T6, T7, T8, T9) {
	return t.V0, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9
}

func (t Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]) Values() []any {
	return []any{t.V0, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9}
}

type Lists10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	L0 []T0
	L1 []T1
	L2 []T2
	L3 []T3
	L4 []T4
	L5 []T5
	L6 []T6
	L7 []T7
	L8 []T8
	L9 []T9
}

func (l Lists10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]) Len() int {
	return 10
}

func (l Lists10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]) Lens() []int {
	return []int{len(l.L0), len(l.L1), len(l.L2), len(l.L3), len(l.L4), len(l.L5), len(l.L6), len(l.L7), len(l.L8), len(l.L9)}
}

func (l Lists10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]) Item(indexes []int) Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9] {
	return Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]{
		l.L0[indexes[0]],
		l.L1[indexes[1]],
		l.L2[indexes[2]],
		l.L3[indexes[3]],
		l.L4[indexes[4]],
		l.L5[indexes[5]],
		l.L6[indexes[6]],
		l.L7[indexes[7]],
		l.L8[indexes[8]],
		l.L9[indexes[9]],
	}
}

func (l Lists10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]) Fill(indexes []int, buffer *Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]) {
	buffer.V0 = l.L0[indexes[0]]
	buffer.V1 = l.L1[indexes[1]]
	buffer.V2 = l.L2[indexes[2]]
	buffer.V3 = l.L3[indexes[3]]
	buffer.V4 = l.L4[indexes[4]]
	buffer.V5 = l.L5[indexes[5]]
	buffer.V6 = l.L6[indexes[6]]
	buffer.V7 = l.L7[indexes[7]]
	buffer.V8 = l.L8[indexes[8]]
	buffer.V9 = l.L9[indexes[9]]
}

func NewTuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9 any](l0 []T0, l1 []T1, l2 []T2, l3 []T3, l4 []T4, l5 []T5, l6 []T6, l7 []T7, l8 []T8, l9 []T9) (*Permutator[Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]], error) {
	return New[Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]](Lists10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]{l0, l1, l2, l3, l4, l5, l6, l7, l8, l9})
}

// Tuple11 is a combination of Lists11.
type Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] struct {
	V0  T0
	V1  T1
	V2  T2
	V3  T3
	V4  T4
	V5  T5
	V6  T6
	V7  T7
	V8  T8
	V9  T9
	V10 T10
}

func (t Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Unpack() (T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10) {
	return t.V0, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9, t.V10
}

func (t Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Values() []any {
	return []any{t.V0, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9, t.V10}
}

type Lists11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] struct {
	L0  []T0
	L1  []T1
	L2  []T2
	L3  []T3
	L4  []T4
	L5  []T5
	L6  []T6
	L7  []T7
	L8  []T8
	L9  []T9
	L10 []T10
}

func (l Lists11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Len() int {
	return 11
}

func (l Lists11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Lens() []int {
	return []int{len(l.L0), len(l.L1), len(l.L2), len(l.L3), len(l.L4), len(l.L5), len(l.L6), len(l.L7), len(l.L8), len(l.L9), len(l.L10)}
}

func (l Lists11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Item(indexes []int) Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10] {
	return Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{
		l.L0[indexes[0]],
		l.L1[indexes[1]],
		l.L2[indexes[2]],
		l.L3[indexes[3]],
		l.L4[indexes[4]],
		l.L5[indexes[5]],
		l.L6[indexes[6]],
		l.L7[indexes[7]],
		l.L8[indexes[8]],
		l.L9[indexes[9]],
		l.L10[indexes[10]],
	}
}

func (l Lists11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Fill(indexes []int, buffer *Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) {
	buffer.V0 = l.L0[indexes[0]]
	buffer.V1 = l.L1[indexes[1]]
	buffer.V2 = l.L2[indexes[2]]
	buffer.V3 = l.L3[indexes[3]]
	buffer.V4 = l.L4[indexes[4]]
	buffer.V5 = l.L5[indexes[5]]
	buffer.V6 = l.L6[indexes[6]]
	buffer.V7 = l.L7[indexes[7]]
	buffer.V8 = l.L8[indexes[8]]
	buffer.V9 = l.L9[indexes[9]]
	buffer.V10 = l.L10[indexes[10]]
}

func NewTuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](l0 []T0, l1 []T1, l2 []T2, l3 []T3, l4 []T4, l5 []T5, l6 []T6, l7 []T7, l8 []T8, l9 []T9, l10 []T10) (*Permutator[Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]], error) {
	return New[Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]](Lists11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{l0, l1, l2, l3, l4, l5, l6, l7, l8, l9, l10})
}

// Tuple12 is a combination of Lists12.
type Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any] struct {
	V0  T0
	V1  T1
	V2  T2
	V3  T3
	V4  T4
	V5  T5
	V6  T6
	V7  T7
	V8  T8
	V9  T9
	V10 T10
	V11 T11
}

func (t Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]) Unpack() (T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11) {
	return t.V0, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9, t.V10, t.V11
}

func (t Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]) Values() []any {
	return []any{t.V0, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9, t.V10, t.V11}
}

type Lists12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any] struct {
	L0  []T0
	L1  []T1
	L2  []T2
	L3  []T3
	L4  []T4
	L5  []T5
	L6  []T6
	L7  []T7
	L8  []T8
	L9  []T9
	L10 []T10
	L11 []T11
}

func (l Lists12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]) Len() int {
	return 12
}

func (l Lists12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]) Lens() []int {
	return []int{len(l.L0), len(l.L1), len(l.L2), len(l.L3), len(l.L4), len(l.L5), len(l.L6), len(l.L7), len(l.L8), len(l.L9), len(l.L10), len(l.L11)}
}

func (l Lists12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]) Item(indexes []int) Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11] {
	return Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{
		l.L0[indexes[0]],
		l.L1[indexes[1]],
		l.L2[indexes[2]],
		l.L3[indexes[3]],
		l.L4[indexes[4]],
		l.L5[indexes[5]],
		l.L6[indexes[6]],
		l.L7[indexes[7]],
		l.L8[indexes[8]],
		l.L9[indexes[9]],
		l.L10[indexes[10]],
		l.L11[indexes[11]],
	}
}

func (l Lists12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]) Fill(indexes []int, buffer *Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]) {
	buffer.V0 = l.L0[indexes[0]]
	buffer.V1 = l.L1[indexes[1]]
	buffer.V2 = l.L2[indexes[2]]
	buffer.V3 = l.L3[indexes[3]]
	buffer.V4 = l.L4[indexes[4]]
	buffer.V5 = l.L5[indexes[5]]
	buffer.V6 = l.L6[indexes[6]]
	buffer.V7 = l.L7[indexes[7]]
	buffer.V8 = l.L8[indexes[8]]
	buffer.V9 = l.L9[indexes[9]]
	buffer.V10 = l.L10[indexes[10]]
	buffer.V11 = l.L11[indexes[11]]
}

func NewTuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any](l0 []T0, l1 []T1, l2 []T2, l3 []T3, l4 []T4, l5 []T5, l6 []T6, l7 []T7, l8 []T8, l9 []T9, l10 []T10, l11 []T11) (*Permutator[Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]], error) {
	return New[Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]](Lists12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{l0, l1, l2, l3, l4, l5, l6, l7, l8, l9, l10, l11})
}
