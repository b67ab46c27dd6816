package lanes

import "fmt"

// This file provides the cross-lane operations: blends, permutations and
// whole-lane rotates and shifts. Lane shifts zero-fill the vacated lanes;
// lane rotates wrap, so the two are distinct.

// Shuffle is an immutable per-lane index sequence used to permute or select
// lanes. Like Mask it is scoped to a shape and lane count, not an element
// type. Every index lies in [0, length); that is enforced when the shuffle
// is built (see Species.ShuffleOf).
type Shuffle struct {
	shape Shape
	idx   []int
}

// Shape returns the shuffle's total bit width tag.
func (s Shuffle) Shape() Shape {
	return s.shape
}

// NumLanes returns the number of lanes in this shuffle.
func (s Shuffle) NumLanes() int {
	return len(s.idx)
}

// Get returns the source lane index for result lane i.
func (s Shuffle) Get(i int) (int, error) {
	if i < 0 || i >= len(s.idx) {
		return 0, fmt.Errorf("%w: lane %d not in [0, %d)", ErrOutOfRange, i, len(s.idx))
	}
	return s.idx[i], nil
}

// ToSlice returns a freshly allocated copy of the per-lane indices.
func (s Shuffle) ToSlice() []int {
	out := make([]int, len(s.idx))
	copy(out, s.idx)
	return out
}

// Blend selects lane-wise between two vectors: result lane N is other[N]
// where the mask is set, v[N] otherwise.
func Blend[T Lanes](v, other Vec[T], m Mask) (Vec[T], error) {
	return BinaryOpMasked(v, other, m, func(_ int, _, y T) T { return y })
}

// Swizzle permutes a single vector by lane index: result lane N is
// v[shuffle[N]]. A source lane may appear any number of times.
func Swizzle[T Lanes](v Vec[T], s Shuffle) (Vec[T], error) {
	if err := shuffleFits(v, s); err != nil {
		return Vec[T]{}, err
	}
	data := make([]T, len(v.data))
	for i, ix := range s.idx {
		data[i] = v.data[ix]
	}
	return Vec[T]{shape: v.shape, data: data}, nil
}

// ShuffleTwo is a two-source permuted blend: both vectors are permuted by
// the shuffle, then the pick mask selects per lane between them — result
// lane N is other[shuffle[N]] where pick is set, v[shuffle[N]] otherwise.
func ShuffleTwo[T Lanes](v, other Vec[T], s Shuffle, pick Mask) (Vec[T], error) {
	if err := sameSpecies(v, other); err != nil {
		return Vec[T]{}, err
	}
	if err := shuffleFits(v, s); err != nil {
		return Vec[T]{}, err
	}
	if err := maskFits(v, pick); err != nil {
		return Vec[T]{}, err
	}
	data := make([]T, len(v.data))
	for i, ix := range s.idx {
		if pick.bits[i] {
			data[i] = other.data[ix]
		} else {
			data[i] = v.data[ix]
		}
	}
	return Vec[T]{shape: v.shape, data: data}, nil
}

// RotateLanesLeft rotates whole lanes left by n positions; lanes that exit
// one end re-enter the other. n may be any integer, including negative.
func RotateLanesLeft[T Lanes](v Vec[T], n int) Vec[T] {
	l := len(v.data)
	n = ((n % l) + l) % l
	data := make([]T, l)
	for i := range data {
		data[i] = v.data[(i+n)%l]
	}
	return Vec[T]{shape: v.shape, data: data}
}

// RotateLanesRight rotates whole lanes right by n positions.
func RotateLanesRight[T Lanes](v Vec[T], n int) Vec[T] {
	return RotateLanesLeft(v, -n)
}

// ShiftLanesLeft shifts whole lanes left by n positions; the vacated high
// lanes are filled with zero. Shifting by the lane count or more yields the
// zero vector.
func ShiftLanesLeft[T Lanes](v Vec[T], n int) (Vec[T], error) {
	l := len(v.data)
	if n < 0 || n > l {
		return Vec[T]{}, fmt.Errorf("%w: lane shift %d not in [0, %d]", ErrOutOfRange, n, l)
	}
	data := make([]T, l)
	copy(data, v.data[n:])
	return Vec[T]{shape: v.shape, data: data}, nil
}

// ShiftLanesRight shifts whole lanes right by n positions; the vacated low
// lanes are filled with zero.
func ShiftLanesRight[T Lanes](v Vec[T], n int) (Vec[T], error) {
	l := len(v.data)
	if n < 0 || n > l {
		return Vec[T]{}, fmt.Errorf("%w: lane shift %d not in [0, %d]", ErrOutOfRange, n, l)
	}
	data := make([]T, l)
	copy(data[n:], v.data[:l-n])
	return Vec[T]{shape: v.shape, data: data}, nil
}

// Reverse reverses the order of lanes.
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	l := len(v.data)
	data := make([]T, l)
	for i := range data {
		data[i] = v.data[l-1-i]
	}
	return Vec[T]{shape: v.shape, data: data}
}

// BroadcastLane replaces every lane with the value of lane i.
func BroadcastLane[T Lanes](v Vec[T], i int) (Vec[T], error) {
	e, err := v.Get(i)
	if err != nil {
		return Vec[T]{}, err
	}
	return v.Species().Broadcast(e), nil
}
