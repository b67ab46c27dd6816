package lanes

import "fmt"

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is an immutable ordered sequence of lane values of one element type
// and species. Every transformation returns a new Vec; the backing lanes are
// never shared with callers or mutated after construction, so Vec values are
// safe to use from concurrent goroutines.
//
// Vec instances should not be created directly; use a Species factory such
// as Zero, Broadcast, Scalars or FromSlice.
type Vec[T Lanes] struct {
	shape Shape
	data  []T
}

// Species returns the species that produced this vector.
func (v Vec[T]) Species() Species[T] {
	return Species[T]{shape: v.shape}
}

// Shape returns the vector's total bit width.
func (v Vec[T]) Shape() Shape {
	return v.shape
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Get returns the lane element at lane index i.
func (v Vec[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, fmt.Errorf("%w: lane %d not in [0, %d)", ErrOutOfRange, i, len(v.data))
	}
	return v.data[i], nil
}

// With returns a copy of the vector with lane i replaced by e. It behaves
// like a blend against a broadcast of e with a single active lane.
func (v Vec[T]) With(i int, e T) (Vec[T], error) {
	if i < 0 || i >= len(v.data) {
		return Vec[T]{}, fmt.Errorf("%w: lane %d not in [0, %d)", ErrOutOfRange, i, len(v.data))
	}
	data := make([]T, len(v.data))
	copy(data, v.data)
	data[i] = e
	return Vec[T]{shape: v.shape, data: data}, nil
}

// ToSlice returns a freshly allocated slice containing the lane elements in
// ascending lane order.
func (v Vec[T]) ToSlice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// String renders the vector for debugging, e.g. "int32x4[1 2 3 4]".
func (v Vec[T]) String() string {
	return fmt.Sprintf("%sx%d%v", KindOf[T](), len(v.data), v.data)
}
