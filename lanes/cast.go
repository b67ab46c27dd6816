package lanes

import "fmt"

// This file provides the conversions between species: value-preserving
// casts, bit-preserving reshapes, and the two constrained forms Resize
// (element type fixed) and Rebracket (shape fixed).

// Cast converts a vector lane-wise to the target species. The first
// min(sp.Length(), v.NumLanes()) lanes are converted with Go's numeric
// conversion rules (integer narrowing truncates two's-complement bits);
// any remaining target lanes are zero.
func Cast[To, From Lanes](sp Species[To], v Vec[From]) (Vec[To], error) {
	if KindOf[From]() == KindInvalid || KindOf[To]() == KindInvalid {
		return Vec[To]{}, fmt.Errorf("%w: %T to %T", ErrUnsupportedConversion, *new(From), *new(To))
	}
	data := make([]To, sp.Length())
	for i := 0; i < min(len(data), len(v.data)); i++ {
		data[i] = To(v.data[i])
	}
	return Vec[To]{shape: sp.shape, data: data}, nil
}

// Reshape reinterprets the vector's raw bits as the target species. The
// bits pass through a native-order byte buffer sized to the larger of the
// two shapes, zero-padded, so widening appends zero lanes and narrowing
// drops the high lanes. Reshaping there and back between equal bit widths
// is bit-exact.
func Reshape[To, From Lanes](sp Species[To], v Vec[From]) Vec[To] {
	buf := make([]byte, max(v.shape.Bytes(), sp.shape.Bytes()))
	eb := v.Species().ElementBytes()
	for i, a := range v.data {
		putLane(buf[i*eb:], a)
	}
	teb := sp.ElementBytes()
	data := make([]To, sp.Length())
	for i := range data {
		data[i] = getLane[To](buf[i*teb:])
	}
	return Vec[To]{shape: sp.shape, data: data}
}

// Resize moves a vector to another shape of the same element type: lanes
// shared by both shapes are copied, extra target lanes are zero.
func Resize[T Lanes](sp Species[T], v Vec[T]) Vec[T] {
	data := make([]T, sp.Length())
	copy(data, v.data)
	return Vec[T]{shape: sp.shape, data: data}
}

// Rebracket reinterprets the vector's raw bits as another element type of
// the same shape. The shapes must match exactly.
func Rebracket[To, From Lanes](sp Species[To], v Vec[From]) (Vec[To], error) {
	if v.shape != sp.shape {
		return Vec[To]{}, fmt.Errorf("%w: rebracket %s as %s", ErrShapeMismatch, v.Species(), sp)
	}
	return Reshape(sp, v), nil
}
