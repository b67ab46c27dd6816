package lanes

import (
	"math"
	"sync"
)

// Kind identifies the element type of a species. It exists for
// introspection and error reporting; lane arithmetic itself is generic.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
)

// Bits returns the width of one lane of this kind in bits.
func (k Kind) Bits() int {
	switch k {
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	default:
		return 0
	}
}

// Bytes returns the width of one lane of this kind in bytes.
func (k Kind) Bytes() int {
	return k.Bits() / 8
}

// IsFloat reports whether the kind is a floating-point type.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// IsSigned reports whether the kind is a signed integer or float type.
func (k Kind) IsSigned() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64, KindFloat32, KindFloat64:
		return true
	}
	return false
}

// String returns the Go name of the element type ("int32", "float64", ...).
func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	default:
		return "invalid"
	}
}

// KindOf returns the Kind for the lane type T, or KindInvalid if T is a
// defined type whose representation the package does not recognize.
func KindOf[T Lanes]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	default:
		return KindInvalid
	}
}

// maxOf returns the largest representable value of T, the identity for a
// minimum reduction.
func maxOf[T Lanes]() T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return any(int8(math.MaxInt8)).(T)
	case int16:
		return any(int16(math.MaxInt16)).(T)
	case int32:
		return any(int32(math.MaxInt32)).(T)
	case int64:
		return any(int64(math.MaxInt64)).(T)
	case uint8:
		return any(uint8(math.MaxUint8)).(T)
	case uint16:
		return any(uint16(math.MaxUint16)).(T)
	case uint32:
		return any(uint32(math.MaxUint32)).(T)
	case uint64:
		return any(uint64(math.MaxUint64)).(T)
	case float32:
		return any(float32(math.MaxFloat32)).(T)
	case float64:
		return any(float64(math.MaxFloat64)).(T)
	default:
		return zero
	}
}

// minOf returns the smallest representable value of T, the identity for a
// maximum reduction.
func minOf[T Lanes]() T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return any(int8(math.MinInt8)).(T)
	case int16:
		return any(int16(math.MinInt16)).(T)
	case int32:
		return any(int32(math.MinInt32)).(T)
	case int64:
		return any(int64(math.MinInt64)).(T)
	case uint8, uint16, uint32, uint64:
		return zero
	case float32:
		return any(float32(-math.MaxFloat32)).(T)
	case float64:
		return any(float64(-math.MaxFloat64)).(T)
	default:
		return zero
	}
}

// registryKey identifies one (element kind, shape) species slot.
type registryKey struct {
	kind  Kind
	shape Shape
}

// laneTable maps every valid (kind, shape) pair to its lane count. Built
// once, read-only afterwards; concurrent lookups need no locking.
var laneTable = sync.OnceValue(func() map[registryKey]int {
	kinds := []Kind{
		KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64,
	}
	table := make(map[registryKey]int, len(kinds)*len(Shapes()))
	for _, k := range kinds {
		for _, s := range Shapes() {
			table[registryKey{k, s}] = s.Bits() / k.Bits()
		}
	}
	return table
})

// LanesFor returns the lane count for an element kind and shape, or 0 if the
// pair is not a valid species.
func LanesFor(k Kind, s Shape) int {
	return laneTable()[registryKey{k, s}]
}
