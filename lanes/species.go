package lanes

import (
	"fmt"
	"unsafe"
)

// Species pairs a lane element type with a Shape. It is a small value type:
// two Species with the same type parameter and shape are interchangeable.
// The zero Species is invalid; construct one with SpeciesOf, MustSpecies or
// PreferredSpecies.
type Species[T Lanes] struct {
	shape Shape
}

// SpeciesOf returns the species for element type T and the given shape.
// The shape must be one of the four supported widths and must hold a whole
// number of T lanes; both are checked here, not at use.
func SpeciesOf[T Lanes](s Shape) (Species[T], error) {
	if !s.Valid() {
		return Species[T]{}, fmt.Errorf("%w: bad shape %d", ErrShapeMismatch, int(s))
	}
	k := KindOf[T]()
	if k == KindInvalid {
		var zero T
		return Species[T]{}, fmt.Errorf("%w: lane type %T", ErrUnsupportedConversion, zero)
	}
	if s.Bits()%k.Bits() != 0 {
		return Species[T]{}, fmt.Errorf("%w: %s lanes do not fill a %s vector", ErrShapeMismatch, k, s)
	}
	return Species[T]{shape: s}, nil
}

// MustSpecies is like SpeciesOf but panics on an invalid combination. Use it
// for species known valid at compile time.
func MustSpecies[T Lanes](s Shape) Species[T] {
	sp, err := SpeciesOf[T](s)
	if err != nil {
		panic(err)
	}
	return sp
}

// Shape returns the species' total bit width tag.
func (sp Species[T]) Shape() Shape {
	return sp.shape
}

// BitSize returns the species' total width in bits.
func (sp Species[T]) BitSize() int {
	return sp.shape.Bits()
}

// ElementBits returns the width of one lane in bits.
func (sp Species[T]) ElementBits() int {
	return sp.ElementBytes() * 8
}

// ElementBytes returns the width of one lane in bytes.
func (sp Species[T]) ElementBytes() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}

// Length returns the number of lanes in vectors of this species.
func (sp Species[T]) Length() int {
	return sp.shape.Bits() / sp.ElementBits()
}

// Kind returns the species' element kind.
func (sp Species[T]) Kind() Kind {
	return KindOf[T]()
}

// String returns a name such as "int32x4".
func (sp Species[T]) String() string {
	return fmt.Sprintf("%sx%d", sp.Kind(), sp.Length())
}

// Zero returns a vector with all lanes set to zero.
func (sp Species[T]) Zero() Vec[T] {
	return Vec[T]{shape: sp.shape, data: make([]T, sp.Length())}
}

// Broadcast returns a vector with all lanes set to e.
func (sp Species[T]) Broadcast(e T) Vec[T] {
	data := make([]T, sp.Length())
	for i := range data {
		data[i] = e
	}
	return Vec[T]{shape: sp.shape, data: data}
}

// Single returns a vector with lane 0 set to e and all other lanes zero.
func (sp Species[T]) Single(e T) Vec[T] {
	data := make([]T, sp.Length())
	data[0] = e
	return Vec[T]{shape: sp.shape, data: data}
}

// Iota returns a vector with lanes set to [0, 1, 2, 3, ...].
func (sp Species[T]) Iota() Vec[T] {
	data := make([]T, sp.Length())
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{shape: sp.shape, data: data}
}

// Scalars returns a vector built element-wise from the given values. The
// number of values must equal the species' lane count.
func (sp Species[T]) Scalars(es ...T) (Vec[T], error) {
	if len(es) != sp.Length() {
		return Vec[T]{}, fmt.Errorf("%w: %d scalars for %d lanes", ErrOutOfRange, len(es), sp.Length())
	}
	data := make([]T, sp.Length())
	copy(data, es)
	return Vec[T]{shape: sp.shape, data: data}, nil
}

// FromSlice loads a vector from a starting at offset: lane N takes a[off+N].
func (sp Species[T]) FromSlice(a []T, off int) (Vec[T], error) {
	n := sp.Length()
	if off < 0 || off+n > len(a) {
		return Vec[T]{}, fmt.Errorf("%w: load of %d lanes at offset %d from %d elements", ErrOutOfRange, n, off, len(a))
	}
	data := make([]T, n)
	copy(data, a[off:off+n])
	return Vec[T]{shape: sp.shape, data: data}, nil
}

// FromSliceMasked loads a[off+N] into lane N where the mask is set; inactive
// lanes take zero. Every active lane's index is validated before any element
// is read; inactive lanes need not be in range.
func (sp Species[T]) FromSliceMasked(a []T, off int, m Mask) (Vec[T], error) {
	if err := sp.checkMask(m); err != nil {
		return Vec[T]{}, err
	}
	for i, active := range m.bits {
		if active && (off+i < 0 || off+i >= len(a)) {
			return Vec[T]{}, fmt.Errorf("%w: lane %d: index %d not in [0, %d)", ErrOutOfRange, i, off+i, len(a))
		}
	}
	data := make([]T, sp.Length())
	for i, active := range m.bits {
		if active {
			data[i] = a[off+i]
		}
	}
	return Vec[T]{shape: sp.shape, data: data}, nil
}

// Gather loads lane N from a[off+indexMap[j+N]]. The offset may be negative
// if the index map compensates to produce in-range indices.
func (sp Species[T]) Gather(a []T, off int, indexMap []int, j int) (Vec[T], error) {
	n := sp.Length()
	if j < 0 || j+n > len(indexMap) {
		return Vec[T]{}, fmt.Errorf("%w: index map offset %d for %d lanes of %d entries", ErrOutOfRange, j, n, len(indexMap))
	}
	for i := 0; i < n; i++ {
		if idx := off + indexMap[j+i]; idx < 0 || idx >= len(a) {
			return Vec[T]{}, fmt.Errorf("%w: lane %d: index %d not in [0, %d)", ErrOutOfRange, i, idx, len(a))
		}
	}
	data := make([]T, n)
	for i := 0; i < n; i++ {
		data[i] = a[off+indexMap[j+i]]
	}
	return Vec[T]{shape: sp.shape, data: data}, nil
}

// GatherMasked is Gather with lane selection: active lanes load and are
// bounds-checked up front, inactive lanes take zero unchecked.
func (sp Species[T]) GatherMasked(a []T, off int, indexMap []int, j int, m Mask) (Vec[T], error) {
	if err := sp.checkMask(m); err != nil {
		return Vec[T]{}, err
	}
	n := sp.Length()
	if j < 0 || j+n > len(indexMap) {
		return Vec[T]{}, fmt.Errorf("%w: index map offset %d for %d lanes of %d entries", ErrOutOfRange, j, n, len(indexMap))
	}
	for i, active := range m.bits {
		if !active {
			continue
		}
		if idx := off + indexMap[j+i]; idx < 0 || idx >= len(a) {
			return Vec[T]{}, fmt.Errorf("%w: lane %d: index %d not in [0, %d)", ErrOutOfRange, i, idx, len(a))
		}
	}
	data := make([]T, n)
	for i, active := range m.bits {
		if active {
			data[i] = a[off+indexMap[j+i]]
		}
	}
	return Vec[T]{shape: sp.shape, data: data}, nil
}

// TrueMask returns a mask of this species with every lane set.
func (sp Species[T]) TrueMask() Mask {
	bits := make([]bool, sp.Length())
	for i := range bits {
		bits[i] = true
	}
	return Mask{shape: sp.shape, bits: bits}
}

// FalseMask returns a mask of this species with no lane set.
func (sp Species[T]) FalseMask() Mask {
	return Mask{shape: sp.shape, bits: make([]bool, sp.Length())}
}

// MaskOf returns a mask built lane-wise from the given booleans. The number
// of values must equal the species' lane count.
func (sp Species[T]) MaskOf(bits ...bool) (Mask, error) {
	if len(bits) != sp.Length() {
		return Mask{}, fmt.Errorf("%w: %d mask lanes for %d-lane species", ErrOutOfRange, len(bits), sp.Length())
	}
	b := make([]bool, sp.Length())
	copy(b, bits)
	return Mask{shape: sp.shape, bits: b}, nil
}

// ShuffleOf returns a shuffle built lane-wise from the given indices. Each
// index must lie in [0, Length()); a bad index is a construction error.
func (sp Species[T]) ShuffleOf(idx ...int) (Shuffle, error) {
	n := sp.Length()
	if len(idx) != n {
		return Shuffle{}, fmt.Errorf("%w: %d shuffle lanes for %d-lane species", ErrOutOfRange, len(idx), n)
	}
	data := make([]int, n)
	for i, ix := range idx {
		if ix < 0 || ix >= n {
			return Shuffle{}, fmt.Errorf("%w: lane %d: index %d not in [0, %d)", ErrBadShuffle, i, ix, n)
		}
		data[i] = ix
	}
	return Shuffle{shape: sp.shape, idx: data}, nil
}

// checkMask verifies a mask is structurally compatible with this species:
// same shape and same lane count.
func (sp Species[T]) checkMask(m Mask) error {
	if m.shape != sp.shape || len(m.bits) != sp.Length() {
		return fmt.Errorf("%w: mask %s/%d lanes vs species %s", ErrShapeMismatch, m.shape, len(m.bits), sp)
	}
	return nil
}
