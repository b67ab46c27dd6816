package lanes

import (
	"encoding/binary"
	"fmt"
	"math"
)

// This file provides the array and byte-buffer marshalling operations.
// Byte encodings are sequential in the native byte order of the execution
// environment: lane N occupies elementBytes bytes at baseOffset +
// N*elementBytes, lanes in ascending index order, no padding. A failed
// store reports an error before writing anything; destinations are never
// partially updated.

// IntoSlice stores the vector into dst starting at offset: dst[off+N] takes
// lane N.
func IntoSlice[T Lanes](v Vec[T], dst []T, off int) error {
	n := len(v.data)
	if off < 0 || off+n > len(dst) {
		return fmt.Errorf("%w: store of %d lanes at offset %d into %d elements", ErrOutOfRange, n, off, len(dst))
	}
	copy(dst[off:off+n], v.data)
	return nil
}

// IntoSliceMasked stores lane N into dst[off+N] where the mask is set.
// Every active lane's index is validated before any element is written;
// unselected destination elements are left untouched.
func IntoSliceMasked[T Lanes](v Vec[T], dst []T, off int, m Mask) error {
	if err := maskFits(v, m); err != nil {
		return err
	}
	for i, active := range m.bits {
		if active && (off+i < 0 || off+i >= len(dst)) {
			return fmt.Errorf("%w: lane %d: index %d not in [0, %d)", ErrOutOfRange, i, off+i, len(dst))
		}
	}
	return ForEachMasked(v, m, func(i int, a T) {
		dst[off+i] = a
	})
}

// Scatter stores lane N into dst[off+indexMap[j+N]]. The offset may be
// negative if the index map compensates to produce in-range indices. All
// target indices are validated up front; the error names the first
// offending lane.
func Scatter[T Lanes](v Vec[T], dst []T, off int, indexMap []int, j int) error {
	n := len(v.data)
	if j < 0 || j+n > len(indexMap) {
		return fmt.Errorf("%w: index map offset %d for %d lanes of %d entries", ErrOutOfRange, j, n, len(indexMap))
	}
	for i := 0; i < n; i++ {
		if idx := off + indexMap[j+i]; idx < 0 || idx >= len(dst) {
			return fmt.Errorf("%w: lane %d: index %d not in [0, %d)", ErrOutOfRange, i, idx, len(dst))
		}
	}
	ForEach(v, func(i int, a T) {
		dst[off+indexMap[j+i]] = a
	})
	return nil
}

// ScatterMasked is Scatter with lane selection: only active lanes are
// validated and stored.
func ScatterMasked[T Lanes](v Vec[T], dst []T, off int, indexMap []int, j int, m Mask) error {
	if err := maskFits(v, m); err != nil {
		return err
	}
	n := len(v.data)
	if j < 0 || j+n > len(indexMap) {
		return fmt.Errorf("%w: index map offset %d for %d lanes of %d entries", ErrOutOfRange, j, n, len(indexMap))
	}
	for i, active := range m.bits {
		if !active {
			continue
		}
		if idx := off + indexMap[j+i]; idx < 0 || idx >= len(dst) {
			return fmt.Errorf("%w: lane %d: index %d not in [0, %d)", ErrOutOfRange, i, idx, len(dst))
		}
	}
	return ForEachMasked(v, m, func(i int, a T) {
		dst[off+indexMap[j+i]] = a
	})
}

// IntoBytes serializes the vector into dst at the given byte offset in
// native byte order.
func IntoBytes[T Lanes](v Vec[T], dst []byte, off int) error {
	eb := v.Species().ElementBytes()
	if off < 0 || off+len(v.data)*eb > len(dst) {
		return fmt.Errorf("%w: store of %d bytes at offset %d into %d bytes", ErrOutOfRange, len(v.data)*eb, off, len(dst))
	}
	ForEach(v, func(i int, a T) {
		putLane(dst[off+i*eb:], a)
	})
	return nil
}

// IntoBytesMasked serializes the active lanes; inactive lanes still occupy
// their elementBytes-wide slot (left untouched), keeping the stream
// aligned.
func IntoBytesMasked[T Lanes](v Vec[T], dst []byte, off int, m Mask) error {
	if err := maskFits(v, m); err != nil {
		return err
	}
	eb := v.Species().ElementBytes()
	if off < 0 || off+len(v.data)*eb > len(dst) {
		return fmt.Errorf("%w: store of %d bytes at offset %d into %d bytes", ErrOutOfRange, len(v.data)*eb, off, len(dst))
	}
	return ForEachMasked(v, m, func(i int, a T) {
		putLane(dst[off+i*eb:], a)
	})
}

// FromBytes loads a vector from b at the given byte offset in native byte
// order.
func (sp Species[T]) FromBytes(b []byte, off int) (Vec[T], error) {
	eb := sp.ElementBytes()
	n := sp.Length()
	if off < 0 || off+n*eb > len(b) {
		return Vec[T]{}, fmt.Errorf("%w: load of %d bytes at offset %d from %d bytes", ErrOutOfRange, n*eb, off, len(b))
	}
	data := make([]T, n)
	for i := range data {
		data[i] = getLane[T](b[off+i*eb:])
	}
	return Vec[T]{shape: sp.shape, data: data}, nil
}

// FromBytesMasked loads the active lanes from their slots; inactive lanes
// take zero but still advance the stream one lane width.
func (sp Species[T]) FromBytesMasked(b []byte, off int, m Mask) (Vec[T], error) {
	if err := sp.checkMask(m); err != nil {
		return Vec[T]{}, err
	}
	eb := sp.ElementBytes()
	n := sp.Length()
	if off < 0 || off+n*eb > len(b) {
		return Vec[T]{}, fmt.Errorf("%w: load of %d bytes at offset %d from %d bytes", ErrOutOfRange, n*eb, off, len(b))
	}
	data := make([]T, n)
	for i := range data {
		if m.bits[i] {
			data[i] = getLane[T](b[off+i*eb:])
		}
	}
	return Vec[T]{shape: sp.shape, data: data}, nil
}

// ByteCursor is a positioned view over a byte buffer: vector reads and
// writes advance the cursor instead of taking absolute offsets. The
// zero-based position always moves in whole lane widths, active or not.
type ByteCursor struct {
	buf []byte
	pos int
}

// NewByteCursor returns a cursor positioned at the start of buf.
func NewByteCursor(buf []byte) *ByteCursor {
	return &ByteCursor{buf: buf}
}

// Pos returns the cursor's current byte position.
func (c *ByteCursor) Pos() int {
	return c.pos
}

// Remaining returns the number of bytes between the cursor and the end of
// the buffer.
func (c *ByteCursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Seek moves the cursor to an absolute byte position.
func (c *ByteCursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.buf) {
		return fmt.Errorf("%w: seek to %d in %d bytes", ErrOutOfRange, pos, len(c.buf))
	}
	c.pos = pos
	return nil
}

// WriteVec serializes the vector at the cursor and advances it.
func WriteVec[T Lanes](c *ByteCursor, v Vec[T]) error {
	if err := IntoBytes(v, c.buf, c.pos); err != nil {
		return err
	}
	c.pos += v.NumLanes() * v.Species().ElementBytes()
	return nil
}

// WriteVecMasked serializes the active lanes at the cursor. The cursor
// advances by the full vector width regardless of the mask.
func WriteVecMasked[T Lanes](c *ByteCursor, v Vec[T], m Mask) error {
	if err := IntoBytesMasked(v, c.buf, c.pos, m); err != nil {
		return err
	}
	c.pos += v.NumLanes() * v.Species().ElementBytes()
	return nil
}

// ReadVec loads a vector of the given species at the cursor and advances it.
func ReadVec[T Lanes](c *ByteCursor, sp Species[T]) (Vec[T], error) {
	v, err := sp.FromBytes(c.buf, c.pos)
	if err != nil {
		return Vec[T]{}, err
	}
	c.pos += sp.Length() * sp.ElementBytes()
	return v, nil
}

// ReadVecMasked loads the active lanes at the cursor; the cursor advances
// by the full vector width regardless of the mask.
func ReadVecMasked[T Lanes](c *ByteCursor, sp Species[T], m Mask) (Vec[T], error) {
	v, err := sp.FromBytesMasked(c.buf, c.pos, m)
	if err != nil {
		return Vec[T]{}, err
	}
	c.pos += sp.Length() * sp.ElementBytes()
	return v, nil
}

// putLane encodes one lane value at the start of b in native byte order.
func putLane[T Lanes](b []byte, a T) {
	switch av := any(a).(type) {
	case int8:
		b[0] = byte(av)
	case uint8:
		b[0] = av
	case int16:
		binary.NativeEndian.PutUint16(b, uint16(av))
	case uint16:
		binary.NativeEndian.PutUint16(b, av)
	case int32:
		binary.NativeEndian.PutUint32(b, uint32(av))
	case uint32:
		binary.NativeEndian.PutUint32(b, av)
	case int64:
		binary.NativeEndian.PutUint64(b, uint64(av))
	case uint64:
		binary.NativeEndian.PutUint64(b, av)
	case float32:
		binary.NativeEndian.PutUint32(b, math.Float32bits(av))
	case float64:
		binary.NativeEndian.PutUint64(b, math.Float64bits(av))
	}
}

// getLane decodes one lane value from the start of b in native byte order.
func getLane[T Lanes](b []byte) T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return any(int8(b[0])).(T)
	case uint8:
		return any(b[0]).(T)
	case int16:
		return any(int16(binary.NativeEndian.Uint16(b))).(T)
	case uint16:
		return any(binary.NativeEndian.Uint16(b)).(T)
	case int32:
		return any(int32(binary.NativeEndian.Uint32(b))).(T)
	case uint32:
		return any(binary.NativeEndian.Uint32(b)).(T)
	case int64:
		return any(int64(binary.NativeEndian.Uint64(b))).(T)
	case uint64:
		return any(binary.NativeEndian.Uint64(b)).(T)
	case float32:
		return any(math.Float32frombits(binary.NativeEndian.Uint32(b))).(T)
	case float64:
		return any(math.Float64frombits(binary.NativeEndian.Uint64(b))).(T)
	default:
		return zero
	}
}
