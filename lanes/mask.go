package lanes

import "fmt"

// Mask is an immutable per-lane boolean sequence. It is scoped to a shape
// and lane count but not to an element type: one mask can gate any vector
// whose shape and lane count match.
//
// Mask instances should not be created directly; use comparison operations
// or the species factories TrueMask, FalseMask and MaskOf.
type Mask struct {
	shape Shape
	bits  []bool
}

// Shape returns the mask's total bit width tag.
func (m Mask) Shape() Shape {
	return m.shape
}

// NumLanes returns the number of lanes in this mask.
func (m Mask) NumLanes() int {
	return len(m.bits)
}

// Get returns whether lane i is active.
func (m Mask) Get(i int) (bool, error) {
	if i < 0 || i >= len(m.bits) {
		return false, fmt.Errorf("%w: lane %d not in [0, %d)", ErrOutOfRange, i, len(m.bits))
	}
	return m.bits[i], nil
}

// AllTrue reports whether every lane is active.
func (m Mask) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane is active.
func (m Mask) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes.
func (m Mask) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// FirstTrue returns the lowest active lane index, or -1 if no lane is
// active.
func (m Mask) FirstTrue() int {
	for i, bit := range m.bits {
		if bit {
			return i
		}
	}
	return -1
}

// ToSlice returns a freshly allocated copy of the per-lane booleans.
func (m Mask) ToSlice() []bool {
	out := make([]bool, len(m.bits))
	copy(out, m.bits)
	return out
}

// Not returns the lane-wise complement.
func (m Mask) Not() Mask {
	bits := make([]bool, len(m.bits))
	for i, bit := range m.bits {
		bits[i] = !bit
	}
	return Mask{shape: m.shape, bits: bits}
}

// And returns the lane-wise conjunction of two masks of the same shape and
// lane count.
func (m Mask) And(o Mask) (Mask, error) {
	if err := m.check(o); err != nil {
		return Mask{}, err
	}
	bits := make([]bool, len(m.bits))
	for i, bit := range m.bits {
		bits[i] = bit && o.bits[i]
	}
	return Mask{shape: m.shape, bits: bits}, nil
}

// Or returns the lane-wise disjunction.
func (m Mask) Or(o Mask) (Mask, error) {
	if err := m.check(o); err != nil {
		return Mask{}, err
	}
	bits := make([]bool, len(m.bits))
	for i, bit := range m.bits {
		bits[i] = bit || o.bits[i]
	}
	return Mask{shape: m.shape, bits: bits}, nil
}

// Xor returns the lane-wise exclusive or.
func (m Mask) Xor(o Mask) (Mask, error) {
	if err := m.check(o); err != nil {
		return Mask{}, err
	}
	bits := make([]bool, len(m.bits))
	for i, bit := range m.bits {
		bits[i] = bit != o.bits[i]
	}
	return Mask{shape: m.shape, bits: bits}, nil
}

// AndNot returns the lanes active in m but not in o.
func (m Mask) AndNot(o Mask) (Mask, error) {
	if err := m.check(o); err != nil {
		return Mask{}, err
	}
	bits := make([]bool, len(m.bits))
	for i, bit := range m.bits {
		bits[i] = bit && !o.bits[i]
	}
	return Mask{shape: m.shape, bits: bits}, nil
}

func (m Mask) check(o Mask) error {
	if m.shape != o.shape || len(m.bits) != len(o.bits) {
		return fmt.Errorf("%w: mask %s/%d lanes vs mask %s/%d lanes",
			ErrShapeMismatch, m.shape, len(m.bits), o.shape, len(o.bits))
	}
	return nil
}

// String renders the mask for debugging, e.g. "mask128[1010]".
func (m Mask) String() string {
	buf := make([]byte, len(m.bits))
	for i, bit := range m.bits {
		if bit {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return fmt.Sprintf("mask%d[%s]", m.shape.Bits(), buf)
}
