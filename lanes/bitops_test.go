package lanes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitwise(t *testing.T) {
	a := vecOf[uint8](t, Shape64, 0b1100, 0b1010, 0xFF, 0, 0, 0, 0, 0)
	b := vecOf[uint8](t, Shape64, 0b1010, 0b0110, 0x0F, 0, 0, 0, 0, 0)

	and, err := And(a, b)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0b1000, 0b0010, 0x0F, 0, 0, 0, 0, 0}, and.ToSlice())

	or, err := Or(a, b)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0b1110, 0b1110, 0xFF, 0, 0, 0, 0, 0}, or.ToSlice())

	xor, err := Xor(a, b)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0b0110, 0b1100, 0xF0, 0, 0, 0, 0, 0}, xor.ToSlice())

	andnot, err := AndNot(a, b)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0b0010, 0b0100, 0x00, 0, 0, 0, 0, 0}, andnot.ToSlice())

	assert.Equal(t, []uint8{0xF3, 0xF5, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, Not(a).ToSlice())
}

// Shift counts wrap at the lane width: shifting int32 lanes by 33 is the
// same as shifting by 1.
func TestShiftCountMasking(t *testing.T) {
	v := vecOf[int32](t, Shape128, 1, 2, 3, 4)

	assert.Equal(t, ShiftLeft(v, 1).ToSlice(), ShiftLeft(v, 33).ToSlice())
	assert.Equal(t, []int32{2, 4, 6, 8}, ShiftLeft(v, 33).ToSlice())

	b := vecOf[uint8](t, Shape64, 1, 1, 1, 1, 1, 1, 1, 1)
	assert.Equal(t, []uint8{2, 2, 2, 2, 2, 2, 2, 2}, ShiftLeft(b, 9).ToSlice())
}

func TestShiftRight(t *testing.T) {
	v := vecOf[int32](t, Shape128, -8, 8, -1, 1)

	// Arithmetic: the sign bit propagates.
	assert.Equal(t, []int32{-4, 4, -1, 0}, ShiftRightArithmetic(v, 1).ToSlice())

	// Logical: zeros come in from the top regardless of sign.
	assert.Equal(t, []int32{0x7FFFFFFC, 4, 0x7FFFFFFF, 0}, ShiftRightLogical(v, 1).ToSlice())

	u := vecOf[uint16](t, Shape64, 0x8000, 2, 4, 8)
	assert.Equal(t, []uint16{0x4000, 1, 2, 4}, ShiftRightLogical(u, 1).ToSlice())
}

func TestShiftMasked(t *testing.T) {
	v := vecOf[uint32](t, Shape128, 1, 2, 3, 4)
	m := maskOf[uint32](t, Shape128, true, false, true, false)

	got, err := ShiftLeftMasked(v, 2, m)
	require.NoError(t, err)
	assert.Equal(t, []uint32{4, 2, 12, 4}, got.ToSlice())
}

func TestRotate(t *testing.T) {
	v := vecOf[uint8](t, Shape64, 0b10000001, 1, 0x80, 0, 0, 0, 0, 0)

	left := RotateLeft(v, 1)
	assert.Equal(t, []uint8{0b00000011, 2, 1, 0, 0, 0, 0, 0}, left.ToSlice())

	// Rotating back recovers the input.
	assert.Equal(t, v.ToSlice(), RotateRight(left, 1).ToSlice())
}

func TestPopCount(t *testing.T) {
	v := vecOf[uint16](t, Shape64, 0, 1, 0xFFFF, 0b1011)
	assert.Equal(t, []uint16{0, 1, 16, 3}, PopCount(v).ToSlice())

	s := vecOf[int8](t, Shape64, -1, 0, 1, 2, 3, 4, 5, 6)
	assert.Equal(t, []int8{8, 0, 1, 1, 2, 1, 2, 2}, PopCount(s).ToSlice())
}

func TestTestBit(t *testing.T) {
	v := vecOf[uint8](t, Shape64, 0b0001, 0b0010, 0b0011, 0b1000, 0, 0, 0, 0)

	assert.Equal(t, []bool{true, false, true, false, false, false, false, false}, TestBit(v, 0).ToSlice())
	assert.Equal(t, []bool{false, true, true, false, false, false, false, false}, TestBit(v, 1).ToSlice())
	assert.Equal(t, []bool{false, false, false, true, false, false, false, false}, TestBit(v, 3).ToSlice())

	// The bit number wraps like a shift count: bit 8 of a uint8 lane is bit 0.
	assert.Equal(t, TestBit(v, 0).ToSlice(), TestBit(v, 8).ToSlice())
}
