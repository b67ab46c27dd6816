package lanes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlend(t *testing.T) {
	a := vecOf[int32](t, Shape128, 1, 2, 3, 4)
	b := vecOf[int32](t, Shape128, 5, 6, 7, 8)
	m := maskOf[int32](t, Shape128, true, false, true, false)

	got, err := Blend(a, b, m)
	require.NoError(t, err)
	assert.Equal(t, []int32{5, 2, 7, 4}, got.ToSlice())
}

func TestSwizzle(t *testing.T) {
	v := vecOf[int32](t, Shape128, 10, 20, 30, 40)

	rev, err := Swizzle(v, shuffleOf[int32](t, Shape128, 3, 2, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, []int32{40, 30, 20, 10}, rev.ToSlice())

	// A source lane may repeat.
	dup, err := Swizzle(v, shuffleOf[int32](t, Shape128, 0, 0, 3, 3))
	require.NoError(t, err)
	assert.Equal(t, []int32{10, 10, 40, 40}, dup.ToSlice())

	// A shuffle of another shape is rejected.
	_, err = Swizzle(v, shuffleOf[int64](t, Shape256, 0, 1, 2, 3))
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestShuffleTwo(t *testing.T) {
	a := vecOf[int32](t, Shape128, 1, 2, 3, 4)
	b := vecOf[int32](t, Shape128, 5, 6, 7, 8)
	sh := shuffleOf[int32](t, Shape128, 3, 2, 1, 0)
	pick := maskOf[int32](t, Shape128, false, true, false, true)

	got, err := ShuffleTwo(a, b, sh, pick)
	require.NoError(t, err)
	assert.Equal(t, []int32{4, 7, 2, 5}, got.ToSlice())
}

func TestRotateLanes(t *testing.T) {
	v := vecOf[int32](t, Shape128, 1, 2, 3, 4)

	assert.Equal(t, []int32{2, 3, 4, 1}, RotateLanesLeft(v, 1).ToSlice())
	assert.Equal(t, []int32{4, 1, 2, 3}, RotateLanesRight(v, 1).ToSlice())

	// Rotation counts wrap; negative counts rotate the other way.
	assert.Equal(t, v.ToSlice(), RotateLanesLeft(v, 4).ToSlice())
	assert.Equal(t, RotateLanesLeft(v, 1).ToSlice(), RotateLanesLeft(v, 5).ToSlice())
	assert.Equal(t, RotateLanesRight(v, 1).ToSlice(), RotateLanesLeft(v, -1).ToSlice())
}

// Lane shifts discard and zero-fill; composing a left shift with a right
// shift zeroes the shifted-out lanes instead of restoring them.
func TestShiftLanesIsNotARotation(t *testing.T) {
	v := vecOf[int32](t, Shape128, 1, 2, 3, 4)

	left, err := ShiftLanesLeft(v, 1)
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 3, 4, 0}, left.ToSlice())

	back, err := ShiftLanesRight(left, 1)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 2, 3, 4}, back.ToSlice())

	right, err := ShiftLanesRight(v, 2)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 0, 1, 2}, right.ToSlice())

	// Shifting by the full lane count clears everything.
	gone, err := ShiftLanesLeft(v, 4)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 0, 0, 0}, gone.ToSlice())

	_, err = ShiftLanesLeft(v, 5)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = ShiftLanesRight(v, -1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestReverse(t *testing.T) {
	v := vecOf[float32](t, Shape128, 1, 2, 3, 4)
	assert.Equal(t, []float32{4, 3, 2, 1}, Reverse(v).ToSlice())
	assert.Equal(t, v.ToSlice(), Reverse(Reverse(v)).ToSlice())
}

func TestBroadcastLane(t *testing.T) {
	v := vecOf[int32](t, Shape128, 10, 20, 30, 40)

	got, err := BroadcastLane(v, 2)
	require.NoError(t, err)
	assert.Equal(t, []int32{30, 30, 30, 30}, got.ToSlice())

	_, err = BroadcastLane(v, 4)
	require.ErrorIs(t, err, ErrOutOfRange)
}
