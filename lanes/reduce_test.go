package lanes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceSum(t *testing.T) {
	v := vecOf[int32](t, Shape128, 1, 2, 3, 4)
	assert.Equal(t, int32(10), ReduceSum(v))

	f := vecOf[float64](t, Shape256, 0.5, 1.5, 2.5, 3.5)
	assert.Equal(t, float64(8), ReduceSum(f))
}

// Integer reductions must not depend on lane order.
func TestIntegerReduceIsPermutationInvariant(t *testing.T) {
	v := vecOf[int32](t, Shape128, 7, -2, 5, 3)
	p, err := Swizzle(v, shuffleOf[int32](t, Shape128, 2, 0, 3, 1))
	require.NoError(t, err)

	assert.Equal(t, ReduceSum(v), ReduceSum(p))
	assert.Equal(t, ReduceMul(v), ReduceMul(p))
	assert.Equal(t, ReduceMin(v), ReduceMin(p))
	assert.Equal(t, ReduceMax(v), ReduceMax(p))
	assert.Equal(t, ReduceXor(v), ReduceXor(p))
}

func TestReduceSub(t *testing.T) {
	// ((0 - 1) - 2) - 3 = -6, the negated sum for integers.
	v := vecOf[int32](t, Shape128, 1, 2, 3, 0)
	assert.Equal(t, int32(-6), ReduceSub(v))
}

func TestReduceMinMax(t *testing.T) {
	v := vecOf[int32](t, Shape128, 5, -3, 9, -9)
	assert.Equal(t, int32(-9), ReduceMin(v))
	assert.Equal(t, int32(9), ReduceMax(v))

	u := vecOf[uint16](t, Shape64, 5, 3, 9, 7)
	assert.Equal(t, uint16(3), ReduceMin(u))
	assert.Equal(t, uint16(9), ReduceMax(u))
}

func TestReduceBitwise(t *testing.T) {
	v := vecOf[uint8](t, Shape64, 0b1100, 0b1010, 0b1001, 0b1111, 0xFF, 0xFF, 0xFF, 0xFF)
	assert.Equal(t, uint8(0b1000), ReduceAnd(v))
	assert.Equal(t, uint8(0xFF), ReduceOr(v))

	x := vecOf[uint8](t, Shape64, 1, 2, 4, 8, 0, 0, 0, 0)
	assert.Equal(t, uint8(15), ReduceXor(x))
}

// Masked-out lanes contribute each operation's identity, so an all-false
// mask reduces to the identity itself.
func TestMaskedReduceIdentities(t *testing.T) {
	sp := MustSpecies[int32](Shape128)
	v := vecOf[int32](t, Shape128, 5, -3, 9, -9)
	none := sp.FalseMask()

	sum, err := ReduceSumMasked(v, none)
	require.NoError(t, err)
	assert.Equal(t, int32(0), sum)

	prod, err := ReduceMulMasked(v, none)
	require.NoError(t, err)
	assert.Equal(t, int32(1), prod)

	lo, err := ReduceMinMasked(v, none)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), lo)

	hi, err := ReduceMaxMasked(v, none)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), hi)

	all, err := ReduceAndMasked(v, none)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), all)
}

func TestMaskedReduce(t *testing.T) {
	v := vecOf[int32](t, Shape128, 5, -3, 9, -9)
	m := maskOf[int32](t, Shape128, true, false, true, false)

	sum, err := ReduceSumMasked(v, m)
	require.NoError(t, err)
	assert.Equal(t, int32(14), sum)

	lo, err := ReduceMinMasked(v, m)
	require.NoError(t, err)
	assert.Equal(t, int32(5), lo)

	// An all-true mask agrees with the unmasked reduction.
	sp := MustSpecies[int32](Shape128)
	full, err := ReduceSumMasked(v, sp.TrueMask())
	require.NoError(t, err)
	assert.Equal(t, ReduceSum(v), full)

	// A mask of the wrong shape is rejected.
	_, err = ReduceSumMasked(v, MustSpecies[int32](Shape256).TrueMask())
	require.ErrorIs(t, err, ErrShapeMismatch)
}
