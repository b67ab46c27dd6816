package lanes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskQueries(t *testing.T) {
	sp := MustSpecies[int32](Shape128)
	m := maskOf[int32](t, Shape128, false, true, false, true)

	assert.False(t, m.AllTrue())
	assert.True(t, m.AnyTrue())
	assert.Equal(t, 2, m.CountTrue())
	assert.Equal(t, 1, m.FirstTrue())
	assert.Equal(t, []bool{false, true, false, true}, m.ToSlice())

	assert.True(t, sp.TrueMask().AllTrue())
	assert.False(t, sp.FalseMask().AnyTrue())
	assert.Equal(t, -1, sp.FalseMask().FirstTrue())

	active, err := m.Get(1)
	require.NoError(t, err)
	assert.True(t, active)
	_, err = m.Get(4)
	require.ErrorIs(t, err, ErrOutOfRange)

	assert.Equal(t, "mask128[0101]", m.String())
}

func TestMaskCombinators(t *testing.T) {
	a := maskOf[int32](t, Shape128, true, true, false, false)
	b := maskOf[int32](t, Shape128, true, false, true, false)

	and, err := a.And(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false}, and.ToSlice())

	or, err := a.Or(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, false}, or.ToSlice())

	xor, err := a.Xor(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, false}, xor.ToSlice())

	assert.Equal(t, []bool{false, false, true, true}, a.Not().ToSlice())

	diff, err := a.AndNot(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, false}, diff.ToSlice())

	// De Morgan, just to tie the combinators together.
	lhs, err := a.And(b)
	require.NoError(t, err)
	rhs, err := a.Not().Or(b.Not())
	require.NoError(t, err)
	assert.Equal(t, lhs.Not().ToSlice(), rhs.ToSlice())
}

func TestMaskCombineMismatch(t *testing.T) {
	a := MustSpecies[int32](Shape128).TrueMask()
	b := MustSpecies[int32](Shape256).TrueMask()

	_, err := a.And(b)
	require.ErrorIs(t, err, ErrShapeMismatch)

	// Same shape, different lane count: a 128-bit int64 mask has 2 lanes.
	c := MustSpecies[int64](Shape128).TrueMask()
	_, err = a.Or(c)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

// A mask is element-type agnostic: the same mask gates any vector with a
// matching shape and lane count.
func TestMaskCrossElementType(t *testing.T) {
	m := maskOf[int32](t, Shape128, true, false, true, false)

	f := vecOf[float32](t, Shape128, 1, 2, 3, 4)
	got, err := AddScalarMasked(f, 10, m)
	require.NoError(t, err)
	assert.Equal(t, []float32{11, 2, 13, 4}, got.ToSlice())

	u := vecOf[uint32](t, Shape128, 1, 2, 3, 4)
	gu, err := AddScalarMasked(u, 10, m)
	require.NoError(t, err)
	assert.Equal(t, []uint32{11, 2, 13, 4}, gu.ToSlice())
}
