package lanes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// vecOf builds a vector for tests, failing the test on any construction
// error.
func vecOf[T Lanes](t *testing.T, s Shape, es ...T) Vec[T] {
	t.Helper()
	v, err := MustSpecies[T](s).Scalars(es...)
	require.NoError(t, err)
	return v
}

// maskOf builds a mask for tests.
func maskOf[T Lanes](t *testing.T, s Shape, bits ...bool) Mask {
	t.Helper()
	m, err := MustSpecies[T](s).MaskOf(bits...)
	require.NoError(t, err)
	return m
}

// shuffleOf builds a shuffle for tests.
func shuffleOf[T Lanes](t *testing.T, s Shape, idx ...int) Shuffle {
	t.Helper()
	sh, err := MustSpecies[T](s).ShuffleOf(idx...)
	require.NoError(t, err)
	return sh
}
