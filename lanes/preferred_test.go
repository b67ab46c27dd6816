package lanes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferredShape(t *testing.T) {
	s := PreferredShape()
	assert.True(t, s.Valid(), "preferred shape %d", s.Bits())
}

func TestPreferredSpecies(t *testing.T) {
	sp, err := PreferredSpecies[float32]()
	require.NoError(t, err)
	assert.Equal(t, PreferredShape(), sp.Shape())
	assert.Equal(t, PreferredShape().Bits()/32, sp.Length())

	// Whatever the width, it is wide enough for every lane type.
	sp8, err := PreferredSpecies[uint8]()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, sp8.Length(), 8)
}
