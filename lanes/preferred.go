package lanes

import (
	"os"
	"strconv"
)

// preferredShape is set once by the per-architecture init in this package.
// Detection only ever selects a width; operation semantics are identical on
// every architecture.
var preferredShape = Shape128

// envPreferredShape returns the override from the LANES_PREFERRED_BITS
// environment variable, or 0 when unset or not a supported width. The
// override exists so tests can pin a width regardless of the host CPU.
func envPreferredShape() Shape {
	val := os.Getenv("LANES_PREFERRED_BITS")
	if val == "" {
		return 0
	}
	bits, err := strconv.Atoi(val)
	if err != nil || !Shape(bits).Valid() {
		return 0
	}
	return Shape(bits)
}

// PreferredShape returns the widest shape with hardware register backing on
// the running CPU, or the LANES_PREFERRED_BITS override when set.
func PreferredShape() Shape {
	return preferredShape
}

// PreferredSpecies returns the species of T at the preferred shape.
func PreferredSpecies[T Lanes]() (Species[T], error) {
	return SpeciesOf[T](PreferredShape())
}
