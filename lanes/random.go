package lanes

import "math/rand/v2"

// Random returns a vector with every lane drawn from the package-global
// math/rand/v2 source, which is safe for concurrent use. Floating-point
// lanes are uniform in [0, 1); integer lanes are uniform over the element
// type's full range.
func (sp Species[T]) Random() Vec[T] {
	return sp.randomWith(rand.Uint64, rand.Float32, rand.Float64)
}

// RandomFrom is Random drawing from the given source, for deterministic
// sequences under a caller-seeded generator.
func (sp Species[T]) RandomFrom(r *rand.Rand) Vec[T] {
	return sp.randomWith(r.Uint64, r.Float32, r.Float64)
}

func (sp Species[T]) randomWith(u64 func() uint64, f32 func() float32, f64 func() float64) Vec[T] {
	data := make([]T, sp.Length())
	var zero T
	switch any(zero).(type) {
	case float32:
		for i := range data {
			data[i] = any(f32()).(T)
		}
	case float64:
		for i := range data {
			data[i] = any(f64()).(T)
		}
	default:
		// Truncation keeps the low elementBits bits, which are uniform.
		for i := range data {
			data[i] = T(u64())
		}
	}
	return Vec[T]{shape: sp.shape, data: data}
}
