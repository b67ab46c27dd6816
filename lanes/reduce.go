package lanes

// This file provides the horizontal reductions: associative folds over all
// lanes (or, in the masked forms, with masked-out lanes contributing the
// operation's identity element). Folds run in ascending lane order; integer
// results are the same under any fold order, floating-point results are not
// guaranteed to be.

// ReduceSum adds all lanes. Identity 0.
func ReduceSum[T Lanes](v Vec[T]) T {
	return Fold(v, 0, func(acc, x T) T { return acc + x })
}

// ReduceSumMasked adds the active lanes. Identity 0.
func ReduceSumMasked[T Lanes](v Vec[T], m Mask) (T, error) {
	return FoldMasked(v, m, 0, func(acc, x T) T { return acc + x })
}

// ReduceSub subtracts every lane from the running value, starting at the
// identity 0: ((0 - v0) - v1) - ...
func ReduceSub[T Lanes](v Vec[T]) T {
	return Fold(v, 0, func(acc, x T) T { return acc - x })
}

// ReduceSubMasked subtracts the active lanes from the identity 0.
func ReduceSubMasked[T Lanes](v Vec[T], m Mask) (T, error) {
	return FoldMasked(v, m, 0, func(acc, x T) T { return acc - x })
}

// ReduceMul multiplies all lanes. Identity 1.
func ReduceMul[T Lanes](v Vec[T]) T {
	return Fold(v, 1, func(acc, x T) T { return acc * x })
}

// ReduceMulMasked multiplies the active lanes. Identity 1.
func ReduceMulMasked[T Lanes](v Vec[T], m Mask) (T, error) {
	return FoldMasked(v, m, 1, func(acc, x T) T { return acc * x })
}

// ReduceMin returns the minimum lane value. The identity is the element
// type's maximum representable value.
func ReduceMin[T Lanes](v Vec[T]) T {
	return Fold(v, maxOf[T](), func(acc, x T) T { return min(acc, x) })
}

// ReduceMinMasked returns the minimum active lane value.
func ReduceMinMasked[T Lanes](v Vec[T], m Mask) (T, error) {
	return FoldMasked(v, m, maxOf[T](), func(acc, x T) T { return min(acc, x) })
}

// ReduceMax returns the maximum lane value. The identity is the element
// type's minimum representable value.
func ReduceMax[T Lanes](v Vec[T]) T {
	return Fold(v, minOf[T](), func(acc, x T) T { return max(acc, x) })
}

// ReduceMaxMasked returns the maximum active lane value.
func ReduceMaxMasked[T Lanes](v Vec[T], m Mask) (T, error) {
	return FoldMasked(v, m, minOf[T](), func(acc, x T) T { return max(acc, x) })
}

// ReduceOr ORs all lanes. Identity 0.
func ReduceOr[T Integers](v Vec[T]) T {
	return Fold(v, 0, func(acc, x T) T { return acc | x })
}

// ReduceOrMasked ORs the active lanes. Identity 0.
func ReduceOrMasked[T Integers](v Vec[T], m Mask) (T, error) {
	return FoldMasked(v, m, 0, func(acc, x T) T { return acc | x })
}

// ReduceAnd ANDs all lanes. Identity all-ones.
func ReduceAnd[T Integers](v Vec[T]) T {
	return Fold(v, ^T(0), func(acc, x T) T { return acc & x })
}

// ReduceAndMasked ANDs the active lanes. Identity all-ones.
func ReduceAndMasked[T Integers](v Vec[T], m Mask) (T, error) {
	return FoldMasked(v, m, ^T(0), func(acc, x T) T { return acc & x })
}

// ReduceXor XORs all lanes. Identity 0.
func ReduceXor[T Integers](v Vec[T]) T {
	return Fold(v, 0, func(acc, x T) T { return acc ^ x })
}

// ReduceXorMasked XORs the active lanes. Identity 0.
func ReduceXorMasked[T Integers](v Vec[T], m Mask) (T, error) {
	return FoldMasked(v, m, 0, func(acc, x T) T { return acc ^ x })
}
