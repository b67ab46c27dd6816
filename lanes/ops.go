// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

// This file provides the lane-wise arithmetic and comparison operations.
// Integer add, subtract and multiply wrap at the element type's native bit
// width (two's-complement wraparound, never an overflow error); see
// saturated.go for the clamping variants.

// Add performs lane-wise addition.
func Add[T Lanes](a, b Vec[T]) (Vec[T], error) {
	return BinaryOp(a, b, func(_ int, x, y T) T { return x + y })
}

// AddMasked adds where the mask is set; unselected lanes pass through a.
func AddMasked[T Lanes](a, b Vec[T], m Mask) (Vec[T], error) {
	return BinaryOpMasked(a, b, m, func(_ int, x, y T) T { return x + y })
}

// AddScalar adds the broadcast of s to every lane.
func AddScalar[T Lanes](v Vec[T], s T) Vec[T] {
	return UnaryOp(v, func(_ int, a T) T { return a + s })
}

// AddScalarMasked adds the broadcast of s to lanes where the mask is set.
func AddScalarMasked[T Lanes](v Vec[T], s T, m Mask) (Vec[T], error) {
	return UnaryOpMasked(v, m, func(_ int, a T) T { return a + s })
}

// Sub performs lane-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) (Vec[T], error) {
	return BinaryOp(a, b, func(_ int, x, y T) T { return x - y })
}

// SubMasked subtracts where the mask is set; unselected lanes pass through a.
func SubMasked[T Lanes](a, b Vec[T], m Mask) (Vec[T], error) {
	return BinaryOpMasked(a, b, m, func(_ int, x, y T) T { return x - y })
}

// SubScalar subtracts the broadcast of s from every lane.
func SubScalar[T Lanes](v Vec[T], s T) Vec[T] {
	return UnaryOp(v, func(_ int, a T) T { return a - s })
}

// SubScalarMasked subtracts the broadcast of s from lanes where the mask is
// set.
func SubScalarMasked[T Lanes](v Vec[T], s T, m Mask) (Vec[T], error) {
	return UnaryOpMasked(v, m, func(_ int, a T) T { return a - s })
}

// Mul performs lane-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) (Vec[T], error) {
	return BinaryOp(a, b, func(_ int, x, y T) T { return x * y })
}

// MulMasked multiplies where the mask is set; unselected lanes pass through a.
func MulMasked[T Lanes](a, b Vec[T], m Mask) (Vec[T], error) {
	return BinaryOpMasked(a, b, m, func(_ int, x, y T) T { return x * y })
}

// MulScalar multiplies every lane by the broadcast of s.
func MulScalar[T Lanes](v Vec[T], s T) Vec[T] {
	return UnaryOp(v, func(_ int, a T) T { return a * s })
}

// MulScalarMasked multiplies lanes where the mask is set by the broadcast
// of s.
func MulScalarMasked[T Lanes](v Vec[T], s T, m Mask) (Vec[T], error) {
	return UnaryOpMasked(v, m, func(_ int, a T) T { return a * s })
}

// Div performs lane-wise division of floating-point vectors.
func Div[T Floats](a, b Vec[T]) (Vec[T], error) {
	return BinaryOp(a, b, func(_ int, x, y T) T { return x / y })
}

// DivMasked divides where the mask is set; unselected lanes pass through a.
func DivMasked[T Floats](a, b Vec[T], m Mask) (Vec[T], error) {
	return BinaryOpMasked(a, b, m, func(_ int, x, y T) T { return x / y })
}

// DivScalar divides every lane by the broadcast of s.
func DivScalar[T Floats](v Vec[T], s T) Vec[T] {
	return UnaryOp(v, func(_ int, a T) T { return a / s })
}

// Neg negates every lane.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	return UnaryOp(v, func(_ int, a T) T { return -a })
}

// NegMasked negates lanes where the mask is set.
func NegMasked[T Lanes](v Vec[T], m Mask) (Vec[T], error) {
	return UnaryOpMasked(v, m, func(_ int, a T) T { return -a })
}

// Abs computes the absolute value of every lane. For unsigned types it is
// the identity; for the minimum signed value it wraps, as the native
// negation does.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	return UnaryOp(v, func(_ int, a T) T { return absLane(a) })
}

// AbsMasked computes the absolute value of lanes where the mask is set.
func AbsMasked[T Lanes](v Vec[T], m Mask) (Vec[T], error) {
	return UnaryOpMasked(v, m, func(_ int, a T) T { return absLane(a) })
}

func absLane[T Lanes](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// Min returns the lane-wise minimum of two vectors.
func Min[T Lanes](a, b Vec[T]) (Vec[T], error) {
	return BinaryOp(a, b, func(_ int, x, y T) T { return min(x, y) })
}

// MinMasked takes the minimum where the mask is set; unselected lanes pass
// through a.
func MinMasked[T Lanes](a, b Vec[T], m Mask) (Vec[T], error) {
	return BinaryOpMasked(a, b, m, func(_ int, x, y T) T { return min(x, y) })
}

// MinScalar returns the lane-wise minimum of v and the broadcast of s.
func MinScalar[T Lanes](v Vec[T], s T) Vec[T] {
	return UnaryOp(v, func(_ int, a T) T { return min(a, s) })
}

// Max returns the lane-wise maximum of two vectors.
func Max[T Lanes](a, b Vec[T]) (Vec[T], error) {
	return BinaryOp(a, b, func(_ int, x, y T) T { return max(x, y) })
}

// MaxMasked takes the maximum where the mask is set; unselected lanes pass
// through a.
func MaxMasked[T Lanes](a, b Vec[T], m Mask) (Vec[T], error) {
	return BinaryOpMasked(a, b, m, func(_ int, x, y T) T { return max(x, y) })
}

// MaxScalar returns the lane-wise maximum of v and the broadcast of s.
func MaxScalar[T Lanes](v Vec[T], s T) Vec[T] {
	return UnaryOp(v, func(_ int, a T) T { return max(a, s) })
}

// Clamp clamps each lane of v to the range [lo, hi], lane-wise.
func Clamp[T Lanes](v, lo, hi Vec[T]) (Vec[T], error) {
	return TernaryOp(v, lo, hi, func(_ int, x, l, h T) T { return min(max(x, l), h) })
}

// Equal compares lane-wise for equality.
func Equal[T Lanes](a, b Vec[T]) (Mask, error) {
	return BinaryTest(a, b, func(_ int, x, y T) bool { return x == y })
}

// NotEqual compares lane-wise for inequality.
func NotEqual[T Lanes](a, b Vec[T]) (Mask, error) {
	return BinaryTest(a, b, func(_ int, x, y T) bool { return x != y })
}

// Less compares lane-wise with <.
func Less[T Lanes](a, b Vec[T]) (Mask, error) {
	return BinaryTest(a, b, func(_ int, x, y T) bool { return x < y })
}

// LessEqual compares lane-wise with <=.
func LessEqual[T Lanes](a, b Vec[T]) (Mask, error) {
	return BinaryTest(a, b, func(_ int, x, y T) bool { return x <= y })
}

// Greater compares lane-wise with >.
func Greater[T Lanes](a, b Vec[T]) (Mask, error) {
	return BinaryTest(a, b, func(_ int, x, y T) bool { return x > y })
}

// GreaterEqual compares lane-wise with >=.
func GreaterEqual[T Lanes](a, b Vec[T]) (Mask, error) {
	return BinaryTest(a, b, func(_ int, x, y T) bool { return x >= y })
}

// EqualScalar compares every lane against the broadcast of s.
func EqualScalar[T Lanes](v Vec[T], s T) Mask {
	return unaryTest(v, func(a T) bool { return a == s })
}

// NotEqualScalar compares every lane against the broadcast of s.
func NotEqualScalar[T Lanes](v Vec[T], s T) Mask {
	return unaryTest(v, func(a T) bool { return a != s })
}

// LessScalar compares every lane against the broadcast of s with <.
func LessScalar[T Lanes](v Vec[T], s T) Mask {
	return unaryTest(v, func(a T) bool { return a < s })
}

// LessEqualScalar compares every lane against the broadcast of s with <=.
func LessEqualScalar[T Lanes](v Vec[T], s T) Mask {
	return unaryTest(v, func(a T) bool { return a <= s })
}

// GreaterScalar compares every lane against the broadcast of s with >.
func GreaterScalar[T Lanes](v Vec[T], s T) Mask {
	return unaryTest(v, func(a T) bool { return a > s })
}

// GreaterEqualScalar compares every lane against the broadcast of s with >=.
func GreaterEqualScalar[T Lanes](v Vec[T], s T) Mask {
	return unaryTest(v, func(a T) bool { return a >= s })
}

func unaryTest[T Lanes](v Vec[T], p func(a T) bool) Mask {
	bits := make([]bool, len(v.data))
	for i, a := range v.data {
		bits[i] = p(a)
	}
	return Mask{shape: v.shape, bits: bits}
}
