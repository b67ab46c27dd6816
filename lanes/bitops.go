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

import (
	"math/bits"
	"unsafe"
)

// This file provides bitwise and shift operations for integer vectors.
// Shift counts are masked to the low log2(elementBits) bits, matching
// native fixed-width shift semantics; rotates wrap bits within the lane.

// And performs lane-wise bitwise AND.
func And[T Integers](a, b Vec[T]) (Vec[T], error) {
	return BinaryOp(a, b, func(_ int, x, y T) T { return x & y })
}

// AndMasked ANDs where the mask is set; unselected lanes pass through a.
func AndMasked[T Integers](a, b Vec[T], m Mask) (Vec[T], error) {
	return BinaryOpMasked(a, b, m, func(_ int, x, y T) T { return x & y })
}

// AndScalar ANDs every lane with the broadcast of s.
func AndScalar[T Integers](v Vec[T], s T) Vec[T] {
	return UnaryOp(v, func(_ int, a T) T { return a & s })
}

// Or performs lane-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) (Vec[T], error) {
	return BinaryOp(a, b, func(_ int, x, y T) T { return x | y })
}

// OrMasked ORs where the mask is set; unselected lanes pass through a.
func OrMasked[T Integers](a, b Vec[T], m Mask) (Vec[T], error) {
	return BinaryOpMasked(a, b, m, func(_ int, x, y T) T { return x | y })
}

// OrScalar ORs every lane with the broadcast of s.
func OrScalar[T Integers](v Vec[T], s T) Vec[T] {
	return UnaryOp(v, func(_ int, a T) T { return a | s })
}

// Xor performs lane-wise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) (Vec[T], error) {
	return BinaryOp(a, b, func(_ int, x, y T) T { return x ^ y })
}

// XorMasked XORs where the mask is set; unselected lanes pass through a.
func XorMasked[T Integers](a, b Vec[T], m Mask) (Vec[T], error) {
	return BinaryOpMasked(a, b, m, func(_ int, x, y T) T { return x ^ y })
}

// XorScalar XORs every lane with the broadcast of s.
func XorScalar[T Integers](v Vec[T], s T) Vec[T] {
	return UnaryOp(v, func(_ int, a T) T { return a ^ s })
}

// AndNot computes (^a) & b lane-wise.
func AndNot[T Integers](a, b Vec[T]) (Vec[T], error) {
	return BinaryOp(a, b, func(_ int, x, y T) T { return (^x) & y })
}

// AndNotMasked applies AndNot where the mask is set; unselected lanes pass
// through a.
func AndNotMasked[T Integers](a, b Vec[T], m Mask) (Vec[T], error) {
	return BinaryOpMasked(a, b, m, func(_ int, x, y T) T { return (^x) & y })
}

// Not performs lane-wise bitwise NOT (ones complement).
func Not[T Integers](v Vec[T]) Vec[T] {
	return UnaryOp(v, func(_ int, a T) T { return ^a })
}

// NotMasked complements lanes where the mask is set.
func NotMasked[T Integers](v Vec[T], m Mask) (Vec[T], error) {
	return UnaryOpMasked(v, m, func(_ int, a T) T { return ^a })
}

// shiftMask returns the mask applied to shift counts for lane type T:
// elementBits-1, so only the low log2(elementBits) bits are used.
func shiftMask[T Integers]() uint {
	var dummy T
	return uint(unsafe.Sizeof(dummy))*8 - 1
}

// ShiftLeft shifts every lane left. The count is masked to the lane width.
func ShiftLeft[T Integers](v Vec[T], count uint) Vec[T] {
	count &= shiftMask[T]()
	return UnaryOp(v, func(_ int, a T) T { return a << count })
}

// ShiftLeftMasked shifts lanes where the mask is set.
func ShiftLeftMasked[T Integers](v Vec[T], count uint, m Mask) (Vec[T], error) {
	count &= shiftMask[T]()
	return UnaryOpMasked(v, m, func(_ int, a T) T { return a << count })
}

// ShiftRightArithmetic shifts every lane right, sign-extending signed lanes
// and zero-filling unsigned ones. The count is masked to the lane width.
func ShiftRightArithmetic[T Integers](v Vec[T], count uint) Vec[T] {
	count &= shiftMask[T]()
	return UnaryOp(v, func(_ int, a T) T { return a >> count })
}

// ShiftRightArithmeticMasked shifts lanes where the mask is set.
func ShiftRightArithmeticMasked[T Integers](v Vec[T], count uint, m Mask) (Vec[T], error) {
	count &= shiftMask[T]()
	return UnaryOpMasked(v, m, func(_ int, a T) T { return a >> count })
}

// ShiftRightLogical shifts every lane right, zero-filling regardless of
// sign. The count is masked to the lane width.
func ShiftRightLogical[T Integers](v Vec[T], count uint) Vec[T] {
	count &= shiftMask[T]()
	return UnaryOp(v, func(_ int, a T) T { return shiftRightLogical(a, count) })
}

// ShiftRightLogicalMasked shifts lanes where the mask is set.
func ShiftRightLogicalMasked[T Integers](v Vec[T], count uint, m Mask) (Vec[T], error) {
	count &= shiftMask[T]()
	return UnaryOpMasked(v, m, func(_ int, a T) T { return shiftRightLogical(a, count) })
}

func shiftRightLogical[T Integers](a T, count uint) T {
	switch av := any(a).(type) {
	case int8:
		return any(int8(uint8(av) >> count)).(T)
	case int16:
		return any(int16(uint16(av) >> count)).(T)
	case int32:
		return any(int32(uint32(av) >> count)).(T)
	case int64:
		return any(int64(uint64(av) >> count)).(T)
	default:
		// Unsigned lanes: >> is already logical.
		return a >> count
	}
}

// RotateLeft rotates the bits within each lane left by count, wrapping.
func RotateLeft[T Integers](v Vec[T], count int) Vec[T] {
	return UnaryOp(v, func(_ int, a T) T { return rotateLane(a, count) })
}

// RotateRight rotates the bits within each lane right by count, wrapping.
func RotateRight[T Integers](v Vec[T], count int) Vec[T] {
	return UnaryOp(v, func(_ int, a T) T { return rotateLane(a, -count) })
}

func rotateLane[T Integers](a T, count int) T {
	switch av := any(a).(type) {
	case int8:
		return any(int8(bits.RotateLeft8(uint8(av), count))).(T)
	case uint8:
		return any(bits.RotateLeft8(av, count)).(T)
	case int16:
		return any(int16(bits.RotateLeft16(uint16(av), count))).(T)
	case uint16:
		return any(bits.RotateLeft16(av, count)).(T)
	case int32:
		return any(int32(bits.RotateLeft32(uint32(av), count))).(T)
	case uint32:
		return any(bits.RotateLeft32(av, count)).(T)
	case int64:
		return any(int64(bits.RotateLeft64(uint64(av), count))).(T)
	case uint64:
		return any(bits.RotateLeft64(av, count)).(T)
	default:
		return a
	}
}

// PopCount counts the set bits in each lane.
func PopCount[T Integers](v Vec[T]) Vec[T] {
	return UnaryOp(v, func(_ int, a T) T { return popCountLane(a) })
}

func popCountLane[T Integers](a T) T {
	switch av := any(a).(type) {
	case int8:
		return T(bits.OnesCount8(uint8(av)))
	case uint8:
		return T(bits.OnesCount8(av))
	case int16:
		return T(bits.OnesCount16(uint16(av)))
	case uint16:
		return T(bits.OnesCount16(av))
	case int32:
		return T(bits.OnesCount32(uint32(av)))
	case uint32:
		return T(bits.OnesCount32(av))
	case int64:
		return T(bits.OnesCount64(uint64(av)))
	case uint64:
		return T(bits.OnesCount64(av))
	default:
		return 0
	}
}

// TestBit returns a mask of lanes whose bit'th bit is set. Bit 0 is the
// least significant; the bit number is masked like a shift count.
func TestBit[T Integers](v Vec[T], bit uint) Mask {
	bit &= shiftMask[T]()
	return unaryTest(v, func(a T) bool { return shiftRightLogical(a, bit)&1 != 0 })
}
