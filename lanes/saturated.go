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

import "math"

// This file provides saturating integer arithmetic. Results clamp to the
// operand element type's own minimum/maximum representable value, never to a
// wider intermediate type's bounds: int8 120+50 saturates to 127.

// SaturatedAdd performs lane-wise addition with saturation.
// For example, uint8: 250 + 10 = 255 (not 4).
func SaturatedAdd[T Integers](a, b Vec[T]) (Vec[T], error) {
	return BinaryOp(a, b, func(_ int, x, y T) T { return saturatedAdd(x, y) })
}

// SaturatedAddMasked saturating-adds where the mask is set; unselected lanes
// pass through a.
func SaturatedAddMasked[T Integers](a, b Vec[T], m Mask) (Vec[T], error) {
	return BinaryOpMasked(a, b, m, func(_ int, x, y T) T { return saturatedAdd(x, y) })
}

// SaturatedSub performs lane-wise subtraction with saturation.
// For example, uint8: 10 - 20 = 0 (not 246).
func SaturatedSub[T Integers](a, b Vec[T]) (Vec[T], error) {
	return BinaryOp(a, b, func(_ int, x, y T) T { return saturatedSub(x, y) })
}

// SaturatedSubMasked saturating-subtracts where the mask is set; unselected
// lanes pass through a.
func SaturatedSubMasked[T Integers](a, b Vec[T], m Mask) (Vec[T], error) {
	return BinaryOpMasked(a, b, m, func(_ int, x, y T) T { return saturatedSub(x, y) })
}

func saturatedAdd[T Integers](a, b T) T {
	switch av := any(a).(type) {
	case int8:
		sum := int16(av) + int16(any(b).(int8))
		return any(int8(clampI(sum, math.MinInt8, math.MaxInt8))).(T)
	case int16:
		sum := int32(av) + int32(any(b).(int16))
		return any(int16(clampI(sum, math.MinInt16, math.MaxInt16))).(T)
	case int32:
		sum := int64(av) + int64(any(b).(int32))
		return any(int32(clampI(sum, math.MinInt32, math.MaxInt32))).(T)
	case int64:
		bv := any(b).(int64)
		if bv > 0 && av > math.MaxInt64-bv {
			return any(int64(math.MaxInt64)).(T)
		}
		if bv < 0 && av < math.MinInt64-bv {
			return any(int64(math.MinInt64)).(T)
		}
		return any(av + bv).(T)
	case uint8:
		sum := uint16(av) + uint16(any(b).(uint8))
		return any(uint8(min(sum, math.MaxUint8))).(T)
	case uint16:
		sum := uint32(av) + uint32(any(b).(uint16))
		return any(uint16(min(sum, math.MaxUint16))).(T)
	case uint32:
		sum := uint64(av) + uint64(any(b).(uint32))
		return any(uint32(min(sum, math.MaxUint32))).(T)
	case uint64:
		bv := any(b).(uint64)
		if av > math.MaxUint64-bv {
			return any(uint64(math.MaxUint64)).(T)
		}
		return any(av + bv).(T)
	default:
		return a + b
	}
}

func saturatedSub[T Integers](a, b T) T {
	switch av := any(a).(type) {
	case int8:
		diff := int16(av) - int16(any(b).(int8))
		return any(int8(clampI(diff, math.MinInt8, math.MaxInt8))).(T)
	case int16:
		diff := int32(av) - int32(any(b).(int16))
		return any(int16(clampI(diff, math.MinInt16, math.MaxInt16))).(T)
	case int32:
		diff := int64(av) - int64(any(b).(int32))
		return any(int32(clampI(diff, math.MinInt32, math.MaxInt32))).(T)
	case int64:
		bv := any(b).(int64)
		if bv < 0 && av > math.MaxInt64+bv {
			return any(int64(math.MaxInt64)).(T)
		}
		if bv > 0 && av < math.MinInt64+bv {
			return any(int64(math.MinInt64)).(T)
		}
		return any(av - bv).(T)
	case uint8:
		bv := any(b).(uint8)
		if bv > av {
			return any(uint8(0)).(T)
		}
		return any(av - bv).(T)
	case uint16:
		bv := any(b).(uint16)
		if bv > av {
			return any(uint16(0)).(T)
		}
		return any(av - bv).(T)
	case uint32:
		bv := any(b).(uint32)
		if bv > av {
			return any(uint32(0)).(T)
		}
		return any(av - bv).(T)
	case uint64:
		bv := any(b).(uint64)
		if bv > av {
			return any(uint64(0)).(T)
		}
		return any(av - bv).(T)
	default:
		return a - b
	}
}

// clampI clamps a widened signed intermediate back into [lo, hi].
func clampI[T SignedInts](v T, lo, hi T) T {
	return min(max(v, lo), hi)
}
