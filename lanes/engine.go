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

import "fmt"

// This file is the generic lane-wise operation engine. Every arithmetic,
// bitwise, comparison and reduction operation in the package is a thin
// wrapper over these six shapes of computation. Masked variants share one
// rule: unselected lanes pass through the first operand unchanged.

// sameSpecies verifies two vectors may be combined: identical shape and
// lane count.
func sameSpecies[T Lanes](a, b Vec[T]) error {
	if a.shape != b.shape || len(a.data) != len(b.data) {
		return fmt.Errorf("%w: %s vs %s", ErrShapeMismatch, a.Species(), b.Species())
	}
	return nil
}

// maskFits verifies a mask may gate a vector: same shape and lane count.
// The mask itself is element-type agnostic.
func maskFits[T Lanes](v Vec[T], m Mask) error {
	if v.shape != m.shape || len(v.data) != len(m.bits) {
		return fmt.Errorf("%w: mask %s/%d lanes vs vector %s", ErrShapeMismatch, m.shape, len(m.bits), v.Species())
	}
	return nil
}

// shuffleFits verifies a shuffle may permute a vector.
func shuffleFits[T Lanes](v Vec[T], s Shuffle) error {
	if v.shape != s.shape || len(v.data) != len(s.idx) {
		return fmt.Errorf("%w: shuffle %s/%d lanes vs vector %s", ErrShapeMismatch, s.shape, len(s.idx), v.Species())
	}
	return nil
}

// UnaryOp applies f lane-wise: result lane N is f(N, v[N]).
func UnaryOp[T Lanes](v Vec[T], f func(i int, a T) T) Vec[T] {
	data := make([]T, len(v.data))
	for i, a := range v.data {
		data[i] = f(i, a)
	}
	return Vec[T]{shape: v.shape, data: data}
}

// UnaryOpMasked applies f to lanes where the mask is set; unselected lanes
// pass through v unchanged.
func UnaryOpMasked[T Lanes](v Vec[T], m Mask, f func(i int, a T) T) (Vec[T], error) {
	if err := maskFits(v, m); err != nil {
		return Vec[T]{}, err
	}
	data := make([]T, len(v.data))
	for i, a := range v.data {
		if m.bits[i] {
			data[i] = f(i, a)
		} else {
			data[i] = a
		}
	}
	return Vec[T]{shape: v.shape, data: data}, nil
}

// BinaryOp applies f lane-wise to two vectors of identical species: result
// lane N is f(N, a[N], b[N]).
func BinaryOp[T Lanes](a, b Vec[T], f func(i int, x, y T) T) (Vec[T], error) {
	if err := sameSpecies(a, b); err != nil {
		return Vec[T]{}, err
	}
	data := make([]T, len(a.data))
	for i, x := range a.data {
		data[i] = f(i, x, b.data[i])
	}
	return Vec[T]{shape: a.shape, data: data}, nil
}

// BinaryOpMasked applies f where the mask is set; unselected lanes pass
// through the first operand unchanged.
func BinaryOpMasked[T Lanes](a, b Vec[T], m Mask, f func(i int, x, y T) T) (Vec[T], error) {
	if err := sameSpecies(a, b); err != nil {
		return Vec[T]{}, err
	}
	if err := maskFits(a, m); err != nil {
		return Vec[T]{}, err
	}
	data := make([]T, len(a.data))
	for i, x := range a.data {
		if m.bits[i] {
			data[i] = f(i, x, b.data[i])
		} else {
			data[i] = x
		}
	}
	return Vec[T]{shape: a.shape, data: data}, nil
}

// TernaryOp applies f lane-wise to three vectors of identical species.
func TernaryOp[T Lanes](a, b, c Vec[T], f func(i int, x, y, z T) T) (Vec[T], error) {
	if err := sameSpecies(a, b); err != nil {
		return Vec[T]{}, err
	}
	if err := sameSpecies(a, c); err != nil {
		return Vec[T]{}, err
	}
	data := make([]T, len(a.data))
	for i, x := range a.data {
		data[i] = f(i, x, b.data[i], c.data[i])
	}
	return Vec[T]{shape: a.shape, data: data}, nil
}

// TernaryOpMasked applies f where the mask is set; unselected lanes pass
// through the first operand unchanged.
func TernaryOpMasked[T Lanes](a, b, c Vec[T], m Mask, f func(i int, x, y, z T) T) (Vec[T], error) {
	if err := sameSpecies(a, b); err != nil {
		return Vec[T]{}, err
	}
	if err := sameSpecies(a, c); err != nil {
		return Vec[T]{}, err
	}
	if err := maskFits(a, m); err != nil {
		return Vec[T]{}, err
	}
	data := make([]T, len(a.data))
	for i, x := range a.data {
		if m.bits[i] {
			data[i] = f(i, x, b.data[i], c.data[i])
		} else {
			data[i] = x
		}
	}
	return Vec[T]{shape: a.shape, data: data}, nil
}

// BinaryTest applies the predicate lane-wise and collects the results into a
// mask: lane N is p(N, a[N], b[N]).
func BinaryTest[T Lanes](a, b Vec[T], p func(i int, x, y T) bool) (Mask, error) {
	if err := sameSpecies(a, b); err != nil {
		return Mask{}, err
	}
	bits := make([]bool, len(a.data))
	for i, x := range a.data {
		bits[i] = p(i, x, b.data[i])
	}
	return Mask{shape: a.shape, bits: bits}, nil
}

// Fold reduces the vector to a scalar: starting from the identity, f is
// applied to the accumulator and each lane in ascending order.
func Fold[T Lanes](v Vec[T], identity T, f func(acc, x T) T) T {
	acc := identity
	for _, x := range v.data {
		acc = f(acc, x)
	}
	return acc
}

// FoldMasked is Fold with lane selection: masked-out lanes contribute the
// identity element, not nothing, so the fold always visits Length() lanes.
func FoldMasked[T Lanes](v Vec[T], m Mask, identity T, f func(acc, x T) T) (T, error) {
	if err := maskFits(v, m); err != nil {
		var zero T
		return zero, err
	}
	acc := identity
	for i, x := range v.data {
		if m.bits[i] {
			acc = f(acc, x)
		} else {
			acc = f(acc, identity)
		}
	}
	return acc, nil
}

// ForEach visits every lane in ascending order. It is the driver for store
// operations.
func ForEach[T Lanes](v Vec[T], f func(i int, a T)) {
	for i, a := range v.data {
		f(i, a)
	}
}

// ForEachMasked visits lanes where the mask is set, still in ascending
// order. Callers that stream lanes into a buffer must advance their cursor
// for skipped lanes themselves to keep the stream aligned.
func ForEachMasked[T Lanes](v Vec[T], m Mask, f func(i int, a T)) error {
	if err := maskFits(v, m); err != nil {
		return err
	}
	for i, a := range v.data {
		if m.bits[i] {
			f(i, a)
		}
	}
	return nil
}
