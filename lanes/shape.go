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

import "strconv"

// Shape is the total bit width of a vector. Only four widths exist; a Shape
// carries no behavior beyond sizing the vectors, masks and shuffles built
// from it.
type Shape int

const (
	// Shape64 is a 64-bit vector.
	Shape64 Shape = 64

	// Shape128 is a 128-bit vector (SSE/NEON register width).
	Shape128 Shape = 128

	// Shape256 is a 256-bit vector (AVX2 register width).
	Shape256 Shape = 256

	// Shape512 is a 512-bit vector (AVX-512 register width).
	Shape512 Shape = 512
)

// Bits returns the total width of the shape in bits.
func (s Shape) Bits() int {
	return int(s)
}

// Bytes returns the total width of the shape in bytes.
func (s Shape) Bytes() int {
	return int(s) / 8
}

// Valid reports whether s is one of the four supported shapes.
func (s Shape) Valid() bool {
	switch s {
	case Shape64, Shape128, Shape256, Shape512:
		return true
	}
	return false
}

// Shapes returns all supported shapes in ascending width order.
func Shapes() []Shape {
	return []Shape{Shape64, Shape128, Shape256, Shape512}
}

// String returns a human-readable name for the shape ("128bit" etc).
func (s Shape) String() string {
	if !s.Valid() {
		return "invalid(" + strconv.Itoa(int(s)) + ")"
	}
	return strconv.Itoa(int(s)) + "bit"
}
