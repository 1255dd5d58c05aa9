// Copyright 2025 go-highway Authors
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

package intrin

import (
	"fmt"
	"strconv"
	"strings"
)

// Width is a vector register width, in bytes.
type Width int

const (
	// W128 is a 128-bit (16 byte) register: SSE/AVX xmm.
	W128 Width = 16

	// W256 is a 256-bit (32 byte) register: AVX/AVX2 ymm.
	W256 Width = 32

	// W512 is a 512-bit (64 byte) register: AVX-512 zmm.
	W512 Width = 64
)

// Bytes returns the width in bytes.
func (w Width) Bytes() int {
	return int(w)
}

// Bits returns the width in bits.
func (w Width) Bits() int {
	return int(w) * 8
}

// Valid reports whether w is one of W128, W256 or W512.
func (w Width) Valid() bool {
	return w == W128 || w == W256 || w == W512
}

// String returns "128bit", "256bit" or "512bit".
func (w Width) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Width(%d)", int(w))
	}
	return strconv.Itoa(w.Bits()) + "bit"
}

// Shape names one container variant by its scalar kind and lane count.
type Shape struct {
	Kind  Kind
	Lanes int
}

// Bytes returns the total size of the lanes in bytes.
func (s Shape) Bytes() int {
	return s.Kind.Size() * s.Lanes
}

// Width returns the register width filled by the shape, or 0 when the lanes
// do not fill exactly one supported register.
func (s Shape) Width() Width {
	w := Width(s.Bytes())
	if !w.Valid() {
		return 0
	}
	return w
}

// Alignment returns the storage alignment in bytes required by the aligned
// load/store instructions for this shape. It equals the register width.
func (s Shape) Alignment() int {
	return s.Width().Bytes()
}

// Valid reports whether s is one of the supported container shapes.
func (s Shape) Valid() bool {
	return s.Kind.Size() != 0 && s.Width() != 0
}

// Name returns the lower-case shape name, e.g. "float32x8".
func (s Shape) Name() string {
	return s.Kind.String() + "x" + strconv.Itoa(s.Lanes)
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	return s.Name()
}

// ParseShape parses a shape name such as "int32x4" or "Float64x8".
func ParseShape(name string) (Shape, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	idx := strings.LastIndexByte(lower, 'x')
	if idx <= 0 || idx == len(lower)-1 {
		return Shape{}, fmt.Errorf("%w: malformed shape %q", ErrUnsupportedShape, name)
	}
	kind, err := ParseKind(lower[:idx])
	if err != nil {
		return Shape{}, err
	}
	lanes, err := strconv.Atoi(lower[idx+1:])
	if err != nil {
		return Shape{}, fmt.Errorf("%w: malformed lane count in %q", ErrUnsupportedShape, name)
	}
	s := Shape{Kind: kind, Lanes: lanes}
	if !s.Valid() {
		return Shape{}, fmt.Errorf("%w: %s does not fill a 128, 256 or 512-bit register", ErrUnsupportedShape, s)
	}
	return s, nil
}
