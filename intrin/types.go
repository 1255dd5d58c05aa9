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

// Package intrin provides fixed-width lane containers that map one-to-one onto
// SIMD registers.
//
// Each container is a plain Go array sized to fill exactly one 128-, 256- or
// 512-bit register (Int32x4, Float32x8, Float64x8, ...). Arithmetic methods
// load both operands into registers, issue a single vector instruction and
// store the result into a fresh container:
//
//	a := intrin.Float32x8{123.2, 1233.5, 77.3, 99.23, 555.7, 456.7, 765.3, 4512.12}
//	sq := a.Mul(a)
//
// The register handle is also available directly, for chaining several
// instructions without going back through memory:
//
//	v := a.Vec()
//	r := v.Mul(v).Add(v).Array()
//
// Builds with GOEXPERIMENT=simd on amd64 issue AVX/AVX2/AVX-512 instructions
// through simd/archsimd. All other builds (or any build with the purego tag)
// use a portable per-lane path with identical results. There is no runtime
// fallback: a SIMD binary on a host without the needed extension fails at
// load time, see CheckHost.
package intrin

import "fmt"

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int32 | ~int64
}

// Lanes is a constraint for all types that can be stored in a container lane.
type Lanes interface {
	Floats | SignedInts
}

// Kind identifies the scalar type held in every lane of a container.
type Kind uint8

const (
	// KindInvalid is the zero Kind.
	KindInvalid Kind = iota

	// KindInt32 is a 32-bit two's-complement integer lane.
	KindInt32

	// KindInt64 is a 64-bit two's-complement integer lane.
	KindInt64

	// KindFloat32 is an IEEE-754 binary32 lane.
	KindFloat32

	// KindFloat64 is an IEEE-754 binary64 lane.
	KindFloat64
)

// String returns the Go name of the scalar type ("int32", "float64", ...).
func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Size returns the size of one lane in bytes, or 0 for an invalid Kind.
func (k Kind) Size() int {
	switch k {
	case KindInt32, KindFloat32:
		return 4
	case KindInt64, KindFloat64:
		return 8
	default:
		return 0
	}
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// ParseKind returns the Kind named by s.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{KindInt32, KindInt64, KindFloat32, KindFloat64} {
		if k.String() == s {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("%w: unknown scalar kind %q", ErrUnsupportedShape, s)
}

// Array is the read-only method set shared by every lane container.
type Array[T Lanes] interface {
	// NumLanes returns the number of lanes.
	NumLanes() int

	// Get returns lane i.
	Get(i int) T

	// Data returns the lanes as a slice.
	Data() []T

	// Shape returns the (kind, lane count) pair of the container.
	Shape() Shape

	// Width returns the register width the container fills.
	Width() Width

	// Alignment returns the storage alignment in bytes that the register
	// load/store instruction class expects.
	Alignment() int
}

// MutableArray is implemented by pointers to lane containers.
type MutableArray[T Lanes] interface {
	Array[T]

	// Set stores v in lane i.
	Set(i int, v T)
}
