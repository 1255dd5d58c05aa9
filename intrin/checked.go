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
	"unsafe"
)

// This file is the opt-in checked path. The container methods (Get, Set,
// Vec, Add, ...) do no validation of their own; these helpers report misuse
// as errors instead.

// At returns lane i of a, or ErrLaneIndex if i is out of range.
func At[T Lanes](a Array[T], i int) (T, error) {
	if i < 0 || i >= a.NumLanes() {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0, %d) for %s", ErrLaneIndex, i, a.NumLanes(), a.Shape())
	}
	return a.Get(i), nil
}

// SetAt stores v in lane i of a, or returns ErrLaneIndex if i is out of range.
func SetAt[T Lanes](a MutableArray[T], i int, v T) error {
	if i < 0 || i >= a.NumLanes() {
		return fmt.Errorf("%w: %d not in [0, %d) for %s", ErrLaneIndex, i, a.NumLanes(), a.Shape())
	}
	a.Set(i, v)
	return nil
}

// FromSlice builds a container of type A from src. Lanes past len(src) are
// zero, matching a short composite literal. A src longer than the container
// returns ErrTooManyLanes.
//
//	v, err := intrin.FromSlice[intrin.Float32x8](values)
func FromSlice[A any, T Lanes, P interface {
	*A
	MutableArray[T]
}](src []T) (A, error) {
	var a A
	p := P(&a)
	if len(src) > p.NumLanes() {
		return a, fmt.Errorf("%w: %d values for %s", ErrTooManyLanes, len(src), p.Shape())
	}
	for i, v := range src {
		p.Set(i, v)
	}
	return a, nil
}

// New returns a zeroed container of type A whose storage is aligned to the
// container's register alignment.
//
//	p := intrin.New[intrin.Float64x8]() // 64-byte aligned
func New[A any, P interface {
	*A
	Alignment() int
}]() *A {
	var zero A
	size := int(unsafe.Sizeof(zero))
	buf := allocAligned(size, P(&zero).Alignment())
	return (*A)(unsafe.Pointer(&buf[0]))
}

// IsAligned reports whether the storage at p satisfies its container's
// register alignment.
func IsAligned[A any, P interface {
	*A
	Alignment() int
}](p P) bool {
	return addrOf((*A)(p))%uintptr(p.Alignment()) == 0
}

// CheckAlignment returns ErrMisaligned if the storage at p does not satisfy
// its container's register alignment.
func CheckAlignment[A any, P interface {
	*A
	Alignment() int
}](p P) error {
	if !IsAligned[A, P](p) {
		return fmt.Errorf("%w: %T at 0x%x, want %d-byte alignment", ErrMisaligned, p, addrOf((*A)(p)), p.Alignment())
	}
	return nil
}
