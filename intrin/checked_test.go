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
	"errors"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func TestAt(t *testing.T) {
	a := Int32x4{5, 6, 7, 8}
	for i := range a {
		got, err := At[int32](a, i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if got != a[i] {
			t.Errorf("At(%d): got %d, want %d", i, got, a[i])
		}
	}
	for _, i := range []int{-1, 4, 100} {
		if _, err := At[int32](a, i); !errors.Is(err, ErrLaneIndex) {
			t.Errorf("At(%d): got %v, want ErrLaneIndex", i, err)
		}
	}
}

func TestSetAt(t *testing.T) {
	var a Float64x4
	if err := SetAt[float64](&a, 3, 2.5); err != nil {
		t.Fatal(err)
	}
	if a[3] != 2.5 {
		t.Errorf("lane 3: got %v", a[3])
	}
	if err := SetAt[float64](&a, 4, 1); !errors.Is(err, ErrLaneIndex) {
		t.Errorf("got %v, want ErrLaneIndex", err)
	}
	if a != (Float64x4{0, 0, 0, 2.5}) {
		t.Errorf("failed SetAt modified container: %v", a)
	}
}

func TestFromSlice(t *testing.T) {
	got, err := FromSlice[Float32x8]([]float32{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Float32x8{1, 2, 3}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	full, err := FromSlice[Int64x2]([]int64{-1, 1})
	if err != nil || full != (Int64x2{-1, 1}) {
		t.Errorf("got %v, %v", full, err)
	}

	if _, err := FromSlice[Int32x4]([]int32{1, 2, 3, 4, 5}); !errors.Is(err, ErrTooManyLanes) {
		t.Errorf("got %v, want ErrTooManyLanes", err)
	}
}

func TestNewAligned(t *testing.T) {
	t.Run("Float32x4", func(t *testing.T) { checkNew[Float32x4](t, 16) })
	t.Run("Int32x8", func(t *testing.T) { checkNew[Int32x8](t, 32) })
	t.Run("Float64x8", func(t *testing.T) { checkNew[Float64x8](t, 64) })
	t.Run("Int64x8", func(t *testing.T) { checkNew[Int64x8](t, 64) })
}

func checkNew[A any, P interface {
	*A
	Alignment() int
}](t *testing.T, align int) {
	t.Helper()
	// Several allocations, so a lucky address does not hide a bug.
	for range 8 {
		p := New[A, P]()
		if addr := uintptr(unsafe.Pointer(p)); addr%uintptr(align) != 0 {
			t.Fatalf("New returned %#x, want %d-byte alignment", addr, align)
		}
		if !IsAligned[A, P](p) {
			t.Fatal("IsAligned reports false for New storage")
		}
		if err := CheckAlignment[A, P](p); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCheckAlignmentMisaligned(t *testing.T) {
	buf := allocAligned(64+8, 64)
	p := (*Float64x4)(unsafe.Pointer(&buf[8]))
	if IsAligned(p) {
		t.Fatal("8-byte offset reported as 32-byte aligned")
	}
	if err := CheckAlignment(p); !errors.Is(err, ErrMisaligned) {
		t.Errorf("got %v, want ErrMisaligned", err)
	}

	// Misaligned storage still works with the unchecked path.
	requireWidth(t, W256)
	*p = Float64x4{1, 2, 3, 4}
	if got := p.Vec().Array(); got != *p {
		t.Errorf("round trip through misaligned storage: got %v, want %v", got, *p)
	}
}

func TestAllocAligned(t *testing.T) {
	if got := allocAligned(0, 16); got != nil {
		t.Errorf("size 0: got %v, want nil", got)
	}
	for _, align := range []int{16, 32, 64} {
		buf := allocAligned(40, align)
		if len(buf) != 40 || cap(buf) != 40 {
			t.Errorf("align %d: len %d cap %d", align, len(buf), cap(buf))
		}
		if addr := uintptr(unsafe.Pointer(&buf[0])); addr%uintptr(align) != 0 {
			t.Errorf("align %d: address %#x", align, addr)
		}
	}
}
