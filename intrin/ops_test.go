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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// requireWidth skips the test when this binary cannot run containers of
// width w on the host.
func requireWidth(t *testing.T, w Width) {
	t.Helper()
	if err := CheckHost(w); err != nil {
		t.Skipf("skipping %s containers: %v", w, err)
	}
}

type arith[A any] interface {
	Add(A) A
	Sub(A) A
	Mul(A) A
}

type divider[A any] interface {
	Div(A) A
}

// fill sets lane i of *a to f(i).
func fill[A any, T Lanes, P interface {
	*A
	MutableArray[T]
}](f func(i int) T) A {
	var a A
	p := P(&a)
	for i := 0; i < p.NumLanes(); i++ {
		p.Set(i, f(i))
	}
	return a
}

func lanesOf[A any, T Lanes, P interface {
	*A
	MutableArray[T]
}](a A) []T {
	return append([]T(nil), P(&a).Data()...)
}

func testArith[A arith[A], T Lanes, P interface {
	*A
	MutableArray[T]
}](t *testing.T) {
	var zero A
	requireWidth(t, P(&zero).Width())

	a := fill[A, T, P](func(i int) T { return T(i + 1) })
	b := fill[A, T, P](func(i int) T { return T(10 * (i + 1)) })
	n := P(&zero).NumLanes()

	wantAdd := make([]T, n)
	wantSub := make([]T, n)
	wantMul := make([]T, n)
	for i := range n {
		x, y := T(i+1), T(10*(i+1))
		wantAdd[i] = x + y
		wantSub[i] = x - y
		wantMul[i] = x * y
	}

	if diff := cmp.Diff(wantAdd, lanesOf[A, T, P](a.Add(b))); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantSub, lanesOf[A, T, P](a.Sub(b))); diff != "" {
		t.Errorf("Sub mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantMul, lanesOf[A, T, P](a.Mul(b))); diff != "" {
		t.Errorf("Mul mismatch (-want +got):\n%s", diff)
	}

	// Operands are values; the methods must not write through them.
	if diff := cmp.Diff(lanesOf[A, T, P](fill[A, T, P](func(i int) T { return T(i + 1) })), lanesOf[A, T, P](a)); diff != "" {
		t.Errorf("operand modified (-want +got):\n%s", diff)
	}
}

func testDiv[A divider[A], T Floats, P interface {
	*A
	MutableArray[T]
}](t *testing.T) {
	var zero A
	requireWidth(t, P(&zero).Width())

	a := fill[A, T, P](func(i int) T { return T(3 * (i + 1)) })
	b := fill[A, T, P](func(i int) T { return T(i + 1) })
	n := P(&zero).NumLanes()
	want := make([]T, n)
	for i := range n {
		want[i] = T(3*(i+1)) / T(i+1)
	}
	if diff := cmp.Diff(want, lanesOf[A, T, P](a.Div(b))); diff != "" {
		t.Errorf("Div mismatch (-want +got):\n%s", diff)
	}
}

func TestArithmetic(t *testing.T) {
	t.Run("Int32x4", testArith[Int32x4, int32])
	t.Run("Int32x8", testArith[Int32x8, int32])
	t.Run("Int32x16", testArith[Int32x16, int32])
	t.Run("Int64x2", testArith[Int64x2, int64])
	t.Run("Int64x4", testArith[Int64x4, int64])
	t.Run("Int64x8", testArith[Int64x8, int64])
	t.Run("Float32x4", testArith[Float32x4, float32])
	t.Run("Float32x8", testArith[Float32x8, float32])
	t.Run("Float32x16", testArith[Float32x16, float32])
	t.Run("Float64x2", testArith[Float64x2, float64])
	t.Run("Float64x4", testArith[Float64x4, float64])
	t.Run("Float64x8", testArith[Float64x8, float64])
}

func TestDivision(t *testing.T) {
	t.Run("Float32x4", testDiv[Float32x4, float32])
	t.Run("Float32x8", testDiv[Float32x8, float32])
	t.Run("Float32x16", testDiv[Float32x16, float32])
	t.Run("Float64x2", testDiv[Float64x2, float64])
	t.Run("Float64x4", testDiv[Float64x4, float64])
	t.Run("Float64x8", testDiv[Float64x8, float64])
}

func TestInt32x4Scenario(t *testing.T) {
	requireWidth(t, W128)
	a := Int32x4{1, 2, 3, 4}
	b := Int32x4{10, 20, 30, 40}

	tests := []struct {
		name string
		got  Int32x4
		want Int32x4
	}{
		{"Add", a.Add(b), Int32x4{11, 22, 33, 44}},
		{"Sub", a.Sub(b), Int32x4{-9, -18, -27, -36}},
		{"SubReversed", b.Sub(a), Int32x4{9, 18, 27, 36}},
		{"Mul", a.Mul(b), Int32x4{10, 40, 90, 160}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestFloat32x8Squares(t *testing.T) {
	requireWidth(t, W256)
	a := Float32x8{123.2, 1233.5, 77.3, 99.23, 555.7, 456.7, 765.3, 4512.12}
	got := a.Mul(a)
	for i, x := range a {
		// One IEEE multiply rounds exactly like the scalar product.
		if want := x * x; got[i] != want {
			t.Errorf("lane %d: got %v, want %v", i, got[i], want)
		}
	}
	approx := cmpopts.EquateApprox(1e-6, 0)
	if diff := cmp.Diff(float32(15178.24), got[0], approx); diff != "" {
		t.Errorf("123.2 squared (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(float32(20359226.9), got[7], approx); diff != "" {
		t.Errorf("4512.12 squared (-want +got):\n%s", diff)
	}
}

func TestIntegerWraparound(t *testing.T) {
	t.Run("Int32x4", func(t *testing.T) {
		requireWidth(t, W128)
		got := Int32x4{math.MaxInt32, math.MinInt32, 0, -1}.Add(Int32x4{1, -1, 0, 1})
		want := Int32x4{math.MinInt32, math.MaxInt32, 0, 0}
		if got != want {
			t.Errorf("Add: got %v, want %v", got, want)
		}
		got = Int32x4{1 << 30, -(1 << 30), 3, 0}.Mul(Int32x4{4, 4, 3, 7})
		want = Int32x4{0, 0, 9, 0}
		if got != want {
			t.Errorf("Mul low bits: got %v, want %v", got, want)
		}
	})
	t.Run("Int64x2", func(t *testing.T) {
		requireWidth(t, W128)
		got := Int64x2{math.MaxInt64, math.MinInt64}.Mul(Int64x2{2, 2})
		want := Int64x2{-2, 0}
		if got != want {
			t.Errorf("Mul: got %v, want %v", got, want)
		}
		got = Int64x2{math.MinInt64, 5}.Sub(Int64x2{1, 7})
		want = Int64x2{math.MaxInt64, -2}
		if got != want {
			t.Errorf("Sub: got %v, want %v", got, want)
		}
	})
	t.Run("Int64x4", func(t *testing.T) {
		requireWidth(t, W256)
		// Lanes above 32 bits catch a doubleword add on quadword lanes.
		a := Int64x4{1<<32 - 1, 1 << 40, -(1 << 33), math.MaxInt64}
		got := a.Add(Int64x4{1, 1 << 40, 1 << 33, 1})
		want := Int64x4{1 << 32, 1 << 41, 0, math.MinInt64}
		if got != want {
			t.Errorf("Add: got %v, want %v", got, want)
		}
	})
}

func TestFloatDivisionIEEE(t *testing.T) {
	requireWidth(t, W128)
	got := Float64x2{1, 0}.Div(Float64x2{0, 0})
	if !math.IsInf(got[0], 1) {
		t.Errorf("1/0: got %v, want +Inf", got[0])
	}
	if !math.IsNaN(got[1]) {
		t.Errorf("0/0: got %v, want NaN", got[1])
	}

	negZero := float32(math.Copysign(0, -1))
	got32 := Float32x4{-1, 1, float32(math.Inf(1)), 2}.Div(Float32x4{0, negZero, 2, 4})
	want32 := Float32x4{float32(math.Inf(-1)), float32(math.Inf(-1)), float32(math.Inf(1)), 0.5}
	if got32 != want32 {
		t.Errorf("got %v, want %v", got32, want32)
	}

	nan := Float64x2{math.NaN(), 1}.Add(Float64x2{1, math.NaN()})
	if diff := cmp.Diff([]float64{math.NaN(), math.NaN()}, nan.Data(), cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("NaN propagation (-want +got):\n%s", diff)
	}
}

func TestRoundTripBits(t *testing.T) {
	t.Run("Float64x2", func(t *testing.T) {
		requireWidth(t, W128)
		payload := math.Float64frombits(0x7ff8_0000_0000_0123)
		a := Float64x2{payload, math.Copysign(0, -1)}
		got := a.Vec().Array()
		for i := range a {
			if math.Float64bits(got[i]) != math.Float64bits(a[i]) {
				t.Errorf("lane %d: got bits %#x, want %#x", i, math.Float64bits(got[i]), math.Float64bits(a[i]))
			}
		}
	})
	t.Run("Float32x8", func(t *testing.T) {
		requireWidth(t, W256)
		var a Float32x8
		for i := range a {
			a[i] = math.Float32frombits(0x7fc0_0000 | uint32(i+1))
		}
		got := a.Vec().Array()
		for i := range a {
			if math.Float32bits(got[i]) != math.Float32bits(a[i]) {
				t.Errorf("lane %d: got bits %#x, want %#x", i, math.Float32bits(got[i]), math.Float32bits(a[i]))
			}
		}
	})
	t.Run("Int32x16", func(t *testing.T) {
		requireWidth(t, W512)
		var a Int32x16
		for i := range a {
			a[i] = int32(i*i) - 100
		}
		if got := a.Vec().Array(); got != a {
			t.Errorf("got %v, want %v", got, a)
		}
	})
}

func TestStoreVec(t *testing.T) {
	requireWidth(t, W256)
	a := Float64x4{1, 2, 3, 4}
	v := a.Vec()
	r := v.Mul(v).Add(v)

	var dst Float64x4
	if p := dst.StoreVec(r); p != &dst {
		t.Fatalf("StoreVec returned %p, want %p", p, &dst)
	}
	want := Float64x4{2, 6, 12, 20}
	if dst != want {
		t.Errorf("got %v, want %v", dst, want)
	}
}

func TestLiteralZeroFill(t *testing.T) {
	a := Float32x8{1, 2}
	want := []float32{1, 2, 0, 0, 0, 0, 0, 0}
	if diff := cmp.Diff(want, a.Data()); diff != "" {
		t.Errorf("Data mismatch (-want +got):\n%s", diff)
	}

	var z Int64x8
	for i := 0; i < z.NumLanes(); i++ {
		if z.Get(i) != 0 {
			t.Errorf("lane %d of zero value: got %d", i, z.Get(i))
		}
	}
}

type shaped interface {
	Shape() Shape
	Width() Width
	Alignment() int
	NumLanes() int
}

func TestContainerMetadata(t *testing.T) {
	tests := []struct {
		name  string
		arr   shaped
		shape Shape
		width Width
	}{
		{"Int32x4", Int32x4{}, Shape{KindInt32, 4}, W128},
		{"Int32x8", Int32x8{}, Shape{KindInt32, 8}, W256},
		{"Int32x16", Int32x16{}, Shape{KindInt32, 16}, W512},
		{"Int64x2", Int64x2{}, Shape{KindInt64, 2}, W128},
		{"Int64x4", Int64x4{}, Shape{KindInt64, 4}, W256},
		{"Int64x8", Int64x8{}, Shape{KindInt64, 8}, W512},
		{"Float32x4", Float32x4{}, Shape{KindFloat32, 4}, W128},
		{"Float32x8", Float32x8{}, Shape{KindFloat32, 8}, W256},
		{"Float32x16", Float32x16{}, Shape{KindFloat32, 16}, W512},
		{"Float64x2", Float64x2{}, Shape{KindFloat64, 2}, W128},
		{"Float64x4", Float64x4{}, Shape{KindFloat64, 4}, W256},
		{"Float64x8", Float64x8{}, Shape{KindFloat64, 8}, W512},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.arr.Shape(); got != tt.shape {
				t.Errorf("Shape: got %v, want %v", got, tt.shape)
			}
			if got := tt.arr.Width(); got != tt.width {
				t.Errorf("Width: got %v, want %v", got, tt.width)
			}
			if got := tt.arr.Alignment(); got != tt.width.Bytes() {
				t.Errorf("Alignment: got %d, want %d", got, tt.width.Bytes())
			}
			if got := tt.arr.NumLanes(); got != tt.shape.Lanes {
				t.Errorf("NumLanes: got %d, want %d", got, tt.shape.Lanes)
			}
			if tt.shape.Bytes() != tt.width.Bytes() {
				t.Errorf("lanes fill %d bytes, register is %d", tt.shape.Bytes(), tt.width.Bytes())
			}
		})
	}
}
