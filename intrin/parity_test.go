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
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/cwbudde/algo-vecmath"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/sync/errgroup"
)

// TestFloat64Parity compares the float64 containers against the block
// kernels of algo-vecmath on random data.
func TestFloat64Parity(t *testing.T) {
	requireWidth(t, W256)
	r := rand.New(rand.NewPCG(1, 2))

	const blocks = 64
	a := make([]float64, 4*blocks)
	b := make([]float64, 4*blocks)
	for i := range a {
		a[i] = r.NormFloat64() * 1e3
		b[i] = r.NormFloat64() * 1e3
	}

	wantMul := make([]float64, len(a))
	vecmath.MulBlock(wantMul, a, b)
	wantAdd := append([]float64(nil), a...)
	vecmath.AddBlockInPlace(wantAdd, b)

	gotMul := make([]float64, len(a))
	gotAdd := make([]float64, len(a))
	for i := 0; i < len(a); i += 4 {
		x := Float64x4(a[i : i+4])
		y := Float64x4(b[i : i+4])
		p := x.Mul(y)
		s := x.Add(y)
		copy(gotMul[i:], p[:])
		copy(gotAdd[i:], s[:])
	}

	if diff := cmp.Diff(wantMul, gotMul, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Mul mismatch (-vecmath +intrin):\n%s", diff)
	}
	if diff := cmp.Diff(wantAdd, gotAdd, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Add mismatch (-vecmath +intrin):\n%s", diff)
	}
}

// TestConcurrentUse runs the same computation from many goroutines; the
// containers share no state.
func TestConcurrentUse(t *testing.T) {
	requireWidth(t, W256)
	in := Float32x8{123.2, 1233.5, 77.3, 99.23, 555.7, 456.7, 765.3, 4512.12}
	want := in.Mul(in)

	g, ctx := errgroup.WithContext(context.Background())
	for range 16 {
		g.Go(func() error {
			for range 1000 {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				v := in.Vec()
				got := v.Mul(v).Array()
				for i := range got {
					if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
						t.Errorf("lane %d: got %v, want %v", i, got[i], want[i])
						return nil
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
