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

import "fmt"

// Info describes the instructions the SIMD build issues for one shape.
//
// Mnemonics name the AVX encoding used. MulPerLane marks the shapes whose
// multiply has no AVX/AVX2 instruction and is computed lane by lane; Div is
// empty for integer shapes, which have no division.
type Info struct {
	Shape      Shape
	Type       string // Go container type name, e.g. "Float32x8"
	Feature    string // x86 extension the SIMD path needs, e.g. "AVX2"
	Load       string
	Store      string
	Add        string
	Sub        string
	Mul        string
	Div        string
	MulPerLane bool
}

// dispatchTable is keyed by position; Shapes and Lookup are the only readers.
//
// 64-bit integer lanes use the quadword forms (VPADDQ/VPSUBQ). VPMULLQ is
// AVX-512DQ only, so below 512 bits the 64-bit product is taken per lane.
var dispatchTable = [...]Info{
	{Shape{KindInt32, 4}, "Int32x4", "AVX", "VMOVDQU", "VMOVDQU", "VPADDD", "VPSUBD", "VPMULLD", "", false},
	{Shape{KindInt32, 8}, "Int32x8", "AVX2", "VMOVDQU", "VMOVDQU", "VPADDD", "VPSUBD", "VPMULLD", "", false},
	{Shape{KindInt32, 16}, "Int32x16", "AVX512", "VMOVDQU32", "VMOVDQU32", "VPADDD", "VPSUBD", "VPMULLD", "", false},
	{Shape{KindInt64, 2}, "Int64x2", "AVX", "VMOVDQU", "VMOVDQU", "VPADDQ", "VPSUBQ", "IMULQ", "", true},
	{Shape{KindInt64, 4}, "Int64x4", "AVX2", "VMOVDQU", "VMOVDQU", "VPADDQ", "VPSUBQ", "IMULQ", "", true},
	{Shape{KindInt64, 8}, "Int64x8", "AVX512", "VMOVDQU64", "VMOVDQU64", "VPADDQ", "VPSUBQ", "VPMULLQ", "", false},
	{Shape{KindFloat32, 4}, "Float32x4", "AVX", "VMOVUPS", "VMOVUPS", "VADDPS", "VSUBPS", "VMULPS", "VDIVPS", false},
	{Shape{KindFloat32, 8}, "Float32x8", "AVX", "VMOVUPS", "VMOVUPS", "VADDPS", "VSUBPS", "VMULPS", "VDIVPS", false},
	{Shape{KindFloat32, 16}, "Float32x16", "AVX512", "VMOVUPS", "VMOVUPS", "VADDPS", "VSUBPS", "VMULPS", "VDIVPS", false},
	{Shape{KindFloat64, 2}, "Float64x2", "AVX", "VMOVUPD", "VMOVUPD", "VADDPD", "VSUBPD", "VMULPD", "VDIVPD", false},
	{Shape{KindFloat64, 4}, "Float64x4", "AVX", "VMOVUPD", "VMOVUPD", "VADDPD", "VSUBPD", "VMULPD", "VDIVPD", false},
	{Shape{KindFloat64, 8}, "Float64x8", "AVX512", "VMOVUPD", "VMOVUPD", "VADDPD", "VSUBPD", "VMULPD", "VDIVPD", false},
}

// Shapes returns every supported container shape, integers first, narrowest
// register first within a kind.
func Shapes() []Shape {
	shapes := make([]Shape, len(dispatchTable))
	for i, info := range dispatchTable {
		shapes[i] = info.Shape
	}
	return shapes
}

// Lookup returns the dispatch entry for s.
func Lookup(s Shape) (Info, error) {
	for _, info := range dispatchTable {
		if info.Shape == s {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("%w: %s", ErrUnsupportedShape, s)
}

// SIMD reports whether this binary issues vector instructions. It is fixed at
// build time by the goexperiment.simd and purego build tags.
func SIMD() bool {
	return simdBuild
}

// Target returns the name of the instruction path this binary was built for:
// "avx" for the archsimd path, "portable" otherwise.
func Target() string {
	return targetName
}
