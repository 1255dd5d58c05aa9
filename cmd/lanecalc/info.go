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


package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/go-highway/intrin/intrin"
)

func printTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SHAPE\tTYPE\tWIDTH\tFEATURE\tADD\tSUB\tMUL\tDIV")
	for _, s := range intrin.Shapes() {
		info, err := intrin.Lookup(s)
		if err != nil {
			return err
		}
		mul := info.Mul
		if info.MulPerLane {
			mul += " (per lane)"
		}
		div := info.Div
		if div == "" {
			div = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Name(), info.Type, s.Width(), info.Feature, info.Add, info.Sub, mul, div)
	}
	return tw.Flush()
}

func printFeatures(w io.Writer) {
	f := intrin.Features()
	fmt.Fprintf(w, "target:   %s\n", intrin.Target())
	fmt.Fprintf(w, "simd:     %t\n", intrin.SIMD())
	fmt.Fprintf(w, "avx:      %t\n", f.AVX)
	fmt.Fprintf(w, "avx2:     %t\n", f.AVX2)
	fmt.Fprintf(w, "avx512f:  %t\n", f.AVX512F)
	fmt.Fprintf(w, "avx512dq: %t\n", f.AVX512DQ)
	fmt.Fprintf(w, "avx512vl: %t\n", f.AVX512VL)
	fmt.Fprintf(w, "avx512bw: %t\n", f.AVX512BW)
	for _, width := range []intrin.Width{intrin.W128, intrin.W256, intrin.W512} {
		status := "ok"
		if err := intrin.CheckHost(width); err != nil {
			status = err.Error()
		}
		fmt.Fprintf(w, "%s: %s\n", width, status)
	}
}
