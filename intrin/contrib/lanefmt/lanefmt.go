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


// Package lanefmt prints lane sequences in the delimited form
//
//	| e0, e1, e2, e3 |
//
// It depends only on the Sequence interface, so it prints every intrin
// container as well as any other type with a Data method.
package lanefmt

import (
	"fmt"
	"io"
	"os"
)

// DefaultSep separates elements when no separator is given.
const DefaultSep = ", "

// Sequence is anything that exposes its elements in order.
type Sequence[T any] interface {
	Data() []T
}

// Fprint writes s to w as "| e0<sep>e1 ... |", formatting each element
// with %v. It returns the number of bytes written.
func Fprint[T any](w io.Writer, s Sequence[T], sep string) (int, error) {
	return w.Write(appendSeq(nil, s.Data(), sep, "%v"))
}

// Print writes s to standard output.
func Print[T any](s Sequence[T], sep string) (int, error) {
	return Fprint(os.Stdout, s, sep)
}

// Sprint returns s in delimited form.
func Sprint[T any](s Sequence[T], sep string) string {
	return string(appendSeq(nil, s.Data(), sep, "%v"))
}

// Delimited is a sequence bound to a separator, ready for the fmt package.
// The verb and flags given to Printf apply to every element:
//
//	fmt.Printf("%.1f\n", lanefmt.Delim(v, " "))  // | 1.0 2.0 3.0 4.0 |
type Delimited[T any] struct {
	s   Sequence[T]
	sep string
}

// Delim binds s to sep.
func Delim[T any](s Sequence[T], sep string) Delimited[T] {
	return Delimited[T]{s: s, sep: sep}
}

// Default binds s to DefaultSep.
func Default[T any](s Sequence[T]) Delimited[T] {
	return Delim(s, DefaultSep)
}

// String implements fmt.Stringer.
func (d Delimited[T]) String() string {
	return Sprint(d.s, d.sep)
}

// Format implements fmt.Formatter. %s and %v use the default element format.
func (d Delimited[T]) Format(f fmt.State, verb rune) {
	format := "%v"
	if verb != 's' {
		format = fmt.FormatString(f, verb)
	}
	var data []T
	if d.s != nil {
		data = d.s.Data()
	}
	_, _ = f.Write(appendSeq(nil, data, d.sep, format))
}

func appendSeq[T any](b []byte, data []T, sep, format string) []byte {
	b = append(b, "| "...)
	for i, v := range data {
		if i > 0 {
			b = append(b, sep...)
		}
		b = fmt.Appendf(b, format, v)
	}
	return append(b, " |"...)
}
