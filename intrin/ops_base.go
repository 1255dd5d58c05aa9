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

// This file provides the per-lane implementations used by the portable
// register handles, and by the SIMD handles for operations the instruction
// set lacks (64-bit multiply below 512 bits).
//
// dst, a and b always have the same length; dst may alias a or b.
// Integer overflow wraps (Go defines signed arithmetic as two's complement),
// and float operations are single IEEE-754 operations rounded to T.

func addLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divLanes[T Floats](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}
