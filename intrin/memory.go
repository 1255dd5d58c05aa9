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

import "unsafe"

// allocAligned returns a zeroed byte slice of length size whose first byte
// sits at an address divisible by align. align must be a power of two.
//
// The slice is carved from a larger allocation; the returned slice keeps the
// whole backing array alive.
func allocAligned(size, align int) []byte {
	if size == 0 {
		return nil
	}
	buf := make([]byte, size+align)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	offset := int((uintptr(align) - addr&uintptr(align-1)) & uintptr(align-1))
	return buf[offset : offset+size : offset+size]
}

// addrOf returns the address of p.
func addrOf[A any](p *A) uintptr {
	return uintptr(unsafe.Pointer(p))
}
