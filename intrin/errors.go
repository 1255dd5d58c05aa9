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

import "errors"

// Errors returned by the checked access path and the hardware boundary.
// The arithmetic methods never return errors.
var (
	// ErrLaneIndex is returned when a lane index is outside [0, NumLanes).
	ErrLaneIndex = errors.New("intrin: lane index out of range")

	// ErrTooManyLanes is returned when a source slice holds more values than
	// the container has lanes.
	ErrTooManyLanes = errors.New("intrin: too many values for container")

	// ErrMisaligned is returned when container storage does not satisfy the
	// register alignment.
	ErrMisaligned = errors.New("intrin: misaligned container storage")

	// ErrUnsupportedShape is returned for a (kind, lanes) pair that has no
	// container type.
	ErrUnsupportedShape = errors.New("intrin: unsupported shape")

	// ErrUnsupportedWidth is returned when this binary would issue vector
	// instructions of a width the host CPU does not implement.
	ErrUnsupportedWidth = errors.New("intrin: vector width not supported by host")
)
