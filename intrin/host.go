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
	"fmt"
	"log/slog"

	"golang.org/x/sys/cpu"
)

// HostFeatures lists the x86 vector extensions relevant to the containers.
// On other architectures every field is false.
type HostFeatures struct {
	AVX      bool
	AVX2     bool
	AVX512F  bool
	AVX512DQ bool
	AVX512VL bool
	AVX512BW bool
}

// Features reports the vector extensions of the host CPU.
func Features() HostFeatures {
	return HostFeatures{
		AVX:      cpu.X86.HasAVX,
		AVX2:     cpu.X86.HasAVX2,
		AVX512F:  cpu.X86.HasAVX512F,
		AVX512DQ: cpu.X86.HasAVX512DQ,
		AVX512VL: cpu.X86.HasAVX512VL,
		AVX512BW: cpu.X86.HasAVX512BW,
	}
}

// Supports reports whether the extensions in f cover every instruction the
// SIMD build issues for registers of width w.
//
// 128-bit containers need AVX (the archsimd 128-bit forms are VEX encoded),
// 256-bit integer containers need AVX2, and 512-bit containers need
// AVX-512F plus DQ for VPMULLQ.
func (f HostFeatures) Supports(w Width) bool {
	switch w {
	case W128:
		return f.AVX
	case W256:
		return f.AVX && f.AVX2
	case W512:
		return f.AVX512F && f.AVX512DQ
	default:
		return false
	}
}

func requiredFeature(w Width) string {
	switch w {
	case W128:
		return "AVX"
	case W256:
		return "AVX2"
	case W512:
		return "AVX-512F/DQ"
	default:
		return "unknown"
	}
}

// CheckHost returns ErrUnsupportedWidth when this binary cannot execute the
// instructions it would issue for registers of width w on this host.
//
// There is no fallback to narrower registers or scalar code. Callers treat a
// non-nil error as a load-time failure: report it and stop before touching
// containers of that width. Portable builds support every width.
func CheckHost(w Width) error {
	if !w.Valid() {
		return fmt.Errorf("%w: %d bytes is not a register width", ErrUnsupportedWidth, int(w))
	}
	if !simdBuild {
		return nil
	}

	f := Features()
	log := Logger()
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("intrin: host vector features",
			slog.String("target", targetName),
			slog.Bool("avx", f.AVX),
			slog.Bool("avx2", f.AVX2),
			slog.Bool("avx512f", f.AVX512F),
			slog.Bool("avx512dq", f.AVX512DQ))
	}
	if !f.Supports(w) {
		log.Warn("intrin: register width refused",
			slog.String("width", w.String()),
			slog.String("requires", requiredFeature(w)))
		return fmt.Errorf("%w: %s registers require %s", ErrUnsupportedWidth, w, requiredFeature(w))
	}
	return nil
}

// MustSupport panics if CheckHost(w) fails. It is meant for package init
// functions of programs that use containers of width w.
func MustSupport(w Width) {
	if err := CheckHost(w); err != nil {
		panic(err)
	}
}
