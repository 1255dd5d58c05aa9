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
	"sort"
)

// Target is one instruction path of the register handles.
type Target struct {
	Name     string   // "simd", "portable"
	BuildTag string   // go:build expression guarding the output file
	File     string   // output file name
	Imports  []string // import paths the template refers to
	Template string   // per-type template body
}

// SIMDTarget issues AVX/AVX2/AVX-512 instructions through simd/archsimd.
func SIMDTarget() Target {
	return Target{
		Name:     "simd",
		BuildTag: "amd64 && goexperiment.simd && !purego",
		File:     "z_vec_simd.go",
		Imports:  []string{"simd/archsimd"},
		Template: simdTemplate,
	}
}

// PortableTarget computes each lane in Go. It is the complement of the SIMD
// build tag, so exactly one handle file is compiled into any build.
func PortableTarget() Target {
	return Target{
		Name:     "portable",
		BuildTag: "!amd64 || !goexperiment.simd || purego",
		File:     "z_vec_portable.go",
		Template: portableTemplate,
	}
}

var targetRegistry = map[string]func() Target{
	"simd":     SIMDTarget,
	"portable": PortableTarget,
}

// AvailableTargets returns the names accepted by -targets, sorted.
func AvailableTargets() []string {
	names := make([]string, 0, len(targetRegistry))
	for name := range targetRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AllTargets returns every target in a stable order.
func AllTargets() []Target {
	var ts []Target
	for _, name := range AvailableTargets() {
		ts = append(ts, targetRegistry[name]())
	}
	return ts
}

// GetTarget returns the target with the given name.
func GetTarget(name string) (Target, error) {
	fn, ok := targetRegistry[name]
	if !ok {
		return Target{}, fmt.Errorf("unknown target %q (available: %v)", name, AvailableTargets())
	}
	return fn(), nil
}
