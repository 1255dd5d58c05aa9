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


// Command lanegen generates the fixed-width lane container types of package
// intrin from the package's dispatch table.
//
// Usage:
//
//	lanegen -output . -pkg intrin -targets all
//
// Or via go:generate from the intrin directory:
//
//	//go:generate go run ../cmd/lanegen -output . -targets all
//
// The generator writes:
//  1. z_arrays.go with the container types and their arithmetic methods
//  2. one register-handle file per target (z_vec_simd.go, z_vec_portable.go)
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

var (
	outputDir  = flag.String("output", ".", "Output directory")
	packageOut = flag.String("pkg", "intrin", "Output package name")
	targets    = flag.String("targets", "all", "Comma-separated targets ("+strings.Join(AvailableTargets(), ",")+") or 'all'")
	verbose    = flag.Bool("v", false, "Log each generated file")
)

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	targetList, err := parseTargets(*targets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir:  *outputDir,
		PackageOut: *packageOut,
		Targets:    targetList,
		Log:        log,
	}
	files, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d files for targets: %s\n", len(files), strings.Join(targetNames(targetList), ", "))
}

func parseTargets(s string) ([]Target, error) {
	var result []Target
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p == "all" {
			return AllTargets(), nil
		}
		t, err := GetTarget(p)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no valid targets specified")
	}
	return result, nil
}

func targetNames(ts []Target) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name
	}
	return names
}
