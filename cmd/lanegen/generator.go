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
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/go-highway/intrin/intrin"
)

// arraysFile is the target-independent output holding the container types.
const arraysFile = "z_arrays.go"

// laneType is the template data for one container type.
type laneType struct {
	Name       string // "Float32x8"
	Scalar     string // "float32"
	ScalarBits int    // 32
	Kind       string // "KindFloat32"
	Lanes      int
	Bits       int    // register bits
	Width      string // "W256"
	Align      int
	Float      bool
	MulPerLane bool
	AddOp      string
	SubOp      string
	MulOp      string
	DivOp      string
}

// Generator renders the container and register-handle files.
type Generator struct {
	OutputDir  string       // Output directory
	PackageOut string       // Output package name
	Targets    []Target     // Register-handle targets to emit
	Log        *slog.Logger // Optional; nil discards
}

// Run renders every file and writes it to OutputDir. It returns the paths
// written.
func (g *Generator) Run() ([]string, error) {
	files, err := g.Render()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string
	for _, name := range sortedKeys(files) {
		path := filepath.Join(g.OutputDir, name)
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		g.logger().Debug("lanegen: wrote file", slog.String("path", path), slog.Int("bytes", len(files[name])))
		written = append(written, path)
	}
	return written, nil
}

// Render returns the formatted contents of every output file keyed by file
// name, without touching the file system.
func (g *Generator) Render() (map[string][]byte, error) {
	if g.PackageOut == "" {
		g.PackageOut = "intrin"
	}
	types, err := laneTypes()
	if err != nil {
		return nil, err
	}

	files := make(map[string][]byte)
	src, err := g.renderFile(arraysFile, "", nil, arraysTemplate, types)
	if err != nil {
		return nil, err
	}
	files[arraysFile] = src

	for _, t := range g.Targets {
		src, err := g.renderFile(t.File, t.BuildTag, t.Imports, t.Template, types)
		if err != nil {
			return nil, fmt.Errorf("target %s: %w", t.Name, err)
		}
		files[t.File] = src
	}
	return files, nil
}

func (g *Generator) renderFile(name, buildTag string, importPaths []string, body string, types []laneType) ([]byte, error) {
	tmpl, err := template.New(name).Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse template for %s: %w", name, err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by lanegen. DO NOT EDIT.\n\n")
	if buildTag != "" {
		fmt.Fprintf(&buf, "//go:build %s\n\n", buildTag)
	}
	fmt.Fprintf(&buf, "package %s\n", g.PackageOut)
	if len(importPaths) > 0 {
		fmt.Fprintf(&buf, "\nimport (\n")
		for _, p := range importPaths {
			fmt.Fprintf(&buf, "\t%q\n", p)
		}
		fmt.Fprintf(&buf, ")\n")
	}
	if err := tmpl.Execute(&buf, types); err != nil {
		return nil, fmt.Errorf("execute template for %s: %w", name, err)
	}

	formatted, err := imports.Process(name, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", name, err)
	}
	return formatted, nil
}

func (g *Generator) logger() *slog.Logger {
	if g.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return g.Log
}

// laneTypes builds the template data from the intrin dispatch table, so the
// generated methods and the table cannot disagree.
func laneTypes() ([]laneType, error) {
	title := cases.Title(language.English)

	var types []laneType
	for _, s := range intrin.Shapes() {
		info, err := intrin.Lookup(s)
		if err != nil {
			return nil, err
		}
		name := title.String(s.Kind.String()) + "x" + fmt.Sprint(s.Lanes)
		if name != info.Type {
			return nil, fmt.Errorf("dispatch table names %s %q, derived %q", s, info.Type, name)
		}
		types = append(types, laneType{
			Name:       name,
			Scalar:     s.Kind.String(),
			ScalarBits: s.Kind.Size() * 8,
			Kind:       "Kind" + title.String(s.Kind.String()),
			Lanes:      s.Lanes,
			Bits:       s.Width().Bits(),
			Width:      "W" + fmt.Sprint(s.Width().Bits()),
			Align:      s.Alignment(),
			Float:      s.Kind.IsFloat(),
			MulPerLane: info.MulPerLane,
			AddOp:      info.Add,
			SubOp:      info.Sub,
			MulOp:      info.Mul,
			DivOp:      info.Div,
		})
	}
	return types, nil
}

func sortedKeys(m map[string][]byte) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
