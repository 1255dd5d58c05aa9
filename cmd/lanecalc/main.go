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


// Command lanecalc applies one lane-wise operation to two containers and
// prints the result.
//
// Usage:
//
//	lanecalc                                    # float32x8 squares demo
//	lanecalc -shape int32x4 -op add -a 1,2,3,4 -b 10,20,30,40
//	lanecalc -shape float64x2 -op div -a 1,0 -b 0,0 -sep " "
//	lanecalc -list                              # dispatch table
//	lanecalc -features                          # host CPU and build target
//
// Values missing from -a or -b are zero. When -b is omitted the operation
// is applied to A and itself.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-highway/intrin/intrin"
)

// demoValues are the inputs of the default run.
const demoValues = "123.2, 1233.5, 77.3, 99.23, 555.7, 456.7, 765.3, 4512.12"

var ops = []string{"add", "sub", "mul", "div"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	shape    string
	op       string
	a, b     string
	sep      string
	list     bool
	features bool
	verbose  bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lanecalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cfg config
	fs.StringVar(&cfg.shape, "shape", "float32x8", "Container shape, e.g. int32x4 or float64x8")
	fs.StringVar(&cfg.op, "op", "mul", "Operation ("+strings.Join(ops, "|")+")")
	fs.StringVar(&cfg.a, "a", "", "Comma-separated lanes of A (default: demo values)")
	fs.StringVar(&cfg.b, "b", "", "Comma-separated lanes of B (default: A)")
	fs.StringVar(&cfg.sep, "sep", ", ", "Separator between printed lanes")
	fs.BoolVar(&cfg.list, "list", false, "Print the supported shapes and their instructions")
	fs.BoolVar(&cfg.features, "features", false, "Print host vector features and the build target")
	fs.BoolVar(&cfg.verbose, "v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return 2
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	intrin.SetLogger(log)
	defer intrin.SetLogger(nil)

	var err error
	switch {
	case cfg.list:
		err = printTable(stdout)
	case cfg.features:
		printFeatures(stdout)
	default:
		err = calculate(stdout, log, cfg)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func calculate(w io.Writer, log *slog.Logger, cfg config) error {
	shape, err := intrin.ParseShape(cfg.shape)
	if err != nil {
		return err
	}
	if err := validOp(cfg.op, shape); err != nil {
		return err
	}
	if err := intrin.CheckHost(shape.Width()); err != nil {
		return err
	}

	a, b := cfg.a, cfg.b
	if a == "" {
		a = demoValues
	}
	if b == "" {
		b = a
	}
	log.Debug("calculating",
		slog.String("shape", shape.Name()),
		slog.String("op", cfg.op),
		slog.String("target", intrin.Target()))

	out, err := evaluate(shape, cfg.op, a, b, cfg.sep)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func validOp(op string, shape intrin.Shape) error {
	switch op {
	case "add", "sub", "mul":
		return nil
	case "div":
		if !shape.Kind.IsFloat() {
			return fmt.Errorf("%w: %s", errIntegerDiv, shape)
		}
		return nil
	default:
		return fmt.Errorf("%w %q, want one of %s", errUnknownOp, op, strings.Join(ops, ", "))
	}
}
