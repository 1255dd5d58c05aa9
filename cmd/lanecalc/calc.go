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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-highway/intrin/intrin"
	"github.com/go-highway/intrin/intrin/contrib/lanefmt"
)

var (
	errUnknownOp  = errors.New("unknown operation")
	errIntegerDiv = errors.New("division is only defined for float containers")
	errBadValue   = errors.New("invalid lane value")
)

type arith[A any] interface {
	Add(A) A
	Sub(A) A
	Mul(A) A
}

// evaluate parses a and b into containers of the given shape, applies op
// and returns the delimited result.
func evaluate(shape intrin.Shape, op, a, b, sep string) (string, error) {
	switch shape {
	case intrin.Shape{Kind: intrin.KindInt32, Lanes: 4}:
		return apply[intrin.Int32x4, int32](shape, op, a, b, sep)
	case intrin.Shape{Kind: intrin.KindInt32, Lanes: 8}:
		return apply[intrin.Int32x8, int32](shape, op, a, b, sep)
	case intrin.Shape{Kind: intrin.KindInt32, Lanes: 16}:
		return apply[intrin.Int32x16, int32](shape, op, a, b, sep)
	case intrin.Shape{Kind: intrin.KindInt64, Lanes: 2}:
		return apply[intrin.Int64x2, int64](shape, op, a, b, sep)
	case intrin.Shape{Kind: intrin.KindInt64, Lanes: 4}:
		return apply[intrin.Int64x4, int64](shape, op, a, b, sep)
	case intrin.Shape{Kind: intrin.KindInt64, Lanes: 8}:
		return apply[intrin.Int64x8, int64](shape, op, a, b, sep)
	case intrin.Shape{Kind: intrin.KindFloat32, Lanes: 4}:
		return apply[intrin.Float32x4, float32](shape, op, a, b, sep)
	case intrin.Shape{Kind: intrin.KindFloat32, Lanes: 8}:
		return apply[intrin.Float32x8, float32](shape, op, a, b, sep)
	case intrin.Shape{Kind: intrin.KindFloat32, Lanes: 16}:
		return apply[intrin.Float32x16, float32](shape, op, a, b, sep)
	case intrin.Shape{Kind: intrin.KindFloat64, Lanes: 2}:
		return apply[intrin.Float64x2, float64](shape, op, a, b, sep)
	case intrin.Shape{Kind: intrin.KindFloat64, Lanes: 4}:
		return apply[intrin.Float64x4, float64](shape, op, a, b, sep)
	case intrin.Shape{Kind: intrin.KindFloat64, Lanes: 8}:
		return apply[intrin.Float64x8, float64](shape, op, a, b, sep)
	}
	return "", fmt.Errorf("%w: %s", intrin.ErrUnsupportedShape, shape)
}

func apply[A arith[A], T intrin.Lanes, P interface {
	*A
	intrin.MutableArray[T]
}](shape intrin.Shape, op, a, b, sep string) (string, error) {
	x, err := container[A, T, P](shape, a)
	if err != nil {
		return "", fmt.Errorf("A: %w", err)
	}
	y, err := container[A, T, P](shape, b)
	if err != nil {
		return "", fmt.Errorf("B: %w", err)
	}

	var r A
	switch op {
	case "add":
		r = x.Add(y)
	case "sub":
		r = x.Sub(y)
	case "mul":
		r = x.Mul(y)
	case "div":
		d, ok := any(x).(interface{ Div(A) A })
		if !ok {
			return "", fmt.Errorf("%w: %s", errIntegerDiv, shape)
		}
		r = d.Div(y)
	default:
		return "", fmt.Errorf("%w %q", errUnknownOp, op)
	}
	return lanefmt.Sprint[T](P(&r), sep), nil
}

func container[A any, T intrin.Lanes, P interface {
	*A
	intrin.MutableArray[T]
}](shape intrin.Shape, s string) (A, error) {
	vals, err := parseLanes[T](shape.Kind, s)
	if err != nil {
		var zero A
		return zero, err
	}
	return intrin.FromSlice[A, T, P](vals)
}

// parseLanes parses a comma-separated list of numbers of the given kind.
func parseLanes[T intrin.Lanes](kind intrin.Kind, s string) ([]T, error) {
	fields := strings.Split(s, ",")
	vals := make([]T, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if kind.IsFloat() {
			v, err := strconv.ParseFloat(f, kind.Size()*8)
			if err != nil {
				return nil, fmt.Errorf("%w %q for %s", errBadValue, f, kind)
			}
			vals = append(vals, T(v))
			continue
		}
		v, err := strconv.ParseInt(f, 10, kind.Size()*8)
		if err != nil {
			return nil, fmt.Errorf("%w %q for %s", errBadValue, f, kind)
		}
		vals = append(vals, T(v))
	}
	return vals, nil
}
