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


package lanefmt_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/go-highway/intrin/intrin"
	"github.com/go-highway/intrin/intrin/contrib/lanefmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type words []string

func (w words) Data() []string { return w }

func TestSprint(t *testing.T) {
	assert.Equal(t, "| 1, 2, 3, 4 |", lanefmt.Sprint(intrin.Int32x4{1, 2, 3, 4}, ", "))
	assert.Equal(t, "| 1.5 -2 |", lanefmt.Sprint(intrin.Float64x2{1.5, -2}, " "))
	assert.Equal(t, "| a;b |", lanefmt.Sprint(words{"a", "b"}, ";"))
	assert.Equal(t, "| 7 |", lanefmt.Sprint(words{"7"}, ", "))
}

func TestSprintEmpty(t *testing.T) {
	assert.Equal(t, "|  |", lanefmt.Sprint(words{}, ", "))
	assert.Equal(t, "|  |", lanefmt.Default[string](words(nil)).String())
}

func TestSprintIdempotent(t *testing.T) {
	v := intrin.Float32x8{123.2, 1233.5, 77.3, 99.23, 555.7, 456.7, 765.3, 4512.12}
	first := lanefmt.Sprint(v, ", ")
	for range 3 {
		require.Equal(t, first, lanefmt.Sprint(v, ", "))
	}
	assert.Equal(t, "| 123.2, 1233.5, 77.3, 99.23, 555.7, 456.7, 765.3, 4512.12 |", first)
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	n, err := lanefmt.Fprint(&buf, intrin.Int64x2{-1, 1 << 40}, " | ")
	require.NoError(t, err)
	assert.Equal(t, "| -1 | 1099511627776 |", buf.String())
	assert.Equal(t, buf.Len(), n)
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestFprintError(t *testing.T) {
	_, err := lanefmt.Fprint(failWriter{}, words{"x"}, ", ")
	assert.ErrorIs(t, err, errWrite)
}

func TestDelimitedFormat(t *testing.T) {
	v := intrin.Float32x4{1, 2.25, -3, 0.5}
	tests := []struct {
		format string
		want   string
	}{
		{"%v", "| 1, 2.25, -3, 0.5 |"},
		{"%s", "| 1, 2.25, -3, 0.5 |"},
		{"%.2f", "| 1.00, 2.25, -3.00, 0.50 |"},
		{"%+.1f", "| +1.0, +2.2, -3.0, +0.5 |"},
		{"%6.1f", "|    1.0,    2.2,   -3.0,    0.5 |"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, fmt.Sprintf(tt.format, lanefmt.Default(v)))
		})
	}
}

func TestDelimitedIntVerbs(t *testing.T) {
	v := intrin.Int32x4{10, 255, -1, 0}
	assert.Equal(t, "| a ff -1 0 |", fmt.Sprintf("%x", lanefmt.Delim(v, " ")))
	assert.Equal(t, "| 0010/0255/-001/0000 |", fmt.Sprintf("%04d", lanefmt.Delim(v, "/")))
	assert.Equal(t, "| 10, 255, -1, 0 |", lanefmt.Default(v).String())
}

func TestDelimitedNil(t *testing.T) {
	var d lanefmt.Delimited[int32]
	assert.Equal(t, "|  |", fmt.Sprint(d))
}
