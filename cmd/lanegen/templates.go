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

// Templates execute over []laneType. Output is passed through
// imports.Process, so spacing here only needs to be valid Go.

const arraysTemplate = `{{range .}}
// {{.Name}} holds {{.Lanes}} {{.Scalar}} lanes, one {{.Bits}}-bit register.
// Array index i is register lane i.
type {{.Name}} [{{.Lanes}}]{{.Scalar}}

// Get returns lane i.
func (a {{.Name}}) Get(i int) {{.Scalar}} { return a[i] }

// Set stores v in lane i.
func (a *{{.Name}}) Set(i int, v {{.Scalar}}) { a[i] = v }

// NumLanes returns {{.Lanes}}.
func ({{.Name}}) NumLanes() int { return {{.Lanes}} }

// Shape returns the {{.Scalar}} x {{.Lanes}} shape.
func ({{.Name}}) Shape() Shape { return Shape{Kind: {{.Kind}}, Lanes: {{.Lanes}}} }

// Width returns {{.Width}}.
func ({{.Name}}) Width() Width { return {{.Width}} }

// Alignment returns {{.Align}}.
func ({{.Name}}) Alignment() int { return {{.Align}} }

// Data returns the lanes of a as a slice.
func (a {{.Name}}) Data() []{{.Scalar}} { return a[:] }

// Add returns the lane-wise sum a + b.
func (a {{.Name}}) Add(b {{.Name}}) {{.Name}} { return a.Vec().Add(b.Vec()).Array() }

// Sub returns the lane-wise difference a - b.
func (a {{.Name}}) Sub(b {{.Name}}) {{.Name}} { return a.Vec().Sub(b.Vec()).Array() }
{{if .Float}}
// Mul returns the lane-wise product a * b.
func (a {{.Name}}) Mul(b {{.Name}}) {{.Name}} { return a.Vec().Mul(b.Vec()).Array() }

// Div returns the lane-wise IEEE-754 quotient a / b.
func (a {{.Name}}) Div(b {{.Name}}) {{.Name}} { return a.Vec().Div(b.Vec()).Array() }
{{else}}
// Mul returns the lane-wise product a * b, keeping the low {{.ScalarBits}} bits.
func (a {{.Name}}) Mul(b {{.Name}}) {{.Name}} { return a.Vec().Mul(b.Vec()).Array() }
{{end}}{{end}}`

const simdTemplate = `{{range .}}
// {{.Name}}Vec is the {{.Bits}}-bit register form of {{.Name}}.
type {{.Name}}Vec struct{ v archsimd.{{.Name}} }

// Vec loads the lanes of a into a register.
func (a *{{.Name}}) Vec() {{.Name}}Vec {
	return {{.Name}}Vec{archsimd.Load{{.Name}}((*[{{.Lanes}}]{{.Scalar}})(a))}
}

// StoreVec stores v into a and returns a.
func (a *{{.Name}}) StoreVec(v {{.Name}}Vec) *{{.Name}} {
	v.v.Store((*[{{.Lanes}}]{{.Scalar}})(a))
	return a
}

// Array stores v into a new {{.Name}}.
func (v {{.Name}}Vec) Array() {{.Name}} {
	var a {{.Name}}
	v.v.Store((*[{{.Lanes}}]{{.Scalar}})(&a))
	return a
}

// Add returns v + w ({{.AddOp}}).
func (v {{.Name}}Vec) Add(w {{.Name}}Vec) {{.Name}}Vec { return {{.Name}}Vec{v.v.Add(w.v)} }

// Sub returns v - w ({{.SubOp}}).
func (v {{.Name}}Vec) Sub(w {{.Name}}Vec) {{.Name}}Vec { return {{.Name}}Vec{v.v.Sub(w.v)} }
{{if .MulPerLane}}
// Mul returns v * w. VPMULLQ needs AVX-512DQ, so the lanes are multiplied
// one at a time.
func (v {{.Name}}Vec) Mul(w {{.Name}}Vec) {{.Name}}Vec {
	a, b := v.Array(), w.Array()
	mulLanes(a[:], a[:], b[:])
	return a.Vec()
}
{{else}}
// Mul returns v * w ({{.MulOp}}).
func (v {{.Name}}Vec) Mul(w {{.Name}}Vec) {{.Name}}Vec { return {{.Name}}Vec{v.v.Mul(w.v)} }
{{end}}{{if .Float}}
// Div returns v / w ({{.DivOp}}).
func (v {{.Name}}Vec) Div(w {{.Name}}Vec) {{.Name}}Vec { return {{.Name}}Vec{v.v.Div(w.v)} }
{{end}}{{end}}`

const portableTemplate = `{{range .}}
// {{.Name}}Vec is the portable register form of {{.Name}}.
type {{.Name}}Vec struct{ v [{{.Lanes}}]{{.Scalar}} }

// Vec copies the lanes of a.
func (a *{{.Name}}) Vec() {{.Name}}Vec { return {{.Name}}Vec{*a} }

// StoreVec stores v into a and returns a.
func (a *{{.Name}}) StoreVec(v {{.Name}}Vec) *{{.Name}} {
	*a = v.v
	return a
}

// Array returns v as a new {{.Name}}.
func (v {{.Name}}Vec) Array() {{.Name}} { return v.v }

// Add returns v + w.
func (v {{.Name}}Vec) Add(w {{.Name}}Vec) {{.Name}}Vec {
	addLanes(v.v[:], v.v[:], w.v[:])
	return v
}

// Sub returns v - w.
func (v {{.Name}}Vec) Sub(w {{.Name}}Vec) {{.Name}}Vec {
	subLanes(v.v[:], v.v[:], w.v[:])
	return v
}

// Mul returns v * w.
func (v {{.Name}}Vec) Mul(w {{.Name}}Vec) {{.Name}}Vec {
	mulLanes(v.v[:], v.v[:], w.v[:])
	return v
}
{{if .Float}}
// Div returns v / w.
func (v {{.Name}}Vec) Div(w {{.Name}}Vec) {{.Name}}Vec {
	divLanes(v.v[:], v.v[:], w.v[:])
	return v
}
{{end}}{{end}}`
