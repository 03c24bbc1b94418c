// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undef provides an explicit optional floating point value,
// for statistics that can be undefined for a given input (a zero
// denominator, an empty range) without that being an error.
// Callers must check [Float.Defined] or use [Float.Value] instead of
// relying on a NaN sentinel leaking through arithmetic.
package undef

import (
	"math"
	"strconv"
)

// Float is a float64 value that may be undefined.
// The zero value is undefined.
type Float struct {
	value   float64
	defined bool
}

// Undefined returns an undefined [Float].
func Undefined() Float { return Float{} }

// Of returns a [Float] defined as the given value. Non-finite values
// (NaN, ±Inf) are not valid statistics and produce an undefined result.
func Of(v float64) Float {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Float{}
	}
	return Float{value: v, defined: true}
}

// Defined returns whether the value is defined.
func (f Float) Defined() bool { return f.defined }

// Value returns the value and whether it is defined.
func (f Float) Value() (float64, bool) { return f.value, f.defined }

// Or returns the value if defined, and otherwise the given fallback.
func (f Float) Or(fallback float64) float64 {
	if !f.defined {
		return fallback
	}
	return f.value
}

// Float64 returns the value, or NaN if undefined.
// This is for passing the value to code that expects NaN as missing,
// such as plotting; use [Float.Value] for computation.
func (f Float) Float64() float64 {
	if !f.defined {
		return math.NaN()
	}
	return f.value
}

// Add returns the sum of two values, undefined if either is undefined.
func (f Float) Add(o Float) Float {
	if !f.defined || !o.defined {
		return Float{}
	}
	return Of(f.value + o.value)
}

// String returns "--undefined--" for undefined values.
func (f Float) String() string {
	if !f.defined {
		return "--undefined--"
	}
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}
