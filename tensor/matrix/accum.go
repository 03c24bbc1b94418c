// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import "math"

// Accum is an extended precision accumulator for sums of many terms,
// such as inner products over long variable dimensions.
// It keeps a running compensation term (Neumaier summation) and
// captures the exact rounding error of each product via [math.FMA],
// giving results as if computed in twice the working precision,
// rounded once at [Accum.Value]. The zero value is ready to use.
type Accum struct {
	sum, comp float64
}

// Add adds v to the accumulated sum.
func (a *Accum) Add(v float64) {
	t := a.sum + v
	if math.Abs(a.sum) >= math.Abs(v) {
		a.comp += (a.sum - t) + v
	} else {
		a.comp += (v - t) + a.sum
	}
	a.sum = t
}

// AddProduct adds x*y to the accumulated sum.
func (a *Accum) AddProduct(x, y float64) {
	p := x * y
	a.Add(p)
	a.comp += math.FMA(x, y, -p)
}

// Value returns the accumulated sum, rounded to float64.
func (a *Accum) Value() float64 {
	return a.sum + a.comp
}

// Dot returns the inner product of a and b using an [Accum].
// The slices must have the same length.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("matrix.Dot: slice lengths do not match")
	}
	var acc Accum
	for i, v := range a {
		acc.AddProduct(v, b[i])
	}
	return acc.Value()
}

// Sum returns the sum of the values using an [Accum].
func Sum(vals []float64) float64 {
	var acc Accum
	for _, v := range vals {
		acc.Add(v)
	}
	return acc.Value()
}
