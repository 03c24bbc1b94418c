// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"
	"math"

	"cogentcore.org/multivar/tensor/table"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SymmetryTolerance is the absolute tolerance used by [NewSymmetric]
// when checking that a table is symmetric.
var SymmetryTolerance = 1e-10

// NewSymmetric returns a [mat.SymDense] copy of the given square table,
// which is checked for symmetry within [SymmetryTolerance].
// NaN cells are never symmetric.
// The lower triangle is averaged with the upper one.
func NewSymmetric(dt *table.Table) (*mat.SymDense, error) {
	n := dt.NumRows()
	if n == 0 || n != dt.NumColumns() {
		return nil, fmt.Errorf("matrix.NewSymmetric: table is %d x %d, not square: %w", n, dt.NumColumns(), mat.ErrShape)
	}
	sym := mat.NewSymDense(n, nil)
	for i := range n {
		for j := i; j < n; j++ {
			a, b := dt.Float(i, j), dt.Float(j, i)
			if math.IsNaN(a) || math.IsNaN(b) || math.Abs(a-b) > SymmetryTolerance {
				return nil, fmt.Errorf("matrix.NewSymmetric: table is not symmetric at [%d, %d]: %g != %g", i, j, a, b)
			}
			sym.SetSym(i, j, 0.5*(a+b))
		}
	}
	return sym, nil
}

// Sub returns a [mat.Dense] copy of the block of the given table
// at rows r0 up to r1 and columns c0 up to c1.
func Sub(dt *table.Table, r0, r1, c0, c1 int) *mat.Dense {
	m := mat.NewDense(r1-r0, c1-c0, nil)
	for i := r0; i < r1; i++ {
		copy(m.RawRowView(i-r0), dt.Row(i)[c0:c1])
	}
	return m
}

// FrobeniusNorm returns the Frobenius norm of the table values,
// computed with an [Accum].
func FrobeniusNorm(dt *table.Table) float64 {
	return math.Sqrt(Dot(dt.Values, dt.Values))
}

// ColumnMeans returns the mean of each column of the table.
func ColumnMeans(dt *table.Table) []float64 {
	nr, nc := dt.NumRows(), dt.NumColumns()
	means := make([]float64, nc)
	if nr == 0 {
		return means
	}
	for j := range nc {
		var acc Accum
		for i := range nr {
			acc.Add(dt.Float(i, j))
		}
		means[j] = acc.Value() / float64(nr)
	}
	return means
}

// SubtractRows subtracts vec from every row of the table, in place.
// vec must have one value per column.
func SubtractRows(dt *table.Table, vec []float64) {
	for i := range dt.NumRows() {
		floats.Sub(dt.Row(i), vec)
	}
}
