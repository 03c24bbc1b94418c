// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import (
	"fmt"

	"cogentcore.org/multivar/base/errors"
	"cogentcore.org/multivar/tensor/table"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrZeroVariance is returned by [CorrelationMatrix] for a column whose
// values are all the same, which has no defined correlation.
var ErrZeroVariance = errors.New("zero variance column")

// CovarMatrix generates the cols x cols square covariance matrix
// for the columns (variables) of the given table, whose rows are
// observations. Each value in the resulting matrix represents the
// extent to which the value of a given column covaries across the rows
// with the value of another column. Both the row and column labels of
// the result are the column labels of the input.
// Use [CorrelationMatrix] if variables are on very different scales.
// The resulting matrix can be used as the input to PCA.
func CovarMatrix(dt *table.Table) (*table.Table, error) {
	if err := checkData(dt); err != nil {
		return nil, err
	}
	var cv mat.SymDense
	stat.CovarianceMatrix(&cv, dt.Dense(), nil)
	return symTable(&cv, dt), nil
}

// CorrelationMatrix generates the cols x cols square correlation matrix
// for the columns (variables) of the given table, whose rows are
// observations, labeled as in [CovarMatrix]. This is the matrix consumed
// by canonical correlation analysis, with the dependent variables in the
// first columns and the independent ones after them.
// A constant column is an [ErrZeroVariance] error.
func CorrelationMatrix(dt *table.Table) (*table.Table, error) {
	if err := checkData(dt); err != nil {
		return nil, err
	}
	for j := range dt.NumColumns() {
		col := dt.Column(j)
		if floats.Min(col) == floats.Max(col) {
			return nil, fmt.Errorf("metric.CorrelationMatrix: column %d (%q) is constant: %w", j, dt.ColumnLabels[j], ErrZeroVariance)
		}
	}
	var cr mat.SymDense
	stat.CorrelationMatrix(&cr, dt.Dense(), nil)
	return symTable(&cr, dt), nil
}

// SSCP generates the cols x cols matrix of centered sums of squares and
// cross products for the columns of the given table: AᵗA where A is the
// table with the column means subtracted. It equals the covariance matrix
// times (rows - 1).
func SSCP(dt *table.Table) (*table.Table, error) {
	if err := checkData(dt); err != nil {
		return nil, err
	}
	var cv mat.SymDense
	stat.CovarianceMatrix(&cv, dt.Dense(), nil)
	cv.ScaleSym(float64(dt.NumRows()-1), &cv)
	return symTable(&cv, dt), nil
}

func checkData(dt *table.Table) error {
	if dt.NumRows() < 2 || dt.NumColumns() < 1 {
		return fmt.Errorf("metric: need at least 2 rows and 1 column, have %d x %d", dt.NumRows(), dt.NumColumns())
	}
	if !dt.AllDefined() {
		return fmt.Errorf("metric: table has undefined (NaN or infinite) values")
	}
	return nil
}

func symTable(sym *mat.SymDense, dt *table.Table) *table.Table {
	n := sym.SymmetricDim()
	out := table.New(n, n)
	for i := range n {
		for j := range n {
			out.SetFloat(sym.At(i, j), i, j)
		}
	}
	out.SetRowLabels(dt.ColumnLabels...)
	out.SetColumnLabels(dt.ColumnLabels...)
	return out
}
