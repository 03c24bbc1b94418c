// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cca

import (
	"fmt"

	"cogentcore.org/multivar/base/undef"
	"cogentcore.org/multivar/tensor/matrix"
	"cogentcore.org/multivar/tensor/stats/eigen"
	"cogentcore.org/multivar/tensor/table"
)

// checkCorrelation returns an error if corr is not square with the
// combined dimension of the model, or has undefined values.
func checkCorrelation(c *CCA, corr *table.Table) error {
	n := c.Dimension()
	if corr.NumRows() != n || corr.NumColumns() != n {
		return fmt.Errorf("correlation matrix is %d x %d, model dimension is %d: %w", corr.NumRows(), corr.NumColumns(), n, eigen.ErrDimensionMismatch)
	}
	if !corr.AllDefined() {
		return fmt.Errorf("all correlations should be defined: %w", eigen.ErrInvalidInput)
	}
	return nil
}

// FactorLoadings returns the structure correlations between every
// variable of corr and every canonical variate: a table with
// 2*NumCoefficients rows and one column per variable of corr.
// Row j (labeled dv<j+1>) holds the loadings on the j-th dependent
// variate, and row NumCoefficients+j (labeled iv<j+1>) those on the
// j-th independent variate. Columns take the column labels of corr.
func FactorLoadings(c *CCA, corr *table.Table) (*table.Table, error) {
	if err := checkCorrelation(c, corr); err != nil {
		return nil, fmt.Errorf("cca.FactorLoadings: %w", err)
	}
	n := corr.NumColumns()
	ny := c.Y.Dimension
	nc := c.NumCoefficients
	out := table.New(2*nc, n, "Factor loadings")
	out.SetColumnLabels(corr.ColumnLabels...)
	out.SetSequentialRowLabels(0, nc, "dv", 1)
	out.SetSequentialRowLabels(nc, 2*nc, "iv", 1)
	for i := range n {
		row := corr.Row(i)
		for j := range nc {
			out.SetFloat(matrix.Dot(row[:ny], c.Y.Vector(j)), j, i)
			out.SetFloat(matrix.Dot(row[ny:], c.X.Vector(j)), nc+j, i)
		}
	}
	return out, nil
}

// VarianceFraction returns the fraction of the variance of the given
// variable set that is extracted by its canonical variates from through
// to (1-based, inclusive). For each variate with weights e, the
// structure correlations are s = R e over the set's block R of corr,
// and the variate contributes (sᵗs / eᵗs) / n for a set of n variables.
// Returns undefined if any variate has zero variance (eᵗs == 0).
func VarianceFraction(c *CCA, corr *table.Table, set Set, from, to int) (undef.Float, error) {
	if err := checkCorrelation(c, corr); err != nil {
		return undef.Undefined(), fmt.Errorf("cca.VarianceFraction: %w", err)
	}
	if from < 1 || from > to || to > c.NumCoefficients {
		return undef.Undefined(), fmt.Errorf("cca.VarianceFraction: components %d..%d outside of [1, %d]: %w", from, to, c.NumCoefficients, eigen.ErrInvalidRange)
	}
	var e *eigen.Eigen
	var off int
	switch set {
	case Dependent:
		e = c.Y
	case Independent:
		e, off = c.X, c.Y.Dimension
	default:
		return undef.Undefined(), fmt.Errorf("cca.VarianceFraction: unknown variable set %v: %w", set, eigen.ErrInvalidInput)
	}
	n := e.Dimension
	var fraction matrix.Accum
	for icv := from - 1; icv < to; icv++ {
		evec := e.Vector(icv)
		var variance, scaling matrix.Accum
		for i := range n {
			s := matrix.Dot(corr.Row(off + i)[off:off+n], evec)
			variance.AddProduct(s, s)
			scaling.AddProduct(evec[i], s)
		}
		if scaling.Value() == 0 {
			return undef.Undefined(), nil
		}
		fraction.Add(variance.Value() / scaling.Value() / float64(n))
	}
	return undef.Of(fraction.Value()), nil
}

// Redundancy returns the Stewart-Love redundancy index of the given
// variable set for the canonical variates from through to (1-based,
// inclusive): the sum over those variates of the variance fraction
// times the squared canonical correlation. This is the fraction of the
// variance of the set that is explained by the other set.
// Returns undefined if any variance fraction is undefined.
func Redundancy(c *CCA, corr *table.Table, set Set, from, to int) (undef.Float, error) {
	if err := checkCorrelation(c, corr); err != nil {
		return undef.Undefined(), fmt.Errorf("cca.Redundancy: %w", err)
	}
	if from < 1 || from > to || to > c.NumCoefficients {
		return undef.Undefined(), fmt.Errorf("cca.Redundancy: components %d..%d outside of [1, %d]: %w", from, to, c.NumCoefficients, eigen.ErrInvalidRange)
	}
	var red matrix.Accum
	for icv := from; icv <= to; icv++ {
		vf, err := VarianceFraction(c, corr, set, icv, icv)
		if err != nil {
			return undef.Undefined(), err
		}
		v, ok := vf.Value()
		if !ok {
			return undef.Undefined(), nil
		}
		red.AddProduct(v, c.Y.Values[icv-1])
	}
	return undef.Of(red.Value()), nil
}
