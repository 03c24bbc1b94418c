// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eigen provides the eigen structure of a symmetric
// (covariance-like) matrix: an ordered set of eigenvalue and
// eigenvector pairs, which is the foundation of both principal
// components analysis (package pca) and canonical correlation
// analysis (package cca).
//
// Component indexes into Values and Vector are 0-based, while the
// component ranges taken by the analysis functions use 1-based
// component numbers, inclusive at both ends, as is customary in
// multivariate statistics: (1, 2) means the first two components.
package eigen

import (
	"fmt"

	"cogentcore.org/multivar/base/undef"
	"cogentcore.org/multivar/tensor/matrix"
	"cogentcore.org/multivar/tensor/table"
	"gonum.org/v1/gonum/mat"
)

// Eigen is the eigen structure of a symmetric matrix of a given dimension.
type Eigen struct {

	// Dimension is the length of each eigenvector.
	Dimension int

	// Values are the eigenvalues, sorted from highest to lowest.
	// They are non-negative for a covariance-derived structure.
	Values []float64

	// Vectors has one eigenvector per row, aligned with Values:
	// row i is the eigenvector for Values[i]. It is
	// NumComponents x Dimension.
	Vectors *mat.Dense
}

// New returns a new Eigen for the given values and vectors, which are
// not copied. The rows of vectors must match the number of values.
func New(values []float64, vectors *mat.Dense) (*Eigen, error) {
	r, c := vectors.Dims()
	if r != len(values) {
		return nil, fmt.Errorf("eigen.New: %d eigenvalues for %d eigenvectors: %w", len(values), r, ErrDimensionMismatch)
	}
	return &Eigen{Dimension: c, Values: values, Vectors: vectors}, nil
}

// FromSquareRoot returns the eigen structure of AᵗA for the given
// rectangular matrix A, computed from A directly using the singular
// value decomposition (see [matrix.SVD]). The rows of A are
// the observations, and its columns the dimensions.
func FromSquareRoot(a mat.Matrix) (*Eigen, error) {
	vals, vecs, err := matrix.SVD(a)
	if err != nil {
		return nil, err
	}
	return New(vals, vecs)
}

// FromSymmetric returns the eigen structure of the given symmetric matrix.
func FromSymmetric(s mat.Symmetric) (*Eigen, error) {
	vals, vecs, err := matrix.EigSym(s)
	if err != nil {
		return nil, err
	}
	return New(vals, vecs)
}

// NumComponents returns the number of eigenvalue / eigenvector pairs.
func (e *Eigen) NumComponents() int { return len(e.Values) }

// Vector returns the eigenvector for Values[i], as a slice into Vectors.
func (e *Eigen) Vector(i int) []float64 {
	return e.Vectors.RawRowView(i)
}

// Sum returns the sum of all the eigenvalues.
func (e *Eigen) Sum() float64 {
	return matrix.Sum(e.Values)
}

// CumulativeFraction returns the fraction of the sum of all eigenvalues
// that is in components from..to (1-based, inclusive). It is undefined
// for an invalid range or a zero sum.
func (e *Eigen) CumulativeFraction(from, to int) undef.Float {
	if from < 1 || from > to || to > e.NumComponents() {
		return undef.Undefined()
	}
	sum := e.Sum()
	if sum == 0 {
		return undef.Undefined()
	}
	return undef.Of(matrix.Sum(e.Values[from-1:to]) / sum)
}

// NumComponentsForFraction returns the smallest number of leading
// components whose eigenvalues sum to at least the given fraction of
// the sum of all the eigenvalues. It returns 0 if the sum is not positive.
func (e *Eigen) NumComponentsForFraction(fraction float64) int {
	sum := e.Sum()
	if sum <= 0 {
		return 0
	}
	var acc matrix.Accum
	for i, v := range e.Values {
		acc.Add(v)
		if acc.Value()/sum >= fraction {
			return i + 1
		}
	}
	return e.NumComponents()
}

// ProjectRows performs the change of basis of each row of the given table
// onto the leading dims eigenvectors: cell (i, j) of the result is the
// inner product of row i with eigenvector j. The data are used as is
// (not centered). If dims is 0 or greater than the number of components,
// all components are used. Row labels are copied.
func (e *Eigen) ProjectRows(dt *table.Table, dims int) (*table.Table, error) {
	if dt.NumColumns() != e.Dimension {
		return nil, fmt.Errorf("eigen.ProjectRows: table has %d columns, eigen dimension is %d: %w", dt.NumColumns(), e.Dimension, ErrDimensionMismatch)
	}
	if dims <= 0 || dims > e.NumComponents() {
		dims = e.NumComponents()
	}
	out := table.New(dt.NumRows(), dims)
	for i := range dt.NumRows() {
		row := dt.Row(i)
		for j := range dims {
			out.SetFloat(matrix.Dot(e.Vector(j), row), i, j)
		}
	}
	out.SetRowLabels(dt.RowLabels...)
	return out, nil
}

// ProjectSymmetric projects the given square symmetric matrix S (such as a
// covariance or SSCP matrix) of the eigen dimension into the space of
// the eigenvectors: E S Eᵗ, where E has the eigenvectors as rows.
// The result is NumComponents x NumComponents, and its diagonal holds
// the variance of S along each eigenvector.
func (e *Eigen) ProjectSymmetric(s *table.Table) (*table.Table, error) {
	if s.NumRows() != e.Dimension || s.NumColumns() != e.Dimension {
		return nil, fmt.Errorf("eigen.ProjectSymmetric: matrix is %d x %d, eigen dimension is %d: %w", s.NumRows(), s.NumColumns(), e.Dimension, ErrDimensionMismatch)
	}
	var es, ese mat.Dense
	es.Mul(e.Vectors, s.Dense())
	ese.Mul(&es, e.Vectors.T())
	return table.NewFromDense(&ese), nil
}

// Sort orders the eigenvalues from highest to lowest,
// keeping the eigenvectors aligned.
func (e *Eigen) Sort() {
	matrix.SortDescending(e.Values, e.Vectors)
}

// IsOrthonormal returns true if the eigenvectors have unit length
// and are pairwise orthogonal, within the given tolerance.
func (e *Eigen) IsOrthonormal(tol float64) bool {
	n := e.NumComponents()
	for i := range n {
		for j := i; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			d := matrix.Dot(e.Vector(i), e.Vector(j)) - want
			if d > tol || d < -tol {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy.
func (e *Eigen) Clone() *Eigen {
	cp := &Eigen{Dimension: e.Dimension}
	cp.Values = append([]float64(nil), e.Values...)
	cp.Vectors = mat.DenseCopyOf(e.Vectors)
	return cp
}

// String returns a summary of the eigen structure.
func (e *Eigen) String() string {
	return fmt.Sprintf("Eigen: %d components of dimension %d, eigenvalues %v", e.NumComponents(), e.Dimension, e.Values)
}
