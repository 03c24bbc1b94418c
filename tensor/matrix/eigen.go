// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"sort"

	"cogentcore.org/multivar/base/errors"
	"gonum.org/v1/gonum/mat"
)

// ZeroTolerance is the relative tolerance below which singular values
// are set to exactly zero by [SVD]: any value smaller than
// ZeroTolerance * max(rows, cols) * largest singular value.
// This turns numerical noise in rank deficient data into clean zeros.
var ZeroTolerance = 1e-15

// EigSym performs the eigen decomposition of the given symmetric square matrix,
// which produces real-valued results. When input is a covariance matrix,
// this is known as Principal Components Analysis (PCA).
// Unlike the raw gonum ordering, the values are returned ordered *highest*
// to *lowest*, and each eigenvector is a *row* of vecs, aligned with vals,
// i.e., the maximum eigenvector is the first row.
func EigSym(a mat.Symmetric) (vals []float64, vecs *mat.Dense, err error) {
	n := a.SymmetricDim()
	if n == 0 {
		return nil, nil, mat.ErrZeroLength
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(a, true); !ok {
		return nil, nil, errors.New("gonum mat.EigenSym Factorize failed")
	}
	vals = eig.Values(nil)
	var ev mat.Dense
	eig.VectorsTo(&ev)
	// gonum orders lowest to highest with vectors in columns
	vecs = mat.NewDense(n, n, nil)
	order := descending(vals)
	sorted := make([]float64, n)
	for i, k := range order {
		sorted[i] = vals[k]
		for j := range n {
			vecs.Set(i, j, ev.At(j, k))
		}
	}
	return sorted, vecs, nil
}

// SVD computes the eigen structure of AᵗA for the given rectangular
// matrix A, without forming AᵗA, using the singular value decomposition
// A = U Σ Vᵗ: the eigenvalues are the squared singular values, and
// the eigenvectors are the rows of Vᵗ. This "square root" route is
// numerically preferred to [EigSym] on the explicit product.
// The number of components is min(rows, cols); the values are ordered
// *highest* to *lowest*, with the matching eigenvectors as rows of vecs.
// Singular values below [ZeroTolerance] (relative) are set to zero.
func SVD(a mat.Matrix) (vals []float64, vecs *mat.Dense, err error) {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, nil, mat.ErrZeroLength
	}
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThinV); !ok {
		return nil, nil, errors.New("gonum mat.SVD Factorize failed")
	}
	sv := svd.Values(nil) // already highest to lowest
	var v mat.Dense
	svd.VTo(&v) // c x min(r, c)
	nsv := len(sv)
	tol := 0.0
	if nsv > 0 {
		tol = ZeroTolerance * float64(max(r, c)) * sv[0]
	}
	vals = make([]float64, nsv)
	vecs = mat.NewDense(nsv, c, nil)
	for i, s := range sv {
		if s > tol {
			vals[i] = s * s
		}
		for j := range c {
			vecs.Set(i, j, v.At(j, i))
		}
	}
	return vals, vecs, nil
}

// descending returns the indexes of vals ordered from highest to lowest value.
func descending(vals []float64) []int {
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return vals[order[i]] > vals[order[j]]
	})
	return order
}

// SortDescending reorders vals from highest to lowest, permuting the
// rows of vecs in the same way so that each row stays paired with its value.
func SortDescending(vals []float64, vecs *mat.Dense) {
	order := descending(vals)
	_, c := vecs.Dims()
	sv := make([]float64, len(vals))
	sr := mat.NewDense(len(vals), c, nil)
	for i, k := range order {
		sv[i] = vals[k]
		sr.SetRow(i, vecs.RawRowView(k))
	}
	copy(vals, sv)
	vecs.Copy(sr)
}
