// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cca provides canonical correlation analysis (CCA) models,
// relating a set of dependent variables (y) to a set of independent
// variables (x), and the analyses of a fitted model together with a
// correlation matrix: factor loadings, variance fractions and
// Stewart-Love redundancy indexes.
//
// The correlation matrix always has the dependent variables first,
// followed by the independent ones, so it is (ny+nx) x (ny+nx).
package cca

import (
	"fmt"
	"math"

	"cogentcore.org/multivar/base/errors"
	"cogentcore.org/multivar/tensor/matrix"
	"cogentcore.org/multivar/tensor/stats/eigen"
	"cogentcore.org/multivar/tensor/stats/metric"
	"cogentcore.org/multivar/tensor/table"
	"gonum.org/v1/gonum/mat"
)

// Set selects one of the two variable sets of a [CCA].
type Set int32

const (
	// Dependent is the dependent (y) variable set.
	Dependent Set = iota

	// Independent is the independent (x) variable set.
	Independent
)

func (s Set) String() string {
	switch s {
	case Dependent:
		return "Dependent"
	case Independent:
		return "Independent"
	}
	return fmt.Sprintf("Set(%d)", int32(s))
}

// CCA is a canonical correlation model. Row i of the eigenvectors of Y
// and of X are the weights of the i-th pair of canonical variates.
// The eigenvalues of Y are the squared canonical correlations.
type CCA struct {

	// Y is the canonical structure of the dependent variables.
	Y *eigen.Eigen

	// X is the canonical structure of the independent variables.
	X *eigen.Eigen

	// NumCoefficients is the number of canonical variate pairs,
	// at most the smaller of the two dimensions.
	NumCoefficients int

	// YLabels are the dependent variable names.
	YLabels []string

	// XLabels are the independent variable names.
	XLabels []string
}

// New returns a new CCA for the given canonical structures.
// numCoefficients must be within both numbers of components.
func New(y, x *eigen.Eigen, numCoefficients int) (*CCA, error) {
	if numCoefficients < 1 || numCoefficients > y.NumComponents() || numCoefficients > x.NumComponents() {
		return nil, fmt.Errorf("cca.New: %d coefficients for %d y and %d x components: %w", numCoefficients, y.NumComponents(), x.NumComponents(), eigen.ErrInvalidRange)
	}
	c := &CCA{Y: y, X: x, NumCoefficients: numCoefficients}
	c.YLabels = make([]string, y.Dimension)
	c.XLabels = make([]string, x.Dimension)
	return c, nil
}

// Dimension returns the combined dimension of both variable sets,
// which must match the size of a correlation matrix used with the model.
func (c *CCA) Dimension() int {
	return c.Y.Dimension + c.X.Dimension
}

// Correlations returns the canonical correlations, one per coefficient.
func (c *CCA) Correlations() []float64 {
	cr := make([]float64, c.NumCoefficients)
	for i := range cr {
		cr[i] = math.Sqrt(max(c.Y.Values[i], 0))
	}
	return cr
}

// String returns a summary of the model.
func (c *CCA) String() string {
	return fmt.Sprintf("CCA: %d coefficients, dependent dimension %d, independent dimension %d", c.NumCoefficients, c.Y.Dimension, c.X.Dimension)
}

// Fit returns the CCA of the given data table, with observations in rows,
// where the first ny columns are the dependent variables and the
// remaining columns the independent ones. See [FromCorrelation].
func Fit(data *table.Table, ny int) (*CCA, error) {
	cr, err := metric.CorrelationMatrix(data)
	if errors.Is(err, metric.ErrZeroVariance) {
		return nil, fmt.Errorf("cca.Fit: %w: %w", eigen.ErrDegenerateInput, err)
	}
	if err != nil {
		return nil, fmt.Errorf("cca.Fit: %w: %w", eigen.ErrInvalidInput, err)
	}
	return FromCorrelation(cr, ny)
}

// FromCorrelation returns the CCA for the given correlation matrix,
// where the first ny variables form the dependent set.
// With Ryy, Rxx the within-set and Ryx the between-set correlations,
// the singular value decomposition of Ryy^-½ Ryx Rxx^-½ = U Σ Vᵗ gives
// the canonical correlations Σ and the weights Ryy^-½ U and Rxx^-½ V,
// which are scaled so that each canonical variate has unit variance
// (eᵗ R e = 1). Each y weight vector is signed so that its largest
// element is positive, with its paired x vector signed to match.
// All values must be defined, and both within-set matrices must be
// positive definite.
func FromCorrelation(corr *table.Table, ny int) (*CCA, error) {
	n := corr.NumRows()
	if !corr.AllDefined() {
		return nil, fmt.Errorf("cca.FromCorrelation: all correlations should be defined: %w", eigen.ErrInvalidInput)
	}
	sym, err := matrix.NewSymmetric(corr)
	if err != nil {
		return nil, fmt.Errorf("cca.FromCorrelation: %w: %w", eigen.ErrInvalidInput, err)
	}
	if ny < 1 || ny >= n {
		return nil, fmt.Errorf("cca.FromCorrelation: dependent dimension %d outside of [1, %d]: %w", ny, n-1, eigen.ErrInvalidRange)
	}
	nx := n - ny
	iy, err := invSqrt(symBlock(sym, 0, ny))
	if err != nil {
		return nil, fmt.Errorf("cca.FromCorrelation: dependent set: %w", err)
	}
	ix, err := invSqrt(symBlock(sym, ny, nx))
	if err != nil {
		return nil, fmt.Errorf("cca.FromCorrelation: independent set: %w", err)
	}
	ryx := matrix.Sub(corr, 0, ny, ny, n)
	var m, t mat.Dense
	t.Mul(iy, ryx)
	m.Mul(&t, ix)

	var svd mat.SVD
	if ok := svd.Factorize(&m, mat.SVDThin); !ok {
		return nil, fmt.Errorf("cca.FromCorrelation: gonum mat.SVD Factorize failed: %w", eigen.ErrDegenerateInput)
	}
	sv := svd.Values(nil)
	var u, v, wy, wx mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	wy.Mul(iy, &u) // ny x k, weights in columns
	wx.Mul(ix, &v)

	k := len(sv)
	yvals := make([]float64, k)
	xvals := make([]float64, k)
	yvecs := mat.NewDense(k, ny, nil)
	xvecs := mat.NewDense(k, nx, nil)
	for i, s := range sv {
		s = min(s, 1)
		yvals[i] = s * s
		xvals[i] = s * s
		sign := signOfLargest(mat.Col(nil, i, &wy))
		for j := range ny {
			yvecs.Set(i, j, sign*wy.At(j, i))
		}
		for j := range nx {
			xvecs.Set(i, j, sign*wx.At(j, i))
		}
	}
	y, err := eigen.New(yvals, yvecs)
	if err != nil {
		return nil, err
	}
	x, err := eigen.New(xvals, xvecs)
	if err != nil {
		return nil, err
	}
	c, err := New(y, x, k)
	if err != nil {
		return nil, err
	}
	copy(c.YLabels, corr.ColumnLabels[:ny])
	copy(c.XLabels, corr.ColumnLabels[ny:])
	return c, nil
}

// symBlock returns the n x n diagonal block of s starting at off.
func symBlock(s mat.Symmetric, off, n int) *mat.SymDense {
	b := mat.NewSymDense(n, nil)
	for i := range n {
		for j := i; j < n; j++ {
			b.SetSym(i, j, s.At(off+i, off+j))
		}
	}
	return b
}

// invSqrt returns the inverse square root of the given symmetric
// positive definite matrix, Q Λ^-½ Qᵗ from its eigen decomposition.
func invSqrt(s *mat.SymDense) (*mat.Dense, error) {
	vals, vecs, err := matrix.EigSym(s)
	if err != nil {
		return nil, err
	}
	n := len(vals)
	tol := matrix.SymmetryTolerance * float64(n) * max(vals[0], 1)
	if !(vals[n-1] > tol) { // also catches NaN
		return nil, fmt.Errorf("correlation matrix is singular (smallest eigenvalue %g): %w", vals[n-1], eigen.ErrDegenerateInput)
	}
	// vecs has eigenvectors in rows: result is vecsᵗ D vecs
	var d mat.Dense
	d.Scale(1, vecs)
	for i, v := range vals {
		row := d.RawRowView(i)
		f := 1 / math.Sqrt(v)
		for j := range row {
			row[j] *= f
		}
	}
	var out mat.Dense
	out.Mul(vecs.T(), &d)
	return &out, nil
}

// signOfLargest returns the sign of the element of v with the
// largest absolute value.
func signOfLargest(v []float64) float64 {
	mx, sign := 0.0, 1.0
	for _, x := range v {
		if a := math.Abs(x); a > mx {
			mx = a
			sign = math.Copysign(1, x)
		}
	}
	return sign
}
