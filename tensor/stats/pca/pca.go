// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pca

import (
	"fmt"
	"log/slog"

	"cogentcore.org/multivar/tensor/matrix"
	"cogentcore.org/multivar/tensor/stats/eigen"
	"cogentcore.org/multivar/tensor/table"
	"gonum.org/v1/gonum/floats"
)

// PCA is a principal components model: the eigen structure of the
// covariance matrix of the fitting data, with the data centroid
// and the variable labels.
type PCA struct {
	eigen.Eigen

	// Centroid has the column means of the fitting data, one per dimension.
	Centroid []float64

	// Labels has the variable names, one per dimension,
	// parallel to Centroid and the eigenvector columns.
	Labels []string

	// numObservations is the number of observations of the fitting data,
	// used by the sphericity test.
	numObservations int
}

// Fit returns a new [PCA] model for the given data table. Normally the rows
// are the observations and the columns the variables; if byColumns is
// true it is the other way around, and the table is transposed first.
// The variable labels are taken from the column labels (row labels if
// byColumns). The data table is not modified.
//
// All cells must be defined ([eigen.ErrInvalidInput]), and not all zero
// ([eigen.ErrDegenerateInput]). Having fewer observations than variables
// is numerically risky but allowed, and logged as a warning.
//
// The eigen structure of AᵗA, with A the centered data, is computed
// from A directly by singular value decomposition, and the eigenvalues
// are then divided by (observations - 1) to give the eigenvalues of
// the covariance matrix.
func Fit(data *table.Table, byColumns bool) (*PCA, error) {
	if data.NumRows() == 0 || data.NumColumns() == 0 {
		return nil, fmt.Errorf("pca.Fit: empty data table: %w", eigen.ErrInvalidInput)
	}
	if !data.AllDefined() {
		return nil, fmt.Errorf("pca.Fit: all data values should be defined: %w", eigen.ErrInvalidInput)
	}
	if matrix.FrobeniusNorm(data) <= 0 {
		return nil, fmt.Errorf("pca.Fit: all values are zero: %w", eigen.ErrDegenerateInput)
	}
	var work *table.Table
	var labels []string
	if byColumns {
		work = data.Transpose()
		labels = data.RowLabels
	} else {
		work = data.Clone()
		labels = data.ColumnLabels
	}
	nobs, nvars := work.NumRows(), work.NumColumns()
	if nobs < 2 {
		return nil, fmt.Errorf("pca.Fit: need at least 2 observations, have %d: %w", nobs, eigen.ErrDegenerateInput)
	}
	if nobs < nvars {
		slog.Warn("pca.Fit: the number of observations is less than the number of variables", "observations", nobs, "variables", nvars, "byColumns", byColumns)
	}

	pc := &PCA{}
	pc.Centroid = matrix.ColumnMeans(work)
	matrix.SubtractRows(work, pc.Centroid)
	eig, err := eigen.FromSquareRoot(work.Dense())
	if err != nil {
		return nil, fmt.Errorf("pca.Fit: %w", err)
	}
	pc.Eigen = *eig
	// the eigenvectors of AᵗA and of the covariance AᵗA / (n-1) are the same
	floats.Scale(1/float64(nobs-1), pc.Values)
	pc.Labels = append([]string(nil), labels...)
	pc.numObservations = nobs
	return pc, nil
}

// NumObservations returns the number of observations of the fitting data.
func (pc *PCA) NumObservations() int { return pc.numObservations }

// SetNumObservations sets the number of observations, for a model that
// was assembled from stored eigen structure without the original data.
func (pc *PCA) SetNumObservations(n int) { pc.numObservations = n }

// ToEigen returns a copy of the eigen structure of the model.
func (pc *PCA) ToEigen() *eigen.Eigen {
	return pc.Eigen.Clone()
}

// String returns a summary of the model.
func (pc *PCA) String() string {
	return fmt.Sprintf("PCA: %d components, %d dimensions, %d observations", pc.NumComponents(), pc.Dimension, pc.numObservations)
}
