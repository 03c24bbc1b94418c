// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pca

import (
	"fmt"
	"math"

	"cogentcore.org/multivar/base/errors"
	"cogentcore.org/multivar/base/undef"
	"cogentcore.org/multivar/tensor/matrix"
	"cogentcore.org/multivar/tensor/stats/eigen"
	"cogentcore.org/multivar/tensor/stats/metric"
	"cogentcore.org/multivar/tensor/table"
)

// ProjectRows returns the principal component scores of each row of
// the given data table, on the leading dims components: cell (i, j) is
// the inner product of row i with eigenvector j. The data are not
// centered first, so this is a pure change of basis that [PCA.Reconstruct]
// inverts. If dims is 0 or greater than the number of components, all
// components are used. The columns are labeled pc1, pc2, ...
func (pc *PCA) ProjectRows(data *table.Table, dims int) (*table.Table, error) {
	out, err := pc.Eigen.ProjectRows(data, dims)
	if err != nil {
		return nil, fmt.Errorf("pca.ProjectRows: %w", err)
	}
	out.SetSequentialColumnLabels(0, out.NumColumns(), "pc", 1)
	return out, nil
}

// ZScores returns the standardized principal component scores of each
// row of the given data table, on the leading dims components: the
// centroid is subtracted from each row, which is then projected on each
// eigenvector and divided by the square root of its eigenvalue, giving
// unit variance scores for the fitting data. dims is clamped as in
// [PCA.ProjectRows]. A used component with a non-positive eigenvalue is
// an [eigen.ErrDegenerateInput] error.
func (pc *PCA) ZScores(data *table.Table, dims int) (*table.Table, error) {
	if data.NumColumns() != pc.Dimension {
		return nil, fmt.Errorf("pca.ZScores: table has %d columns, model dimension is %d: %w", data.NumColumns(), pc.Dimension, eigen.ErrDimensionMismatch)
	}
	if dims <= 0 || dims > pc.NumComponents() {
		dims = pc.NumComponents()
	}
	sigma := make([]float64, dims)
	for j := range dims {
		if pc.Values[j] <= 0 {
			return nil, fmt.Errorf("pca.ZScores: eigenvalue %d is %g, cannot standardize: %w", j+1, pc.Values[j], eigen.ErrDegenerateInput)
		}
		sigma[j] = math.Sqrt(pc.Values[j])
	}
	out := table.New(data.NumRows(), dims)
	for i := range data.NumRows() {
		row := data.Row(i)
		for j := range dims {
			vec := pc.Vector(j)
			var acc matrix.Accum
			for k, v := range row {
				acc.AddProduct(vec[k], v-pc.Centroid[k])
			}
			out.SetFloat(acc.Value()/sigma[j], i, j)
		}
	}
	out.SetRowLabels(data.RowLabels...)
	out.SetSequentialColumnLabels(0, dims, "pc", 1)
	return out, nil
}

// Reconstruct returns the data reconstructed from the given principal
// component scores, one observation per row and one component per column:
// each row of scores is multiplied by the eigenvector matrix, undoing
// the change of basis of [PCA.ProjectRows].
//
// The centroid is NOT added back: the result is in the same coordinates
// as the data that were projected, so Reconstruct(ProjectRows(data, 0))
// gives back data when all components are kept. Use
// [PCA.ReconstructCentered] for scores of centered data.
//
// The scores may have fewer columns than components (the remaining scores
// are taken as zero), but not more ([eigen.ErrInvalidInput]).
// The columns are labeled with the model labels.
func (pc *PCA) Reconstruct(scores *table.Table) (*table.Table, error) {
	npc := scores.NumColumns()
	if npc > pc.Dimension {
		return nil, fmt.Errorf("pca.Reconstruct: %d score columns, more than the dimension %d: %w", npc, pc.Dimension, eigen.ErrInvalidInput)
	}
	if npc > pc.NumComponents() {
		return nil, fmt.Errorf("pca.Reconstruct: %d score columns, more than the %d components: %w", npc, pc.NumComponents(), eigen.ErrInvalidInput)
	}
	out := table.New(scores.NumRows(), pc.Dimension)
	for i := range scores.NumRows() {
		srow := scores.Row(i)
		orow := out.Row(i)
		for k := range pc.Dimension {
			var acc matrix.Accum
			for j, s := range srow {
				acc.AddProduct(s, pc.Vectors.At(j, k))
			}
			orow[k] = acc.Value()
		}
	}
	out.SetRowLabels(scores.RowLabels...)
	out.SetColumnLabels(pc.Labels...)
	return out, nil
}

// ReconstructCentered is [PCA.Reconstruct] followed by adding the centroid
// to every row, for scores that were computed from centered data.
func (pc *PCA) ReconstructCentered(scores *table.Table) (*table.Table, error) {
	out, err := pc.Reconstruct(scores)
	if err != nil {
		return nil, err
	}
	for i := range out.NumRows() {
		row := out.Row(i)
		for k, c := range pc.Centroid {
			row[k] += c
		}
	}
	return out, nil
}

// ReconstructVector returns a single row table reconstructed from the
// given scores, as in [PCA.Reconstruct].
func (pc *PCA) ReconstructVector(scores ...float64) (*table.Table, error) {
	return pc.Reconstruct(table.NewFromValues(1, len(scores), scores...))
}

// FractionVariance returns the fraction of the variance of the given data
// table that is accounted for by components from..to (1-based, inclusive).
// The sums of squares and cross products matrix of the data is projected
// into the component space, and the sum of its diagonal over the range
// is divided by its trace.
//
// For the data the model was fitted on, the fraction for all components
// is 1. The result is undefined (never an error) unless
// 1 <= from <= to <= number of data columns (and components), or when any
// step fails.
func (pc *PCA) FractionVariance(data *table.Table, from, to int) undef.Float {
	if from < 1 || from > to || to > data.NumColumns() || to > pc.NumComponents() {
		return undef.Undefined()
	}
	ss := errors.Log1(metric.SSCP(data))
	if ss == nil {
		return undef.Undefined()
	}
	sp := errors.Log1(pc.ProjectSymmetric(ss))
	if sp == nil {
		return undef.Undefined()
	}
	var part, trace matrix.Accum
	for i := range sp.NumRows() {
		v := sp.Float(i, i)
		trace.Add(v)
		if i >= from-1 && i < to {
			part.Add(v)
		}
	}
	tr := trace.Value()
	if tr == 0 {
		return undef.Undefined()
	}
	return undef.Of(part.Value() / tr)
}
