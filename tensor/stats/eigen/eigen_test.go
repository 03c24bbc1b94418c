// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eigen

import (
	"math"
	"testing"

	"cogentcore.org/multivar/tensor/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNew(t *testing.T) {
	_, err := New([]float64{1, 2}, mat.NewDense(3, 2, nil))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	e, err := New([]float64{1, 3}, mat.NewDense(2, 3, []float64{1, 0, 0, 0, 1, 0}))
	require.NoError(t, err)
	assert.Equal(t, 3, e.Dimension)
	assert.Equal(t, 2, e.NumComponents())

	e.Sort()
	assert.Equal(t, []float64{3, 1}, e.Values)
	assert.Equal(t, []float64{0, 1, 0}, e.Vector(0))
	assert.True(t, e.IsOrthonormal(1e-15))
}

func TestFromSymmetric(t *testing.T) {
	s := mat.NewSymDense(3, []float64{
		4, 0, 0,
		0, 1, 0,
		0, 0, 2})
	e, err := FromSymmetric(s)
	require.NoError(t, err)
	tol := 1.0e-12
	assert.InDeltaSlice(t, []float64{4, 2, 1}, e.Values, tol)
	assert.InDelta(t, 1, math.Abs(e.Vector(0)[0]), tol)
	assert.InDelta(t, 1, math.Abs(e.Vector(1)[2]), tol)
	assert.True(t, e.IsOrthonormal(tol))
	assert.InDelta(t, 7, e.Sum(), tol)
}

func TestFromSquareRoot(t *testing.T) {
	a := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 2,
		-1, 0})
	e, err := FromSquareRoot(a)
	require.NoError(t, err)
	// AᵗA = diag(2, 4)
	assert.InDeltaSlice(t, []float64{4, 2}, e.Values, 1e-12)
	assert.Equal(t, 2, e.Dimension)
	assert.True(t, e.IsOrthonormal(1e-12))
}

func TestFractions(t *testing.T) {
	e, err := New([]float64{6, 3, 1}, mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}))
	require.NoError(t, err)

	f, ok := e.CumulativeFraction(1, 2).Value()
	assert.True(t, ok)
	assert.InDelta(t, 0.9, f, 1e-15)
	assert.InDelta(t, 1, e.CumulativeFraction(1, 3).Or(0), 1e-15)
	assert.False(t, e.CumulativeFraction(0, 2).Defined())
	assert.False(t, e.CumulativeFraction(2, 1).Defined())
	assert.False(t, e.CumulativeFraction(1, 4).Defined())

	assert.Equal(t, 1, e.NumComponentsForFraction(0.5))
	assert.Equal(t, 2, e.NumComponentsForFraction(0.9))
	assert.Equal(t, 3, e.NumComponentsForFraction(0.95))
	assert.Equal(t, 3, e.NumComponentsForFraction(1.5))
}

func TestProject(t *testing.T) {
	s := 1 / math.Sqrt2
	e, err := New([]float64{2, 1}, mat.NewDense(2, 2, []float64{s, s, -s, s}))
	require.NoError(t, err)

	dt := table.NewFromValues(2, 2, 1, 1, 2, 0)
	dt.SetRowLabels("p", "q")
	pr, err := e.ProjectRows(dt, 0)
	require.NoError(t, err)
	tol := 1.0e-12
	assert.InDeltaSlice(t, []float64{math.Sqrt2, 0, math.Sqrt2, -math.Sqrt2}, pr.Values, tol)
	assert.Equal(t, []string{"p", "q"}, pr.RowLabels)

	pr1, err := e.ProjectRows(dt, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, pr1.NumColumns())

	_, err = e.ProjectRows(table.New(2, 3), 0)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	// the covariance of the basis itself is diagonal in eigen space
	cv := table.NewFromValues(2, 2, 1.5, 0.5, 0.5, 1.5)
	ps, err := e.ProjectSymmetric(cv)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 0, 0, 1}, ps.Values, tol)

	_, err = e.ProjectSymmetric(table.New(3, 3))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestClone(t *testing.T) {
	e, err := New([]float64{2, 1}, mat.NewDense(2, 2, []float64{1, 0, 0, 1}))
	require.NoError(t, err)
	cp := e.Clone()
	cp.Values[0] = 5
	cp.Vectors.Set(0, 0, 5)
	assert.Equal(t, 2.0, e.Values[0])
	assert.Equal(t, 1.0, e.Vectors.At(0, 0))
	assert.Contains(t, e.String(), "2 components of dimension 2")
}
