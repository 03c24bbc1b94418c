// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import (
	"math"
	"testing"

	"cogentcore.org/multivar/base/errors"
	"cogentcore.org/multivar/tensor/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() *table.Table {
	dt := table.NewFromValues(4, 2,
		1, 2,
		2, 1,
		3, 4,
		4, 3)
	dt.SetColumnLabels("a", "b")
	return dt
}

func TestCovarMatrix(t *testing.T) {
	tol := 1.0e-12
	cv, err := CovarMatrix(testData())
	require.NoError(t, err)
	// var(a) = var(b) = 5/3, cov = 3/3
	assert.InDelta(t, 5.0/3, cv.Float(0, 0), tol)
	assert.InDelta(t, 5.0/3, cv.Float(1, 1), tol)
	assert.InDelta(t, 1, cv.Float(0, 1), tol)
	assert.InDelta(t, 1, cv.Float(1, 0), tol)
	assert.Equal(t, []string{"a", "b"}, cv.RowLabels)
	assert.Equal(t, []string{"a", "b"}, cv.ColumnLabels)

	ss, err := SSCP(testData())
	require.NoError(t, err)
	assert.InDelta(t, 5, ss.Float(0, 0), tol)
	assert.InDelta(t, 3, ss.Float(0, 1), tol)

	cr, err := CorrelationMatrix(testData())
	require.NoError(t, err)
	assert.InDelta(t, 1, cr.Float(0, 0), tol)
	assert.InDelta(t, 0.6, cr.Float(0, 1), tol)
}

func TestMatrixErrors(t *testing.T) {
	_, err := CovarMatrix(table.New(1, 3))
	assert.Error(t, err)
	dt := testData()
	dt.SetFloat(math.NaN(), 1, 1)
	_, err = CorrelationMatrix(dt)
	assert.Error(t, err)
	_, err = SSCP(dt)
	assert.Error(t, err)
}

func TestCorrelationConstantColumn(t *testing.T) {
	dt := testData()
	for i := range dt.NumRows() {
		dt.SetFloat(7, i, 1)
	}
	_, err := CorrelationMatrix(dt)
	assert.True(t, errors.Is(err, ErrZeroVariance))
	assert.ErrorContains(t, err, `"b"`)

	// covariances of a constant column are just zero
	cv, err := CovarMatrix(dt)
	require.NoError(t, err)
	assert.True(t, cv.AllDefined())
	assert.Equal(t, 0.0, cv.Float(1, 1))
}
