// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	dt := New(3, 2, "data")
	assert.Equal(t, 3, dt.NumRows())
	assert.Equal(t, 2, dt.NumColumns())
	assert.Equal(t, "data", dt.Meta.Name())
	assert.Len(t, dt.Values, 6)
	assert.Len(t, dt.RowLabels, 3)
	assert.Len(t, dt.ColumnLabels, 2)

	dt.SetFloat(4.5, 2, 1)
	assert.Equal(t, 4.5, dt.Float(2, 1))
	assert.Equal(t, 4.5, dt.Values[5])
	assert.Equal(t, []float64{0, 4.5}, dt.Row(2))
	assert.Equal(t, []float64{0, 0, 4.5}, dt.Column(1))

	assert.NoError(t, dt.IsValidRow(2))
	assert.Error(t, dt.IsValidRow(3))
	assert.NoError(t, dt.IsValidColumn(1))
	assert.Error(t, dt.IsValidColumn(-1))
}

func TestNewFromRows(t *testing.T) {
	dt, err := NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, dt.Values)

	_, err = NewFromRows([][]float64{{1, 2}, {3}})
	assert.Error(t, err)

	assert.Panics(t, func() { NewFromValues(2, 2, 1, 2, 3) })
}

func TestLabels(t *testing.T) {
	dt := New(4, 3)
	dt.SetColumnLabels("a", "b", "c", "ignored")
	assert.Equal(t, []string{"a", "b", "c"}, dt.ColumnLabels)

	dt.SetSequentialRowLabels(0, 2, "dv", 1)
	dt.SetSequentialRowLabels(2, 4, "iv", 1)
	assert.Equal(t, []string{"dv1", "dv2", "iv1", "iv2"}, dt.RowLabels)

	dt.SetSequentialColumnLabels(0, 10, "pc", 1)
	assert.Equal(t, []string{"pc1", "pc2", "pc3"}, dt.ColumnLabels)
}

func TestTransposeClone(t *testing.T) {
	dt := NewFromValues(2, 3, 1, 2, 3, 4, 5, 6)
	dt.SetRowLabels("r1", "r2")
	dt.SetColumnLabels("x", "y", "z")
	tr := dt.Transpose()
	assert.Equal(t, 3, tr.NumRows())
	assert.Equal(t, 2, tr.NumColumns())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, tr.Values)
	assert.Equal(t, []string{"x", "y", "z"}, tr.RowLabels)
	assert.Equal(t, []string{"r1", "r2"}, tr.ColumnLabels)

	cp := dt.Clone()
	cp.SetFloat(100, 0, 0)
	cp.RowLabels[0] = "changed"
	assert.Equal(t, 1.0, dt.Float(0, 0))
	assert.Equal(t, "r1", dt.RowLabels[0])
}

func TestDense(t *testing.T) {
	dt := NewFromValues(2, 2, 1, 2, 3, 4)
	d := dt.Dense()
	d.Set(0, 1, 7)
	assert.Equal(t, 7.0, dt.Float(0, 1))

	cp := NewFromDense(d)
	assert.Equal(t, dt.Values, cp.Values)
	cp.SetFloat(0, 0, 0)
	assert.Equal(t, 1.0, dt.Float(0, 0))
}

func TestAllDefined(t *testing.T) {
	dt := NewFromValues(1, 3, 1, 2, 3)
	assert.True(t, dt.AllDefined())
	dt.SetFloat(math.NaN(), 0, 1)
	assert.False(t, dt.AllDefined())
	dt.SetFloat(math.Inf(-1), 0, 1)
	assert.False(t, dt.AllDefined())
}

func TestCSV(t *testing.T) {
	dt := NewFromValues(2, 2, 1.5, -2, 3, 0.25)
	dt.SetRowLabels("a", "b")
	dt.SetColumnLabels("x", "y")

	var b bytes.Buffer
	require.NoError(t, dt.WriteCSV(&b, Comma))
	assert.Equal(t, ",x,y\na,1.5,-2\nb,3,0.25\n", b.String())
	assert.Equal(t, "\tx\ty\na\t1.5\t-2\nb\t3\t0.25\n", dt.String())

	rd, err := ReadCSV(strings.NewReader(b.String()), Detect)
	require.NoError(t, err)
	assert.Equal(t, dt.Values, rd.Values)
	assert.Equal(t, dt.RowLabels, rd.RowLabels)
	assert.Equal(t, dt.ColumnLabels, rd.ColumnLabels)

	rd, err = ReadCSV(strings.NewReader("x\ty\n1\t\n3\t4\n"), Tab)
	require.NoError(t, err)
	assert.Equal(t, 2, rd.NumRows())
	assert.True(t, math.IsNaN(rd.Float(0, 1)))
	assert.False(t, rd.AllDefined())
	assert.Equal(t, []string{"", ""}, rd.RowLabels)

	_, err = ReadCSV(strings.NewReader("x,y\n1,abc\n"), Comma)
	assert.Error(t, err)
}

func TestOpenCSV(t *testing.T) {
	dt, err := OpenCSV("testdata/collinear.tsv", Tab)
	require.NoError(t, err)
	assert.Equal(t, 4, dt.NumRows())
	assert.Equal(t, 2, dt.NumColumns())
	assert.Equal(t, []string{"x", "y"}, dt.ColumnLabels)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, dt.Values)

	_, err = OpenCSV("testdata/missing.tsv", Tab)
	assert.Error(t, err)
}
