// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/multivar/base/errors"
	"cogentcore.org/multivar/base/metadata"
	"gonum.org/v1/gonum/mat"
)

// Table is a rectangular table of float64 values with a string label
// for every row and every column. It is the common input and output
// representation for data, scores, loadings and correlation matrices.
// Values are stored in row-major order, so each row is contiguous.
type Table struct {
	// Values has the cell values in row-major order.
	Values []float64

	// RowLabels has one label per row (may be empty strings).
	RowLabels []string

	// ColumnLabels has one label per column (may be empty strings).
	ColumnLabels []string

	// Meta is misc metadata for the table, see [metadata.Data]
	// for the standard keys (Name, Doc, Precision).
	Meta metadata.Data

	rows, cols int
}

// New returns a new zero-filled Table with the given number of rows
// and columns. Can pass an optional name which sets metadata.
func New(rows, cols int, name ...string) *Table {
	dt := &Table{rows: rows, cols: cols}
	dt.Values = make([]float64, rows*cols)
	dt.RowLabels = make([]string, rows)
	dt.ColumnLabels = make([]string, cols)
	if len(name) > 0 {
		dt.Meta.SetName(name[0])
	}
	return dt
}

// NewFromValues returns a new Table of given size that wraps the given
// row-major values, which are not copied.
// It panics if the number of values does not match the size.
func NewFromValues(rows, cols int, vals ...float64) *Table {
	if len(vals) != rows*cols {
		panic(fmt.Sprintf("table.NewFromValues: %d values for a %d x %d table", len(vals), rows, cols))
	}
	dt := &Table{rows: rows, cols: cols, Values: vals}
	dt.RowLabels = make([]string, rows)
	dt.ColumnLabels = make([]string, cols)
	return dt
}

// NewFromRows returns a new Table with values copied from the given rows,
// which must all have the same length.
func NewFromRows(rows [][]float64) (*Table, error) {
	nr := len(rows)
	nc := 0
	if nr > 0 {
		nc = len(rows[0])
	}
	dt := New(nr, nc)
	for i, r := range rows {
		if len(r) != nc {
			return nil, fmt.Errorf("table.NewFromRows: row %d has %d values, expected %d", i, len(r), nc)
		}
		copy(dt.Row(i), r)
	}
	return dt, nil
}

// NewFromDense returns a new Table with values copied from the given matrix.
func NewFromDense(m mat.Matrix) *Table {
	r, c := m.Dims()
	dt := New(r, c)
	dt.Dense().Copy(m)
	return dt
}

// NumRows returns the number of rows.
func (dt *Table) NumRows() int { return dt.rows }

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.cols }

// IsValidRow returns error if the row is invalid.
func (dt *Table) IsValidRow(row int) error {
	if row < 0 || row >= dt.rows {
		return fmt.Errorf("table.Table IsValidRow: row %d is out of valid range [0..%d]", row, dt.rows)
	}
	return nil
}

// IsValidColumn returns error if the column is invalid.
func (dt *Table) IsValidColumn(col int) error {
	if col < 0 || col >= dt.cols {
		return fmt.Errorf("table.Table IsValidColumn: column %d is out of valid range [0..%d]", col, dt.cols)
	}
	return nil
}

// Float returns the value at given row and column.
func (dt *Table) Float(row, col int) float64 {
	return dt.Values[row*dt.cols+col]
}

// SetFloat sets the value at given row and column.
func (dt *Table) SetFloat(val float64, row, col int) {
	dt.Values[row*dt.cols+col] = val
}

// Row returns the values of the given row as a slice
// into the table values; changes to it change the table.
func (dt *Table) Row(row int) []float64 {
	st := row * dt.cols
	return dt.Values[st : st+dt.cols : st+dt.cols]
}

// Column returns a copy of the values of the given column.
func (dt *Table) Column(col int) []float64 {
	vals := make([]float64, dt.rows)
	for i := range dt.rows {
		vals[i] = dt.Values[i*dt.cols+col]
	}
	return vals
}

// SetRowLabels sets the row labels starting at the first row.
// Extra labels beyond the number of rows are ignored.
func (dt *Table) SetRowLabels(labels ...string) {
	copy(dt.RowLabels, labels)
}

// SetColumnLabels sets the column labels starting at the first column.
// Extra labels beyond the number of columns are ignored.
func (dt *Table) SetColumnLabels(labels ...string) {
	copy(dt.ColumnLabels, labels)
}

// SetSequentialRowLabels labels rows st up to (but not including) ed
// as prefix followed by a number, counting up from first.
// For example (0, 3, "dv", 1) gives dv1, dv2, dv3.
func (dt *Table) SetSequentialRowLabels(st, ed int, prefix string, first int) {
	sequentialLabels(dt.RowLabels, st, ed, prefix, first)
}

// SetSequentialColumnLabels labels columns st up to (but not including) ed
// as prefix followed by a number, counting up from first.
func (dt *Table) SetSequentialColumnLabels(st, ed int, prefix string, first int) {
	sequentialLabels(dt.ColumnLabels, st, ed, prefix, first)
}

func sequentialLabels(labels []string, st, ed int, prefix string, first int) {
	ed = min(ed, len(labels))
	for i := max(st, 0); i < ed; i++ {
		labels[i] = prefix + strconv.Itoa(first+i-st)
	}
}

// AllDefined returns true if every cell holds a finite number,
// i.e., no NaN or infinite values.
func (dt *Table) AllDefined() bool {
	for _, v := range dt.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Dense returns a [mat.Dense] view that shares the table values,
// for use with gonum linear algebra. Changes made through the view
// change the table. The table must have at least one row and column.
func (dt *Table) Dense() *mat.Dense {
	return mat.NewDense(dt.rows, dt.cols, dt.Values)
}

// Clone returns a deep copy of the table.
func (dt *Table) Clone() *Table {
	cp := &Table{rows: dt.rows, cols: dt.cols}
	cp.Values = append([]float64(nil), dt.Values...)
	cp.RowLabels = append([]string(nil), dt.RowLabels...)
	cp.ColumnLabels = append([]string(nil), dt.ColumnLabels...)
	cp.Meta.Copy(dt.Meta)
	return cp
}

// Transpose returns a new table with rows and columns swapped,
// including the labels.
func (dt *Table) Transpose() *Table {
	tr := New(dt.cols, dt.rows)
	for i := range dt.rows {
		for j := range dt.cols {
			tr.Values[j*dt.rows+i] = dt.Values[i*dt.cols+j]
		}
	}
	copy(tr.RowLabels, dt.ColumnLabels)
	copy(tr.ColumnLabels, dt.RowLabels)
	tr.Meta.Copy(dt.Meta)
	return tr
}

// String returns a tab-separated rendition of the table with labels,
// as written by [Table.WriteCSV].
func (dt *Table) String() string {
	var b strings.Builder
	errors.Log(dt.WriteCSV(&b, Tab))
	return b.String()
}
