// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/multivar/base/errors"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space)
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Space is the space rune delimiter, for SSV space separated value
	Space

	// Detect is used during reading a file -- reads the first line and detects tabs or commas
	Detect
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

// OpenCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// See [ReadCSV] for the expected layout.
func OpenCSV(filename string, delim Delims) (*Table, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	return ReadCSV(bufio.NewReader(fp), delim)
}

// OpenFS is the version of [OpenCSV] that uses an [fs.FS] filesystem.
func OpenFS(fsys fs.FS, filename string, delim Delims) (*Table, error) {
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	return ReadCSV(bufio.NewReader(fp), delim)
}

// ReadCSV reads a table from comma-separated-values (CSV) data
// (where comma = any delimiter, specified in the delim arg),
// using the Go standard encoding/csv reader.
// The first record holds the column labels. If its first field is empty,
// the first field of every following record is the row label.
// Empty cells and NaN / Inf strings are read as NaN (missing).
func ReadCSV(r io.Reader, delim Delims) (*Table, error) {
	br := bufio.NewReader(r)
	if delim == Detect {
		delim = detectDelim(br)
	}
	cr := csv.NewReader(br)
	cr.Comma = delim.Rune()
	rec, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return nil, fmt.Errorf("table.ReadCSV: no header record")
	}
	hdrs := rec[0]
	labeled := len(hdrs) > 0 && strings.TrimSpace(hdrs[0]) == ""
	st := 0
	if labeled {
		st = 1
	}
	rows := len(rec) - 1
	cols := len(hdrs) - st
	dt := New(rows, cols)
	for j := range cols {
		dt.ColumnLabels[j] = strings.TrimSpace(hdrs[st+j])
	}
	nan := math.NaN()
	for i := range rows {
		r := rec[i+1]
		if labeled {
			dt.RowLabels[i] = strings.TrimSpace(r[0])
		}
		for j := range cols {
			str := strings.TrimSpace(r[st+j])
			switch str {
			case "", "NaN", "-NaN", "Inf", "-Inf", "--undefined--":
				dt.SetFloat(nan, i, j)
				continue
			}
			v, err := strconv.ParseFloat(str, 64)
			if err != nil {
				return nil, fmt.Errorf("table.ReadCSV: row %d column %d: %w", i+1, j+1, err)
			}
			dt.SetFloat(v, i, j)
		}
	}
	return dt, nil
}

func detectDelim(br *bufio.Reader) Delims {
	line, _ := br.Peek(br.Size())
	if i := strings.IndexByte(string(line), '\n'); i >= 0 {
		line = line[:i]
	}
	switch {
	case strings.ContainsRune(string(line), '\t'):
		return Tab
	case strings.ContainsRune(string(line), ','):
		return Comma
	}
	return Space
}

// WriteCSV writes the table as comma-separated-values (CSV) data,
// with a header record of column labels preceded by an empty field,
// and each record starting with its row label, so that [ReadCSV]
// reads back the same table. The number of significant digits is
// taken from the Precision metadata.
func (dt *Table) WriteCSV(w io.Writer, delim Delims) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	prec := dt.Meta.Precision()
	rec := make([]string, dt.cols+1)
	copy(rec[1:], dt.ColumnLabels)
	if err := cw.Write(rec); err != nil {
		return err
	}
	for i := range dt.rows {
		rec[0] = dt.RowLabels[i]
		for j, v := range dt.Row(i) {
			rec[j+1] = strconv.FormatFloat(v, 'g', prec, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
