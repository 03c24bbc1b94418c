// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eigen

import "cogentcore.org/multivar/base/errors"

// The error kinds reported by the fail-fast operations of the
// eigen, pca and cca packages. Returned errors wrap one of these
// with a description of the violated precondition; test for them
// with [errors.Is].
var (
	// ErrInvalidInput is returned for undefined (NaN or infinite) input
	// values, or input that does not fit the model.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateInput is returned for input without any variance,
	// such as an all-zero data table, or a zero eigenvalue used as a divisor.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrDimensionMismatch is returned when the shape of a table
	// does not agree with the dimension of a model.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidRange is returned for a component or canonical variate
	// range outside of the valid bounds.
	ErrInvalidRange = errors.New("invalid range")
)
