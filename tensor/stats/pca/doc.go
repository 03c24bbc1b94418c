// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package pca performs principal components analysis on table.Table data:
fitting a [PCA] model from the rows (or columns) of a data table,
projecting data onto the principal components as raw scores or z-scores,
reconstructing data from scores, and the derived queries on the
fraction of variance explained and the equality of eigenvalues
(sphericity test).

Fitting and the table-producing operations fail fast with an error that
wraps one of the [eigen] error kinds. The queries (FractionVariance and
EqualityOfEigenvalues) never fail: they return [undef.Float] values that
are undefined for invalid ranges or degenerate intermediate results, so
that many ranges can be scanned without error handling.
*/
package pca
