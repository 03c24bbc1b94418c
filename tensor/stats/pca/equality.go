// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pca

import (
	"math"

	"cogentcore.org/multivar/base/undef"
	"cogentcore.org/multivar/tensor/matrix"
	"gonum.org/v1/gonum/stat/distuv"
)

// EqualityTest is the result of [PCA.EqualityOfEigenvalues].
// All fields are undefined when the test cannot be performed.
type EqualityTest struct {

	// Probability is the upper tail probability of ChiSquare under the
	// hypothesis that the tested eigenvalues are equal.
	Probability undef.Float

	// ChiSquare is the likelihood ratio test statistic.
	ChiSquare undef.Float

	// DF is the degrees of freedom of ChiSquare.
	DF undef.Float
}

// EqualityOfEigenvalues tests whether the eigenvalues of components
// from..to (1-based, inclusive, from < to) are equal, i.e., whether
// the variance is spherical in the subspace of those components.
// This is the classic test for how many components to retain: if the
// trailing eigenvalues are equal, their components only describe noise.
// Passing 0, 0 tests the last component alone, which always gives
// a chi-square of 0 with 0 degrees of freedom and a probability of 1.
//
// The test stops at the first non-positive eigenvalue in the range,
// testing only the r eigenvalues before it. With n the number of
// observations minus 1, the statistic is n (r ln(mean) - Σ ln(value)),
// with r(r+1)/2 - 1 degrees of freedom. If conservative is true, n is
// reduced by from + (r(2r+1) + 2) / 6r (Bartlett's correction), which
// gives a better chi-square approximation.
func (pc *PCA) EqualityOfEigenvalues(from, to int, conservative bool) EqualityTest {
	var res EqualityTest
	nc := pc.NumComponents()
	if from == 0 && to == 0 {
		from, to = nc, nc
	} else if from >= to {
		return res
	}
	if from < 1 || to > nc || from > to {
		return res
	}
	var sum, sumln matrix.Accum
	i := from
	for ; i <= to; i++ {
		v := pc.Values[i-1]
		if v <= 0 {
			break
		}
		sum.Add(v)
		sumln.Add(math.Log(v))
	}
	s := sum.Value()
	if s == 0 {
		return res
	}
	r := i - from
	fr := float64(r)
	n := float64(pc.numObservations - 1)
	if conservative {
		n -= float64(from) + float64(r*(2*r+1)+2)/(6*fr)
	}
	df := r*(r+1)/2 - 1
	chisq := n * (fr*math.Log(s/fr) - sumln.Value())
	prob := 1.0
	if df > 0 && chisq > 0 {
		prob = distuv.ChiSquared{K: float64(df)}.Survival(chisq)
	}
	res.DF = undef.Of(float64(df))
	res.ChiSquare = undef.Of(chisq)
	res.Probability = undef.Of(prob)
	return res
}
