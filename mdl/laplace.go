// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import "math"

// Stehfest term counts and logarithmic-derivative steps for the two
// precision modes. The low-precision mode is used during fitting where
// the evaluator is called thousands of times per iteration.
const (
	nstehLow  = 6
	nstehHigh = 12
	dlogLow   = 0.05
	dlogHigh  = 0.02
)

// LapInvert computes f(t) from the Laplace transform F(s) using the
// Stehfest algorithm with n terms (n must be even)
func LapInvert(F func(s float64) float64, t float64, n int) (res float64) {
	if t <= 0 {
		return
	}
	V := stehfestCoefs(n)
	a := math.Ln2 / t
	for k := 1; k <= n; k++ {
		res += V[k-1] * F(float64(k)*a)
	}
	return res * a
}

// stehfestCoefs computes the Stehfest weights V_k for even n
func stehfestCoefs(n int) (V []float64) {
	V = make([]float64, n)
	nh := n / 2
	for k := 1; k <= n; k++ {
		var sum float64
		jmin := (k + 1) / 2
		jmax := k
		if jmax > nh {
			jmax = nh
		}
		for j := jmin; j <= jmax; j++ {
			sum += math.Pow(float64(j), float64(nh)) * fact(2*j) /
				(fact(nh-j) * fact(j) * fact(j-1) * fact(k-j) * fact(2*j-k))
		}
		sign := 1.0
		if (nh+k)%2 != 0 {
			sign = -1.0
		}
		V[k-1] = sign * sum
	}
	return
}

// fact returns n! as a float
func fact(n int) (res float64) {
	res = 1
	for i := 2; i <= n; i++ {
		res *= float64(i)
	}
	return
}

// lapCurve evaluates the dimensional pressure difference and its
// logarithmic derivative on grid t [h], given a dimensionless Laplace
// kernel pw(s), the dimensionless-time coefficient tdc [1/h] and the
// pressure coefficient pc [MPa]
func lapCurve(pw func(s float64) float64, tdc, pc float64, t []float64, highPrec bool) (dp, dd []float64) {
	n, h := nstehLow, dlogLow
	if highPrec {
		n, h = nstehHigh, dlogHigh
	}
	dp = make([]float64, len(t))
	dd = make([]float64, len(t))
	for i, ti := range t {
		td := tdc * ti
		if td <= 0 {
			continue
		}
		dp[i] = pc * LapInvert(pw, td, n)
		pp := LapInvert(pw, td*math.Exp(h), n)
		pm := LapInvert(pw, td*math.Exp(-h), n)
		dd[i] = pc * (pp - pm) / (2.0 * h)
	}
	return
}
