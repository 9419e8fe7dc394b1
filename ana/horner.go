// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical companions to the fitting core
package ana

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// HornerResult holds the outcome of a Horner-plot regression. The
// intercept at x=0 (infinite shut-in) is the extrapolated initial
// reservoir pressure.
type HornerResult struct {
	Slope     float64 // slope of p vs log10((tp+Δt)/Δt)
	Intercept float64 // extrapolated initial pressure [MPa]
	R2        float64 // coefficient of determination
	Nfit      int     // number of tail points regressed
}

// Horner returns the extrapolated initial pressure from buildup
// observations (shut-in time t [h], raw pressure p [MPa]) after a
// producing time tp [h]. Returns 0 when the data does not support the
// regression.
func Horner(t, p []float64, tp float64) float64 {
	return HornerFit(t, p, tp).Intercept
}

// HornerFit performs the full Horner-plot regression: it keeps samples
// with t > 1e-5 and a positive Horner ratio, requires at least five of
// them, and regresses the last max(⌊0.3·N⌋, 3) points, i.e. the
// radial-flow tail.
func HornerFit(t, p []float64, tp float64) (res HornerResult) {
	if tp <= 0 {
		return
	}
	var x, y []float64
	n := len(t)
	if len(p) < n {
		n = len(p)
	}
	for i := 0; i < n; i++ {
		if t[i] <= 1e-5 {
			continue
		}
		ratio := (tp + t[i]) / t[i]
		if ratio <= 0 {
			continue
		}
		x = append(x, math.Log10(ratio))
		y = append(y, p[i])
	}
	if len(x) < 5 {
		return
	}
	nfit := int(0.3 * float64(len(x)))
	if nfit < 3 {
		nfit = 3
	}
	x = x[len(x)-nfit:]
	y = y[len(y)-nfit:]

	// clustered shut-in times give a singular normal system
	var sx, sxx float64
	for _, xi := range x {
		sx += xi
		sxx += xi * xi
	}
	if math.Abs(float64(nfit)*sxx-sx*sx) < 1e-9 {
		return
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	res.Intercept = alpha
	res.Slope = beta
	res.R2 = stat.RSquared(x, y, nil, alpha, beta)
	res.Nfit = nfit
	return
}
