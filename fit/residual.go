// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"
)

// positivity guard: non-positive observed or computed values
// contribute zero to the residual vector
const posTol = 1e-10

// LogResiduals builds the residual vector as two concatenated blocks:
// log-ratios of the pressure-difference series scaled by weight, then
// log-ratios of the derivative series scaled by 1−weight. Series of
// unequal length are truncated to the common prefix.
func LogResiduals(obsP, obsD, pCal, dCal []float64, weight float64) (r []float64) {
	wp := weight
	wd := 1.0 - weight
	n := imin(len(obsP), len(pCal))
	for i := 0; i < n; i++ {
		if obsP[i] > posTol && pCal[i] > posTol {
			r = append(r, (math.Log(obsP[i])-math.Log(pCal[i]))*wp)
		} else {
			r = append(r, 0)
		}
	}
	nd := imin(imin(len(obsD), len(dCal)), n)
	for i := 0; i < nd; i++ {
		if obsD[i] > posTol && dCal[i] > posTol {
			r = append(r, (math.Log(obsD[i])-math.Log(dCal[i]))*wd)
		} else {
			r = append(r, 0)
		}
	}
	return
}

// residuals evaluates the model on the resampled grid and builds the
// residual vector. Evaluator failures yield an empty vector; no error
// crosses the session boundary.
func (o *Core) residuals(prms map[string]float64, model string, weight float64, t, obsP, obsD []float64) []float64 {
	if o.ev == nil || len(t) == 0 {
		return nil
	}
	_, pCal, dCal, err := o.ev.Curve(model, prms, t)
	if err != nil {
		return nil
	}
	return LogResiduals(obsP, obsD, pCal, dCal, weight)
}
