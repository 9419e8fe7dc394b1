// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func verbose() {
	chk.Verbose = true
}

func Test_horner01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("horner01. buildup extrapolation from the radial tail")

	// shut-in after tp=24h; the last three samples carry the radial
	// straight line
	tp := 24.0
	t := []float64{0.02, 0.05, 0.1, 0.3, 0.6, 1, 3, 10}
	p := []float64{18.0, 18.9, 19.5, 20.2, 20.6, 21.0, 21.3, 21.5}

	res := HornerFit(t, p, tp)
	chk.IntAssert(res.Nfit, 3)
	chk.Float64(tst, "p*", 1e-3, res.Intercept, 21.8221)
	chk.Float64(tst, "slope", 1e-3, res.Slope, -0.5779)
	if res.Intercept < 21.0 || res.Intercept > 22.5 {
		tst.Errorf("extrapolated pressure %g outside the physical window", res.Intercept)
		return
	}
	if res.R2 < 0.95 || res.R2 > 1.0 {
		tst.Errorf("unexpected regression quality R2=%g", res.R2)
		return
	}

	// Horner is the intercept shortcut
	chk.Float64(tst, "shortcut", 1e-15, Horner(t, p, tp), res.Intercept)
}

func Test_horner02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("horner02. exact straight line is recovered")

	tp := 10.0
	pini := 25.0
	slope := -2.0
	n := 20
	t := make([]float64, n)
	p := make([]float64, n)
	for i := 0; i < n; i++ {
		t[i] = math.Pow(10, -1.0+3.0*float64(i)/float64(n-1))
		p[i] = pini + slope*math.Log10((tp+t[i])/t[i])
	}

	res := HornerFit(t, p, tp)
	chk.IntAssert(res.Nfit, 6)
	chk.Float64(tst, "p*", 1e-10, res.Intercept, pini)
	chk.Float64(tst, "slope", 1e-10, res.Slope, slope)
	chk.Float64(tst, "R2", 1e-9, res.R2, 1.0)
}

func Test_horner03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("horner03. degenerate inputs yield zero")

	// no producing time
	chk.Float64(tst, "tp=0", 1e-17, Horner([]float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 5}, 0), 0)

	// too few valid samples
	chk.Float64(tst, "short", 1e-17, Horner([]float64{1, 2, 3}, []float64{1, 2, 3}, 10), 0)

	// early-time samples are filtered out
	t := []float64{1e-6, 1e-6, 1, 2, 3}
	p := []float64{9, 9, 1, 2, 3}
	chk.Float64(tst, "filtered", 1e-17, Horner(t, p, 10), 0)

	// clustered shut-in times give a singular system
	tc := []float64{2, 2, 2, 2, 2}
	pc := []float64{1, 2, 3, 4, 5}
	chk.Float64(tst, "clustered", 1e-17, Horner(tc, pc, 10), 0)
}
