// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/petrosolve/gowt/inp"
)

func Test_jacobian01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jacobian01. log-scale columns, parallel workers")

	// Δp = a·t and derivative = b·t: the log residuals are linear in
	// log10(a) and log10(b), so central differences are exact
	ev := &testEval{fcn: func(prms map[string]float64, t []float64) (dp, dd []float64) {
		dp = make([]float64, len(t))
		dd = make([]float64, len(t))
		for i := range t {
			dp[i] = prms["a"] * t[i]
			dd[i] = prms["b"] * t[i]
		}
		return
	}}

	o := NewCore()
	o.SetEvaluator(ev)
	o.Nwkrs = 4

	t := []float64{1, 2, 4, 8}
	obsP := []float64{2, 4, 8, 16}
	obsD := []float64{1, 2, 4, 8}
	w := 0.4
	params := inp.Params{
		{N: "a", V: 2, Min: 1e-6, Max: 1e6, Fit: true},
		{N: "b", V: 1, Min: 1e-6, Max: 1e6, Fit: true},
	}
	prms := params.ToMap()

	J := o.jacobian(prms, 8, params.FitIndices(), "lin", params, w, t, obsP, obsD)
	ln10 := math.Log(10)
	for i := 0; i < 4; i++ {
		chk.Float64(tst, "Jp_a", 1e-8, J[i][0], -w*ln10)
		chk.Float64(tst, "Jp_b", 1e-8, J[i][1], 0)
		chk.Float64(tst, "Jd_a", 1e-8, J[i+4][0], 0)
		chk.Float64(tst, "Jd_b", 1e-8, J[i+4][1], -(1-w)*ln10)
	}
}

func Test_jacobian02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jacobian02. linear-scale column for the skin")

	// Δp = exp(S)·t gives residuals linear in S itself
	ev := &testEval{fcn: func(prms map[string]float64, t []float64) (dp, dd []float64) {
		dp = make([]float64, len(t))
		dd = make([]float64, len(t))
		for i := range t {
			dp[i] = math.Exp(prms["S"]) * t[i]
		}
		return
	}}

	o := NewCore()
	o.SetEvaluator(ev)
	o.Nwkrs = 1

	t := []float64{1, 2, 3}
	obsP := []float64{1, 2, 3}
	params := inp.Params{{N: "S", V: 2, Min: -10, Max: 50, Fit: true}}
	prms := params.ToMap()

	J := o.jacobian(prms, 3, params.FitIndices(), "skin", params, 1.0, t, obsP, nil)
	for i := 0; i < 3; i++ {
		chk.Float64(tst, "J_S", 1e-8, J[i][0], -1.0)
	}

	// Δp = (2S+3)·t gives the analytic column −2/(2S+3)
	ev2 := &testEval{fcn: func(prms map[string]float64, t []float64) (dp, dd []float64) {
		dp = make([]float64, len(t))
		dd = make([]float64, len(t))
		for i := range t {
			dp[i] = (2.0*prms["S"] + 3.0) * t[i]
		}
		return
	}}
	o.SetEvaluator(ev2)
	J = o.jacobian(prms, 3, params.FitIndices(), "skin", params, 1.0, t, obsP, nil)
	for i := 0; i < 3; i++ {
		chk.Float64(tst, "J_S nonlinear", 1e-7, J[i][0], -2.0/7.0)
	}
}

func Test_jacobian03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jacobian03. LfD refreshed when L is perturbed")

	// Δp = 10·LfD·t with LfD = Lf/L: the column with respect to
	// log10(L) must see the refreshed ratio
	ev := &testEval{fcn: func(prms map[string]float64, t []float64) (dp, dd []float64) {
		dp = make([]float64, len(t))
		dd = make([]float64, len(t))
		for i := range t {
			dp[i] = 10 * prms["LfD"] * t[i]
		}
		return
	}}

	o := NewCore()
	o.SetEvaluator(ev)

	t := []float64{1, 5}
	obsP := []float64{6, 30}
	params := inp.Params{
		{N: "L", V: 100, Min: 1, Max: 1e4, Fit: true},
		{N: "Lf", V: 50, Min: 1, Max: 1e4},
		{N: "LfD", V: 0.5, Min: 0, Max: 1},
	}
	prms := params.ToMap()

	J := o.jacobian(prms, 2, params.FitIndices(), "frac", params, 1.0, t, obsP, nil)
	ln10 := math.Log(10)
	chk.Float64(tst, "J_L[0]", 1e-8, J[0][0], ln10)
	chk.Float64(tst, "J_L[1]", 1e-8, J[1][0], ln10)
}
