// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"time"

	"github.com/cpmech/gosl/chk"
)

func verbose() {
	chk.Verbose = true
}

// testEval is a synthetic evaluator driven by a plain function. The
// function must be pure: Jacobian workers call Curve concurrently.
type testEval struct {
	fcn      func(prms map[string]float64, t []float64) (dp, dd []float64)
	delay    time.Duration
	highPrec bool
}

func (o *testEval) Curve(model string, prms map[string]float64, tgrid []float64) (t, dp, dd []float64, err error) {
	if o.delay > 0 {
		time.Sleep(o.delay)
	}
	if tgrid == nil {
		tgrid = []float64{1, 10}
	}
	dp, dd = o.fcn(prms, tgrid)
	return tgrid, dp, dd, nil
}

func (o *testEval) SetHighPrecision(highPrec bool) {
	o.highPrec = highPrec
}

// constEval returns an evaluator computing Δp = prms[name] and zero
// derivative
func constEval(name string) *testEval {
	return &testEval{fcn: func(prms map[string]float64, t []float64) (dp, dd []float64) {
		dp = make([]float64, len(t))
		dd = make([]float64, len(t))
		for i := range t {
			dp[i] = prms[name]
		}
		return
	}}
}
