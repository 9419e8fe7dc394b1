// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gowt fits parameterized reservoir-flow models to well-test
// (pressure-transient) observations. This command demonstrates the
// fitting core on a synthetic drawdown test: it generates noisy data
// from the homogeneous model, perturbs the parameters and recovers
// them, then runs a Horner extrapolation on a synthetic buildup.
package main

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
	"github.com/petrosolve/gowt/ana"
	"github.com/petrosolve/gowt/fit"
	"github.com/petrosolve/gowt/inp"
	"github.com/petrosolve/gowt/mdl"
	"github.com/petrosolve/gowt/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	verbose := io.ArgToBool(0, true)
	seed := io.ArgToInt(1, 1234)

	// message
	if verbose {
		io.PfWhite("\nGowt -- Well-Test Pressure-Transient Fitting\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"show messages", "verbose", verbose,
			"random seed", "seed", seed,
		))
	}

	// synthesize a drawdown test from the homogeneous model
	man := mdl.NewManager()
	truth := map[string]float64{"k": 25.0, "S": 2.0, "C": 0.05}
	grid := make([]float64, 80)
	for i := range grid {
		grid[i] = math.Pow(10, -2.0+4.0*float64(i)/79.0)
	}
	t, dp, dd, err := man.Curve("homog", truth, grid)
	if err != nil {
		chk.Panic("cannot compute synthetic curves:\n%v", err)
	}
	rnd.Init(seed)
	for i := range dp {
		dp[i] *= 1.0 + rnd.Float64(-0.02, 0.02)
		dd[i] *= 1.0 + rnd.Float64(-0.02, 0.02)
	}

	// fitting parameters: start far from the truth
	m, err := mdl.New("homog")
	if err != nil {
		chk.Panic("%v", err)
	}
	params := inp.FromModel(m.GetPrms())
	params.Find("k").V = 5.0
	params.Find("k").Fit = true
	params.Find("S").V = 0.0
	params.Find("S").Fit = true

	// run fit
	core := fit.NewCore()
	core.SetEvaluator(man)
	core.SetObservedData(t, dp, dd)
	rec := out.NewRecorder()
	rec.Bind(core)
	core.Fit("homog", params, 0.5)

	// iteration table
	if verbose {
		io.Pf("\n%4s%14s%10s%10s\n", "iter", "mse", "k", "S")
		for i := 0; i < rec.Len(); i++ {
			s := rec.Snapshot(i)
			io.Pf("%4d%14.6e%10.4f%10.4f\n", s.It, s.Mse, s.Prms["k"], s.Prms["S"])
		}
		best := rec.Best()
		io.Pfgreen("\nbest: mse=%.6e  k=%.4f (true 25)  S=%.4f (true 2)\n", best.Mse, best.Prms["k"], best.Prms["S"])
	}

	// Horner extrapolation on a synthetic buildup
	tp := 24.0
	pini := 30.0
	slope := 1.2
	bu := new(inp.DataSet)
	for i := 0; i < 40; i++ {
		dt := math.Pow(10, -1.0+3.0*float64(i)/39.0)
		bu.T = append(bu.T, dt)
		bu.Praw = append(bu.Praw, pini-slope*math.Log10((tp+dt)/dt))
	}
	bu.Clean()
	hr := ana.HornerFit(bu.T, bu.Praw, tp)
	if verbose {
		io.Pf("\nHorner: p* = %.3f MPa (true %.3f)  slope = %.3f  R2 = %.4f\n", hr.Intercept, pini, hr.Slope, hr.R2)
	}
}
