// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fit implements the nonlinear fitting core: log resampling of
// observations, log-space residuals, a parallel central-difference
// Jacobian and a Levenberg-Marquardt driver with bound clamping and
// physical-constraint projection
package fit

import (
	"sync/atomic"

	"github.com/petrosolve/gowt/inp"
)

// Evaluator computes theoretical curves for a named model. A nil tgrid
// selects the evaluator's own default grid. Implementations must be
// safe for concurrent calls: Jacobian columns are computed by parallel
// workers.
type Evaluator interface {
	Curve(model string, prms map[string]float64, tgrid []float64) (t, dp, dd []float64, err error)
	SetHighPrecision(highPrec bool)
}

// Core drives fitting sessions. At most one session runs at a time;
// StartFit while a session is running is a no-op. Callbacks are
// invoked from the session goroutine and must be serialised by the
// host.
type Core struct {

	// solver settings
	Lam0    float64 // initial damping factor
	LamMax  float64 // damping factor above which a failed iteration terminates the session
	MaxIt   int     // maximum number of outer iterations
	NtryMax int     // damping adjustments per iteration
	MseTol  float64 // convergence gate on the mean squared residual
	Nwkrs   int     // Jacobian workers; 0 => number of CPUs

	// callbacks
	IterationUpdated func(mse float64, prms map[string]float64, t, dp, dd []float64)
	Progress         func(pct int)
	Finished         func()

	// input
	ev        Evaluator
	obsT      []float64
	obsP      []float64
	obsD      []float64
	intervals []inp.SamplingInterval
	custom    bool

	// control
	busy int32
	stop int32
}

// NewCore returns a fitting core with the default solver settings
func NewCore() (o *Core) {
	o = new(Core)
	o.Lam0 = 0.01
	o.LamMax = 1e10
	o.MaxIt = 50
	o.NtryMax = 5
	o.MseTol = 3e-3
	return
}

// SetEvaluator binds the model evaluator
func (o *Core) SetEvaluator(ev Evaluator) {
	o.ev = ev
}

// SetObservedData stores the observation series (time, pressure
// difference, logarithmic derivative). The slices are read-only while
// a session runs.
func (o *Core) SetObservedData(t, dp, dd []float64) {
	o.obsT, o.obsP, o.obsD = t, dp, dd
}

// SetSampling configures the resampler. With enabled==false the
// default 200-point log plan applies; enabled with an empty interval
// list passes the observations through unchanged.
func (o *Core) SetSampling(intervals []inp.SamplingInterval, enabled bool) {
	o.intervals, o.custom = intervals, enabled
}

// StartFit launches a fitting session on a background goroutine.
// Returns false if a session is already running.
func (o *Core) StartFit(model string, params inp.Params, weight float64) bool {
	if !atomic.CompareAndSwapInt32(&o.busy, 0, 1) {
		return false
	}
	atomic.StoreInt32(&o.stop, 0)
	go func() {
		defer atomic.StoreInt32(&o.busy, 0)
		o.run(model, params, weight)
	}()
	return true
}

// Fit runs a fitting session synchronously. Returns false if a
// session is already running.
func (o *Core) Fit(model string, params inp.Params, weight float64) bool {
	if !atomic.CompareAndSwapInt32(&o.busy, 0, 1) {
		return false
	}
	defer atomic.StoreInt32(&o.busy, 0)
	atomic.StoreInt32(&o.stop, 0)
	o.run(model, params, weight)
	return true
}

// StopFit requests cooperative cancellation: the session finishes the
// current iteration, emits a final snapshot and fires Finished
func (o *Core) StopFit() {
	atomic.StoreInt32(&o.stop, 1)
}

// Running tells whether a session is in flight
func (o *Core) Running() bool {
	return atomic.LoadInt32(&o.busy) != 0
}

func (o *Core) stopped() bool {
	return atomic.LoadInt32(&o.stop) != 0
}

func (o *Core) emitProgress(pct int) {
	if o.Progress != nil {
		o.Progress(pct)
	}
}

func (o *Core) emitFinished() {
	if o.Finished != nil {
		o.Finished()
	}
}

// snapshot recomputes the display curve on the evaluator's default
// grid and reports it together with a copy of the parameter map
func (o *Core) snapshot(model string, prms map[string]float64, sse float64, nres int) {
	if o.IterationUpdated == nil {
		return
	}
	tc, pc, dc, err := o.ev.Curve(model, prms, nil)
	if err != nil {
		tc, pc, dc = nil, nil, nil
	}
	mse := 0.0
	if nres > 0 {
		mse = sse / float64(nres)
	}
	o.IterationUpdated(mse, copyMap(prms), tc, pc, dc)
}
