// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements collection of fitting-session results for
// host-side post-processing
package out

import (
	"sync"

	"github.com/petrosolve/gowt/fit"
)

// Snapshot holds one iteration result as emitted by the fitting core
type Snapshot struct {
	It   int                // iteration counter (0 is the baseline)
	Mse  float64            // mean squared residual
	Prms map[string]float64 // parameter values
	T    []float64          // theoretical curve: time
	Dp   []float64          // theoretical curve: pressure difference
	Dd   []float64          // theoretical curve: log derivative
}

// Recorder collects the snapshot stream of one fitting session. Bind
// installs it on a core; Wait blocks until the session finishes. A
// recorder serves a single session.
type Recorder struct {
	mu    sync.Mutex
	snaps []Snapshot
	done  chan struct{}
}

// NewRecorder returns a new Recorder
func NewRecorder() *Recorder {
	return &Recorder{done: make(chan struct{})}
}

// Bind installs the recorder callbacks on the given core
func (o *Recorder) Bind(c *fit.Core) {
	c.IterationUpdated = func(mse float64, prms map[string]float64, t, dp, dd []float64) {
		o.mu.Lock()
		o.snaps = append(o.snaps, Snapshot{It: len(o.snaps), Mse: mse, Prms: prms, T: t, Dp: dp, Dd: dd})
		o.mu.Unlock()
	}
	c.Finished = func() {
		close(o.done)
	}
}

// Wait blocks until the bound session fires Finished
func (o *Recorder) Wait() {
	<-o.done
}

// Len returns the number of collected snapshots
func (o *Recorder) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.snaps)
}

// Snapshot returns the i-th collected snapshot
func (o *Recorder) Snapshot(i int) Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snaps[i]
}

// Best returns the snapshot with the smallest mean squared residual
func (o *Recorder) Best() (best Snapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, s := range o.snaps {
		if i == 0 || s.Mse < best.Mse {
			best = s
		}
	}
	return
}
