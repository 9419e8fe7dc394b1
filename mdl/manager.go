// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"
	"sync"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// default theoretical-curve grid: 120 log-spaced points over the usual
// well-test window
const (
	gridLogMin = -3.0
	gridLogMax = 3.0
	gridNpts   = 120
)

// Manager evaluates theoretical curves from the model database. It is
// the evaluator handed to the fitting core; Curve is safe for
// concurrent use since every call instantiates its own model.
type Manager struct {
	mu       sync.RWMutex
	highPrec bool
}

// NewManager returns a new Manager in high-precision mode
func NewManager() *Manager {
	return &Manager{highPrec: true}
}

// SetHighPrecision toggles the precision of curve evaluations
func (o *Manager) SetHighPrecision(highPrec bool) {
	o.mu.Lock()
	o.highPrec = highPrec
	o.mu.Unlock()
}

// HighPrecision returns the current precision mode
func (o *Manager) HighPrecision() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.highPrec
}

// Curve computes the theoretical curves of the named model for the
// given parameter values. A nil tgrid selects the default log grid.
func (o *Manager) Curve(model string, prms map[string]float64, tgrid []float64) (t, dp, dd []float64, err error) {
	m, err := New(model)
	if err != nil {
		return
	}
	err = m.Init(MapToPrms(prms))
	if err != nil {
		return
	}
	t = tgrid
	if t == nil {
		t = DefaultGrid()
	}
	dp, dd = m.Run(t, o.HighPrecision())
	return
}

// MapToPrms converts a name => value map into a parameter set
func MapToPrms(m map[string]float64) (prms dbf.Params) {
	prms = make(dbf.Params, 0, len(m))
	for n, v := range m {
		prms = append(prms, &dbf.P{N: n, V: v})
	}
	return
}

// DefaultGrid returns the default log-spaced time grid [h]
func DefaultGrid() (t []float64) {
	lt := utl.LinSpace(gridLogMin, gridLogMax, gridNpts)
	t = make([]float64, len(lt))
	for i, l := range lt {
		t[i] = math.Pow(10, l)
	}
	return
}
