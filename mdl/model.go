// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements the database of reservoir-flow models used to
// compute theoretical pressure-transient curves
package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for pressure-transient models. Run
// computes the pressure difference Δp and the logarithmic derivative
// t·dΔp/dt on the given time grid [h]. highPrec selects the accuracy
// of the numerical Laplace inversion; fitting runs use the fast
// low-precision mode.
type Model interface {
	Init(prms dbf.Params) error          // initialises model with given parameters
	GetPrms() dbf.Params                 // gets default parameters with bounds
	Run(t []float64, highPrec bool) (dp, dd []float64) // computes curves
}

// New returns a new model from the database
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in database", name)
	}
	return allocator(), nil
}

// Available returns the names of all registered models
func Available() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	return
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}
