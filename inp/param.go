// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data used by the fitting core:
// model parameters, sampling plans and observed data sets
package inp

import (
	"github.com/cpmech/gosl/fun/dbf"
)

// Param holds a single model parameter as handled by the fitting core.
// Derived parameters (e.g. "LfD") carry Fit==false and are recomputed
// by the solver from their source parameters.
type Param struct {
	N    string  `json:"n"`    // short name; e.g. "kf", "S", "omega1"
	V    float64 `json:"v"`    // current value
	Min  float64 `json:"min"`  // lower bound
	Max  float64 `json:"max"`  // upper bound
	Step float64 `json:"step"` // increment used by host UIs; ignored by the solver
	Fit  bool    `json:"fit"`  // vary this parameter during optimisation
}

// Params holds an ordered set of parameters
type Params []*Param

// ToMap returns the name => value map passed to model evaluators
func (o Params) ToMap() (m map[string]float64) {
	m = make(map[string]float64)
	for _, p := range o {
		m[p.N] = p.V
	}
	return
}

// FitIndices returns the indices of free parameters; i.e. those with
// Fit==true, excluding the derived "LfD" which is never free
func (o Params) FitIndices() (idx []int) {
	for i, p := range o {
		if p.Fit && p.N != "LfD" {
			idx = append(idx, i)
		}
	}
	return
}

// Find returns the parameter named n, or nil
func (o Params) Find(n string) *Param {
	for _, p := range o {
		if p.N == n {
			return p
		}
	}
	return nil
}

// FromModel builds a parameter set from a model's default parameters.
// Bounds are copied from the database entries; all parameters start
// with Fit==false.
func FromModel(prms dbf.Params) (o Params) {
	o = make(Params, len(prms))
	for i, p := range prms {
		o[i] = &Param{N: p.N, V: p.V, Min: p.Min, Max: p.Max}
	}
	return
}
