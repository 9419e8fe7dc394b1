// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// Homog implements the homogeneous infinite-acting radial model with
// wellbore storage and skin
type Homog struct {
	reservoir
	k float64 // permeability [mD]
}

// add model to database
func init() {
	allocators["homog"] = func() Model { return new(Homog) }
}

// Init initialises model
func (o *Homog) Init(prms dbf.Params) error {
	o.defaults()
	o.k = 10.0
	for _, p := range prms {
		if o.set(p) {
			continue
		}
		if p.N == "k" {
			o.k = p.V
		}
	}
	return nil
}

// GetPrms gets default parameters
func (o Homog) GetPrms() dbf.Params {
	o.defaults()
	return append(dbf.Params{
		&dbf.P{N: "k", V: 10.0, Min: 1e-3, Max: 1e4},
	}, o.prms()...)
}

// Run computes Δp and t·dΔp/dt on grid t
func (o *Homog) Run(t []float64, highPrec bool) (dp, dd []float64) {
	cd, skin := o.cd(), o.S
	pw := func(s float64) float64 {
		return pwdRadial(s, math.Sqrt(s), cd, skin)
	}
	return lapCurve(pw, o.tdCoef(o.k), o.pCoef(o.k), t, highPrec)
}
