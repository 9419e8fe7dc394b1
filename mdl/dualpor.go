// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// lamShape converts the matrix/fracture permeability contrast into the
// Warren-Root interporosity flow coefficient λ = lamShape·km/kf
const lamShape = 1e-4

// DualPor implements the dual-porosity (Warren-Root) radial model with
// pseudo-steady-state interporosity flow, wellbore storage and skin.
// The storativity ratio is ω = omega2/omega1; the physical constraint
// omega1 > omega2 keeps ω within (0,1).
type DualPor struct {
	reservoir
	kf     float64 // fracture permeability [mD]
	km     float64 // matrix permeability [mD]
	omega1 float64 // fracture-system storativity
	omega2 float64 // matrix-system storativity
}

// add model to database
func init() {
	allocators["dualpor"] = func() Model { return new(DualPor) }
}

// Init initialises model
func (o *DualPor) Init(prms dbf.Params) error {
	o.defaults()
	o.kf, o.km = 100.0, 1.0
	o.omega1, o.omega2 = 1.0, 0.05
	for _, p := range prms {
		if o.set(p) {
			continue
		}
		switch p.N {
		case "kf":
			o.kf = p.V
		case "km":
			o.km = p.V
		case "omega1":
			o.omega1 = p.V
		case "omega2":
			o.omega2 = p.V
		}
	}
	return nil
}

// GetPrms gets default parameters
func (o DualPor) GetPrms() dbf.Params {
	o.defaults()
	return append(dbf.Params{
		&dbf.P{N: "kf", V: 100.0, Min: 1e-3, Max: 1e4},
		&dbf.P{N: "km", V: 1.0, Min: 1e-6, Max: 1e3},
		&dbf.P{N: "omega1", V: 1.0, Min: 1e-4, Max: 10.0},
		&dbf.P{N: "omega2", V: 0.05, Min: 1e-5, Max: 1.0},
	}, o.prms()...)
}

// Run computes Δp and t·dΔp/dt on grid t
func (o *DualPor) Run(t []float64, highPrec bool) (dp, dd []float64) {
	cd, skin := o.cd(), o.S
	ω := o.omega2 / o.omega1
	if ω >= 1 {
		ω = 0.999
	}
	λ := lamShape * o.km / o.kf
	pw := func(s float64) float64 {
		f := (ω*(1.0-ω)*s + λ) / ((1.0-ω)*s + λ)
		return pwdRadial(s, math.Sqrt(s*f), cd, skin)
	}
	return lapCurve(pw, o.tdCoef(o.kf), o.pCoef(o.kf), t, highPrec)
}
