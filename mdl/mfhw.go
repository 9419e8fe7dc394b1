// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// Mfhw implements a multi-fractured horizontal well in the
// pseudo-radial flow approximation: radial flow towards the well with
// a geometric pseudo-skin −ln(nf·LfD) accounting for the fracture
// system, where LfD = Lf/L is the dimensionless fracture half-length.
type Mfhw struct {
	reservoir
	kf  float64 // permeability of the stimulated volume [mD]
	nf  float64 // number of fractures
	L   float64 // horizontal well length [m]
	Lf  float64 // fracture half-length [m]
	LfD float64 // derived: Lf/L
}

// add model to database
func init() {
	allocators["mfhw"] = func() Model { return new(Mfhw) }
}

// Init initialises model
func (o *Mfhw) Init(prms dbf.Params) error {
	o.defaults()
	o.kf, o.nf = 10.0, 5.0
	o.L, o.Lf = 1000.0, 100.0
	o.LfD = 0
	for _, p := range prms {
		if o.set(p) {
			continue
		}
		switch p.N {
		case "kf":
			o.kf = p.V
		case "nf":
			o.nf = p.V
		case "L":
			o.L = p.V
		case "Lf":
			o.Lf = p.V
		case "LfD":
			o.LfD = p.V
		}
	}
	if o.LfD == 0 && o.L > 1e-9 {
		o.LfD = o.Lf / o.L
	}
	return nil
}

// GetPrms gets default parameters
func (o Mfhw) GetPrms() dbf.Params {
	o.defaults()
	return append(dbf.Params{
		&dbf.P{N: "kf", V: 10.0, Min: 1e-3, Max: 1e4},
		&dbf.P{N: "nf", V: 5.0, Min: 1, Max: 100},
		&dbf.P{N: "L", V: 1000.0, Min: 10, Max: 1e4},
		&dbf.P{N: "Lf", V: 100.0, Min: 1, Max: 1e3},
		&dbf.P{N: "LfD", V: 0.1, Min: 1e-4, Max: 1.0},
	}, o.prms()...)
}

// Run computes Δp and t·dΔp/dt on grid t
func (o *Mfhw) Run(t []float64, highPrec bool) (dp, dd []float64) {
	cd := o.cd()
	geo := o.nf * o.LfD
	if geo < 1e-6 {
		geo = 1e-6
	}
	skin := o.S - math.Log(geo)
	pw := func(s float64) float64 {
		return pwdRadial(s, math.Sqrt(s), cd, skin)
	}
	return lapCurve(pw, o.tdCoef(o.kf), o.pCoef(o.kf), t, highPrec)
}
