// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
)

// Composite implements the two-zone radial composite model: an inner
// zone of permeability k out to radius R, and an outer infinite zone
// with mobility ratio M = (k/μ)_inner/(k/μ)_outer. The diffusivity
// ratio is taken equal to M (same φ·ct in both zones).
type Composite struct {
	reservoir
	k float64 // inner-zone permeability [mD]
	M float64 // mobility ratio inner/outer
	R float64 // inner-zone radius [m]
}

// add model to database
func init() {
	allocators["composite"] = func() Model { return new(Composite) }
}

// Init initialises model
func (o *Composite) Init(prms dbf.Params) error {
	o.defaults()
	o.k, o.M, o.R = 10.0, 2.0, 50.0
	for _, p := range prms {
		if o.set(p) {
			continue
		}
		switch p.N {
		case "k":
			o.k = p.V
		case "M":
			o.M = p.V
		case "R":
			o.R = p.V
		}
	}
	return nil
}

// GetPrms gets default parameters
func (o Composite) GetPrms() dbf.Params {
	o.defaults()
	return append(dbf.Params{
		&dbf.P{N: "k", V: 10.0, Min: 1e-3, Max: 1e4},
		&dbf.P{N: "M", V: 2.0, Min: 1e-2, Max: 1e2},
		&dbf.P{N: "R", V: 50.0, Min: 1, Max: 1e4},
	}, o.prms()...)
}

// Run computes Δp and t·dΔp/dt on grid t
func (o *Composite) Run(t []float64, highPrec bool) (dp, dd []float64) {
	cd, skin := o.cd(), o.S
	RD := o.R / o.rw
	pw := func(s float64) float64 {
		psf := o.pwdInterface(s, RD) + skin/s
		den := 1.0 + cd*s*s*psf
		if den == 0 || math.IsNaN(den) {
			return 0
		}
		return psf / den
	}
	return lapCurve(pw, o.tdCoef(o.k), o.pCoef(o.k), t, highPrec)
}

// pwdInterface is the Laplace-domain sandface pressure of the two-zone
// system without skin and storage. The inner solution A·I0(a·r)+B·K0(a·r)
// is matched to the outer C·K0(b·r) by pressure and flux continuity at
// rD=R, with the constant-rate condition dp/dr = −1/s at rD=1.
func (o *Composite) pwdInterface(s, RD float64) float64 {
	a := math.Sqrt(s)
	b := math.Sqrt(s * o.M)
	k0b := fun.ModBesselK0(b * RD)
	if k0b == 0 {
		// outer zone unreachable at this s; behave as homogeneous
		return pwdRadial(s, a, 0, 0)
	}
	β := b / o.M * fun.ModBesselK1(b*RD) / k0b
	numγ := a*fun.ModBesselK1(a*RD) - β*fun.ModBesselK0(a*RD)
	denγ := a*fun.ModBesselI1(a*RD) + β*fun.ModBesselI0(a*RD)
	γ := 0.0
	if !math.IsInf(denγ, 0) && denγ != 0 {
		γ = numγ / denγ
	}
	den := s * a * (fun.ModBesselK1(a) - γ*fun.ModBesselI1(a))
	if den == 0 || math.IsNaN(den) {
		return 0
	}
	B := 1.0 / den
	return B * (γ*fun.ModBesselI0(a) + fun.ModBesselK0(a))
}
