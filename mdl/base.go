// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
)

// reservoir holds the rock/fluid/well properties shared by all models.
// Units: k [mD], t [h], p [MPa], q [m³/d], lengths [m], μ [mPa·s],
// ct [1/MPa], C [m³/MPa].
type reservoir struct {
	φ  float64 // porosity
	μ  float64 // fluid viscosity
	ct float64 // total compressibility
	rw float64 // wellbore radius
	h  float64 // formation thickness
	q  float64 // surface rate
	B  float64 // formation volume factor
	C  float64 // wellbore storage coefficient
	S  float64 // skin factor
}

// defaults sets typical values
func (o *reservoir) defaults() {
	o.φ = 0.1
	o.μ = 1.0
	o.ct = 1e-3
	o.rw = 0.1
	o.h = 10.0
	o.q = 50.0
	o.B = 1.2
	o.C = 0.05
	o.S = 0.0
}

// set consumes one shared parameter; returns false if p is not shared
func (o *reservoir) set(p *dbf.P) bool {
	switch p.N {
	case "phi":
		o.φ = p.V
	case "mu":
		o.μ = p.V
	case "ct":
		o.ct = p.V
	case "rw":
		o.rw = p.V
	case "h":
		o.h = p.V
	case "q":
		o.q = p.V
	case "B":
		o.B = p.V
	case "C":
		o.C = p.V
	case "S":
		o.S = p.V
	default:
		return false
	}
	return true
}

// prms returns the shared parameters with bounds
func (o reservoir) prms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "phi", V: o.φ, Min: 1e-3, Max: 0.5},
		&dbf.P{N: "mu", V: o.μ, Min: 1e-2, Max: 1e3},
		&dbf.P{N: "ct", V: o.ct, Min: 1e-6, Max: 1e-1},
		&dbf.P{N: "rw", V: o.rw, Min: 1e-3, Max: 1.0},
		&dbf.P{N: "h", V: o.h, Min: 0.1, Max: 1e3},
		&dbf.P{N: "q", V: o.q, Min: 1e-2, Max: 1e4},
		&dbf.P{N: "B", V: o.B, Min: 0.5, Max: 3.0},
		&dbf.P{N: "C", V: o.C, Min: 0, Max: 1e2},
		&dbf.P{N: "S", V: o.S, Min: -5, Max: 50},
	}
}

// tdCoef returns the dimensionless-time coefficient tD/t [1/h]
func (o reservoir) tdCoef(k float64) float64 {
	return 3.6e-3 * k / (o.φ * o.μ * o.ct * o.rw * o.rw)
}

// pCoef returns the pressure coefficient Δp/pD [MPa]
func (o reservoir) pCoef(k float64) float64 {
	return 1.842e-2 * o.q * o.μ * o.B / (k * o.h)
}

// cd returns the dimensionless wellbore storage coefficient
func (o reservoir) cd() float64 {
	return 0.159 * o.C / (o.φ * o.ct * o.h * o.rw * o.rw)
}

// pwdRadial is the Laplace-domain wellbore pressure for radial flow
// with wellbore storage cd and skin, finite wellbore radius
// (van Everdingen-Hurst). z² replaces s in the Bessel arguments so
// that dual-porosity kernels can pass z = sqrt(s·f(s)).
func pwdRadial(s, z, cd, skin float64) float64 {
	k0 := fun.ModBesselK0(z)
	k1 := fun.ModBesselK1(z)
	num := k0 + skin*z*k1
	den := s * (z*k1 + cd*s*num)
	if den == 0 || math.IsNaN(den) {
		return 0
	}
	return num / den
}
