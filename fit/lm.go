// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"

	"github.com/cpmech/gosl/utl"
	"github.com/petrosolve/gowt/inp"
	"gonum.org/v1/gonum/floats"
)

// run executes one Levenberg-Marquardt fitting session. It always
// fires Finished last, also on short-circuits and cancellation.
func (o *Core) run(model string, params inp.Params, weight float64) {
	defer o.emitFinished()

	if o.ev == nil {
		return
	}
	fitIdx := params.FitIndices()
	nfree := len(fitIdx)
	if nfree == 0 {
		return
	}

	// the whole loop runs at low precision; one final high-precision
	// evaluation follows
	o.ev.SetHighPrecision(false)

	fitT, fitP, fitD := o.resample()

	λ := o.Lam0
	prms := params.ToMap()
	projectPhysical(prms)
	updateDerived(prms)

	res := o.residuals(prms, model, weight, fitT, fitP, fitD)
	sse := floats.Dot(res, res)
	o.snapshot(model, prms, sse, len(res))

	for it := 0; it < o.MaxIt; it++ {
		if o.stopped() {
			break
		}
		if len(res) > 0 && sse/float64(len(res)) < o.MseTol {
			break
		}
		o.emitProgress(it * 100 / o.MaxIt)

		J := o.jacobian(prms, len(res), fitIdx, model, params, weight, fitT, fitP, fitD)

		// normal equations: g = Jᵀr and the lower triangle of H = JᵀJ,
		// mirrored afterwards
		H := utl.Alloc(nfree, nfree)
		g := make([]float64, nfree)
		for k := 0; k < len(res); k++ {
			for i := 0; i < nfree; i++ {
				g[i] += J[k][i] * res[k]
				for j := 0; j <= i; j++ {
					H[i][j] += J[k][i] * J[k][j]
				}
			}
		}
		for i := 0; i < nfree; i++ {
			for j := i + 1; j < nfree; j++ {
				H[i][j] = H[j][i]
			}
		}

		// damping search
		accepted := false
		for try := 0; try < o.NtryMax; try++ {
			δ := solveDamped(H, g, λ)

			trial := copyMap(prms)
			for i, pidx := range fitIdx {
				p := params[pidx]
				v := prms[p.N]
				var vnew float64
				if isLogScale(p.N, v) {
					vnew = math.Pow(10, math.Log10(v)+δ[i])
				} else {
					vnew = v + δ[i]
				}
				if vnew < p.Min {
					vnew = p.Min
				}
				if vnew > p.Max {
					vnew = p.Max
				}
				trial[p.N] = vnew
			}
			updateDerived(trial)
			projectPhysical(trial)

			newRes := o.residuals(trial, model, weight, fitT, fitP, fitD)
			newSse := floats.Dot(newRes, newRes)
			if newSse < sse {
				sse = newSse
				prms = trial
				res = newRes
				λ /= 10.0
				accepted = true
				o.snapshot(model, prms, sse, len(res))
				break
			}
			λ *= 10.0
		}
		if !accepted && λ > o.LamMax {
			break
		}
	}

	// final snapshot at high precision
	o.ev.SetHighPrecision(true)
	o.snapshot(model, prms, sse, len(res))
}
