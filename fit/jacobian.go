// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"
	"runtime"

	"github.com/cpmech/gosl/utl"
	"github.com/petrosolve/gowt/inp"
)

// central-difference step sizes: hLog in log10 space for positive-
// scale parameters, hLin for linear-scale ones
const (
	hLog = 0.01
	hLin = 1e-4
)

// jacobian computes the nres x nfree Jacobian of the residual vector
// with respect to the free parameters by central differences. Columns
// are independent and computed concurrently by a bounded worker pool;
// the call blocks until all columns are done. Perturbed maps refresh
// the derived LfD when L or Lf moves, but do not project the kf/km and
// omega1/omega2 constraints.
func (o *Core) jacobian(prms map[string]float64, nres int, fitIdx []int, model string, params inp.Params, weight float64, t, obsP, obsD []float64) [][]float64 {
	nfree := len(fitIdx)
	J := utl.Alloc(nres, nfree)

	column := func(j int) {
		p := params[fitIdx[j]]
		v := prms[p.N]
		pPlus := copyMap(prms)
		pMinus := copyMap(prms)
		var h float64
		if isLogScale(p.N, v) {
			h = hLog
			lv := math.Log10(v)
			pPlus[p.N] = math.Pow(10, lv+h)
			pMinus[p.N] = math.Pow(10, lv-h)
		} else {
			h = hLin
			pPlus[p.N] = v + h
			pMinus[p.N] = v - h
		}
		if p.N == "L" || p.N == "Lf" {
			updateDerived(pPlus)
			updateDerived(pMinus)
		}
		rPlus := o.residuals(pPlus, model, weight, t, obsP, obsD)
		rMinus := o.residuals(pMinus, model, weight, t, obsP, obsD)
		if len(rPlus) != nres || len(rMinus) != nres {
			return
		}
		for i := 0; i < nres; i++ {
			J[i][j] = (rPlus[i] - rMinus[i]) / (2.0 * h)
		}
	}

	nw := o.Nwkrs
	if nw <= 0 {
		nw = runtime.NumCPU()
	}
	if nw > nfree {
		nw = nfree
	}
	if nw <= 1 {
		for j := 0; j < nfree; j++ {
			column(j)
		}
		return J
	}

	jobs := make(chan int, nfree)
	done := make(chan int, nw)
	for w := 0; w < nw; w++ {
		go func() {
			for j := range jobs {
				column(j)
			}
			done <- 1
		}()
	}
	for j := 0; j < nfree; j++ {
		jobs <- j
	}
	close(jobs)
	for w := 0; w < nw; w++ {
		<-done
	}
	return J
}
