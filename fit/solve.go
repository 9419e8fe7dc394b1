// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// solveDamped solves the damped normal equations
//
//	(H + λ·diag(1+|H[i,i]|)) δ = −g
//
// H is symmetric positive semidefinite by construction. A Cholesky
// factorisation is tried first; when the damped matrix is not positive
// definite an LU solve takes over, and a singular system yields the
// zero step, which the SSE acceptance test then rejects.
func solveDamped(H [][]float64, g []float64, λ float64) []float64 {
	n := len(g)
	if n == 0 {
		return nil
	}
	A := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			A.SetSym(i, j, H[i][j])
		}
		A.SetSym(i, i, H[i][i]+λ*(1.0+math.Abs(H[i][i])))
	}
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		b.SetVec(i, -g[i])
	}
	x := mat.NewVecDense(n, nil)
	var chol mat.Cholesky
	if chol.Factorize(A) {
		if err := chol.SolveVecTo(x, b); err == nil {
			return x.RawVector().Data
		}
	}
	var lu mat.LU
	lu.Factorize(A)
	if err := lu.SolveVecTo(x, false, b); err != nil {
		return make([]float64, n)
	}
	return x.RawVector().Data
}
