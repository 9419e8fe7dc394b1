// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/petrosolve/gowt/inp"
)

func logspace(lo, hi float64, n int) (t []float64) {
	t = make([]float64, n)
	for i := range t {
		t[i] = math.Pow(10, lo+(hi-lo)*float64(i)/float64(n-1))
	}
	return
}

func checkAscending(tst *testing.T, msg string, t []float64) {
	for i := 1; i < len(t); i++ {
		if t[i] <= t[i-1] {
			tst.Errorf("%s: t[%d]=%g is not greater than t[%d]=%g", msg, i, t[i], i-1, t[i-1])
			return
		}
	}
}

func Test_sample01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sample01. default plan on log-spaced input")

	n := 10000
	T := logspace(0, 4, n)
	P := make([]float64, n)
	D := make([]float64, n)
	for i := range T {
		P[i] = T[i]
		D[i] = 0.5 * T[i]
	}

	rt, rp, rd := Resample(T, P, D, nil, false)
	chk.IntAssert(len(rt), 200)
	chk.IntAssert(len(rp), 200)
	chk.IntAssert(len(rd), 200)
	checkAscending(tst, "default plan", rt)
	chk.Float64(tst, "first", 1e-12, rt[0], 1.0)
	chk.Float64(tst, "last", 1e-6, rt[199], 10000.0)

	// consecutive log-ratios approximately equal
	for i := 1; i < len(rt); i++ {
		ratio := rt[i] / rt[i-1]
		if ratio < 1.04 || ratio > 1.06 {
			tst.Errorf("log-ratio %g at %d out of band", ratio, i)
			return
		}
	}
}

func Test_sample02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sample02. default plan on linear input collapses duplicates")

	n := 10000
	T := make([]float64, n)
	for i := range T {
		T[i] = float64(i + 1) // 1 .. 10000
	}

	rt, _, _ := Resample(T, T, T, nil, false)
	if len(rt) > 200 || len(rt) < 140 {
		tst.Errorf("unexpected output length %d", len(rt))
		return
	}
	checkAscending(tst, "linear input", rt)
	chk.Float64(tst, "first", 1e-12, rt[0], 1.0)
	chk.Float64(tst, "last", 1e-12, rt[len(rt)-1], 10000.0)
}

func Test_sample03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sample03. custom intervals")

	T := logspace(-2, 2, 1000)
	plan := []inp.SamplingInterval{
		{TStart: 0.1, TEnd: 1, Count: 3},
		{TStart: 1, TEnd: 10, Count: 2},
	}

	rt, rp, rd := Resample(T, T, T, plan, true)
	chk.IntAssert(len(rt), 5)
	chk.IntAssert(len(rp), 5)
	chk.IntAssert(len(rd), 5)
	checkAscending(tst, "custom plan", rt)

	// three points within the first decade, two in the second
	nlo, nhi := 0, 0
	for _, t := range rt {
		if t <= 1.0 {
			nlo++
		} else {
			nhi++
		}
	}
	chk.IntAssert(nlo, 3)
	chk.IntAssert(nhi, 2)
	chk.Float64(tst, "first", 1e-3, rt[0], 0.1)
	chk.Float64(tst, "last", 5e-2, rt[4], 10.0)
}

func Test_sample04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sample04. edge cases and idempotency")

	// empty input
	rt, rp, rd := Resample(nil, nil, nil, nil, false)
	chk.IntAssert(len(rt), 0)
	chk.IntAssert(len(rp), 0)
	chk.IntAssert(len(rd), 0)

	// small input passes through
	T := []float64{0.1, 1, 10}
	rt, _, _ = Resample(T, T, T, nil, false)
	chk.Array(tst, "passthrough", 1e-17, rt, T)

	// custom mode with empty plan behaves as disabled
	rt, _, _ = Resample(T, T, T, nil, true)
	chk.Array(tst, "empty plan", 1e-17, rt, T)

	// an interval beyond the data contributes nothing
	T2 := logspace(-2, 2, 1000)
	plan := []inp.SamplingInterval{
		{TStart: 2000, TEnd: 3000, Count: 5},
		{TStart: 0.1, TEnd: 1, Count: 3},
	}
	rt, _, _ = Resample(T2, T2, T2, plan, true)
	chk.IntAssert(len(rt), 3)

	// idempotency on own output
	rt, rp, rd = Resample(T2, T2, T2, nil, false)
	rt2, rp2, rd2 := Resample(rt, rp, rd, nil, false)
	chk.Array(tst, "idempotent t", 1e-17, rt2, rt)
	chk.Array(tst, "idempotent p", 1e-17, rp2, rp)
	chk.Array(tst, "idempotent d", 1e-17, rd2, rd)
}
