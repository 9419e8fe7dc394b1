// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// DataSet holds one set of pressure-transient observations as four
// parallel series. Praw is optional and only used by the Horner
// regression.
type DataSet struct {
	T    []float64 `json:"t"`    // time [h]
	Dp   []float64 `json:"dp"`   // pressure difference [MPa]
	Dd   []float64 `json:"dd"`   // logarithmic derivative [MPa]
	Praw []float64 `json:"praw"` // raw measured pressure [MPa]; may be empty
}

// Clean drops samples with non-positive or backward time so that T is
// strictly positive and non-decreasing. The parallel series are kept
// aligned; short series simply stop contributing.
func (o *DataSet) Clean() {
	var t, p, d, r []float64
	last := 0.0
	for i, ti := range o.T {
		if ti <= 0 || ti < last {
			continue
		}
		last = ti
		t = append(t, ti)
		if i < len(o.Dp) {
			p = append(p, o.Dp[i])
		}
		if i < len(o.Dd) {
			d = append(d, o.Dd[i])
		}
		if i < len(o.Praw) {
			r = append(r, o.Praw[i])
		}
	}
	o.T, o.Dp, o.Dd, o.Praw = t, p, d, r
}
