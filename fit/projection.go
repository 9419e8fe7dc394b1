// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

// updateDerived recomputes the derived dimensionless fracture
// half-length LfD = Lf/L when both sources are present
func updateDerived(m map[string]float64) {
	L, okL := m["L"]
	Lf, okLf := m["Lf"]
	if okL && okLf && L > 1e-9 {
		m["LfD"] = Lf / L
	}
}

// projectPhysical enforces the inter-parameter physical constraints:
// fracture permeability exceeds matrix permeability, and the first
// storativity exceeds the second. Violations are projected back by a
// 1 % margin.
func projectPhysical(m map[string]float64) {
	if kf, ok := m["kf"]; ok {
		if km, ok2 := m["km"]; ok2 && kf <= km {
			m["kf"] = km * 1.01
		}
	}
	if w1, ok := m["omega1"]; ok {
		if w2, ok2 := m["omega2"]; ok2 && w1 <= w2 {
			m["omega1"] = w2 * 1.01
		}
	}
}
