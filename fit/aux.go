// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

// copyMap clones a parameter map
func copyMap(m map[string]float64) map[string]float64 {
	c := make(map[string]float64, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// at returns a[i], or zero when i is out of range
func at(a []float64, i int) float64 {
	if i < len(a) {
		return a[i]
	}
	return 0
}

// imin returns the minimum of two ints
func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// isLogScale tells whether the LM step for parameter n is taken in
// log10 space: positive-scale quantities spanning orders of magnitude
// are, while skin "S" and fracture count "nf" stay linear
func isLogScale(n string, v float64) bool {
	return v > 1e-12 && n != "S" && n != "nf"
}
