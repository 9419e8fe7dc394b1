// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// SamplingInterval defines one interval of a custom resampling plan:
// Count points are picked log-uniformly within [TStart, TEnd]
type SamplingInterval struct {
	TStart float64 `json:"tstart"` // interval start time [h]
	TEnd   float64 `json:"tend"`   // interval end time [h]
	Count  int     `json:"count"`  // number of points to pick
}
