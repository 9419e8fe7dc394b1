// Copyright 2026 The Gowt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"
	"sort"

	"github.com/petrosolve/gowt/inp"
)

// number of points of the default log-spaced resampling plan
const defaultSampleCount = 200

// tolerance below which two resampled times are considered duplicates
const dupTol = 1e-9

// Resample reduces the observation series to a strictly ascending,
// duplicate-free log-spaced subset. With custom==false the default
// plan picks up to 200 points log-uniformly over the full time range;
// otherwise each interval contributes Count points picked
// log-uniformly within [TStart, TEnd]. Small inputs under the default
// plan, and custom mode with an empty interval list, pass through
// unchanged (the returned slices may alias the inputs then).
func Resample(srcT, srcP, srcD []float64, intervals []inp.SamplingInterval, custom bool) (outT, outP, outD []float64) {
	if len(srcT) == 0 {
		return
	}

	type point struct{ t, p, d float64 }
	var points []point
	pick := func(idx int) {
		points = append(points, point{srcT[idx], at(srcP, idx), at(srcD, idx)})
	}

	if !custom {
		if len(srcT) <= defaultSampleCount {
			return srcT, srcP, srcD
		}
		tmin := srcT[0]
		if tmin <= 1e-10 {
			tmin = 1e-4
		}
		logMin := math.Log10(tmin)
		logMax := math.Log10(srcT[len(srcT)-1])
		step := (logMax - logMin) / float64(defaultSampleCount-1)
		cursor := 0
		for i := 0; i < defaultSampleCount; i++ {
			target := math.Pow(10, logMin+float64(i)*step)
			cursor = nearest(srcT, len(srcT), cursor, target)
			pick(cursor)
		}

	} else {
		if len(intervals) == 0 {
			return srcT, srcP, srcD
		}
		for _, iv := range intervals {
			if iv.Count <= 0 {
				continue
			}
			iStart := sort.SearchFloat64s(srcT, iv.TStart)
			iEnd := sort.Search(len(srcT), func(i int) bool { return srcT[i] > iv.TEnd })
			if iStart >= len(srcT) || iStart >= iEnd {
				continue
			}
			subMin := srcT[iStart]
			subMax := srcT[iEnd-1]
			if subMin <= 1e-10 {
				subMin = 1e-4
			}
			logMin := math.Log10(subMin)
			logMax := math.Log10(subMax)
			step := 0.0
			if iv.Count > 1 {
				step = (logMax - logMin) / float64(iv.Count-1)
			}
			cursor := iStart
			for i := 0; i < iv.Count; i++ {
				target := subMin
				if iv.Count > 1 {
					target = math.Pow(10, logMin+float64(i)*step)
				}
				cursor = nearest(srcT, iEnd, cursor, target)
				pick(cursor)
			}
		}
	}

	// sort and drop duplicates
	sort.SliceStable(points, func(i, j int) bool { return points[i].t < points[j].t })
	for i, p := range points {
		if i > 0 && math.Abs(p.t-points[i-1].t) < dupTol {
			continue
		}
		outT = append(outT, p.t)
		outP = append(outP, p.p)
		outD = append(outD, p.d)
	}
	return
}

// nearest scans forward from cursor (never past hi) and returns the
// index whose time is closest to target. The scan stops as soon as the
// distance grows, so a full resampling pass is O(N).
func nearest(t []float64, hi, cursor int, target float64) int {
	best := cursor
	minDiff := math.Inf(1)
	for cursor < hi {
		diff := math.Abs(t[cursor] - target)
		if diff < minDiff {
			minDiff = diff
			best = cursor
		} else {
			break
		}
		cursor++
	}
	return best
}

// resample applies the core's sampling settings to its observations
func (o *Core) resample() (t, dp, dd []float64) {
	return Resample(o.obsT, o.obsP, o.obsD, o.intervals, o.custom)
}
