// seehuhn.de/go/outline - variable-width outline tessellation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package outline

import (
	"cmp"
	"math"
	"slices"
	"sort"
)

// WidthPoint is a control point of the width profile of a stroke.
type WidthPoint struct {
	// Position is the normalized position along the whole centerline,
	// in [0, 1].  Positions need not coincide with the vertices.
	Position float64

	// Width is the profile width at Position.
	Width float64

	// Before and After describe the outline on either side of the point.
	// Anything other than TipInterpolate makes the width drop to zero on
	// that side.  Between two width points the stroke then tapers linearly
	// (or along the smoothness curve) from zero, it is not cut off at the
	// tagged point.  On the first (last) width point of an open stroke which
	// sits exactly at position 0 (1), Before (After) selects the tip.
	Before, After TipType
}

// span is the part of a segment window between two consecutive width
// breakpoints.  Widths inside the span interpolate between lo and hi.
type span struct {
	start, end float64
	lo, hi     WidthPoint
}

// profile is a width profile, sorted by position.
type profile struct {
	points     []WidthPoint
	loop       bool
	smoothness float64
}

// newProfile returns a profile containing a sorted copy of points.
// Positions are wrapped into [0, 1) for looped centerlines and clamped to
// [0, 1] otherwise.  points must not be empty.
func newProfile(points []WidthPoint, loop bool, smoothness float64) *profile {
	sorted := slices.Clone(points)
	for i := range sorted {
		pos := sorted[i].Position
		if loop {
			pos -= math.Floor(pos)
		} else {
			pos = min(max(pos, 0), 1)
		}
		sorted[i].Position = pos
	}
	slices.SortStableFunc(sorted, func(a, b WidthPoint) int {
		return cmp.Compare(a.Position, b.Position)
	})
	return &profile{
		points:     sorted,
		loop:       loop,
		smoothness: smoothness,
	}
}

// carryAt returns the width point which precedes position pos.  This is the
// accumulator value to use when resolving a window starting at pos.
func (p *profile) carryAt(pos float64) WidthPoint {
	i := sort.Search(len(p.points), func(i int) bool {
		return p.points[i].Position >= pos
	})
	if i > 0 {
		return p.points[i-1]
	}

	if p.loop {
		w := p.points[len(p.points)-1]
		w.Position--
		return w
	}
	first := p.points[0]
	return WidthPoint{
		Position: min(first.Position, 0) - 1,
		Width:    first.Width,
		After:    first.Before,
	}
}

// nextAfter returns the first width point strictly beyond position pos.
func (p *profile) nextAfter(pos float64) WidthPoint {
	i := sort.Search(len(p.points), func(i int) bool {
		return p.points[i].Position > pos
	})
	if i < len(p.points) {
		return p.points[i]
	}

	if p.loop {
		w := p.points[0]
		w.Position++
		return w
	}
	last := p.points[len(p.points)-1]
	return WidthPoint{
		Position: max(last.Position, 1) + 1,
		Width:    last.Width,
		Before:   last.After,
	}
}

// resolve splits the window [start, end] into width spans.
//
// last is the width point carried over from the previous window.  The
// returned carry is the last width point consumed inside this window, or
// last if the window contains no width points.  Width points which sit
// exactly on a window edge are used as the edge breakpoint, all other
// edges interpolate between the neighbouring width points.
func (p *profile) resolve(last WidthPoint, start, end float64) ([]span, WidthPoint) {
	lo := sort.Search(len(p.points), func(i int) bool {
		return p.points[i].Position >= start
	})
	hi := sort.Search(len(p.points), func(i int) bool {
		return p.points[i].Position > end
	})

	var spans []span
	prev := last
	pos := start
	for _, w := range p.points[lo:hi] {
		if w.Position > pos {
			spans = append(spans, span{start: pos, end: w.Position, lo: prev, hi: w})
		}
		prev = w
		pos = w.Position
	}
	if pos < end {
		spans = append(spans, span{start: pos, end: end, lo: prev, hi: p.nextAfter(end)})
	}
	return spans, prev
}

// at returns the profile width at position pos, interpolating between the
// width points prev and next.
func (p *profile) at(prev, next WidthPoint, pos float64) float64 {
	if pos == next.Position {
		return next.Width
	}
	if pos == prev.Position {
		return prev.Width
	}

	pw, nw := prev.Width, next.Width
	if prev.After != TipInterpolate {
		pw = 0
	}
	if next.Before != TipInterpolate {
		nw = 0
	}

	var q float64
	if d := next.Position - prev.Position; d < widthPositionEpsilon {
		q = 0.5
	} else {
		q = min(max((pos-prev.Position)/d, 0), 1)
	}
	s := p.smoothness
	q = q*(1-s) + q*q*q*(10+q*(6*q-15))*s
	return pw + (nw-pw)*q
}

// widthPositionEpsilon is the distance below which two width points are
// treated as coincident.
const widthPositionEpsilon = 1e-7

// tips returns the tip types for the two ends of an open stroke.  A width
// point sitting exactly on an end of the centerline overrides the given
// default with its outer side type, unless that is TipInterpolate.
func (p *profile) tips(start, end TipType) (TipType, TipType) {
	first := p.points[0]
	if first.Position == 0 && first.Before != TipInterpolate {
		start = first.Before
	}
	last := p.points[len(p.points)-1]
	if last.Position == 1 && last.After != TipInterpolate {
		end = last.After
	}
	return start, end
}
