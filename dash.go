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

import "math"

// DashItem is one element of a dash pattern: a gap of length Offset,
// followed by a dash of length Length.  Lengths are measured along the
// centerline.
type DashItem struct {
	Offset float64
	Length float64

	// Before and After are the tips at the start and the end of the dash.
	Before, After TipType
}

// dashInterval is a dash in arc length coordinates.
type dashInterval struct {
	start, end    float64
	before, after TipType

	// clippedStart and clippedEnd are set where the dash was cut by an end
	// of the centerline.
	clippedStart, clippedEnd bool
}

// minDashPattern is the shortest dash pattern which is applied.
const minDashPattern = 1e-8

// dashIntervals repeats the dash pattern items along a centerline of arc
// length total, shifted by offset.  Dashes are clipped to [0, total];
// empty dashes are omitted.
func dashIntervals(items []DashItem, offset, total float64) []dashInterval {
	patternLen := 0.0
	for _, d := range items {
		patternLen += d.Offset + d.Length
	}
	if patternLen < minDashPattern || total <= 0 {
		return nil
	}

	// Start at the last pattern repetition at or before position 0.
	q := offset / patternLen
	p0 := (q - math.Ceil(q)) * patternLen

	var res []dashInterval
	for p0 < total {
		for _, d := range items {
			a := p0 + d.Offset
			b := a + d.Length
			p0 = b
			if b > 0 && a < total && d.Length > 0 {
				res = append(res, dashInterval{
					start:        max(a, 0),
					end:          min(b, total),
					before:       d.Before,
					after:        d.After,
					clippedStart: a < 0,
					clippedEnd:   b > total,
				})
			}
			if p0 >= total {
				break
			}
		}
	}
	return res
}
