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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// assemble joins the two boundaries of a band into polygons.
//
// For a loop, side A and the reversed side B become two separate polygons,
// which enclose the stroke under the nonzero winding rule.  For an open
// stroke the result is a single polygon: side A, the end tip, side B in
// reverse order and the start tip.  Polygons with fewer than three points
// are dropped.
func (st *Style) assemble(bd *band, loop bool, startTip, endTip TipType) []Polygon {
	if len(bd.a) == 0 && len(bd.b) == 0 {
		return nil
	}

	var polys []Polygon
	add := func(p []vec.Vec2) {
		if len(p) >= 3 {
			polys = append(polys, Polygon(p))
		}
	}

	if loop {
		add(slices.Clone(bd.a))
		add(reversed(bd.b))
		return polys
	}

	poly := make([]vec.Vec2, 0, len(bd.a)+len(bd.b)+2*st.Samples)
	poly = append(poly, bd.a...)
	poly = st.addTip(poly, endTip, bd.last)
	poly = append(poly, reversed(bd.b)...)
	poly = st.addTip(poly, startTip, bd.first)
	add(poly)
	return polys
}

// reversed returns a reversed copy of pts.
func reversed(pts []vec.Vec2) []vec.Vec2 {
	res := slices.Clone(pts)
	slices.Reverse(res)
	return res
}
