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

import "seehuhn.de/go/geom/vec"

// end describes one end of an open stroke, as seen from outside.
type end struct {
	vertex vec.Vec2

	// normal is the unit offset direction of the boundary which is
	// traversed towards this end.  The boundary reaches vertex+normal·hw,
	// the tip must continue to vertex-normal·hw.
	normal vec.Vec2

	hw float64
}

// outward returns the unit tangent pointing away from the stroke.
func (e end) outward() vec.Vec2 {
	// perp(t) = normal  =>  t = -perp(normal)
	return perp(e.normal).Mul(-1)
}

// addTip appends the tip of type tip to the boundary poly, which must end
// in the point e.vertex + e.normal·e.hw.  The returned boundary stops just
// before e.vertex - e.normal·e.hw, where the opposite side continues.
func (st *Style) addTip(poly []vec.Vec2, tip TipType, e end) []vec.Vec2 {
	if e.hw <= 0 {
		return poly
	}
	out := e.outward()
	n := e.normal
	hw := e.hw

	switch tip {
	case TipRounded:
		if len(poly) > 0 {
			poly = poly[:len(poly)-1]
		}
		round := Hermite{
			P0: e.vertex.Add(n.Mul(hw)),
			P1: e.vertex.Sub(n.Mul(hw)),
			T0: out.Mul(hw * st.RoundEndFactor),
			T1: out.Mul(-hw * st.RoundEndFactor),
		}
		for i := range st.Samples {
			poly = append(poly, round.Position(float64(i)/float64(st.Samples)))
		}
	case TipSquared:
		ext := e.vertex.Add(out.Mul(hw))
		poly = append(poly, ext.Add(n.Mul(hw)), ext.Sub(n.Mul(hw)))
	case TipPeak:
		poly = append(poly, e.vertex.Add(out.Mul(hw)))
	default: // TipFlat, TipInterpolate
	}
	return poly
}
