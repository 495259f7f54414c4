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
	"math"

	"seehuhn.de/go/geom/vec"
)

// cusp returns the corner geometry at a vertex.  last is the tangent of the
// incoming segment just before the vertex, curr the tangent of the outgoing
// segment just after it, and hw the half width at the vertex.
//
// Points for side A and side B are returned separately.  At most one of the
// two slices is non-empty.  Degenerate configurations produce no points.
func (st *Style) cusp(vertex, last, curr vec.Vec2, hw float64) (a, b []vec.Vec2) {
	n1, ok1 := normalize(perp(last))
	n2, ok2 := normalize(perp(curr))
	if !ok1 || !ok2 {
		return nil, nil
	}

	cross := n1.X*n2.Y - n1.Y*n2.X
	switch st.Cusp {
	case CuspSharp:
		return st.sharpCusp(vertex, last, curr, n1, n2, cross, hw)
	case CuspRounded:
		return st.roundCusp(vertex, n1, n2, cross, hw)
	default: // CuspBevel
		return nil, nil
	}
}

// sharpCusp builds a mitred corner, or a spike where the centerline almost
// turns back on itself.
func (st *Style) sharpCusp(vertex, last, curr, n1, n2 vec.Vec2, cross, hw float64) (a, b []vec.Vec2) {
	thr := st.CuspThreshold
	gap := n1.Sub(n2).Length()

	switch {
	case cross > thr:
		p1 := vertex.Add(n1.Mul(hw))
		p2 := vertex.Add(n2.Mul(hw))
		if x, ok := lineIntersection(p1, last, p2, curr); ok {
			a = append(a, x)
		}
	case cross < -thr:
		p1 := vertex.Sub(n1.Mul(hw))
		p2 := vertex.Sub(n2.Mul(hw))
		if x, ok := lineIntersection(p1, last, p2, curr); ok {
			b = append(b, x)
		}
	case cross > 0 && gap > 1:
		if bis, ok := normalize(n1.Add(n2)); ok {
			a = append(a, vertex.Add(bis.Mul(hw*st.spikeAmount(cross))))
		}
	case cross < 0 && gap > 1:
		if bis, ok := normalize(n1.Add(n2)); ok {
			b = append(b, vertex.Sub(bis.Mul(hw*st.spikeAmount(-cross))))
		}
	}
	return a, b
}

// spikeAmount returns the amplification of a spike for the given (positive)
// cross product.  The result is in [1, SpikeAmount].
func (st *Style) spikeAmount(cross float64) float64 {
	k := min(max(0, cross/st.CuspThreshold), 1)
	return k*(st.SpikeAmount-1) + 1
}

// roundCusp fills the outer side of a corner with a circular arc around the
// vertex.  The end points of the arc are not included, since the offset
// samples of the two segments already provide them.
func (st *Style) roundCusp(vertex, n1, n2 vec.Vec2, cross, hw float64) (a, b []vec.Vec2) {
	if cross == 0 {
		return nil, nil
	}
	sweep := math.Atan2(cross, n1.Dot(n2))
	steps := int(math.Ceil(float64(st.Samples) * math.Abs(sweep) / (2 * math.Pi)))
	steps = max(steps, 2)

	dt := sweep / float64(steps)
	for i := 1; i < steps; i++ {
		dir := rotate(n1, float64(i)*dt)
		if cross > 0 {
			a = append(a, vertex.Add(dir.Mul(hw)))
		} else {
			b = append(b, vertex.Sub(dir.Mul(hw)))
		}
	}
	return a, b
}

// rotate turns v counter-clockwise by angle radians.
func rotate(v vec.Vec2, angle float64) vec.Vec2 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return vec.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}
