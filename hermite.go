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

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/vec"
)

// Hermite is a cubic Hermite segment from P0 to P1 with tangent T0 at the
// start and T1 at the end.  The curve is the same as the cubic Bézier curve
// with control points P0, P0+T0/3, P1-T1/3, P1.
type Hermite struct {
	P0, P1 vec.Vec2
	T0, T1 vec.Vec2
}

// Position returns the point at parameter t.
// Values of t outside [0, 1] extrapolate the cubic.
func (h Hermite) Position(t float64) vec.Vec2 {
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h.P0.Mul(h00).Add(h.T0.Mul(h10)).Add(h.P1.Mul(h01)).Add(h.T1.Mul(h11))
}

// Derivative returns the (unnormalized) tangent vector at parameter t.
func (h Hermite) Derivative(t float64) vec.Vec2 {
	t2 := t * t
	d00 := 6*t2 - 6*t
	d10 := 3*t2 - 4*t + 1
	d01 := -6*t2 + 6*t
	d11 := 3*t2 - 2*t
	return h.P0.Mul(d00).Add(h.T0.Mul(d10)).Add(h.P1.Mul(d01)).Add(h.T1.Mul(d11))
}

// Bezier returns the segment as a cubic Bézier curve.
func (h Hermite) Bezier() curve.CubicBez {
	c1 := h.P0.Add(h.T0.Mul(1.0 / 3))
	c2 := h.P1.Sub(h.T1.Mul(1.0 / 3))
	return curve.CubicBez{
		P0: curve.Pt(h.P0.X, h.P0.Y),
		P1: curve.Pt(c1.X, c1.Y),
		P2: curve.Pt(c2.X, c2.Y),
		P3: curve.Pt(h.P1.X, h.P1.Y),
	}
}

// Length returns the arc length of the segment.
func (h Hermite) Length() float64 {
	if h.isPoint() {
		return 0
	}
	return h.Bezier().Arclen(arclenAccuracy)
}

// ParamAtLength returns the parameter t at which the arc length measured
// from the start of the segment equals s.  The result is clamped to [0, 1].
func (h Hermite) ParamAtLength(s float64) float64 {
	if s <= 0 || h.isPoint() {
		return 0
	}
	return curve.SolveForArclen(h.Bezier(), s, arclenAccuracy)
}

// isPoint reports whether the whole segment collapses to a single point.
func (h Hermite) isPoint() bool {
	return h.P0 == h.P1 && h.T0 == (vec.Vec2{}) && h.T1 == (vec.Vec2{})
}

// perp rotates v by 90° clockwise.  Offsetting a curve by +perp of its
// tangent gives side A of the outline.
func perp(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: v.Y, Y: -v.X}
}

// normalize returns v scaled to unit length.
// ok is false if v is too short to have a meaningful direction.
func normalize(v vec.Vec2) (u vec.Vec2, ok bool) {
	l := v.Length()
	if l < zeroLengthThreshold || math.IsNaN(l) || math.IsInf(l, 0) {
		return vec.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

// lineIntersection returns the intersection of the line through p1 with
// direction t1 and the line through p2 with direction t2.
// For (nearly) parallel lines ok is false.
func lineIntersection(p1, t1, p2, t2 vec.Vec2) (vec.Vec2, bool) {
	div := t1.X*t2.Y - t1.Y*t2.X
	scale := t1.Length() * t2.Length()
	if scale < zeroLengthThreshold || math.Abs(div) < parallelThreshold*scale {
		return vec.Vec2{}, false
	}
	d := p2.Sub(p1)
	s := (d.X*t2.Y - d.Y*t2.X) / div
	return p1.Add(t1.Mul(s)), true
}
