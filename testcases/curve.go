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

package testcases

import (
	"seehuhn.de/go/outline"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Lines:  lines(quadraticCurve(10, 50, 32, 10, 54, 50).Iter()),
		Style:  style(outline.KindAdvancedOutline, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_deep",
		Lines:  lines(quadraticCurve(10, 50, 32, 5, 54, 50).Iter()),
		Style:  style(outline.KindAdvancedOutline, 6, tips(outline.TipFlat, outline.TipFlat)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_s_shape",
		Lines:  lines(sCurveQuadratic(10, 32, 54, 32).Iter()),
		Style:  style(outline.KindAdvancedOutline, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic",
		Lines:  lines(cubicCurve(10, 50, 20, 10, 44, 10, 54, 50).Iter()),
		Style:  style(outline.KindAdvancedOutline, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_scurve",
		Lines:  lines(cubicCurve(10, 50, 40, 0, 24, 64, 54, 14).Iter()),
		Style:  style(outline.KindAdvancedOutline, 5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_loop",
		Lines:  lines(cubicCurve(10, 40, 70, 0, -6, 0, 54, 40).Iter()),
		Style:  style(outline.KindAdvancedOutline, 3),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_cusp",
		Lines:  lines(cubicCurve(10, 50, 54, 10, 10, 10, 54, 50).Iter()),
		Style:  style(outline.KindAdvancedOutline, 3),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_degenerate",
		Lines:  lines(cubicCurve(10, 32, 10, 32, 54, 32, 54, 32).Iter()),
		Style:  style(outline.KindAdvancedOutline, 6),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle",
		Lines:  lines(circle(32, 32, 22).Iter()),
		Style:  style(outline.KindAdvancedOutline, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_outline",
		Lines:  lines(circle(32, 32, 22).Iter()),
		Style:  style(outline.KindOutline, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_small",
		Lines:  lines(circle(32, 32, 3).Iter()),
		Style:  style(outline.KindAdvancedOutline, 2),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse",
		Lines:  lines(ellipse(32, 32, 26, 12).Iter()),
		Style:  style(outline.KindAdvancedOutline, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "arc",
		Lines:  lines(arc(32, 32, 22, 0.75).Iter()),
		Style:  style(outline.KindAdvancedOutline, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "arc_sharp",
		Lines:  lines(arc(32, 32, 22, 0.75).Iter()),
		Style:  style(outline.KindAdvancedOutline, 4, tips(outline.TipFlat, outline.TipFlat)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "few_samples",
		Lines:  lines(circle(32, 32, 22).Iter()),
		Style:  style(outline.KindAdvancedOutline, 6, func(st *outline.Style) { st.Samples = 3 }),
		Width:  64,
		Height: 64,
	},
}

// quadraticCurve builds an open path with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *shape {
	return (&shape{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

// cubicCurve builds an open path with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *shape {
	return (&shape{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// sCurveQuadratic builds an open S-shaped path from two quadratic Bezier
// curves.  The curves meet with a common tangent.
func sCurveQuadratic(x1, y1, x2, y2 float64) *shape {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&shape{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2))
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *shape {
	k := r * kappa

	return (&shape{}).
		MoveTo(pt(cx+r, cy)).                                 // start at right
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)). // top-right quadrant
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)). // top-left quadrant
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)). // bottom-left quadrant
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)). // bottom-right quadrant
		Close()
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *shape {
	kx := rx * kappa
	ky := ry * kappa

	return (&shape{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// arc builds an open circular arc starting at the right, going through
// the given fraction of the circle in quarter steps.
func arc(cx, cy, r float64, fraction float64) *shape {
	k := r * kappa
	quadrants := min(max(int(fraction*4), 1), 4)

	p := (&shape{}).MoveTo(pt(cx+r, cy))
	if quadrants >= 1 {
		p = p.CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r))
	}
	if quadrants >= 2 {
		p = p.CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy))
	}
	if quadrants >= 3 {
		p = p.CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r))
	}
	if quadrants >= 4 {
		p = p.CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy))
	}
	return p
}
