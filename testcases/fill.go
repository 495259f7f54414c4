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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/outline"
)

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Lines:  lines(triangle(32, 10, 54, 54, 10, 54)),
		Style:  style(outline.KindRegion, 1),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star_nonzero",
		Lines:  lines(fivePointStar(32, 34, 28)),
		Style:  style(outline.KindRegion, 1),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star_evenodd",
		Lines:  lines(fivePointStar(32, 34, 28)),
		Style:  style(outline.KindRegion, 1),
		Rule:   outline.EvenOdd,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rectangle",
		Lines:  lines(rectangle(12, 16, 52, 48)),
		Style:  style(outline.KindRegion, 1),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle",
		Lines:  lines(circle(32, 32, 25).Iter()),
		Style:  style(outline.KindRegion, 1),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "open_curve",
		Lines:  lines(cubicCurve(10, 50, 20, 10, 44, 10, 54, 50).Iter()),
		Style:  style(outline.KindRegion, 1),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "smooth_blob",
		Lines:  []outline.Centerline{blob(32, 32, 24, 16)},
		Style:  style(outline.KindRegion, 1),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "smooth_blob_outline",
		Lines:  []outline.Centerline{blob(32, 32, 24, 16)},
		Style:  style(outline.KindOutline, 3),
		Width:  64,
		Height: 64,
	},
}

// triangle builds a closed triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x3, Y: y3}}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		// five points, connecting every second point
		pts := make([]vec.Vec2, 5)
		for i := range 5 {
			angle := float64(i)*2*math.Pi/5 - math.Pi/2
			pts[i] = vec.Vec2{
				X: cx + r*math.Cos(angle),
				Y: cy + r*math.Sin(angle),
			}
		}

		// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
		order := []int{0, 2, 4, 1, 3}
		if !yield(path.CmdMoveTo, []vec.Vec2{pts[order[0]]}) {
			return
		}
		for _, i := range order[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{pts[i]}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y2}}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// blob builds a looped centerline with smooth tangents through five points
// on an ellipse, with alternating widths.
func blob(cx, cy, rx, ry float64) outline.Centerline {
	const n = 5
	line := outline.Centerline{Loop: true}
	for i := range n {
		a := 2 * math.Pi * float64(i) / n
		s, c := math.Sincos(a)
		w := 1.0
		if i%2 == 1 {
			w = 2
		}
		line.Points = append(line.Points, outline.BlinePoint{
			Vertex:   pt(cx+rx*c, cy+ry*s),
			Tangent1: pt(-rx*s, ry*c).Mul(1.2),
			Width:    w,
		})
	}
	return line
}
