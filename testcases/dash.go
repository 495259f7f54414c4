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

// on returns a dash item: a gap of the given length, followed by a dash.
func on(gap, length float64) outline.DashItem {
	return outline.DashItem{Offset: gap, Length: length}
}

var dashCases = []TestCase{
	{
		Name:   "dash_single_element",
		Lines:  lines(horizontalLine(4, 32, 60)),
		Style:  style(outline.KindAdvancedOutline, 4, dash(0, on(4, 6))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_three_element",
		Lines:  lines(horizontalLine(4, 32, 60)),
		Style:  style(outline.KindAdvancedOutline, 4, dash(0, on(2, 8), on(2, 2), on(4, 1))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_offset_half",
		Lines:  lines(horizontalLine(4, 32, 60)),
		Style:  style(outline.KindAdvancedOutline, 4, dash(5, on(4, 6))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_offset_negative",
		Lines:  lines(horizontalLine(4, 32, 60)),
		Style:  style(outline.KindAdvancedOutline, 4, dash(-3, on(4, 6))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_offset_large",
		Lines:  lines(horizontalLine(4, 32, 60)),
		Style:  style(outline.KindAdvancedOutline, 4, dash(1003, on(4, 6))),
		Width:  64,
		Height: 64,
	},
	{
		Name:  "dash_rounded",
		Lines: lines(horizontalLine(8, 32, 56)),
		Style: style(outline.KindAdvancedOutline, 6, dash(0, outline.DashItem{
			Offset: 4, Length: 6, Before: outline.TipRounded, After: outline.TipRounded,
		})),
		Width:  64,
		Height: 64,
	},
	{
		Name:  "dash_mixed_tips",
		Lines: lines(horizontalLine(8, 32, 56)),
		Style: style(outline.KindAdvancedOutline, 6, dash(0, outline.DashItem{
			Offset: 5, Length: 6, Before: outline.TipPeak, After: outline.TipSquared,
		})),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_clipped_tips",
		Lines:  lines(horizontalLine(8, 32, 56)),
		Style:  style(outline.KindAdvancedOutline, 6, tips(outline.TipRounded, outline.TipPeak), dash(3, on(4, 8))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_corner_in_dash",
		Lines:  lines(cornerAngle(8, 40, 32, 40, 60)),
		Style:  style(outline.KindAdvancedOutline, 4, dash(0, on(2, 16))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_corner_in_gap",
		Lines:  lines(cornerAngle(8, 40, 32, 40, 60)),
		Style:  style(outline.KindAdvancedOutline, 4, dash(0, on(6, 18))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_corner_bevel",
		Lines:  lines(cornerAngle(8, 40, 32, 40, 60)),
		Style:  style(outline.KindAdvancedOutline, 4, cusp(outline.CuspBevel), dash(0, on(2, 16))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_multi_corner",
		Lines:  lines(zigzag(4, 40, 16, 20, 28, 40, 40, 20, 52, 40)),
		Style:  style(outline.KindAdvancedOutline, 3, dash(0, on(3, 9))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_width_profile",
		Lines:  lines(horizontalLine(4, 32, 60)),
		Widths: []outline.WidthPoint{wp(0, 0.2), wp(1, 1)},
		Style:  style(outline.KindAdvancedOutline, 10, dash(0, on(3, 5))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_curve",
		Lines:  lines(cubicCurve(10, 50, 20, 10, 44, 10, 54, 50).Iter()),
		Style:  style(outline.KindAdvancedOutline, 4, dash(0, on(3, 7))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_curve_homogeneous",
		Lines:  lines(cubicCurve(10, 50, 20, 10, 44, 10, 54, 50).Iter()),
		Widths: []outline.WidthPoint{wp(0, 0.2), wp(0.5, 1), wp(1, 0.2)},
		Style:  style(outline.KindAdvancedOutline, 6, homogeneous, dash(0, on(3, 7))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_closed_square",
		Lines:  lines(closedSquare(16, 16, 32)),
		Style:  style(outline.KindAdvancedOutline, 4, dash(0, on(4, 8))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_closed_seam",
		Lines:  lines(closedSquare(16, 16, 32)),
		Style:  style(outline.KindAdvancedOutline, 4, dash(4, on(10, 8))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_closed_circle",
		Lines:  lines(circle(32, 32, 20).Iter()),
		Style:  style(outline.KindAdvancedOutline, 4, dash(0, on(5, 10))),
		Width:  64,
		Height: 64,
	},
}

// cornerAngle builds a corner path with a specific angle.
// The first segment goes from (x1, y1) to (cx, cy), the second segment
// extends from (cx, cy) at the given angle (in degrees) from horizontal.
func cornerAngle(x1, y1, cx, cy float64, angleDeg float64) path.Path {
	angleRad := angleDeg * math.Pi / 180
	length := 30.0
	x2 := cx + length*math.Cos(angleRad)
	y2 := cy - length*math.Sin(angleRad) // y is inverted in screen coords

	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: cx, Y: cy}}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}})
	}
}

// zigzag builds a zigzag path with multiple corners.
func zigzag(x1, y1, x2, y2, x3, y3, x4, y4, x5, y5 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		for _, p := range []vec.Vec2{{X: x2, Y: y2}, {X: x3, Y: y3}, {X: x4, Y: y4}, {X: x5, Y: y5}} {
			if !yield(path.CmdLineTo, []vec.Vec2{p}) {
				return
			}
		}
	}
}

// closedSquare builds a closed square path starting at (x, y) with given side length.
func closedSquare(x, y, side float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x, Y: y}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x + side, Y: y}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x + side, Y: y + side}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x, Y: y + side}}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}
