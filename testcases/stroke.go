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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/outline"
)

var strokeCases = []TestCase{
	{
		Name:   "line_flat",
		Lines:  lines(horizontalLine(10, 32, 54)),
		Style:  style(outline.KindOutline, 8, tips(outline.TipFlat, outline.TipFlat)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "line_round",
		Lines:  lines(horizontalLine(10, 32, 54)),
		Style:  style(outline.KindOutline, 8),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "line_squared",
		Lines:  lines(horizontalLine(10, 32, 54)),
		Style:  style(outline.KindAdvancedOutline, 8, tips(outline.TipSquared, outline.TipSquared)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "line_peak",
		Lines:  lines(horizontalLine(10, 32, 54)),
		Style:  style(outline.KindAdvancedOutline, 8, tips(outline.TipPeak, outline.TipPeak)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "line_mixed_tips",
		Lines:  lines(horizontalLine(10, 32, 54)),
		Style:  style(outline.KindAdvancedOutline, 8, tips(outline.TipRounded, outline.TipPeak)),
		Width:  64,
		Height: 64,
	},
	{
		Name:  "line_tip_override",
		Lines: lines(horizontalLine(10, 32, 54)),
		Widths: []outline.WidthPoint{
			{Position: 0, Width: 1, Before: outline.TipSquared},
			{Position: 1, Width: 1, After: outline.TipFlat},
		},
		Style:  style(outline.KindAdvancedOutline, 8),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner_sharp",
		Lines:  lines(corner(10, 50, 32, 14, 54, 50)),
		Style:  style(outline.KindOutline, 6, tips(outline.TipFlat, outline.TipFlat)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner_bevel",
		Lines:  lines(corner(10, 50, 32, 14, 54, 50)),
		Style:  style(outline.KindOutline, 6, tips(outline.TipFlat, outline.TipFlat), cusp(outline.CuspBevel)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner_rounded",
		Lines:  lines(corner(10, 50, 32, 14, 54, 50)),
		Style:  style(outline.KindAdvancedOutline, 6, tips(outline.TipFlat, outline.TipFlat), cusp(outline.CuspRounded)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "vertex_widths",
		Lines:  []outline.Centerline{taperedLine(10, 54, 32)},
		Style:  style(outline.KindOutline, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "vertex_widths_by_segment",
		Lines:  []outline.Centerline{taperedLine(10, 54, 32)},
		Style:  style(outline.KindOutline, 4, func(st *outline.Style) { st.Homogeneous = false }),
		Width:  64,
		Height: 64,
	},
}

// horizontalLine builds a horizontal line segment.
func horizontalLine(x1, y, x2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y}}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y}})
	}
}

// corner builds a path with two line segments meeting at a corner.
func corner(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{{X: x3, Y: y3}})
	}
}

// taperedLine builds a horizontal line with three unevenly spaced
// vertices, getting wider from left to right.
func taperedLine(x1, x2, y float64) outline.Centerline {
	line := polyline(1, pt(x1, y), pt(x1+(x2-x1)/4, y), pt(x2, y))
	line.Points[0].Width = 0.25
	line.Points[2].Width = 2
	return line
}
