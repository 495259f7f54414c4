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

var widthCases = []TestCase{
	{
		Name:   "taper",
		Lines:  lines(horizontalLine(8, 32, 56)),
		Widths: []outline.WidthPoint{wp(0, 0), wp(1, 1)},
		Style:  style(outline.KindAdvancedOutline, 24, tips(outline.TipFlat, outline.TipFlat)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bulge_linear",
		Lines:  lines(horizontalLine(8, 32, 56)),
		Widths: []outline.WidthPoint{wp(0, 0.1), wp(0.5, 1), wp(1, 0.1)},
		Style:  style(outline.KindAdvancedOutline, 24),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bulge_smooth",
		Lines:  lines(horizontalLine(8, 32, 56)),
		Widths: []outline.WidthPoint{wp(0, 0.1), wp(0.5, 1), wp(1, 0.1)},
		Style:  style(outline.KindAdvancedOutline, 24, smooth(1)),
		Width:  64,
		Height: 64,
	},
	{
		Name:  "gap",
		Lines: lines(horizontalLine(8, 32, 56)),
		Widths: []outline.WidthPoint{
			wp(0, 1),
			{Position: 0.4, Width: 1, After: outline.TipFlat},
			{Position: 0.6, Width: 1, Before: outline.TipFlat},
			wp(1, 1),
		},
		Style:  style(outline.KindAdvancedOutline, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "between_vertices",
		Lines:  lines(corner(8, 52, 32, 12, 56, 52)),
		Widths: []outline.WidthPoint{wp(0.25, 0.2), wp(0.75, 1)},
		Style:  style(outline.KindAdvancedOutline, 10, cusp(outline.CuspBevel)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "by_segment",
		Lines:  lines(corner(8, 52, 16, 40, 56, 12)),
		Widths: []outline.WidthPoint{wp(0, 0), wp(0.5, 1), wp(1, 0)},
		Style:  style(outline.KindAdvancedOutline, 10, smooth(0.5)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "homogeneous",
		Lines:  lines(corner(8, 52, 16, 40, 56, 12)),
		Widths: []outline.WidthPoint{wp(0, 0), wp(0.5, 1), wp(1, 0)},
		Style:  style(outline.KindAdvancedOutline, 10, smooth(0.5), homogeneous),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "loop_profile",
		Lines:  lines(circle(32, 32, 20).Iter()),
		Widths: []outline.WidthPoint{wp(0.9, 0.2), wp(0.25, 1), wp(0.5, 0.4)},
		Style:  style(outline.KindAdvancedOutline, 10, smooth(1)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "loop_wrapped_positions",
		Lines:  lines(circle(32, 32, 20).Iter()),
		Widths: []outline.WidthPoint{wp(-0.1, 0.2), wp(1.25, 1), wp(2.5, 0.4)},
		Style:  style(outline.KindAdvancedOutline, 10, smooth(1)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "expand",
		Lines:  lines(horizontalLine(12, 32, 52)),
		Widths: []outline.WidthPoint{wp(0, 0), wp(1, 1)},
		Style: style(outline.KindAdvancedOutline, 12, func(st *outline.Style) {
			st.Expand = 2
		}),
		Width:  64,
		Height: 64,
	},
	{
		Name:  "single_width_point",
		Lines: lines(cubicCurve(10, 50, 20, 10, 44, 10, 54, 50).Iter()),
		Widths: []outline.WidthPoint{
			{Position: 0.5, Width: 0.8, Before: outline.TipFlat},
		},
		Style:  style(outline.KindAdvancedOutline, 10),
		Width:  64,
		Height: 64,
	},
}
