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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/outline"
)

var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Lines:  lines(offsetSquare(20, 20, 24, 0.0).Iter()),
		Style:  style(outline.KindAdvancedOutline, 4, cusp(outline.CuspSharp)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_25",
		Lines:  lines(offsetSquare(20, 20, 24, 0.25).Iter()),
		Style:  style(outline.KindAdvancedOutline, 4, cusp(outline.CuspSharp)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_50",
		Lines:  lines(offsetSquare(20, 20, 24, 0.5).Iter()),
		Style:  style(outline.KindAdvancedOutline, 4, cusp(outline.CuspSharp)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_75",
		Lines:  lines(offsetSquare(20, 20, 24, 0.75).Iter()),
		Style:  style(outline.KindAdvancedOutline, 4, cusp(outline.CuspSharp)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "thin_line_y_integer",
		Lines:  lines(horizontalLineAt(5, 10.0, 59).Iter()),
		Style:  style(outline.KindOutline, 1, tips(outline.TipFlat, outline.TipFlat)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "thin_line_y_half",
		Lines:  lines(horizontalLineAt(5, 10.5, 59).Iter()),
		Style:  style(outline.KindOutline, 1, tips(outline.TipFlat, outline.TipFlat)),
		Width:  64,
		Height: 64,
	},
	{
		Name: "zero_length_segment",
		Lines: []outline.Centerline{
			polyline(1, pt(8, 32), pt(32, 32), pt(32, 32), pt(56, 32)),
		},
		Widths: []outline.WidthPoint{wp(0, 0.5), wp(1, 1.5)},
		Style:  style(outline.KindAdvancedOutline, 8),
		Width:  64,
		Height: 64,
	},
	{
		Name: "coincident_points",
		Lines: []outline.Centerline{
			polyline(1, pt(32, 32), pt(32, 32), pt(32, 32)),
		},
		Style:  style(outline.KindAdvancedOutline, 8),
		Width:  64,
		Height: 64,
	},
	{
		Name: "coincident_width_points",
		Lines: []outline.Centerline{
			polyline(1, pt(8, 32), pt(56, 32)),
		},
		Widths: []outline.WidthPoint{wp(0, 0.5), wp(0.5, 0.5), wp(0.5, 2), wp(1, 2)},
		Style:  style(outline.KindAdvancedOutline, 8),
		Width:  64,
		Height: 64,
	},
	{
		Name: "zero_width",
		Lines: []outline.Centerline{
			polyline(1, pt(8, 32), pt(56, 32)),
		},
		Style:  style(outline.KindOutline, 0),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "large_coord_centered",
		Lines:  lines(horizontalLineAt(1e6-22, 1e6, 1e6+22).Iter()),
		Style:  style(outline.KindAdvancedOutline, 6),
		CTM:    matrix.Identity.Translate(32-1e6, 32-1e6),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "float64_precision",
		Lines:  lines(float64PrecisionShape().Iter()),
		Style:  style(outline.KindRegion, 1),
		Width:  64,
		Height: 64,
	},
}

// offsetSquare builds a closed square with a subpixel offset applied to
// all coordinates.
func offsetSquare(x1, y1, size, offset float64) *shape {
	ox1 := x1 + offset
	oy1 := y1 + offset
	ox2 := x1 + size + offset
	oy2 := y1 + size + offset

	return (&shape{}).
		MoveTo(pt(ox1, oy1)).
		LineTo(pt(ox2, oy1)).
		LineTo(pt(ox2, oy2)).
		LineTo(pt(ox1, oy2)).
		Close()
}

// horizontalLineAt builds a horizontal line segment at a specific y position.
func horizontalLineAt(x1, y, x2 float64) *shape {
	return (&shape{}).
		MoveTo(pt(x1, y)).
		LineTo(pt(x2, y))
}

// float64PrecisionShape builds a shape using coordinates that require
// full float64 precision to represent accurately.
func float64PrecisionShape() *shape {
	// These values differ only in the low bits of float64
	base := 32.0
	delta1 := 0.123456789012345
	delta2 := 0.123456789012346

	x1 := base - 10 + delta1
	y1 := base - 10 + delta1
	x2 := base + 10 + delta2
	y2 := base + 10 + delta2

	return (&shape{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}
