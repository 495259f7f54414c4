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

// largeCases contains test cases on a large canvas, with many samples per
// scanline.
var largeCases = []TestCase{
	{
		Name:   "large_circle",
		Lines:  lines(circle(256, 256, 200).Iter()),
		Widths: []outline.WidthPoint{wp(0, 1), wp(0.5, 4)},
		Style:  style(outline.KindAdvancedOutline, 20, smooth(1)),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_concentric_nonzero",
		Lines:  lines(concat(rectangle(56, 56, 456, 456), rectangle(156, 156, 356, 356))),
		Style:  style(outline.KindRegion, 1),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_concentric_evenodd",
		Lines:  lines(concat(rectangle(56, 56, 456, 456), rectangle(156, 156, 356, 356))),
		Style:  style(outline.KindRegion, 1),
		Rule:   outline.EvenOdd,
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_diamond",
		Lines:  []outline.Centerline{closed(polyline(1, pt(256, 76), pt(436, 256), pt(256, 436), pt(76, 256)))},
		Style:  style(outline.KindAdvancedOutline, 24, cusp(outline.CuspRounded)),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_grid",
		Lines:  lines(rectangleGrid(8, 8, 512, 512, 8).Iter()),
		Style:  style(outline.KindOutline, 4),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_clipped",
		Lines:  lines(horizontalLine(-100, 256, 612)),
		Widths: []outline.WidthPoint{wp(0, 0.2), wp(1, 1)},
		Style:  style(outline.KindAdvancedOutline, 300),
		Width:  512,
		Height: 512,
	},
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *shape {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &shape{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap

			p = p.
				MoveTo(pt(x1, y1)).
				LineTo(pt(x2, y1)).
				LineTo(pt(x2, y2)).
				LineTo(pt(x1, y2)).
				Close()
		}
	}
	return p
}
