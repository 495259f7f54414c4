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

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Lines:  lines(twoTriangles(16, 32, 48, 32, 12)),
		Style:  style(outline.KindAdvancedOutline, 3),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "two_triangles_region",
		Lines:  lines(twoTriangles(16, 32, 48, 32, 12)),
		Style:  style(outline.KindRegion, 1),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "overlapping_rect_nonzero",
		Lines:  lines(overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54)),
		Style:  style(outline.KindRegion, 1),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "overlapping_rect_evenodd",
		Lines:  lines(overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54)),
		Style:  style(outline.KindRegion, 1),
		Rule:   outline.EvenOdd,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ring_shape",
		Lines:  lines(ringShape(32, 32, 25, 12)),
		Style:  style(outline.KindRegion, 1),
		Rule:   outline.EvenOdd,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ring_outlines",
		Lines:  lines(ringShape(32, 32, 25, 12)),
		Style:  style(outline.KindOutline, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "mixed_open_closed",
		Lines:  lines(openAndClosed()),
		Style:  style(outline.KindAdvancedOutline, 4, tips(outline.TipRounded, outline.TipPeak)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "many_small_shapes",
		Lines:  lines(manySmallShapes(4, 4)),
		Style:  style(outline.KindAdvancedOutline, 1.5),
		Width:  64,
		Height: 64,
	},
}

func moveTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdMoveTo, []vec.Vec2{{X: x, Y: y}})
}

func lineTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdLineTo, []vec.Vec2{{X: x, Y: y}})
}

func closePath(yield func(path.Command, []vec.Vec2) bool) bool {
	return yield(path.CmdClose, nil)
}

// concat joins several paths into one.
func concat(paths ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range paths {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// twoTriangles builds two separate closed triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, c := range []vec.Vec2{{X: cx1, Y: cy1}, {X: cx2, Y: cy2}} {
			if !moveTo(yield, c.X, c.Y-size) {
				return
			}
			if !lineTo(yield, c.X+size, c.Y+size) {
				return
			}
			if !lineTo(yield, c.X-size, c.Y+size) {
				return
			}
			if !closePath(yield) {
				return
			}
		}
	}
}

// overlappingRectangles builds two overlapping closed rectangles.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) path.Path {
	return concat(rectangle(x1a, y1a, x2a, y2a), rectangle(x1b, y1b, x2b, y2b))
}

// ringShape builds two concentric squares with the same orientation.
func ringShape(cx, cy, outerSize, innerSize float64) path.Path {
	return concat(
		rectangle(cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize),
		rectangle(cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize))
}

// openAndClosed builds a path with an open subpath, a lone move and a
// closed subpath.
func openAndClosed() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, 8, 12) || !lineTo(yield, 56, 12) {
			return
		}
		if !moveTo(yield, 32, 24) {
			return
		}
		if !moveTo(yield, 16, 30) || !lineTo(yield, 48, 30) || !lineTo(yield, 32, 54) {
			return
		}
		closePath(yield)
	}
}

// manySmallShapes builds a grid of small triangles.
func manySmallShapes(rows, cols int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		size := 5.0
		spacing := 14.0

		for row := range rows {
			for col := range cols {
				cx := 11.0 + float64(col)*spacing
				cy := 11.0 + float64(row)*spacing

				if !moveTo(yield, cx, cy-size) {
					return
				}
				if !lineTo(yield, cx+size, cy+size) {
					return
				}
				if !lineTo(yield, cx-size, cy+size) {
					return
				}
				if !closePath(yield) {
					return
				}
			}
		}
	}
}
