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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/outline"
)

var ctmCases = []TestCase{
	// uniform scaling
	{
		Name:   "scale_2x",
		Lines:  lines(cornerCentered(0, 10, math.Pi/2)),
		Style:  style(outline.KindAdvancedOutline, 4),
		Width:  128,
		Height: 128,
		CTM:    matrix.Scale(2, 2).Translate(64, 64),
	},
	{
		Name:   "scale_half",
		Lines:  lines(circle(0, 0, 50).Iter()),
		Style:  style(outline.KindAdvancedOutline, 12),
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(0.5, 0.5).Translate(32, 32),
	},
	{
		Name:   "scale_10x",
		Lines:  lines(cubicCurve(-4, 3, -2, -4, 2, -4, 4, 3).Iter()),
		Widths: []outline.WidthPoint{wp(0, 0.2), wp(0.5, 1), wp(1, 0.2)},
		Style:  style(outline.KindAdvancedOutline, 1.5, smooth(1)),
		Width:  128,
		Height: 128,
		CTM:    matrix.Scale(10, 10).Translate(64, 64),
	},

	// rotation
	{
		Name:   "rotate_45deg",
		Lines:  lines(horizontalLineCentered(-20, 0, 20)),
		Style:  style(outline.KindAdvancedOutline, 8, tips(outline.TipSquared, outline.TipPeak)),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "rotate_5deg",
		Lines:  lines(horizontalLineCentered(-24, 0, 24)),
		Widths: []outline.WidthPoint{wp(0, 0), wp(1, 1)},
		Style:  style(outline.KindAdvancedOutline, 12, tips(outline.TipFlat, outline.TipRounded)),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(5).Translate(32, 32),
	},

	// non-uniform scaling and shear
	{
		Name:   "round_tip_nonuniform",
		Lines:  lines(horizontalLineCentered(-20, 0, 20)),
		Style:  style(outline.KindOutline, 8),
		Width:  128,
		Height: 64,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:   "circle_to_ellipse",
		Lines:  lines(circle(0, 0, 20).Iter()),
		Style:  style(outline.KindAdvancedOutline, 4),
		Width:  128,
		Height: 64,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:   "shear_horizontal",
		Lines:  lines(cornerCentered(0, 8, math.Pi/3)),
		Style:  style(outline.KindAdvancedOutline, 6, cusp(outline.CuspRounded)),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:   "rounded_cusp_rotated",
		Lines:  lines(cornerCentered(0, 8, math.Pi/3)),
		Style:  style(outline.KindAdvancedOutline, 6, cusp(outline.CuspRounded), tips(outline.TipFlat, outline.TipFlat)),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:   "dash_scaled",
		Lines:  lines(horizontalLineCentered(-25, 0, 25)),
		Style:  style(outline.KindAdvancedOutline, 4, dash(0, on(3, 5))),
		Width:  128,
		Height: 64,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},
}

// horizontalLineCentered creates a horizontal line segment.
func horizontalLineCentered(x1, y, x2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y) {
			return
		}
		lineTo(yield, x2, y)
	}
}

// cornerCentered creates a corner path with the tip at (cx, cy) and the
// given opening angle.
func cornerCentered(cx, cy float64, angle float64) path.Path {
	length := 20.0
	halfAngle := angle / 2
	return func(yield func(path.Command, []vec.Vec2) bool) {
		// First arm extends up-left
		x1 := cx - length*math.Sin(halfAngle)
		y1 := cy - length*math.Cos(halfAngle)
		// Second arm extends up-right
		x2 := cx + length*math.Sin(halfAngle)
		y2 := cy - length*math.Cos(halfAngle)

		if !moveTo(yield, x1, y1) {
			return
		}
		if !lineTo(yield, cx, cy) {
			return
		}
		lineTo(yield, x2, y2)
	}
}
