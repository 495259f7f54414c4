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

var complexCases = []TestCase{
	{
		Name:   "glyph_like",
		Lines:  lines(glyphLikeShape()),
		Style:  style(outline.KindRegion, 1),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "glyph_like_outline",
		Lines:  lines(glyphLikeShape()),
		Style:  style(outline.KindAdvancedOutline, 2),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "spiral_overlap",
		Lines:  lines(spiralPath(32, 32, 5, 25, 3)),
		Widths: []outline.WidthPoint{wp(0, 0.2), wp(1, 1.5)},
		Style:  style(outline.KindAdvancedOutline, 4, cusp(outline.CuspBevel), homogeneous),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "figure_eight",
		Lines:  lines(figureEight(32, 32, 20)),
		Style:  style(outline.KindAdvancedOutline, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "thick_tight_curve",
		Lines:  lines(tightCurve(32, 32, 15)),
		Style:  style(outline.KindAdvancedOutline, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zigzag_sharp",
		Lines:  lines(zigzagPath(10, 32, 54, 20)),
		Style:  style(outline.KindAdvancedOutline, 5, cusp(outline.CuspSharp)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zigzag_rounded",
		Lines:  lines(zigzagPath(10, 32, 54, 20)),
		Style:  style(outline.KindAdvancedOutline, 5, cusp(outline.CuspRounded)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zigzag_bevel",
		Lines:  lines(zigzagPath(10, 32, 54, 20)),
		Style:  style(outline.KindAdvancedOutline, 5, cusp(outline.CuspBevel)),
		Width:  64,
		Height: 64,
	},
	{
		// turns sharper than the cusp threshold get a spike
		Name:   "spike",
		Lines:  lines(cornerAngle(6, 40, 36, 40, 160)),
		Style:  style(outline.KindAdvancedOutline, 6, tips(outline.TipFlat, outline.TipFlat)),
		Width:  64,
		Height: 64,
	},
	{
		Name:  "spike_amount",
		Lines: lines(cornerAngle(6, 40, 36, 40, 160)),
		Style: style(outline.KindAdvancedOutline, 6, tips(outline.TipFlat, outline.TipFlat), func(st *outline.Style) {
			st.SpikeAmount = 3
		}),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "loop_corners",
		Lines:  []outline.Centerline{closed(polyline(1, pt(12, 12), pt(52, 20), pt(44, 52), pt(16, 40)))},
		Widths: []outline.WidthPoint{wp(0, 0.5), wp(0.5, 1.5)},
		Style:  style(outline.KindAdvancedOutline, 6),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "loop_corners_outline",
		Lines:  []outline.Centerline{closed(polyline(1, pt(12, 12), pt(52, 20), pt(44, 52), pt(16, 40)))},
		Style:  style(outline.KindOutline, 6),
		Width:  64,
		Height: 64,
	},
}

// glyphLikeShape builds a shape similar to a simplified lowercase 'a':
// a bowl with a stem, and a counter reached through a cut.
func glyphLikeShape() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		cx, cy := 32.0, 38.0
		r, ir := 18.0, 8.0

		if !moveTo(yield, cx+r, cy) {
			return
		}
		for _, q := range quarterArcs(cx, cy, r, r, false) {
			if !yield(path.CmdCubeTo, q[:]) {
				return
			}
		}
		// stem
		if !lineTo(yield, cx+r, 10) || !lineTo(yield, cx+r-6, 10) || !lineTo(yield, cx+r-6, cy) {
			return
		}
		// counter, in the opposite direction
		if !lineTo(yield, cx+ir, cy) {
			return
		}
		for _, q := range quarterArcs(cx, cy, ir, ir, true) {
			if !yield(path.CmdCubeTo, q[:]) {
				return
			}
		}
		closePath(yield)
	}
}

// quarterArcs returns the control points of the four cubic Bézier curves
// of an ellipse, starting at the rightmost point.  The ellipse is traced
// with decreasing y first, unless reverse is set.
func quarterArcs(cx, cy, rx, ry float64, reverse bool) [][3]vec.Vec2 {
	kx, ky := rx*kappa, ry*kappa
	s := 1.0
	if reverse {
		s = -1
	}
	return [][3]vec.Vec2{
		{pt(cx+rx, cy-s*ky), pt(cx+kx, cy-s*ry), pt(cx, cy-s*ry)},
		{pt(cx-kx, cy-s*ry), pt(cx-rx, cy-s*ky), pt(cx-rx, cy)},
		{pt(cx-rx, cy+s*ky), pt(cx-kx, cy+s*ry), pt(cx, cy+s*ry)},
		{pt(cx+kx, cy+s*ry), pt(cx+rx, cy+s*ky), pt(cx+rx, cy)},
	}
}

// spiralPath builds an Archimedean spiral that overlaps itself.
func spiralPath(cx, cy, rMin, rMax float64, turns float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		steps := max(int(turns*32), 8) // 32 segments per turn
		totalAngle := turns * 2 * math.Pi
		rGrowth := (rMax - rMin) / totalAngle

		if !moveTo(yield, cx+rMin, cy) {
			return
		}
		for i := 1; i <= steps; i++ {
			angle := float64(i) / float64(steps) * totalAngle
			r := rMin + rGrowth*angle
			if !lineTo(yield, cx+r*math.Cos(angle), cy+r*math.Sin(angle)) {
				return
			}
		}
	}
}

// figureEight builds an open figure-eight from two loops which meet in the
// center with different tangents.
func figureEight(cx, cy, size float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		r := size / 2
		k := r * kappa
		topCy := cy - r/2
		botCy := cy + r/2

		curves := [][3]vec.Vec2{
			// upper loop
			{pt(cx+k, cy-r/4), pt(cx+r, topCy+k/2), pt(cx+r, topCy)},
			{pt(cx+r, topCy-k), pt(cx+k, topCy-r), pt(cx, topCy-r)},
			{pt(cx-k, topCy-r), pt(cx-r, topCy-k), pt(cx-r, topCy)},
			{pt(cx-r, topCy+k/2), pt(cx-k, cy-r/4), pt(cx, cy)},
			// lower loop
			{pt(cx-k, cy+r/4), pt(cx-r, botCy-k/2), pt(cx-r, botCy)},
			{pt(cx-r, botCy+k), pt(cx-k, botCy+r), pt(cx, botCy+r)},
			{pt(cx+k, botCy+r), pt(cx+r, botCy+k), pt(cx+r, botCy)},
			{pt(cx+r, botCy-k/2), pt(cx+k, cy+r/4), pt(cx, cy)},
		}
		if !moveTo(yield, cx, cy) {
			return
		}
		for _, c := range curves {
			if !yield(path.CmdCubeTo, c[:]) {
				return
			}
		}
	}
}

// tightCurve builds a U-shaped curve where the inner radius is small
// relative to the stroke width, causing the inner edge to cross.
func tightCurve(cx, cy, size float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		r := size
		k := r * kappa

		if !moveTo(yield, cx-r, cy-size) || !lineTo(yield, cx-r, cy) {
			return
		}
		if !yield(path.CmdCubeTo, []vec.Vec2{pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)}) {
			return
		}
		if !yield(path.CmdCubeTo, []vec.Vec2{pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)}) {
			return
		}
		lineTo(yield, cx+r, cy-size)
	}
}

// zigzagPath builds a zigzag pattern where adjacent thick strokes overlap.
func zigzagPath(x1, cy, x2, amplitude float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		const segments = 5
		segWidth := (x2 - x1) / segments

		if !moveTo(yield, x1, cy) {
			return
		}
		for i := 1; i <= segments; i++ {
			y := cy + amplitude
			if i%2 == 1 {
				y = cy - amplitude
			}
			if !lineTo(yield, x1+float64(i)*segWidth, y) {
				return
			}
		}
	}
}
