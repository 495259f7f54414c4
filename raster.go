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

package outline

import (
	"cmp"
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillRule selects how overlapping polygons are combined.
type FillRule int

const (
	// NonZero fills every point with a nonzero winding number.  This is
	// the rule the polygons of a Result are meant to be filled with.
	NonZero FillRule = iota

	// EvenOdd fills every point with an odd winding number.
	EvenOdd
)

// rasterEdge is a non-horizontal line segment in device coordinates.
type rasterEdge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

func (e *rasterEdge) yMin() float64 { return min(e.y0, e.y1) }
func (e *rasterEdge) yMax() float64 { return max(e.y0, e.y1) }

// Rasteriser computes anti-aliased pixel coverage for filled polygons and
// paths.  It uses an active edge list and processes one scanline at a time.
// Buffers are reused between calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts the output to this integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	Flatness float64

	cover  []float32
	area   []float32
	edges  []rasterEdge
	active []int

	// device space bounding box of the collected edges
	bbox rect.Rect
}

// NewRasteriser returns a Rasteriser with the given clip rectangle, the
// identity transformation and the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// FillResult fills the polygons of a tessellation result.
// The emit callback receives the coverage of one scanline at a time,
// starting at pixel xMin; the slice is only valid during the call.
func (r *Rasteriser) FillResult(res *Result, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	r.resetEdges()
	for _, poly := range res.Polygons {
		if len(poly) < 2 {
			continue
		}
		for i := 1; i < len(poly); i++ {
			r.addEdge(poly[i-1], poly[i])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.scan(rule, emit)
}

// FillPath fills a path.  Open subpaths are closed implicitly.
func (r *Rasteriser) FillPath(p path.Path, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	r.resetEdges()

	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			c, q := pts[0], pts[1]
			r.flattenCubic(current, current.Add(c.Sub(current).Mul(2.0/3)), q.Add(c.Sub(q).Mul(2.0/3)), q)
			current = q
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2])
			current = pts[2]
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}
	r.scan(rule, emit)
}

// Alpha renders the result into an alpha mask covering the clip rectangle.
func (r *Rasteriser) Alpha(res *Result, rule FillRule) *image.Alpha {
	bounds := image.Rect(int(r.Clip.LLx), int(r.Clip.LLy), int(r.Clip.URx), int(r.Clip.URy))
	img := image.NewAlpha(bounds)
	r.FillResult(res, rule, func(y, xMin int, coverage []float32) {
		row := img.Pix[img.PixOffset(xMin, y):]
		for i, c := range coverage {
			row[i] = uint8(c*255 + 0.5)
		}
	})
	return img
}

// flattenCubic approximates a cubic Bézier curve by line segments.
// The number of segments follows Wang's formula, in device space.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		n = max(int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))), 1)
	}

	c := Hermite{P0: p0, P1: p3, T0: p1.Sub(p0).Mul(3), T1: p3.Sub(p2).Mul(3)}
	prev := p0
	for i := 1; i <= n; i++ {
		pt := c.Position(float64(i) / float64(n))
		if i == n {
			pt = p3
		}
		r.addEdge(prev, pt)
		prev = pt
	}
}

// linear applies the linear part of the CTM to v.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

func (r *Rasteriser) resetEdges() {
	r.edges = r.edges[:0]
	r.bbox = rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
}

// addEdge transforms the segment from p to q into device space and adds
// it to the edge list.  Horizontal edges do not contribute and are
// dropped.
func (r *Rasteriser) addEdge(p, q vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p.X + m[2]*p.Y + m[4]
	y0 := m[1]*p.X + m[3]*p.Y + m[5]
	x1 := m[0]*q.X + m[2]*q.Y + m[4]
	y1 := m[1]*q.X + m[3]*q.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold || math.IsNaN(dy) {
		return
	}
	r.edges = append(r.edges, rasterEdge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})

	r.bbox.LLx = min(r.bbox.LLx, x0, x1)
	r.bbox.URx = max(r.bbox.URx, x0, x1)
	r.bbox.LLy = min(r.bbox.LLy, y0, y1)
	r.bbox.URy = max(r.bbox.URy, y0, y1)
}

// scan converts the collected edges into coverage values, one scanline at
// a time.
func (r *Rasteriser) scan(rule FillRule, emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b rasterEdge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, top, bot, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of e within the scanline [top, bot) to
// the cover and area buffers, which are indexed by x - xMin.
//
// Every piece of the edge inside a pixel adds its signed height to cover,
// and the part of this height to the right of the edge to area.  Summing
// cover from the left then gives the winding number at each pixel.
func (r *Rasteriser) accumulate(e *rasterEdge, top, bot float64, xMin, xMax int) bool {
	top = max(top, e.yMin())
	bot = min(bot, e.yMax())
	if bot <= top {
		return false
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(top-e.y0)
	xb := e.x0 + e.dxdy*(bot-e.y0)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))
	if left >= xMax {
		return false
	}

	add := func(pix int, yTop, yBot float64) {
		c := sign * float32(yBot-yTop)
		if pix < xMin {
			r.cover[0] += c
			r.area[0] += c
			return
		}
		if pix >= xMax {
			return
		}
		xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
		r.cover[pix-xMin] += c
		r.area[pix-xMin] += c * float32(1-(xMid-float64(pix)))
	}

	if left == right {
		add(left, top, bot)
		return true
	}

	// The edge crosses several pixel columns.  Split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for pix := left; pix <= right; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), top)
		hi := min(max(ya, yb), bot)
		if hi > lo {
			add(pix, lo, hi)
		}
	}
	return true
}

// integrate turns the accumulated cover and area of one scanline into
// coverage values in [0, 1], in place.
func integrate(cover, area []float32, rule FillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == EvenOdd {
			raw -= 2 * float32(int(raw/2))
			raw = 1 - abs32(1-raw)
		}
		cover[i] = min(raw, 1)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, and the offset of this part.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to the coverage.
	horizontalEdgeThreshold = 1e-10
)
