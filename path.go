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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FromPath converts every subpath of p into a centerline.
//
// All BlinePoints get width 1 and split tangents, so that corners of the
// path are kept.  Closed subpaths become loops.  Subpaths consisting of a
// single MoveTo are omitted.
func FromPath(p path.Path) []Centerline {
	var res []Centerline
	var cur []BlinePoint

	flush := func(loop bool) {
		if len(cur) >= 2 && loop {
			first, last := &cur[0], cur[len(cur)-1]
			if first.Vertex == last.Vertex {
				first.Tangent1 = last.Tangent1
				cur = cur[:len(cur)-1]
			}
		}
		if len(cur) >= 2 || len(cur) == 1 && loop {
			res = append(res, Centerline{Points: cur, Loop: loop})
		}
		cur = nil
	}
	point := func(v, t1 vec.Vec2) {
		cur = append(cur, BlinePoint{Vertex: v, Tangent1: t1, Width: 1, SplitTangent: true})
	}

	for cmd, pts := range p {
		if cmd != path.CmdMoveTo && len(cur) == 0 {
			continue
		}
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			point(pts[0], vec.Vec2{})
		case path.CmdLineTo:
			point(pts[0], vec.Vec2{})
		case path.CmdQuadTo:
			prev := &cur[len(cur)-1]
			prev.Tangent2 = pts[0].Sub(prev.Vertex).Mul(2)
			point(pts[1], pts[1].Sub(pts[0]).Mul(2))
		case path.CmdCubeTo:
			prev := &cur[len(cur)-1]
			prev.Tangent2 = pts[0].Sub(prev.Vertex).Mul(3)
			point(pts[2], pts[2].Sub(pts[1]).Mul(3))
		case path.CmdClose:
			flush(true)
		}
	}
	flush(false)
	return res
}

// Segment is a cubic Hermite segment in the legacy segment list format.
type Segment struct {
	P1, T1 vec.Vec2
	P2, T2 vec.Vec2
}

// FromSegments converts a segment list into a centerline.  The end point of
// every segment is expected to coincide with the start of the next one;
// only the start points are used, apart from the end of the last segment
// of an open centerline.
func FromSegments(segs []Segment, loop bool) Centerline {
	line := Centerline{Loop: loop}
	if len(segs) == 0 {
		return line
	}
	for i, s := range segs {
		in := s.T1
		if i > 0 {
			in = segs[i-1].T2
		} else if loop {
			in = segs[len(segs)-1].T2
		}
		line.Points = append(line.Points, BlinePoint{
			Vertex:       s.P1,
			Tangent1:     in,
			Tangent2:     s.T1,
			Width:        1,
			SplitTangent: true,
		})
	}
	if !loop {
		last := segs[len(segs)-1]
		line.Points = append(line.Points, BlinePoint{
			Vertex:       last.P2,
			Tangent1:     last.T2,
			Tangent2:     last.T2,
			Width:        1,
			SplitTangent: true,
		})
	}
	return line
}

// Path returns the centerline as a path of cubic Bézier curves.
func (c Centerline) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		n := c.numSegments()
		if n == 0 {
			return
		}
		if !yield(path.CmdMoveTo, []vec.Vec2{c.Points[0].Vertex}) {
			return
		}
		for i := range n {
			b := c.segment(i)
			ctrl := []vec.Vec2{b.P0.Add(b.T0.Mul(1.0 / 3)), b.P1.Sub(b.T1.Mul(1.0 / 3)), b.P1}
			if !yield(path.CmdCubeTo, ctrl) {
				return
			}
		}
		if c.Loop {
			yield(path.CmdClose, nil)
		}
	}
}

// Path returns the polygons of the result as a path, one closed subpath per
// polygon.
func (r *Result) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, poly := range r.Polygons {
			if len(poly) == 0 {
				continue
			}
			if !yield(path.CmdMoveTo, poly[:1]) {
				return
			}
			for i := 1; i < len(poly); i++ {
				if !yield(path.CmdLineTo, poly[i:i+1]) {
					return
				}
			}
			if !yield(path.CmdClose, nil) {
				return
			}
		}
	}
}
