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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/outline"
)

// TestCase defines a single tessellation test.
type TestCase struct {
	Name   string               // lowercase a-z, 0-9 and _ only
	Lines  []outline.Centerline // the centerlines, all drawn with the same style
	Widths []outline.WidthPoint // width profile (nil means the vertex widths)
	Style  *outline.Style       // tessellation parameters
	Rule   outline.FillRule     // fill rule for the resulting polygons
	Width  int                  // canvas width in pixels
	Height int                  // canvas height in pixels
	CTM    matrix.Matrix        // transformation matrix (zero-value means no transform)
}

// Tessellate runs the tessellation for every centerline of the test case
// and collects all polygons in one result.
func (tc TestCase) Tessellate() (*outline.Result, error) {
	res := &outline.Result{}
	for _, line := range tc.Lines {
		part, err := outline.Tessellate(line, tc.Widths, tc.Style)
		if err != nil {
			return nil, err
		}
		res.Polygons = append(res.Polygons, part.Polygons...)
		if res.Empty == "" {
			res.Empty = part.Empty
		}
	}
	if len(res.Polygons) > 0 {
		res.Empty = ""
	}
	return res, nil
}

// Transform returns the CTM of the test case, with the zero value replaced
// by the identity.
func (tc TestCase) Transform() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// lines converts a path into centerlines.
func lines(p path.Path) []outline.Centerline {
	return outline.FromPath(p)
}

// polyline returns an open centerline through the given points.  Adjacent
// segments meet in corners.
func polyline(w float64, pts ...vec.Vec2) outline.Centerline {
	var line outline.Centerline
	for _, p := range pts {
		line.Points = append(line.Points, outline.BlinePoint{
			Vertex:       p,
			Width:        w,
			SplitTangent: true,
		})
	}
	return line
}

// closed returns a copy of line with the loop flag set.
func closed(line outline.Centerline) outline.Centerline {
	line.Loop = true
	return line
}

// style returns a style of the given kind and width.  The options are
// applied in order.
func style(kind outline.Kind, width float64, opts ...func(*outline.Style)) *outline.Style {
	st := outline.NewStyle(kind)
	st.Width = width
	for _, opt := range opts {
		opt(st)
	}
	return st
}

func tips(start, end outline.TipType) func(*outline.Style) {
	return func(st *outline.Style) {
		st.StartTip = start
		st.EndTip = end
	}
}

func cusp(c outline.CuspType) func(*outline.Style) {
	return func(st *outline.Style) {
		st.Cusp = c
	}
}

func dash(offset float64, items ...outline.DashItem) func(*outline.Style) {
	return func(st *outline.Style) {
		st.Dash = items
		st.DashOffset = offset
	}
}

func smooth(s float64) func(*outline.Style) {
	return func(st *outline.Style) {
		st.Smoothness = s
	}
}

func homogeneous(st *outline.Style) {
	st.Homogeneous = true
}

// wp is a shorthand for a width point which interpolates on both sides.
func wp(pos, w float64) outline.WidthPoint {
	return outline.WidthPoint{Position: pos, Width: w}
}

// shape records path commands, for building test paths step by step.
type shape struct {
	cmds []path.Command
	pts  [][]vec.Vec2
}

func (s *shape) add(cmd path.Command, pts ...vec.Vec2) *shape {
	s.cmds = append(s.cmds, cmd)
	s.pts = append(s.pts, pts)
	return s
}

// MoveTo starts a new subpath at p.
func (s *shape) MoveTo(p vec.Vec2) *shape { return s.add(path.CmdMoveTo, p) }

// LineTo appends a straight line to p.
func (s *shape) LineTo(p vec.Vec2) *shape { return s.add(path.CmdLineTo, p) }

// QuadTo appends a quadratic Bézier curve with control point c.
func (s *shape) QuadTo(c, p vec.Vec2) *shape { return s.add(path.CmdQuadTo, c, p) }

// CubeTo appends a cubic Bézier curve with control points c1 and c2.
func (s *shape) CubeTo(c1, c2, p vec.Vec2) *shape { return s.add(path.CmdCubeTo, c1, c2, p) }

// Close closes the current subpath.
func (s *shape) Close() *shape { return s.add(path.CmdClose) }

// Iter returns the recorded commands as a path.
func (s *shape) Iter() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, cmd := range s.cmds {
			if !yield(cmd, s.pts[i]) {
				return
			}
		}
	}
}
