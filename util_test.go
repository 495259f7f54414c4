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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// corner returns a BlinePoint without tangents, so that both adjacent
// segments are straight lines.
func corner(x, y, w float64) BlinePoint {
	return BlinePoint{Vertex: pt(x, y), Width: w, SplitTangent: true}
}

// polyline returns an open centerline through the given points, with all
// widths set to 1.
func polyline(pts ...vec.Vec2) Centerline {
	var line Centerline
	for _, p := range pts {
		line.Points = append(line.Points, corner(p.X, p.Y, 1))
	}
	return line
}

// circle returns a looped centerline approximating a circle, using four
// points.
func circle(center vec.Vec2, r float64) Centerline {
	const k = 1.6568542494923802 // 3 * 4/3 * (√2 - 1)
	var line Centerline
	line.Loop = true
	for i := range 4 {
		a := float64(i) * math.Pi / 2
		dir := pt(math.Cos(a), math.Sin(a))
		tan := pt(-math.Sin(a), math.Cos(a)).Mul(k * r)
		line.Points = append(line.Points, BlinePoint{
			Vertex:   center.Add(dir.Mul(r)),
			Tangent1: tan,
			Width:    1,
		})
	}
	return line
}

// distToSegment returns the distance from p to the line segment from a to b.
func distToSegment(p, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := min(max(p.Sub(a).Dot(d)/l2, 0), 1)
	return p.Sub(a.Add(d.Mul(t))).Length()
}

// distToPolyline returns the distance from p to the polyline through pts.
func distToPolyline(p vec.Vec2, pts ...vec.Vec2) float64 {
	best := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		best = min(best, distToSegment(p, pts[i-1], pts[i]))
	}
	return best
}

func isFinite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// mustTessellate runs Tessellate and fails the test on error.
func mustTessellate(t *testing.T, line Centerline, widths []WidthPoint, st *Style) *Result {
	t.Helper()
	res, err := Tessellate(line, widths, st)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	for i, poly := range res.Polygons {
		if len(poly) < 3 {
			t.Errorf("polygon %d has %d points", i, len(poly))
		}
		for j, p := range poly {
			if !isFinite(p) {
				t.Fatalf("polygon %d, point %d is %v", i, j, p)
			}
		}
	}
	return res
}

// pathBuilder records path commands for tests.
type pathBuilder struct {
	cmds []path.Command
	pts  [][]vec.Vec2
}

func (b *pathBuilder) add(cmd path.Command, pts ...vec.Vec2) *pathBuilder {
	b.cmds = append(b.cmds, cmd)
	b.pts = append(b.pts, pts)
	return b
}

func (b *pathBuilder) MoveTo(p vec.Vec2) *pathBuilder { return b.add(path.CmdMoveTo, p) }
func (b *pathBuilder) LineTo(p vec.Vec2) *pathBuilder { return b.add(path.CmdLineTo, p) }
func (b *pathBuilder) QuadTo(c, p vec.Vec2) *pathBuilder {
	return b.add(path.CmdQuadTo, c, p)
}
func (b *pathBuilder) CubeTo(c1, c2, p vec.Vec2) *pathBuilder {
	return b.add(path.CmdCubeTo, c1, c2, p)
}
func (b *pathBuilder) Close() *pathBuilder { return b.add(path.CmdClose) }

// Iter returns the recorded commands as a path.
func (b *pathBuilder) Iter() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, cmd := range b.cmds {
			if !yield(cmd, b.pts[i]) {
				return
			}
		}
	}
}

// collect returns the commands of p and all their points.
func collect(p path.Path) ([]path.Command, []vec.Vec2) {
	var cmds []path.Command
	var coords []vec.Vec2
	for cmd, pts := range p {
		cmds = append(cmds, cmd)
		coords = append(coords, pts...)
	}
	return cmds, coords
}
