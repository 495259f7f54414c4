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
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"
)

// plainStyle returns a style without cusps and tips.
func plainStyle(kind Kind) *Style {
	st := NewStyle(kind)
	st.Cusp = CuspBevel
	st.StartTip = TipFlat
	st.EndTip = TipFlat
	return st
}

func TestOpenTriangle(t *testing.T) {
	line := polyline(pt(0, 1), pt(0, -1), pt(1, 0))
	for _, kind := range []Kind{KindOutline, KindAdvancedOutline} {
		t.Run(kind.String(), func(t *testing.T) {
			res := mustTessellate(t, line, nil, plainStyle(kind))
			if len(res.Polygons) != 1 {
				t.Fatalf("got %d polygons, want 1", len(res.Polygons))
			}

			for _, p := range res.Polygons[0] {
				d := distToPolyline(p, pt(0, 1), pt(0, -1), pt(1, 0))
				if d > 0.5+1e-9 {
					t.Errorf("point %v at distance %g", p, d)
				}

				// Near the inner side of the corner, points are closer to
				// the other segment than to the one they were built from.
				d1 := distToSegment(p, pt(0, 1), pt(0, -1))
				d2 := distToSegment(p, pt(0, -1), pt(1, 0))
				if math.Abs(d1-0.5) > 1e-9 && math.Abs(d2-0.5) > 1e-9 {
					t.Errorf("point %v at distances %g and %g from the segments", p, d1, d2)
				}
			}
		})
	}
}

func TestDefaultBlinePointWidth(t *testing.T) {
	line := Centerline{Points: []BlinePoint{
		{Vertex: pt(0, 0)},
		{Vertex: pt(10, 0)},
	}}
	for _, kind := range []Kind{KindOutline, KindAdvancedOutline} {
		t.Run(kind.String(), func(t *testing.T) {
			res := mustTessellate(t, line, nil, plainStyle(kind))
			if len(res.Polygons) != 1 {
				t.Fatalf("got %d polygons, want 1", len(res.Polygons))
			}
			for _, p := range res.Polygons[0] {
				if math.Abs(math.Abs(p.Y)-0.5) > 1e-9 {
					t.Errorf("half width at %g is %g, want 0.5", p.X, math.Abs(p.Y))
				}
			}
		})
	}

	// a single nonzero width disables the default
	line.Points[1].Width = 2
	res := mustTessellate(t, line, nil, plainStyle(KindOutline))
	first := res.Polygons[0][0]
	if math.Abs(first.Y) > 1e-9 {
		t.Errorf("half width at %g is %g, want 0", first.X, math.Abs(first.Y))
	}
}

func TestLoopedTriangle(t *testing.T) {
	line := polyline(pt(0, 1), pt(0, -1), pt(1, 0))
	line.Loop = true

	res := mustTessellate(t, line, nil, plainStyle(KindAdvancedOutline))
	if len(res.Polygons) != 2 {
		t.Fatalf("got %d polygons, want 2", len(res.Polygons))
	}
	for _, p := range res.Polygons[0] {
		for _, q := range res.Polygons[1] {
			if p.Sub(q).Length() < 1e-9 {
				t.Fatalf("polygons share the vertex %v", p)
			}
		}
	}
}

func TestWidthInterpolation(t *testing.T) {
	line := polyline(pt(0, 0), pt(1, 0))
	widths := []WidthPoint{
		{Position: 0, Width: 0},
		{Position: 1, Width: 1},
	}
	st := plainStyle(KindAdvancedOutline)
	st.Width = 2 // half width equals the profile width

	res := mustTessellate(t, line, widths, st)
	if len(res.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(res.Polygons))
	}
	for _, p := range res.Polygons[0] {
		if math.Abs(math.Abs(p.Y)-p.X) > 1e-9 {
			t.Errorf("half width at %g is %g", p.X, math.Abs(p.Y))
		}
	}
}

func TestLoopSymmetry(t *testing.T) {
	const r = 10
	center := pt(20, 20)
	st := plainStyle(KindAdvancedOutline)
	st.Width = 2

	res := mustTessellate(t, circle(center, r), nil, st)
	if len(res.Polygons) != 2 {
		t.Fatalf("got %d polygons, want 2", len(res.Polygons))
	}
	for i, want := range []float64{r + 1, r - 1} {
		for _, p := range res.Polygons[i] {
			if d := p.Sub(center).Length(); math.Abs(d-want) > 1e-2 {
				t.Errorf("side %d: point at radius %g, want %g", i, d, want)
			}
		}
	}
}

func TestIdempotent(t *testing.T) {
	line := Centerline{Points: []BlinePoint{
		{Vertex: pt(0, 0), Tangent1: pt(5, 5), Width: 1},
		{Vertex: pt(10, 0), Tangent1: pt(5, -8), Tangent2: pt(0, 4), Width: 2, SplitTangent: true},
		{Vertex: pt(12, 9), Tangent1: pt(-3, 3), Width: 0.5},
	}}
	widths := []WidthPoint{
		{Position: 0.1, Width: 1},
		{Position: 0.55, Width: 3, After: TipFlat},
		{Position: 0.9, Width: 2},
	}
	st := NewStyle(KindAdvancedOutline)
	st.Smoothness = 0.5
	st.Homogeneous = true

	first := mustTessellate(t, line, widths, st)
	second := mustTessellate(t, line, widths, st)
	diff(t, first, second)
}

func TestDegenerateSegment(t *testing.T) {
	line := polyline(pt(0, 0), pt(1, 0), pt(1, 0), pt(2, 0))
	widths := []WidthPoint{
		{Position: 0, Width: 1},
		{Position: 1, Width: 3},
	}
	st := plainStyle(KindAdvancedOutline)
	st.Width = 2

	res := mustTessellate(t, line, widths, st)
	if len(res.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(res.Polygons))
	}
	poly := res.Polygons[0]

	// two segments with Samples+1 samples on each side
	if want := 4 * (st.Samples + 1); len(poly) != want {
		t.Errorf("got %d points, want %d", len(poly), want)
	}

	// the widths on both sides of the degenerate segment follow the
	// profile positions 1/3 and 2/3
	approx := cmpopts.EquateApprox(0, 1e-9)
	var atOne []float64
	for _, p := range poly {
		if math.Abs(p.X-1) < 1e-12 && p.Y < 0 {
			atOne = append(atOne, -p.Y)
		}
	}
	diff(t, []float64{5.0 / 3, 7.0 / 3}, atOne, approx, cmpopts.SortSlices(func(a, b float64) bool { return a < b }))
}

func TestEmptyInput(t *testing.T) {
	cases := []struct {
		name string
		line Centerline
		want string
	}{
		{"no points", Centerline{}, emptyNoVertices},
		{"single point", polyline(pt(1, 1)), emptySingle},
		{"coincident points", polyline(pt(1, 1), pt(1, 1), pt(1, 1)), emptyDegenerate},
		{"point loop", Centerline{Points: []BlinePoint{corner(1, 1, 1)}, Loop: true}, emptyDegenerate},
	}
	for _, c := range cases {
		for _, kind := range []Kind{KindOutline, KindAdvancedOutline, KindRegion} {
			res, err := Tessellate(c.line, nil, NewStyle(kind))
			if err != nil {
				t.Errorf("%s/%s: %v", c.name, kind, err)
				continue
			}
			if !res.IsEmpty() || res.Empty != c.want {
				t.Errorf("%s/%s: got %d polygons, reason %q", c.name, kind, len(res.Polygons), res.Empty)
			}
		}
	}
}

func TestInvalidStyle(t *testing.T) {
	line := polyline(pt(0, 0), pt(1, 0))
	bad := []func(*Style){
		func(s *Style) { s.Samples = 0 },
		func(s *Style) { s.Smoothness = 1.5 },
		func(s *Style) { s.CuspThreshold = 0 },
		func(s *Style) { s.SpikeAmount = 0.5 },
		func(s *Style) { s.Width = math.NaN() },
		func(s *Style) { s.Kind = Kind(17) },
		func(s *Style) { s.EndTip = TipType(-1) },
		func(s *Style) { s.Dash = []DashItem{{Offset: -1, Length: 1}} },
	}
	for i, modify := range bad {
		st := NewStyle(KindAdvancedOutline)
		modify(st)
		_, err := Tessellate(line, nil, st)
		if !errors.Is(err, ErrInvalidStyle) {
			t.Errorf("%d: got error %v", i, err)
		}
	}

	if _, err := Tessellate(line, nil, nil); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("nil style: got error %v", err)
	}
}

func TestTips(t *testing.T) {
	line := polyline(pt(0, 0), pt(10, 0))
	approx := cmpopts.EquateApprox(0, 1e-9)

	extent := func(res *Result) (lo, hi float64) {
		lo, hi = math.Inf(1), math.Inf(-1)
		for _, poly := range res.Polygons {
			for _, p := range poly {
				lo = min(lo, p.X)
				hi = max(hi, p.X)
			}
		}
		return lo, hi
	}

	cases := []struct {
		tip    TipType
		lo, hi float64
	}{
		{TipFlat, 0, 10},
		{TipInterpolate, 0, 10},
		{TipRounded, -1, 11},
		{TipSquared, -1, 11},
		{TipPeak, -1, 11},
	}
	for _, c := range cases {
		st := NewStyle(KindAdvancedOutline)
		st.Width = 2
		st.StartTip = c.tip
		st.EndTip = c.tip
		res := mustTessellate(t, line, nil, st)
		lo, hi := extent(res)
		diff(t, []float64{c.lo, c.hi}, []float64{lo, hi}, approx)
	}
}

func TestRoundedTipShape(t *testing.T) {
	st := NewStyle(KindOutline)
	st.Width = 2
	res := mustTessellate(t, polyline(pt(0, 0), pt(10, 0)), nil, st)

	for _, p := range res.Polygons[0] {
		if p.X > 10 {
			// the tip stays close to a half circle around the end point
			if d := p.Sub(pt(10, 0)).Length(); d > 1.05 || d < 0.95 {
				t.Errorf("tip point %v at distance %g", p, d)
			}
		}
	}
}

func TestTipFromWidthPoint(t *testing.T) {
	line := polyline(pt(0, 0), pt(10, 0))
	widths := []WidthPoint{
		{Position: 0, Width: 1, Before: TipSquared},
		{Position: 1, Width: 1, After: TipPeak},
	}
	st := NewStyle(KindAdvancedOutline)
	st.Width = 2
	res := mustTessellate(t, line, widths, st)

	want := []vec.Vec2{pt(-1, 1), pt(-1, -1), pt(11, 0)}
	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, w := range want {
		found := false
		for _, p := range res.Polygons[0] {
			if cmp.Equal(w, p, approx) {
				found = true
			}
		}
		if !found {
			t.Errorf("tip point %v missing", w)
		}
	}
}

func TestSharpCorner(t *testing.T) {
	line := polyline(pt(0, 0), pt(10, 0), pt(10, 10))
	approx := cmpopts.EquateApprox(0, 1e-9)

	hasPoint := func(res *Result, q vec.Vec2) bool {
		for _, poly := range res.Polygons {
			for _, p := range poly {
				if cmp.Equal(q, p, approx) {
					return true
				}
			}
		}
		return false
	}

	for _, kind := range []Kind{KindOutline, KindAdvancedOutline} {
		st := plainStyle(kind)
		st.Width = 2
		st.Cusp = CuspSharp
		if res := mustTessellate(t, line, nil, st); !hasPoint(res, pt(11, -1)) {
			t.Errorf("%s: mitred corner missing", kind)
		}

		st.Cusp = CuspBevel
		if res := mustTessellate(t, line, nil, st); hasPoint(res, pt(11, -1)) {
			t.Errorf("%s: bevelled corner has a mitre", kind)
		}
	}
}

func TestLoopCornerAtSeam(t *testing.T) {
	line := polyline(pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10))
	line.Loop = true
	st := plainStyle(KindAdvancedOutline)
	st.Width = 2
	st.Cusp = CuspSharp

	res := mustTessellate(t, line, nil, st)
	approx := cmpopts.EquateApprox(0, 1e-9)

	// all four outer corners are mitred, including the one at the seam
	want := []vec.Vec2{pt(-1, -1), pt(11, -1), pt(11, 11), pt(-1, 11)}
	for _, w := range want {
		found := false
		for _, p := range res.Polygons[0] {
			found = found || cmp.Equal(w, p, approx)
		}
		if !found {
			t.Errorf("corner %v missing", w)
		}
	}
}

func TestOutlineIgnoresWidthPoints(t *testing.T) {
	line := polyline(pt(0, 0), pt(5, 5), pt(10, 0))
	st := NewStyle(KindOutline)
	st.Dash = []DashItem{{Offset: 1, Length: 1}}

	plain := mustTessellate(t, line, nil, st)
	withWidths := mustTessellate(t, line, []WidthPoint{{Position: 0.5, Width: 7}}, st)
	diff(t, plain, withWidths)
}

func TestBlinePointWidths(t *testing.T) {
	line := polyline(pt(0, 0), pt(10, 0))
	line.Points[1].Width = 3
	st := plainStyle(KindOutline)
	st.Homogeneous = false
	st.Width = 2

	res := mustTessellate(t, line, nil, st)
	for _, p := range res.Polygons[0] {
		want := 1 + 2*p.X/10
		if math.Abs(math.Abs(p.Y)-want) > 1e-9 {
			t.Errorf("half width at %g is %g, want %g", p.X, math.Abs(p.Y), want)
		}
	}
}

func TestExpandAndGrow(t *testing.T) {
	line := polyline(pt(0, 0), pt(10, 0))
	st := plainStyle(KindAdvancedOutline)
	st.Width = 2
	st.Expand = 0.5
	st.Grow = math.Log(2)

	res := mustTessellate(t, line, nil, st)
	for _, p := range res.Polygons[0] {
		if math.Abs(math.Abs(p.Y)-3) > 1e-9 {
			t.Errorf("half width %g, want 3", math.Abs(p.Y))
		}
	}
}

func TestHomogeneous(t *testing.T) {
	// the first segment is three times as long as the second
	line := polyline(pt(0, 0), pt(3, 0), pt(4, 0))
	widths := []WidthPoint{
		{Position: 0, Width: 0},
		{Position: 1, Width: 1},
	}
	st := plainStyle(KindAdvancedOutline)
	st.Width = 2

	st.Homogeneous = true
	res := mustTessellate(t, line, widths, st)
	for _, p := range res.Polygons[0] {
		if math.Abs(math.Abs(p.Y)-p.X/4) > 1e-6 {
			t.Errorf("homogeneous: half width at %g is %g", p.X, math.Abs(p.Y))
		}
	}

	st.Homogeneous = false
	res = mustTessellate(t, line, widths, st)
	for _, p := range res.Polygons[0] {
		want := p.X / 6
		if p.X > 3 {
			want = 0.5 + (p.X-3)/2
		}
		if math.Abs(math.Abs(p.Y)-want) > 1e-9 {
			t.Errorf("by segment: half width at %g is %g, want %g", p.X, math.Abs(p.Y), want)
		}
	}
}

func TestRegion(t *testing.T) {
	line := polyline(pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4))
	line.Loop = true
	res := mustTessellate(t, line, nil, NewStyle(KindRegion))
	if len(res.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(res.Polygons))
	}
	poly := res.Polygons[0]
	if want := 4 * NewStyle(KindRegion).Samples; len(poly) != want {
		t.Errorf("got %d points, want %d", len(poly), want)
	}
	for _, p := range poly {
		if distToPolyline(p, pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4), pt(0, 0)) > 1e-12 {
			t.Errorf("point %v not on the centerline", p)
		}
	}
}

func TestLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	_, err := Tessellate(Centerline{}, nil, NewStyle(KindOutline))
	if err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "level=WARN") || !strings.Contains(out, emptyNoVertices) {
		t.Errorf("unexpected log output %q", out)
	}

	buf.Reset()
	mustTessellate(t, polyline(pt(0, 0), pt(1, 0)), nil, NewStyle(KindOutline))
	if out := buf.String(); !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "polygons=1") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestSamples(t *testing.T) {
	line := polyline(pt(0, 0), pt(1, 0))
	for _, n := range []int{1, 2, 7} {
		st := plainStyle(KindAdvancedOutline)
		st.Samples = n
		res := mustTessellate(t, line, nil, st)
		if got := res.NumPoints(); got != 2*(n+1) {
			t.Errorf("Samples=%d: got %d points, want %d", n, got, 2*(n+1))
		}
	}
}
