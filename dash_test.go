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
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDashIntervals(t *testing.T) {
	cases := []struct {
		name   string
		items  []DashItem
		offset float64
		total  float64
		want   []dashInterval
	}{
		{
			name:  "plain",
			items: []DashItem{{Offset: 1, Length: 2}},
			total: 10,
			want: []dashInterval{
				{start: 1, end: 3},
				{start: 4, end: 6},
				{start: 7, end: 9},
			},
		},
		{
			name:   "shifted",
			items:  []DashItem{{Offset: 1, Length: 2}},
			offset: 1,
			total:  10,
			want: []dashInterval{
				{start: 0, end: 1, clippedStart: true},
				{start: 2, end: 4},
				{start: 5, end: 7},
				{start: 8, end: 10},
			},
		},
		{
			name:   "negative offset",
			items:  []DashItem{{Offset: 1, Length: 2}},
			offset: -1,
			total:  10,
			want: []dashInterval{
				{start: 0, end: 2},
				{start: 3, end: 5},
				{start: 6, end: 8},
				{start: 9, end: 10, clippedEnd: true},
			},
		},
		{
			name: "tips",
			items: []DashItem{
				{Offset: 0, Length: 1, Before: TipSquared},
				{Offset: 1, Length: 1, After: TipPeak},
			},
			total: 5,
			want: []dashInterval{
				{start: 0, end: 1, before: TipSquared},
				{start: 2, end: 3, after: TipPeak},
				{start: 3, end: 4, before: TipSquared},
			},
		},
		{
			name:  "zero length dashes",
			items: []DashItem{{Offset: 1, Length: 0}},
			total: 10,
		},
		{
			name:  "empty pattern",
			items: []DashItem{{}},
			total: 10,
		},
		{
			name:  "empty centerline",
			items: []DashItem{{Offset: 1, Length: 1}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := dashIntervals(c.items, c.offset, c.total)
			diff(t, c.want, got,
				cmp.AllowUnexported(dashInterval{}),
				cmpopts.EquateApprox(0, 1e-12),
				cmpopts.EquateEmpty())
		})
	}
}

func TestDashIntervalsCoverage(t *testing.T) {
	// The dashes of the pattern cover exactly the fraction
	// dash/(gap+dash) of a long centerline.
	items := []DashItem{{Offset: 0.3, Length: 0.7}, {Offset: 0.5, Length: 0.5}}
	for _, offset := range []float64{0, 0.25, 1.9, -7.1} {
		dashes := dashIntervals(items, offset, 200)
		sum := 0.0
		for i, d := range dashes {
			if d.end <= d.start {
				t.Fatalf("offset %g: empty dash %v", offset, d)
			}
			if i > 0 && d.start < dashes[i-1].end {
				t.Fatalf("offset %g: overlapping dashes", offset)
			}
			sum += d.end - d.start
		}
		if math.Abs(sum/200-0.6) > 0.01 {
			t.Errorf("offset %g: dashes cover %g", offset, sum/200)
		}
	}
}

func TestDashedStroke(t *testing.T) {
	line := polyline(pt(0, 0), pt(10, 0))
	st := plainStyle(KindAdvancedOutline)
	st.Width = 2
	st.Dash = []DashItem{{Offset: 1, Length: 2}}

	res := mustTessellate(t, line, nil, st)
	got := extents(res)
	want := [][2]float64{{1, 3}, {4, 6}, {7, 9}}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-5))
}

func TestDashTips(t *testing.T) {
	line := polyline(pt(0, 0), pt(10, 0))
	st := plainStyle(KindAdvancedOutline)
	st.Width = 2
	st.StartTip = TipRounded
	st.EndTip = TipSquared
	st.DashOffset = 1.5
	st.Dash = []DashItem{{Offset: 1, Length: 2, Before: TipPeak}}

	// The first dash is cut by the start of the centerline and gets the
	// rounded start tip, the last one is cut by the end and gets the
	// squared end tip.
	res := mustTessellate(t, line, nil, st)
	got := extents(res)
	want := [][2]float64{{-1, 1.5}, {1.5, 4.5}, {4.5, 7.5}, {7.5, 11}}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-5))
}

func TestDashedLoop(t *testing.T) {
	line := polyline(pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10))
	line.Loop = true
	st := plainStyle(KindAdvancedOutline)
	st.Dash = []DashItem{{Offset: 5, Length: 5}}

	res := mustTessellate(t, line, nil, st)
	if len(res.Polygons) != 4 {
		t.Fatalf("got %d dashes, want 4", len(res.Polygons))
	}

	// every dash covers the second half of one side of the square
	for i, poly := range res.Polygons {
		for _, p := range poly {
			d := distToPolyline(p, pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10), pt(0, 0))
			if d > 0.5+1e-6 {
				t.Errorf("dash %d: point %v at distance %g", i, p, d)
			}
		}
	}
}

func TestNoDashes(t *testing.T) {
	line := polyline(pt(0, 0), pt(10, 0))
	st := NewStyle(KindAdvancedOutline)
	st.Dash = []DashItem{{Offset: 3, Length: 0}}

	res, err := Tessellate(line, nil, st)
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsEmpty() || res.Empty != emptyNoDashes {
		t.Errorf("got %d polygons, reason %q", len(res.Polygons), res.Empty)
	}
}

// extents returns the x-range of every polygon in res.
func extents(res *Result) [][2]float64 {
	var ext [][2]float64
	for _, poly := range res.Polygons {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, p := range poly {
			lo = min(lo, p.X)
			hi = max(hi, p.X)
		}
		ext = append(ext, [2]float64{lo, hi})
	}
	return ext
}
