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
	"seehuhn.de/go/geom/vec"
)

// segment is one segment of the centerline, together with the window of
// normalized positions it covers.
type segment struct {
	curve Hermite

	// from is the index of the BlinePoint where the segment starts.
	from int

	// start and end delimit the position window of the segment.
	start, end float64

	length     float64
	degenerate bool
}

// stroker holds the prepared centerline for one tessellation pass.
type stroker struct {
	st   *Style
	line Centerline
	segs []segment
	prof *profile

	// total is the arc length of the whole centerline.
	total float64
}

// band collects the two offset boundaries of a stroke.
type band struct {
	a, b []vec.Vec2

	// first and last are the ends of the band, used for tips.
	first, last end
}

// newStroker prepares the segments and the width profile of line.
// If widths is empty, the widths of the BlinePoints are used instead.
func newStroker(line Centerline, st *Style, widths []WidthPoint) *stroker {
	n := line.numSegments()
	s := &stroker{
		st:   st,
		line: line,
		segs: make([]segment, n),
	}
	for i := range s.segs {
		h := line.segment(i)
		seg := &s.segs[i]
		seg.curve = h
		seg.from = i
		seg.degenerate = h.isPoint()
		if !seg.degenerate {
			seg.length = h.Length()
		}
		s.total += seg.length
	}

	pos := 0.0
	for i := range s.segs {
		seg := &s.segs[i]
		seg.start = pos
		if st.Homogeneous && s.total > 0 {
			pos += seg.length / s.total
		} else {
			pos = float64(i+1) / float64(n)
		}
		seg.end = pos
	}
	if n > 0 {
		s.segs[n-1].end = 1
	}

	if len(widths) == 0 {
		widths = s.vertexWidths()
	}
	s.prof = newProfile(widths, line.Loop, st.Smoothness)
	return s
}

// vertexWidths converts the widths of the BlinePoints into width points at
// the vertex positions.  If no BlinePoint has a width set, a constant
// profile of width 1 is used.
func (s *stroker) vertexWidths() []WidthPoint {
	if !s.line.hasWidths() {
		return []WidthPoint{{Position: 0, Width: 1}}
	}
	res := make([]WidthPoint, 0, len(s.line.Points))
	for i, p := range s.line.Points {
		pos := 1.0
		if i < len(s.segs) {
			pos = s.segs[i].start
		}
		if s.line.Loop && pos >= 1 {
			continue
		}
		res = append(res, WidthPoint{Position: pos, Width: p.Width})
	}
	if len(res) == 0 {
		res = append(res, WidthPoint{Width: s.line.Points[0].Width})
	}
	return res
}

// degenerate reports whether no segment of the centerline has a positive
// length.
func (s *stroker) degenerate() bool {
	for i := range s.segs {
		if !s.segs[i].degenerate {
			return false
		}
	}
	return true
}

// param converts a position inside the window of seg into the curve
// parameter of the segment.
func (s *stroker) param(seg *segment, pos float64) float64 {
	d := seg.end - seg.start
	if d <= 0 {
		return 0
	}
	u := min(max((pos-seg.start)/d, 0), 1)
	if !s.st.Homogeneous || u == 0 || u == 1 {
		return u
	}
	return seg.curve.ParamAtLength(u * seg.length)
}

// positionAtLength returns the normalized position at arc length l,
// measured from the start of the centerline.
func (s *stroker) positionAtLength(l float64) float64 {
	if l <= 0 || s.total <= 0 {
		return 0
	}
	if l >= s.total {
		return 1
	}
	if s.st.Homogeneous {
		return l / s.total
	}

	acc := 0.0
	for i := range s.segs {
		seg := &s.segs[i]
		if seg.length > 0 && l <= acc+seg.length {
			t := seg.curve.ParamAtLength(l - acc)
			return seg.start + t*(seg.end-seg.start)
		}
		acc += seg.length
	}
	return 1
}

// normalAt returns the unit normal of seg at parameter t.  Where the
// derivative vanishes, the derivative at a parameter slightly inside the
// segment is used instead.
func (s *stroker) normalAt(seg *segment, t float64) (vec.Vec2, bool) {
	if n, ok := normalize(perp(seg.curve.Derivative(t))); ok {
		return n, true
	}
	adj := s.st.TangentAdjust
	tc := min(max(t, adj), 1-adj)
	return normalize(perp(seg.curve.Derivative(tc)))
}

// stroke samples both offset boundaries between the positions lo and hi.
//
// If closed is set, the range covers a whole looped centerline and the
// vertex at position 0 is treated as an interior vertex.  If cusps is set,
// corner geometry is inserted at vertices strictly inside the range.
func (s *stroker) stroke(lo, hi float64, closed, cusps bool) *band {
	st := s.st
	adj := st.TangentAdjust
	bd := &band{}
	started := false

	var lastTangent vec.Vec2
	if closed {
		for i := len(s.segs) - 1; i >= 0; i-- {
			if !s.segs[i].degenerate {
				lastTangent = s.segs[i].curve.Derivative(1 - adj)
				break
			}
		}
	}

	carry := s.prof.carryAt(lo)
	var prevNormal vec.Vec2
	for i := range s.segs {
		seg := &s.segs[i]
		if seg.end < lo || seg.start > hi ||
			seg.end == lo && seg.start < lo || seg.start == hi && seg.end > hi {
			continue
		}
		cs, ce := max(seg.start, lo), min(seg.end, hi)

		// Degenerate segments still consume their width points.
		spans, next := s.prof.resolve(carry, cs, ce)
		carry = next
		if seg.degenerate {
			continue
		}

		interior := cs == seg.start && (cs > lo || closed)
		if cusps && interior && len(spans) > 0 && s.line.Points[seg.from].corner() {
			hw := st.halfWidth(s.prof.at(spans[0].lo, spans[0].hi, cs))
			a, b := st.cusp(seg.curve.P0, lastTangent, seg.curve.Derivative(adj), hw)
			bd.a = append(bd.a, a...)
			bd.b = append(bd.b, b...)
		}

		emitted := false
		for _, sp := range spans {
			t0 := s.param(seg, sp.start)
			t1 := s.param(seg, sp.end)
			if t1-t0 < paramEpsilon {
				continue
			}
			for k := 0; k <= st.Samples; k++ {
				if k == 0 && emitted {
					continue
				}
				var pos, t float64
				switch k {
				case 0:
					pos, t = sp.start, t0
				case st.Samples:
					pos, t = sp.end, t1
				default:
					pos = sp.start + (sp.end-sp.start)*float64(k)/float64(st.Samples)
					t = s.param(seg, pos)
				}

				nrm, ok := s.normalAt(seg, t)
				if !ok {
					if !started {
						continue
					}
					nrm = prevNormal
				}
				prevNormal = nrm

				p := seg.curve.Position(t)
				hw := st.halfWidth(s.prof.at(sp.lo, sp.hi, pos))
				bd.a = append(bd.a, p.Add(nrm.Mul(hw)))
				bd.b = append(bd.b, p.Sub(nrm.Mul(hw)))
				if !started {
					bd.first = end{vertex: p, normal: nrm.Mul(-1), hw: hw}
					started = true
				}
				bd.last = end{vertex: p, normal: nrm, hw: hw}
				emitted = true
			}
		}
		lastTangent = seg.curve.Derivative(1 - adj)
	}
	return bd
}

// centerline samples the centerline itself, for filled regions.
func (s *stroker) centerline() Polygon {
	var poly Polygon
	for i := range s.segs {
		seg := &s.segs[i]
		if seg.degenerate {
			continue
		}
		for k := 0; k <= s.st.Samples; k++ {
			if k == 0 && len(poly) > 0 {
				continue
			}
			poly = append(poly, seg.curve.Position(float64(k)/float64(s.st.Samples)))
		}
	}
	if len(poly) > 1 && poly[0] == poly[len(poly)-1] {
		poly = poly[:len(poly)-1]
	}
	return poly
}
