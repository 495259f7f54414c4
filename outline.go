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

// Package outline turns spline centerlines with a variable width profile
// into closed polygons, ready to be filled with the nonzero winding rule.
//
// A centerline is a chain of cubic Hermite segments between [BlinePoint]
// values.  The width along the centerline is either given by the widths of
// the BlinePoints, or by an independent list of [WidthPoint] values.
// [Tessellate] samples the offset curves on both sides of the centerline,
// inserts corner geometry at cusps, adds tips at the ends of open strokes
// and assembles the result into polygons.
package outline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"seehuhn.de/go/geom/vec"
)

// BlinePoint is a control point of a centerline.
type BlinePoint struct {
	Vertex vec.Vec2

	// Tangent1 is the tangent of the segment arriving at Vertex.
	// Tangent2 is the tangent of the segment leaving Vertex; it is only
	// used if SplitTangent is set.  Otherwise both segments use Tangent1.
	Tangent1, Tangent2 vec.Vec2

	// Width is the width multiplier at Vertex.  It is used when no width
	// points are given, and always for KindOutline.  If Width is zero
	// for all points of a centerline, a width of 1 is used throughout.
	Width float64

	SplitTangent bool
}

// out returns the tangent of the segment leaving the point.
func (b BlinePoint) out() vec.Vec2 {
	if b.SplitTangent {
		return b.Tangent2
	}
	return b.Tangent1
}

// corner reports whether the point may carry corner geometry.
func (b BlinePoint) corner() bool {
	return b.SplitTangent && (b.Tangent1 != b.Tangent2 || b.Tangent2 == vec.Vec2{})
}

// Centerline is the spline along which a stroke is built.
type Centerline struct {
	Points []BlinePoint

	// Loop connects the last point back to the first one.
	Loop bool
}

// hasWidths reports whether any point of the centerline has a width set.
func (c Centerline) hasWidths() bool {
	for _, p := range c.Points {
		if p.Width != 0 {
			return true
		}
	}
	return false
}

// numSegments returns the number of segments of the centerline.
func (c Centerline) numSegments() int {
	n := len(c.Points)
	if n == 0 {
		return 0
	}
	if c.Loop {
		return n
	}
	return n - 1
}

// segment returns segment i, which runs from point i to the next point.
// A segment without tangents is a straight line, with the chord as tangent
// at both ends.
func (c Centerline) segment(i int) Hermite {
	p := c.Points[i]
	q := c.Points[(i+1)%len(c.Points)]
	h := Hermite{P0: p.Vertex, P1: q.Vertex, T0: p.out(), T1: q.Tangent1}
	if h.T0 == (vec.Vec2{}) && h.T1 == (vec.Vec2{}) {
		chord := h.P1.Sub(h.P0)
		h.T0 = chord
		h.T1 = chord
	}
	return h
}

// Polygon is a closed polygon.  The last point connects back to the first
// one.
type Polygon []vec.Vec2

// Result is the outcome of one tessellation pass.
type Result struct {
	// Polygons are to be filled together, using the nonzero winding rule.
	Polygons []Polygon

	// Empty gives the reason why no polygons were produced.
	Empty string
}

// IsEmpty reports whether the result contains no polygons.
func (r *Result) IsEmpty() bool {
	return len(r.Polygons) == 0
}

// NumPoints returns the total number of polygon vertices.
func (r *Result) NumPoints() int {
	n := 0
	for _, p := range r.Polygons {
		n += len(p)
	}
	return n
}

// ErrTessellation is returned (wrapped) when a tessellation pass fails
// unexpectedly.
var ErrTessellation = errors.New("outline tessellation failed")

// Reasons reported in Result.Empty.
const (
	emptyNoVertices = "no vertices"
	emptySingle     = "single vertex"
	emptyDegenerate = "only degenerate segments"
	emptyNoDashes   = "no dash intersects the centerline"
	emptyTooSmall   = "polygons have fewer than three points"
)

// Tessellate builds the polygons for a centerline with the given width
// profile and style.  The inputs are not modified, and the returned
// polygons are owned by the caller.
//
// Inputs which have nothing to draw give an empty result and a nil error.
// An error is only returned for invalid styles, and for unexpected failures
// during tessellation.
func Tessellate(line Centerline, widths []WidthPoint, style *Style) (res *Result, err error) {
	if style == nil {
		return nil, fmt.Errorf("%w: nil style", ErrInvalidStyle)
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}

	logger := Logger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("tessellation failed",
				slog.String("kind", style.Kind.String()),
				slog.Int("points", len(line.Points)),
				slog.Any("panic", r))
			res = nil
			err = fmt.Errorf("%w: %v", ErrTessellation, r)
		}
	}()

	switch style.Kind {
	case KindOutline:
		res = tessellateOutline(line, style)
	case KindAdvancedOutline:
		res = tessellateAdvanced(line, widths, style)
	case KindRegion:
		res = tessellateRegion(line, style)
	}

	if res.IsEmpty() {
		if res.Empty == "" {
			res.Empty = emptyTooSmall
		}
		logger.Warn("empty shape",
			slog.String("kind", style.Kind.String()),
			slog.String("reason", res.Empty))
	} else if logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("tessellated",
			slog.String("kind", style.Kind.String()),
			slog.Int("points", len(line.Points)),
			slog.Bool("loop", line.Loop),
			slog.Int("polygons", len(res.Polygons)),
			slog.Int("vertices", res.NumPoints()))
	}
	return res, nil
}

// checkLine returns the reason why nothing can be drawn for line, or the
// empty string if there is something to draw.
func checkLine(line Centerline) string {
	switch {
	case len(line.Points) == 0:
		return emptyNoVertices
	case len(line.Points) == 1 && !line.Loop:
		return emptySingle
	}
	return ""
}

// tessellateOutline strokes the centerline using the widths of the
// BlinePoints.  Only sharp corners and rounded tips are supported; all
// other corner and tip types are drawn bevelled and flat.
func tessellateOutline(line Centerline, style *Style) *Result {
	if reason := checkLine(line); reason != "" {
		return &Result{Empty: reason}
	}

	st := *style
	st.Smoothness = 0
	st.Dash = nil
	if st.Cusp != CuspSharp {
		st.Cusp = CuspBevel
	}
	startTip, endTip := TipFlat, TipFlat
	if style.StartTip == TipRounded {
		startTip = TipRounded
	}
	if style.EndTip == TipRounded {
		endTip = TipRounded
	}

	s := newStroker(line, &st, nil)
	if s.degenerate() {
		return &Result{Empty: emptyDegenerate}
	}
	bd := s.stroke(0, 1, line.Loop, st.Cusp == CuspSharp)
	return &Result{Polygons: st.assemble(bd, line.Loop, startTip, endTip)}
}

// tessellateAdvanced strokes the centerline using an independent width
// profile, with configurable tips and corners and optional dashes.
func tessellateAdvanced(line Centerline, widths []WidthPoint, style *Style) *Result {
	if reason := checkLine(line); reason != "" {
		return &Result{Empty: reason}
	}

	s := newStroker(line, style, widths)
	if s.degenerate() {
		return &Result{Empty: emptyDegenerate}
	}
	cusps := style.Cusp != CuspBevel

	startTip, endTip := style.StartTip, style.EndTip
	if len(widths) > 0 && !line.Loop {
		startTip, endTip = s.prof.tips(startTip, endTip)
	}

	if len(style.Dash) == 0 {
		bd := s.stroke(0, 1, line.Loop, cusps)
		return &Result{Polygons: style.assemble(bd, line.Loop, startTip, endTip)}
	}

	dashes := dashIntervals(style.Dash, style.DashOffset, s.total)
	if len(dashes) == 0 {
		return &Result{Empty: emptyNoDashes}
	}
	res := &Result{}
	for _, d := range dashes {
		before, after := d.before, d.after
		if d.clippedStart {
			before = TipFlat
			if !line.Loop {
				before = startTip
			}
		}
		if d.clippedEnd {
			after = TipFlat
			if !line.Loop {
				after = endTip
			}
		}
		lo := s.positionAtLength(d.start)
		hi := s.positionAtLength(d.end)
		bd := s.stroke(lo, hi, false, cusps)
		res.Polygons = append(res.Polygons, style.assemble(bd, false, before, after)...)
	}
	return res
}

// tessellateRegion fills the area enclosed by the centerline.
func tessellateRegion(line Centerline, style *Style) *Result {
	if reason := checkLine(line); reason != "" {
		return &Result{Empty: reason}
	}

	s := newStroker(line, style, nil)
	if s.degenerate() {
		return &Result{Empty: emptyDegenerate}
	}
	poly := s.centerline()
	if len(poly) < 3 {
		return &Result{Empty: emptyTooSmall}
	}
	return &Result{Polygons: []Polygon{poly}}
}
