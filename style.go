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
	"errors"
	"fmt"
	"math"
)

// Kind selects the shape which is built from a centerline.
type Kind int

const (
	// KindOutline strokes the centerline using the per-vertex widths of the
	// BlinePoints.  Width points and dashes are ignored, cusps are either
	// sharp or left alone, and tips are either rounded or flat.
	KindOutline Kind = iota

	// KindAdvancedOutline strokes the centerline using an independent
	// width profile, with selectable tip and cusp shapes and optional
	// dashing.
	KindAdvancedOutline

	// KindRegion fills the area enclosed by the centerline itself.
	KindRegion
)

func (k Kind) String() string {
	switch k {
	case KindOutline:
		return "outline"
	case KindAdvancedOutline:
		return "advanced_outline"
	case KindRegion:
		return "region"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TipType describes how the outline behaves on one side of a width point,
// or at one end of an open stroke.
type TipType int

const (
	// TipInterpolate continues the width to the neighbouring width point.
	// As an end cap it behaves like TipFlat.
	TipInterpolate TipType = iota
	TipRounded
	TipSquared
	TipPeak
	TipFlat
)

func (t TipType) String() string {
	switch t {
	case TipInterpolate:
		return "interpolate"
	case TipRounded:
		return "rounded"
	case TipSquared:
		return "squared"
	case TipPeak:
		return "peak"
	case TipFlat:
		return "flat"
	default:
		return fmt.Sprintf("TipType(%d)", int(t))
	}
}

// CuspType describes the corner geometry at vertices with split tangents.
type CuspType int

const (
	CuspSharp CuspType = iota
	CuspRounded
	CuspBevel
)

func (c CuspType) String() string {
	switch c {
	case CuspSharp:
		return "sharp"
	case CuspRounded:
		return "rounded"
	case CuspBevel:
		return "bevel"
	default:
		return fmt.Sprintf("CuspType(%d)", int(c))
	}
}

// Style holds all parameters of one tessellation pass, apart from the
// centerline and the width profile.
type Style struct {
	// Kind selects the shape to build.
	Kind Kind

	// Width is the global width multiplier.  The half width of the stroke
	// at a point is exp(Grow)·(Width·w/2 + Expand), where w is the profile
	// width.
	Width float64

	// Expand is added to every half width.
	Expand float64

	// Grow is the logarithmic outline grow value of the enclosing canvas.
	// Widths are multiplied by exp(Grow).
	Grow float64

	// Homogeneous makes width point positions refer to the fraction of
	// arc length along the centerline instead of the fraction of segments.
	Homogeneous bool

	// Cusp selects the corner geometry at split-tangent vertices.
	// For KindOutline only CuspSharp and CuspBevel are meaningful.
	Cusp CuspType

	// StartTip and EndTip select the caps of open strokes.
	StartTip TipType
	EndTip   TipType

	// Smoothness blends linear width interpolation (0) with a smooth
	// quintic ease (1).  Must be in [0, 1].
	Smoothness float64

	// Dash lists the dash pattern.  Only used for KindAdvancedOutline,
	// and only if non-empty.
	Dash []DashItem

	// DashOffset shifts the dash pattern along the centerline, in the same
	// units as the arc length of the centerline.
	DashOffset float64

	// Samples is the number of samples taken across every width span of
	// every segment.  Must be positive.
	Samples int

	// CuspThreshold is the value of the cross product of the two unit
	// normals at a vertex above which a sharp corner is built.
	// Must be in (0, 1).
	CuspThreshold float64

	// SpikeAmount caps the amplification of spikes at cusps where the
	// centerline almost reverses.  Must be at least 1.
	SpikeAmount float64

	// RoundEndFactor scales the tangents of the auxiliary curve used for
	// rounded tips.  The default of 4 approximates a half circle.
	RoundEndFactor float64

	// TangentAdjust is the parameter offset from the segment ends at which
	// cusp and tip tangents are sampled.  Must be in [0, 0.5).
	TangentAdjust float64
}

// NewStyle returns a Style for the given kind, with all tuning parameters
// set to their default values.
func NewStyle(kind Kind) *Style {
	s := &Style{
		Kind:           kind,
		Width:          1,
		Cusp:           CuspSharp,
		StartTip:       TipRounded,
		EndTip:         TipRounded,
		Samples:        defaultSamples,
		CuspThreshold:  defaultCuspThreshold,
		SpikeAmount:    defaultSpikeAmount,
		RoundEndFactor: defaultRoundEndFactor,
		TangentAdjust:  defaultTangentAdjust,
	}
	if kind == KindOutline {
		s.Homogeneous = true
	}
	return s
}

// ErrInvalidStyle is returned (wrapped) by Validate and Tessellate for
// styles which cannot be used.
var ErrInvalidStyle = errors.New("invalid outline style")

// Validate checks that all parameters are in range.
func (s *Style) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrInvalidStyle}, args...)...)
	}

	switch s.Kind {
	case KindOutline, KindAdvancedOutline, KindRegion:
	default:
		return bad("unknown kind %d", int(s.Kind))
	}
	for _, x := range []float64{s.Width, s.Expand, s.Grow, s.DashOffset} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return bad("non-finite width parameter %g", x)
		}
	}
	if s.Samples < 1 {
		return bad("Samples must be positive, got %d", s.Samples)
	}
	if !(s.Smoothness >= 0 && s.Smoothness <= 1) {
		return bad("Smoothness %g not in [0, 1]", s.Smoothness)
	}
	if !(s.CuspThreshold > 0 && s.CuspThreshold < 1) {
		return bad("CuspThreshold %g not in (0, 1)", s.CuspThreshold)
	}
	if !(s.SpikeAmount >= 1) || math.IsInf(s.SpikeAmount, 0) {
		return bad("SpikeAmount %g less than 1", s.SpikeAmount)
	}
	if !(s.RoundEndFactor >= 0) || math.IsInf(s.RoundEndFactor, 0) {
		return bad("RoundEndFactor %g", s.RoundEndFactor)
	}
	if !(s.TangentAdjust >= 0 && s.TangentAdjust < 0.5) {
		return bad("TangentAdjust %g not in [0, 0.5)", s.TangentAdjust)
	}
	for _, t := range []TipType{s.StartTip, s.EndTip} {
		if t < TipInterpolate || t > TipFlat {
			return bad("unknown tip type %d", int(t))
		}
	}
	if s.Cusp < CuspSharp || s.Cusp > CuspBevel {
		return bad("unknown cusp type %d", int(s.Cusp))
	}
	for i, d := range s.Dash {
		if !(d.Offset >= 0) || !(d.Length >= 0) || math.IsInf(d.Offset+d.Length, 0) {
			return bad("dash item %d has invalid offset %g or length %g", i, d.Offset, d.Length)
		}
	}
	return nil
}

// halfWidth converts a profile width into the half width of the stroke.
func (s *Style) halfWidth(w float64) float64 {
	return math.Exp(s.Grow) * (s.Width*0.5*w + s.Expand)
}

// Default values for the tuning parameters.
const (
	// defaultSamples is the number of samples per width span.
	defaultSamples = 50

	// defaultCuspThreshold separates sharp corners from smooth joins.
	defaultCuspThreshold = 0.40

	// defaultSpikeAmount is the largest spike amplification at cusps.
	defaultSpikeAmount = 4

	// defaultRoundEndFactor approximates a half circle for rounded tips.
	defaultRoundEndFactor = 4

	// defaultTangentAdjust keeps tangent sampling away from the segment
	// ends, where user-supplied tangents are often zero.
	defaultTangentAdjust = 0.025
)

// Numerical tolerances.
const (
	// zeroLengthThreshold is the length below which a vector is treated as
	// zero.
	zeroLengthThreshold = 1e-10

	// parallelThreshold is the sine of the angle below which two lines
	// are treated as parallel.
	parallelThreshold = 1e-9

	// paramEpsilon is the smallest local parameter range which is sampled.
	paramEpsilon = 1e-9

	// arclenAccuracy is the absolute accuracy of arc length computations.
	arclenAccuracy = 1e-6
)
