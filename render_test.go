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

package outline_test

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/testcases"
)

// emptyCases lists the test cases which are expected to draw nothing.
var emptyCases = map[string]bool{
	"precision_coincident_points": true,
}

func forAllCases(t *testing.T, fn func(t *testing.T, tc testcases.TestCase, res *outline.Result)) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				res, err := tc.Tessellate()
				if err != nil {
					t.Fatal(err)
				}
				fn(t, tc, res)
			})
		}
	}
}

func TestCatalogue(t *testing.T) {
	forAllCases(t, func(t *testing.T, tc testcases.TestCase, res *outline.Result) {
		name := filepath.Base(t.Name())
		if res.IsEmpty() != emptyCases[name] {
			t.Fatalf("empty=%t (%q)", res.IsEmpty(), res.Empty)
		}
		for i, poly := range res.Polygons {
			if len(poly) < 3 {
				t.Errorf("polygon %d has %d points", i, len(poly))
			}
			for _, p := range poly {
				if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
					t.Fatalf("polygon %d contains %v", i, p)
				}
			}
		}

		again, err := tc.Tessellate()
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(res, again); d != "" {
			t.Errorf("repeated tessellation differs (-first +second):\n%s", d)
		}
	})
}

func TestAgainstReference(t *testing.T) {
	forAllCases(t, func(t *testing.T, tc testcases.TestCase, res *outline.Result) {
		name := filepath.Base(t.Name())
		refPath := filepath.Join("testdata", "reference", name+".png")
		ref, err := loadGray(refPath)
		if errors.Is(err, fs.ErrNotExist) {
			t.Skip("no reference image, run testcases/genpdf")
		} else if err != nil {
			t.Fatalf("loading reference: %v", err)
		}

		w, h := tc.Width, tc.Height
		actual := renderExample(tc, res)
		if err := compareImages(name, ref, actual, w, h); err != nil {
			t.Error(err)
		}
	})
}

// renderExample rasterises a tessellation result into a grayscale buffer,
// in row-major order.  Each byte represents coverage from 0 (transparent)
// to 255 (opaque).
func renderExample(tc testcases.TestCase, res *outline.Result) []byte {
	r := outline.NewRasteriser(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
	r.CTM = tc.Transform()

	buf := make([]byte, tc.Width*tc.Height)
	r.FillResult(res, tc.Rule, func(y, xMin int, coverage []float32) {
		row := buf[y*tc.Width:]
		for i, c := range coverage {
			row[xMin+i] = byte(max(0, min(255, int(c*256))))
		}
	})
	return buf
}

func loadGray(path string) (gray []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray = make([]byte, w*h)
	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

func compareImages(name string, expected, actual []byte, w, h int) error {
	const tolerance = 16
	const maxDiffPercent = 2

	if len(expected) != w*h {
		return fmt.Errorf("reference has %d pixels, want %d", len(expected), w*h)
	}

	diffCount := 0
	for i := range expected {
		d := int(expected[i]) - int(actual[i])
		if d > tolerance || d < -tolerance {
			diffCount++
		}
	}

	maxAllowed := w * h * maxDiffPercent / 100
	if diffCount > maxAllowed {
		writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%d pixels differ by >%d (max allowed: %d)",
			diffCount, tolerance, maxAllowed)
	}
	return nil
}

func writeDiffImage(name string, expected, actual []byte, w, h int) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			i := y*w + x
			img.Set(x, y, color.RGBA{
				R: expected[i], // expected in red
				G: actual[i],   // actual in green
				B: 0,
				A: 255,
			})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}

func BenchmarkCatalogue(b *testing.B) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		b.Run(category, func(b *testing.B) {
			cases := testcases.All[category]
			b.ReportAllocs()
			for b.Loop() {
				for _, tc := range cases {
					if _, err := tc.Tessellate(); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}
