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

// Command genpdf generates reference images for the outline tests.
// It fills the tessellated polygons of every test case into a PDF and
// renders the PDF to a PNG using Ghostscript.
//
// With -centerline, an additional PDF is written for each test case which
// shows the centerline on top of the filled outline, for visual
// inspection.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/testcases"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

const refDir = "testdata/reference"

func main() {
	centerline := flag.Bool("centerline", false, "also write PDFs showing the centerlines")
	flag.Parse()

	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			res, err := tc.Tessellate()
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := generatePDF(tc, res, pdfPath, false); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *centerline {
				debugPath := filepath.Join(refDir, name+"_centerline.pdf")
				if err := generatePDF(tc, res, debugPath, true); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, res *outline.Result, pdfPath string, showCenterline bool) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Black background, so that gray values give the coverage.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	if ctm := tc.Transform(); ctm != matrix.Identity {
		page.Transform(ctm)
	}

	drawPath := func(p path.Path) {
		for cmd, pts := range p.ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	if !res.IsEmpty() {
		page.SetFillColor(color.DeviceGray(1))
		if showCenterline {
			page.SetFillColor(color.DeviceGray(0.6))
		}
		drawPath(res.Path())
		if tc.Rule == outline.EvenOdd {
			page.FillEvenOdd()
		} else {
			page.Fill()
		}
	}

	if showCenterline {
		page.SetStrokeColor(color.DeviceGray(0.2))
		page.SetLineWidth(0.5)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		for _, line := range tc.Lines {
			drawPath(line.Path())
		}
		page.Stroke()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
