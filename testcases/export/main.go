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

// Command export writes the tessellated polygons of all test cases to JSON,
// for use with external renderers.  With -png, the polygons are also
// rasterised and written as grayscale images.
//
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/testcases"
)

func main() {
	pngDir := flag.String("png", "", "directory for rasterised images")
	flag.Parse()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	r := outline.NewRasteriser(rect.Rect{})
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			res, err := tc.Tessellate()
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			out.TestCases = append(out.TestCases, toJSON(name, tc, res))

			if *pngDir != "" {
				if err := writePNG(r, tc, res, filepath.Join(*pngDir, name+".png")); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string         `json:"name"`
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	CTM      [6]float64     `json:"ctm"`
	Kind     string         `json:"kind"`
	FillRule string         `json:"fill_rule"`
	Empty    string         `json:"empty,omitempty"`
	Polygons [][][2]float64 `json:"polygons"`
}

func toJSON(name string, tc testcases.TestCase, res *outline.Result) jsonTestCase {
	jtc := jsonTestCase{
		Name:     name,
		Width:    tc.Width,
		Height:   tc.Height,
		CTM:      tc.Transform(),
		Kind:     tc.Style.Kind.String(),
		FillRule: "nonzero",
		Empty:    res.Empty,
		Polygons: [][][2]float64{},
	}
	if tc.Rule == outline.EvenOdd {
		jtc.FillRule = "evenodd"
	}
	for _, poly := range res.Polygons {
		pts := make([][2]float64, len(poly))
		for i, p := range poly {
			pts[i] = [2]float64{p.X, p.Y}
		}
		jtc.Polygons = append(jtc.Polygons, pts)
	}
	return jtc
}

func writePNG(r *outline.Rasteriser, tc testcases.TestCase, res *outline.Result, fname string) error {
	r.Clip = rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
	r.CTM = tc.Transform()
	mask := r.Alpha(res, tc.Rule)
	img := &image.Gray{Pix: mask.Pix, Stride: mask.Stride, Rect: mask.Rect}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
