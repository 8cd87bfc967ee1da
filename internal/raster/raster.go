// Package raster converts polygons into binary masks.
package raster

import (
	"image"
	"image/color"

	"tissue-mask/internal/imaging"
	"tissue-mask/pkg/geometry"

	"gocv.io/x/gocv"
)

// Polygon rasterizes a closed polygon onto a w x h mask. Pixels on the
// boundary and in the interior are true, everything else false. Vertices
// outside the canvas are clipped by the raster bounds. A polygon with
// fewer than three vertices produces an all-false mask.
func Polygon(w, h int, polygon []geometry.PointInt) *imaging.Binary {
	if w <= 0 || h <= 0 || len(polygon) < 3 {
		return imaging.NewBinary(w, h)
	}

	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8U)
	defer mat.Close()

	pts := make([]image.Point, len(polygon))
	for i, p := range polygon {
		pts[i] = image.Point{X: p.X, Y: p.Y}
	}

	pv := gocv.NewPointsVectorFromPoints([][]image.Point{pts})
	defer pv.Close()

	gocv.FillPoly(&mat, pv, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	return imaging.FromMat(mat)
}
