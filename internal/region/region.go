// Package region extracts connected-component descriptors from binary masks.
package region

import (
	"tissue-mask/internal/imaging"
	"tissue-mask/pkg/geometry"

	"gocv.io/x/gocv"
)

// Region describes one connected component of a binary mask. Regions are
// value objects: extraction produces them, nothing mutates them.
type Region struct {
	// Label is the component label assigned during extraction, starting
	// at 1. Label 0 is the background and never appears here.
	Label int

	// Area is the exact pixel count of the component.
	Area int

	// BBox is the axis-aligned bounding box of the component.
	BBox geometry.RectInt

	// Centroid is the mean position of the component pixels.
	Centroid geometry.Point2D
}

// BoxPolygon returns the closed boundary polygon of the region bounding
// box: its four corner pixels in clockwise order.
func (r Region) BoxPolygon() []geometry.PointInt {
	return r.BBox.Corners()
}

// FromBinary labels the 8-connected components of a binary mask and
// returns one Region per component, ordered by label. The background is
// not reported. An empty mask yields an empty slice.
func FromBinary(mask *imaging.Binary) ([]Region, error) {
	src := imaging.ToMat(mask)
	defer src.Close()

	labels := gocv.NewMat()
	defer labels.Close()
	stats := gocv.NewMat()
	defer stats.Close()
	centroids := gocv.NewMat()
	defer centroids.Close()

	n := gocv.ConnectedComponentsWithStats(src, &labels, &stats, &centroids)

	// Label 0 is the background component.
	regions := make([]Region, 0, n-1)
	for label := 1; label < n; label++ {
		regions = append(regions, Region{
			Label: label,
			Area:  int(stats.GetIntAt(label, int(gocv.CCStatArea))),
			BBox: geometry.RectInt{
				X:      int(stats.GetIntAt(label, int(gocv.CCStatLeft))),
				Y:      int(stats.GetIntAt(label, int(gocv.CCStatTop))),
				Width:  int(stats.GetIntAt(label, int(gocv.CCStatWidth))),
				Height: int(stats.GetIntAt(label, int(gocv.CCStatHeight))),
			},
			Centroid: geometry.Point2D{
				X: centroids.GetDoubleAt(label, 0),
				Y: centroids.GetDoubleAt(label, 1),
			},
		})
	}

	return regions, nil
}
