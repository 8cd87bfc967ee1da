package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// FitWithin returns the dimensions of w x h scaled proportionally so that
// the longer edge does not exceed maxEdge. Dimensions already within the
// limit are returned unchanged. Scaled dimensions are never below 1.
func FitWithin(w, h, maxEdge int) (int, int) {
	if w <= 0 || h <= 0 || maxEdge <= 0 {
		return 0, 0
	}
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= maxEdge {
		return w, h
	}

	scale := float64(maxEdge) / float64(longest)
	sw := int(float64(w)*scale + 0.5)
	sh := int(float64(h)*scale + 0.5)
	if sw < 1 {
		sw = 1
	}
	if sh < 1 {
		sh = 1
	}
	return sw, sh
}

// Resize downsamples an image to the given dimensions using bilinear
// interpolation.
func Resize(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Rect, img, img.Bounds(), draw.Src, nil)
	return dst
}
