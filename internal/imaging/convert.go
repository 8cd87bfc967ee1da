package imaging

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// ImageToMat converts a Go image.Image to a gocv.Mat in BGR format.
func ImageToMat(img image.Image) gocv.Mat {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			mat.SetUCharAt(y, x*3+0, uint8(b>>8))
			mat.SetUCharAt(y, x*3+1, uint8(g>>8))
			mat.SetUCharAt(y, x*3+2, uint8(r>>8))
		}
	}

	return mat
}

// ToMat converts a binary mask to a single-channel CV8U mat with true
// pixels set to 255.
func ToMat(b *Binary) gocv.Mat {
	w, h := b.Dims()
	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8U)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if b.At(x, y) {
				mat.SetUCharAt(y, x, 255)
			}
		}
	}
	return mat
}

// FromMat converts a single-channel mat to a binary mask. Any non-zero
// pixel becomes true.
func FromMat(mat gocv.Mat) *Binary {
	b := NewBinary(mat.Cols(), mat.Rows())
	for y := 0; y < mat.Rows(); y++ {
		for x := 0; x < mat.Cols(); x++ {
			if mat.GetUCharAt(y, x) > 0 {
				b.Set(x, y, true)
			}
		}
	}
	return b
}

// ToImage renders a binary mask as a grayscale image, white where true.
func ToImage(b *Binary) *image.Gray {
	w, h := b.Dims()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if b.At(x, y) {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}
