// Package imaging provides the binary mask type and conversions between
// Go images and gocv matrices.
package imaging

import "fmt"

// Binary is a 2D boolean pixel mask. True marks a selected pixel.
type Binary struct {
	w, h int
	pix  []bool
}

// NewBinary creates an all-false mask of the given dimensions.
func NewBinary(w, h int) *Binary {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Binary{w: w, h: h, pix: make([]bool, w*h)}
}

// Dims returns the mask width and height in pixels.
func (b *Binary) Dims() (w, h int) {
	return b.w, b.h
}

// At returns the value at pixel (x, y). Out-of-range pixels are false.
func (b *Binary) At(x, y int) bool {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return false
	}
	return b.pix[y*b.w+x]
}

// Set sets the value at pixel (x, y). Out-of-range pixels are ignored.
func (b *Binary) Set(x, y int, v bool) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.pix[y*b.w+x] = v
}

// Count returns the number of true pixels.
func (b *Binary) Count() int {
	n := 0
	for _, v := range b.pix {
		if v {
			n++
		}
	}
	return n
}

// Equal reports whether two masks have the same dimensions and content.
func (b *Binary) Equal(other *Binary) bool {
	if other == nil || b.w != other.w || b.h != other.h {
		return false
	}
	for i, v := range b.pix {
		if v != other.pix[i] {
			return false
		}
	}
	return true
}

// Or merges another mask into this one in place. Dimensions must match.
func (b *Binary) Or(other *Binary) error {
	if b.w != other.w || b.h != other.h {
		return fmt.Errorf("mask dimensions mismatch: %dx%d vs %dx%d", b.w, b.h, other.w, other.h)
	}
	for i, v := range other.pix {
		if v {
			b.pix[i] = true
		}
	}
	return nil
}

// Clone returns a deep copy of the mask.
func (b *Binary) Clone() *Binary {
	c := NewBinary(b.w, b.h)
	copy(c.pix, b.pix)
	return c
}
