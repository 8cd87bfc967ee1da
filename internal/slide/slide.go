// Package slide provides access to whole-slide images at thumbnail
// resolution. Mask strategies only ever see a slide through the Slide
// interface.
package slide

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"tissue-mask/internal/imaging"

	_ "golang.org/x/image/tiff"
)

// DefaultMaxThumbnailEdge caps the longer edge of computed thumbnails.
const DefaultMaxThumbnailEdge = 1000

// Slide is the provider contract consumed by mask strategies.
type Slide interface {
	// Key returns a stable identity for the slide. Distinct slides must
	// return distinct keys; strategies cache results under this key.
	Key() string

	// ThumbnailSize returns the pixel dimensions of the slide thumbnail.
	ThumbnailSize() (w, h int)

	// Thumbnail returns the slide rendered at ThumbnailSize.
	Thumbnail() (image.Image, error)
}

// ImageSlide is a Slide backed by a raster image file (PNG, JPEG or TIFF).
type ImageSlide struct {
	path    string
	maxEdge int
	width   int
	height  int

	once     sync.Once
	thumb    image.Image
	thumbErr error
}

// OpenImage opens a raster file as a slide. maxEdge caps the longer edge
// of the thumbnail; values <= 0 use DefaultMaxThumbnailEdge. Only the
// image header is read here; pixel data is decoded lazily on the first
// Thumbnail call.
func OpenImage(path string, maxEdge int) (*ImageSlide, error) {
	if maxEdge <= 0 {
		maxEdge = DefaultMaxThumbnailEdge
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &ImageSlide{
		path:    path,
		maxEdge: maxEdge,
		width:   cfg.Width,
		height:  cfg.Height,
	}, nil
}

// Key returns the slide file path.
func (s *ImageSlide) Key() string {
	return s.path
}

// Dimensions returns the full-resolution pixel dimensions.
func (s *ImageSlide) Dimensions() (w, h int) {
	return s.width, s.height
}

// ThumbnailSize returns the slide dimensions scaled proportionally so the
// longer edge fits the configured maximum.
func (s *ImageSlide) ThumbnailSize() (w, h int) {
	return imaging.FitWithin(s.width, s.height, s.maxEdge)
}

// Thumbnail decodes the slide and downsamples it to ThumbnailSize. The
// result is computed once and reused by later calls.
func (s *ImageSlide) Thumbnail() (image.Image, error) {
	s.once.Do(func() {
		f, err := os.Open(s.path)
		if err != nil {
			s.thumbErr = err
			return
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			s.thumbErr = fmt.Errorf("decode %s: %w", s.path, err)
			return
		}

		w, h := s.ThumbnailSize()
		if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
			s.thumb = img
			return
		}
		s.thumb = imaging.Resize(img, w, h)
	})
	return s.thumb, s.thumbErr
}
