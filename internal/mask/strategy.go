// Package mask computes binary tissue masks for slide thumbnails.
//
// A Strategy turns a slide into a mask at thumbnail resolution through an
// injected segmentation pipeline. Concrete strategies differ only in which
// regions of the segmentation they keep and how they render them.
package mask

import (
	"image"

	"tissue-mask/internal/imaging"
	"tissue-mask/internal/region"
	"tissue-mask/internal/slide"
	"tissue-mask/pkg/geometry"
)

// Pipeline segments a thumbnail into a tissue/background mask of identical
// dimensions. The library ships no pipeline of its own; callers inject one.
type Pipeline func(thumbnail image.Image) (*imaging.Binary, error)

// Extractor lists the connected components of a binary mask.
type Extractor func(mask *imaging.Binary) ([]region.Region, error)

// Rasterizer renders a closed polygon as a w x h binary mask.
type Rasterizer func(w, h int, polygon []geometry.PointInt) *imaging.Binary

// Strategy produces a binary mask for a slide. The mask always has the
// slide's thumbnail dimensions, never the full-resolution dimensions.
type Strategy interface {
	// Apply computes the mask for a slide. Results are cached per slide
	// key; collaborator failures propagate to the caller untranslated.
	Apply(s slide.Slide) (*imaging.Binary, error)

	// SelectRegions applies the strategy's selection policy to the
	// regions extracted from a segmentation. Each implementation defines
	// how n is interpreted; all reject n outside [1, len(regions)] with
	// an error wrapping ErrInvalidRegionCount.
	SelectRegions(regions []region.Region, n int) ([]region.Region, error)
}
