package mask

import (
	"tissue-mask/internal/imaging"
	"tissue-mask/internal/raster"
	"tissue-mask/internal/region"
	"tissue-mask/internal/slide"
)

// BiggestTissueBox masks the bounding box of the single largest tissue
// region on a slide thumbnail.
type BiggestTissueBox struct {
	// Pipeline segments the thumbnail; required.
	Pipeline Pipeline

	// Extractor and Rasterizer default to region.FromBinary and
	// raster.Polygon. Replace them before the first Apply call.
	Extractor  Extractor
	Rasterizer Rasterizer

	cache *resultCache
}

// NewBiggestTissueBox creates the strategy around an injected
// segmentation pipeline.
func NewBiggestTissueBox(p Pipeline) *BiggestTissueBox {
	return &BiggestTissueBox{
		Pipeline:   p,
		Extractor:  region.FromBinary,
		Rasterizer: raster.Polygon,
		cache:      newResultCache(defaultCacheCapacity),
	}
}

// Apply returns the bounding mask of the biggest tissue region, sized to
// the slide thumbnail. Repeated calls for the same slide key return the
// cached mask without re-running the pipeline.
func (b *BiggestTissueBox) Apply(s slide.Slide) (*imaging.Binary, error) {
	return b.cache.getOrCompute(s.Key(), func() (*imaging.Binary, error) {
		return b.compute(s)
	})
}

func (b *BiggestTissueBox) compute(s slide.Slide) (*imaging.Binary, error) {
	// A segmentation with zero regions fails selection: n=1 cannot be
	// satisfied.
	biggest, err := segmentAndSelect(s, b.Pipeline, b.Extractor, b, 1)
	if err != nil {
		return nil, err
	}

	w, h := s.ThumbnailSize()
	return b.Rasterizer(w, h, biggest[0].BoxPolygon()), nil
}

// SelectRegions returns the n largest regions, biggest first.
func (b *BiggestTissueBox) SelectRegions(regions []region.Region, n int) ([]region.Region, error) {
	return TopRegions(regions, n)
}
