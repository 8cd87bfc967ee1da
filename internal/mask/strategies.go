package mask

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"tissue-mask/internal/imaging"
	"tissue-mask/internal/raster"
	"tissue-mask/internal/region"
	"tissue-mask/internal/slide"
)

// TissueBoxes masks the union of the bounding boxes of the N largest
// tissue regions.
type TissueBoxes struct {
	Pipeline   Pipeline
	Extractor  Extractor
	Rasterizer Rasterizer

	// N is the number of regions to keep. Apply fails with the
	// region-count error when N is outside [1, regions found].
	N int

	cache *resultCache
}

// NewTissueBoxes creates the strategy keeping the n largest regions.
func NewTissueBoxes(p Pipeline, n int) *TissueBoxes {
	return &TissueBoxes{
		Pipeline:   p,
		Extractor:  region.FromBinary,
		Rasterizer: raster.Polygon,
		N:          n,
		cache:      newResultCache(defaultCacheCapacity),
	}
}

// Apply returns the union mask of the N largest region boxes at thumbnail
// resolution.
func (t *TissueBoxes) Apply(s slide.Slide) (*imaging.Binary, error) {
	return t.cache.getOrCompute(s.Key(), func() (*imaging.Binary, error) {
		selected, err := segmentAndSelect(s, t.Pipeline, t.Extractor, t, t.N)
		if err != nil {
			return nil, err
		}
		w, h := s.ThumbnailSize()
		return unionBoxes(w, h, selected, t.Rasterizer)
	})
}

// SelectRegions returns the n largest regions, biggest first.
func (t *TissueBoxes) SelectRegions(regions []region.Region, n int) ([]region.Region, error) {
	return TopRegions(regions, n)
}

// TopAreaQuantileBox masks the union of the boxes of every region whose
// area reaches a quantile of the area distribution. With Quantile 0.9 the
// largest tenth of the regions is kept.
type TopAreaQuantileBox struct {
	Pipeline   Pipeline
	Extractor  Extractor
	Rasterizer Rasterizer

	// Quantile is the area cutoff in [0, 1).
	Quantile float64

	cache *resultCache
}

// NewTopAreaQuantileBox creates the strategy keeping regions at or above
// the given area quantile.
func NewTopAreaQuantileBox(p Pipeline, quantile float64) *TopAreaQuantileBox {
	return &TopAreaQuantileBox{
		Pipeline:   p,
		Extractor:  region.FromBinary,
		Rasterizer: raster.Polygon,
		Quantile:   quantile,
		cache:      newResultCache(defaultCacheCapacity),
	}
}

// Apply returns the union mask of the selected region boxes at thumbnail
// resolution.
func (t *TopAreaQuantileBox) Apply(s slide.Slide) (*imaging.Binary, error) {
	return t.cache.getOrCompute(s.Key(), func() (*imaging.Binary, error) {
		selected, err := segmentAndSelect(s, t.Pipeline, t.Extractor, t, 1)
		if err != nil {
			return nil, err
		}
		w, h := s.ThumbnailSize()
		return unionBoxes(w, h, selected, t.Rasterizer)
	})
}

// SelectRegions keeps every region whose area is at or above the
// configured quantile of the area distribution, biggest first. n is the
// minimum number of regions that must be selectable and is validated
// against [1, len(regions)]; the quantile always admits at least the
// biggest region, so more than n regions may be returned.
func (t *TopAreaQuantileBox) SelectRegions(regions []region.Region, n int) ([]region.Region, error) {
	if t.Quantile < 0 || t.Quantile >= 1 {
		return nil, fmt.Errorf("area quantile should be in [0, 1), got %v", t.Quantile)
	}
	if n < 1 || n > len(regions) {
		return nil, fmt.Errorf("%w: n should be between 1 and %d, got %d",
			ErrInvalidRegionCount, len(regions), n)
	}

	areas := make([]float64, len(regions))
	for i, r := range regions {
		areas[i] = float64(r.Area)
	}
	sort.Float64s(areas)
	cutoff := stat.Quantile(t.Quantile, stat.Empirical, areas, nil)

	ranked, err := TopRegions(regions, len(regions))
	if err != nil {
		return nil, err
	}
	var selected []region.Region
	for _, r := range ranked {
		if float64(r.Area) >= cutoff {
			selected = append(selected, r)
		}
	}
	return selected, nil
}

// Tissue masks every tissue pixel: the segmentation pipeline output
// itself, unmodified.
type Tissue struct {
	Pipeline Pipeline

	cache *resultCache
}

// NewTissue creates the strategy around an injected segmentation pipeline.
func NewTissue(p Pipeline) *Tissue {
	return &Tissue{
		Pipeline: p,
		cache:    newResultCache(defaultCacheCapacity),
	}
}

// Apply returns the raw tissue segmentation at thumbnail resolution.
func (t *Tissue) Apply(s slide.Slide) (*imaging.Binary, error) {
	return t.cache.getOrCompute(s.Key(), func() (*imaging.Binary, error) {
		thumb, err := s.Thumbnail()
		if err != nil {
			return nil, err
		}
		return t.Pipeline(thumb)
	})
}

// SelectRegions keeps every region: this strategy masks all tissue, so
// its selection policy is the identity. n is validated against
// [1, len(regions)] like every other policy.
func (t *Tissue) SelectRegions(regions []region.Region, n int) ([]region.Region, error) {
	if n < 1 || n > len(regions) {
		return nil, fmt.Errorf("%w: n should be between 1 and %d, got %d",
			ErrInvalidRegionCount, len(regions), n)
	}
	return regions, nil
}

// segmentAndSelect runs the shared thumbnail -> segmentation -> regions ->
// selection chain used by the box strategies.
func segmentAndSelect(s slide.Slide, p Pipeline, e Extractor, strategy Strategy, n int) ([]region.Region, error) {
	thumb, err := s.Thumbnail()
	if err != nil {
		return nil, err
	}

	segmented, err := p(thumb)
	if err != nil {
		return nil, err
	}

	regions, err := e(segmented)
	if err != nil {
		return nil, err
	}

	return strategy.SelectRegions(regions, n)
}

// unionBoxes rasterizes each region bounding box and merges the results.
func unionBoxes(w, h int, regions []region.Region, rasterize Rasterizer) (*imaging.Binary, error) {
	out := imaging.NewBinary(w, h)
	for _, r := range regions {
		if err := out.Or(rasterize(w, h, r.BoxPolygon())); err != nil {
			return nil, err
		}
	}
	return out, nil
}
