package mask

import (
	"errors"
	"fmt"
	"sort"

	"tissue-mask/internal/region"
)

// ErrInvalidRegionCount reports a region selection count outside the
// valid range [1, len(regions)].
var ErrInvalidRegionCount = errors.New("invalid region count")

// TopRegions returns the n regions with the greatest area, biggest first.
// The sort is stable: regions with equal areas keep their input order.
// The input slice is not modified.
func TopRegions(regions []region.Region, n int) ([]region.Region, error) {
	if n < 1 || n > len(regions) {
		return nil, fmt.Errorf("%w: n should be between 1 and %d, got %d",
			ErrInvalidRegionCount, len(regions), n)
	}

	sorted := make([]region.Region, len(regions))
	copy(sorted, regions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Area > sorted[j].Area
	})

	return sorted[:n], nil
}
