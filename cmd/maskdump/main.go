// Command maskdump computes a tissue mask for a slide image and writes it
// as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/stat"

	"tissue-mask/internal/imaging"
	"tissue-mask/internal/mask"
	"tissue-mask/internal/region"
	"tissue-mask/internal/slide"
	"tissue-mask/internal/version"
)

func main() {
	imagePath := flag.String("image", "", "Path to slide image (TIFF, PNG, or JPEG)")
	strategy := flag.String("strategy", "biggest", "Masking strategy: biggest, boxes, quantile, or tissue")
	n := flag.Int("n", 2, "Number of regions for the boxes strategy")
	quantile := flag.Float64("q", 0.9, "Area quantile for the quantile strategy")
	thumbEdge := flag.Int("thumb", slide.DefaultMaxThumbnailEdge, "Maximum thumbnail edge in pixels")
	outPath := flag.String("out", "mask.png", "Output mask PNG path")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("maskdump %s (%s)\n", version.Version, version.GitCommit)
		return
	}

	if *imagePath == "" {
		fmt.Println("Usage: maskdump -image <path> [-strategy biggest|boxes|quantile|tissue] [-out mask.png]")
		os.Exit(1)
	}

	s, err := slide.OpenImage(*imagePath, *thumbEdge)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open slide: %v\n", err)
		os.Exit(1)
	}

	fw, fh := s.Dimensions()
	tw, th := s.ThumbnailSize()
	fmt.Printf("Slide: %s\n", s.Key())
	fmt.Printf("Dimensions: %dx%d, thumbnail %dx%d\n", fw, fh, tw, th)

	pipeline := otsuTissuePipeline()

	var strat mask.Strategy
	switch *strategy {
	case "biggest":
		strat = mask.NewBiggestTissueBox(pipeline)
	case "boxes":
		strat = mask.NewTissueBoxes(pipeline, *n)
	case "quantile":
		strat = mask.NewTopAreaQuantileBox(pipeline, *quantile)
	case "tissue":
		strat = mask.NewTissue(pipeline)
	default:
		fmt.Fprintf(os.Stderr, "Unknown strategy: %s\n", *strategy)
		os.Exit(1)
	}

	// Report the segmentation before masking so small regions are visible
	// even when the strategy keeps only the biggest.
	if err := printRegionTable(s, pipeline); err != nil {
		fmt.Fprintf(os.Stderr, "Segmentation failed: %v\n", err)
		os.Exit(1)
	}

	result, err := strat.Apply(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Masking failed: %v\n", err)
		os.Exit(1)
	}

	mw, mh := result.Dims()
	fmt.Printf("\nMask (%s): %dx%d, %d tissue pixels\n", *strategy, mw, mh, result.Count())

	if err := writePNG(*outPath, result); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write mask: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outPath)
}

// otsuTissuePipeline builds the segmentation used by this tool: grayscale,
// inverse Otsu threshold (tissue is darker than the glass background), and
// a 3x3 open/close to drop speckle noise. The library itself ships no
// pipeline; every caller supplies its own.
func otsuTissuePipeline() mask.Pipeline {
	return func(thumb image.Image) (*imaging.Binary, error) {
		bgr := imaging.ImageToMat(thumb)
		defer bgr.Close()

		gray := gocv.NewMat()
		defer gray.Close()
		gocv.CvtColor(bgr, &gray, gocv.ColorBGRToGray)

		bin := gocv.NewMat()
		defer bin.Close()
		gocv.Threshold(gray, &bin, 0, 255, gocv.ThresholdBinaryInv|gocv.ThresholdOtsu)

		kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{X: 3, Y: 3})
		defer kernel.Close()
		gocv.MorphologyEx(bin, &bin, gocv.MorphOpen, kernel)
		gocv.MorphologyEx(bin, &bin, gocv.MorphClose, kernel)

		return imaging.FromMat(bin), nil
	}
}

func printRegionTable(s slide.Slide, pipeline mask.Pipeline) error {
	thumb, err := s.Thumbnail()
	if err != nil {
		return err
	}
	segmented, err := pipeline(thumb)
	if err != nil {
		return err
	}
	regions, err := region.FromBinary(segmented)
	if err != nil {
		return err
	}

	fmt.Printf("\nDetected %d tissue regions:\n", len(regions))
	fmt.Printf("%-8s %10s %22s %18s\n", "Label", "Area", "BBox", "Centroid")
	for _, r := range regions {
		bbox := fmt.Sprintf("%d,%d %dx%d", r.BBox.X, r.BBox.Y, r.BBox.Width, r.BBox.Height)
		centroid := fmt.Sprintf("%.1f,%.1f", r.Centroid.X, r.Centroid.Y)
		fmt.Printf("%-8d %10d %22s %18s\n", r.Label, r.Area, bbox, centroid)
	}

	if len(regions) > 0 {
		areas := make([]float64, len(regions))
		for i, r := range regions {
			areas[i] = float64(r.Area)
		}
		fmt.Printf("Region area: mean %.1f, stddev %.1f\n",
			stat.Mean(areas, nil), stat.StdDev(areas, nil))
	}
	return nil
}

func writePNG(path string, b *imaging.Binary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, imaging.ToImage(b))
}
