package region

import (
	"testing"

	"tissue-mask/internal/imaging"
	"tissue-mask/pkg/geometry"
)

func fillRect(b *imaging.Binary, x, y, w, h int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.Set(xx, yy, true)
		}
	}
}

func byArea(regions []Region, area int) (Region, bool) {
	for _, r := range regions {
		if r.Area == area {
			return r, true
		}
	}
	return Region{}, false
}

func TestFromBinary(t *testing.T) {
	b := imaging.NewBinary(20, 10)
	fillRect(b, 2, 1, 4, 4) // 16 px blob
	b.Set(10, 8, true)      // isolated pixel

	regions, err := FromBinary(b)
	if err != nil {
		t.Fatalf("FromBinary failed: %v", err)
	}
	if len(regions) != 2 {
		t.Fatalf("found %d regions, want 2", len(regions))
	}

	blob, ok := byArea(regions, 16)
	if !ok {
		t.Fatal("16-pixel blob not found")
	}
	wantBBox := geometry.RectInt{X: 2, Y: 1, Width: 4, Height: 4}
	if blob.BBox != wantBBox {
		t.Errorf("blob bbox = %+v, want %+v", blob.BBox, wantBBox)
	}
	if blob.Centroid.X != 3.5 || blob.Centroid.Y != 2.5 {
		t.Errorf("blob centroid = %+v, want (3.5, 2.5)", blob.Centroid)
	}

	dot, ok := byArea(regions, 1)
	if !ok {
		t.Fatal("single-pixel region not found")
	}
	if dot.BBox.X != 10 || dot.BBox.Y != 8 || dot.BBox.Width != 1 || dot.BBox.Height != 1 {
		t.Errorf("dot bbox = %+v", dot.BBox)
	}
}

func TestFromBinaryDiagonalConnectivity(t *testing.T) {
	// Diagonal neighbors are one region under 8-connectivity.
	b := imaging.NewBinary(5, 5)
	b.Set(1, 1, true)
	b.Set(2, 2, true)
	b.Set(3, 3, true)

	regions, err := FromBinary(b)
	if err != nil {
		t.Fatalf("FromBinary failed: %v", err)
	}
	if len(regions) != 1 {
		t.Fatalf("found %d regions, want 1", len(regions))
	}
	if regions[0].Area != 3 {
		t.Errorf("area = %d, want 3", regions[0].Area)
	}
}

func TestFromBinaryEmptyMask(t *testing.T) {
	regions, err := FromBinary(imaging.NewBinary(8, 8))
	if err != nil {
		t.Fatalf("FromBinary failed: %v", err)
	}
	if len(regions) != 0 {
		t.Fatalf("empty mask produced %d regions", len(regions))
	}
}

func TestBoxPolygon(t *testing.T) {
	r := Region{BBox: geometry.RectInt{X: 2, Y: 1, Width: 4, Height: 4}}

	want := []geometry.PointInt{{X: 2, Y: 1}, {X: 5, Y: 1}, {X: 5, Y: 4}, {X: 2, Y: 4}}
	got := r.BoxPolygon()
	if len(got) != 4 {
		t.Fatalf("polygon has %d vertices, want 4", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
