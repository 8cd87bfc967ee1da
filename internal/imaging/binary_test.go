package imaging

import "testing"

func TestBinarySetAndCount(t *testing.T) {
	b := NewBinary(4, 3)

	if w, h := b.Dims(); w != 4 || h != 3 {
		t.Fatalf("dims %dx%d, want 4x3", w, h)
	}
	if b.Count() != 0 {
		t.Fatalf("new mask has %d true pixels", b.Count())
	}

	b.Set(0, 0, true)
	b.Set(3, 2, true)
	b.Set(3, 2, true) // setting twice counts once

	if b.Count() != 2 {
		t.Errorf("count = %d, want 2", b.Count())
	}
	if !b.At(0, 0) || !b.At(3, 2) {
		t.Error("set pixels read back false")
	}
	if b.At(1, 1) {
		t.Error("unset pixel reads true")
	}
}

func TestBinaryOutOfRange(t *testing.T) {
	b := NewBinary(2, 2)
	b.Set(-1, 0, true)
	b.Set(0, 5, true)

	if b.Count() != 0 {
		t.Error("out-of-range Set modified the mask")
	}
	if b.At(-1, 0) || b.At(0, 5) {
		t.Error("out-of-range At returned true")
	}
}

func TestBinaryEqual(t *testing.T) {
	a := NewBinary(3, 3)
	b := NewBinary(3, 3)
	a.Set(1, 1, true)

	if a.Equal(b) {
		t.Error("different content reported equal")
	}
	b.Set(1, 1, true)
	if !a.Equal(b) {
		t.Error("identical masks reported unequal")
	}
	if a.Equal(NewBinary(3, 4)) {
		t.Error("different dimensions reported equal")
	}
	if a.Equal(nil) {
		t.Error("nil reported equal")
	}
}

func TestBinaryOr(t *testing.T) {
	a := NewBinary(3, 2)
	b := NewBinary(3, 2)
	a.Set(0, 0, true)
	b.Set(2, 1, true)

	if err := a.Or(b); err != nil {
		t.Fatalf("Or failed: %v", err)
	}
	if !a.At(0, 0) || !a.At(2, 1) {
		t.Error("union missing pixels")
	}
	if b.At(0, 0) {
		t.Error("Or modified its argument")
	}

	if err := a.Or(NewBinary(2, 2)); err == nil {
		t.Error("expected dimension mismatch error")
	}
}

func TestBinaryClone(t *testing.T) {
	a := NewBinary(2, 2)
	a.Set(1, 0, true)

	c := a.Clone()
	if !c.Equal(a) {
		t.Fatal("clone differs from original")
	}
	c.Set(0, 1, true)
	if a.At(0, 1) {
		t.Error("mutating the clone changed the original")
	}
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name         string
		w, h, max    int
		wantW, wantH int
	}{
		{"wide image capped", 2000, 1000, 500, 500, 250},
		{"tall image capped", 1000, 2000, 500, 250, 500},
		{"already fits", 300, 200, 1000, 300, 200},
		{"exactly at cap", 500, 100, 500, 500, 100},
		{"extreme aspect floors at one", 10000, 3, 100, 100, 1},
		{"zero input", 0, 100, 500, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitWithin(tt.w, tt.h, tt.max)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("FitWithin(%d, %d, %d) = %dx%d, want %dx%d",
					tt.w, tt.h, tt.max, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
