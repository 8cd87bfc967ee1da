package geometry

import "testing"

func TestRectInt(t *testing.T) {
	r := RectInt{X: 2, Y: 1, Width: 4, Height: 3}

	if r.Area() != 12 {
		t.Errorf("Area() = %d, want 12", r.Area())
	}
	if !r.Contains(2, 1) || !r.Contains(5, 3) {
		t.Error("Contains rejects pixels inside the rectangle")
	}
	if r.Contains(6, 1) || r.Contains(2, 4) {
		t.Error("Contains accepts pixels past the far edge")
	}
	if c := r.Center(); c.X != 4 || c.Y != 2.5 {
		t.Errorf("Center() = %+v, want (4, 2.5)", c)
	}
}

func TestRectIntCorners(t *testing.T) {
	r := RectInt{X: 2, Y: 1, Width: 4, Height: 3}
	want := []PointInt{{X: 2, Y: 1}, {X: 5, Y: 1}, {X: 5, Y: 3}, {X: 2, Y: 3}}

	got := r.Corners()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("corner %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBoundingBoxInt(t *testing.T) {
	points := []PointInt{{X: 3, Y: 7}, {X: 1, Y: 9}, {X: 5, Y: 2}}
	want := RectInt{X: 1, Y: 2, Width: 5, Height: 8}

	if got := BoundingBoxInt(points); got != want {
		t.Errorf("BoundingBoxInt = %+v, want %+v", got, want)
	}
	if got := BoundingBoxInt(nil); got != (RectInt{}) {
		t.Errorf("BoundingBoxInt(nil) = %+v, want zero rect", got)
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	tests := []struct {
		name string
		p    Point2D
		want bool
	}{
		{"center", Point2D{X: 5, Y: 5}, true},
		{"outside left", Point2D{X: -1, Y: 5}, false},
		{"outside below", Point2D{X: 5, Y: 11}, false},
		{"near corner inside", Point2D{X: 0.5, Y: 0.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInPolygon(tt.p, square); got != tt.want {
				t.Errorf("PointInPolygon(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	if PointInPolygon(Point2D{X: 1, Y: 1}, square[:2]) {
		t.Error("degenerate polygon should contain nothing")
	}
}

func TestCentroid(t *testing.T) {
	points := []Point2D{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 0, Y: 2}}
	if got := Centroid(points); got.X != 2 || got.Y != 1 {
		t.Errorf("Centroid = %+v, want (2, 1)", got)
	}
	if got := Centroid(nil); got != (Point2D{}) {
		t.Errorf("Centroid(nil) = %+v, want zero point", got)
	}
}
