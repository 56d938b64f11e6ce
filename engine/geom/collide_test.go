package geom

import "testing"

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Vec2
		ra, rb float64
		want   bool
	}{
		{"overlapping", Vec2{0, 0}, Vec2{5, 0}, 4, 4, true},
		{"touching edges is a miss", Vec2{0, 0}, Vec2{8, 0}, 4, 4, false},
		{"far apart", Vec2{0, 0}, Vec2{100, 100}, 4, 4, false},
		{"contained", Vec2{0, 0}, Vec2{1, 0}, 10, 2, true},
	}
	for _, tt := range tests {
		if got := CirclesOverlap(tt.a, tt.ra, tt.b, tt.rb); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCircleRectOverlap(t *testing.T) {
	rect := Rect{X: 0, Y: 0, W: 20, H: 10} // spans [-10,10]x[-5,5]
	tests := []struct {
		name string
		c    Vec2
		r    float64
		want bool
	}{
		{"center inside", Vec2{0, 0}, 1, true},
		{"edge graze left", Vec2{-12, 0}, 3, true},
		{"clear of corner", Vec2{13, 8}, 2, false},
		{"corner diagonal hit", Vec2{11, 6}, 2, true},
		{"corner diagonal miss", Vec2{12, 7}, 2, false},
		{"above", Vec2{0, -9}, 3, false},
	}
	for _, tt := range tests {
		if got := CircleRectOverlap(tt.c, tt.r, rect); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPenetrationAxis(t *testing.T) {
	rect := Rect{X: 0, Y: 0, W: 20, H: 10}
	tests := []struct {
		name string
		c    Vec2
		want Axis
	}{
		{"approach from left", Vec2{-11, 0}, AxisX},
		{"approach from below", Vec2{0, 6}, AxisY},
		{"corner, wider x offset", Vec2{-13, 6}, AxisX},
		{"corner, wider y offset", Vec2{-11, 8}, AxisY},
	}
	for _, tt := range tests {
		if got := PenetrationAxis(tt.c, rect); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !a.Intersects(Rect{X: 8, Y: 0, W: 10, H: 10}) {
		t.Error("offset overlapping rects should intersect")
	}
	if a.Intersects(Rect{X: 20, Y: 0, W: 10, H: 10}) {
		t.Error("separated rects should not intersect")
	}
	if a.Intersects(Rect{X: 10, Y: 0, W: 10, H: 10}) {
		t.Error("edge-touching rects should not intersect")
	}
}
