package geom

import "testing"

func TestProjectScaleMonotonic(t *testing.T) {
	prev := -1.0
	for y := 0.0; y <= ArenaHeight; y += ArenaHeight / 200 {
		_, _, scale := Project(0, y)
		if scale < prev {
			t.Fatalf("scale decreased at y=%f: %f -> %f", y, prev, scale)
		}
		prev = scale
	}
}

func TestProjectScaleRange(t *testing.T) {
	_, _, top := Project(0, 0)
	if want := TopHalfWidth / BottomHalfWidth; top != want {
		t.Errorf("scale at top = %f, want %f", top, want)
	}
	_, _, bottom := Project(0, ArenaHeight)
	if bottom != 1 {
		t.Errorf("scale at bottom = %f, want 1", bottom)
	}
	// y outside the arena clamps rather than extrapolating
	_, _, below := Project(0, ArenaHeight*2)
	if below != 1 {
		t.Errorf("scale below arena = %f, want 1", below)
	}
}

func TestProjectRecenters(t *testing.T) {
	cx, _, _ := Project(0, ArenaHeight/2)
	if cx != float64(ScreenWidth)/2 {
		t.Errorf("x=0 projects to %f, want screen center", cx)
	}
	lx, _, _ := Project(-100, ArenaHeight/2)
	rx, _, _ := Project(100, ArenaHeight/2)
	if lx >= cx || rx <= cx {
		t.Errorf("projection lost left/right ordering: %f %f %f", lx, cx, rx)
	}
	if got, want := cx-lx, rx-cx; got != want {
		t.Errorf("projection not symmetric: %f vs %f", got, want)
	}
}

func TestHalfWidthAtEndpoints(t *testing.T) {
	if got := HalfWidthAt(0); got != TopHalfWidth {
		t.Errorf("HalfWidthAt(0) = %f, want %f", got, TopHalfWidth)
	}
	if got := HalfWidthAt(ArenaHeight); got != BottomHalfWidth {
		t.Errorf("HalfWidthAt(ArenaHeight) = %f, want %f", got, BottomHalfWidth)
	}
	mid := HalfWidthAt(ArenaHeight / 2)
	if mid <= TopHalfWidth || mid >= BottomHalfWidth {
		t.Errorf("HalfWidthAt(mid) = %f outside (%f, %f)", mid, TopHalfWidth, BottomHalfWidth)
	}
}
