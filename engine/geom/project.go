package geom

// Arena dimensions in simulation units. The playable region is a trapezoid:
// rows near y=0 are narrow, widening linearly toward y=ArenaHeight. A point
// (x, y) is inside the arena when |x| <= HalfWidthAt(y).
const (
	ArenaHeight     = 520.0
	TopHalfWidth    = 150.0
	BottomHalfWidth = 430.0
)

// Screen mapping for the projection. Logical screen size is fixed; the host
// window scales it, so these never change at runtime.
const (
	ScreenWidth  = 960
	ScreenHeight = 640

	screenCenterX = float64(ScreenWidth) / 2
	topMarginY    = 90.0
	bottomMarginY = 590.0
)

// HalfWidthAt returns the arena half-width for row y.
func HalfWidthAt(y float64) float64 {
	t := Clamp(y/ArenaHeight, 0, 1)
	return Lerp(TopHalfWidth, BottomHalfWidth, t)
}

// Project maps a simulation-space point to screen space. The returned scale
// is the half-width ratio for the row and is used to shrink sprites with
// simulated depth; it is non-decreasing in y.
func Project(x, y float64) (sx, sy, scale float64) {
	t := Clamp(y/ArenaHeight, 0, 1)
	hw := Lerp(TopHalfWidth, BottomHalfWidth, t)
	scale = hw / BottomHalfWidth
	sx = screenCenterX + x*scale
	sy = Lerp(topMarginY, bottomMarginY, t)
	return sx, sy, scale
}
