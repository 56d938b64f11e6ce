package geom

// Axis identifies a coordinate axis for collision resolution.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// CirclesOverlap reports whether two circles intersect.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	rr := ra + rb
	return dx*dx+dy*dy < rr*rr
}

// closestPoint clamps c onto rect, giving the rectangle point nearest c.
func closestPoint(c Vec2, rect Rect) Vec2 {
	return Vec2{
		X: Clamp(c.X, rect.Left(), rect.Right()),
		Y: Clamp(c.Y, rect.Top(), rect.Bottom()),
	}
}

// CircleRectOverlap reports whether a circle at c with radius r intersects
// the rectangle. Closest-point test.
func CircleRectOverlap(c Vec2, r float64, rect Rect) bool {
	p := closestPoint(c, rect)
	dx := c.X - p.X
	dy := c.Y - p.Y
	return dx*dx+dy*dy < r*r
}

// PenetrationAxis returns the axis along which the circle center sits deeper
// into the rectangle, judged by the larger center-to-closest-point offset.
// A ricochet inverts the velocity component on the returned axis.
func PenetrationAxis(c Vec2, rect Rect) Axis {
	p := closestPoint(c, rect)
	dx := c.X - p.X
	if dx < 0 {
		dx = -dx
	}
	dy := c.Y - p.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return AxisX
	}
	return AxisY
}
