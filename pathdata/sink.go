package pathdata

// Rect is an axis aligned rectangle, used as the bounding box
// of an elliptical arc segment.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Sink receives the drawing operations produced by Parse.
// It needs no knowledge of the path data syntax; coordinates
// handed to it are final, except inside a transform bracket.
//
// ArcSegment draws the elliptical arc inscribed in `bounds`,
// starting at `startDeg` and sweeping `sweepDeg` degrees. The point
// of the ellipse at angle t is (cx + rx*cos(t), cy + ry*sin(t)),
// with (cx, cy) the center of `bounds`. A positive sweep goes in the
// direction of increasing angle.
//
// PushTransform maps every following operation by `m` until the
// matching PopTransform. The parser only brackets single arc
// segments this way (most 2D arc primitives handle axis aligned
// ellipses only, so a rotated arc is drawn in its local frame and
// placed by the transform), but sinks should keep a stack.
type Sink interface {
	// MoveTo starts a new subpath at the given point.
	MoveTo(x, y float64)

	// LineTo adds a line from the current point to (x, y).
	LineTo(x, y float64)

	// CubicTo adds a cubic Bézier curve to (x, y), with control
	// points (x1, y1) and (x2, y2).
	CubicTo(x1, y1, x2, y2, x, y float64)

	// ClosePath joins the current point back to the subpath start.
	ClosePath()

	// ArcSegment draws an arc of the ellipse inscribed in bounds.
	ArcSegment(bounds Rect, startDeg, sweepDeg float64)

	// PushTransform maps the following operations by m.
	PushTransform(m Matrix2D)

	// PopTransform removes the transform of the matching push.
	PopTransform()
}
