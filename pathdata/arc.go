package pathdata

import "math"

// angle returns the angle in degrees, in (-360, 360), between the
// vectors (x1,y1) and (x2,y2). The atan2 arguments look swapped but
// the swap cancels out in the difference.
func angle(x1, y1, x2, y2 float64) float64 {
	return math.Mod((math.Atan2(x1, y1)-math.Atan2(x2, y2))*180/math.Pi, 360)
}

// arcTo converts an arc in endpoint parameterization (current point,
// target point, radii, x axis rotation theta in degrees and the two
// flags) to its center parameterization and emits it, per the W3C
// arc implementation notes
// http://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func (c *cursor) arcTo(x, y, rx, ry, theta float64, largeArc, sweepArc bool) {
	if rx == 0 || ry == 0 {
		// a degenerate radius draws a straight line instead
		c.sink.LineTo(x, y)
		return
	}
	if x == c.curX && y == c.curY {
		return // nothing to draw
	}

	rx = math.Abs(rx)
	ry = math.Abs(ry)

	thrad := theta * math.Pi / 180
	st, ct := math.Sin(thrad), math.Cos(thrad)

	// half displacement vector, rotated into the unrotated
	// ellipse frame
	xc := (c.curX - x) / 2
	yc := (c.curY - y) / 2
	x1t := ct*xc + st*yc
	y1t := -st*xc + ct*yc

	x1ts := x1t * x1t
	y1ts := y1t * y1t
	rxs := rx * rx
	rys := ry * ry

	// add 0.1% to be sure that no out of range occurs due to
	// limited precision
	lambda := (x1ts/rxs + y1ts/rys) * 1.001
	if lambda > 1 {
		// the radii cannot reach: scale them up minimally
		lambdasr := math.Sqrt(lambda)
		rx *= lambdasr
		ry *= lambdasr
		rxs = rx * rx
		rys = ry * ry
	}

	sign := 1.0
	if largeArc == sweepArc {
		sign = -1
	}
	r := sign * math.Sqrt((rxs*rys-rxs*y1ts-rys*x1ts)/(rxs*y1ts+rys*x1ts))
	cxt := r * rx * y1t / ry
	cyt := -r * ry * x1t / rx
	cx := ct*cxt - st*cyt + (c.curX+x)/2
	cy := st*cxt + ct*cyt + (c.curY+y)/2

	th1 := angle(1, 0, (x1t-cxt)/rx, (y1t-cyt)/ry)
	dth := angle((x1t-cxt)/rx, (y1t-cyt)/ry, (-x1t-cxt)/rx, (-y1t-cyt)/ry)

	// enforce the sweep direction requested by the flag
	if !sweepArc && dth > 0 {
		dth -= 360
	} else if sweepArc && dth < 0 {
		dth += 360
	}

	if math.Mod(theta, 360) == 0 {
		c.sink.ArcSegment(Rect{cx - rx, cy - ry, cx + rx, cy + ry}, th1, dth)
	} else {
		// arc primitives only handle axis aligned ellipses: draw
		// the arc in its local frame and let the transform place it
		m := Identity.Translate(cx, cy).Rotate(thrad)
		c.sink.PushTransform(m)
		c.sink.ArcSegment(Rect{-rx, -ry, rx, ry}, th1, dth)
		c.sink.PopTransform()
	}
}
