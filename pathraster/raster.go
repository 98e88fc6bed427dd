// Implements a raster backend for parsed path data,
// by wrapping rasterx.
package pathraster

import (
	"math"

	"github.com/benoitkugler/svgpath/pathdata"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ pathdata.Sink = (*Adder)(nil) // assert interface conformance

// maxDx is the maximum radians a cubic splice is allowed to span
// in ellipse parametric when approximating an arc segment.
const maxDx float64 = math.Pi / 8

// arcJoinEps bounds the distance under which the current point and
// an arc start point are considered joined already.
const arcJoinEps = 1e-9

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// Adder adapts a rasterx.Adder to the pathdata.Sink operations.
// rasterx has no native arc primitive, so arc segments are
// approximated with chains of cubic Béziers; transforms pushed by
// the parser are applied to the coordinates as they stream through.
// An Adder holds only call local state and must not be shared
// between concurrent parses.
type Adder struct {
	adder rasterx.Adder
	stack []pathdata.Matrix2D // pushed transforms, innermost last
	x, y  float64             // current point, after transforms
}

// NewAdder returns a sink drawing into a.
func NewAdder(a rasterx.Adder) *Adder {
	return &Adder{adder: a}
}

// Draw parses the path data d straight into the rasterizer a.
func Draw(d string, a rasterx.Adder) error {
	return pathdata.Parse(d, NewAdder(a))
}

// transform maps (x, y) through the pushed transforms, innermost
// first.
func (r *Adder) transform(x, y float64) (float64, float64) {
	for i := len(r.stack) - 1; i >= 0; i-- {
		x, y = r.stack[i].Apply(x, y)
	}
	return x, y
}

func (r *Adder) MoveTo(x, y float64) {
	r.x, r.y = r.transform(x, y)
	r.adder.Start(toFixedP(r.x, r.y))
}

func (r *Adder) LineTo(x, y float64) {
	r.x, r.y = r.transform(x, y)
	r.adder.Line(toFixedP(r.x, r.y))
}

func (r *Adder) CubicTo(x1, y1, x2, y2, x, y float64) {
	b := toFixedP(r.transform(x1, y1))
	c := toFixedP(r.transform(x2, y2))
	r.x, r.y = r.transform(x, y)
	r.adder.CubeBezier(b, c, toFixedP(r.x, r.y))
}

func (r *Adder) ClosePath() { r.adder.Stop(true) }

func (r *Adder) PushTransform(m pathdata.Matrix2D) { r.stack = append(r.stack, m) }

func (r *Adder) PopTransform() {
	if len(r.stack) > 0 {
		r.stack = r.stack[:len(r.stack)-1]
	}
}

// ArcSegment approximates the arc with a set of cubic bezier curves
// by the method of L. Maisonobe, "Drawing an elliptical arc using
// polylines, quadratic or cubic Bezier curves", 2003
// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
func (r *Adder) ArcSegment(bounds pathdata.Rect, startDeg, sweepDeg float64) {
	cx := (bounds.MinX + bounds.MaxX) / 2
	cy := (bounds.MinY + bounds.MaxY) / 2
	rx := (bounds.MaxX - bounds.MinX) / 2
	ry := (bounds.MaxY - bounds.MinY) / 2

	etaStart := startDeg * math.Pi / 180
	deltaEta := sweepDeg * math.Pi / 180

	// like the host arc primitives the parser targets, join the
	// current point to the arc start
	sx, sy := ellipsePointAt(rx, ry, etaStart, cx, cy)
	if dsx, dsy := r.transform(sx, sy); math.Abs(dsx-r.x) > arcJoinEps || math.Abs(dsy-r.y) > arcJoinEps {
		r.LineTo(sx, sy)
	}

	// round up to determine the number of cubic splines
	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs) // span of each segment
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	lx, ly := sx, sy
	ldx, ldy := ellipsePrime(rx, ry, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		if i == segs {
			eta = etaStart + deltaEta // make the end point exact
		}
		px, py := ellipsePointAt(rx, ry, eta, cx, cy)
		dx, dy := ellipsePrime(rx, ry, eta)
		r.CubicTo(lx+alpha*ldx, ly+alpha*ldy, px-alpha*dx, py-alpha*dy, px, py)
		lx, ly, ldx, ldy = px, py, dx, dy
	}
}

// ellipsePrime gives tangent vectors for the parameterized ellipse;
// a, b radii, eta parameter
func ellipsePrime(a, b, eta float64) (px, py float64) {
	return -a * math.Sin(eta), b * math.Cos(eta)
}

// ellipsePointAt gives points for the parameterized ellipse; a, b
// radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, eta, cx, cy float64) (px, py float64) {
	return cx + a*math.Cos(eta), cy + b*math.Sin(eta)
}
