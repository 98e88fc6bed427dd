package pathdata

import (
	"math"
	"reflect"
	"testing"
)

// arcPoint returns the point of the arc ellipse at the given angle
// in degrees.
func arcPoint(a OpArc, deg float64) (float64, float64) {
	cx := (a.Bounds.MinX + a.Bounds.MaxX) / 2
	cy := (a.Bounds.MinY + a.Bounds.MaxY) / 2
	rx := (a.Bounds.MaxX - a.Bounds.MinX) / 2
	ry := (a.Bounds.MaxY - a.Bounds.MinY) / 2
	rad := deg * math.Pi / 180
	return cx + rx*math.Cos(rad), cy + ry*math.Sin(rad)
}

func near(t *testing.T, gotX, gotY, wantX, wantY, tol float64) {
	t.Helper()
	if math.Abs(gotX-wantX) > tol || math.Abs(gotY-wantY) > tol {
		t.Errorf("got (%g, %g), want (%g, %g)", gotX, gotY, wantX, wantY)
	}
}

func TestArcDegenerateRadius(t *testing.T) {
	expectOps(t, "M0,0 A0,5 0 0 1 10,10",
		Path{OpMoveTo{0, 0}, OpLineTo{10, 10}})
	expectOps(t, "M0,0 A5,0 0 0 1 10,10",
		Path{OpMoveTo{0, 0}, OpLineTo{10, 10}})
}

func TestArcZeroLength(t *testing.T) {
	expectOps(t, "M5,5 A5,5 0 0 1 5,5 L6,6",
		Path{OpMoveTo{5, 5}, OpLineTo{6, 6}})
}

func TestArcHalfCircle(t *testing.T) {
	p := mustParse(t, "M0,0 A5,5 0 0 1 10,0")
	if len(p) != 2 {
		t.Fatalf("got %s", p)
	}
	arc, ok := p[1].(OpArc)
	if !ok {
		t.Fatalf("got %s", p)
	}
	if arc.Sweep <= 0 {
		t.Errorf("sweep flag 1 must sweep positive, got %g", arc.Sweep)
	}
	if math.Abs(arc.Sweep-180) > 1 {
		t.Errorf("expected a half turn, got %g", arc.Sweep)
	}
	// the 0.1% precision margin may enlarge the radii slightly
	rx := (arc.Bounds.MaxX - arc.Bounds.MinX) / 2
	if rx < 5 || rx > 5.01 {
		t.Errorf("rx = %g", rx)
	}
	sx, sy := arcPoint(arc, arc.Start)
	near(t, sx, sy, 0, 0, 1e-9)
	ex, ey := arcPoint(arc, arc.Start+arc.Sweep)
	near(t, ex, ey, 10, 0, 1e-9)
}

func TestArcSweepFlagDirection(t *testing.T) {
	p := mustParse(t, "M0,0 A5,5 0 0 0 10,0")
	arc := p[1].(OpArc)
	if arc.Sweep >= 0 {
		t.Errorf("sweep flag 0 must sweep negative, got %g", arc.Sweep)
	}
}

func TestArcLargeFlag(t *testing.T) {
	small := mustParse(t, "M0,0 A10,10 0 0 1 10,0")[1].(OpArc)
	if math.Abs(small.Sweep) > 180 {
		t.Errorf("small arc sweeps %g", small.Sweep)
	}
	large := mustParse(t, "M0,0 A10,10 0 1 1 10,0")[1].(OpArc)
	if math.Abs(large.Sweep) < 180 {
		t.Errorf("large arc sweeps %g", large.Sweep)
	}
	// both reach the same endpoint
	ex, ey := arcPoint(small, small.Start+small.Sweep)
	near(t, ex, ey, 10, 0, 1e-9)
	ex, ey = arcPoint(large, large.Start+large.Sweep)
	near(t, ex, ey, 10, 0, 1e-9)
}

func TestArcRadiiCorrection(t *testing.T) {
	// radii too small to reach the endpoint are scaled up
	p := mustParse(t, "M0,0 A1,1 0 0 1 10,0")
	arc := p[1].(OpArc)
	rx := (arc.Bounds.MaxX - arc.Bounds.MinX) / 2
	if rx < 5 {
		t.Errorf("radii not scaled, rx = %g", rx)
	}
	ex, ey := arcPoint(arc, arc.Start+arc.Sweep)
	near(t, ex, ey, 10, 0, 1e-9)
}

func TestArcNegativeRadii(t *testing.T) {
	a := mustParse(t, "M0,0 A5,5 0 0 1 10,0")
	b := mustParse(t, "M0,0 A-5,-5 0 0 1 10,0")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("got %s and %s", a, b)
	}
}

func TestArcFlagsUndelimited(t *testing.T) {
	a := mustParse(t, "M0,0 A5,5 0 0 1 10,0")
	b := mustParse(t, "M0,0 A5,5 0 0110,0")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("got %s and %s", a, b)
	}
}

func TestArcRotated(t *testing.T) {
	p := mustParse(t, "M0,0 A10,5 30 0 1 10,0")
	if len(p) != 4 {
		t.Fatalf("got %s", p)
	}
	push, ok := p[1].(OpPush)
	if !ok {
		t.Fatalf("got %s", p)
	}
	arc, ok := p[2].(OpArc)
	if !ok {
		t.Fatalf("got %s", p)
	}
	if _, ok := p[3].(OpPop); !ok {
		t.Fatalf("got %s", p)
	}

	// the arc is drawn in a local frame centered at the origin
	if arc.Bounds.MinX != -arc.Bounds.MaxX || arc.Bounds.MinY != -arc.Bounds.MaxY {
		t.Errorf("local bounds not origin centered: %+v", arc.Bounds)
	}

	// the pushed transform must be invertible back to the identity
	id := push.M.Mult(push.M.Invert())
	near(t, id.A, id.D, 1, 1, 1e-12)
	near(t, id.B, id.C, 0, 0, 1e-12)
	near(t, id.E, id.F, 0, 0, 1e-12)

	// mapping the local arc ends through the transform recovers the
	// original endpoints
	sx, sy := arcPoint(arc, arc.Start)
	sx, sy = push.M.Apply(sx, sy)
	near(t, sx, sy, 0, 0, 1e-9)
	ex, ey := arcPoint(arc, arc.Start+arc.Sweep)
	ex, ey = push.M.Apply(ex, ey)
	near(t, ex, ey, 10, 0, 1e-9)
}

func TestArcFullTurnRotationIsAxisAligned(t *testing.T) {
	// theta = 360 needs no transform bracket
	p := mustParse(t, "M0,0 A5,5 360 0 1 10,0")
	if len(p) != 2 {
		t.Fatalf("got %s", p)
	}
	if _, ok := p[1].(OpArc); !ok {
		t.Fatalf("got %s", p)
	}
}
