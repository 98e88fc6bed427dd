package pathdata

import "math"

// Matrix2D represents an SVG style affine transformation,
//
//	A C E
//	B D F
//	0 0 1
//
// mapping a point (x, y) to (A*x + C*y + E, B*x + D*y + F).
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity matrix.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns a times b, so that applying the result is applying b
// first, then a.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Apply maps the point (x, y) through the matrix.
func (a Matrix2D) Apply(x, y float64) (float64, float64) {
	return a.A*x + a.C*y + a.E, a.B*x + a.D*y + a.F
}

// Translate translates the matrix by x, y.
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Rotate rotates the matrix by theta radians.
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	sin, cos := math.Sin(theta), math.Cos(theta)
	return a.Mult(Matrix2D{cos, sin, -sin, cos, 0, 0})
}

// Scale scales the matrix by x, y.
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Invert returns the inverse matrix, such that a.Mult(a.Invert()) is
// the identity. A singular matrix yields the zero matrix.
func (a Matrix2D) Invert() Matrix2D {
	det := a.A*a.D - a.B*a.C
	if det == 0 {
		return Matrix2D{}
	}
	return Matrix2D{
		A: a.D / det,
		B: -a.B / det,
		C: -a.C / det,
		D: a.A / det,
		E: (a.C*a.F - a.D*a.E) / det,
		F: (a.B*a.E - a.A*a.F) / det,
	}
}
