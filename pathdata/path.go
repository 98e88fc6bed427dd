package pathdata

import (
	"fmt"
	"strings"
)

// This file defines a basic recording sink

// Operation is one recorded sink call.
type Operation interface {
	// add itself on the sink s
	drawTo(s Sink)
}

type OpMoveTo struct{ X, Y float64 }

type OpLineTo struct{ X, Y float64 }

type OpCubicTo struct{ X1, Y1, X2, Y2, X, Y float64 }

type OpClose struct{}

type OpArc struct {
	Bounds       Rect
	Start, Sweep float64 // degrees
}

type OpPush struct{ M Matrix2D }

type OpPop struct{}

func (op OpMoveTo) drawTo(s Sink) { s.MoveTo(op.X, op.Y) }

func (op OpLineTo) drawTo(s Sink) { s.LineTo(op.X, op.Y) }

func (op OpCubicTo) drawTo(s Sink) { s.CubicTo(op.X1, op.Y1, op.X2, op.Y2, op.X, op.Y) }

func (op OpClose) drawTo(s Sink) { s.ClosePath() }

func (op OpArc) drawTo(s Sink) { s.ArcSegment(op.Bounds, op.Start, op.Sweep) }

func (op OpPush) drawTo(s Sink) { s.PushTransform(op.M) }

func (op OpPop) drawTo(s Sink) { s.PopTransform() }

// Path records the operations emitted by Parse, to be replayed
// later into an actual drawing backend.
type Path []Operation

var _ Sink = (*Path)(nil)

func (p *Path) MoveTo(x, y float64) { *p = append(*p, OpMoveTo{x, y}) }

func (p *Path) LineTo(x, y float64) { *p = append(*p, OpLineTo{x, y}) }

func (p *Path) CubicTo(x1, y1, x2, y2, x, y float64) {
	*p = append(*p, OpCubicTo{x1, y1, x2, y2, x, y})
}

func (p *Path) ClosePath() { *p = append(*p, OpClose{}) }

func (p *Path) ArcSegment(bounds Rect, startDeg, sweepDeg float64) {
	*p = append(*p, OpArc{bounds, startDeg, sweepDeg})
}

func (p *Path) PushTransform(m Matrix2D) { *p = append(*p, OpPush{m}) }

func (p *Path) PopTransform() { *p = append(*p, OpPop{}) }

// Clear zeros the path slice
func (p *Path) Clear() { *p = (*p)[:0] }

// Replay emits the recorded operations on s, in order.
func (p Path) Replay(s Sink) {
	for _, op := range p {
		op.drawTo(s)
	}
}

// ToSVGPath returns a string representation of the path. Arcs and
// transforms have no exact path data spelling and are rendered in a
// bracketed pseudo syntax.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case OpMoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", op.X, op.Y)
		case OpLineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", op.X, op.Y)
		case OpCubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f",
				op.X1, op.Y1, op.X2, op.Y2, op.X, op.Y)
		case OpClose:
			chunks[i] = "Z"
		case OpArc:
			chunks[i] = fmt.Sprintf("[arc %4.3f,%4.3f,%4.3f,%4.3f %4.3f %4.3f]",
				op.Bounds.MinX, op.Bounds.MinY, op.Bounds.MaxX, op.Bounds.MaxY,
				op.Start, op.Sweep)
		case OpPush:
			chunks[i] = fmt.Sprintf("[push %4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f]",
				op.M.A, op.M.B, op.M.C, op.M.D, op.M.E, op.M.F)
		case OpPop:
			chunks[i] = "[pop]"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string { return p.ToSVGPath() }
