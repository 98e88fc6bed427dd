// Package pathdata parses the SVG path data mini language (for
// example "M250,150 L150,350 L350,350Z", which draws a triangle)
// into move, line, cubic curve, close and elliptical arc operations
// on an abstract drawing sink.
// The parser itself does no rendering: painting backends implement
// the Sink interface, see for example svgpath/pathraster.
//
// Known deviation from the full SVG specification: the quadratic curve
// commands Q/q and their smooth variants T/t are not implemented and
// degrade to straight lines.
package pathdata

// parseMode tracks the command letter last consumed, driving the
// implicit repetition rule for bare numbers.
type parseMode uint8

const (
	// modeNone does not allow repetition: no command was seen yet,
	// or the previous one was a closepath or unrecognized.
	modeNone parseMode = iota
	// modeMove turns further coordinate pairs into linetos:
	// a moveto is never repeated implicitly.
	modeMove
	// modeRepeat repeats the previous command as is.
	modeRepeat
)

// cursor holds the running state of one parse call. All state is
// call local, so concurrent Parse calls are independent.
type cursor struct {
	scan scanner
	sink Sink

	curX, curY     float64 // current point
	startX, startY float64 // subpath start, closepath returns here
	cntlX, cntlY   float64 // reflection source for smooth cubics

	mode    parseMode
	prevCmd byte
}

// Parse reads the path data d and emits its drawing operations to
// sink, in order. Malformed input is handled on a best effort basis:
// unrecognized bytes are skipped, and a missing number aborts the
// parse with an error wrapping ErrBadNumber after the operations
// already completed have been emitted. Q/q and T/t consume one
// coordinate pair and emit a straight line (see the package
// documentation).
func Parse(d string, sink Sink) error {
	c := cursor{scan: scanner{data: d}, sink: sink}
	c.scan.skipSeparators()
	for c.scan.pos < len(d) {
		cmd := d[c.scan.pos]
		if cmd == '-' || cmd == '+' || isDigit(cmd) {
			switch c.mode {
			case modeMove:
				cmd = c.prevCmd - 1 // 'M'-1 == 'L', 'm'-1 == 'l'
			case modeRepeat:
				cmd = c.prevCmd
			default:
				// a bare number here is malformed, skip the byte
				c.scan.pos++
				c.setMode(cmd)
				c.scan.skipSeparators()
				continue
			}
		} else {
			c.scan.pos++
			c.setMode(cmd)
		}
		if err := c.command(cmd); err != nil {
			return err
		}
		c.scan.skipSeparators()
	}
	return nil
}

// ParsePath parses d into a recorded Path. On malformed input the
// operations emitted before the fault are still returned, along with
// the error.
func ParsePath(d string) (Path, error) {
	var p Path
	err := Parse(d, &p)
	return p, err
}

func lowerLetter(b byte) byte { return b | 0x20 }

func (c *cursor) setMode(cmd byte) {
	c.prevCmd = cmd
	switch lowerLetter(cmd) {
	case 'm':
		c.mode = modeMove
	case 'l', 'h', 'v', 'c', 's', 'q', 't', 'a':
		c.mode = modeRepeat
	default:
		c.mode = modeNone
	}
}

// floats fills buf with the next len(buf) numbers.
func (c *cursor) floats(buf []float64) error {
	for i := range buf {
		f, err := c.scan.nextFloat()
		if err != nil {
			return err
		}
		buf[i] = f
	}
	return nil
}

// command consumes the arguments of cmd and emits its operations.
// Relative (lowercase) commands offset their coordinates by the
// current point.
func (c *cursor) command(cmd byte) error {
	var p [6]float64
	wasCurve := false
	switch cmd {
	case 'M', 'm':
		if err := c.floats(p[:2]); err != nil {
			return err
		}
		if cmd == 'm' {
			p[0] += c.curX
			p[1] += c.curY
		}
		c.startX, c.startY = p[0], p[1]
		c.curX, c.curY = p[0], p[1]
		c.sink.MoveTo(p[0], p[1])
	case 'Z', 'z':
		c.sink.ClosePath()
		// the next command continues from the subpath origin
		c.sink.MoveTo(c.startX, c.startY)
		c.curX, c.curY = c.startX, c.startY
		c.cntlX, c.cntlY = c.startX, c.startY
		wasCurve = true
	case 'L', 'l', 'T', 't':
		// T/t (smooth quadratic) degrades to a line
		if err := c.floats(p[:2]); err != nil {
			return err
		}
		if cmd == 'l' || cmd == 't' {
			p[0] += c.curX
			p[1] += c.curY
		}
		c.curX, c.curY = p[0], p[1]
		c.sink.LineTo(p[0], p[1])
	case 'H', 'h':
		if err := c.floats(p[:1]); err != nil {
			return err
		}
		if cmd == 'h' {
			p[0] += c.curX
		}
		c.curX = p[0]
		c.sink.LineTo(c.curX, c.curY)
	case 'V', 'v':
		if err := c.floats(p[:1]); err != nil {
			return err
		}
		if cmd == 'v' {
			p[0] += c.curY
		}
		c.curY = p[0]
		c.sink.LineTo(c.curX, c.curY)
	case 'C', 'c':
		if err := c.floats(p[:6]); err != nil {
			return err
		}
		if cmd == 'c' {
			p[0] += c.curX
			p[1] += c.curY
			p[2] += c.curX
			p[3] += c.curY
			p[4] += c.curX
			p[5] += c.curY
		}
		c.sink.CubicTo(p[0], p[1], p[2], p[3], p[4], p[5])
		c.cntlX, c.cntlY = p[2], p[3]
		c.curX, c.curY = p[4], p[5]
		wasCurve = true
	case 'S', 's':
		if err := c.floats(p[:4]); err != nil {
			return err
		}
		if cmd == 's' {
			p[0] += c.curX
			p[1] += c.curY
			p[2] += c.curX
			p[3] += c.curY
		}
		// the first control point mirrors the previous one
		// across the current point
		x1 := 2*c.curX - c.cntlX
		y1 := 2*c.curY - c.cntlY
		c.sink.CubicTo(x1, y1, p[0], p[1], p[2], p[3])
		c.cntlX, c.cntlY = p[0], p[1]
		c.curX, c.curY = p[2], p[3]
		wasCurve = true
	case 'Q', 'q':
		// quadratic curves degrade to a line
		if err := c.floats(p[:2]); err != nil {
			return err
		}
		if cmd == 'q' {
			p[0] += c.curX
			p[1] += c.curY
		}
		c.curX, c.curY = p[0], p[1]
		c.sink.LineTo(p[0], p[1])
	case 'A', 'a':
		if err := c.floats(p[:3]); err != nil {
			return err
		}
		largeArc, err := c.scan.nextFlag()
		if err != nil {
			return err
		}
		sweepArc, err := c.scan.nextFlag()
		if err != nil {
			return err
		}
		var q [2]float64
		if err := c.floats(q[:]); err != nil {
			return err
		}
		if cmd == 'a' {
			q[0] += c.curX
			q[1] += c.curY
		}
		c.arcTo(q[0], q[1], p[0], p[1], p[2], largeArc, sweepArc)
		c.curX, c.curY = q[0], q[1]
	default:
		// unrecognized byte, already skipped
	}
	if !wasCurve {
		c.cntlX, c.cntlY = c.curX, c.curY
	}
	return nil
}
