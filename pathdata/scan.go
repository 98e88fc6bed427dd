package pathdata

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrBadNumber is returned when a number or arc flag is expected and
// none is found in the path data.
var ErrBadNumber = errors.New("invalid number in path data")

// scanner reads floats and arc flags out of raw path data. The
// grammar is deliberately permissive: numbers are separated by
// whitespace, commas, or nothing at all when they are self
// delimiting, i.e. begin with a sign ("1-2" is the two numbers
// 1 and -2). The position only ever moves forward.
type scanner struct {
	data string
	pos  int
}

func isSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v', ',':
		return true
	}
	return false
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// skipSeparators advances past runs of whitespace and commas.
// It is idempotent and never fails.
func (s *scanner) skipSeparators() {
	for s.pos < len(s.data) && isSeparator(s.data[s.pos]) {
		s.pos++
	}
}

// nextFloat parses the longest floating point token starting at the
// current position: optional sign, digits, optional fraction and
// optional exponent. The exponent marker is only consumed when at
// least one digit follows it, so "1e" is the number 1. Fails only
// when no digit is found at all.
func (s *scanner) nextFloat() (float64, error) {
	s.skipSeparators()
	start := s.pos
	if s.pos < len(s.data) && (s.data[s.pos] == '-' || s.data[s.pos] == '+') {
		s.pos++
	}
	digits := false
	for s.pos < len(s.data) && isDigit(s.data[s.pos]) {
		s.pos++
		digits = true
	}
	if s.pos < len(s.data) && s.data[s.pos] == '.' {
		s.pos++
		for s.pos < len(s.data) && isDigit(s.data[s.pos]) {
			s.pos++
			digits = true
		}
	}
	if !digits {
		return 0, fmt.Errorf("%w at position %d", ErrBadNumber, start)
	}
	if s.pos < len(s.data) && (s.data[s.pos] == 'e' || s.data[s.pos] == 'E') {
		j := s.pos + 1
		if j < len(s.data) && (s.data[j] == '-' || s.data[j] == '+') {
			j++
		}
		if j < len(s.data) && isDigit(s.data[j]) {
			s.pos = j
			for s.pos < len(s.data) && isDigit(s.data[s.pos]) {
				s.pos++
			}
		}
	}
	return strconv.ParseFloat(s.data[start:s.pos], 64)
}

// nextFlag parses exactly one byte as an arc flag. Flags are single
// digit tokens, not delimited from a following number: in "10.5" the
// flag is 1 and the next number 0.5.
func (s *scanner) nextFlag() (bool, error) {
	s.skipSeparators()
	if s.pos >= len(s.data) || (s.data[s.pos] != '0' && s.data[s.pos] != '1') {
		return false, fmt.Errorf("%w: expected arc flag at position %d", ErrBadNumber, s.pos)
	}
	f := s.data[s.pos] == '1'
	s.pos++
	return f, nil
}
