package token

import (
	"bytes"
	"fmt"
)

// Scanner is a cursor over a document's bytes.  It never interprets what it
// scans beyond finding token boundaries; callers keep the raw text and
// decode it separately, so every consumed byte can be reproduced.
type Scanner struct {
	d  []byte
	i  int
	pd *PosDoc
}

func NewScanner(d []byte) *Scanner {
	return &Scanner{
		d:  d,
		pd: &PosDoc{d: d},
	}
}

func (s *Scanner) Pos() *Pos {
	return s.pd.Pos(s.i)
}

func (s *Scanner) Offset() int {
	return s.i
}

// Raw returns the exact source bytes in [a, b).
func (s *Scanner) Raw(a, b int) string {
	return string(s.d[a:b])
}

func (s *Scanner) EOF() bool {
	return s.i >= len(s.d)
}

func (s *Scanner) Peek() byte {
	if s.EOF() {
		return 0
	}
	return s.d[s.i]
}

func (s *Scanner) PeekAt(k int) byte {
	if s.i+k >= len(s.d) {
		return 0
	}
	return s.d[s.i+k]
}

func (s *Scanner) advance(n int) {
	for k := 0; k < n && s.i+k < len(s.d); k++ {
		if s.d[s.i+k] == '\n' {
			s.pd.nl(s.i + k)
		}
	}
	s.i += n
}

func (s *Scanner) Expect(c byte) error {
	if s.EOF() || s.d[s.i] != c {
		return ExpectedErr(fmt.Sprintf("%q", string(c)), s.Pos())
	}
	s.advance(1)
	return nil
}

// Trivia consumes whitespace, newlines and comments and returns the exact
// bytes consumed.
func (s *Scanner) Trivia() string {
	start := s.i
	for !s.EOF() {
		switch s.d[s.i] {
		case ' ', '\t', '\r', '\n':
			s.advance(1)
		case '#':
			s.skipComment()
		default:
			return s.Raw(start, s.i)
		}
	}
	return s.Raw(start, s.i)
}

// Whitespace consumes spaces and tabs only.
func (s *Scanner) Whitespace() string {
	start := s.i
	for !s.EOF() {
		if c := s.d[s.i]; c == ' ' || c == '\t' {
			s.advance(1)
			continue
		}
		break
	}
	return s.Raw(start, s.i)
}

func (s *Scanner) skipComment() {
	for !s.EOF() && s.d[s.i] != '\n' {
		s.advance(1)
	}
}

// LineTrailing consumes whitespace, an optional comment, and the
// terminating newline (or end of input), returning the exact bytes.  It
// fails if anything else appears before the end of the line.
func (s *Scanner) LineTrailing() (string, error) {
	start := s.i
	for !s.EOF() {
		switch s.d[s.i] {
		case ' ', '\t', '\r':
			s.advance(1)
		case '#':
			s.skipComment()
		case '\n':
			s.advance(1)
			return s.Raw(start, s.i), nil
		default:
			return "", UnexpectedErr(fmt.Sprintf("%q after value", string(s.d[s.i])), s.Pos())
		}
	}
	return s.Raw(start, s.i), nil
}

// ScanKey scans one simple key token at the cursor.
func (s *Scanner) ScanKey() (SimpleKey, error) {
	if s.EOF() {
		return SimpleKey{}, ExpectedErr("key", s.Pos())
	}
	var raw string
	switch s.d[s.i] {
	case '"', '\'':
		var err error
		raw, err = s.ScanString()
		if err != nil {
			return SimpleKey{}, err
		}
	default:
		start := s.i
		for !s.EOF() && isBareKeyChar(s.d[s.i]) {
			s.advance(1)
		}
		if s.i == start {
			return SimpleKey{}, ExpectedErr("key", s.Pos())
		}
		raw = s.Raw(start, s.i)
	}
	k, err := ParseKey(raw)
	if err != nil {
		return SimpleKey{}, NewScanErr(err, s.Pos())
	}
	return k, nil
}

// ScanString scans a complete string token (any of the four TOML forms)
// and returns its raw text, delimiters included.
func (s *Scanner) ScanString() (string, error) {
	start := s.i
	q := s.d[s.i]
	multi := s.PeekAt(1) == q && s.PeekAt(2) == q
	if multi {
		s.advance(3)
		delim := bytes.Repeat([]byte{q}, 3)
		for !s.EOF() {
			if q == '"' && s.d[s.i] == '\\' {
				s.advance(2)
				continue
			}
			if bytes.HasPrefix(s.d[s.i:], delim) {
				s.advance(3)
				// content may end with up to two delimiter quotes
				for k := 0; k < 2 && s.Peek() == q; k++ {
					s.advance(1)
				}
				return s.Raw(start, s.i), nil
			}
			s.advance(1)
		}
		return "", NewScanErr(ErrUnterminated, s.pd.Pos(start))
	}
	s.advance(1)
	for !s.EOF() {
		c := s.d[s.i]
		if c == '\n' {
			break
		}
		if q == '"' && c == '\\' {
			s.advance(2)
			continue
		}
		s.advance(1)
		if c == q {
			return s.Raw(start, s.i), nil
		}
	}
	return "", NewScanErr(ErrUnterminated, s.pd.Pos(start))
}

func isScalarChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c == '_' || c == '-' || c == '+' || c == '.' || c == ':':
		return true
	default:
		return false
	}
}

// ScanScalar scans an unquoted scalar token: a number, boolean or
// date-time.  A space inside a date-time ("1979-05-27 07:32:00Z") is
// included when the text so far is a full date and a digit follows.
func (s *Scanner) ScanScalar() (string, error) {
	start := s.i
	for !s.EOF() && isScalarChar(s.d[s.i]) {
		s.advance(1)
	}
	if s.i == start {
		return "", ExpectedErr("value", s.Pos())
	}
	if IsFullDate(s.Raw(start, s.i)) && s.Peek() == ' ' && isDigit(s.PeekAt(1)) {
		s.advance(1)
		for !s.EOF() && isScalarChar(s.d[s.i]) {
			s.advance(1)
		}
	}
	return s.Raw(start, s.i), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsFullDate reports whether v has the exact shape of a TOML full date,
// yyyy-mm-dd.
func IsFullDate(v string) bool {
	if len(v) != 10 {
		return false
	}
	for i := 0; i < 10; i++ {
		if i == 4 || i == 7 {
			if v[i] != '-' {
				return false
			}
			continue
		}
		if !isDigit(v[i]) {
			return false
		}
	}
	return true
}
