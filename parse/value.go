package parse

import (
	"fmt"
	"strings"

	"github.com/toml-format/go-tomled/doc"
	"github.com/toml-format/go-tomled/token"
)

// ParseValue decodes a single TOML value, such as a scalar, array or
// inline table typed on a command line.  Surrounding whitespace is
// discarded; the value is decorated for insertion after an '='.
func ParseValue(d []byte) (*doc.Value, error) {
	s := token.NewScanner(d)
	s.Trivia()
	v, err := parseValue(s)
	if err != nil {
		return nil, err
	}
	s.Trivia()
	if !s.EOF() {
		return nil, fmt.Errorf("%w: %s", ErrParse, token.UnexpectedErr(fmt.Sprintf("%q after value", string(s.Peek())), s.Pos()))
	}
	v.Decor().SetPrefix(" ")
	v.Decor().SetSuffix("")
	return v, nil
}

func parseValue(s *token.Scanner) (*doc.Value, error) {
	switch s.Peek() {
	case '"', '\'':
		raw, err := s.ScanString()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		txt, err := token.Unquote(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return doc.FromString(txt).WithRaw(raw), nil
	case '[':
		return parseArray(s)
	case '{':
		return parseInlineTable(s)
	default:
		pos := s.Pos()
		raw, err := s.ScanScalar()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return scalarValue(raw, pos)
	}
}

// scalarValue decides what an unquoted scalar token is and decodes it,
// keeping raw as its source text.
func scalarValue(raw string, pos *token.Pos) (*doc.Value, error) {
	switch raw {
	case "true":
		return doc.FromBool(true).WithRaw(raw), nil
	case "false":
		return doc.FromBool(false).WithRaw(raw), nil
	}
	if doc.LooksLikeDateTime(raw) {
		dt, err := doc.ParseDateTime(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w %s", ErrParse, err, pos)
		}
		return doc.FromDateTime(dt).WithRaw(raw), nil
	}
	if isFloatShape(raw) {
		f, err := token.ParseFloat(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w %s", ErrParse, err, pos)
		}
		return doc.FromFloat(f).WithRaw(raw), nil
	}
	i, err := token.ParseInteger(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w %s", ErrParse, err, pos)
	}
	return doc.FromInt(i).WithRaw(raw), nil
}

// isFloatShape reports whether an unquoted numeric token must be a
// float: it has a fraction or exponent, or is an inf/nan form.  Prefixed
// integers (0x, 0o, 0b) are never floats even though hex digits include
// 'e' and 'E'.
func isFloatShape(raw string) bool {
	v := strings.TrimLeft(raw, "+-")
	switch v {
	case "inf", "nan":
		return true
	}
	if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0o") || strings.HasPrefix(v, "0b") {
		return false
	}
	return strings.ContainsAny(v, ".eE")
}

func parseArray(s *token.Scanner) (*doc.Value, error) {
	open := s.Pos()
	s.Expect('[')
	arr := doc.NewArray()
	first := true
	for {
		trivia := s.Trivia()
		if s.EOF() {
			return nil, fmt.Errorf("%w: array: %w %s", ErrParse, token.ErrUnterminated, open)
		}
		if s.Peek() == ']' {
			s.Expect(']')
			arr.SetTrailing(trivia)
			arr.SetTrailingComma(!first)
			return doc.FromArray(arr), nil
		}
		v, err := parseValue(s)
		if err != nil {
			return nil, err
		}
		v.Decor().SetPrefix(trivia)
		v.Decor().SetSuffix(s.Trivia())
		arr.Append(v)
		first = false
		switch s.Peek() {
		case ',':
			s.Expect(',')
		case ']':
			s.Expect(']')
			return doc.FromArray(arr), nil
		default:
			if s.EOF() {
				return nil, fmt.Errorf("%w: array: %w %s", ErrParse, token.ErrUnterminated, open)
			}
			return nil, fmt.Errorf("%w: %s", ErrParse, token.ExpectedErr(`"," or "]"`, s.Pos()))
		}
	}
}

func parseInlineTable(s *token.Scanner) (*doc.Value, error) {
	s.Expect('{')
	t := doc.NewInlineTable()
	ws := s.Whitespace()
	if s.Peek() == '}' {
		s.Expect('}')
		t.SetPreamble(ws)
		return doc.FromInlineTable(t), nil
	}
	for {
		pos := s.Pos()
		k, err := s.ScanKey()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		afterKey := s.Whitespace()
		if err := s.Expect('='); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		afterEq := s.Whitespace()
		v, err := parseValue(s)
		if err != nil {
			return nil, err
		}
		suffix := s.Whitespace()
		if t.ContainsKey(k.Text) {
			return nil, fmt.Errorf("%w: %q %s", ErrDuplicateKey, k.Text, pos)
		}
		if err := t.Set(k.Raw, v); err != nil {
			return nil, fmt.Errorf("%w: %w %s", ErrParse, err, pos)
		}
		kr := t.KeyRepr(k.Text)
		kr.Decor().SetPrefix(ws)
		kr.Decor().SetSuffix(afterKey)
		v.Decor().SetPrefix(afterEq)
		v.Decor().SetSuffix(suffix)
		switch s.Peek() {
		case ',':
			s.Expect(',')
			ws = s.Whitespace()
		case '}':
			s.Expect('}')
			return doc.FromInlineTable(t), nil
		default:
			return nil, fmt.Errorf("%w: %s", ErrParse, token.ExpectedErr(`"," or "}"`, s.Pos()))
		}
	}
}
