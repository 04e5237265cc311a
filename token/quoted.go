package token

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote renders v as a single-line TOML basic string, including the
// surrounding quotes.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				d = append(d, []byte(fmt.Sprintf("\\u%04X", r))...)
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote decodes any TOML string form, dispatching on the delimiters.
func Unquote(raw string) (string, error) {
	switch {
	case strings.HasPrefix(raw, `"""`):
		return UnquoteMultilineBasic(raw)
	case strings.HasPrefix(raw, `"`):
		return UnquoteBasic(raw)
	case strings.HasPrefix(raw, `'''`):
		return UnquoteMultilineLiteral(raw)
	case strings.HasPrefix(raw, `'`):
		return UnquoteLiteral(raw)
	default:
		return "", fmt.Errorf("%w: not a string: %q", ErrBadEscape, raw)
	}
}

// UnquoteBasic decodes a single-line basic string, delimiters included.
func UnquoteBasic(raw string) (string, error) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return "", ErrUnterminated
	}
	return unescape(raw[1 : len(raw)-1], false)
}

// UnquoteLiteral decodes a single-line literal string, delimiters included.
func UnquoteLiteral(raw string) (string, error) {
	if len(raw) < 2 || raw[0] != '\'' || raw[len(raw)-1] != '\'' {
		return "", ErrUnterminated
	}
	body := raw[1 : len(raw)-1]
	if strings.ContainsRune(body, '\'') {
		return "", ErrUnterminated
	}
	return body, nil
}

// UnquoteMultilineBasic decodes a """ ... """ string, delimiters included.
// A newline immediately following the opening delimiter is trimmed, and a
// backslash at the end of a line elides all following whitespace.
func UnquoteMultilineBasic(raw string) (string, error) {
	if len(raw) < 6 || !strings.HasPrefix(raw, `"""`) || !strings.HasSuffix(raw, `"""`) {
		return "", ErrUnterminated
	}
	body := trimLeadingNewline(raw[3 : len(raw)-3])
	return unescape(body, true)
}

// UnquoteMultilineLiteral decodes a ''' ... ''' string, delimiters included.
func UnquoteMultilineLiteral(raw string) (string, error) {
	if len(raw) < 6 || !strings.HasPrefix(raw, `'''`) || !strings.HasSuffix(raw, `'''`) {
		return "", ErrUnterminated
	}
	return trimLeadingNewline(raw[3 : len(raw)-3]), nil
}

func trimLeadingNewline(v string) string {
	if strings.HasPrefix(v, "\r\n") {
		return v[2:]
	}
	if strings.HasPrefix(v, "\n") {
		return v[1:]
	}
	return v
}

func unescape(body string, multiline bool) (string, error) {
	b := &strings.Builder{}
	i := 0
	n := len(body)
	for i < n {
		r, sz := utf8.DecodeRuneInString(body[i:])
		if r == utf8.RuneError && sz == 1 {
			return "", ErrBadUTF8
		}
		if r != '\\' {
			if r == '\n' || r == '\r' {
				if !multiline {
					return "", ErrUnterminated
				}
			} else if r != '\t' && unicode.IsControl(r) {
				return "", ErrUnicodeControl
			}
			b.WriteRune(r)
			i += sz
			continue
		}
		i++
		if i >= n {
			return "", ErrBadEscape
		}
		switch body[i] {
		case 'b':
			b.WriteByte('\b')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case '"':
			b.WriteByte('"')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		case 'u':
			r, err := hexRune(body[i+1:], 4)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += 5
		case 'U':
			r, err := hexRune(body[i+1:], 8)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += 9
		default:
			// line-ending backslash: whitespace through at least one
			// newline is elided
			if !multiline {
				return "", ErrBadEscape
			}
			j := i
			sawNL := false
			for j < n {
				switch body[j] {
				case ' ', '\t', '\r':
					j++
					continue
				case '\n':
					sawNL = true
					j++
					continue
				}
				break
			}
			if !sawNL {
				return "", ErrBadEscape
			}
			i = j
		}
	}
	return b.String(), nil
}

func hexRune(v string, n int) (rune, error) {
	if len(v) < n {
		return 0, ErrBadUnicode
	}
	var r rune
	for i := 0; i < n; i++ {
		c := v[i]
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, ErrBadUnicode
		}
		r = r<<4 | d
	}
	if !utf8.ValidRune(r) {
		return 0, ErrBadUnicode
	}
	return r, nil
}
