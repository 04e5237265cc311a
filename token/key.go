package token

import (
	"fmt"
	"strings"
)

// SimpleKey pairs a key's exact source text with its decoded form.  Raw
// keeps quoting and escaping as written; Text is the decoded key used for
// lookups.
type SimpleKey struct {
	Raw  string
	Text string
}

func isBareKeyChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	default:
		return false
	}
}

// IsBareKey reports whether v can be written without quotes.
func IsBareKey(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if !isBareKeyChar(v[i]) {
			return false
		}
	}
	return true
}

// ParseKey parses a single (non-dotted) TOML key.  The input must be
// exactly one bare, basic-quoted or literal-quoted key with no surrounding
// whitespace.
func ParseKey(v string) (SimpleKey, error) {
	if v == "" {
		return SimpleKey{}, fmt.Errorf("%w: empty", ErrKey)
	}
	switch v[0] {
	case '"':
		text, err := UnquoteBasic(v)
		if err != nil {
			return SimpleKey{}, fmt.Errorf("%w: %w", ErrKey, err)
		}
		if strings.ContainsRune(text, '\n') {
			return SimpleKey{}, fmt.Errorf("%w: newline in key", ErrKey)
		}
		return SimpleKey{Raw: v, Text: text}, nil
	case '\'':
		text, err := UnquoteLiteral(v)
		if err != nil {
			return SimpleKey{}, fmt.Errorf("%w: %w", ErrKey, err)
		}
		if strings.ContainsRune(text, '\n') {
			return SimpleKey{}, fmt.Errorf("%w: newline in key", ErrKey)
		}
		return SimpleKey{Raw: v, Text: text}, nil
	default:
		if !IsBareKey(v) {
			return SimpleKey{}, fmt.Errorf("%w: %q", ErrKey, v)
		}
		return SimpleKey{Raw: v, Text: v}, nil
	}
}

// QuoteKey renders a decoded key for writing: bare when possible, basic
// quoted otherwise.
func QuoteKey(v string) string {
	if IsBareKey(v) {
		return v
	}
	return Quote(v)
}
