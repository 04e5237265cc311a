package token

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseInteger decodes a TOML integer literal: decimal with optional sign
// and underscore separators, or 0x/0o/0b prefixed.
func ParseInteger(raw string) (int64, error) {
	v := raw
	neg := false
	switch {
	case strings.HasPrefix(v, "+"):
		v = v[1:]
	case strings.HasPrefix(v, "-"):
		neg = true
		v = v[1:]
	}
	base := 10
	switch {
	case strings.HasPrefix(v, "0x"):
		base, v = 16, v[2:]
	case strings.HasPrefix(v, "0o"):
		base, v = 8, v[2:]
	case strings.HasPrefix(v, "0b"):
		base, v = 2, v[2:]
	}
	v, err := stripUnderscores(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumber, raw)
	}
	if v == "" {
		return 0, fmt.Errorf("%w: %q", ErrNumber, raw)
	}
	i, err := strconv.ParseInt(sign(neg)+v, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumber, raw)
	}
	return i, nil
}

func sign(neg bool) string {
	if neg {
		return "-"
	}
	return ""
}

// ParseFloat decodes a TOML float literal, including inf and nan forms and
// underscore separators.
func ParseFloat(raw string) (float64, error) {
	v := raw
	neg := false
	switch {
	case strings.HasPrefix(v, "+"):
		v = v[1:]
	case strings.HasPrefix(v, "-"):
		neg = true
		v = v[1:]
	}
	switch v {
	case "inf":
		return math.Inf(boolToSign(neg)), nil
	case "nan":
		return math.NaN(), nil
	}
	v, err := stripUnderscores(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumber, raw)
	}
	f, err := strconv.ParseFloat(sign(neg)+v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumber, raw)
	}
	return f, nil
}

func boolToSign(neg bool) int {
	if neg {
		return -1
	}
	return 1
}

// stripUnderscores removes separator underscores, requiring a digit on
// both sides of each one.
func stripUnderscores(v string) (string, error) {
	if !strings.ContainsRune(v, '_') {
		return v, nil
	}
	b := &strings.Builder{}
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c != '_' {
			b.WriteByte(c)
			continue
		}
		if i == 0 || i == len(v)-1 {
			return "", ErrNumber
		}
		if !isHexDigit(v[i-1]) || !isHexDigit(v[i+1]) {
			return "", ErrNumber
		}
	}
	return b.String(), nil
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
