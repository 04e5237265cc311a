package doc

import (
	"fmt"
	"strings"
	"time"

	"github.com/toml-format/go-tomled/token"
)

// DateTimeVariant distinguishes the four TOML date-time forms.
type DateTimeVariant int

const (
	OffsetDateTime DateTimeVariant = iota
	LocalDateTime
	LocalDate
	LocalTime
)

// DateTime is a TOML date-time of any of the four forms.  The semantic
// instant lives in Time; local forms carry no offset information beyond
// what time.Parse assigns.
type DateTime struct {
	Kind DateTimeVariant
	Time time.Time
}

const (
	layoutLocalDateTime = "2006-01-02T15:04:05.999999999"
	layoutLocalDate     = "2006-01-02"
	layoutLocalTime     = "15:04:05.999999999"
)

func (d DateTime) String() string {
	switch d.Kind {
	case OffsetDateTime:
		return d.Time.Format(time.RFC3339Nano)
	case LocalDateTime:
		return d.Time.Format(layoutLocalDateTime)
	case LocalDate:
		return d.Time.Format(layoutLocalDate)
	case LocalTime:
		return d.Time.Format(layoutLocalTime)
	default:
		return d.Time.Format(time.RFC3339Nano)
	}
}

// ParseDateTime decodes a TOML date-time literal of any form.  A space
// separating date and time is accepted and normalized to 'T' for parsing.
func ParseDateTime(raw string) (DateTime, error) {
	v := raw
	if len(v) > 10 && v[10] == ' ' {
		v = v[:10] + "T" + v[11:]
	}
	if t, err := time.Parse(time.RFC3339Nano, normalizeT(v)); err == nil {
		return DateTime{Kind: OffsetDateTime, Time: t}, nil
	}
	if t, err := time.Parse(layoutLocalDateTime, normalizeT(v)); err == nil {
		return DateTime{Kind: LocalDateTime, Time: t}, nil
	}
	if t, err := time.Parse(layoutLocalDate, v); err == nil {
		return DateTime{Kind: LocalDate, Time: t}, nil
	}
	if t, err := time.Parse(layoutLocalTime, v); err == nil {
		return DateTime{Kind: LocalTime, Time: t}, nil
	}
	return DateTime{}, fmt.Errorf("%w: %q", token.ErrDateTime, raw)
}

// normalizeT uppercases a lowercase 't' or 'z' separator, which RFC 3339
// layouts do not accept.
func normalizeT(v string) string {
	if len(v) > 10 && v[10] == 't' {
		v = v[:10] + "T" + v[11:]
	}
	if strings.HasSuffix(v, "z") {
		v = v[:len(v)-1] + "Z"
	}
	return v
}

// LooksLikeDateTime reports whether raw plausibly starts a date-time: a
// full date prefix or a time prefix.
func LooksLikeDateTime(raw string) bool {
	if len(raw) >= 10 && raw[4] == '-' && raw[7] == '-' {
		return true
	}
	if len(raw) >= 8 && raw[2] == ':' && raw[5] == ':' {
		return true
	}
	return false
}
