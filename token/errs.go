package token

import (
	"errors"
	"fmt"
)

var (
	ErrKey            = errors.New("invalid key")
	ErrUnterminated   = errors.New("unterminated string")
	ErrBadEscape      = errors.New("invalid escape")
	ErrBadUTF8        = errors.New("invalid utf8")
	ErrBadUnicode     = errors.New("invalid unicode escape")
	ErrUnicodeControl = errors.New("control character in string")
	ErrNumber         = errors.New("invalid number")
	ErrDateTime       = errors.New("invalid date-time")
)

type ScanErr struct {
	Err error
	Pos Pos
}

func (e *ScanErr) Unwrap() error {
	return e.Err
}

func NewScanErr(err error, p *Pos) *ScanErr {
	return &ScanErr{Err: err, Pos: *p}
}

func (e *ScanErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewScanErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewScanErr(fmt.Errorf("unexpected %s", what), p)
}
