package gomap

import "errors"

var (
	ErrUnsupported = errors.New("unsupported go value")
	ErrNull        = errors.New("null has no TOML form")
)
