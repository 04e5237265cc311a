package doc

import "errors"

var ErrPath = errors.New("invalid path")
