package encode

import (
	"bytes"
	"io"

	"github.com/toml-format/go-tomled/doc"
	"github.com/toml-format/go-tomled/format"
)

// MustString renders d as TOML, panicking on write errors.  Handy in
// tests and tools that encode to memory.
func MustString(d *doc.Document, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(d, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

// EncodeValue writes a single value's body, without the decor around it
// on its line.
func EncodeValue(v *doc.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		format: format.TOMLFormat,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encodeValue(v, w, es)
}
