package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/toml-format/go-tomled/doc"
	"github.com/toml-format/go-tomled/format"
	"github.com/toml-format/go-tomled/gomap"
	"github.com/toml-format/go-tomled/token"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	format format.Format
	indent int

	Color func(doc.ValueKind, ColorAttr, string) string
}

// Encode writes d to w.  The default format is TOML, which reproduces
// the document's stored decor and raw text; an unmodified parse encodes
// to its exact input.  A key/value line or header whose suffix carries
// no newline gets one appended, so a source lacking a final newline
// gains it.
func Encode(d *doc.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		format: format.TOMLFormat,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch {
	case es.format.IsJSON():
		return encodeJSON(d.Root(), w, es)
	case es.format.IsYAML():
		return encodeYAML(d, w, es)
	}
	if err := encodeTable(d.Root(), w, es, nil, false); err != nil {
		return err
	}
	return writeString(w, colorTrivia(es, d.Trailing()))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// writeLineEnd writes a line's trailing decor, appending a newline when
// the decor does not already end the line.
func writeLineEnd(w io.Writer, es *EncState, suffix string) error {
	if err := writeString(w, colorTrivia(es, suffix)); err != nil {
		return err
	}
	if strings.Contains(suffix, "\n") {
		return nil
	}
	return writeString(w, "\n")
}

// colorTrivia colors the comment runs inside decor text, leaving
// whitespace and newlines untouched.
func colorTrivia(es *EncState, v string) string {
	if es.Color == nil || !strings.Contains(v, "#") {
		return v
	}
	var b strings.Builder
	for len(v) > 0 {
		i := strings.IndexByte(v, '#')
		if i < 0 {
			b.WriteString(v)
			break
		}
		b.WriteString(v[:i])
		j := strings.IndexByte(v[i:], '\n')
		if j < 0 {
			j = len(v) - i
		}
		b.WriteString(es.Color(doc.StringKind, CommentColor, v[i:i+j]))
		v = v[i+j:]
	}
	return b.String()
}

func applyColor(es *EncState, k doc.ValueKind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(k, attr, v)
}

// encodeTable writes t's key/value lines, then its nested tables and
// arrays of tables, in insertion order.  path is t's key path from the
// root; the root itself has a nil path and no header.
func encodeTable(t *doc.Table, w io.Writer, es *EncState, path []string, aot bool) error {
	if path != nil {
		if err := encodeHeader(t, w, es, path, aot); err != nil {
			return err
		}
	}
	for key, it := range t.Iter() {
		v := it.AsValue()
		if v == nil {
			continue
		}
		if err := encodeKeyVal(t, key, v, w, es); err != nil {
			return err
		}
	}
	for key, it := range t.Iter() {
		switch {
		case it.IsTable():
			sub := it.AsTable()
			if err := encodeTable(sub, w, es, append(path, key), false); err != nil {
				return err
			}
		case it.IsArrayOfTables():
			for _, el := range it.AsArrayOfTables().Iter() {
				if err := encodeTable(el, w, es, append(path, key), true); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// encodeHeader writes t's [path] or [[path]] line.  A table that exists
// only as an intermediate dotted-path segment and holds no direct values
// gets no header of its own.
func encodeHeader(t *doc.Table, w io.Writer, es *EncState, path []string, aot bool) error {
	if t.IsImplicit() && t.ValuesLen() == 0 && !aot {
		return nil
	}
	raw := t.Header()
	if raw == "" {
		parts := make([]string, len(path))
		for i, k := range path {
			parts[i] = token.QuoteKey(k)
		}
		raw = strings.Join(parts, ".")
	}
	open, close := "[", "]"
	if aot {
		open, close = "[[", "]]"
	}
	if err := writeString(w, colorTrivia(es, t.Decor().Prefix())); err != nil {
		return err
	}
	line := applyColor(es, doc.StringKind, SepColor, open) +
		applyColor(es, doc.StringKind, HeaderColor, raw) +
		applyColor(es, doc.StringKind, SepColor, close)
	if err := writeString(w, line); err != nil {
		return err
	}
	return writeLineEnd(w, es, t.Decor().Suffix())
}

func encodeKeyVal(t *doc.Table, key string, v *doc.Value, w io.Writer, es *EncState) error {
	kr := t.KeyRepr(key)
	if err := writeString(w, colorTrivia(es, kr.Decor().Prefix())); err != nil {
		return err
	}
	head := applyColor(es, doc.StringKind, KeyColor, kr.Raw()) +
		kr.Decor().Suffix() +
		applyColor(es, doc.StringKind, SepColor, "=") +
		v.Decor().Prefix()
	if err := writeString(w, head); err != nil {
		return err
	}
	if err := encodeValue(v, w, es); err != nil {
		return err
	}
	return writeLineEnd(w, es, v.Decor().Suffix())
}

// encodeValue writes a value's body without its decor.  Leaf kinds use
// their stored raw text; arrays and inline tables are rendered from
// their parts.
func encodeValue(v *doc.Value, w io.Writer, es *EncState) error {
	switch v.Kind() {
	case doc.ArrayKind:
		return encodeArray(v.AsArray(), w, es)
	case doc.InlineTableKind:
		return encodeInlineTable(v.AsInlineTable(), w, es)
	default:
		return writeString(w, applyColor(es, v.Kind(), ValueColor, v.Raw()))
	}
}

func encodeArray(a *doc.Array, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, doc.ArrayKind, SepColor, "[")); err != nil {
		return err
	}
	n := a.Len()
	for i, el := range a.Iter() {
		if err := writeString(w, colorTrivia(es, el.Decor().Prefix())); err != nil {
			return err
		}
		if err := encodeValue(el, w, es); err != nil {
			return err
		}
		if err := writeString(w, colorTrivia(es, el.Decor().Suffix())); err != nil {
			return err
		}
		if i < n-1 || a.TrailingComma() {
			if err := writeString(w, applyColor(es, doc.ArrayKind, SepColor, ",")); err != nil {
				return err
			}
		}
	}
	if err := writeString(w, colorTrivia(es, a.Trailing())); err != nil {
		return err
	}
	return writeString(w, applyColor(es, doc.ArrayKind, SepColor, "]"))
}

func encodeInlineTable(t *doc.InlineTable, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, doc.InlineTableKind, SepColor, "{")); err != nil {
		return err
	}
	if t.Len() == 0 {
		if err := writeString(w, t.Preamble()); err != nil {
			return err
		}
		return writeString(w, applyColor(es, doc.InlineTableKind, SepColor, "}"))
	}
	i, n := 0, t.Len()
	for key, v := range t.Iter() {
		kr := t.KeyRepr(key)
		head := kr.Decor().Prefix() +
			applyColor(es, doc.StringKind, KeyColor, kr.Raw()) +
			kr.Decor().Suffix() +
			applyColor(es, doc.InlineTableKind, SepColor, "=") +
			v.Decor().Prefix()
		if err := writeString(w, head); err != nil {
			return err
		}
		if err := encodeValue(v, w, es); err != nil {
			return err
		}
		if err := writeString(w, v.Decor().Suffix()); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeString(w, applyColor(es, doc.InlineTableKind, SepColor, ",")); err != nil {
				return err
			}
		}
		i++
	}
	return writeString(w, applyColor(es, doc.InlineTableKind, SepColor, "}"))
}

// JSON encoding discards decor but keeps insertion order.

func encodeJSON(t *doc.Table, w io.Writer, es *EncState) error {
	buf := bytes.NewBuffer(nil)
	if err := jsonTable(buf, t, es, 0); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func jsonIndent(buf *bytes.Buffer, es *EncState, depth int) {
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.indent*depth))
}

func jsonKey(buf *bytes.Buffer, key string) error {
	b, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(b)
	buf.WriteString(": ")
	return nil
}

func jsonTable(buf *bytes.Buffer, t *doc.Table, es *EncState, depth int) error {
	if t.Len() == 0 {
		buf.WriteString("{}")
		return nil
	}
	buf.WriteByte('{')
	i, n := 0, t.Len()
	for key, it := range t.Iter() {
		if it.IsNone() {
			continue
		}
		jsonIndent(buf, es, depth+1)
		if err := jsonKey(buf, key); err != nil {
			return err
		}
		if err := jsonItem(buf, it, es, depth+1); err != nil {
			return err
		}
		if i < n-1 {
			buf.WriteByte(',')
		}
		i++
	}
	jsonIndent(buf, es, depth)
	buf.WriteByte('}')
	return nil
}

func jsonItem(buf *bytes.Buffer, it *doc.Item, es *EncState, depth int) error {
	switch {
	case it.IsValue():
		return jsonValue(buf, it.AsValue(), es, depth)
	case it.IsTable():
		return jsonTable(buf, it.AsTable(), es, depth)
	case it.IsArrayOfTables():
		a := it.AsArrayOfTables()
		if a.Len() == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteByte('[')
		for i, el := range a.Iter() {
			jsonIndent(buf, es, depth+1)
			if err := jsonTable(buf, el, es, depth+1); err != nil {
				return err
			}
			if i < a.Len()-1 {
				buf.WriteByte(',')
			}
		}
		jsonIndent(buf, es, depth)
		buf.WriteByte(']')
		return nil
	default:
		return fmt.Errorf("%w: absent item", ErrEncoding)
	}
}

func jsonValue(buf *bytes.Buffer, v *doc.Value, es *EncState, depth int) error {
	switch v.Kind() {
	case doc.ArrayKind:
		a := v.AsArray()
		if a.Len() == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteByte('[')
		for i, el := range a.Iter() {
			jsonIndent(buf, es, depth+1)
			if err := jsonValue(buf, el, es, depth+1); err != nil {
				return err
			}
			if i < a.Len()-1 {
				buf.WriteByte(',')
			}
		}
		jsonIndent(buf, es, depth)
		buf.WriteByte(']')
		return nil
	case doc.InlineTableKind:
		t := v.AsInlineTable()
		if t.Len() == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteByte('{')
		i, n := 0, t.Len()
		for key, el := range t.Iter() {
			jsonIndent(buf, es, depth+1)
			if err := jsonKey(buf, key); err != nil {
				return err
			}
			if err := jsonValue(buf, el, es, depth+1); err != nil {
				return err
			}
			if i < n-1 {
				buf.WriteByte(',')
			}
			i++
		}
		jsonIndent(buf, es, depth)
		buf.WriteByte('}')
		return nil
	case doc.FloatKind:
		f, _ := v.AsFloat()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("%w: %s has no JSON form", ErrEncoding, v.Raw())
		}
	case doc.DateTimeKind:
		b, err := json.Marshal(v.AsDateTime().String())
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}
	b, err := json.Marshal(jsonLeaf(v))
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

func jsonLeaf(v *doc.Value) any {
	if i, ok := v.AsInteger(); ok {
		return i
	}
	if f, ok := v.AsFloat(); ok {
		return f
	}
	if b, ok := v.AsBool(); ok {
		return b
	}
	if s, ok := v.AsString(); ok {
		return s
	}
	return nil
}

// YAML goes through the ordered plain-Go projection.

func encodeYAML(d *doc.Document, w io.Writer, es *EncState) error {
	ms, err := gomap.FromDocumentOrdered(d)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	out, err := yaml.Marshal(ms)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(out)
	return err
}
