package gomap

import (
	"fmt"

	"github.com/toml-format/go-tomled/doc"

	"github.com/goccy/go-yaml"
)

// FromDocument flattens d into maps, slices and scalars.  Decor is
// dropped; map iteration order is Go's.
func FromDocument(d *doc.Document) map[string]any {
	return FromTable(d.Root())
}

func FromTable(t *doc.Table) map[string]any {
	m := map[string]any{}
	for key, it := range t.Iter() {
		if it.IsNone() {
			continue
		}
		m[key] = FromItem(it)
	}
	return m
}

func FromItem(it *doc.Item) any {
	switch {
	case it.IsValue():
		return FromValue(it.AsValue())
	case it.IsTable():
		return FromTable(it.AsTable())
	case it.IsArrayOfTables():
		a := it.AsArrayOfTables()
		out := make([]any, 0, a.Len())
		for _, el := range a.Iter() {
			out = append(out, FromTable(el))
		}
		return out
	default:
		return nil
	}
}

func FromValue(v *doc.Value) any {
	switch v.Kind() {
	case doc.IntegerKind:
		i, _ := v.AsInteger()
		return i
	case doc.FloatKind:
		f, _ := v.AsFloat()
		return f
	case doc.BoolKind:
		b, _ := v.AsBool()
		return b
	case doc.StringKind:
		s, _ := v.AsString()
		return s
	case doc.DateTimeKind:
		return v.AsDateTime().String()
	case doc.ArrayKind:
		a := v.AsArray()
		out := make([]any, 0, a.Len())
		for _, el := range a.Iter() {
			out = append(out, FromValue(el))
		}
		return out
	case doc.InlineTableKind:
		t := v.AsInlineTable()
		m := map[string]any{}
		for key, el := range t.Iter() {
			m[key] = FromValue(el)
		}
		return m
	default:
		panic(fmt.Sprintf("gomap: value kind %s", v.Kind()))
	}
}

// FromDocumentOrdered flattens d keeping insertion order, producing a
// yaml.MapSlice tree for order-preserving marshalers.
func FromDocumentOrdered(d *doc.Document) (yaml.MapSlice, error) {
	return fromTableOrdered(d.Root())
}

func fromTableOrdered(t *doc.Table) (yaml.MapSlice, error) {
	ms := yaml.MapSlice{}
	for key, it := range t.Iter() {
		if it.IsNone() {
			continue
		}
		v, err := FromItemOrdered(it)
		if err != nil {
			return nil, err
		}
		ms = append(ms, yaml.MapItem{Key: key, Value: v})
	}
	return ms, nil
}

// FromItemOrdered flattens one item keeping table key order.
func FromItemOrdered(it *doc.Item) (any, error) {
	switch {
	case it.IsValue():
		return fromValueOrdered(it.AsValue())
	case it.IsTable():
		return fromTableOrdered(it.AsTable())
	case it.IsArrayOfTables():
		a := it.AsArrayOfTables()
		out := make([]any, 0, a.Len())
		for _, el := range a.Iter() {
			ms, err := fromTableOrdered(el)
			if err != nil {
				return nil, err
			}
			out = append(out, ms)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: absent item", ErrUnsupported)
	}
}

func fromValueOrdered(v *doc.Value) (any, error) {
	switch v.Kind() {
	case doc.ArrayKind:
		a := v.AsArray()
		out := make([]any, 0, a.Len())
		for _, el := range a.Iter() {
			x, err := fromValueOrdered(el)
			if err != nil {
				return nil, err
			}
			out = append(out, x)
		}
		return out, nil
	case doc.InlineTableKind:
		t := v.AsInlineTable()
		ms := yaml.MapSlice{}
		for key, el := range t.Iter() {
			x, err := fromValueOrdered(el)
			if err != nil {
				return nil, err
			}
			ms = append(ms, yaml.MapItem{Key: key, Value: x})
		}
		return ms, nil
	default:
		return FromValue(v), nil
	}
}
