package gomap

import (
	"fmt"
	"sort"
	"time"

	"github.com/toml-format/go-tomled/doc"
	"github.com/toml-format/go-tomled/token"

	"github.com/goccy/go-yaml"
)

// ToDocument builds a fresh document from a plain Go value, which must
// be a map[string]any or yaml.MapSlice at the top level.  Plain maps are
// written in sorted key order; MapSlice keeps its own order.  Slices
// whose elements are all maps become arrays of tables.
func ToDocument(v any) (*doc.Document, error) {
	d := doc.NewDocument()
	switch m := v.(type) {
	case map[string]any:
		if err := fillTable(d.Root(), sortedPairs(m)); err != nil {
			return nil, err
		}
	case yaml.MapSlice:
		if err := fillTable(d.Root(), slicePairs(m)); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: document root %T", ErrUnsupported, v)
	}
	return d, nil
}

type pair struct {
	key string
	val any
}

func sortedPairs(m map[string]any) []pair {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]pair, 0, len(m))
	for _, k := range keys {
		out = append(out, pair{key: k, val: m[k]})
	}
	return out
}

func slicePairs(ms yaml.MapSlice) []pair {
	out := make([]pair, 0, len(ms))
	for _, mi := range ms {
		out = append(out, pair{key: fmt.Sprint(mi.Key), val: mi.Value})
	}
	return out
}

func fillTable(t *doc.Table, pairs []pair) error {
	for _, p := range pairs {
		if err := SetEntry(t, p.key, p.val); err != nil {
			return err
		}
	}
	return nil
}

// SetEntry writes a plain Go value under key in t, choosing the natural
// document shape: maps become nested tables, slices of maps become
// arrays of tables, everything else a value.
func SetEntry(t *doc.Table, key string, v any) error {
	it, err := t.Entry(token.QuoteKey(key))
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case map[string]any:
		*it = doc.TableItem()
		return fillTable(it.AsTable(), sortedPairs(x))
	case yaml.MapSlice:
		*it = doc.TableItem()
		return fillTable(it.AsTable(), slicePairs(x))
	case []any:
		if len(x) > 0 && allMaps(x) {
			*it = doc.ArrayOfTablesItem()
			a := it.AsArrayOfTables()
			for _, el := range x {
				nt := a.Append(doc.NewTable())
				switch m := el.(type) {
				case map[string]any:
					if err := fillTable(nt, sortedPairs(m)); err != nil {
						return err
					}
				case yaml.MapSlice:
					if err := fillTable(nt, slicePairs(m)); err != nil {
						return err
					}
				}
			}
			return nil
		}
	}
	val, err := ToValue(v)
	if err != nil {
		return fmt.Errorf("key %q: %w", key, err)
	}
	*it = doc.ItemOfValue(val.WithDecor(" ", ""))
	return nil
}

func allMaps(xs []any) bool {
	for _, x := range xs {
		switch x.(type) {
		case map[string]any, yaml.MapSlice:
		default:
			return false
		}
	}
	return true
}

// ToValue converts a plain Go value into a document value.  Maps become
// inline tables.
func ToValue(v any) (*doc.Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, ErrNull
	case bool:
		return doc.FromBool(x), nil
	case int:
		return doc.FromInt(int64(x)), nil
	case int64:
		return doc.FromInt(x), nil
	case float64:
		return doc.FromFloat(x), nil
	case string:
		return doc.FromString(x), nil
	case time.Time:
		return doc.FromDateTime(doc.DateTime{Kind: doc.OffsetDateTime, Time: x}), nil
	case doc.DateTime:
		return doc.FromDateTime(x), nil
	case []any:
		arr := doc.NewArray()
		for _, el := range x {
			ev, err := ToValue(el)
			if err != nil {
				return nil, err
			}
			arr.Append(ev)
		}
		return doc.FromArray(arr), nil
	case map[string]any:
		return inlineFromPairs(sortedPairs(x))
	case yaml.MapSlice:
		return inlineFromPairs(slicePairs(x))
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func inlineFromPairs(pairs []pair) (*doc.Value, error) {
	t := doc.NewInlineTable()
	for _, p := range pairs {
		pv, err := ToValue(p.val)
		if err != nil {
			return nil, err
		}
		if err := t.Set(token.QuoteKey(p.key), pv); err != nil {
			return nil, err
		}
	}
	return doc.FromInlineTable(t), nil
}
