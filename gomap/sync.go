package gomap

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/toml-format/go-tomled/doc"
)

// Sync edits d in place so its plain-Go projection equals v, keeping
// the formatting of every key and value that did not change.  Changed
// leaves keep their slot decor; removed keys take their decor with
// them; added keys are appended in sorted order.
func Sync(d *doc.Document, v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return ErrUnsupported
	}
	return syncTable(d.Root(), m)
}

func syncTable(t *doc.Table, m map[string]any) error {
	var gone []string
	for key, it := range t.Iter() {
		if it.IsNone() {
			continue
		}
		if _, ok := m[key]; !ok {
			gone = append(gone, key)
		}
	}
	for _, key := range gone {
		t.Remove(key)
	}
	for _, p := range sortedPairs(m) {
		if err := syncEntry(t, p.key, p.val); err != nil {
			return err
		}
	}
	return nil
}

func syncEntry(t *doc.Table, key string, mv any) error {
	it := t.Get(key)
	if it == nil || it.IsNone() {
		return SetEntry(t, key, mv)
	}
	if sub := it.AsTable(); sub != nil {
		if m, ok := mv.(map[string]any); ok {
			return syncTable(sub, m)
		}
	}
	if a := it.AsArrayOfTables(); a != nil {
		if xs, ok := mv.([]any); ok {
			if len(xs) == 0 {
				a.Clear()
				return nil
			}
			if allMaps(xs) {
				return syncAOT(a, xs)
			}
		}
	}
	if v := it.AsValue(); v != nil {
		if jsonEq(FromValue(v), mv) {
			return nil
		}
		nv, err := replacementValue(v, mv)
		if err == nil {
			nv.WithDecor(v.Decor().Prefix(), v.Decor().Suffix())
			*it = doc.ItemOfValue(nv)
			return nil
		}
	}
	// shape changed
	t.Remove(key)
	return SetEntry(t, key, mv)
}

func syncAOT(a *doc.ArrayOfTables, xs []any) error {
	for a.Len() > len(xs) {
		a.Remove(a.Len() - 1)
	}
	for i, x := range xs {
		m, ok := x.(map[string]any)
		if !ok {
			return ErrUnsupported
		}
		if i < a.Len() {
			if err := syncTable(a.Get(i), m); err != nil {
				return err
			}
			continue
		}
		nt := a.Append(doc.NewTable())
		if err := syncTable(nt, m); err != nil {
			return err
		}
	}
	return nil
}

// replacementValue builds the new leaf for mv.  A whole number keeps
// integer form when the value it replaces was an integer, since JSON
// decoding loses that distinction.
func replacementValue(old *doc.Value, mv any) (*doc.Value, error) {
	if f, ok := mv.(float64); ok && old.IsInteger() && f == math.Trunc(f) {
		return doc.FromInt(int64(f)), nil
	}
	if s, ok := mv.(string); ok && old.IsDateTime() {
		if dt, err := doc.ParseDateTime(s); err == nil {
			return doc.FromDateTime(dt), nil
		}
	}
	return ToValue(mv)
}

// jsonEq compares two plain values through their canonical JSON bytes,
// which sorts map keys and renders whole floats like integers.
func jsonEq(a, b any) bool {
	ab, aerr := json.Marshal(a)
	bb, berr := json.Marshal(b)
	if aerr != nil || berr != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}
