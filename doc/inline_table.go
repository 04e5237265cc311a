package doc

import (
	"fmt"
	"iter"
	"slices"

	"github.com/toml-format/go-tomled/token"
)

type inlineKeyValue struct {
	key   Repr
	text  string
	value *Value
}

// InlineTable is a single-line table value: ordered key/value pairs whose
// payloads are always Values.  The preamble keeps the whitespace inside
// the braces of an empty table.
type InlineTable struct {
	slots    []*inlineKeyValue
	index    map[string]int
	preamble string
}

func NewInlineTable() *InlineTable {
	return &InlineTable{index: map[string]int{}}
}

func (t *InlineTable) Len() int {
	return len(t.slots)
}

func (t *InlineTable) ContainsKey(key string) bool {
	_, ok := t.index[key]
	return ok
}

func (t *InlineTable) Get(key string) *Value {
	i, ok := t.index[key]
	if !ok {
		return nil
	}
	return t.slots[i].value
}

// Set inserts or overwrites the value at key, keeping insertion order for
// new keys.  It fails when key is not a valid TOML key.
func (t *InlineTable) Set(key string, v *Value) error {
	k, err := token.ParseKey(key)
	if err != nil {
		return fmt.Errorf("inline table set %q: %w", key, err)
	}
	if v.decor == (Decor{}) {
		v.decor = NewDecor(" ", "")
	}
	if i, ok := t.index[k.Text]; ok {
		t.slots[i].value = v
		return nil
	}
	if t.index == nil {
		t.index = map[string]int{}
	}
	t.index[k.Text] = len(t.slots)
	t.slots = append(t.slots, &inlineKeyValue{
		key:   NewRepr(" ", k.Raw, " "),
		text:  k.Text,
		value: v,
	})
	return nil
}

func (t *InlineTable) Remove(key string) bool {
	i, ok := t.index[key]
	if !ok {
		return false
	}
	t.slots = slices.Delete(t.slots, i, i+1)
	delete(t.index, key)
	for j := i; j < len(t.slots); j++ {
		t.index[t.slots[j].text] = j
	}
	return true
}

func (t *InlineTable) Iter() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for _, kv := range t.slots {
			if !yield(kv.text, kv.value) {
				return
			}
		}
	}
}

// KeyRepr exposes the stored key representation for key, or nil.
func (t *InlineTable) KeyRepr(key string) *Repr {
	i, ok := t.index[key]
	if !ok {
		return nil
	}
	return &t.slots[i].key
}

func (t *InlineTable) Preamble() string {
	return t.preamble
}

func (t *InlineTable) SetPreamble(v string) {
	t.preamble = v
}
