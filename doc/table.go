package doc

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/toml-format/go-tomled/token"
)

type tableKeyValue struct {
	key  Repr
	text string
	item *Item
}

// Table is an ordered, duplicate-free mapping from key text to key/value
// slots, together with the decorative text around its header and a flag
// marking tables that exist only as intermediate segments of a dotted
// header path.
type Table struct {
	slots    []*tableKeyValue
	index    map[string]int
	decor    Decor
	header   string
	implicit bool
}

// NewTable returns an empty table decorated with a single leading newline.
func NewTable() *Table {
	return &Table{
		index: map[string]int{},
		decor: NewDecor("\n", ""),
	}
}

func (t *Table) Decor() *Decor {
	return &t.decor
}

// Header is the exact text between the brackets of this table's header as
// written in the source, or "" when the table was never written with an
// explicit header.
func (t *Table) Header() string {
	return t.header
}

func (t *Table) SetHeader(raw string) {
	t.header = raw
}

// SetImplicit marks a table that exists only because a descendant dotted
// path was written; such a table is not serialized as its own header while
// it has no direct key/value children.
func (t *Table) SetImplicit(implicit bool) {
	t.implicit = implicit
}

func (t *Table) IsImplicit() bool {
	return t.implicit
}

// ContainsKey reports whether a slot exists for key and holds a non-absent
// item.  A key probed via Entry but never assigned is not contained.
func (t *Table) ContainsKey(key string) bool {
	kv := t.kv(key)
	return kv != nil && !kv.item.IsNone()
}

func (t *Table) ContainsTable(key string) bool {
	kv := t.kv(key)
	return kv != nil && kv.item.IsTable()
}

func (t *Table) ContainsValue(key string) bool {
	kv := t.kv(key)
	return kv != nil && kv.item.IsValue()
}

func (t *Table) ContainsArrayOfTables(key string) bool {
	kv := t.kv(key)
	return kv != nil && kv.item.IsArrayOfTables()
}

// Get returns the item at key, or nil when no slot was ever created for
// it.  Unlike ContainsKey, a slot holding the none variant is returned.
func (t *Table) Get(key string) *Item {
	kv := t.kv(key)
	if kv == nil {
		return nil
	}
	return kv.item
}

// Entry returns a live handle to the item at key, creating a slot holding
// the none variant at the end of iteration order when none exists.  It
// fails when key cannot be parsed as a TOML key.
func (t *Table) Entry(key string) (*Item, error) {
	k, err := token.ParseKey(key)
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", key, err)
	}
	if i, ok := t.index[k.Text]; ok {
		return t.slots[i].item, nil
	}
	kv := &tableKeyValue{
		key:  NewRepr("", k.Raw, " "),
		text: k.Text,
		item: &Item{},
	}
	if t.index == nil {
		t.index = map[string]int{}
	}
	t.index[k.Text] = len(t.slots)
	t.slots = append(t.slots, kv)
	return kv.item, nil
}

// Remove deletes the slot for key entirely, key text included, returning
// the removed item or nil when no slot exists.  It operates on slot
// existence, not item variant.
func (t *Table) Remove(key string) *Item {
	i, ok := t.index[key]
	if !ok {
		return nil
	}
	kv := t.slots[i]
	t.slots = slices.Delete(t.slots, i, i+1)
	delete(t.index, key)
	for j := i; j < len(t.slots); j++ {
		t.index[t.slots[j].text] = j
	}
	return kv.item
}

// Iter yields (key text, item) pairs in insertion order, covering all
// slots including absent ones.  The sequence is restartable; it must not
// be held across a structural mutation of the table.
func (t *Table) Iter() iter.Seq2[string, *Item] {
	return func(yield func(string, *Item) bool) {
		for _, kv := range t.slots {
			if !yield(kv.text, kv.item) {
				return
			}
		}
	}
}

// Len counts the slots holding a non-absent item.
func (t *Table) Len() int {
	n := 0
	for _, kv := range t.slots {
		if !kv.item.IsNone() {
			n++
		}
	}
	return n
}

// ValuesLen counts the slots holding the value variant.
func (t *Table) ValuesLen() int {
	n := 0
	for _, kv := range t.slots {
		if kv.item.IsValue() {
			n++
		}
	}
	return n
}

func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// SortValues reorders this table's direct slots by key.  The sort is
// stable and does not descend into nested tables or arrays of tables.
func (t *Table) SortValues() {
	slices.SortStableFunc(t.slots, func(a, b *tableKeyValue) int {
		return strings.Compare(a.text, b.text)
	})
	for i, kv := range t.slots {
		t.index[kv.text] = i
	}
}

// KeyRepr exposes the stored key representation for key, or nil when no
// slot exists.  The serializer reads it; the parser overrides its decor.
func (t *Table) KeyRepr(key string) *Repr {
	kv := t.kv(key)
	if kv == nil {
		return nil
	}
	return &kv.key
}

func (t *Table) kv(key string) *tableKeyValue {
	i, ok := t.index[key]
	if !ok {
		return nil
	}
	return t.slots[i]
}
