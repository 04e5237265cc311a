package doc

// ItemKind discriminates the closed set of Item variants.
type ItemKind int

const (
	KindNone ItemKind = iota
	KindValue
	KindTable
	KindArrayOfTables
)

func (k ItemKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindValue:
		return "Value"
	case KindTable:
		return "Table"
	case KindArrayOfTables:
		return "ArrayOfTables"
	default:
		return "<unknown kind>"
	}
}

// Item is the payload stored under a key: absent, a value, a nested table,
// or an array of tables.  The zero Item is the none variant.
type Item struct {
	kind  ItemKind
	value *Value
	table *Table
	aot   *ArrayOfTables
}

func (it *Item) Kind() ItemKind {
	return it.kind
}

// Structural downcasting: each As* returns the payload when the variant
// matches and nil otherwise.

func (it *Item) AsValue() *Value {
	if it.kind != KindValue {
		return nil
	}
	return it.value
}

func (it *Item) AsTable() *Table {
	if it.kind != KindTable {
		return nil
	}
	return it.table
}

func (it *Item) AsArrayOfTables() *ArrayOfTables {
	if it.kind != KindArrayOfTables {
		return nil
	}
	return it.aot
}

func (it *Item) IsNone() bool          { return it.kind == KindNone }
func (it *Item) IsValue() bool         { return it.AsValue() != nil }
func (it *Item) IsTable() bool         { return it.AsTable() != nil }
func (it *Item) IsArrayOfTables() bool { return it.AsArrayOfTables() != nil }

// OrInsert replaces the item with other when it is currently the none
// variant, leaves it untouched otherwise, and returns the item either way.
func (it *Item) OrInsert(other Item) *Item {
	if it.kind == KindNone {
		*it = other
	}
	return it
}

// Scalar downcasting delegates through AsValue: these succeed only for the
// value variant holding the requested scalar kind.  An item holding a
// table never reports as an array, and vice versa.

func (it *Item) AsInteger() (int64, bool) {
	v := it.AsValue()
	if v == nil {
		return 0, false
	}
	return v.AsInteger()
}

func (it *Item) IsInteger() bool {
	_, ok := it.AsInteger()
	return ok
}

func (it *Item) AsFloat() (float64, bool) {
	v := it.AsValue()
	if v == nil {
		return 0, false
	}
	return v.AsFloat()
}

func (it *Item) IsFloat() bool {
	_, ok := it.AsFloat()
	return ok
}

func (it *Item) AsBool() (bool, bool) {
	v := it.AsValue()
	if v == nil {
		return false, false
	}
	return v.AsBool()
}

func (it *Item) IsBool() bool {
	_, ok := it.AsBool()
	return ok
}

func (it *Item) AsString() (string, bool) {
	v := it.AsValue()
	if v == nil {
		return "", false
	}
	return v.AsString()
}

func (it *Item) IsString() bool {
	_, ok := it.AsString()
	return ok
}

func (it *Item) AsDateTime() *DateTime {
	v := it.AsValue()
	if v == nil {
		return nil
	}
	return v.AsDateTime()
}

func (it *Item) IsDateTime() bool {
	return it.AsDateTime() != nil
}

func (it *Item) AsArray() *Array {
	v := it.AsValue()
	if v == nil {
		return nil
	}
	return v.AsArray()
}

func (it *Item) IsArray() bool {
	return it.AsArray() != nil
}

func (it *Item) AsInlineTable() *InlineTable {
	v := it.AsValue()
	if v == nil {
		return nil
	}
	return v.AsInlineTable()
}

func (it *Item) IsInlineTable() bool {
	return it.AsInlineTable() != nil
}

// ValueOf wraps a raw scalar in a value item decorated for a key/value
// line: a single leading space and no trailing text.
func ValueOf(v any) Item {
	val := NewValue(v)
	val.decor = NewDecor(" ", "")
	return Item{kind: KindValue, value: val}
}

// TableItem returns an item holding a fresh empty table.
func TableItem() Item {
	return Item{kind: KindTable, table: NewTable()}
}

// ArrayOfTablesItem returns an item holding a fresh empty array of tables.
func ArrayOfTablesItem() Item {
	return Item{kind: KindArrayOfTables, aot: NewArrayOfTables()}
}

// ItemOfValue wraps an existing value without re-decorating it.
func ItemOfValue(v *Value) Item {
	return Item{kind: KindValue, value: v}
}

// ItemOfTable wraps an existing table.
func ItemOfTable(t *Table) Item {
	return Item{kind: KindTable, table: t}
}

// ItemOfArrayOfTables wraps an existing array of tables.
func ItemOfArrayOfTables(a *ArrayOfTables) Item {
	return Item{kind: KindArrayOfTables, aot: a}
}
