package doc

import "testing"

func TestItemZeroValue(t *testing.T) {
	var it Item
	if !it.IsNone() {
		t.Error("zero item should be the none variant")
	}
	if it.AsValue() != nil || it.AsTable() != nil || it.AsArrayOfTables() != nil {
		t.Error("none item downcasts should all fail")
	}
}

func TestItemDowncasting(t *testing.T) {
	arr := NewArray()
	arr.Append(FromInt(1))
	cases := []struct {
		name string
		item Item
		kind ItemKind
	}{
		{name: "int", item: ValueOf(int64(5)), kind: KindValue},
		{name: "table", item: TableItem(), kind: KindTable},
		{name: "aot", item: ArrayOfTablesItem(), kind: KindArrayOfTables},
		{name: "array", item: ValueOf(arr), kind: KindValue},
	}
	for _, c := range cases {
		if c.item.Kind() != c.kind {
			t.Errorf("%s: kind %s want %s", c.name, c.item.Kind(), c.kind)
		}
	}

	// a table item never reports as an array, and scalar downcasts only
	// succeed through the value variant
	ti := TableItem()
	if ti.IsArray() || ti.IsInlineTable() || ti.IsInteger() {
		t.Error("table item leaked through a value downcast")
	}
	ai := ValueOf(arr)
	if !ai.IsArray() {
		t.Error("array value item should downcast to array")
	}
	if ai.IsTable() {
		t.Error("array value item should not be a table")
	}
}

func TestItemScalarDowncasts(t *testing.T) {
	iv := ValueOf(int64(7))
	if v, ok := iv.AsInteger(); !ok || v != 7 {
		t.Error("AsInteger on integer item")
	}
	if _, ok := iv.AsFloat(); ok {
		t.Error("AsFloat should fail on an integer item")
	}
	sv := ValueOf("text")
	if s, ok := sv.AsString(); !ok || s != "text" {
		t.Error("AsString on string item")
	}
	bv := ValueOf(true)
	if b, ok := bv.AsBool(); !ok || !b {
		t.Error("AsBool on bool item")
	}
}
