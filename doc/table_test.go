package doc

import (
	"testing"
)

func TestEntryCreatesAbsentSlot(t *testing.T) {
	tb := NewTable()
	it, err := tb.Entry("a")
	if err != nil {
		t.Fatal(err)
	}
	if !it.IsNone() {
		t.Fatal("fresh entry should hold the none variant")
	}
	// probed but never assigned: visible to Get and Iter, not to
	// ContainsKey or Len
	if tb.ContainsKey("a") {
		t.Error("ContainsKey sees an unassigned slot")
	}
	if tb.Len() != 0 {
		t.Errorf("Len: got %d want 0", tb.Len())
	}
	if tb.Get("a") == nil {
		t.Error("Get should return the unassigned slot")
	}
	n := 0
	for range tb.Iter() {
		n++
	}
	if n != 1 {
		t.Errorf("Iter yielded %d slots, want 1", n)
	}
}

func TestEntryIdempotent(t *testing.T) {
	tb := NewTable()
	a1, err := tb.Entry("a")
	if err != nil {
		t.Fatal(err)
	}
	a2, err := tb.Entry("a")
	if err != nil {
		t.Fatal(err)
	}
	if a1 != a2 {
		t.Error("Entry returned different handles for the same key")
	}
	*a1 = ValueOf(int64(9))
	if v, ok := a2.AsInteger(); !ok || v != 9 {
		t.Error("assignment through one handle not visible through the other")
	}
}

func TestEntryBadKey(t *testing.T) {
	tb := NewTable()
	if _, err := tb.Entry("a b"); err == nil {
		t.Error("expected error for unquoted key with space")
	}
	if _, err := tb.Entry(`"un`); err == nil {
		t.Error("expected error for unterminated quoted key")
	}
}

func TestEntryQuotedKey(t *testing.T) {
	tb := NewTable()
	it, err := tb.Entry(`"odd key"`)
	if err != nil {
		t.Fatal(err)
	}
	*it = ValueOf("v")
	if !tb.ContainsKey("odd key") {
		t.Error("quoted key not stored under its decoded text")
	}
	if kr := tb.KeyRepr("odd key"); kr == nil || kr.Raw() != `"odd key"` {
		t.Error("quoted key raw not preserved")
	}
}

func TestOrInsert(t *testing.T) {
	tb := NewTable()
	it, err := tb.Entry("t")
	if err != nil {
		t.Fatal(err)
	}
	got := it.OrInsert(TableItem())
	if !got.IsTable() {
		t.Fatal("OrInsert did not install into the none slot")
	}
	// second OrInsert leaves the existing table in place
	sub := got.AsTable()
	e, err := sub.Entry("marker")
	if err != nil {
		t.Fatal(err)
	}
	*e = ValueOf(true)
	again := it.OrInsert(TableItem())
	if !again.AsTable().ContainsKey("marker") {
		t.Error("OrInsert replaced an occupied slot")
	}
}

func TestContainsVariants(t *testing.T) {
	tb := NewTable()
	v, _ := tb.Entry("v")
	*v = ValueOf(int64(1))
	sub, _ := tb.Entry("t")
	*sub = TableItem()
	a, _ := tb.Entry("a")
	*a = ArrayOfTablesItem()
	tb.Entry("ghost")

	if !tb.ContainsValue("v") || tb.ContainsTable("v") || tb.ContainsArrayOfTables("v") {
		t.Error("v should be a value only")
	}
	if !tb.ContainsTable("t") || tb.ContainsValue("t") {
		t.Error("t should be a table only")
	}
	if !tb.ContainsArrayOfTables("a") || tb.ContainsTable("a") {
		t.Error("a should be an array of tables only")
	}
	if tb.ContainsKey("ghost") || tb.ContainsValue("ghost") {
		t.Error("ghost slot should not be contained")
	}
	if tb.Len() != 3 {
		t.Errorf("Len: got %d want 3", tb.Len())
	}
	if tb.ValuesLen() != 1 {
		t.Errorf("ValuesLen: got %d want 1", tb.ValuesLen())
	}
}

func TestRemoveBySlot(t *testing.T) {
	tb := NewTable()
	v, _ := tb.Entry("v")
	*v = ValueOf(int64(1))
	tb.Entry("ghost")

	removed := tb.Remove("v")
	if removed == nil || !removed.IsValue() {
		t.Fatal("Remove should return the removed item")
	}
	if tb.Get("v") != nil {
		t.Error("slot survived Remove")
	}
	// removing a ghost slot removes the slot itself
	if tb.Remove("ghost") == nil {
		t.Error("Remove should delete a probed-but-unassigned slot")
	}
	if tb.Remove("nope") != nil {
		t.Error("Remove of a never-seen key should return nil")
	}
}

func TestIterOrder(t *testing.T) {
	tb := NewTable()
	keys := []string{"zeta", "alpha", "mid", "beta"}
	for i, k := range keys {
		it, _ := tb.Entry(k)
		*it = ValueOf(int64(i))
	}
	got := []string{}
	for k := range tb.Iter() {
		got = append(got, k)
	}
	for i, k := range keys {
		if got[i] != k {
			t.Fatalf("iteration order: got %v want %v", got, keys)
		}
	}
}

func TestSortValues(t *testing.T) {
	tb := NewTable()
	for _, k := range []string{"c", "a", "b"} {
		it, _ := tb.Entry(k)
		*it = ValueOf(k)
	}
	nested, _ := tb.Entry("z")
	*nested = TableItem()
	for _, k := range []string{"y", "x"} {
		it, _ := nested.AsTable().Entry(k)
		*it = ValueOf(k)
	}

	tb.SortValues()
	got := []string{}
	for k := range tb.Iter() {
		got = append(got, k)
	}
	want := []string{"a", "b", "c", "z"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after sort: got %v want %v", got, want)
		}
	}
	// nested tables are untouched
	sub := []string{}
	for k := range nested.AsTable().Iter() {
		sub = append(sub, k)
	}
	if sub[0] != "y" || sub[1] != "x" {
		t.Errorf("SortValues descended into a nested table: %v", sub)
	}
	// index stays consistent after the reorder
	if !tb.ContainsKey("b") || tb.Get("b") == nil {
		t.Error("lookup broken after sort")
	}
}

func TestImplicitFlag(t *testing.T) {
	tb := NewTable()
	if tb.IsImplicit() {
		t.Error("new tables are explicit")
	}
	tb.SetImplicit(true)
	if !tb.IsImplicit() {
		t.Error("SetImplicit(true) not recorded")
	}
	tb.SetImplicit(false)
	if tb.IsImplicit() {
		t.Error("SetImplicit(false) not recorded")
	}
}

func TestEntryThenAssignScenario(t *testing.T) {
	tb := NewTable()
	it, err := tb.Entry("count")
	if err != nil {
		t.Fatal(err)
	}
	it.OrInsert(ValueOf(int64(0)))
	n, ok := it.AsInteger()
	if !ok {
		t.Fatal("count should be an integer")
	}
	*it = ValueOf(n + 1)
	if got, _ := tb.Get("count").AsInteger(); got != 1 {
		t.Errorf("count: got %d want 1", got)
	}
	if tb.Len() != 1 {
		t.Errorf("Len: got %d want 1", tb.Len())
	}
}
