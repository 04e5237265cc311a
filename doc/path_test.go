package doc

import "testing"

func TestParsePath(t *testing.T) {
	pts := []struct {
		in    string
		steps int
		e     bool
	}{
		{in: "a", steps: 1},
		{in: "a.b.c", steps: 3},
		{in: "servers[0].host", steps: 3},
		{in: `"odd.key".inner`, steps: 2},
		{in: `'literal.key'`, steps: 1},
		{in: "a[0][1]", steps: 3},
		{in: "", e: true},
		{in: "a.", e: true},
		{in: ".a", e: true},
		{in: "a..b", e: true},
		{in: "a[x]", e: true},
		{in: "a[-1]", e: true},
		{in: "a[0", e: true},
	}
	for _, pt := range pts {
		steps, err := ParsePath(pt.in)
		if pt.e {
			if err == nil {
				t.Errorf("ParsePath(%q): expected error", pt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePath(%q): %s", pt.in, err)
			continue
		}
		if len(steps) != pt.steps {
			t.Errorf("ParsePath(%q): got %d steps want %d", pt.in, len(steps), pt.steps)
		}
	}
}

func testDoc(t *testing.T) *Document {
	t.Helper()
	d := NewDocument()
	root := d.Root()

	title, err := root.Entry("title")
	if err != nil {
		t.Fatal(err)
	}
	*title = ValueOf("demo")

	srvIt, err := root.Entry("servers")
	if err != nil {
		t.Fatal(err)
	}
	*srvIt = ArrayOfTablesItem()
	aot := srvIt.AsArrayOfTables()
	for _, host := range []string{"alpha", "beta"} {
		el := aot.Append(NewTable())
		h, err := el.Entry("host")
		if err != nil {
			t.Fatal(err)
		}
		*h = ValueOf(host)
	}

	ports := NewArray()
	ports.Append(FromInt(8001))
	ports.Append(FromInt(8002))
	pv, err := root.Entry("ports")
	if err != nil {
		t.Fatal(err)
	}
	*pv = ValueOf(ports)

	inline := NewInlineTable()
	if err := inline.Set("x", FromInt(1)); err != nil {
		t.Fatal(err)
	}
	iv, err := root.Entry("point")
	if err != nil {
		t.Fatal(err)
	}
	*iv = ValueOf(inline)

	return d
}

func TestFind(t *testing.T) {
	d := testDoc(t)

	it, err := d.Find("title")
	if err != nil {
		t.Fatal(err)
	}
	if s, ok := it.AsString(); !ok || s != "demo" {
		t.Errorf("title: got %v", it)
	}

	it, err = d.Find("servers[1].host")
	if err != nil {
		t.Fatal(err)
	}
	if s, ok := it.AsString(); !ok || s != "beta" {
		t.Errorf("servers[1].host: got %v", it)
	}

	it, err = d.Find("ports[0]")
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := it.AsInteger(); !ok || n != 8001 {
		t.Errorf("ports[0]: got %v", it)
	}

	it, err = d.Find("point.x")
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := it.AsInteger(); !ok || n != 1 {
		t.Errorf("point.x: got %v", it)
	}

	// missing paths come back nil without error
	it, err = d.Find("nope.deep")
	if err != nil || it != nil {
		t.Errorf("missing path: got (%v, %v)", it, err)
	}
	it, err = d.Find("servers[9]")
	if err != nil || it != nil {
		t.Errorf("out of range index: got (%v, %v)", it, err)
	}

	// shape mismatches are errors
	if _, err := d.Find("title[0]"); err == nil {
		t.Error("indexing a string should fail")
	}
	if _, err := d.Find("title.sub"); err == nil {
		t.Error("keying into a string should fail")
	}
}

func TestEntryPath(t *testing.T) {
	d := NewDocument()
	it, err := d.EntryPath("a.b.c")
	if err != nil {
		t.Fatal(err)
	}
	*it = ValueOf(int64(1))

	a := d.Root().Get("a")
	if a == nil || !a.IsTable() {
		t.Fatal("intermediate a not created")
	}
	if !a.AsTable().IsImplicit() {
		t.Error("intermediate table should be implicit")
	}
	got, err := d.Find("a.b.c")
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := got.AsInteger(); !ok || n != 1 {
		t.Errorf("a.b.c: got %v", got)
	}

	// resolving again reuses the same slot
	again, err := d.EntryPath("a.b.c")
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := again.AsInteger(); !ok || n != 1 {
		t.Error("EntryPath did not return the existing item")
	}
}

func TestRemovePath(t *testing.T) {
	d := testDoc(t)

	removed, err := d.RemovePath("title")
	if err != nil {
		t.Fatal(err)
	}
	if removed == nil || !removed.IsValue() {
		t.Fatal("RemovePath should return the removed item")
	}
	if it, _ := d.Find("title"); it != nil {
		t.Error("title survived removal")
	}

	removed, err = d.RemovePath("servers[0]")
	if err != nil {
		t.Fatal(err)
	}
	if removed == nil || !removed.IsTable() {
		t.Fatal("removing an array-of-tables element")
	}
	it, _ := d.Find("servers[0].host")
	if s, _ := it.AsString(); s != "beta" {
		t.Error("remaining element should shift down")
	}

	removed, err = d.RemovePath("ports[1]")
	if err != nil {
		t.Fatal(err)
	}
	if removed == nil {
		t.Fatal("removing an array element")
	}

	removed, err = d.RemovePath("nope")
	if err != nil || removed != nil {
		t.Errorf("removing a missing path: got (%v, %v)", removed, err)
	}
}
