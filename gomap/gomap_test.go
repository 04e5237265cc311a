package gomap_test

import (
	"testing"

	"github.com/toml-format/go-tomled/encode"
	"github.com/toml-format/go-tomled/gomap"
	"github.com/toml-format/go-tomled/parse"

	"github.com/google/go-cmp/cmp"
)

func TestFromDocument(t *testing.T) {
	in := "a = 1\nf = 0.5\ns = \"x\"\non = true\narr = [1, \"two\"]\npt = { x = 1 }\n\n[t]\nk = 2\n\n[[aot]]\nv = 1\n"
	d, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	got := gomap.FromDocument(d)
	want := map[string]any{
		"a":   int64(1),
		"f":   0.5,
		"s":   "x",
		"on":  true,
		"arr": []any{int64(1), "two"},
		"pt":  map[string]any{"x": int64(1)},
		"t":   map[string]any{"k": int64(2)},
		"aot": []any{map[string]any{"v": int64(1)}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("projection (-want +got):\n%s", diff)
	}
}

func TestFromDocumentOrdered(t *testing.T) {
	d, err := parse.Parse([]byte("z = 1\na = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	ms, err := gomap.FromDocumentOrdered(d)
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 2 || ms[0].Key != "z" || ms[1].Key != "a" {
		t.Errorf("order lost: %v", ms)
	}
}

func TestToDocument(t *testing.T) {
	d, err := gomap.ToDocument(map[string]any{
		"b":    int64(2),
		"a":    "one",
		"list": []any{int64(1), int64(2)},
		"t":    map[string]any{"x": true},
		"aot":  []any{map[string]any{"v": int64(1)}, map[string]any{"v": int64(2)}},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "a = \"one\"\nb = 2\nlist = [1, 2]\n\n[[aot]]\nv = 1\n\n[[aot]]\nv = 2\n\n[t]\nx = true\n"
	if got := encode.MustString(d); got != want {
		t.Errorf("ToDocument (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestToDocumentRejectsNull(t *testing.T) {
	if _, err := gomap.ToDocument(map[string]any{"x": nil}); err == nil {
		t.Error("expected error for null value")
	}
}

func TestSyncPreservesFormatting(t *testing.T) {
	in := "# config\na = 1 # keep\nb = 2\n"
	d, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	// numbers arrive as float64 after a JSON round trip
	err = gomap.Sync(d, map[string]any{"a": float64(1), "b": float64(5)})
	if err != nil {
		t.Fatal(err)
	}
	want := "# config\na = 1 # keep\nb = 5\n"
	if got := encode.MustString(d); got != want {
		t.Errorf("sync (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestSyncRemoveAndAdd(t *testing.T) {
	d, err := parse.Parse([]byte("a = 1\nb = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	err = gomap.Sync(d, map[string]any{"a": float64(1), "c": "new"})
	if err != nil {
		t.Fatal(err)
	}
	want := "a = 1\nc = \"new\"\n"
	if got := encode.MustString(d); got != want {
		t.Errorf("sync (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestSyncNestedAndShapeChange(t *testing.T) {
	in := "[t]\nx = 1\ny = 2\n"
	d, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	err = gomap.Sync(d, map[string]any{
		"t": map[string]any{"x": float64(9), "y": float64(2)},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "[t]\nx = 9\ny = 2\n"
	if got := encode.MustString(d); got != want {
		t.Errorf("sync nested (-want +got):\n%s", cmp.Diff(want, got))
	}

	// replacing a scalar with a table changes shape wholesale
	err = gomap.Sync(d, map[string]any{
		"t": map[string]any{"x": map[string]any{"deep": true}, "y": float64(2)},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := gomap.FromDocument(d)
	sub := got["t"].(map[string]any)["x"]
	if m, ok := sub.(map[string]any); !ok || m["deep"] != true {
		t.Errorf("shape change: got %v", sub)
	}
}

func TestSyncEmptiesArrayOfTables(t *testing.T) {
	d, err := parse.Parse([]byte("a = 1\n\n[[s]]\nv = 1\n\n[[s]]\nv = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	err = gomap.Sync(d, map[string]any{"a": float64(1), "s": []any{}})
	if err != nil {
		t.Fatal(err)
	}
	it := d.Root().Get("s")
	if it == nil || !it.IsArrayOfTables() {
		t.Fatalf("array of tables rewritten: %v", it)
	}
	if n := it.AsArrayOfTables().Len(); n != 0 {
		t.Errorf("Len: got %d want 0", n)
	}
	if got := encode.MustString(d); got != "a = 1\n" {
		t.Errorf("encoded: got %q", got)
	}
}
