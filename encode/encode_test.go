package encode

import (
	"bytes"
	"testing"

	"github.com/toml-format/go-tomled/doc"
	"github.com/toml-format/go-tomled/format"
	"github.com/toml-format/go-tomled/parse"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, in string) *doc.Document {
	t.Helper()
	d, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestEditPreservesFormatting(t *testing.T) {
	in := "# top\na = 1 # keep me\nb = 2\n\n[t] # table\nx = \"old\"\n"
	d := mustParse(t, in)

	it, err := d.Root().Entry("b")
	if err != nil {
		t.Fatal(err)
	}
	*it = doc.ValueOf(int64(3))

	xt, err := d.Find("t.x")
	if err != nil {
		t.Fatal(err)
	}
	old := xt.AsValue()
	*xt = doc.ItemOfValue(doc.FromString("new").
		WithDecor(old.Decor().Prefix(), old.Decor().Suffix()))

	want := "# top\na = 1 # keep me\nb = 3\n\n[t] # table\nx = \"new\"\n"
	if got := MustString(d); got != want {
		t.Errorf("edit result (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestAppendedKeyAndTable(t *testing.T) {
	d := mustParse(t, "a = 1\n")

	it, err := d.Root().Entry("b")
	if err != nil {
		t.Fatal(err)
	}
	*it = doc.ValueOf("two")

	tt, err := d.EntryPath("server.port")
	if err != nil {
		t.Fatal(err)
	}
	*tt = doc.ValueOf(int64(8080))

	want := "a = 1\nb = \"two\"\n\n[server]\nport = 8080\n"
	if got := MustString(d); got != want {
		t.Errorf("append result (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestRemovalTakesDecor(t *testing.T) {
	in := "a = 1\n# doomed\nb = 2\nc = 3\n"
	d := mustParse(t, in)
	d.Root().Remove("b")
	want := "a = 1\nc = 3\n"
	if got := MustString(d); got != want {
		t.Errorf("remove result (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestImplicitTableNoHeader(t *testing.T) {
	d := doc.NewDocument()
	it, err := d.EntryPath("a.b.c")
	if err != nil {
		t.Fatal(err)
	}
	*it = doc.ValueOf(int64(1))
	want := "\n[a]\n\n[a.b]\nc = 1\n"
	got := MustString(d)
	if got == want {
		t.Fatalf("intermediate implicit tables should not get headers: %q", got)
	}
	if got != "\n[a.b]\nc = 1\n" {
		t.Errorf("got %q", got)
	}
}

func TestGhostSlotsNotEncoded(t *testing.T) {
	d := mustParse(t, "a = 1\n")
	if _, err := d.Root().Entry("ghost"); err != nil {
		t.Fatal(err)
	}
	if got := MustString(d); got != "a = 1\n" {
		t.Errorf("ghost slot leaked into output: %q", got)
	}
}

func TestEncodeJSON(t *testing.T) {
	in := "b = 1\na = \"x\"\n\n[t]\nn = 1.5\n\n[[s]]\nv = 1\n\n[[s]]\nv = 2\n"
	d := mustParse(t, in)
	buf := bytes.NewBuffer(nil)
	if err := Encode(d, buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	want := `{
  "b": 1,
  "a": "x",
  "t": {
    "n": 1.5
  },
  "s": [
    {
      "v": 1
    },
    {
      "v": 2
    }
  ]
}
`
	if got := buf.String(); got != want {
		t.Errorf("json (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestEncodeJSONRejectsNonFinite(t *testing.T) {
	d := mustParse(t, "x = inf\n")
	buf := bytes.NewBuffer(nil)
	if err := Encode(d, buf, EncodeFormat(format.JSONFormat)); err == nil {
		t.Error("expected error encoding inf to JSON")
	}
}

func TestEncodeYAML(t *testing.T) {
	d := mustParse(t, "b = 1\na = \"x\"\n")
	buf := bytes.NewBuffer(nil)
	if err := Encode(d, buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	want := "b: 1\na: x\n"
	if got := buf.String(); got != want {
		t.Errorf("yaml (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestEncodeValueBody(t *testing.T) {
	d := mustParse(t, "arr = [1, 2] # c\n")
	v := d.Root().Get("arr").AsValue()
	buf := bytes.NewBuffer(nil)
	if err := EncodeValue(v, buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "[1, 2]" {
		t.Errorf("value body: got %q", got)
	}
}
