package token

import (
	"errors"
	"testing"
)

type unquoteTest struct {
	in  string
	out string
	e   error
}

func TestUnquote(t *testing.T) {
	uts := []unquoteTest{
		{in: `"hello"`, out: "hello"},
		{in: `""`, out: ""},
		{in: `"a\tb"`, out: "a\tb"},
		{in: `"line\nbreak"`, out: "line\nbreak"},
		{in: `"q\"q"`, out: `q"q`},
		{in: `"back\\slash"`, out: `back\slash`},
		{in: `"\u00E9"`, out: "é"},
		{in: `"\U0001F600"`, out: "\U0001F600"},
		{in: `'C:\Users\nodejs'`, out: `C:\Users\nodejs`},
		{in: `''`, out: ""},
		{in: "\"\"\"\nhello\nworld\"\"\"", out: "hello\nworld"},
		{in: `"""already"""`, out: "already"},
		{in: "\"\"\"one \\\n   two\"\"\"", out: "one two"},
		{in: "'''\nno \\escape'''", out: `no \escape`},
		{in: `"\q"`, e: ErrBadEscape},
		{in: `"\u12"`, e: ErrBadUnicode},
		{in: `"\uD800"`, e: ErrBadUnicode},
		{in: `"unterminated`, e: ErrUnterminated},
		{in: "\"raw\nnewline\"", e: ErrUnterminated},
	}
	for _, ut := range uts {
		out, err := Unquote(ut.in)
		if ut.e != nil {
			if !errors.Is(err, ut.e) {
				t.Errorf("Unquote(%q): got err %v want %v", ut.in, err, ut.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unquote(%q): %s", ut.in, err)
			continue
		}
		if out != ut.out {
			t.Errorf("Unquote(%q): got %q want %q", ut.in, out, ut.out)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, v := range []string{
		"hello",
		"",
		"tab\there",
		"line\nbreak",
		`back\slash`,
		`has "quotes"`,
		"control\x01char",
		"ʎǝʞ",
	} {
		out, err := Unquote(Quote(v))
		if err != nil {
			t.Fatalf("Unquote(Quote(%q)): %s", v, err)
		}
		if out != v {
			t.Errorf("round trip %q: got %q", v, out)
		}
	}
}
