package token

import (
	"math"
	"testing"
)

func TestParseInteger(t *testing.T) {
	its := []struct {
		in  string
		out int64
		e   bool
	}{
		{in: "0", out: 0},
		{in: "99", out: 99},
		{in: "+42", out: 42},
		{in: "-17", out: -17},
		{in: "1_000_000", out: 1000000},
		{in: "5_349_221", out: 5349221},
		{in: "0xDEADBEEF", out: 0xDEADBEEF},
		{in: "0xdead_beef", out: 0xdeadbeef},
		{in: "0o755", out: 0o755},
		{in: "0b11010110", out: 0b11010110},
		{in: "9223372036854775807", out: math.MaxInt64},
		{in: "-9223372036854775808", out: math.MinInt64},
		{in: "9223372036854775808", e: true},
		{in: "_1", e: true},
		{in: "1_", e: true},
		{in: "1__0", e: true},
		{in: "0x", e: true},
		{in: "", e: true},
		{in: "12a", e: true},
	}
	for _, it := range its {
		out, err := ParseInteger(it.in)
		if it.e {
			if err == nil {
				t.Errorf("ParseInteger(%q): expected error", it.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseInteger(%q): %s", it.in, err)
			continue
		}
		if out != it.out {
			t.Errorf("ParseInteger(%q): got %d want %d", it.in, out, it.out)
		}
	}
}

func TestParseFloat(t *testing.T) {
	fts := []struct {
		in  string
		out float64
		e   bool
	}{
		{in: "1.0", out: 1.0},
		{in: "3.1415", out: 3.1415},
		{in: "-0.01", out: -0.01},
		{in: "5e+22", out: 5e+22},
		{in: "1e6", out: 1e6},
		{in: "6.626e-34", out: 6.626e-34},
		{in: "224_617.445_991_228", out: 224617.445991228},
		{in: "inf", out: math.Inf(1)},
		{in: "+inf", out: math.Inf(1)},
		{in: "-inf", out: math.Inf(-1)},
		{in: "1._0", e: true},
		{in: "bad", e: true},
	}
	for _, ft := range fts {
		out, err := ParseFloat(ft.in)
		if ft.e {
			if err == nil {
				t.Errorf("ParseFloat(%q): expected error", ft.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFloat(%q): %s", ft.in, err)
			continue
		}
		if out != ft.out {
			t.Errorf("ParseFloat(%q): got %g want %g", ft.in, out, ft.out)
		}
	}
}

func TestParseFloatNaN(t *testing.T) {
	for _, in := range []string{"nan", "+nan", "-nan"} {
		out, err := ParseFloat(in)
		if err != nil {
			t.Fatalf("ParseFloat(%q): %s", in, err)
		}
		if !math.IsNaN(out) {
			t.Errorf("ParseFloat(%q): got %g want NaN", in, out)
		}
	}
}
