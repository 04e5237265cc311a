package doc

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/toml-format/go-tomled/token"
)

// ValueKind discriminates the scalar value subsystem's kinds.
type ValueKind int

const (
	IntegerKind ValueKind = iota
	FloatKind
	BoolKind
	StringKind
	DateTimeKind
	ArrayKind
	InlineTableKind
)

func (k ValueKind) String() string {
	switch k {
	case IntegerKind:
		return "Integer"
	case FloatKind:
		return "Float"
	case BoolKind:
		return "Bool"
	case StringKind:
		return "String"
	case DateTimeKind:
		return "DateTime"
	case ArrayKind:
		return "Array"
	case InlineTableKind:
		return "InlineTable"
	default:
		return "<unknown kind>"
	}
}

// Value is a scalar-or-compound TOML value.  Leaf kinds keep the raw text
// they were written with; arrays and inline tables are rendered from their
// parts.  The decor holds the whitespace around the value on its line.
type Value struct {
	kind  ValueKind
	decor Decor
	raw   string

	i   int64
	f   float64
	b   bool
	s   string
	dt  *DateTime
	arr *Array
	tbl *InlineTable
}

func (v *Value) Kind() ValueKind {
	return v.kind
}

func (v *Value) Decor() *Decor {
	return &v.decor
}

// Raw is the value's exact source text; empty for arrays and inline
// tables, which are rendered recursively.
func (v *Value) Raw() string {
	return v.raw
}

// WithRaw overrides the stored source text and returns v.
func (v *Value) WithRaw(raw string) *Value {
	v.raw = raw
	return v
}

// WithDecor sets the value's decor and returns v.
func (v *Value) WithDecor(prefix, suffix string) *Value {
	v.decor = NewDecor(prefix, suffix)
	return v
}

func (v *Value) AsInteger() (int64, bool) {
	if v.kind != IntegerKind {
		return 0, false
	}
	return v.i, true
}

func (v *Value) AsFloat() (float64, bool) {
	if v.kind != FloatKind {
		return 0, false
	}
	return v.f, true
}

func (v *Value) AsBool() (bool, bool) {
	if v.kind != BoolKind {
		return false, false
	}
	return v.b, true
}

func (v *Value) AsString() (string, bool) {
	if v.kind != StringKind {
		return "", false
	}
	return v.s, true
}

func (v *Value) AsDateTime() *DateTime {
	if v.kind != DateTimeKind {
		return nil
	}
	return v.dt
}

func (v *Value) AsArray() *Array {
	if v.kind != ArrayKind {
		return nil
	}
	return v.arr
}

func (v *Value) AsInlineTable() *InlineTable {
	if v.kind != InlineTableKind {
		return nil
	}
	return v.tbl
}

func (v *Value) IsInteger() bool     { _, ok := v.AsInteger(); return ok }
func (v *Value) IsFloat() bool       { _, ok := v.AsFloat(); return ok }
func (v *Value) IsBool() bool        { _, ok := v.AsBool(); return ok }
func (v *Value) IsString() bool      { _, ok := v.AsString(); return ok }
func (v *Value) IsDateTime() bool    { return v.AsDateTime() != nil }
func (v *Value) IsArray() bool       { return v.AsArray() != nil }
func (v *Value) IsInlineTable() bool { return v.AsInlineTable() != nil }

func FromInt(i int64) *Value {
	return &Value{
		kind: IntegerKind,
		raw:  strconv.FormatInt(i, 10),
		i:    i,
	}
}

func FromFloat(f float64) *Value {
	return &Value{
		kind: FloatKind,
		raw:  formatFloat(f),
		f:    f,
	}
}

func FromBool(b bool) *Value {
	return &Value{
		kind: BoolKind,
		raw:  strconv.FormatBool(b),
		b:    b,
	}
}

func FromString(s string) *Value {
	return &Value{
		kind: StringKind,
		raw:  token.Quote(s),
		s:    s,
	}
}

func FromDateTime(dt DateTime) *Value {
	return &Value{
		kind: DateTimeKind,
		raw:  dt.String(),
		dt:   &dt,
	}
}

func FromArray(a *Array) *Value {
	return &Value{
		kind: ArrayKind,
		arr:  a,
	}
}

func FromInlineTable(t *InlineTable) *Value {
	return &Value{
		kind: InlineTableKind,
		tbl:  t,
	}
}

// NewValue converts a plain Go value into a Value.  It panics on types the
// model cannot represent; use the typed constructors when the input is not
// statically known to be supported.
func NewValue(v any) *Value {
	switch x := v.(type) {
	case *Value:
		return x
	case int:
		return FromInt(int64(x))
	case int64:
		return FromInt(x)
	case float64:
		return FromFloat(x)
	case bool:
		return FromBool(x)
	case string:
		return FromString(x)
	case time.Time:
		return FromDateTime(DateTime{Kind: OffsetDateTime, Time: x})
	case DateTime:
		return FromDateTime(x)
	case *Array:
		return FromArray(x)
	case *InlineTable:
		return FromInlineTable(x)
	default:
		panic(fmt.Sprintf("doc: unsupported value type %T", v))
	}
}

// formatFloat renders floats so they always read back as TOML floats.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for _, c := range s {
		switch c {
		case '.', 'e', 'E':
			return s
		}
	}
	return s + ".0"
}
