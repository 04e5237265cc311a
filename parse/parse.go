package parse

import (
	"fmt"

	"github.com/toml-format/go-tomled/doc"
	"github.com/toml-format/go-tomled/token"
)

// Parse decodes d into a document.  The returned document reproduces d
// byte for byte when encoded unmodified.
func Parse(d []byte) (*doc.Document, error) {
	s := token.NewScanner(d)
	out := doc.NewDocument()
	cur := out.Root()
	for {
		trivia := s.Trivia()
		if s.EOF() {
			out.SetTrailing(trivia)
			return out, nil
		}
		if s.Peek() == '[' {
			t, err := parseHeader(s, out.Root(), trivia)
			if err != nil {
				return nil, err
			}
			cur = t
			continue
		}
		if err := parseKeyVal(s, cur, trivia); err != nil {
			return nil, err
		}
	}
}

// parseHeader consumes a [table] or [[array of tables]] header line and
// returns the table that subsequent key/value lines belong to.  The text
// between the brackets is kept verbatim as the table's header repr;
// trivia becomes its prefix decor.
func parseHeader(s *token.Scanner, root *doc.Table, trivia string) (*doc.Table, error) {
	pos := s.Pos()
	if err := s.Expect('['); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	aot := false
	if s.Peek() == '[' {
		s.Expect('[')
		aot = true
	}
	start := s.Offset()
	var keys []token.SimpleKey
	for {
		s.Whitespace()
		k, err := s.ScanKey()
		if err != nil {
			return nil, fmt.Errorf("%w: table header: %w", ErrParse, err)
		}
		keys = append(keys, k)
		s.Whitespace()
		if s.Peek() != '.' {
			break
		}
		s.Expect('.')
	}
	raw := s.Raw(start, s.Offset())
	if err := s.Expect(']'); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if aot {
		if err := s.Expect(']'); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	}
	suffix, err := s.LineTrailing()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	t := root
	for _, k := range keys[:len(keys)-1] {
		it, err := t.Entry(k.Raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w %s", ErrParse, err, pos)
		}
		if it.IsNone() {
			*it = doc.TableItem()
			it.AsTable().SetImplicit(true)
		}
		if sub := it.AsTable(); sub != nil {
			t = sub
			continue
		}
		if a := it.AsArrayOfTables(); a != nil && a.Len() > 0 {
			t = a.Get(a.Len() - 1)
			continue
		}
		return nil, fmt.Errorf("%w: %q is not a table %s", ErrParse, k.Text, pos)
	}

	last := keys[len(keys)-1]
	it, err := t.Entry(last.Raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w %s", ErrParse, err, pos)
	}
	if aot {
		it.OrInsert(doc.ArrayOfTablesItem())
		a := it.AsArrayOfTables()
		if a == nil {
			return nil, fmt.Errorf("%w: %q redefined as array of tables %s", ErrParse, last.Text, pos)
		}
		nt := doc.NewTable()
		nt.SetHeader(raw)
		nt.Decor().SetPrefix(trivia)
		nt.Decor().SetSuffix(suffix)
		return a.Append(nt), nil
	}
	if it.IsNone() {
		*it = doc.TableItem()
	}
	tb := it.AsTable()
	if tb == nil {
		return nil, fmt.Errorf("%w: %q redefined as table %s", ErrParse, last.Text, pos)
	}
	if tb.Header() != "" && !tb.IsImplicit() {
		return nil, fmt.Errorf("%w: table %q %s", ErrDuplicateKey, last.Text, pos)
	}
	tb.SetImplicit(false)
	tb.SetHeader(raw)
	tb.Decor().SetPrefix(trivia)
	tb.Decor().SetSuffix(suffix)
	return tb, nil
}

// parseKeyVal consumes one `key = value` line into t.  trivia is the
// text before the key; the line's trailing whitespace, comment and
// newline become the value's suffix decor.
func parseKeyVal(s *token.Scanner, t *doc.Table, trivia string) error {
	pos := s.Pos()
	k, err := s.ScanKey()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	afterKey := s.Whitespace()
	if s.Peek() == '.' {
		return fmt.Errorf("%w: dotted key %q not allowed outside a table header %s", ErrParse, k.Text, s.Pos())
	}
	if err := s.Expect('='); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	afterEq := s.Whitespace()
	v, err := parseValue(s)
	if err != nil {
		return err
	}
	suffix, err := s.LineTrailing()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	it, err := t.Entry(k.Raw)
	if err != nil {
		return fmt.Errorf("%w: %w %s", ErrParse, err, pos)
	}
	if !it.IsNone() {
		return fmt.Errorf("%w: %q %s", ErrDuplicateKey, k.Text, pos)
	}
	kr := t.KeyRepr(k.Text)
	kr.Decor().SetPrefix(trivia)
	kr.Decor().SetSuffix(afterKey)
	v.Decor().SetPrefix(afterEq)
	v.Decor().SetSuffix(suffix)
	*it = doc.ItemOfValue(v)
	return nil
}
