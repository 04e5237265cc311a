package doc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/toml-format/go-tomled/token"
)

// PathStep is one step of a document path: either a key into a table or
// inline table, or an index into an array or array of tables.
type PathStep struct {
	Key     string
	Index   int
	IsIndex bool
}

func (s PathStep) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return token.QuoteKey(s.Key)
}

// ParsePath parses a dotted path such as `server.hosts[0].name` or
// `"odd.key".value`.  Key segments follow TOML key syntax; indexes are
// bracketed decimal numbers.
func ParsePath(path string) ([]PathStep, error) {
	var steps []PathStep
	i := 0
	n := len(path)
	needKey := true
	for i < n {
		switch c := path[i]; c {
		case '.':
			if needKey {
				return nil, fmt.Errorf("%w: %q: empty segment", ErrPath, path)
			}
			needKey = true
			i++
		case '[':
			j := strings.IndexByte(path[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("%w: %q: unterminated index", ErrPath, path)
			}
			idx, err := strconv.Atoi(path[i+1 : i+j])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("%w: %q: bad index", ErrPath, path)
			}
			steps = append(steps, PathStep{Index: idx, IsIndex: true})
			needKey = false
			i += j + 1
		case '"', '\'':
			raw, j, err := scanQuotedSegment(path[i:], c)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrPath, path, err)
			}
			k, err := token.ParseKey(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrPath, path, err)
			}
			steps = append(steps, PathStep{Key: k.Text})
			needKey = false
			i += j
		default:
			j := i
			for j < n && path[j] != '.' && path[j] != '[' {
				j++
			}
			k, err := token.ParseKey(path[i:j])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrPath, path, err)
			}
			steps = append(steps, PathStep{Key: k.Text})
			needKey = false
			i = j
		}
	}
	if needKey {
		return nil, fmt.Errorf("%w: %q: empty segment", ErrPath, path)
	}
	return steps, nil
}

func scanQuotedSegment(v string, q byte) (string, int, error) {
	for j := 1; j < len(v); j++ {
		if v[j] == '\\' && q == '"' {
			j++
			continue
		}
		if v[j] == q {
			return v[:j+1], j + 1, nil
		}
	}
	return "", 0, token.ErrUnterminated
}

// Find resolves path from the document root.  It returns (nil, nil) when
// any step does not exist; an error means the path cannot apply to the
// shapes it met.  A table inside an array of tables resolves to a fresh
// item wrapper; mutate such tables through the wrapper's AsTable.
func (d *Document) Find(path string) (*Item, error) {
	steps, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	cur := d.RootItem()
	for _, step := range steps {
		next, err := advance(cur, step)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, nil
		}
		cur = next
	}
	return cur, nil
}

func advance(cur *Item, step PathStep) (*Item, error) {
	if step.IsIndex {
		if aot := cur.AsArrayOfTables(); aot != nil {
			t := aot.Get(step.Index)
			if t == nil {
				return nil, nil
			}
			it := ItemOfTable(t)
			return &it, nil
		}
		if arr := cur.AsArray(); arr != nil {
			v := arr.Get(step.Index)
			if v == nil {
				return nil, nil
			}
			it := ItemOfValue(v)
			return &it, nil
		}
		return nil, fmt.Errorf("%w: cannot index %s", ErrPath, cur.Kind())
	}
	if tb := cur.AsTable(); tb != nil {
		return tb.Get(step.Key), nil
	}
	if in := cur.AsInlineTable(); in != nil {
		v := in.Get(step.Key)
		if v == nil {
			return nil, nil
		}
		it := ItemOfValue(v)
		return &it, nil
	}
	return nil, fmt.Errorf("%w: cannot key into %s", ErrPath, cur.Kind())
}

// EntryPath resolves path for writing, creating missing intermediate
// tables (marked implicit) along the way, and returns a live handle to
// the final item.
func (d *Document) EntryPath(path string) (*Item, error) {
	steps, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	cur := d.RootItem()
	for i, step := range steps {
		last := i == len(steps)-1
		if step.IsIndex {
			next, err := advance(cur, step)
			if err != nil {
				return nil, err
			}
			if next == nil {
				return nil, fmt.Errorf("%w: index %d out of range", ErrPath, step.Index)
			}
			cur = next
			continue
		}
		tb := cur.AsTable()
		if tb == nil {
			return nil, fmt.Errorf("%w: cannot key into %s", ErrPath, cur.Kind())
		}
		it, err := tb.Entry(token.QuoteKey(step.Key))
		if err != nil {
			return nil, err
		}
		if !last {
			if it.IsNone() {
				*it = TableItem()
				it.AsTable().SetImplicit(true)
			}
		}
		cur = it
	}
	return cur, nil
}

// RemovePath deletes the slot or element at path, returning the removed
// item, or nil when nothing was there.
func (d *Document) RemovePath(path string) (*Item, error) {
	steps, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrPath)
	}
	cur := d.RootItem()
	for _, step := range steps[:len(steps)-1] {
		next, err := advance(cur, step)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, nil
		}
		cur = next
	}
	last := steps[len(steps)-1]
	if last.IsIndex {
		if aot := cur.AsArrayOfTables(); aot != nil {
			t := aot.Get(last.Index)
			if t == nil || !aot.Remove(last.Index) {
				return nil, nil
			}
			it := ItemOfTable(t)
			return &it, nil
		}
		if arr := cur.AsArray(); arr != nil {
			v := arr.Get(last.Index)
			if v == nil || !arr.Remove(last.Index) {
				return nil, nil
			}
			it := ItemOfValue(v)
			return &it, nil
		}
		return nil, fmt.Errorf("%w: cannot index %s", ErrPath, cur.Kind())
	}
	if tb := cur.AsTable(); tb != nil {
		return tb.Remove(last.Key), nil
	}
	if in := cur.AsInlineTable(); in != nil {
		v := in.Get(last.Key)
		if v == nil || !in.Remove(last.Key) {
			return nil, nil
		}
		it := ItemOfValue(v)
		return &it, nil
	}
	return nil, fmt.Errorf("%w: cannot key into %s", ErrPath, cur.Kind())
}
