package doc

import "iter"

// ArrayOfTables is an ordered sequence of tables sharing one key, TOML's
// [[x]] construct.  Each element table carries its own header repr and
// decor.
type ArrayOfTables struct {
	tables []*Table
}

func NewArrayOfTables() *ArrayOfTables {
	return &ArrayOfTables{}
}

func (a *ArrayOfTables) Len() int {
	return len(a.tables)
}

func (a *ArrayOfTables) Get(i int) *Table {
	if i < 0 || i >= len(a.tables) {
		return nil
	}
	return a.tables[i]
}

func (a *ArrayOfTables) Iter() iter.Seq2[int, *Table] {
	return func(yield func(int, *Table) bool) {
		for i, t := range a.tables {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Append adds t at the end and returns it.
func (a *ArrayOfTables) Append(t *Table) *Table {
	a.tables = append(a.tables, t)
	return t
}

// Remove deletes the table at i, reporting whether it existed.
func (a *ArrayOfTables) Remove(i int) bool {
	if i < 0 || i >= len(a.tables) {
		return false
	}
	a.tables = append(a.tables[:i], a.tables[i+1:]...)
	return true
}

func (a *ArrayOfTables) Clear() {
	a.tables = nil
}
