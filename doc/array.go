package doc

import "iter"

// Array is an inline TOML array.  Each element value carries its own decor
// (whitespace and comments before and after it); the array keeps the text
// between the last element and the closing bracket, and whether a trailing
// comma was written.
type Array struct {
	values        []*Value
	trailing      string
	trailingComma bool
}

func NewArray() *Array {
	return &Array{}
}

func (a *Array) Len() int {
	return len(a.values)
}

func (a *Array) Get(i int) *Value {
	if i < 0 || i >= len(a.values) {
		return nil
	}
	return a.values[i]
}

func (a *Array) Iter() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		for i, v := range a.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Append adds v at the end, decorating it for inline position when it has
// no decor of its own.
func (a *Array) Append(v *Value) {
	if v.decor == (Decor{}) && len(a.values) > 0 {
		v.decor = NewDecor(" ", "")
	}
	a.values = append(a.values, v)
}

// Remove deletes the element at i, reporting whether it existed.
func (a *Array) Remove(i int) bool {
	if i < 0 || i >= len(a.values) {
		return false
	}
	a.values = append(a.values[:i], a.values[i+1:]...)
	return true
}

func (a *Array) Trailing() string {
	return a.trailing
}

func (a *Array) SetTrailing(v string) {
	a.trailing = v
}

func (a *Array) TrailingComma() bool {
	return a.trailingComma
}

func (a *Array) SetTrailingComma(v bool) {
	a.trailingComma = v
}
