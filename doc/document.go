package doc

// Document is the root wrapper around a table tree: the root table plus
// any trailing decorative text at the end of the source.
type Document struct {
	root     Item
	trailing string
}

// NewDocument returns an empty document whose root table has no header
// decor of its own.
func NewDocument() *Document {
	d := &Document{root: TableItem()}
	d.Root().Decor().SetPrefix("")
	return d
}

// NewDocumentOf wraps an existing table as a document root, sharing the
// table rather than copying it.
func NewDocumentOf(t *Table) *Document {
	return &Document{root: ItemOfTable(t)}
}

// Root returns the root table.  The root item is always the table
// variant.
func (d *Document) Root() *Table {
	return d.root.AsTable()
}

// RootItem exposes the root as an item for code that traverses documents
// generically.
func (d *Document) RootItem() *Item {
	return &d.root
}

func (d *Document) Trailing() string {
	return d.trailing
}

func (d *Document) SetTrailing(v string) {
	d.trailing = v
}
