package doc

// Decor is the decorative text around a construct: the prefix holds
// comments, blank lines and whitespace preceding it in the source, the
// suffix holds trailing whitespace and comments.
type Decor struct {
	prefix string
	suffix string
}

func NewDecor(prefix, suffix string) Decor {
	return Decor{prefix: prefix, suffix: suffix}
}

func (d *Decor) Prefix() string { return d.prefix }
func (d *Decor) Suffix() string { return d.suffix }

func (d *Decor) SetPrefix(v string) { d.prefix = v }
func (d *Decor) SetSuffix(v string) { d.suffix = v }

// Repr pairs a token's exact source text with its decor.
type Repr struct {
	decor Decor
	raw   string
}

func NewRepr(prefix, raw, suffix string) Repr {
	return Repr{decor: NewDecor(prefix, suffix), raw: raw}
}

func (r *Repr) Raw() string   { return r.raw }
func (r *Repr) Decor() *Decor { return &r.decor }

func (r *Repr) SetRaw(raw string) { r.raw = raw }
