// Package doc defines the format-preserving document model for TOML.
//
// # Overview
//
// A parsed TOML document is represented as a tree of tables and items that
// keeps the source formatting (comments, blank lines, whitespace around
// punctuation, quoting style) as first-class data next to the semantic
// values.  The tree can be inspected and edited programmatically and then
// re-encoded; any region that was not touched reproduces its original bytes.
//
// # Structure
//
// The two central types are:
//
//   - Table: an ordered, duplicate-free mapping from key text to a
//     key/value slot, plus decorative text around its header and an
//     implicit-visibility flag.
//   - Item: a closed tagged union of four variants: none (a probed but
//     unset slot), a value, a nested table, or an array of tables.
//
// Table entries hold Items and Items may contain Tables, so the model is a
// recursive ownership tree: no sharing, no cycles.  Items of the value
// variant hold a Value from the scalar subsystem (integers, floats,
// booleans, strings, date-times, inline arrays and inline tables), each of
// which carries its original raw text and surrounding decor.
//
// # Ghost slots
//
// Entry creates a slot holding the none variant when the key was never
// assigned.  Such slots are visible to Get and Iter but do not count for
// Len or ContainsKey.  Consumers that place decor rely on slot existence,
// so this distinction is deliberate and must be preserved.
//
// # Thread Safety
//
// The model is not thread-safe.  A table and its descendants are assumed
// to be owned and mutated by exactly one logical owner at a time; callers
// needing concurrent access must synchronize externally.
//
// # Related Packages
//
//   - github.com/toml-format/go-tomled/parse - Parses TOML text into documents
//   - github.com/toml-format/go-tomled/encode - Encodes documents back to text
//   - github.com/toml-format/go-tomled/gomap - Converts documents to plain Go values
package doc
