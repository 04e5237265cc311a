// Package parse builds format-preserving documents from TOML text.
//
// Every byte of the input survives the trip into the document model:
// whitespace, comments and newlines become decor on the nearest key,
// value or table header, and scalar values keep the exact text they were
// written with.  Encoding an unmodified document reproduces the input.
//
// The package accepts TOML 0.4 era syntax.  Dotted keys appear in table
// headers only; a dotted key on the left of '=' is a parse error.
package parse
