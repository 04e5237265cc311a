// Package format enumerates the text formats the tomled tool reads and
// writes: TOML on the lossless side, JSON and YAML for semantic conversion.
//
// # Related Packages
//
//   - github.com/toml-format/go-tomled/parse - Parse TOML text to a document
//   - github.com/toml-format/go-tomled/encode - Encode a document to text
package format
