// Package encode serializes documents to TOML, JSON or YAML text.
//
// # Usage
//
//	// Encode back to TOML, byte for byte when unmodified
//	err := encode.Encode(d, os.Stdout)
//
//	// Encode with options
//	err := encode.Encode(d, os.Stdout,
//	    encode.EncodeFormat(format.JSONFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// TOML output reproduces the decor and raw reprs stored in the document,
// so a freshly parsed document encodes to its exact input.  JSON and
// YAML output discard comments and whitespace but keep key order.
//
// # Related Packages
//
//   - github.com/toml-format/go-tomled/doc - document model
//   - github.com/toml-format/go-tomled/parse - parse text to documents
package encode
