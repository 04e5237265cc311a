// Package token provides the lexical layer for TOML documents: key
// tokenization, string quoting and unquoting, number parsing, and byte
// offset to line/column mapping.
//
// Everything here works on exact source bytes so that callers can keep the
// original representation of every token alongside its decoded value.
package token
