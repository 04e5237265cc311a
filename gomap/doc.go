// Package gomap projects documents to and from plain Go values.
//
// The From functions flatten a document into maps, slices and scalars,
// dropping decor; FromDocumentOrdered keeps key order by producing a
// yaml.MapSlice, which both the YAML and conversion paths consume.  The
// To functions build fresh documents from plain values, and Sync edits
// an existing document in place to match a plain value while preserving
// the formatting of everything that did not change.
package gomap
