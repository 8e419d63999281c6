// Package object defines the data model for the content-addressed object
// store: object identifiers, kinds, the four concrete object types, tree
// entries, and the [Store] interface through which cached fields are
// resolved.
//
// Objects are identified by a 20-byte hash of their canonical
// serialization. The package does not read, decompress, or hash payloads;
// it only models them. See the store package for a concrete [Store].
//
// # Ownership
//
// Object handles are interned and owned by their Store. Consumers such as
// the check package hold borrowed references for the duration of a call
// and never mutate object fields.
package object
