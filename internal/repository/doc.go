// Package repository defines the data access interface for a family tree.
//
// The Store interface is the whole contract between callers and a
// persisted tree: entity lists, the add/update/delete operations, and
// SaveChanges. The document-backed implementation lives in the filestore
// subpackage; the sqlite subpackage holds a read-only mirror used for
// queries.
//
// # Error Taxonomy
//
// Operations wrap one of three sentinels so callers can test with errors.Is:
//
//   - ErrInvalidArgument: a nil entity or a malformed identifier
//   - ErrNotFound: no record exists for the entity's identifier
//   - ErrUnsupported: the operation is not offered for that entity kind
//
// I/O and parse failures are wrapped and returned as they are.
//
// # Lifecycle
//
// Entities are materialized when a store is opened. Mutations edit the
// in-memory state only; nothing reaches storage until SaveChanges.
package repository
