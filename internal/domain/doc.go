// Package domain defines the entity graph of a family tree.
//
// The types here are plain data: they know nothing about the document format
// they are loaded from or the stores that persist them.
//
// # Core Types
//
// Individual is a person with a name, a sex and weak references to their
// father and mother. Parent identifiers are decimal strings; the empty string
// means the parent is unknown.
//
// Family is a household: a husband, a wife and an ordered list of children.
// Family membership of an individual is derived, never stored on the
// individual: the family that lists them as a child is their family.
//
// Source and Repository describe where evidence comes from.
//
// # Owned Structures
//
// Facts, notes, citations and multimedia links belong to exactly one owner.
// Ownership is expressed through small capability interfaces (NoteOwner,
// MediaOwner, CitationOwner, FactOwner) implemented by embedding the
// Annotations, Media, Evidence and Chronicle structs.
//
// # Snapshot
//
// Snapshot is a detached copy of a whole tree, used for export, import and
// mirroring into other stores.
package domain
