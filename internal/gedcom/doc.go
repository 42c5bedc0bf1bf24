// Package gedcom implements the raw hierarchical document that backs a family tree.
//
// A document is a sequence of level-prefixed lines:
//
//	0 @I1@ INDI
//	1 NAME John /Smith/
//	1 SEX M
//	0 @F1@ FAM
//	1 HUSB @I2@
//	1 CHIL @I1@
//
// Lines are parsed into a tree of Record values. Level 0 records are the
// top-level records (individuals, families, sources, repositories, notes,
// the header and the trailer); deeper levels are the sub-structures that
// belong to them.
//
// # Records and Views
//
// Record is the untyped node. IndividualRecord, FamilyRecord, SourceRecord,
// RepositoryRecord, NoteRecord and HeaderRecord are thin views over a Record
// that know where each field lives. Sub-structures (events, citations, notes,
// multimedia links, names) are read out as plain structure values.
//
// # Document
//
// Document owns the top-level records and offers the queries the entity
// store needs: selecting family records by husband, wife or child, selecting
// individual records by cross reference, adding and removing records, and
// allocating the next unused identifier for a record kind.
//
// Everything the package does not understand is kept as-is and written back
// verbatim, so loading and saving a document without changes does not lose
// records such as submitters or custom tags.
package gedcom
