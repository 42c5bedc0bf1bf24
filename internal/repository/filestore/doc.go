// Package filestore implements repository.Store on top of a single
// genealogy document on disk.
//
// Opening a store parses the whole document and materializes the entity
// graph. Mutations edit the parsed records and the entity lists together;
// SaveChanges writes the document back atomically.
//
// Family membership is derived: an individual belongs to the first family
// record that lists them as a child, and their parents are that family's
// husband and wife. Whenever an individual is added or updated the store
// moves them to the family matching their parents, creating one when none
// exists. When several families match, the first in document order wins.
//
// A Store is not safe for concurrent use.
package filestore
