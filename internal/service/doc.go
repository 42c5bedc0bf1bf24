// Package service implements the application layer of gedstore.
//
// This package sits between the command line and the repository layer. It
// wraps a repository.Store in typed per-kind services, adds paging and
// filtering, and publishes events for every successful mutation.
//
// # Services
//
// EntityService is a generic CRUD façade. IndividualService, FamilyService,
// SourceService and RepositoryService are its instantiations. Sources and
// repositories are read-only in document stores, so their mutations surface
// repository.ErrUnsupported unchanged.
//
// TreeService returns the single tree held by a store.
//
// # Unit of work
//
// UnitOfWork bundles the services over one store. Mutations stay in memory
// until Commit, which saves the document and then refreshes the optional
// SQLite mirror. Import copies a Snapshot into the store with fresh
// identifiers.
//
// # Event System
//
// All services publish events via EventBus. Publishing never blocks: a
// subscriber whose channel is full misses the event.
package service
