package repository

import "gedstore/internal/domain"

// Store defines the interface for family tree data access
type Store interface {
	// Read operations
	Tree() *domain.Tree
	Individuals() []*domain.Individual
	Families() []*domain.Family
	Sources() []*domain.Source
	Repositories() []*domain.Repository

	// Individuals
	AddIndividual(individual *domain.Individual) error
	UpdateIndividual(individual *domain.Individual) error
	DeleteIndividual(individual *domain.Individual) error

	// Families
	AddFamily(family *domain.Family) error
	UpdateFamily(family *domain.Family) error
	DeleteFamily(family *domain.Family) error

	// Sources, repositories and the tree are read-only
	AddSource(source *domain.Source) error
	UpdateSource(source *domain.Source) error
	DeleteSource(source *domain.Source) error
	AddRepository(repository *domain.Repository) error
	UpdateRepository(repository *domain.Repository) error
	DeleteRepository(repository *domain.Repository) error
	AddTree(tree *domain.Tree) error
	UpdateTree(tree *domain.Tree) error
	DeleteTree(tree *domain.Tree) error

	// SaveChanges persists every pending mutation
	SaveChanges() error
}

// Snapshot copies the current entity lists of a store. The entities are
// shared, only the slices are new.
func Snapshot(s Store) *domain.Snapshot {
	return &domain.Snapshot{
		Tree:         s.Tree(),
		Individuals:  append([]*domain.Individual(nil), s.Individuals()...),
		Families:     append([]*domain.Family(nil), s.Families()...),
		Sources:      append([]*domain.Source(nil), s.Sources()...),
		Repositories: append([]*domain.Repository(nil), s.Repositories()...),
	}
}
