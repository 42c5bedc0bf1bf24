package service

import (
	"fmt"

	"gedstore/internal/domain"
	"gedstore/internal/repository"
)

// EntityService is the CRUD façade for one entity kind. E is the entity
// struct and P its pointer type.
type EntityService[E any, P interface {
	*E
	domain.Entity
}] struct {
	kind   string
	list   func() []P
	add    func(P) error
	update func(P) error
	remove func(P) error
	events [3]EventType // created, updated, deleted
	bus    *EventBus
}

// IndividualService manages individuals
type IndividualService = EntityService[domain.Individual, *domain.Individual]

// FamilyService manages families
type FamilyService = EntityService[domain.Family, *domain.Family]

// SourceService exposes sources
type SourceService = EntityService[domain.Source, *domain.Source]

// RepositoryService exposes repositories
type RepositoryService = EntityService[domain.Repository, *domain.Repository]

// NewIndividualService creates the individual façade over store
func NewIndividualService(store repository.Store, bus *EventBus) *IndividualService {
	return &IndividualService{
		kind:   "individual",
		list:   store.Individuals,
		add:    store.AddIndividual,
		update: store.UpdateIndividual,
		remove: store.DeleteIndividual,
		events: [3]EventType{EventIndividualCreated, EventIndividualUpdated, EventIndividualDeleted},
		bus:    bus,
	}
}

// NewFamilyService creates the family façade over store
func NewFamilyService(store repository.Store, bus *EventBus) *FamilyService {
	return &FamilyService{
		kind:   "family",
		list:   store.Families,
		add:    store.AddFamily,
		update: store.UpdateFamily,
		remove: store.DeleteFamily,
		events: [3]EventType{EventFamilyCreated, EventFamilyUpdated, EventFamilyDeleted},
		bus:    bus,
	}
}

// NewSourceService creates the source façade over store
func NewSourceService(store repository.Store, bus *EventBus) *SourceService {
	return &SourceService{
		kind:   "source",
		list:   store.Sources,
		add:    store.AddSource,
		update: store.UpdateSource,
		remove: store.DeleteSource,
		bus:    bus,
	}
}

// NewRepositoryService creates the repository façade over store
func NewRepositoryService(store repository.Store, bus *EventBus) *RepositoryService {
	return &RepositoryService{
		kind:   "repository",
		list:   store.Repositories,
		add:    store.AddRepository,
		update: store.UpdateRepository,
		remove: store.DeleteRepository,
		bus:    bus,
	}
}

// GetAll returns every entity in store order
func (s *EntityService[E, P]) GetAll() []P {
	return s.list()
}

// Get returns the entity with the given identifier
func (s *EntityService[E, P]) Get(id int) (P, error) {
	for _, e := range s.list() {
		if e.EntityID() == id {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%s %d: %w", s.kind, id, repository.ErrNotFound)
}

// Find returns the entities matching pred
func (s *EntityService[E, P]) Find(pred func(P) bool) []P {
	var out []P
	for _, e := range s.list() {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// GetPage returns one page of all entities
func (s *EntityService[E, P]) GetPage(pageIndex, pageSize int) (*Page[P], error) {
	return NewPage(s.list(), pageIndex, pageSize)
}

// FindPage returns one page of the entities matching pred
func (s *EntityService[E, P]) FindPage(pred func(P) bool, pageIndex, pageSize int) (*Page[P], error) {
	return NewPage(s.Find(pred), pageIndex, pageSize)
}

// Add stores a new entity
func (s *EntityService[E, P]) Add(e P) error {
	return s.apply(e, s.add, 0)
}

// Update stores changes to an existing entity
func (s *EntityService[E, P]) Update(e P) error {
	return s.apply(e, s.update, 1)
}

// Delete removes an entity
func (s *EntityService[E, P]) Delete(e P) error {
	return s.apply(e, s.remove, 2)
}

func (s *EntityService[E, P]) apply(e P, op func(P) error, event int) error {
	if e == nil {
		return fmt.Errorf("%s: %w", s.kind, repository.ErrInvalidArgument)
	}
	if err := op(e); err != nil {
		return err
	}
	if t := s.events[event]; t != "" {
		s.bus.Publish(Event{
			Type:    t,
			Payload: map[string]int{s.kind + "_id": e.EntityID()},
		})
	}
	return nil
}

// TreeService exposes the tree of a store
type TreeService struct {
	store repository.Store
}

// NewTreeService creates the tree façade over store
func NewTreeService(store repository.Store) *TreeService {
	return &TreeService{store: store}
}

// Get returns the single tree held by the store
func (s *TreeService) Get() *domain.Tree {
	return s.store.Tree()
}

// Update is not supported by document stores
func (s *TreeService) Update(tree *domain.Tree) error {
	if tree == nil {
		return fmt.Errorf("tree: %w", repository.ErrInvalidArgument)
	}
	return s.store.UpdateTree(tree)
}
