package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"gedstore/internal/domain"
	"gedstore/internal/repository"
)

// Mirror receives a full copy of the store after each commit
type Mirror interface {
	Sync(ctx context.Context, snapshot *domain.Snapshot) error
}

// ImportResult contains the results of an import operation
type ImportResult struct {
	IndividualsAdded int `json:"individuals_added"`
	FamiliesAdded    int `json:"families_added"`
	// UnresolvedParents counts parent references that named an individual
	// missing from the imported snapshot. They are dropped.
	UnresolvedParents int `json:"unresolved_parents"`
}

// UnitOfWork bundles the services over one store
type UnitOfWork struct {
	store  repository.Store
	bus    *EventBus
	mirror Mirror
	log    zerolog.Logger

	Individuals  *IndividualService
	Families     *FamilyService
	Sources      *SourceService
	Repositories *RepositoryService
	Trees        *TreeService
}

// Option configures a UnitOfWork
type Option func(*UnitOfWork)

// WithEventBus publishes events on bus
func WithEventBus(bus *EventBus) Option {
	return func(u *UnitOfWork) {
		u.bus = bus
	}
}

// WithMirror syncs m after every commit
func WithMirror(m Mirror) Option {
	return func(u *UnitOfWork) {
		u.mirror = m
	}
}

// WithLogger sets the logger
func WithLogger(log zerolog.Logger) Option {
	return func(u *UnitOfWork) {
		u.log = log.With().Str("component", "unit_of_work").Logger()
	}
}

// NewUnitOfWork creates a unit of work over store
func NewUnitOfWork(store repository.Store, opts ...Option) (*UnitOfWork, error) {
	if store == nil {
		return nil, fmt.Errorf("store: %w", repository.ErrInvalidArgument)
	}
	u := &UnitOfWork{
		store: store,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(u)
	}
	u.Individuals = NewIndividualService(store, u.bus)
	u.Families = NewFamilyService(store, u.bus)
	u.Sources = NewSourceService(store, u.bus)
	u.Repositories = NewRepositoryService(store, u.bus)
	u.Trees = NewTreeService(store)
	return u, nil
}

// Snapshot returns a copy of the current entity lists
func (u *UnitOfWork) Snapshot() *domain.Snapshot {
	return repository.Snapshot(u.store)
}

// Commit saves pending changes and refreshes the mirror
func (u *UnitOfWork) Commit(ctx context.Context) error {
	start := time.Now()
	if err := u.store.SaveChanges(); err != nil {
		return fmt.Errorf("save changes: %w", err)
	}
	if u.mirror != nil {
		if err := u.mirror.Sync(ctx, u.Snapshot()); err != nil {
			return fmt.Errorf("sync mirror: %w", err)
		}
	}

	u.log.Info().Dur("elapsed", time.Since(start)).Bool("mirrored", u.mirror != nil).Msg("changes committed")
	u.bus.Publish(Event{Type: EventCommitted})
	return nil
}

// Import adds the individuals of snap with fresh identifiers, carrying
// names, sex and parents. Parent references are remapped so the store
// builds the families. Childless families of snap are added directly.
func (u *UnitOfWork) Import(snap *domain.Snapshot) (*ImportResult, error) {
	if snap == nil {
		return nil, fmt.Errorf("snapshot: %w", repository.ErrInvalidArgument)
	}
	result := &ImportResult{}
	familiesBefore := len(u.store.Families())
	ids := make(map[string]string, len(snap.Individuals))

	// Pass 1: every individual gets an identifier.
	added := make([]*domain.Individual, 0, len(snap.Individuals))
	for _, src := range snap.Individuals {
		if src == nil {
			continue
		}
		ind := &domain.Individual{
			FirstName: src.FirstName,
			LastName:  src.LastName,
			Sex:       src.Sex,
		}
		if err := u.store.AddIndividual(ind); err != nil {
			return result, fmt.Errorf("import individual %d: %w", src.ID, err)
		}
		ids[strconv.Itoa(src.ID)] = strconv.Itoa(ind.ID)
		added = append(added, ind)
		result.IndividualsAdded++
	}

	// Pass 2: parents, now that every target exists.
	i := 0
	for _, src := range snap.Individuals {
		if src == nil {
			continue
		}
		ind := added[i]
		i++
		father := u.remap(ids, src.FatherID, result)
		mother := u.remap(ids, src.MotherID, result)
		if father == "" && mother == "" {
			continue
		}
		ind.FatherID, ind.MotherID = father, mother
		if err := u.store.UpdateIndividual(ind); err != nil {
			return result, fmt.Errorf("import parents of %d: %w", src.ID, err)
		}
	}

	for _, fam := range snap.Families {
		if fam == nil || len(fam.ChildIDs) > 0 {
			continue
		}
		husband := u.remap(ids, fam.HusbandID, result)
		wife := u.remap(ids, fam.WifeID, result)
		if husband == "" && wife == "" {
			continue
		}
		if err := u.store.AddFamily(domain.NewFamily(husband, wife)); err != nil {
			return result, fmt.Errorf("import family %d: %w", fam.ID, err)
		}
	}

	result.FamiliesAdded = len(u.store.Families()) - familiesBefore
	u.log.Info().
		Int("individuals", result.IndividualsAdded).
		Int("families", result.FamiliesAdded).
		Int("unresolved", result.UnresolvedParents).
		Msg("snapshot imported")
	u.bus.Publish(Event{Type: EventImported, Payload: result})
	return result, nil
}

func (u *UnitOfWork) remap(ids map[string]string, ref string, result *ImportResult) string {
	if ref == "" {
		return ""
	}
	if id, ok := ids[ref]; ok {
		return id
	}
	result.UnresolvedParents++
	u.log.Debug().Str("ref", ref).Msg("dropping unresolved reference")
	return ""
}
