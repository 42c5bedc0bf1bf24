package filestore

import (
	"fmt"
	"strconv"

	"gedstore/internal/domain"
	"gedstore/internal/gedcom"
)

// load builds the entity lists from the parsed document. Records keep their
// document order.
func (s *Store) load() error {
	s.tree = loadTree(s.doc)
	s.individuals = nil
	s.families = nil
	s.repositories = nil
	s.sources = nil
	s.owning = make(map[int]int)

	res := newResolver(s.doc)

	byID := make(map[int]*domain.Individual)
	for _, rec := range s.doc.IndividualRecords() {
		ind, err := s.loadIndividual(res, rec)
		if err != nil {
			return err
		}
		byID[ind.ID] = ind
		s.individuals = append(s.individuals, ind)
	}

	for _, rec := range s.doc.FamilyRecords() {
		id, err := recordID(rec.Record)
		if err != nil {
			return err
		}
		fam := &domain.Family{
			ID:        id,
			TreeID:    s.tree.ID,
			HusbandID: refFromXRef(rec.Husband()),
			WifeID:    refFromXRef(rec.Wife()),
		}

		res.facts(fam, rec.Events())
		res.multimedia(fam, rec.Multimedia())
		res.notes(fam, rec.Notes())
		res.citations(fam, rec.SourceCitations())

		for _, child := range rec.Children() {
			childID := gedcom.ParseID(child)
			if childID < 0 {
				continue
			}
			fam.ChildIDs = append(fam.ChildIDs, strconv.Itoa(childID))

			// family records are authoritative for parentage
			if ind := byID[childID]; ind != nil {
				ind.MotherID = fam.WifeID
				ind.FatherID = fam.HusbandID
			}
			if _, owned := s.owning[childID]; !owned {
				s.owning[childID] = fam.ID
			}
		}

		s.families = append(s.families, fam)
	}

	for _, rec := range s.doc.RepositoryRecords() {
		id, err := recordID(rec.Record)
		if err != nil {
			return err
		}
		repo := &domain.Repository{
			ID:      id,
			TreeID:  s.tree.ID,
			Name:    rec.Name(),
			Address: rec.Address(),
		}
		res.notes(repo, rec.Notes())
		s.repositories = append(s.repositories, repo)
	}

	for _, rec := range s.doc.SourceRecords() {
		id, err := recordID(rec.Record)
		if err != nil {
			return err
		}
		src := &domain.Source{
			ID:        id,
			TreeID:    s.tree.ID,
			Author:    rec.Author(),
			Title:     rec.Title(),
			Publisher: rec.PublisherInfo(),
		}
		if repo := rec.SourceRepository(); repo != nil {
			src.RepositoryID = refFromXRef(repo.XRefID)
		}
		res.notes(src, rec.Notes())
		s.sources = append(s.sources, src)
	}

	return nil
}

func (s *Store) loadIndividual(res *resolver, rec *gedcom.IndividualRecord) (*domain.Individual, error) {
	id, err := recordID(rec.Record)
	if err != nil {
		return nil, err
	}
	ind := &domain.Individual{
		ID:     id,
		TreeID: s.tree.ID,
		Sex:    domainSex(rec.Sex()),
	}
	if name, ok := rec.Name(); ok {
		ind.FirstName = name.GivenName
		ind.LastName = name.LastName
	}

	res.facts(ind, rec.Events())
	res.multimedia(ind, rec.Multimedia())
	res.notes(ind, rec.Notes())
	res.citations(ind, rec.SourceCitations())

	return ind, nil
}

// loadTree reads the tree metadata from the header record
func loadTree(doc *gedcom.Document) *domain.Tree {
	tree := domain.NewTree("")
	if h := doc.Header(); h != nil {
		tree.Name = h.FileName()
		tree.Description = h.Note()
		tree.Source = h.SourceSystem()
	}
	return tree
}

func recordID(rec *gedcom.Record) (int, error) {
	id := gedcom.ParseID(rec.XRef)
	if rec.XRef == "" || id < 0 {
		return 0, fmt.Errorf("load %s record: %w", rec.Tag, gedcom.ErrMissingXRef)
	}
	return id, nil
}

func domainSex(sex gedcom.Sex) domain.Sex {
	switch sex {
	case gedcom.SexMale:
		return domain.SexMale
	case gedcom.SexFemale:
		return domain.SexFemale
	default:
		return domain.SexUnknown
	}
}

func recordSex(sex domain.Sex) gedcom.Sex {
	switch sex {
	case domain.SexMale:
		return gedcom.SexMale
	case domain.SexFemale:
		return gedcom.SexFemale
	default:
		return gedcom.SexUnknown
	}
}
