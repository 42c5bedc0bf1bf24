package filestore

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"gedstore/internal/domain"
	"gedstore/internal/gedcom"
	"gedstore/internal/repository"
)

// AddIndividual assigns the next individual identifier, writes a record for
// the individual and places them in the family matching their parents
func (s *Store) AddIndividual(ind *domain.Individual) (err error) {
	defer s.observe(opAddIndividual, time.Now(), &err)

	if ind == nil {
		return fmt.Errorf("add individual: %w", repository.ErrInvalidArgument)
	}
	father, mother, err := normalizePair(ind.FatherID, ind.MotherID)
	if err != nil {
		return fmt.Errorf("add individual: %w", err)
	}
	ind.FatherID, ind.MotherID = father, mother

	ind.ID = s.doc.NextID(gedcom.TagIndividual)
	if ind.TreeID == "" {
		ind.TreeID = s.tree.ID
	}
	s.individuals = append(s.individuals, ind)

	rec := gedcom.NewIndividualRecord(ind.ID)
	rec.SetName(ind.FirstName, ind.LastName)
	rec.SetSex(recordSex(ind.Sex))
	s.doc.AddRecord(rec.Record)

	s.reconcileFamily(ind)

	s.log.Debug().Int("individual", ind.ID).Str("name", ind.FullName()).Msg("individual added")
	return nil
}

// UpdateIndividual rewrites the name and sex of an existing individual and
// re-derives their family from their parents
func (s *Store) UpdateIndividual(ind *domain.Individual) (err error) {
	defer s.observe(opUpdateIndividual, time.Now(), &err)

	if ind == nil {
		return fmt.Errorf("update individual: %w", repository.ErrInvalidArgument)
	}
	rec := s.doc.SelectIndividualRecord(gedcom.CreateID(gedcom.PrefixIndividual, ind.ID))
	if rec == nil {
		return fmt.Errorf("update individual %d: %w", ind.ID, repository.ErrNotFound)
	}
	father, mother, err := normalizePair(ind.FatherID, ind.MotherID)
	if err != nil {
		return fmt.Errorf("update individual %d: %w", ind.ID, err)
	}
	ind.FatherID, ind.MotherID = father, mother

	rec.SetName(ind.FirstName, ind.LastName)
	rec.SetSex(recordSex(ind.Sex))

	if i := s.individualIndex(ind.ID); i >= 0 {
		s.individuals[i] = ind
	} else {
		s.individuals = append(s.individuals, ind)
	}

	s.reconcileFamily(ind)
	return nil
}

// DeleteIndividual removes the individual's record and every family link to
// them: as a child of their owning family and as husband or wife according
// to their sex. Unknown sex removes both.
func (s *Store) DeleteIndividual(ind *domain.Individual) (err error) {
	defer s.observe(opDeleteIndividual, time.Now(), &err)

	if ind == nil {
		return fmt.Errorf("delete individual: %w", repository.ErrInvalidArgument)
	}
	xref := gedcom.CreateID(gedcom.PrefixIndividual, ind.ID)
	rec := s.doc.SelectIndividualRecord(xref)
	if rec == nil {
		return fmt.Errorf("delete individual %d: %w", ind.ID, repository.ErrNotFound)
	}

	if i := s.individualIndex(ind.ID); i >= 0 {
		s.individuals = slices.Delete(s.individuals, i, i+1)
	}
	s.doc.RemoveRecord(rec.Record)

	ref := strconv.Itoa(ind.ID)
	if owner := s.doc.SelectChildsFamilyRecord(xref); owner != nil {
		owner.RemoveChild(xref)
		if fam := s.family(owner.ID()); fam != nil {
			fam.RemoveChildID(ref)
		}
	}
	delete(s.owning, ind.ID)

	if ind.Sex != domain.SexFemale {
		for _, fr := range s.doc.SelectHusbandsFamilyRecords(xref) {
			fr.RemoveHusband(xref)
			if fam := s.family(fr.ID()); fam != nil {
				fam.HusbandID = ""
				s.forgetParent(fam, ref, func(i *domain.Individual) *string { return &i.FatherID })
			}
		}
	}
	if ind.Sex != domain.SexMale {
		for _, fr := range s.doc.SelectWifesFamilyRecords(xref) {
			fr.RemoveWife(xref)
			if fam := s.family(fr.ID()); fam != nil {
				fam.WifeID = ""
				s.forgetParent(fam, ref, func(i *domain.Individual) *string { return &i.MotherID })
			}
		}
	}

	s.log.Debug().Int("individual", ind.ID).Msg("individual deleted")
	return nil
}

// forgetParent clears the parent reference of fam's children that pointed
// at the removed individual
func (s *Store) forgetParent(fam *domain.Family, ref string, parent func(*domain.Individual) *string) {
	for _, childRef := range fam.ChildIDs {
		childID, err := strconv.Atoi(childRef)
		if err != nil {
			continue
		}
		if child := s.individual(childID); child != nil {
			if p := parent(child); *p == ref {
				*p = ""
			}
		}
	}
}

// AddFamily assigns the next family identifier and writes a record with the
// family's husband, wife and children. Children's parents are not changed.
func (s *Store) AddFamily(fam *domain.Family) (err error) {
	defer s.observe(opAddFamily, time.Now(), &err)

	if fam == nil {
		return fmt.Errorf("add family: %w", repository.ErrInvalidArgument)
	}
	husband, wife, err := normalizePair(fam.HusbandID, fam.WifeID)
	if err != nil {
		return fmt.Errorf("add family: %w", err)
	}
	children := make([]string, 0, len(fam.ChildIDs))
	for _, c := range fam.ChildIDs {
		ref, err := normalizeRef(gedcom.PrefixIndividual, c)
		if err != nil {
			return fmt.Errorf("add family: child: %w", err)
		}
		if ref != "" && !slices.Contains(children, ref) {
			children = append(children, ref)
		}
	}
	fam.HusbandID, fam.WifeID, fam.ChildIDs = husband, wife, children

	s.addFamily(fam)
	s.log.Debug().Int("family", fam.ID).Msg("family added")
	return nil
}

// addFamily registers an already normalized family
func (s *Store) addFamily(fam *domain.Family) {
	fam.ID = s.doc.NextID(gedcom.TagFamily)
	if fam.TreeID == "" {
		fam.TreeID = s.tree.ID
	}

	rec := gedcom.NewFamilyRecord(fam.ID)
	if fam.HusbandID != "" {
		rec.AddHusband(xrefFromRef(gedcom.PrefixIndividual, fam.HusbandID))
	}
	if fam.WifeID != "" {
		rec.AddWife(xrefFromRef(gedcom.PrefixIndividual, fam.WifeID))
	}
	for _, c := range fam.ChildIDs {
		rec.AddChild(xrefFromRef(gedcom.PrefixIndividual, c))
	}
	s.doc.AddRecord(rec.Record)
	s.families = append(s.families, fam)

	for _, c := range fam.ChildIDs {
		if id, err := strconv.Atoi(c); err == nil {
			s.reindexChild(id)
		}
	}
}

// UpdateFamily checks that the family exists. Field changes are not written
// to the document.
func (s *Store) UpdateFamily(fam *domain.Family) (err error) {
	defer s.observe(opUpdateFamily, time.Now(), &err)

	if fam == nil {
		return fmt.Errorf("update family: %w", repository.ErrInvalidArgument)
	}
	if s.doc.SelectFamilyRecordByID(gedcom.CreateID(gedcom.PrefixFamily, fam.ID)) == nil {
		return fmt.Errorf("update family %d: %w", fam.ID, repository.ErrNotFound)
	}

	// TODO: write husband, wife and child changes back to the family record
	s.log.Debug().Int("family", fam.ID).Msg("family update leaves the record unchanged")
	return nil
}

// DeleteFamily removes the family record. Children whose parents were the
// family's husband and wife lose those references.
func (s *Store) DeleteFamily(fam *domain.Family) (err error) {
	defer s.observe(opDeleteFamily, time.Now(), &err)

	if fam == nil {
		return fmt.Errorf("delete family: %w", repository.ErrInvalidArgument)
	}
	rec := s.doc.SelectFamilyRecordByID(gedcom.CreateID(gedcom.PrefixFamily, fam.ID))
	if rec == nil {
		return fmt.Errorf("delete family %d: %w", fam.ID, repository.ErrNotFound)
	}

	husband := refFromXRef(rec.Husband())
	wife := refFromXRef(rec.Wife())
	s.doc.RemoveRecord(rec.Record)
	if i := slices.IndexFunc(s.families, func(f *domain.Family) bool { return f.ID == fam.ID }); i >= 0 {
		s.families = slices.Delete(s.families, i, i+1)
	}

	for _, child := range rec.Children() {
		childID := gedcom.ParseID(child)
		if childID < 0 {
			continue
		}
		s.reindexChild(childID)
		if ind := s.individual(childID); ind != nil && ind.FatherID == husband && ind.MotherID == wife {
			ind.FatherID, ind.MotherID = "", ""
		}
	}

	s.log.Debug().Int("family", fam.ID).Msg("family deleted")
	return nil
}

// AddSource is not supported
func (s *Store) AddSource(*domain.Source) error {
	return fmt.Errorf("add source: %w", repository.ErrUnsupported)
}

// UpdateSource is not supported
func (s *Store) UpdateSource(*domain.Source) error {
	return fmt.Errorf("update source: %w", repository.ErrUnsupported)
}

// DeleteSource is not supported
func (s *Store) DeleteSource(*domain.Source) error {
	return fmt.Errorf("delete source: %w", repository.ErrUnsupported)
}

// AddRepository is not supported
func (s *Store) AddRepository(*domain.Repository) error {
	return fmt.Errorf("add repository: %w", repository.ErrUnsupported)
}

// UpdateRepository is not supported
func (s *Store) UpdateRepository(*domain.Repository) error {
	return fmt.Errorf("update repository: %w", repository.ErrUnsupported)
}

// DeleteRepository is not supported
func (s *Store) DeleteRepository(*domain.Repository) error {
	return fmt.Errorf("delete repository: %w", repository.ErrUnsupported)
}

// AddTree is not supported
func (s *Store) AddTree(*domain.Tree) error {
	return fmt.Errorf("add tree: %w", repository.ErrUnsupported)
}

// UpdateTree is not supported
func (s *Store) UpdateTree(*domain.Tree) error {
	return fmt.Errorf("update tree: %w", repository.ErrUnsupported)
}

// DeleteTree is not supported
func (s *Store) DeleteTree(*domain.Tree) error {
	return fmt.Errorf("delete tree: %w", repository.ErrUnsupported)
}

func (s *Store) individualIndex(id int) int {
	return slices.IndexFunc(s.individuals, func(i *domain.Individual) bool { return i.ID == id })
}
