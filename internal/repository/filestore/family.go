package filestore

import (
	"strconv"

	"gedstore/internal/domain"
	"gedstore/internal/gedcom"
)

// reconcileFamily moves ind into the family record matching its parents.
// The owning family is the first record listing ind as a child; if its
// husband and wife differ from ind's parents, ind leaves it and joins the
// first matching family, or a new one created for it. An individual without
// parents is only ever removed from a family, never added to one.
func (s *Store) reconcileFamily(ind *domain.Individual) {
	xref := gedcom.CreateID(gedcom.PrefixIndividual, ind.ID)

	owner := s.doc.SelectChildsFamilyRecord(xref)
	if owner != nil {
		if refFromXRef(owner.Husband()) == ind.FatherID && refFromXRef(owner.Wife()) == ind.MotherID {
			return
		}
		if !ind.HasParents() {
			s.detachChild(owner, ind)
			return
		}
		target := s.matchFamily(ind)
		if target != nil && target.Record == owner.Record {
			return
		}
		s.detachChild(owner, ind)
		s.attachChild(target, ind)
		return
	}

	if !ind.HasParents() {
		return
	}
	s.attachChild(s.matchFamily(ind), ind)
}

// matchFamily finds the family for ind's parents: an exact husband and wife
// match when both are known, otherwise the first family of the known parent.
func (s *Store) matchFamily(ind *domain.Individual) *gedcom.FamilyRecord {
	father := xrefFromRef(gedcom.PrefixIndividual, ind.FatherID)
	mother := xrefFromRef(gedcom.PrefixIndividual, ind.MotherID)

	switch {
	case father != "" && mother != "":
		return s.doc.SelectFamilyRecord(father, mother)
	case father != "":
		return first(s.doc.SelectHusbandsFamilyRecords(father))
	case mother != "":
		return first(s.doc.SelectWifesFamilyRecords(mother))
	default:
		return nil
	}
}

func first(records []*gedcom.FamilyRecord) *gedcom.FamilyRecord {
	if len(records) == 0 {
		return nil
	}
	return records[0]
}

// attachChild appends ind to target, or to a new family when target is nil
func (s *Store) attachChild(target *gedcom.FamilyRecord, ind *domain.Individual) {
	childID := strconv.Itoa(ind.ID)

	if target == nil {
		fam := domain.NewFamily(ind.FatherID, ind.MotherID)
		fam.TreeID = s.tree.ID
		fam.ChildIDs = []string{childID}
		s.addFamily(fam)

		s.log.Info().
			Int("individual", ind.ID).
			Int("family", fam.ID).
			Str("husband", fam.HusbandID).
			Str("wife", fam.WifeID).
			Msg("family created for parents")
		return
	}

	xref := gedcom.CreateID(gedcom.PrefixIndividual, ind.ID)
	if !target.HasChild(xref) {
		target.AddChild(xref)
	}
	if fam := s.family(target.ID()); fam != nil {
		fam.AddChildID(childID)
	}
	s.reindexChild(ind.ID)

	s.log.Debug().
		Int("individual", ind.ID).
		Int("family", target.ID()).
		Msg("child added to family")
}

// detachChild removes ind's child link from owner. No link is a no-op.
func (s *Store) detachChild(owner *gedcom.FamilyRecord, ind *domain.Individual) {
	if !owner.RemoveChild(gedcom.CreateID(gedcom.PrefixIndividual, ind.ID)) {
		return
	}
	if fam := s.family(owner.ID()); fam != nil {
		fam.RemoveChildID(strconv.Itoa(ind.ID))
	}
	s.reindexChild(ind.ID)

	s.log.Debug().
		Int("individual", ind.ID).
		Int("family", owner.ID()).
		Msg("child removed from family")
}

// reindexChild recomputes the owning family of one individual from the document
func (s *Store) reindexChild(individualID int) {
	delete(s.owning, individualID)
	xref := gedcom.CreateID(gedcom.PrefixIndividual, individualID)
	if rec := s.doc.SelectChildsFamilyRecord(xref); rec != nil {
		s.owning[individualID] = rec.ID()
	}
}

func (s *Store) family(id int) *domain.Family {
	for _, f := range s.families {
		if f.ID == id {
			return f
		}
	}
	return nil
}

func (s *Store) individual(id int) *domain.Individual {
	for _, i := range s.individuals {
		if i.ID == id {
			return i
		}
	}
	return nil
}
