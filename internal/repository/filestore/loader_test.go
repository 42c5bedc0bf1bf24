package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gedstore/internal/domain"
	"gedstore/internal/gedcom"
	"gedstore/internal/repository"
)

func TestOpenRejectsEmptyPath(t *testing.T) {
	s, err := Open("")
	assert.Nil(t, s)
	assert.ErrorIs(t, err, repository.ErrInvalidArgument)
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.ged")

	s, err := Open(path)
	require.NoError(t, err)
	assert.Empty(t, s.Individuals())
	assert.Empty(t, s.Families())
	assert.Equal(t, domain.DefaultTreeID, s.Tree().ID)

	_, err = os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist), "open must not create the file")

	require.NoError(t, s.AddIndividual(domain.NewIndividual("John", "Smith", domain.SexMale)))
	require.NoError(t, s.SaveChanges())

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Len(t, reopened.Individuals(), 1)
}

func TestOpenLoadsCollections(t *testing.T) {
	tests := []struct {
		fixture      string
		individuals  int
		families     int
		sources      int
		repositories int
	}{
		{"NoRecords", 0, 0, 0, 0},
		{"OneIndividual", 1, 0, 0, 0},
		{"TwoIndividuals", 2, 0, 0, 0},
		{"OneFamily", 3, 1, 0, 0},
		{"TwoFamilies", 6, 2, 0, 0},
		{"BindingTest", 3, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			s := openFixture(t, tt.fixture)
			assert.Len(t, s.Individuals(), tt.individuals)
			assert.Len(t, s.Families(), tt.families)
			assert.Len(t, s.Sources(), tt.sources)
			assert.Len(t, s.Repositories(), tt.repositories)
		})
	}
}

func TestOpenErrors(t *testing.T) {
	t.Run("record without cross reference", func(t *testing.T) {
		_, err := Open(filepath.Join("testdata", "MissingXRef.ged"))
		assert.ErrorIs(t, err, gedcom.ErrMissingXRef)
	})

	t.Run("malformed line", func(t *testing.T) {
		_, err := Open(filepath.Join("testdata", "Malformed.ged"))
		var syntaxErr *gedcom.SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Equal(t, 3, syntaxErr.Line)
	})
}

func TestLoadFamilyLinks(t *testing.T) {
	s := openFixture(t, "BindingTest")

	john := findIndividual(t, s, 1)
	assert.Equal(t, "John", john.FirstName)
	assert.Equal(t, "Smith", john.LastName)
	assert.Equal(t, domain.SexMale, john.Sex)
	assert.Equal(t, "2", john.FatherID)
	assert.Equal(t, "3", john.MotherID)

	robert := findIndividual(t, s, 2)
	assert.Empty(t, robert.FatherID)
	assert.Empty(t, robert.MotherID)

	fam := s.Families()[0]
	assert.Equal(t, 1, fam.ID)
	assert.Equal(t, "2", fam.HusbandID)
	assert.Equal(t, "3", fam.WifeID)
	assert.Equal(t, []string{"1"}, fam.ChildIDs)

	owner, ok := s.OwningFamilyID(1)
	assert.True(t, ok)
	assert.Equal(t, 1, owner)
	_, ok = s.OwningFamilyID(2)
	assert.False(t, ok)
}

func TestLoadTree(t *testing.T) {
	s := openFixture(t, "BindingTest")

	tree := s.Tree()
	assert.Equal(t, domain.DefaultTreeID, tree.ID)
	assert.Equal(t, "smith-family.ged", tree.Name)
	assert.Equal(t, "Descendants of Robert Smith\ncompiled from parish registers", tree.Description)
	assert.Equal(t, "FamilyTreeBuilder", tree.Source)

	for _, ind := range s.Individuals() {
		assert.Equal(t, tree.ID, ind.TreeID)
	}
}

func TestLoadNestedStructures(t *testing.T) {
	s := openFixture(t, "BindingTest")
	john := findIndividual(t, s, 1)

	t.Run("facts", func(t *testing.T) {
		require.Len(t, john.Facts, 2)

		birth := john.Facts[0]
		assert.Equal(t, domain.FactTypeBirth, birth.FactType)
		assert.Equal(t, "12 MAR 1890", birth.Date)
		assert.Equal(t, "Leeds, Yorkshire", birth.Place)

		occupation := john.Facts[1]
		assert.Equal(t, domain.FactTypeOccupation, occupation.FactType)
		assert.Empty(t, occupation.Place)
	})

	t.Run("citation under a fact", func(t *testing.T) {
		birth := john.Facts[0]
		require.Len(t, birth.Citations, 1)

		c := birth.Citations[0]
		assert.Equal(t, "1", c.SourceID)
		assert.Equal(t, "folio 12", c.Page)
		assert.Equal(t, "14 MAR 1890", c.Date)
		assert.Equal(t, "John son of Robert", c.Text)

		require.Len(t, c.Notes, 1)
		assert.Equal(t, "entry is faded", c.Notes[0].Text)
		require.Len(t, c.Multimedia, 1)
		assert.Equal(t, domain.MultimediaLink{File: "register-12.jpg", Format: "jpg", Title: "Register page"}, *c.Multimedia[0])

		assert.Empty(t, birth.Notes, "citation notes stay on the citation")
	})

	t.Run("notes", func(t *testing.T) {
		require.Len(t, john.Notes, 1, "missing and empty notes are skipped")
		assert.Equal(t, "Shared research note about the Smiths", john.Notes[0].Text)
	})

	t.Run("multimedia", func(t *testing.T) {
		require.Len(t, john.Multimedia, 1)
		assert.Equal(t, "john.jpg", john.Multimedia[0].File)
		assert.Equal(t, "John aged 20", john.Multimedia[0].Title)
	})

	t.Run("family structures", func(t *testing.T) {
		fam := s.Families()[0]
		require.Len(t, fam.Facts, 1)
		assert.Equal(t, domain.FactTypeMarriage, fam.Facts[0].FactType)
		assert.Equal(t, "Leeds", fam.Facts[0].Place)
		require.Len(t, fam.Facts[0].Notes, 1)
		assert.Equal(t, "Shared research note about the Smiths", fam.Facts[0].Notes[0].Text)

		require.Len(t, fam.Citations, 1)
		assert.Equal(t, "folio 3", fam.Citations[0].Page)
	})

	t.Run("sources and repositories", func(t *testing.T) {
		src := s.Sources()[0]
		assert.Equal(t, 1, src.ID)
		assert.Equal(t, "Parish clerk", src.Author)
		assert.Equal(t, "Leeds parish register", src.Title)
		assert.Equal(t, "Diocese of Ripon", src.Publisher)
		assert.Equal(t, "1", src.RepositoryID)
		require.Len(t, src.Notes, 1)

		repo := s.Repositories()[0]
		assert.Equal(t, "West Yorkshire Archive", repo.Name)
		assert.Equal(t, "Wakefield\nWF1 2DE", repo.Address)
		require.Len(t, repo.Notes, 1)
		assert.Equal(t, "Reading room by appointment", repo.Notes[0].Text)
	})
}

func TestFactType(t *testing.T) {
	tests := []struct {
		class gedcom.EventClass
		tag   gedcom.Tag
		want  domain.FactType
	}{
		{gedcom.EventClassIndividual, "DEAT", domain.FactTypeDeath},
		{gedcom.EventClassIndividual, "EVEN", domain.FactTypeEvent},
		{gedcom.EventClassAttribute, "RESI", domain.FactTypeResidence},
		{gedcom.EventClassAttribute, "FACT", domain.FactTypeFact},
		{gedcom.EventClassFamily, "DIV", domain.FactTypeDivorce},
		{gedcom.EventClassFamily, "CENS", domain.FactTypeCensus},
		{gedcom.EventClassFamily, "BIRT", domain.FactTypeUnknown},
		{gedcom.EventClassUnknown, "BIRT", domain.FactTypeUnknown},
	}
	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			got := factType(&gedcom.EventStructure{Class: tt.class, Tag: tt.tag})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolverSkipsNilStructures(t *testing.T) {
	res := newResolver(gedcom.NewDocument())
	ind := domain.NewIndividual("A", "B", domain.SexUnknown)

	res.citations(ind, []*gedcom.CitationStructure{nil, {XRefID: "@S4@"}})
	res.notes(ind, []*gedcom.NoteStructure{nil, {Text: ""}, {XRefID: "@N1@"}})
	res.facts(ind, []*gedcom.EventStructure{nil})

	require.Len(t, ind.Citations, 1)
	assert.Equal(t, "4", ind.Citations[0].SourceID)
	assert.Empty(t, ind.Notes)
	assert.Empty(t, ind.Facts)
}
