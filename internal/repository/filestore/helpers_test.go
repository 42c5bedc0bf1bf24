package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gedstore/internal/domain"
	"gedstore/internal/gedcom"
)

// openFixture copies a testdata document into a temp dir and opens it there
func openFixture(t *testing.T, name string, opts ...Option) *Store {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name+".ged"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), name+".ged")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s, err := Open(path, opts...)
	require.NoError(t, err)
	return s
}

func findIndividual(t *testing.T, s *Store, id int) *domain.Individual {
	t.Helper()
	ind := s.individual(id)
	require.NotNil(t, ind, "individual %d", id)
	return ind
}

// familiesWith counts family records whose husband and wife match the weak
// references and whose children include the individual
func familiesWith(s *Store, father, mother string, individualID int) int {
	child := gedcom.CreateID(gedcom.PrefixIndividual, individualID)
	count := 0
	for _, fam := range s.doc.FamilyRecords() {
		if refFromXRef(fam.Husband()) == father && refFromXRef(fam.Wife()) == mother && fam.HasChild(child) {
			count++
		}
	}
	return count
}

func childLinks(s *Store, individualID int) int {
	child := gedcom.CreateID(gedcom.PrefixIndividual, individualID)
	count := 0
	for _, fam := range s.doc.FamilyRecords() {
		for _, c := range fam.Children() {
			if c == child {
				count++
			}
		}
	}
	return count
}
