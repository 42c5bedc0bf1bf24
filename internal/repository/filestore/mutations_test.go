package filestore

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gedstore/internal/domain"
	"gedstore/internal/gedcom"
	"gedstore/internal/metrics"
	"gedstore/internal/repository"
)

func TestAddIndividual(t *testing.T) {
	t.Run("without parents creates no family", func(t *testing.T) {
		s := openFixture(t, "TwoIndividuals")
		ind := domain.NewIndividual("Alice", "Smith", domain.SexFemale)

		require.NoError(t, s.AddIndividual(ind))

		assert.Equal(t, 3, ind.ID)
		assert.Len(t, s.Individuals(), 3)
		assert.Same(t, ind, s.Individuals()[2])
		assert.Empty(t, s.Families())

		rec := s.doc.SelectIndividualRecord("@I3@")
		require.NotNil(t, rec)
		assert.Equal(t, "Alice /Smith/", rec.ChildValue(gedcom.TagName))
		assert.Equal(t, "F", rec.ChildValue(gedcom.TagSex))
	})

	t.Run("joins the family matching both parents", func(t *testing.T) {
		s := openFixture(t, "OneFamily")
		ind := domain.NewIndividual("Carl", "Smith", domain.SexMale)
		ind.FatherID = "1"
		ind.MotherID = "2"

		require.NoError(t, s.AddIndividual(ind))

		assert.Len(t, s.Families(), 1)
		assert.Equal(t, []string{"@I3@", "@I4@"}, s.doc.SelectFamilyRecordByID("@F1@").Children())
		assert.Equal(t, []string{"3", "4"}, s.Families()[0].ChildIDs)
		assert.Equal(t, 1, familiesWith(s, "1", "2", ind.ID))

		owner, ok := s.OwningFamilyID(ind.ID)
		assert.True(t, ok)
		assert.Equal(t, 1, owner)
	})

	t.Run("unseen parents create exactly one family", func(t *testing.T) {
		s := openFixture(t, "TwoIndividuals")
		ind := domain.NewIndividual("Tom", "Smith", domain.SexMale)
		ind.FatherID = "1"
		ind.MotherID = "2"

		require.NoError(t, s.AddIndividual(ind))

		require.Len(t, s.Families(), 1)
		fam := s.Families()[0]
		assert.Equal(t, 1, fam.ID)
		assert.Equal(t, "1", fam.HusbandID)
		assert.Equal(t, "2", fam.WifeID)
		assert.Equal(t, []string{"3"}, fam.ChildIDs)

		rec := s.doc.SelectFamilyRecordByID("@F1@")
		require.NotNil(t, rec)
		assert.Equal(t, "@I1@", rec.Husband())
		assert.Equal(t, "@I2@", rec.Wife())
		assert.Equal(t, []string{"@I3@"}, rec.Children())
	})

	t.Run("cross reference parents are normalized", func(t *testing.T) {
		s := openFixture(t, "OneFamily")
		ind := domain.NewIndividual("Dora", "Smith", domain.SexFemale)
		ind.FatherID = "@I1@"
		ind.MotherID = "@I2@"

		require.NoError(t, s.AddIndividual(ind))
		assert.Equal(t, "1", ind.FatherID)
		assert.Equal(t, "2", ind.MotherID)
		assert.Len(t, s.Families(), 1)
	})

	t.Run("invalid arguments leave the store untouched", func(t *testing.T) {
		s := openFixture(t, "OneIndividual")

		assert.ErrorIs(t, s.AddIndividual(nil), repository.ErrInvalidArgument)

		bad := domain.NewIndividual("X", "Y", domain.SexMale)
		bad.FatherID = "father"
		assert.ErrorIs(t, s.AddIndividual(bad), repository.ErrInvalidArgument)
		assert.Len(t, s.Individuals(), 1)
		assert.Len(t, s.doc.IndividualRecords(), 1)
	})
}

func TestAddIndividualKeepsFamiliesConsistent(t *testing.T) {
	s := openFixture(t, "TwoFamilies")

	parents := [][2]string{{"1", "2"}, {"3", "4"}, {"1", "4"}, {"7", ""}, {"", "2"}}
	for _, p := range parents {
		ind := domain.NewIndividual("Kid", "Smith", domain.SexUnknown)
		ind.FatherID, ind.MotherID = p[0], p[1]
		require.NoError(t, s.AddIndividual(ind))
	}

	for _, ind := range s.Individuals() {
		if ind.FatherID == "" || ind.MotherID == "" {
			continue
		}
		assert.Equal(t, 1, familiesWith(s, ind.FatherID, ind.MotherID, ind.ID), "individual %d", ind.ID)
	}
}

func TestIdentifiersAreNotReused(t *testing.T) {
	s := openFixture(t, "TwoIndividuals")

	second := findIndividual(t, s, 2)
	require.NoError(t, s.DeleteIndividual(second))

	ind := domain.NewIndividual("New", "Person", domain.SexMale)
	require.NoError(t, s.AddIndividual(ind))
	assert.Equal(t, 3, ind.ID)
}

func TestUpdateIndividual(t *testing.T) {
	t.Run("rewrites name and sex", func(t *testing.T) {
		s := openFixture(t, "OneIndividual")
		ind := findIndividual(t, s, 1)
		ind.FirstName = "Jack"
		ind.Sex = domain.SexUnknown

		require.NoError(t, s.UpdateIndividual(ind))

		rec := s.doc.SelectIndividualRecord("@I1@")
		assert.Equal(t, "Jack /Smith/", rec.ChildValue(gedcom.TagName))
		assert.Equal(t, "U", rec.ChildValue(gedcom.TagSex))
	})

	t.Run("replaces a detached copy in the list", func(t *testing.T) {
		s := openFixture(t, "OneIndividual")
		copied := *findIndividual(t, s, 1)
		copied.LastName = "Smyth"

		require.NoError(t, s.UpdateIndividual(&copied))
		assert.Same(t, &copied, s.Individuals()[0])
		assert.Len(t, s.Individuals(), 1)
	})

	t.Run("father only relocates to the new father's family", func(t *testing.T) {
		s := openFixture(t, "TwoFamilies")
		bob := findIndividual(t, s, 5)
		bob.FatherID = "3"
		bob.MotherID = ""

		require.NoError(t, s.UpdateIndividual(bob))

		assert.Empty(t, s.doc.SelectFamilyRecordByID("@F1@").Children())
		assert.Equal(t, []string{"@I6@", "@I5@"}, s.doc.SelectFamilyRecordByID("@F2@").Children())
		assert.Empty(t, s.family(1).ChildIDs)
		assert.Equal(t, []string{"6", "5"}, s.family(2).ChildIDs)
		assert.Len(t, s.Families(), 2)
		assert.Equal(t, 1, childLinks(s, 5))

		owner, _ := s.OwningFamilyID(5)
		assert.Equal(t, 2, owner)
	})

	t.Run("father only creates a family when none matches", func(t *testing.T) {
		s := openFixture(t, "TwoFamilies")
		bob := findIndividual(t, s, 5)
		bob.FatherID = "6"
		bob.MotherID = ""

		require.NoError(t, s.UpdateIndividual(bob))

		require.Len(t, s.Families(), 3)
		created := s.Families()[2]
		assert.Equal(t, 3, created.ID)
		assert.Equal(t, "6", created.HusbandID)
		assert.Empty(t, created.WifeID)
		assert.Equal(t, []string{"5"}, created.ChildIDs)

		rec := s.doc.SelectFamilyRecordByID("@F3@")
		require.NotNil(t, rec)
		assert.Equal(t, "@I6@", rec.Husband())
		assert.Empty(t, rec.Wife())
		assert.Equal(t, 1, childLinks(s, 5))
	})

	t.Run("mother only relocates to the mother's first family", func(t *testing.T) {
		s := openFixture(t, "TwoFamilies")
		ann := findIndividual(t, s, 6)
		ann.FatherID = ""
		ann.MotherID = "2"

		require.NoError(t, s.UpdateIndividual(ann))
		assert.Equal(t, []string{"@I5@", "@I6@"}, s.doc.SelectFamilyRecordByID("@F1@").Children())
		assert.Empty(t, s.doc.SelectFamilyRecordByID("@F2@").Children())
	})

	t.Run("target equal to owner changes nothing", func(t *testing.T) {
		s := openFixture(t, "TwoFamilies")
		bob := findIndividual(t, s, 5)
		bob.MotherID = ""

		require.NoError(t, s.UpdateIndividual(bob))
		assert.Equal(t, []string{"@I5@"}, s.doc.SelectFamilyRecordByID("@F1@").Children())
		assert.Len(t, s.Families(), 2)
	})

	t.Run("clearing parents removes the child without a new family", func(t *testing.T) {
		s := openFixture(t, "OneFamily")
		bob := findIndividual(t, s, 3)
		bob.FatherID = ""
		bob.MotherID = ""

		require.NoError(t, s.UpdateIndividual(bob))
		assert.Empty(t, s.doc.SelectFamilyRecordByID("@F1@").Children())
		assert.Len(t, s.Families(), 1)
		_, owned := s.OwningFamilyID(3)
		assert.False(t, owned)
	})

	t.Run("both parents changed joins the exact match", func(t *testing.T) {
		s := openFixture(t, "TwoFamilies")
		bob := findIndividual(t, s, 5)
		bob.FatherID = "3"
		bob.MotherID = "4"

		require.NoError(t, s.UpdateIndividual(bob))
		assert.Equal(t, 1, familiesWith(s, "3", "4", 5))
		assert.Equal(t, 1, childLinks(s, 5))
	})

	t.Run("unknown individual", func(t *testing.T) {
		s := openFixture(t, "OneIndividual")
		ghost := domain.NewIndividual("Ghost", "", domain.SexUnknown)
		ghost.ID = 99

		assert.ErrorIs(t, s.UpdateIndividual(ghost), repository.ErrNotFound)
		assert.ErrorIs(t, s.UpdateIndividual(nil), repository.ErrInvalidArgument)
		assert.Len(t, s.Individuals(), 1)
	})
}

func TestReconcileIsIdempotent(t *testing.T) {
	s := openFixture(t, "TwoIndividuals")
	ind := domain.NewIndividual("Tom", "Smith", domain.SexMale)
	ind.FatherID = "1"
	ind.MotherID = "2"
	require.NoError(t, s.AddIndividual(ind))

	s.reconcileFamily(ind)
	require.NoError(t, s.UpdateIndividual(ind))

	assert.Len(t, s.Families(), 1)
	assert.Len(t, s.doc.FamilyRecords(), 1)
	assert.Equal(t, 1, childLinks(s, ind.ID))
	assert.Equal(t, []string{"3"}, s.Families()[0].ChildIDs)
}

func TestUpdateKeepsSingleChildLink(t *testing.T) {
	s := openFixture(t, "ChildInTwoFamilies")
	kid := findIndividual(t, s, 3)
	require.Equal(t, "4", kid.FatherID)
	require.Equal(t, "5", kid.MotherID)

	require.NoError(t, s.UpdateIndividual(kid))
	assert.Empty(t, s.doc.SelectFamilyRecordByID("@F1@").Children())
	assert.Equal(t, []string{"@I3@"}, s.doc.SelectFamilyRecordByID("@F2@").Children())
	assert.Equal(t, 1, childLinks(s, 3))
	assert.Empty(t, s.family(1).ChildIDs)
	assert.Equal(t, []string{"3"}, s.family(2).ChildIDs)

	require.NoError(t, s.UpdateIndividual(kid))
	assert.Equal(t, 1, childLinks(s, 3))

	require.NoError(t, s.SaveChanges())
	reopened, err := Open(s.Path())
	require.NoError(t, err)
	assert.Equal(t, 1, childLinks(reopened, 3))
	assert.Equal(t, []string{"3"}, reopened.family(2).ChildIDs)
	assert.Equal(t, "4", findIndividual(t, reopened, 3).FatherID)
}

func TestFirstMatchWins(t *testing.T) {
	t.Run("husband and wife", func(t *testing.T) {
		s := openFixture(t, "DuplicateFamilies")
		ind := domain.NewIndividual("Kid", "Smith", domain.SexMale)
		ind.FatherID = "1"
		ind.MotherID = "2"

		require.NoError(t, s.AddIndividual(ind))
		assert.Equal(t, []string{"@I4@"}, s.doc.SelectFamilyRecordByID("@F1@").Children())
		assert.Empty(t, s.doc.SelectFamilyRecordByID("@F2@").Children())
	})

	t.Run("father only", func(t *testing.T) {
		s := openFixture(t, "DuplicateFamilies")
		ind := domain.NewIndividual("Kid", "Smith", domain.SexMale)
		ind.FatherID = "1"

		require.NoError(t, s.AddIndividual(ind))
		assert.Equal(t, []string{"@I4@"}, s.doc.SelectFamilyRecordByID("@F1@").Children())
		assert.Len(t, s.Families(), 3)
	})

	t.Run("mother only", func(t *testing.T) {
		s := openFixture(t, "DuplicateFamilies")
		ind := domain.NewIndividual("Kid", "Grey", domain.SexFemale)
		ind.MotherID = "3"

		require.NoError(t, s.AddIndividual(ind))
		assert.Equal(t, []string{"@I4@"}, s.doc.SelectFamilyRecordByID("@F3@").Children())
	})
}

func TestDeleteIndividual(t *testing.T) {
	t.Run("husband leaves every family", func(t *testing.T) {
		s := openFixture(t, "DuplicateFamilies")
		john := findIndividual(t, s, 1)

		require.NoError(t, s.DeleteIndividual(john))

		assert.Len(t, s.Individuals(), 2)
		assert.Nil(t, s.doc.SelectIndividualRecord("@I1@"))
		require.Len(t, s.doc.FamilyRecords(), 3)
		for _, fam := range s.doc.FamilyRecords() {
			assert.Empty(t, fam.Husband(), "family %s", fam.XRef)
			assert.NotEmpty(t, fam.Wife(), "family %s", fam.XRef)
		}
		for _, fam := range s.Families() {
			assert.Empty(t, fam.HusbandID)
		}
	})

	t.Run("children lose the deleted parent", func(t *testing.T) {
		s := openFixture(t, "OneFamily")
		require.NoError(t, s.DeleteIndividual(findIndividual(t, s, 1)))

		bob := findIndividual(t, s, 3)
		assert.Empty(t, bob.FatherID)
		assert.Equal(t, "2", bob.MotherID)
		assert.Equal(t, []string{"@I3@"}, s.doc.SelectFamilyRecordByID("@F1@").Children())
		assert.Equal(t, "@I2@", s.doc.SelectFamilyRecordByID("@F1@").Wife())
	})

	t.Run("child leaves the owning family", func(t *testing.T) {
		s := openFixture(t, "OneFamily")
		require.NoError(t, s.DeleteIndividual(findIndividual(t, s, 3)))

		assert.Empty(t, s.doc.SelectFamilyRecordByID("@F1@").Children())
		assert.Empty(t, s.Families()[0].ChildIDs)
		_, owned := s.OwningFamilyID(3)
		assert.False(t, owned)
	})

	t.Run("wife is removed only as wife", func(t *testing.T) {
		s := openFixture(t, "OneFamily")
		require.NoError(t, s.DeleteIndividual(findIndividual(t, s, 2)))

		rec := s.doc.SelectFamilyRecordByID("@F1@")
		assert.Equal(t, "@I1@", rec.Husband())
		assert.Empty(t, rec.Wife())
	})

	t.Run("unknown sex is removed from both slots", func(t *testing.T) {
		s := openFixture(t, "TwoIndividuals")
		pat := domain.NewIndividual("Pat", "Doe", domain.SexUnknown)
		require.NoError(t, s.AddIndividual(pat))
		require.NoError(t, s.AddFamily(domain.NewFamily("3", "1")))
		require.NoError(t, s.AddFamily(domain.NewFamily("2", "3")))

		require.NoError(t, s.DeleteIndividual(pat))

		f1 := s.doc.SelectFamilyRecordByID("@F1@")
		f2 := s.doc.SelectFamilyRecordByID("@F2@")
		assert.Empty(t, f1.Husband())
		assert.Equal(t, "@I1@", f1.Wife())
		assert.Equal(t, "@I2@", f2.Husband())
		assert.Empty(t, f2.Wife())
	})

	t.Run("unknown individual leaves state untouched", func(t *testing.T) {
		s := openFixture(t, "OneFamily")
		ghost := domain.NewIndividual("Ghost", "", domain.SexMale)
		ghost.ID = 42

		assert.ErrorIs(t, s.DeleteIndividual(ghost), repository.ErrNotFound)
		assert.ErrorIs(t, s.DeleteIndividual(nil), repository.ErrInvalidArgument)
		assert.Len(t, s.Individuals(), 3)
		assert.Len(t, s.doc.IndividualRecords(), 3)
	})
}

func TestFamilies(t *testing.T) {
	t.Run("add writes husband, wife and children", func(t *testing.T) {
		s := openFixture(t, "TwoFamilies")
		fam := domain.NewFamily("@I1@", "4")
		fam.ChildIDs = []string{"6", "6", "@I5@"}

		require.NoError(t, s.AddFamily(fam))

		assert.Equal(t, 3, fam.ID)
		assert.Equal(t, "1", fam.HusbandID)
		assert.Equal(t, []string{"6", "5"}, fam.ChildIDs)
		rec := s.doc.SelectFamilyRecordByID("@F3@")
		require.NotNil(t, rec)
		assert.Equal(t, "@I1@", rec.Husband())
		assert.Equal(t, "@I4@", rec.Wife())
		assert.Equal(t, []string{"@I6@", "@I5@"}, rec.Children())

		owner, _ := s.OwningFamilyID(5)
		assert.Equal(t, 1, owner, "first family in document order still owns the child")
	})

	t.Run("add rejects bad references", func(t *testing.T) {
		s := openFixture(t, "OneFamily")
		assert.ErrorIs(t, s.AddFamily(nil), repository.ErrInvalidArgument)

		fam := domain.NewFamily("1", "")
		fam.ChildIDs = []string{"@F1@"}
		assert.ErrorIs(t, s.AddFamily(fam), repository.ErrInvalidArgument)
		assert.Len(t, s.Families(), 1)
	})

	t.Run("update only checks existence", func(t *testing.T) {
		s := openFixture(t, "OneFamily")
		fam := s.Families()[0]
		fam.WifeID = "9"

		require.NoError(t, s.UpdateFamily(fam))
		assert.Equal(t, "@I2@", s.doc.SelectFamilyRecordByID("@F1@").Wife())

		assert.ErrorIs(t, s.UpdateFamily(&domain.Family{ID: 8}), repository.ErrNotFound)
		assert.ErrorIs(t, s.UpdateFamily(nil), repository.ErrInvalidArgument)
	})

	t.Run("delete removes record and entry", func(t *testing.T) {
		s := openFixture(t, "OneFamily")

		require.NoError(t, s.DeleteFamily(s.Families()[0]))

		assert.Empty(t, s.Families())
		assert.Empty(t, s.doc.FamilyRecords())
		assert.Len(t, s.Individuals(), 3)

		bob := findIndividual(t, s, 3)
		assert.Empty(t, bob.FatherID)
		assert.Empty(t, bob.MotherID)
		_, owned := s.OwningFamilyID(3)
		assert.False(t, owned)
	})

	t.Run("delete unknown family", func(t *testing.T) {
		s := openFixture(t, "OneFamily")
		assert.ErrorIs(t, s.DeleteFamily(&domain.Family{ID: 2}), repository.ErrNotFound)
		assert.ErrorIs(t, s.DeleteFamily(nil), repository.ErrInvalidArgument)
		assert.Len(t, s.Families(), 1)
	})
}

func TestReadOnlyKindsAreUnsupported(t *testing.T) {
	s := openFixture(t, "BindingTest")
	src := s.Sources()[0]
	repo := s.Repositories()[0]
	tree := s.Tree()

	errs := []error{
		s.AddSource(src), s.UpdateSource(src), s.DeleteSource(src),
		s.AddRepository(repo), s.UpdateRepository(repo), s.DeleteRepository(repo),
		s.AddTree(tree), s.UpdateTree(tree), s.DeleteTree(tree),
		s.AddSource(nil),
	}
	for _, err := range errs {
		assert.ErrorIs(t, err, repository.ErrUnsupported)
	}
	assert.Len(t, s.Sources(), 1)
}

func TestSaveRoundTrip(t *testing.T) {
	for _, fixture := range []string{"NoRecords", "TwoFamilies", "BindingTest"} {
		t.Run(fixture, func(t *testing.T) {
			s := openFixture(t, fixture)
			require.NoError(t, s.SaveChanges())

			original, err := os.ReadFile(filepath.Join("testdata", fixture+".ged"))
			require.NoError(t, err)
			saved, err := os.ReadFile(s.Path())
			require.NoError(t, err)
			assert.Equal(t, string(original), string(saved))

			reopened, err := Open(s.Path())
			require.NoError(t, err)
			require.Len(t, reopened.Individuals(), len(s.Individuals()))
			require.Len(t, reopened.Families(), len(s.Families()))
			for i, ind := range s.Individuals() {
				assert.Equal(t, ind.ID, reopened.Individuals()[i].ID)
			}
			for i, fam := range s.Families() {
				assert.Equal(t, fam.ID, reopened.Families()[i].ID)
			}
		})
	}
}

func TestSavePersistsMutations(t *testing.T) {
	s := openFixture(t, "TwoIndividuals")
	ind := domain.NewIndividual("Tom", "Smith", domain.SexMale)
	ind.FatherID = "1"
	ind.MotherID = "2"
	require.NoError(t, s.AddIndividual(ind))
	require.NoError(t, s.SaveChanges())

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "0 @I3@ INDI\n1 NAME Tom /Smith/\n1 SEX M\n0 @F1@ FAM\n1 HUSB @I1@\n1 WIFE @I2@\n1 CHIL @I3@\n0 TRLR\n"), string(data))

	reopened, err := Open(s.Path())
	require.NoError(t, err)
	tom := findIndividual(t, reopened, 3)
	assert.Equal(t, "1", tom.FatherID)
	assert.Equal(t, "2", tom.MotherID)

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestSaveFailureKeepsMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "tree.ged")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.AddIndividual(domain.NewIndividual("A", "B", domain.SexMale)))

	assert.Error(t, s.SaveChanges())
	assert.Len(t, s.Individuals(), 1)
}

func TestStoreOptions(t *testing.T) {
	var buf bytes.Buffer
	rec := metrics.NewRecorder()
	s := openFixture(t, "TwoIndividuals", WithLogger(zerolog.New(&buf)), WithMetrics(rec))

	ind := domain.NewIndividual("Tom", "Smith", domain.SexMale)
	ind.FatherID = "1"
	require.NoError(t, s.AddIndividual(ind))
	assert.Error(t, s.DeleteFamily(&domain.Family{ID: 7}))

	assert.Contains(t, buf.String(), `"message":"document loaded"`)
	assert.Contains(t, buf.String(), `"message":"family created for parents"`)
	assert.Contains(t, buf.String(), `"component":"filestore"`)

	lines, err := rec.Summary()
	require.NoError(t, err)
	assert.Equal(t, []string{"add_individual ok 1", "delete_family error 1", "load ok 1"}, lines)
}
