package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"gedstore/internal/domain"
	"gedstore/internal/gedcom"
	"gedstore/internal/metrics"
	"gedstore/internal/repository"
)

// Operation names used for metrics
const (
	opLoad             = "load"
	opSave             = "save"
	opAddIndividual    = "add_individual"
	opUpdateIndividual = "update_individual"
	opDeleteIndividual = "delete_individual"
	opAddFamily        = "add_family"
	opUpdateFamily     = "update_family"
	opDeleteFamily     = "delete_family"
)

// Store implements repository.Store over a document file
type Store struct {
	path    string
	doc     *gedcom.Document
	log     zerolog.Logger
	metrics *metrics.Recorder

	tree         *domain.Tree
	individuals  []*domain.Individual
	families     []*domain.Family
	repositories []*domain.Repository
	sources      []*domain.Source

	// individual ID -> ID of the first family listing them as a child
	owning map[int]int
}

var _ repository.Store = (*Store)(nil)

// Open loads the document at path. A missing file yields an empty store;
// the file is created by the first SaveChanges.
func Open(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("open store: empty path: %w", repository.ErrInvalidArgument)
	}

	s := &Store{
		path: path,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	start := time.Now()
	doc, err := readDocument(path)
	if err == nil {
		s.doc = doc
		err = s.load()
	}
	s.metrics.Observe(opLoad, start, err)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}

	s.log.Info().
		Str("path", path).
		Int("individuals", len(s.individuals)).
		Int("families", len(s.families)).
		Int("sources", len(s.sources)).
		Int("repositories", len(s.repositories)).
		Dur("elapsed", time.Since(start)).
		Msg("document loaded")

	return s, nil
}

func readDocument(path string) (*gedcom.Document, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return gedcom.NewDocument(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return gedcom.Load(f)
}

// Path returns the document path
func (s *Store) Path() string { return s.path }

// Tree returns the tree metadata
func (s *Store) Tree() *domain.Tree { return s.tree }

// Individuals returns the loaded individuals in document order
func (s *Store) Individuals() []*domain.Individual { return s.individuals }

// Families returns the loaded families in document order
func (s *Store) Families() []*domain.Family { return s.families }

// Repositories returns the loaded repositories in document order
func (s *Store) Repositories() []*domain.Repository { return s.repositories }

// Sources returns the loaded sources in document order
func (s *Store) Sources() []*domain.Source { return s.sources }

// OwningFamilyID returns the family that lists the individual as a child.
// The index is derived; the document stays authoritative.
func (s *Store) OwningFamilyID(individualID int) (int, bool) {
	id, ok := s.owning[individualID]
	return id, ok
}

// SaveChanges writes the document atomically: the new content goes to a
// temporary file in the same directory which then replaces the original.
func (s *Store) SaveChanges() (err error) {
	defer s.observe(opSave, time.Now(), &err)

	if err := writeAtomic(s.path, s.doc); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}

	s.log.Info().
		Str("path", s.path).
		Int("individuals", len(s.individuals)).
		Int("families", len(s.families)).
		Msg("changes saved")
	return nil
}

func writeAtomic(path string, doc *gedcom.Document) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := doc.Save(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (s *Store) observe(op string, start time.Time, err *error) {
	s.metrics.Observe(op, start, *err)
}
