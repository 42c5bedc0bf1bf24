// Package codec converts whole-tree snapshots to and from interchange
// formats.
package codec

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gedstore/internal/domain"
	"gedstore/internal/repository"
)

// Importer interface for importing snapshots from various formats
type Importer interface {
	Parse(r io.Reader) (*domain.Snapshot, error)
	Format() string
}

// Exporter interface for exporting snapshots to various formats
type Exporter interface {
	Export(snapshot *domain.Snapshot, w io.Writer) error
	Format() string
}

// Codec is both an Importer and an Exporter
type Codec interface {
	Importer
	Exporter
}

var codecs = map[string]func() Codec{
	"json": func() Codec { return NewJSONCodec() },
	"yaml": func() Codec { return NewYAMLCodec() },
	"yml":  func() Codec { return NewYAMLCodec() },
}

// ForFormat returns the codec registered under name, ignoring case
func ForFormat(name string) (Codec, error) {
	newCodec, ok := codecs[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("format %q (want one of %s): %w",
			name, strings.Join(Formats(), ", "), repository.ErrUnsupported)
	}
	return newCodec(), nil
}

// Formats lists the registered format names
func Formats() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validate drops nil entries and rejects duplicate identifiers
func validate(snap *domain.Snapshot) error {
	snap.Individuals = compact(snap.Individuals)
	snap.Families = compact(snap.Families)
	snap.Sources = compact(snap.Sources)
	snap.Repositories = compact(snap.Repositories)

	if err := unique("individual", snap.Individuals); err != nil {
		return err
	}
	if err := unique("family", snap.Families); err != nil {
		return err
	}
	if err := unique("source", snap.Sources); err != nil {
		return err
	}
	return unique("repository", snap.Repositories)
}

func compact[T any](items []*T) []*T {
	out := items[:0]
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}

func unique[T domain.Entity](kind string, items []T) error {
	seen := make(map[int]bool, len(items))
	for _, it := range items {
		id := it.EntityID()
		if seen[id] {
			return fmt.Errorf("duplicate %s id %d: %w", kind, id, repository.ErrInvalidArgument)
		}
		seen[id] = true
	}
	return nil
}
