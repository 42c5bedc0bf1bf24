package filestore

import (
	"fmt"
	"strconv"
	"strings"

	"gedstore/internal/gedcom"
	"gedstore/internal/repository"
)

// refFromXRef turns a cross reference such as @I2@ into the decimal weak
// reference "2". Empty or digitless references become "".
func refFromXRef(xref string) string {
	if xref == "" {
		return ""
	}
	id := gedcom.ParseID(xref)
	if id < 0 {
		return ""
	}
	return strconv.Itoa(id)
}

// xrefFromRef is the inverse of refFromXRef for the given prefix
func xrefFromRef(prefix, ref string) string {
	if ref == "" {
		return ""
	}
	id, err := strconv.Atoi(ref)
	if err != nil {
		return ""
	}
	return gedcom.CreateID(prefix, id)
}

// normalizeRef accepts "2", "@I2@" or "" and returns the decimal form
func normalizeRef(prefix, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil
	}
	digits := ref
	if gedcom.IsPointer(ref) {
		digits = strings.TrimPrefix(ref[1:len(ref)-1], prefix)
	}
	id, err := strconv.Atoi(digits)
	if err != nil || id < 0 || strings.HasPrefix(digits, "+") {
		return "", fmt.Errorf("reference %q: %w", ref, repository.ErrInvalidArgument)
	}
	return strconv.Itoa(id), nil
}

// normalizePair normalizes a father/mother or husband/wife pair of
// individual references
func normalizePair(first, second string) (string, string, error) {
	a, err := normalizeRef(gedcom.PrefixIndividual, first)
	if err != nil {
		return "", "", err
	}
	b, err := normalizeRef(gedcom.PrefixIndividual, second)
	if err != nil {
		return "", "", err
	}
	return a, b, nil
}
