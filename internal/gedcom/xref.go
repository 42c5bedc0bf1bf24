package gedcom

import (
	"errors"
	"strconv"
	"strings"
)

// ErrMissingXRef is returned when a record that must be addressable has no
// cross reference
var ErrMissingXRef = errors.New("gedcom: record has no cross reference")

// Cross reference prefixes per record kind
const (
	PrefixIndividual = "I"
	PrefixFamily     = "F"
	PrefixSource     = "S"
	PrefixRepository = "R"
	PrefixNote       = "N"
)

// CreateID builds a cross reference token such as @I12@
func CreateID(prefix string, id int) string {
	return "@" + prefix + strconv.Itoa(id) + "@"
}

// ParseID extracts the numeric identifier from a cross reference token.
// Returns -1 when the token carries no digits.
func ParseID(xref string) int {
	start := strings.IndexFunc(xref, isDigit)
	if start < 0 {
		return -1
	}
	end := start
	for end < len(xref) && isDigit(rune(xref[end])) {
		end++
	}
	id, err := strconv.Atoi(xref[start:end])
	if err != nil {
		return -1
	}
	return id
}

// PrefixFor returns the cross reference prefix used for a record tag
func PrefixFor(tag Tag) string {
	switch tag {
	case TagIndividual:
		return PrefixIndividual
	case TagFamily:
		return PrefixFamily
	case TagSource:
		return PrefixSource
	case TagRepository:
		return PrefixRepository
	case TagNote:
		return PrefixNote
	case TagObject:
		return "O"
	case TagSubmitter:
		return "U"
	default:
		return string(tag)
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
