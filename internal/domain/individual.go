package domain

import "strings"

// Sex of an individual
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// ParseSex maps a name to a Sex; anything unrecognized is SexUnknown
func ParseSex(s string) Sex {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return SexMale
	case "female", "f":
		return SexFemale
	default:
		return SexUnknown
	}
}

// Individual is a person in the tree
type Individual struct {
	ID        int    `json:"id" yaml:"id"`
	TreeID    string `json:"tree_id" yaml:"tree_id"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Sex       Sex    `json:"sex" yaml:"sex"`

	// Weak references to other individuals, "" when unknown
	FatherID string `json:"father_id,omitempty" yaml:"father_id,omitempty"`
	MotherID string `json:"mother_id,omitempty" yaml:"mother_id,omitempty"`

	Chronicle   `yaml:",inline"`
	Annotations `yaml:",inline"`
	Evidence    `yaml:",inline"`
	Media       `yaml:",inline"`
}

// NewIndividual creates an individual in the default tree
func NewIndividual(firstName, lastName string, sex Sex) *Individual {
	return &Individual{
		TreeID:    DefaultTreeID,
		FirstName: firstName,
		LastName:  lastName,
		Sex:       sex,
	}
}

// EntityID returns the identifier of the individual
func (i *Individual) EntityID() int { return i.ID }

// FullName joins the first and last name
func (i *Individual) FullName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// HasParents reports whether either parent is known
func (i *Individual) HasParents() bool {
	return i.FatherID != "" || i.MotherID != ""
}
