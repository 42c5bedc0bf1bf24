package domain

import "github.com/google/uuid"

// DefaultTreeID is the tree identifier used when a document names none
var DefaultTreeID = uuid.Nil.String()

// Tree describes the family tree held by one document
type Tree struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Source      string `json:"source,omitempty" yaml:"source,omitempty"`
}

// NewTree creates a tree with the default identifier
func NewTree(name string) *Tree {
	return &Tree{ID: DefaultTreeID, Name: name}
}
