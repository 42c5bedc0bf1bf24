package domain

import "slices"

// Family is a household of husband, wife and children
type Family struct {
	ID     int    `json:"id" yaml:"id"`
	TreeID string `json:"tree_id" yaml:"tree_id"`

	// Weak references to individuals, "" when unknown
	HusbandID string   `json:"husband_id,omitempty" yaml:"husband_id,omitempty"`
	WifeID    string   `json:"wife_id,omitempty" yaml:"wife_id,omitempty"`
	ChildIDs  []string `json:"child_ids,omitempty" yaml:"child_ids,omitempty"`

	Chronicle   `yaml:",inline"`
	Annotations `yaml:",inline"`
	Evidence    `yaml:",inline"`
	Media       `yaml:",inline"`
}

// NewFamily creates a family in the default tree
func NewFamily(husbandID, wifeID string) *Family {
	return &Family{
		TreeID:    DefaultTreeID,
		HusbandID: husbandID,
		WifeID:    wifeID,
	}
}

// EntityID returns the identifier of the family
func (f *Family) EntityID() int { return f.ID }

// HasChild reports whether the family lists the child
func (f *Family) HasChild(childID string) bool {
	return slices.Contains(f.ChildIDs, childID)
}

// AddChildID appends a child unless already present
func (f *Family) AddChildID(childID string) {
	if childID == "" || f.HasChild(childID) {
		return
	}
	f.ChildIDs = append(f.ChildIDs, childID)
}

// RemoveChildID removes a child. Returns false if it was not listed.
func (f *Family) RemoveChildID(childID string) bool {
	i := slices.Index(f.ChildIDs, childID)
	if i < 0 {
		return false
	}
	f.ChildIDs = slices.Delete(f.ChildIDs, i, i+1)
	return true
}

// IsParent reports whether the individual is the husband or the wife
func (f *Family) IsParent(individualID string) bool {
	return individualID != "" && (f.HusbandID == individualID || f.WifeID == individualID)
}
