package domain

// Snapshot is a detached copy of a whole tree
type Snapshot struct {
	Tree         *Tree         `json:"tree" yaml:"tree"`
	Individuals  []*Individual `json:"individuals" yaml:"individuals"`
	Families     []*Family     `json:"families" yaml:"families"`
	Sources      []*Source     `json:"sources,omitempty" yaml:"sources,omitempty"`
	Repositories []*Repository `json:"repositories,omitempty" yaml:"repositories,omitempty"`
}

// Stats counts the entities of a snapshot
type Stats struct {
	Individuals  int `json:"individuals" yaml:"individuals"`
	Families     int `json:"families" yaml:"families"`
	Sources      int `json:"sources" yaml:"sources"`
	Repositories int `json:"repositories" yaml:"repositories"`
	Facts        int `json:"facts" yaml:"facts"`
	Notes        int `json:"notes" yaml:"notes"`
	Citations    int `json:"citations" yaml:"citations"`
}

// Stats counts entities and the structures they own
func (s *Snapshot) Stats() Stats {
	st := Stats{
		Individuals:  len(s.Individuals),
		Families:     len(s.Families),
		Sources:      len(s.Sources),
		Repositories: len(s.Repositories),
	}
	for _, i := range s.Individuals {
		st.Facts += len(i.Facts)
		st.Notes += len(i.Notes)
		st.Citations += len(i.Citations)
	}
	for _, f := range s.Families {
		st.Facts += len(f.Facts)
		st.Notes += len(f.Notes)
		st.Citations += len(f.Citations)
	}
	return st
}

// Individual returns the individual with the given identifier, or nil
func (s *Snapshot) Individual(id int) *Individual {
	for _, i := range s.Individuals {
		if i.ID == id {
			return i
		}
	}
	return nil
}

// Family returns the family with the given identifier, or nil
func (s *Snapshot) Family(id int) *Family {
	for _, f := range s.Families {
		if f.ID == id {
			return f
		}
	}
	return nil
}
