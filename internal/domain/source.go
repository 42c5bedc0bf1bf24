package domain

// Source is a body of evidence such as a register or a census
type Source struct {
	ID        int    `json:"id" yaml:"id"`
	TreeID    string `json:"tree_id" yaml:"tree_id"`
	Author    string `json:"author,omitempty" yaml:"author,omitempty"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`

	// Weak reference to the holding repository, "" when none
	RepositoryID string `json:"repository_id,omitempty" yaml:"repository_id,omitempty"`

	Annotations `yaml:",inline"`
}

// EntityID returns the identifier of the source
func (s *Source) EntityID() int { return s.ID }

// Repository is an archive or library holding sources
type Repository struct {
	ID      int    `json:"id" yaml:"id"`
	TreeID  string `json:"tree_id" yaml:"tree_id"`
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`

	Annotations `yaml:",inline"`
}

// EntityID returns the identifier of the repository
func (r *Repository) EntityID() int { return r.ID }
