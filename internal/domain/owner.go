package domain

// NoteOwner is an entity that can carry notes
type NoteOwner interface {
	AddNote(*Note)
}

// MediaOwner is an entity that can carry multimedia links
type MediaOwner interface {
	AddMultimedia(*MultimediaLink)
}

// CitationOwner is an entity that can be supported by source citations
type CitationOwner interface {
	AddCitation(*Citation)
}

// FactOwner is an entity that can carry facts
type FactOwner interface {
	AddFact(*Fact)
}

// Annotations holds the notes of an entity
type Annotations struct {
	Notes []*Note `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// AddNote appends a note
func (a *Annotations) AddNote(n *Note) {
	a.Notes = append(a.Notes, n)
}

// Media holds the multimedia links of an entity
type Media struct {
	Multimedia []*MultimediaLink `json:"multimedia,omitempty" yaml:"multimedia,omitempty"`
}

// AddMultimedia appends a multimedia link
func (m *Media) AddMultimedia(link *MultimediaLink) {
	m.Multimedia = append(m.Multimedia, link)
}

// Evidence holds the source citations of an entity
type Evidence struct {
	Citations []*Citation `json:"citations,omitempty" yaml:"citations,omitempty"`
}

// AddCitation appends a citation
func (e *Evidence) AddCitation(c *Citation) {
	e.Citations = append(e.Citations, c)
}

// Chronicle holds the facts of an entity
type Chronicle struct {
	Facts []*Fact `json:"facts,omitempty" yaml:"facts,omitempty"`
}

// AddFact appends a fact
func (c *Chronicle) AddFact(f *Fact) {
	c.Facts = append(c.Facts, f)
}
