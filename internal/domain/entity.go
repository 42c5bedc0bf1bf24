package domain

// Entity is any record that carries a numeric identifier
type Entity interface {
	EntityID() int
}

// Compile-time checks
var (
	_ Entity = (*Individual)(nil)
	_ Entity = (*Family)(nil)
	_ Entity = (*Source)(nil)
	_ Entity = (*Repository)(nil)

	_ FactOwner     = (*Individual)(nil)
	_ NoteOwner     = (*Individual)(nil)
	_ CitationOwner = (*Individual)(nil)
	_ MediaOwner    = (*Individual)(nil)
	_ FactOwner     = (*Family)(nil)
	_ CitationOwner = (*Family)(nil)
	_ NoteOwner     = (*Fact)(nil)
	_ CitationOwner = (*Fact)(nil)
	_ MediaOwner    = (*Fact)(nil)
	_ NoteOwner     = (*Citation)(nil)
	_ MediaOwner    = (*Citation)(nil)
	_ NoteOwner     = (*Source)(nil)
	_ NoteOwner     = (*Repository)(nil)
)
