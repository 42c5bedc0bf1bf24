package filestore

import (
	gocache "github.com/patrickmn/go-cache"

	"gedstore/internal/domain"
	"gedstore/internal/gedcom"
)

// resolver turns the structures nested under a record into owned entities.
// Shared note text is looked up once per load.
type resolver struct {
	doc    *gedcom.Document
	shared *gocache.Cache
}

func newResolver(doc *gedcom.Document) *resolver {
	return &resolver{
		doc:    doc,
		shared: gocache.New(gocache.NoExpiration, 0),
	}
}

func (r *resolver) facts(owner domain.FactOwner, events []*gedcom.EventStructure) {
	for _, ev := range events {
		if ev == nil {
			continue
		}
		fact := &domain.Fact{
			FactType: factType(ev),
			Date:     ev.Date,
			Place:    ev.Place,
		}
		owner.AddFact(fact)

		r.multimedia(fact, ev.Multimedia)
		r.notes(fact, ev.Notes)
		r.citations(fact, ev.SourceCitations)
	}
}

func (r *resolver) citations(owner domain.CitationOwner, citations []*gedcom.CitationStructure) {
	for _, cs := range citations {
		if cs == nil {
			continue
		}
		citation := &domain.Citation{
			SourceID: refFromXRef(cs.XRefID),
			Page:     cs.Page,
			Date:     cs.Date,
			Text:     cs.Text,
		}
		owner.AddCitation(citation)

		r.multimedia(citation, cs.Multimedia)
		r.notes(citation, cs.Notes)
	}
}

func (r *resolver) notes(owner domain.NoteOwner, notes []*gedcom.NoteStructure) {
	for _, ns := range notes {
		if ns == nil {
			continue
		}
		text := ns.Text
		if ns.XRefID != "" {
			text = r.sharedNote(ns.XRefID)
		}
		if text == "" {
			continue
		}
		owner.AddNote(&domain.Note{Text: text})
	}
}

func (r *resolver) sharedNote(xref string) string {
	if cached, found := r.shared.Get(xref); found {
		return cached.(string)
	}
	var text string
	if rec := r.doc.NoteRecord(xref); rec != nil {
		text = rec.Data()
	}
	r.shared.Set(xref, text, gocache.NoExpiration)
	return text
}

func (r *resolver) multimedia(owner domain.MediaOwner, media []*gedcom.MultimediaStructure) {
	for _, ms := range media {
		if ms == nil {
			continue
		}
		owner.AddMultimedia(&domain.MultimediaLink{
			File:   ms.FileReference,
			Format: ms.Format,
			Title:  ms.Title,
		})
	}
}
