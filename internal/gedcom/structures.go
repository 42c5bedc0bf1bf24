package gedcom

import "strings"

// EventClass groups event tags by the record kind that can carry them
type EventClass int

const (
	EventClassUnknown EventClass = iota
	EventClassIndividual
	EventClassFamily
	EventClassAttribute
)

func (c EventClass) String() string {
	switch c {
	case EventClassIndividual:
		return "individual"
	case EventClassFamily:
		return "family"
	case EventClassAttribute:
		return "attribute"
	default:
		return "unknown"
	}
}

var individualEventTags = map[Tag]bool{
	"BIRT": true, "CHR": true, "DEAT": true, "BURI": true, "CREM": true,
	"ADOP": true, "BAPM": true, "BARM": true, "BASM": true, "BLES": true,
	"CHRA": true, "CONF": true, "FCOM": true, "ORDN": true, "NATU": true,
	"EMIG": true, "IMMI": true, "CENS": true, "PROB": true, "WILL": true,
	"GRAD": true, "RETI": true, "EVEN": true,
}

var individualAttributeTags = map[Tag]bool{
	"CAST": true, "DSCR": true, "EDUC": true, "IDNO": true, "NATI": true,
	"NCHI": true, "NMR": true, "OCCU": true, "PROP": true, "RELI": true,
	"RESI": true, "SSN": true, "TITL": true, "FACT": true,
}

var familyEventTags = map[Tag]bool{
	"ANUL": true, "CENS": true, "DIV": true, "DIVF": true, "ENGA": true,
	"MARB": true, "MARC": true, "MARR": true, "MARL": true, "MARS": true,
	"RESI": true, "EVEN": true,
}

// EventStructure is a life event or attribute attached to an individual or family
type EventStructure struct {
	Class           EventClass
	Tag             Tag
	Descriptor      string
	Date            string
	Place           string
	Notes           []*NoteStructure
	SourceCitations []*CitationStructure
	Multimedia      []*MultimediaStructure
}

// CitationStructure is a SOUR line embedded under a record or event
type CitationStructure struct {
	XRefID     string
	Page       string
	Date       string
	Text       string
	Notes      []*NoteStructure
	Multimedia []*MultimediaStructure
}

// NoteStructure is a NOTE line: either inline text or a pointer to a note record
type NoteStructure struct {
	XRefID string
	Text   string
}

// MultimediaStructure is an OBJE link
type MultimediaStructure struct {
	XRefID        string
	FileReference string
	Format        string
	Title         string
}

// NameStructure is a parsed NAME line
type NameStructure struct {
	Text      string
	GivenName string
	LastName  string
}

// ParseName splits "given /surname/ suffix" into its parts
func ParseName(text string) NameStructure {
	name := NameStructure{Text: text}
	first := strings.IndexByte(text, '/')
	if first < 0 {
		name.GivenName = strings.TrimSpace(text)
		return name
	}
	name.GivenName = strings.TrimSpace(text[:first])
	rest := text[first+1:]
	if second := strings.IndexByte(rest, '/'); second >= 0 {
		name.LastName = strings.TrimSpace(rest[:second])
	} else {
		name.LastName = strings.TrimSpace(rest)
	}
	return name
}

// FormatName composes the NAME value for a given and last name
func FormatName(given, last string) string {
	return given + " /" + last + "/"
}

func eventsOf(r *Record, classify func(Tag) EventClass) []*EventStructure {
	var events []*EventStructure
	for _, c := range r.Children {
		class := classify(c.Tag)
		if class == EventClassUnknown {
			continue
		}
		events = append(events, &EventStructure{
			Class:           class,
			Tag:             c.Tag,
			Descriptor:      c.ChildValue(TagType),
			Date:            c.ChildValue(TagDate),
			Place:           c.ChildValue(TagPlace),
			Notes:           notesOf(c),
			SourceCitations: citationsOf(c),
			Multimedia:      multimediaOf(c),
		})
	}
	return events
}

func classifyIndividualEvent(tag Tag) EventClass {
	switch {
	case individualEventTags[tag]:
		return EventClassIndividual
	case individualAttributeTags[tag]:
		return EventClassAttribute
	default:
		return EventClassUnknown
	}
}

func classifyFamilyEvent(tag Tag) EventClass {
	if familyEventTags[tag] {
		return EventClassFamily
	}
	return EventClassUnknown
}

func notesOf(r *Record) []*NoteStructure {
	var notes []*NoteStructure
	for _, c := range r.ChildrenWithTag(TagNote) {
		if IsPointer(c.Value) {
			notes = append(notes, &NoteStructure{XRefID: c.Value})
			continue
		}
		notes = append(notes, &NoteStructure{Text: c.Text()})
	}
	return notes
}

func citationsOf(r *Record) []*CitationStructure {
	var citations []*CitationStructure
	for _, c := range r.ChildrenWithTag(TagSource) {
		citation := &CitationStructure{
			Page:       c.ChildValue(TagPage),
			Notes:      notesOf(c),
			Multimedia: multimediaOf(c),
		}
		if IsPointer(c.Value) {
			citation.XRefID = c.Value
		} else {
			citation.Text = c.Text()
		}
		if data := c.Child(TagData); data != nil {
			citation.Date = data.ChildValue(TagDate)
			if text := data.ChildText(TagText); text != "" {
				citation.Text = text
			}
		}
		citations = append(citations, citation)
	}
	return citations
}

func multimediaOf(r *Record) []*MultimediaStructure {
	var media []*MultimediaStructure
	for _, c := range r.ChildrenWithTag(TagObject) {
		m := &MultimediaStructure{
			Format: c.ChildValue(TagFormat),
			Title:  c.ChildValue(TagTitle),
		}
		if IsPointer(c.Value) {
			m.XRefID = c.Value
		}
		if file := c.Child(TagFile); file != nil {
			m.FileReference = file.Value
			if m.Format == "" {
				m.Format = file.ChildValue(TagFormat)
			}
			if m.Title == "" {
				m.Title = file.ChildValue(TagTitle)
			}
		}
		media = append(media, m)
	}
	return media
}
