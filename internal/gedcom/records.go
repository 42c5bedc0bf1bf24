package gedcom

// Sex is the SEX code of an individual record
type Sex int

const (
	SexUnknown Sex = iota
	SexMale
	SexFemale
)

// Code returns the single-letter SEX value
func (s Sex) Code() string {
	switch s {
	case SexMale:
		return "M"
	case SexFemale:
		return "F"
	default:
		return "U"
	}
}

// ParseSex maps a SEX value to a Sex
func ParseSex(code string) Sex {
	switch code {
	case "M", "m":
		return SexMale
	case "F", "f":
		return SexFemale
	default:
		return SexUnknown
	}
}

// IndividualRecord is a view over an INDI record
type IndividualRecord struct {
	*Record
}

// NewIndividualRecord creates an INDI record for the given identifier
func NewIndividualRecord(id int) *IndividualRecord {
	return &IndividualRecord{NewRecord(CreateID(PrefixIndividual, id), TagIndividual, "")}
}

// ID returns the numeric identifier, or -1 if the record has none
func (r *IndividualRecord) ID() int {
	return ParseID(r.XRef)
}

// Name returns the first NAME structure. GIVN and SURN lines take precedence
// over the slash-delimited value.
func (r *IndividualRecord) Name() (NameStructure, bool) {
	line := r.Child(TagName)
	if line == nil {
		return NameStructure{}, false
	}
	name := ParseName(line.Value)
	if given := line.ChildValue(TagGiven); given != "" {
		name.GivenName = given
	}
	if surname := line.ChildValue(TagSurname); surname != "" {
		name.LastName = surname
	}
	return name, true
}

// SetName replaces the first NAME structure
func (r *IndividualRecord) SetName(given, last string) {
	r.SetChild(TagName, FormatName(given, last))
}

// Sex returns the SEX code of the record
func (r *IndividualRecord) Sex() Sex {
	return ParseSex(r.ChildValue(TagSex))
}

// SetSex replaces the SEX line
func (r *IndividualRecord) SetSex(sex Sex) {
	r.SetChild(TagSex, sex.Code())
}

// Events returns individual events and attributes in document order
func (r *IndividualRecord) Events() []*EventStructure {
	return eventsOf(r.Record, classifyIndividualEvent)
}

// Notes returns the NOTE structures of the record
func (r *IndividualRecord) Notes() []*NoteStructure { return notesOf(r.Record) }

// SourceCitations returns the SOUR citations of the record
func (r *IndividualRecord) SourceCitations() []*CitationStructure { return citationsOf(r.Record) }

// Multimedia returns the OBJE links of the record
func (r *IndividualRecord) Multimedia() []*MultimediaStructure { return multimediaOf(r.Record) }

// FamilyRecord is a view over a FAM record
type FamilyRecord struct {
	*Record
}

// NewFamilyRecord creates a FAM record for the given identifier
func NewFamilyRecord(id int) *FamilyRecord {
	return &FamilyRecord{NewRecord(CreateID(PrefixFamily, id), TagFamily, "")}
}

// ID returns the numeric identifier, or -1 if the record has none
func (r *FamilyRecord) ID() int {
	return ParseID(r.XRef)
}

// Husband returns the HUSB cross reference, or ""
func (r *FamilyRecord) Husband() string { return r.ChildValue(TagHusband) }

// Wife returns the WIFE cross reference, or ""
func (r *FamilyRecord) Wife() string { return r.ChildValue(TagWife) }

// Children returns the CHIL cross references in order
func (r *FamilyRecord) Children() []string {
	var out []string
	for _, c := range r.ChildrenWithTag(TagChild) {
		out = append(out, c.Value)
	}
	return out
}

// HasChild reports whether the family lists the given child
func (r *FamilyRecord) HasChild(xref string) bool {
	for _, c := range r.ChildrenWithTag(TagChild) {
		if c.Value == xref {
			return true
		}
	}
	return false
}

// AddHusband appends a HUSB link
func (r *FamilyRecord) AddHusband(xref string) { r.Record.AddChild(TagHusband, xref) }

// AddWife appends a WIFE link
func (r *FamilyRecord) AddWife(xref string) { r.Record.AddChild(TagWife, xref) }

// AddChild appends a CHIL link
func (r *FamilyRecord) AddChild(xref string) { r.Record.AddChild(TagChild, xref) }

// RemoveHusband removes the HUSB link to xref. No match is a no-op.
func (r *FamilyRecord) RemoveHusband(xref string) bool { return r.removeLink(TagHusband, xref) }

// RemoveWife removes the WIFE link to xref. No match is a no-op.
func (r *FamilyRecord) RemoveWife(xref string) bool { return r.removeLink(TagWife, xref) }

// RemoveChild removes the CHIL link to xref. No match is a no-op.
func (r *FamilyRecord) RemoveChild(xref string) bool { return r.removeLink(TagChild, xref) }

func (r *FamilyRecord) removeLink(tag Tag, xref string) bool {
	for _, c := range r.ChildrenWithTag(tag) {
		if c.Value == xref {
			return r.Record.RemoveChild(c)
		}
	}
	return false
}

// Events returns the family events in document order
func (r *FamilyRecord) Events() []*EventStructure {
	return eventsOf(r.Record, classifyFamilyEvent)
}

// Notes returns the NOTE structures of the record
func (r *FamilyRecord) Notes() []*NoteStructure { return notesOf(r.Record) }

// SourceCitations returns the SOUR citations of the record
func (r *FamilyRecord) SourceCitations() []*CitationStructure { return citationsOf(r.Record) }

// Multimedia returns the OBJE links of the record
func (r *FamilyRecord) Multimedia() []*MultimediaStructure { return multimediaOf(r.Record) }

// SourceRecord is a view over a top-level SOUR record
type SourceRecord struct {
	*Record
}

// RepositoryCitation is the REPO link of a source record
type RepositoryCitation struct {
	XRefID string
}

// ID returns the numeric identifier, or -1 if the record has none
func (r *SourceRecord) ID() int { return ParseID(r.XRef) }

// Author returns the AUTH text
func (r *SourceRecord) Author() string { return r.ChildText(TagAuthor) }

// Title returns the TITL text
func (r *SourceRecord) Title() string { return r.ChildText(TagTitle) }

// PublisherInfo returns the PUBL text
func (r *SourceRecord) PublisherInfo() string { return r.ChildText(TagPublisher) }

// SourceRepository returns the REPO link, or nil
func (r *SourceRecord) SourceRepository() *RepositoryCitation {
	line := r.Child(TagRepository)
	if line == nil {
		return nil
	}
	return &RepositoryCitation{XRefID: line.Value}
}

// Notes returns the NOTE structures of the record
func (r *SourceRecord) Notes() []*NoteStructure { return notesOf(r.Record) }

// RepositoryRecord is a view over a REPO record
type RepositoryRecord struct {
	*Record
}

// ID returns the numeric identifier, or -1 if the record has none
func (r *RepositoryRecord) ID() int { return ParseID(r.XRef) }

// Name returns the NAME value
func (r *RepositoryRecord) Name() string { return r.ChildValue(TagName) }

// Address returns the ADDR text including continuation lines
func (r *RepositoryRecord) Address() string { return r.ChildText(TagAddress) }

// Notes returns the NOTE structures of the record
func (r *RepositoryRecord) Notes() []*NoteStructure { return notesOf(r.Record) }

// NoteRecord is a view over a shared NOTE record
type NoteRecord struct {
	*Record
}

// Data returns the note text including continuation lines
func (r *NoteRecord) Data() string { return r.Text() }

// HeaderRecord is a view over the HEAD record
type HeaderRecord struct {
	*Record
}

// FileName returns the FILE value
func (r *HeaderRecord) FileName() string { return r.ChildValue(TagFile) }

// Note returns the NOTE text
func (r *HeaderRecord) Note() string { return r.ChildText(TagNote) }

// SourceSystem returns the SOUR value naming the producing application
func (r *HeaderRecord) SourceSystem() string { return r.ChildValue(TagSource) }
