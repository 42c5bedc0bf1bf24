package gedcom

import "strings"

// Tag identifies the kind of a record line
type Tag string

// Top-level record tags
const (
	TagHeader     Tag = "HEAD"
	TagTrailer    Tag = "TRLR"
	TagIndividual Tag = "INDI"
	TagFamily     Tag = "FAM"
	TagSource     Tag = "SOUR"
	TagRepository Tag = "REPO"
	TagNote       Tag = "NOTE"
	TagObject     Tag = "OBJE"
	TagSubmitter  Tag = "SUBM"
)

// Sub-structure tags
const (
	TagName      Tag = "NAME"
	TagGiven     Tag = "GIVN"
	TagSurname   Tag = "SURN"
	TagSex       Tag = "SEX"
	TagHusband   Tag = "HUSB"
	TagWife      Tag = "WIFE"
	TagChild     Tag = "CHIL"
	TagDate      Tag = "DATE"
	TagPlace     Tag = "PLAC"
	TagType      Tag = "TYPE"
	TagPage      Tag = "PAGE"
	TagData      Tag = "DATA"
	TagText      Tag = "TEXT"
	TagFile      Tag = "FILE"
	TagFormat    Tag = "FORM"
	TagTitle     Tag = "TITL"
	TagAuthor    Tag = "AUTH"
	TagPublisher Tag = "PUBL"
	TagAddress   Tag = "ADDR"
	TagContinue  Tag = "CONT"
	TagConcat    Tag = "CONC"
)

// Record is one line of a document together with its nested lines
type Record struct {
	XRef     string
	Tag      Tag
	Value    string
	Children []*Record
}

// NewRecord creates a record with the given cross reference, tag and value
func NewRecord(xref string, tag Tag, value string) *Record {
	return &Record{XRef: xref, Tag: tag, Value: value}
}

// Child returns the first child with the given tag, or nil
func (r *Record) Child(tag Tag) *Record {
	for _, c := range r.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// ChildrenWithTag returns all children with the given tag in document order
func (r *Record) ChildrenWithTag(tag Tag) []*Record {
	var out []*Record
	for _, c := range r.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// ChildValue returns the value of the first child with the given tag
func (r *Record) ChildValue(tag Tag) string {
	if c := r.Child(tag); c != nil {
		return c.Value
	}
	return ""
}

// ChildText returns the continued text of the first child with the given tag
func (r *Record) ChildText(tag Tag) string {
	if c := r.Child(tag); c != nil {
		return c.Text()
	}
	return ""
}

// AddChild appends a new child line and returns it
func (r *Record) AddChild(tag Tag, value string) *Record {
	c := NewRecord("", tag, value)
	r.Children = append(r.Children, c)
	return c
}

// SetChild replaces the first child with the given tag, keeping its position,
// or appends it when there is none
func (r *Record) SetChild(tag Tag, value string) *Record {
	c := NewRecord("", tag, value)
	for i, existing := range r.Children {
		if existing.Tag == tag {
			r.Children[i] = c
			return c
		}
	}
	r.Children = append(r.Children, c)
	return c
}

// RemoveChild removes the given child line. Returns false if it is not a child.
func (r *Record) RemoveChild(child *Record) bool {
	for i, c := range r.Children {
		if c == child {
			r.Children = append(r.Children[:i], r.Children[i+1:]...)
			return true
		}
	}
	return false
}

// Text returns the value with CONT and CONC continuation lines applied
func (r *Record) Text() string {
	var b strings.Builder
	b.WriteString(r.Value)
	for _, c := range r.Children {
		switch c.Tag {
		case TagContinue:
			b.WriteByte('\n')
			b.WriteString(c.Value)
		case TagConcat:
			b.WriteString(c.Value)
		}
	}
	return b.String()
}

// SetText stores multi-line text as a value followed by CONT lines
func (r *Record) SetText(text string) {
	kept := r.Children[:0]
	for _, c := range r.Children {
		if c.Tag != TagContinue && c.Tag != TagConcat {
			kept = append(kept, c)
		}
	}
	r.Children = kept

	lines := strings.Split(text, "\n")
	r.Value = lines[0]
	conts := make([]*Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		conts = append(conts, NewRecord("", TagContinue, line))
	}
	r.Children = append(conts, r.Children...)
}

// IsPointer reports whether a value is a cross reference such as @I1@
func IsPointer(value string) bool {
	return len(value) > 2 &&
		value[0] == '@' &&
		value[len(value)-1] == '@' &&
		!strings.ContainsAny(value, " \t")
}
