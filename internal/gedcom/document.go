package gedcom

import (
	"fmt"
	"io"
)

// Document holds the top-level records of a family tree file
type Document struct {
	records []*Record
	nextIDs map[Tag]int
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{nextIDs: make(map[Tag]int)}
}

// Load parses a document from r. An empty stream yields an empty document.
func Load(r io.Reader) (*Document, error) {
	records, err := Parse(r)
	if err != nil {
		return nil, err
	}
	doc := NewDocument()
	doc.records = records
	return doc, nil
}

// Save writes the document to w
func (d *Document) Save(w io.Writer) error {
	if err := Write(w, d.records); err != nil {
		return fmt.Errorf("gedcom: write: %w", err)
	}
	return nil
}

// Records returns a copy of the top-level records in document order
func (d *Document) Records() []*Record {
	out := make([]*Record, len(d.records))
	copy(out, d.records)
	return out
}

// RecordsOf returns the top-level records with the given tag in document order
func (d *Document) RecordsOf(tag Tag) []*Record {
	var out []*Record
	for _, r := range d.records {
		if r.Tag == tag {
			out = append(out, r)
		}
	}
	return out
}

// Header returns the HEAD record, or nil
func (d *Document) Header() *HeaderRecord {
	for _, r := range d.records {
		if r.Tag == TagHeader {
			return &HeaderRecord{r}
		}
	}
	return nil
}

// IndividualRecords returns all INDI records
func (d *Document) IndividualRecords() []*IndividualRecord {
	var out []*IndividualRecord
	for _, r := range d.RecordsOf(TagIndividual) {
		out = append(out, &IndividualRecord{r})
	}
	return out
}

// FamilyRecords returns all FAM records
func (d *Document) FamilyRecords() []*FamilyRecord {
	var out []*FamilyRecord
	for _, r := range d.RecordsOf(TagFamily) {
		out = append(out, &FamilyRecord{r})
	}
	return out
}

// SourceRecords returns all top-level SOUR records
func (d *Document) SourceRecords() []*SourceRecord {
	var out []*SourceRecord
	for _, r := range d.RecordsOf(TagSource) {
		out = append(out, &SourceRecord{r})
	}
	return out
}

// RepositoryRecords returns all REPO records
func (d *Document) RepositoryRecords() []*RepositoryRecord {
	var out []*RepositoryRecord
	for _, r := range d.RecordsOf(TagRepository) {
		out = append(out, &RepositoryRecord{r})
	}
	return out
}

// NoteRecords returns all shared NOTE records
func (d *Document) NoteRecords() []*NoteRecord {
	var out []*NoteRecord
	for _, r := range d.RecordsOf(TagNote) {
		out = append(out, &NoteRecord{r})
	}
	return out
}

// NoteRecord returns the shared note with the given cross reference, or nil
func (d *Document) NoteRecord(xref string) *NoteRecord {
	if r := d.find(TagNote, xref); r != nil {
		return &NoteRecord{r}
	}
	return nil
}

// SelectIndividualRecord returns the individual with the given cross reference, or nil
func (d *Document) SelectIndividualRecord(xref string) *IndividualRecord {
	if r := d.find(TagIndividual, xref); r != nil {
		return &IndividualRecord{r}
	}
	return nil
}

// SelectFamilyRecordByID returns the family with the given cross reference, or nil
func (d *Document) SelectFamilyRecordByID(xref string) *FamilyRecord {
	if r := d.find(TagFamily, xref); r != nil {
		return &FamilyRecord{r}
	}
	return nil
}

// SelectFamilyRecord returns the first family whose husband and wife both match
func (d *Document) SelectFamilyRecord(husband, wife string) *FamilyRecord {
	for _, fam := range d.FamilyRecords() {
		if fam.Husband() == husband && fam.Wife() == wife {
			return fam
		}
	}
	return nil
}

// SelectHusbandsFamilyRecords returns every family listing husband as HUSB
func (d *Document) SelectHusbandsFamilyRecords(husband string) []*FamilyRecord {
	if husband == "" {
		return nil
	}
	var out []*FamilyRecord
	for _, fam := range d.FamilyRecords() {
		if fam.Husband() == husband {
			out = append(out, fam)
		}
	}
	return out
}

// SelectWifesFamilyRecords returns every family listing wife as WIFE
func (d *Document) SelectWifesFamilyRecords(wife string) []*FamilyRecord {
	if wife == "" {
		return nil
	}
	var out []*FamilyRecord
	for _, fam := range d.FamilyRecords() {
		if fam.Wife() == wife {
			out = append(out, fam)
		}
	}
	return out
}

// SelectChildsFamilyRecord returns the first family listing child as CHIL
func (d *Document) SelectChildsFamilyRecord(child string) *FamilyRecord {
	if child == "" {
		return nil
	}
	for _, fam := range d.FamilyRecords() {
		if fam.HasChild(child) {
			return fam
		}
	}
	return nil
}

// AddRecord registers a top-level record ahead of the trailer
func (d *Document) AddRecord(r *Record) {
	if next, ok := d.nextIDs[r.Tag]; ok {
		if id := ParseID(r.XRef); id >= next {
			d.nextIDs[r.Tag] = id + 1
		}
	}
	for i, existing := range d.records {
		if existing.Tag == TagTrailer {
			d.records = append(d.records[:i], append([]*Record{r}, d.records[i:]...)...)
			return
		}
	}
	d.records = append(d.records, r)
}

// RemoveRecord removes a top-level record. Returns false if it is not present.
func (d *Document) RemoveRecord(r *Record) bool {
	for i, existing := range d.records {
		if existing == r {
			d.reserve(r.Tag)
			d.records = append(d.records[:i], d.records[i+1:]...)
			return true
		}
	}
	return false
}

// NextID allocates the next identifier for a record kind. Allocation starts
// one past the highest identifier seen in the document and only moves
// forward, so identifiers freed by deletion are not handed out again.
func (d *Document) NextID(tag Tag) int {
	d.reserve(tag)
	next := d.nextIDs[tag]
	d.nextIDs[tag] = next + 1
	return next
}

// reserve records the high-water mark of a record kind on first use
func (d *Document) reserve(tag Tag) {
	if _, ok := d.nextIDs[tag]; ok {
		return
	}
	next := 1
	for _, r := range d.records {
		if r.Tag != tag {
			continue
		}
		if id := ParseID(r.XRef); id >= next {
			next = id + 1
		}
	}
	d.nextIDs[tag] = next
}

func (d *Document) find(tag Tag, xref string) *Record {
	if xref == "" {
		return nil
	}
	for _, r := range d.records {
		if r.Tag == tag && r.XRef == xref {
			return r
		}
	}
	return nil
}
