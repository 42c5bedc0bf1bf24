package domain

// FactType identifies what a fact records
type FactType string

// Individual events
const (
	FactTypeBirth            FactType = "birth"
	FactTypeChristening      FactType = "christening"
	FactTypeDeath            FactType = "death"
	FactTypeBurial           FactType = "burial"
	FactTypeCremation        FactType = "cremation"
	FactTypeAdoption         FactType = "adoption"
	FactTypeBaptism          FactType = "baptism"
	FactTypeBarMitzvah       FactType = "bar_mitzvah"
	FactTypeBasMitzvah       FactType = "bas_mitzvah"
	FactTypeBlessing         FactType = "blessing"
	FactTypeAdultChristening FactType = "adult_christening"
	FactTypeConfirmation     FactType = "confirmation"
	FactTypeFirstCommunion   FactType = "first_communion"
	FactTypeOrdination       FactType = "ordination"
	FactTypeNaturalization   FactType = "naturalization"
	FactTypeEmigration       FactType = "emigration"
	FactTypeImmigration      FactType = "immigration"
	FactTypeCensus           FactType = "census"
	FactTypeProbate          FactType = "probate"
	FactTypeWill             FactType = "will"
	FactTypeGraduation       FactType = "graduation"
	FactTypeRetirement       FactType = "retirement"
	FactTypeEvent            FactType = "event"
)

// Individual attributes
const (
	FactTypeCaste          FactType = "caste"
	FactTypeDescription    FactType = "description"
	FactTypeEducation      FactType = "education"
	FactTypeIDNumber       FactType = "id_number"
	FactTypeNationality    FactType = "nationality"
	FactTypeChildrenCount  FactType = "children_count"
	FactTypeMarriageCount  FactType = "marriage_count"
	FactTypeOccupation     FactType = "occupation"
	FactTypePossessions    FactType = "possessions"
	FactTypeReligion       FactType = "religion"
	FactTypeResidence      FactType = "residence"
	FactTypeSocialSecurity FactType = "social_security_number"
	FactTypeNobilityTitle  FactType = "nobility_title"
	FactTypeFact           FactType = "fact"
)

// Family events
const (
	FactTypeAnnulment          FactType = "annulment"
	FactTypeDivorce            FactType = "divorce"
	FactTypeDivorceFiled       FactType = "divorce_filed"
	FactTypeEngagement         FactType = "engagement"
	FactTypeMarriageBann       FactType = "marriage_bann"
	FactTypeMarriageContract   FactType = "marriage_contract"
	FactTypeMarriage           FactType = "marriage"
	FactTypeMarriageLicense    FactType = "marriage_license"
	FactTypeMarriageSettlement FactType = "marriage_settlement"
)

// FactTypeUnknown is used when an event has no known kind
const FactTypeUnknown FactType = "unknown"

// Fact is a dated, placed event or attribute
type Fact struct {
	FactType FactType `json:"fact_type" yaml:"fact_type"`
	Date     string   `json:"date,omitempty" yaml:"date,omitempty"`
	Place    string   `json:"place,omitempty" yaml:"place,omitempty"`

	Annotations `yaml:",inline"`
	Evidence    `yaml:",inline"`
	Media       `yaml:",inline"`
}

// Citation points at a source as evidence for its owner
type Citation struct {
	SourceID string `json:"source_id,omitempty" yaml:"source_id,omitempty"` // weak reference
	Page     string `json:"page,omitempty" yaml:"page,omitempty"`
	Date     string `json:"date,omitempty" yaml:"date,omitempty"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`

	Annotations `yaml:",inline"`
	Media       `yaml:",inline"`
}

// Note is free text attached to an owner
type Note struct {
	Text string `json:"text" yaml:"text"`
}

// MultimediaLink references an external media file
type MultimediaLink struct {
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
}
