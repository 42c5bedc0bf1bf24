package filestore

import (
	"gedstore/internal/domain"
	"gedstore/internal/gedcom"
)

var individualEventTypes = map[gedcom.Tag]domain.FactType{
	"BIRT": domain.FactTypeBirth,
	"CHR":  domain.FactTypeChristening,
	"DEAT": domain.FactTypeDeath,
	"BURI": domain.FactTypeBurial,
	"CREM": domain.FactTypeCremation,
	"ADOP": domain.FactTypeAdoption,
	"BAPM": domain.FactTypeBaptism,
	"BARM": domain.FactTypeBarMitzvah,
	"BASM": domain.FactTypeBasMitzvah,
	"BLES": domain.FactTypeBlessing,
	"CHRA": domain.FactTypeAdultChristening,
	"CONF": domain.FactTypeConfirmation,
	"FCOM": domain.FactTypeFirstCommunion,
	"ORDN": domain.FactTypeOrdination,
	"NATU": domain.FactTypeNaturalization,
	"EMIG": domain.FactTypeEmigration,
	"IMMI": domain.FactTypeImmigration,
	"CENS": domain.FactTypeCensus,
	"PROB": domain.FactTypeProbate,
	"WILL": domain.FactTypeWill,
	"GRAD": domain.FactTypeGraduation,
	"RETI": domain.FactTypeRetirement,
	"EVEN": domain.FactTypeEvent,
}

var individualAttributeTypes = map[gedcom.Tag]domain.FactType{
	"CAST": domain.FactTypeCaste,
	"DSCR": domain.FactTypeDescription,
	"EDUC": domain.FactTypeEducation,
	"IDNO": domain.FactTypeIDNumber,
	"NATI": domain.FactTypeNationality,
	"NCHI": domain.FactTypeChildrenCount,
	"NMR":  domain.FactTypeMarriageCount,
	"OCCU": domain.FactTypeOccupation,
	"PROP": domain.FactTypePossessions,
	"RELI": domain.FactTypeReligion,
	"RESI": domain.FactTypeResidence,
	"SSN":  domain.FactTypeSocialSecurity,
	"TITL": domain.FactTypeNobilityTitle,
	"FACT": domain.FactTypeFact,
}

var familyEventTypes = map[gedcom.Tag]domain.FactType{
	"ANUL": domain.FactTypeAnnulment,
	"CENS": domain.FactTypeCensus,
	"DIV":  domain.FactTypeDivorce,
	"DIVF": domain.FactTypeDivorceFiled,
	"ENGA": domain.FactTypeEngagement,
	"MARB": domain.FactTypeMarriageBann,
	"MARC": domain.FactTypeMarriageContract,
	"MARR": domain.FactTypeMarriage,
	"MARL": domain.FactTypeMarriageLicense,
	"MARS": domain.FactTypeMarriageSettlement,
	"RESI": domain.FactTypeResidence,
	"EVEN": domain.FactTypeEvent,
}

// factType maps an event to its fact kind, FactTypeUnknown if it has none
func factType(ev *gedcom.EventStructure) domain.FactType {
	var table map[gedcom.Tag]domain.FactType
	switch ev.Class {
	case gedcom.EventClassIndividual:
		table = individualEventTypes
	case gedcom.EventClassFamily:
		table = familyEventTypes
	case gedcom.EventClassAttribute:
		table = individualAttributeTypes
	default:
		return domain.FactTypeUnknown
	}
	if t, ok := table[ev.Tag]; ok {
		return t
	}
	return domain.FactTypeUnknown
}
