package entity

import "slices"

type BusinessStatus string

const (
	// StatusNone means the registry did not report a state.
	StatusNone        BusinessStatus = ""
	StatusActive      BusinessStatus = "ACTIVE"
	StatusHistorical  BusinessStatus = "HISTORICAL"
	StatusLiquidation BusinessStatus = "LIQUIDATION"
)

func (s BusinessStatus) MarshalJSON() ([]byte, error) {
	return marshalOptional(string(s))
}

func (s *BusinessStatus) UnmarshalJSON(data []byte) error {
	v, err := unmarshalOptional(data)
	*s = BusinessStatus(v)
	return err
}

const (
	WarningInvoluntaryDissolution = "INVOLUNTARY_DISSOLUTION"
	WarningNotInGoodStanding      = "NOT_IN_GOOD_STANDING"
)

// AlternateName is a name record tied to a business. Firms use it to
// carry their operating name.
type AlternateName struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// Entity is a registered business as known to the legal registry.
type Entity struct {
	BN                string          `json:"bn"`
	Identifier        string          `json:"identifier"`
	IncorporationDate string          `json:"incorporation_date"`
	LegalType         CorpTypeCd      `json:"legal_type"`
	Name              string          `json:"name"`
	AlternateNames    []AlternateName `json:"alternate_names,omitempty"`
	Status            BusinessStatus  `json:"status"`
	GoodStanding      bool            `json:"good_standing"`
	InDissolution     bool            `json:"in_dissolution"`
}

// New returns the cleared entity.
func New() Entity {
	return Entity{GoodStanding: true}
}

// Clone returns a copy that shares no slices with e.
func (e Entity) Clone() Entity {
	e.AlternateNames = slices.Clone(e.AlternateNames)
	return e
}

// ResolveName returns the display name. Firms are shown under the
// alternate name registered against their own identifier, if any.
func (e Entity) ResolveName() string {
	if !e.LegalType.IsFirm() {
		return e.Name
	}

	for _, alt := range e.AlternateNames {
		if alt.Identifier == e.Identifier {
			if alt.Name != "" {
				return alt.Name
			}
			break
		}
	}
	return e.Name
}

func (e Entity) IsActive() bool {
	return e.Status == StatusActive
}

func (e Entity) IsBComp() bool {
	return e.LegalType == CorpTypeBenefitCompany
}

func (e Entity) IsCoop() bool {
	return e.LegalType == CorpTypeCoop
}

func (e Entity) IsBC() bool {
	return e.LegalType == CorpTypeBCCompany
}

func (e Entity) IsFirm() bool {
	return e.LegalType.IsFirm()
}

func (e Entity) EntityTitle() string {
	if e.IsCoop() {
		return "Cooperative Association"
	}
	return "Company"
}

func (e Entity) ActTitle() string {
	switch {
	case e.IsFirm():
		return "Partnership Act"
	case e.IsCoop():
		return "Cooperative Association Act"
	default:
		return "Business Corporations Act"
	}
}

func (e Entity) EntityNumberLabel() string {
	if e.IsCoop() || e.IsBComp() {
		return "Incorporation Number"
	}
	return "Registration Number"
}

// Warnings lists the compliance warnings in display order. The result
// is never nil.
func (e Entity) Warnings() []string {
	warnings := []string{}
	if e.InDissolution {
		warnings = append(warnings, WarningInvoluntaryDissolution)
	}
	if !e.GoodStanding {
		warnings = append(warnings, WarningNotInGoodStanding)
	}
	return warnings
}
