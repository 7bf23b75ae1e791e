package legalapi

import (
	"entitysearch/cmd/internal/domain/entity"
)

type BusinessResponse struct {
	Business Business `json:"business"`
}

type Business struct {
	TaxID          string          `json:"taxId"`
	Identifier     string          `json:"identifier"`
	FoundingDate   string          `json:"foundingDate"`
	LegalType      string          `json:"legalType"`
	LegalName      string          `json:"legalName"`
	State          string          `json:"state"`
	GoodStanding   *bool           `json:"goodStanding"`
	InDissolution  *bool           `json:"inDissolution"`
	AlternateNames []AlternateName `json:"alternateNames"`
}

type AlternateName struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// businessEnvelope is the raw body of a business lookup. Failures carry
// error and message instead of business.
type businessEnvelope struct {
	Business *Business `json:"business"`
	Error    string    `json:"error"`
	Message  string    `json:"message"`
}

func (e *businessEnvelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// ToDomain maps the business onto the local entity shape. Name
// resolution is left to the caller since it depends on the whole record.
func (b *Business) ToDomain() *entity.Entity {
	var alternateNames []entity.AlternateName
	for _, alt := range b.AlternateNames {
		alternateNames = append(alternateNames, entity.AlternateName{
			Identifier: alt.Identifier,
			Name:       alt.Name,
		})
	}

	e := &entity.Entity{
		BN:                b.TaxID,
		Identifier:        b.Identifier,
		IncorporationDate: b.FoundingDate,
		LegalType:         entity.CorpTypeCd(b.LegalType),
		Name:              b.LegalName,
		AlternateNames:    alternateNames,
		Status:            entity.BusinessStatus(b.State),
		GoodStanding:      true,
	}
	if b.GoodStanding != nil {
		e.GoodStanding = *b.GoodStanding
	}
	if b.InDissolution != nil {
		e.InDissolution = *b.InDissolution
	}
	return e
}
