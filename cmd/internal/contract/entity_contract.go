package contract

import "entitysearch/cmd/internal/domain/entity"

type LoadEntityRequest struct {
	Identifier string `json:"identifier" validate:"required,registryid"`
}

// EntityResponse is the store state plus every derived view the UI
// renders from it.
type EntityResponse struct {
	BN                string                `json:"bn"`
	Identifier        string                `json:"identifier"`
	IncorporationDate string                `json:"incorporation_date"`
	LegalType         entity.CorpTypeCd     `json:"legal_type"`
	Name              string                `json:"name"`
	Status            entity.BusinessStatus `json:"status"`
	GoodStanding      bool                  `json:"good_standing"`
	InDissolution     bool                  `json:"in_dissolution"`
	Error             *string               `json:"error"`
	Loading           bool                  `json:"loading"`
	Views             *EntityViews          `json:"views"`
}

type EntityViews struct {
	IsActive          bool     `json:"is_active"`
	IsBComp           bool     `json:"is_bcomp"`
	IsCoop            bool     `json:"is_coop"`
	IsBC              bool     `json:"is_bc"`
	IsFirm            bool     `json:"is_firm"`
	EntityTitle       string   `json:"entity_title"`
	ActTitle          string   `json:"act_title"`
	EntityNumberLabel string   `json:"entity_number_label"`
	Warnings          []string `json:"warnings"`
}

type CorpTypesResponse struct {
	CorpTypes []string `json:"corp_types"`
}

type CorpTypeResponse struct {
	Code        entity.CorpTypeCd `json:"code"`
	Description string            `json:"description"`
}

type BusinessTypesResponse struct {
	BusinessTypes []entity.BusinessType `json:"business_types"`
}
