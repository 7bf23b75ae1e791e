package service

import (
	"context"
	"errors"
	"strings"

	"entitysearch/cmd/internal/contract"
	"entitysearch/cmd/internal/domain/entity"
	"entitysearch/cmd/internal/infrastructure/legalapi"
	"entitysearch/cmd/internal/utils"
	"entitysearch/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type EntityService struct {
	Store    *EntityStore
	Validate *validator.Validate
}

func NewEntityService(store *EntityStore, validate *validator.Validate) *EntityService {
	return &EntityService{
		Store:    store,
		Validate: validate,
	}
}

func (e *EntityService) GetEntity() *contract.EntityResponse {
	return toEntityResp(e.Store.State())
}

func (e *EntityService) LoadEntity(ctx context.Context, req *contract.LoadEntityRequest) (*contract.EntityResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	req.Identifier = strings.ToUpper(req.Identifier)
	if err := e.Validate.Struct(req); err != nil {
		if verr := apierror.FromValidationError(err); verr != nil {
			return nil, verr
		}
		return nil, apierror.InternalServerError
	}

	err := e.Store.LoadEntity(ctx, req.Identifier)
	if err != nil {
		return nil, mapFetchError(req.Identifier, err)
	}

	log.Infof("loaded entity %s", req.Identifier)
	return toEntityResp(e.Store.State()), nil
}

func (e *EntityService) ClearEntity() *contract.EntityResponse {
	e.Store.ClearEntity()
	return toEntityResp(e.Store.State())
}

func (e *EntityService) GetCorpTypes() *contract.CorpTypesResponse {
	return &contract.CorpTypesResponse{CorpTypes: e.Store.CorpTypes()}
}

func (e *EntityService) GetCorpTypeByDescription(description string) (*contract.CorpTypeResponse, apierror.ErrorResponse) {
	if strings.TrimSpace(description) == "" {
		return nil, apierror.MissingDescriptionError
	}

	code := e.Store.GetEntityCode(description)
	if code == entity.CorpTypeNone {
		return nil, apierror.CorpTypeNotFoundError
	}
	return &contract.CorpTypeResponse{Code: code, Description: description}, nil
}

func (e *EntityService) GetCorpTypeByCode(code string) (*contract.CorpTypeResponse, apierror.ErrorResponse) {
	legalType := entity.CorpTypeCd(strings.ToUpper(strings.TrimSpace(code)))
	desc := e.Store.GetEntityDescription(legalType)
	if desc == "" {
		return nil, apierror.CorpTypeNotFoundError
	}
	return &contract.CorpTypeResponse{Code: legalType, Description: desc}, nil
}

func (e *EntityService) GetBusinessTypes() *contract.BusinessTypesResponse {
	return &contract.BusinessTypesResponse{BusinessTypes: e.Store.LearBusinessTypes()}
}

func mapFetchError(identifier string, err error) apierror.ErrorResponse {
	switch {
	case errors.Is(err, legalapi.ErrNotFound):
		return apierror.EntityNotFoundError
	case errors.Is(err, legalapi.ErrUnauthorized):
		log.Errorf("legal api refused lookup of %s: %v", identifier, err)
		return apierror.UpstreamUnauthorizedError
	default:
		log.Errorf("failed to load entity %s: %v", identifier, err)
		return apierror.UpstreamError
	}
}

func toEntityResp(state EntityState) *contract.EntityResponse {
	e := state.Entity
	resp := &contract.EntityResponse{
		BN:                e.BN,
		Identifier:        e.Identifier,
		IncorporationDate: e.IncorporationDate,
		LegalType:         e.LegalType,
		Name:              e.Name,
		Status:            e.Status,
		GoodStanding:      e.GoodStanding,
		InDissolution:     e.InDissolution,
		Loading:           state.Loading,
		Views:             toEntityViews(e),
	}
	if state.Err != nil {
		msg := state.Err.Error()
		resp.Error = &msg
	}
	return resp
}

func toEntityViews(e entity.Entity) *contract.EntityViews {
	return &contract.EntityViews{
		IsActive:          e.IsActive(),
		IsBComp:           e.IsBComp(),
		IsCoop:            e.IsCoop(),
		IsBC:              e.IsBC(),
		IsFirm:            e.IsFirm(),
		EntityTitle:       e.EntityTitle(),
		ActTitle:          e.ActTitle(),
		EntityNumberLabel: e.EntityNumberLabel(),
		Warnings:          e.Warnings(),
	}
}
