package handler

import (
	"context"
	"net/http"

	"entitysearch/cmd/internal/contract"
	"entitysearch/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type EntityService interface {
	GetEntity() *contract.EntityResponse
	LoadEntity(ctx context.Context, req *contract.LoadEntityRequest) (*contract.EntityResponse, apierror.ErrorResponse)
	ClearEntity() *contract.EntityResponse
	GetCorpTypes() *contract.CorpTypesResponse
	GetCorpTypeByDescription(description string) (*contract.CorpTypeResponse, apierror.ErrorResponse)
	GetCorpTypeByCode(code string) (*contract.CorpTypeResponse, apierror.ErrorResponse)
	GetBusinessTypes() *contract.BusinessTypesResponse
}

type DefaultEntityRoute struct {
	EntityService EntityService
}

func NewEntityRoute(entityService EntityService) *DefaultEntityRoute {
	return &DefaultEntityRoute{EntityService: entityService}
}

// Register mounts the entity routes on g.
func (r *DefaultEntityRoute) Register(g *echo.Group) {
	g.GET("/entity", r.GetEntity)
	g.POST("/entity/load", r.LoadEntity)
	g.DELETE("/entity", r.ClearEntity)
	g.GET("/corp-types", r.GetCorpTypes)
	g.GET("/corp-types/code", r.GetCorpTypeCode)
	g.GET("/corp-types/:code/description", r.GetCorpTypeDescription)
	g.GET("/business-types", r.GetBusinessTypes)
}

func (r *DefaultEntityRoute) GetEntity(c echo.Context) error {
	return c.JSON(http.StatusOK, r.EntityService.GetEntity())
}

func (r *DefaultEntityRoute) LoadEntity(c echo.Context) error {
	var req contract.LoadEntityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(apierror.MalformedJSONError.Code(), apierror.MalformedJSONError)
	}

	entity, apierr := r.EntityService.LoadEntity(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, entity)
}

func (r *DefaultEntityRoute) ClearEntity(c echo.Context) error {
	return c.JSON(http.StatusOK, r.EntityService.ClearEntity())
}

func (r *DefaultEntityRoute) GetCorpTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, r.EntityService.GetCorpTypes())
}

func (r *DefaultEntityRoute) GetCorpTypeCode(c echo.Context) error {
	corpType, apierr := r.EntityService.GetCorpTypeByDescription(c.QueryParam("description"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, corpType)
}

func (r *DefaultEntityRoute) GetCorpTypeDescription(c echo.Context) error {
	corpType, apierr := r.EntityService.GetCorpTypeByCode(c.Param("code"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, corpType)
}

func (r *DefaultEntityRoute) GetBusinessTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, r.EntityService.GetBusinessTypes())
}
