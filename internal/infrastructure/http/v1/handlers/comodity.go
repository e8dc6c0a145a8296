package handlers

import (
	"loomline/internal/domain/catalogs/comodity"
	"loomline/internal/infrastructure/http/v1/dto"
)

// ComodityHTTPHandler keeps the generic signature out of the router.
type ComodityHTTPHandler = CatalogHandler[
	*comodity.Comodity,
	dto.CreateComodityRequest,
	dto.UpdateComodityRequest,
]

// NewComodityHandler wires the generic catalog handler for comodities.
func NewComodityHandler(
	base *BaseHandler,
	service *comodity.Service,
) *ComodityHTTPHandler {
	config := CatalogHandlerConfig[
		*comodity.Comodity,
		dto.CreateComodityRequest,
		dto.UpdateComodityRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "comodity",

		MapCreateDTO: func(req dto.CreateComodityRequest) (*comodity.Comodity, error) {
			return req.ToEntity(), nil
		},

		MapUpdateDTO: func(req dto.UpdateComodityRequest, existing *comodity.Comodity) (*comodity.Comodity, error) {
			req.ApplyTo(existing)
			return existing, nil
		},

		MapToDTO: func(entity *comodity.Comodity) any {
			return dto.FromComodity(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
