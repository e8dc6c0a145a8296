package handlers

import (
	"loomline/internal/domain/catalogs/uom"
	"loomline/internal/infrastructure/http/v1/dto"
)

// UomHTTPHandler keeps the generic signature out of the router.
type UomHTTPHandler = CatalogHandler[
	*uom.Uom,
	dto.CreateUomRequest,
	dto.UpdateUomRequest,
]

// NewUomHandler wires the generic catalog handler for units of measure.
func NewUomHandler(
	base *BaseHandler,
	service *uom.Service,
) *UomHTTPHandler {
	config := CatalogHandlerConfig[
		*uom.Uom,
		dto.CreateUomRequest,
		dto.UpdateUomRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "uom",

		MapCreateDTO: func(req dto.CreateUomRequest) (*uom.Uom, error) {
			return req.ToEntity(), nil
		},

		MapUpdateDTO: func(req dto.UpdateUomRequest, existing *uom.Uom) (*uom.Uom, error) {
			req.ApplyTo(existing)
			return existing, nil
		},

		MapToDTO: func(entity *uom.Uom) any {
			return dto.FromUom(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
