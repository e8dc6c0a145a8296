package handlers

import (
	"loomline/internal/domain/catalogs/buyer"
	"loomline/internal/infrastructure/http/v1/dto"
)

// BuyerHTTPHandler keeps the generic signature out of the router.
type BuyerHTTPHandler = CatalogHandler[
	*buyer.Buyer,
	dto.CreateBuyerRequest,
	dto.UpdateBuyerRequest,
]

// NewBuyerHandler wires the generic catalog handler for buyers.
func NewBuyerHandler(
	base *BaseHandler,
	service *buyer.Service,
) *BuyerHTTPHandler {
	config := CatalogHandlerConfig[
		*buyer.Buyer,
		dto.CreateBuyerRequest,
		dto.UpdateBuyerRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "buyer",

		MapCreateDTO: func(req dto.CreateBuyerRequest) (*buyer.Buyer, error) {
			return req.ToEntity(), nil
		},

		MapUpdateDTO: func(req dto.UpdateBuyerRequest, existing *buyer.Buyer) (*buyer.Buyer, error) {
			req.ApplyTo(existing)
			return existing, nil
		},

		MapToDTO: func(entity *buyer.Buyer) any {
			return dto.FromBuyer(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
