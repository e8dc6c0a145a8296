package buyer

import (
	"loomline/internal/domain"
)

// Repository defines the interface for Buyer persistence.
type Repository interface {
	domain.CatalogRepository[*Buyer]
}
