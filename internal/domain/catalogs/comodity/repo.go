package comodity

import (
	"loomline/internal/domain"
)

// Repository defines the interface for Comodity persistence.
type Repository interface {
	domain.CatalogRepository[*Comodity]
}
