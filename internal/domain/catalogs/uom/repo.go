package uom

import (
	"loomline/internal/domain"
)

// Repository defines the interface for Uom persistence.
type Repository interface {
	domain.CatalogRepository[*Uom]
}
