package storage

import (
	"loomline/internal/domain"
)

// Repository defines the interface for Storage persistence.
type Repository interface {
	domain.CatalogRepository[*Storage]
}
