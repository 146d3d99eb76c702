package repositories

import (
	"inventory/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// FindPage returns one page of products matching the query, plus the
	// total number of matching rows regardless of the page window.
	FindPage(query models.ProductQuery) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// FindStockAtOrBelow returns products with quantity <= threshold,
	// ordered by quantity ascending, each with its Store loaded.
	FindStockAtOrBelow(threshold int) ([]models.Product, error)
}
