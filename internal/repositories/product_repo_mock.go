package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"inventory/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It mirrors the filter, sort and pagination semantics of the GORM
// implementation, so services can be tested without a database.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

func matchesQuery(p models.Product, q models.ProductQuery) bool {
	if q.StoreID != "" && p.StoreID != q.StoreID {
		return false
	}
	if q.Category != "" && p.Category != q.Category {
		return false
	}
	if q.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Search)) {
		return false
	}
	if q.InStock != nil {
		if *q.InStock && p.Quantity <= 0 {
			return false
		}
		if !*q.InStock && p.Quantity != 0 {
			return false
		}
	}
	if q.MinPrice != nil && p.Price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && p.Price > *q.MaxPrice {
		return false
	}
	return true
}

func sortProducts(products []models.Product, sortBy, sortOrder string) {
	asc := sortOrder == "asc"
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if !asc {
			a, b = b, a
		}
		switch sortBy {
		case "name":
			return a.Name < b.Name
		case "price":
			return a.Price < b.Price
		case "quantity":
			return a.Quantity < b.Quantity
		default: // createdAt
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})
}

// FindPage filters, sorts and paginates the in-memory product set.
func (r *MockProductRepository) FindPage(query models.ProductQuery) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if matchesQuery(p, query) {
			matched = append(matched, p)
		}
	}
	sortProducts(matched, query.SortBy, query.SortOrder)

	total := int64(len(matched))
	start := query.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + query.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s not found", id)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s not found for update", product.ID)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s not found for deletion", id)
	}
	delete(r.products, id)
	return nil
}

// FindStockAtOrBelow returns products with quantity at or below the
// threshold, lowest stock first. The Store pointer is returned as stored.
func (r *MockProductRepository) FindStockAtOrBelow(threshold int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0)
	for _, p := range r.products {
		if p.Quantity <= threshold {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Quantity < matched[j].Quantity
	})
	return matched, nil
}
