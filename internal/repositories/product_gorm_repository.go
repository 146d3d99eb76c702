package repositories

import (
	"fmt"
	"strings"

	"inventory/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sortColumns maps the external sort keys onto database columns. Anything
// not in this map never reaches the ORDER BY clause.
var sortColumns = map[string]string{
	"name":      "name",
	"price":     "price",
	"quantity":  "quantity",
	"createdAt": "created_at",
}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// FindPage builds a conjunctive predicate from the supplied filters, counts
// all matching rows, then fetches the requested page. Every clause is
// parameterized; values never end up concatenated into SQL.
func (r *GORMProductRepository) FindPage(query models.ProductQuery) ([]models.Product, int64, error) {
	tx := r.db.Model(&models.Product{})

	if query.StoreID != "" {
		tx = tx.Where("store_id = ?", query.StoreID)
	}
	if query.Category != "" {
		tx = tx.Where("category = ?", query.Category)
	}
	if query.Search != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query.Search)+"%")
	}
	if query.InStock != nil {
		if *query.InStock {
			tx = tx.Where("quantity > 0")
		} else {
			tx = tx.Where("quantity = 0")
		}
	}
	if query.MinPrice != nil {
		tx = tx.Where("price >= ?", *query.MinPrice)
	}
	if query.MaxPrice != nil {
		tx = tx.Where("price <= ?", *query.MaxPrice)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	column, ok := sortColumns[query.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if query.SortOrder == "asc" {
		direction = "ASC"
	}

	var products []models.Product
	err := tx.Order(column + " " + direction).
		Offset(query.Offset()).
		Limit(query.Limit).
		Preload("Store").
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	return products, total, nil
}

// GetByID retrieves a single product by its ID, with its store.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Store").First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s not found for update", product.ID)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s not found for deletion", id)
	}
	return nil
}

// FindStockAtOrBelow retrieves products with quantity at or below the
// threshold, lowest stock first, with their stores loaded.
func (r *GORMProductRepository) FindStockAtOrBelow(threshold int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("quantity <= ?", threshold).
		Order("quantity ASC").
		Preload("Store").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock products: %w", err)
	}
	return products, nil
}
