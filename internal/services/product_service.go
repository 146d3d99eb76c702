package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"

	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/pkg/rabbitmq"
)

// PageMeta describes one page of a paginated listing.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// PaginatedProducts is the result envelope of a product listing. Data is
// never nil; an empty page is a valid result, not an error.
type PaginatedProducts struct {
	Data []models.Product `json:"data"`
	Meta PageMeta         `json:"meta"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo           repositories.ProductRepository
	storeRepo      repositories.StoreRepository
	mqClient       *rabbitmq.Client
	alertThreshold int
}

// NewProductService creates a new ProductService. mqClient may be nil, in
// which case no inventory events are published. alertThreshold is the
// quantity at or below which a stock.low event is emitted on update.
func NewProductService(repo repositories.ProductRepository, storeRepo repositories.StoreRepository, mqClient *rabbitmq.Client, alertThreshold int) *ProductService {
	return &ProductService{
		repo:           repo,
		storeRepo:      storeRepo,
		mqClient:       mqClient,
		alertThreshold: alertThreshold,
	}
}

// ListProducts applies the query defaults, fetches the matching page and
// builds the pagination envelope.
func (s *ProductService) ListProducts(query models.ProductQuery) (*PaginatedProducts, error) {
	query.Normalize()

	products, total, err := s.repo.FindPage(query)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}

	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))

	return &PaginatedProducts{
		Data: products,
		Meta: PageMeta{
			Total:      total,
			Page:       query.Page,
			Limit:      query.Limit,
			TotalPages: totalPages,
		},
	}, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product under the given store.
func (s *ProductService) CreateProduct(storeID string, product *models.Product) error {
	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return err
	}
	if !hasCentPrecision(product.Price) {
		return fmt.Errorf("price %v has more than 2 decimal places", product.Price)
	}

	product.StoreID = store.ID
	if err := s.repo.Create(product); err != nil {
		return err
	}
	product.Store = store

	s.publishEvent("product.created", map[string]interface{}{
		"productId": product.ID,
		"storeId":   product.StoreID,
		"name":      product.Name,
		"quantity":  product.Quantity,
	})
	return nil
}

// UpdateProduct applies a partial update to an existing product and returns
// the updated record. Dropping the quantity to the alert threshold or below
// emits a stock.low event.
func (s *ProductService) UpdateProduct(id string, update models.ProductUpdate) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	update.Apply(product)
	if !hasCentPrecision(product.Price) {
		return nil, fmt.Errorf("price %v has more than 2 decimal places", product.Price)
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	if update.Quantity != nil && product.Quantity <= s.alertThreshold {
		s.publishEvent("stock.low", map[string]interface{}{
			"productId": product.ID,
			"storeId":   product.StoreID,
			"name":      product.Name,
			"quantity":  product.Quantity,
		})
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

// publishEvent publishes an inventory event, best effort. Failures are
// logged and never fail the request.
func (s *ProductService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}

// hasCentPrecision reports whether the price has at most 2 decimal digits.
func hasCentPrecision(price float64) bool {
	cents := price * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}
