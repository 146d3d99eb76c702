package services_test

import (
	"fmt"
	"testing"

	"inventory/internal/models"
	"inventory/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindPage(query models.ProductQuery) ([]models.Product, int64, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) FindStockAtOrBelow(threshold int) ([]models.Product, error) {
	args := m.Called(threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

// MockStoreRepository is a mock implementation of repositories.StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) GetAll() ([]models.Store, error) {
	args := m.Called()
	return args.Get(0).([]models.Store), args.Error(1)
}

func (m *MockStoreRepository) GetByID(id string) (*models.Store, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreRepository) Create(store *models.Store) error {
	args := m.Called(store)
	return args.Error(0)
}

func (m *MockStoreRepository) Update(store *models.Store) error {
	args := m.Called(store)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStoreRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func newProductService(repo *MockProductRepository, storeRepo *MockStoreRepository) *services.ProductService {
	return services.NewProductService(repo, storeRepo, nil, services.DefaultLowStockThreshold)
}

func TestProductService_ListProducts_AppliesDefaults(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo, new(MockStoreRepository))

	mockRepo.On("FindPage", mock.MatchedBy(func(q models.ProductQuery) bool {
		return q.SortBy == "createdAt" && q.SortOrder == "desc" && q.Page == 1 && q.Limit == 10
	})).Return([]models.Product{}, int64(0), nil).Once()

	result, err := service.ListProducts(models.ProductQuery{})

	assert.NoError(t, err)
	assert.NotNil(t, result.Data)
	assert.Len(t, result.Data, 0)
	assert.Equal(t, int64(0), result.Meta.Total)
	assert.Equal(t, 0, result.Meta.TotalPages)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProducts_PaginationMeta(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo, new(MockStoreRepository))

	pageRows := []models.Product{
		{ID: "1", Name: "Product A", Price: 10.0, Quantity: 100},
		{ID: "2", Name: "Product B", Price: 20.0, Quantity: 50},
	}

	mockRepo.On("FindPage", mock.MatchedBy(func(q models.ProductQuery) bool {
		return q.Page == 2 && q.Limit == 10
	})).Return(pageRows, int64(15), nil).Once()

	result, err := service.ListProducts(models.ProductQuery{Page: 2, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, pageRows, result.Data)
	assert.Equal(t, int64(15), result.Meta.Total)
	assert.Equal(t, 2, result.Meta.Page)
	assert.Equal(t, 10, result.Meta.Limit)
	// ceil(15/10) = 2
	assert.Equal(t, 2, result.Meta.TotalPages)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProducts_TotalPagesRoundsUp(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo, new(MockStoreRepository))

	cases := []struct {
		total      int64
		limit      int
		totalPages int
	}{
		{total: 1, limit: 10, totalPages: 1},
		{total: 10, limit: 10, totalPages: 1},
		{total: 11, limit: 10, totalPages: 2},
		{total: 100, limit: 25, totalPages: 4},
	}

	for _, tc := range cases {
		mockRepo.On("FindPage", mock.Anything).Return([]models.Product{}, tc.total, nil).Once()
		result, err := service.ListProducts(models.ProductQuery{Limit: tc.limit})
		assert.NoError(t, err)
		assert.Equal(t, tc.totalPages, result.Meta.TotalPages, "total=%d limit=%d", tc.total, tc.limit)
	}
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProducts_RepoError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo, new(MockStoreRepository))

	mockRepo.On("FindPage", mock.Anything).Return(nil, int64(0), fmt.Errorf("database error")).Once()

	result, err := service.ListProducts(models.ProductQuery{})
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	service := newProductService(mockRepo, mockStoreRepo)

	store := &models.Store{ID: "store-1", Name: "Tech Store"}
	newProduct := &models.Product{Name: "Laptop", Category: models.CategoryElectronics, Price: 999.99, Quantity: 5}

	mockStoreRepo.On("GetByID", "store-1").Return(store, nil).Once()
	mockRepo.On("Create", newProduct).Return(nil).Once()

	err := service.CreateProduct("store-1", newProduct)
	assert.NoError(t, err)
	assert.Equal(t, "store-1", newProduct.StoreID)
	assert.Equal(t, store, newProduct.Store)
	mockRepo.AssertExpectations(t)
	mockStoreRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_StoreNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	service := newProductService(mockRepo, mockStoreRepo)

	mockStoreRepo.On("GetByID", "missing").Return(nil, fmt.Errorf("store with ID missing not found")).Once()

	err := service.CreateProduct("missing", &models.Product{Name: "Laptop", Price: 10.0})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockStoreRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_RejectsSubCentPrice(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	service := newProductService(mockRepo, mockStoreRepo)

	mockStoreRepo.On("GetByID", "store-1").Return(&models.Store{ID: "store-1"}, nil).Once()

	err := service.CreateProduct("store-1", &models.Product{Name: "Laptop", Price: 10.999})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decimal places")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_UpdateProduct_PartialUpdate(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo, new(MockStoreRepository))

	existing := &models.Product{ID: "1", Name: "Laptop", Category: models.CategoryElectronics, Price: 999.99, Quantity: 10, StoreID: "store-1"}
	newQuantity := 50

	mockRepo.On("GetByID", "1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "1" && p.Quantity == 50 && p.Name == "Laptop" && p.Price == 999.99
	})).Return(nil).Once()

	updated, err := service.UpdateProduct("1", models.ProductUpdate{Quantity: &newQuantity})
	assert.NoError(t, err)
	assert.Equal(t, 50, updated.Quantity)
	assert.Equal(t, "Laptop", updated.Name)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo, new(MockStoreRepository))

	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99 not found")).Once()

	updated, err := service.UpdateProduct("99", models.ProductUpdate{})
	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo, new(MockStoreRepository))

	mockRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeleteProduct("1")
	assert.NoError(t, err)

	mockRepo.On("Delete", "99").Return(fmt.Errorf("product with ID 99 not found for deletion")).Once()
	err = service.DeleteProduct("99")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for deletion")
	mockRepo.AssertExpectations(t)
}
