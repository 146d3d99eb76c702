package services

import (
	"inventory/internal/models"
	"inventory/internal/repositories"
)

// StoreService handles business logic related to stores.
type StoreService struct {
	repo repositories.StoreRepository
}

// NewStoreService creates a new StoreService.
func NewStoreService(repo repositories.StoreRepository) *StoreService {
	return &StoreService{
		repo: repo,
	}
}

// GetAllStores retrieves all stores, newest first.
func (s *StoreService) GetAllStores() ([]models.Store, error) {
	return s.repo.GetAll()
}

// GetStoreByID retrieves a single store by its ID.
func (s *StoreService) GetStoreByID(id string) (*models.Store, error) {
	return s.repo.GetByID(id)
}

// CreateStore creates a new store.
func (s *StoreService) CreateStore(store *models.Store) error {
	return s.repo.Create(store)
}

// UpdateStore applies a partial update to an existing store and returns
// the updated record.
func (s *StoreService) UpdateStore(id string, update models.StoreUpdate) (*models.Store, error) {
	store, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	update.Apply(store)
	if err := s.repo.Update(store); err != nil {
		return nil, err
	}
	return store, nil
}

// DeleteStore deletes a store by its ID, along with its products.
func (s *StoreService) DeleteStore(id string) error {
	return s.repo.Delete(id)
}
