package repositories

import (
	"fmt"
	"sort"
	"sync"

	"inventory/internal/models"

	"github.com/google/uuid"
)

// MockStoreRepository is an in-memory implementation of StoreRepository.
type MockStoreRepository struct {
	stores map[string]models.Store
	mu     sync.RWMutex
}

// NewMockStoreRepository creates a new instance of MockStoreRepository.
func NewMockStoreRepository() *MockStoreRepository {
	return &MockStoreRepository{
		stores: make(map[string]models.Store),
	}
}

// GetAll returns all stores, newest first.
func (r *MockStoreRepository) GetAll() ([]models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	storeList := make([]models.Store, 0, len(r.stores))
	for _, s := range r.stores {
		storeList = append(storeList, s)
	}
	sort.SliceStable(storeList, func(i, j int) bool {
		return storeList[i].CreatedAt.After(storeList[j].CreatedAt)
	})
	return storeList, nil
}

// GetByID returns a store by its ID.
func (r *MockStoreRepository) GetByID(id string) (*models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.stores[id]
	if !ok {
		return nil, fmt.Errorf("store with ID %s not found", id)
	}
	return &store, nil
}

// Create adds a new store.
func (r *MockStoreRepository) Create(store *models.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	r.stores[store.ID] = *store
	return nil
}

// Update modifies an existing store.
func (r *MockStoreRepository) Update(store *models.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.stores[store.ID]
	if !ok {
		return fmt.Errorf("store with ID %s not found for update", store.ID)
	}
	r.stores[store.ID] = *store
	return nil
}

// Delete removes a store by its ID.
func (r *MockStoreRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.stores[id]
	if !ok {
		return fmt.Errorf("store with ID %s not found for deletion", id)
	}
	delete(r.stores, id)
	return nil
}

// Count returns the number of stores.
func (r *MockStoreRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.stores)), nil
}
