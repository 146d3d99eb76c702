package services_test

import (
	"fmt"
	"testing"

	"inventory/internal/models"
	"inventory/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestStoreService_GetAllStores(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	expectedStores := []models.Store{
		{ID: "1", Name: "Store A", Address: "1 First St"},
		{ID: "2", Name: "Store B", Address: "2 Second St"},
	}

	mockRepo.On("GetAll").Return(expectedStores, nil).Once()

	stores, err := service.GetAllStores()

	assert.NoError(t, err)
	assert.Len(t, stores, 2)
	assert.Equal(t, expectedStores, stores)
	mockRepo.AssertExpectations(t)
}

func TestStoreService_GetStoreByID(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	expectedStore := &models.Store{ID: "1", Name: "Store A", Address: "1 First St"}

	mockRepo.On("GetByID", "1").Return(expectedStore, nil).Once()
	store, err := service.GetStoreByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedStore, store)

	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("store with ID 99 not found")).Once()
	store, err = service.GetStoreByID("99")
	assert.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestStoreService_CreateStore(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	newStore := &models.Store{Name: "New Store", Address: "3 Third St"}

	mockRepo.On("Create", newStore).Return(nil).Once()
	err := service.CreateStore(newStore)
	assert.NoError(t, err)

	mockRepo.On("Create", newStore).Return(fmt.Errorf("database error")).Once()
	err = service.CreateStore(newStore)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestStoreService_UpdateStore_PartialUpdate(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	existing := &models.Store{ID: "1", Name: "Old Name", Address: "1 First St"}
	newName := "New Name"

	mockRepo.On("GetByID", "1").Return(existing, nil).Once()
	mockRepo.On("Update", existing).Return(nil).Once()

	store, err := service.UpdateStore("1", models.StoreUpdate{Name: &newName})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", store.Name)
	// Address was not supplied and must stay untouched
	assert.Equal(t, "1 First St", store.Address)
	mockRepo.AssertExpectations(t)
}

func TestStoreService_UpdateStore_NotFound(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("store with ID 99 not found")).Once()

	store, err := service.UpdateStore("99", models.StoreUpdate{})
	assert.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestStoreService_DeleteStore(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	mockRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeleteStore("1")
	assert.NoError(t, err)

	mockRepo.On("Delete", "99").Return(fmt.Errorf("store with ID 99 not found for deletion")).Once()
	err = service.DeleteStore("99")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for deletion")
	mockRepo.AssertExpectations(t)
}
