package models

import "time"

// Store represents a physical store that owns products.
type Store struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" validate:"required,min=2,max=100"`
	Address   string    `json:"address" validate:"required,max=255"`
	Products  []Product `json:"products,omitempty" gorm:"foreignKey:StoreID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StoreUpdate carries a partial update for a store. Nil fields are left
// unchanged.
type StoreUpdate struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=100"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}

// Apply copies the supplied fields onto the store.
func (u StoreUpdate) Apply(store *Store) {
	if u.Name != nil {
		store.Name = *u.Name
	}
	if u.Address != nil {
		store.Address = *u.Address
	}
}
