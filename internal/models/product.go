package models

import "time"

// Product categories. Category is stored as plain text; the fixed set is
// enforced with the 'oneof' validation tag on Product and ProductQuery.
const (
	CategoryElectronics = "electronics"
	CategoryClothing    = "clothing"
	CategoryFood        = "food"
	CategoryHome        = "home"
	CategorySports      = "sports"
	CategoryOther       = "other"
)

// Product represents a single product belonging to a store.
type Product struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" validate:"required,min=2,max=100"`
	Category  string    `json:"category" validate:"required,oneof=electronics clothing food home sports other"`
	Price     float64   `json:"price" validate:"required,gt=0"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
	StoreID   string    `json:"storeId" gorm:"type:varchar(36);index" validate:"omitempty,uuid"`
	Store     *Store    `json:"store,omitempty" gorm:"foreignKey:StoreID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductUpdate carries a partial update for a product. Nil fields are left
// unchanged.
type ProductUpdate struct {
	Name     *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Category *string  `json:"category" validate:"omitempty,oneof=electronics clothing food home sports other"`
	Price    *float64 `json:"price" validate:"omitempty,gt=0"`
	Quantity *int     `json:"quantity" validate:"omitempty,gte=0"`
}

// Apply copies the supplied fields onto the product.
func (u ProductUpdate) Apply(product *Product) {
	if u.Name != nil {
		product.Name = *u.Name
	}
	if u.Category != nil {
		product.Category = *u.Category
	}
	if u.Price != nil {
		product.Price = *u.Price
	}
	if u.Quantity != nil {
		product.Quantity = *u.Quantity
	}
}
