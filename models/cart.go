package models

import "time"

// CartItem is one product+quantity line in an authenticated user's cart.
// At most one line exists per (user, product) pair.
type CartItem struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	UserID    string `gorm:"size:40;uniqueIndex:idx_user_product" json:"user_id"`
	ProductID string `gorm:"size:30;uniqueIndex:idx_user_product" json:"product_id"`
	Quantity  int    `gorm:"not null" json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	AddedAt time.Time `json:"added_at"`
}
