package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          string    `gorm:"primaryKey;size:30" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	SalePrice   *float64  `json:"sale_price,omitempty"`
	Image       string    `json:"image"`
	CategoryID  string    `gorm:"size:30;index" json:"category_id"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	BrandID     string    `gorm:"size:30;index" json:"brand_id"`
	Brand       *Brand    `gorm:"foreignKey:BrandID" json:"brand,omitempty"`

	Warehouses []WarehouseProduct `gorm:"foreignKey:ProductID" json:"warehouses,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// EffectivePrice is the sale price when one is set, otherwise the list price.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

type Brand struct {
	ID   string `gorm:"primaryKey;size:30" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}
