package models

type Warehouse struct {
	ID       string `gorm:"primaryKey;size:30" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Address  string `json:"address"`
	Ward     string `json:"ward"`
	District string `json:"district"`
	Province string `json:"province"`

	Products []WarehouseProduct `gorm:"foreignKey:WarehouseID" json:"products,omitempty"`
}

// WarehouseProduct is the per-warehouse stock level for a product.
type WarehouseProduct struct {
	WarehouseID string `gorm:"primaryKey;size:30" json:"warehouse_id"`
	ProductID   string `gorm:"primaryKey;size:30" json:"product_id"`
	Quantity    int    `gorm:"not null;default:0" json:"quantity"`
}
