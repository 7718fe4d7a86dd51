package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by the store
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID              string `gorm:"primaryKey;size:50" json:"id"`
	UserID          string `gorm:"size:40;index" json:"user_id"`
	User            *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	RecipientName   string `gorm:"not null" json:"recipient_name"`
	RecipientPhone  string `gorm:"size:15;index" json:"recipient_phone"`
	DeliveryAddress string `json:"delivery_address"`

	Items    []OrderItem        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Statuses []OrderStatusEntry `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"statuses"`

	TotalAmount   float64       `json:"total_amount"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentMethod string        `json:"payment_method"` // e.g. "card", "cod"
	CreatedAt     time.Time     `json:"created_at"`
}

// OrderItem snapshots the product name and effective price at checkout time.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	OrderID      string  `gorm:"size:50;index" json:"order_id"`
	ProductID    string  `gorm:"size:30" json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// OrderStatusEntry is one step in an order's status history.
type OrderStatusEntry struct {
	ID      uint        `gorm:"primaryKey" json:"-"`
	OrderID string      `gorm:"size:50;index" json:"order_id"`
	Status  OrderStatus `gorm:"type:VARCHAR(20)" json:"status"`
	Time    time.Time   `json:"time"`
}
