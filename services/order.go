package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ai-software-engineering-group/tech-store-website/models"
)

const adminOrdersPageSize = 30

// CheckCartStock compares every cart line of a user against warehouse stock
// and returns one advisory message per shortfall. An empty slice means the
// whole cart can be fulfilled.
func CheckCartStock(db *gorm.DB, userID string) ([]string, error) {
	var items []models.CartItem
	if err := db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}

	var messages []string
	for _, item := range items {
		product, err := GetProductBasic(db, item.ProductID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}

		qty, err := GetTotalQuantity(db, item.ProductID)
		if err != nil {
			return nil, err
		}

		if qty <= 0 {
			messages = append(messages, fmt.Sprintf("Product %s is out of stock", product.Name))
		} else if qty < item.Quantity {
			messages = append(messages, fmt.Sprintf("Only %d units of %s are available", qty, product.Name))
		}
	}
	return messages, nil
}

// PlaceOrder turns a user's cart into an order inside one transaction:
// re-checks and deducts warehouse stock, snapshots effective prices, writes
// the order with its initial status entry, then clears the cart.
func PlaceOrder(db *gorm.DB, order *models.Order) error {
	var items []models.CartItem
	if err := db.Where("user_id = ?", order.UserID).Find(&items).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return errors.New("cart is empty")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var total float64
		var orderItems []models.OrderItem

		for _, item := range items {
			product, err := GetProductBasic(tx, item.ProductID)
			if err != nil {
				return fmt.Errorf("product %s: %w", item.ProductID, err)
			}

			stockQuery := tx
			if tx.Dialector.Name() == "postgres" {
				stockQuery = tx.Clauses(clause.Locking{Strength: "UPDATE"})
			}
			var stocks []models.WarehouseProduct
			if err := stockQuery.
				Where("product_id = ?", item.ProductID).
				Find(&stocks).Error; err != nil {
				return err
			}

			available := 0
			for _, s := range stocks {
				available += s.Quantity
			}
			if available < item.Quantity {
				return fmt.Errorf("insufficient stock for product %s", product.Name)
			}

			// Deduct greedily, warehouse by warehouse.
			remaining := item.Quantity
			for _, s := range stocks {
				if remaining == 0 {
					break
				}
				take := remaining
				if take > s.Quantity {
					take = s.Quantity
				}
				if take == 0 {
					continue
				}
				result := tx.Model(&models.WarehouseProduct{}).
					Where("warehouse_id = ? AND product_id = ?", s.WarehouseID, s.ProductID).
					Update("quantity", s.Quantity-take)
				if result.Error != nil {
					return result.Error
				}
				remaining -= take
			}

			total += product.EffectivePrice() * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:    item.ProductID,
				ProductName:  product.Name,
				ProductImage: product.Image,
				UnitPrice:    product.EffectivePrice(),
				Quantity:     item.Quantity,
			})
		}

		order.Items = orderItems
		order.TotalAmount = total
		order.Status = models.OrderStatusPending
		order.Statuses = []models.OrderStatusEntry{{Status: models.OrderStatusPending, Time: time.Now()}}
		order.CreatedAt = time.Now()

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", order.UserID).Delete(&models.CartItem{}).Error
	})
}

// GetOrder looks an order up for tracking: the order id plus the recipient
// phone it was placed with.
func GetOrder(db *gorm.DB, orderID, phone string) (*models.Order, error) {
	var order models.Order
	err := db.Where("id = ? AND recipient_phone = ?", orderID, phone).
		Preload("Items.Product").
		Preload("Statuses", func(db *gorm.DB) *gorm.DB {
			return db.Order("time ASC")
		}).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListOrders returns one admin page of orders, newest first.
func ListOrders(db *gorm.DB, page int) ([]models.Order, int, error) {
	if page <= 0 {
		page = 1
	}

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	totalPages := int(math.Ceil(float64(count) / float64(adminOrdersPageSize)))

	var orders []models.Order
	err := db.Preload("User").Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * adminOrdersPageSize).
		Limit(adminOrdersPageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, totalPages, nil
}

// UpdateOrderStatus moves an order to a new status and appends the matching
// history entry.
func UpdateOrderStatus(db *gorm.DB, orderID string, status models.OrderStatus) (bool, error) {
	var updated bool
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		updated = true
		return tx.Create(&models.OrderStatusEntry{
			OrderID: orderID,
			Status:  status,
			Time:    time.Now(),
		}).Error
	})
	return updated, err
}
