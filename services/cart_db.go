package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
)

// DbCartStore keeps cart lines in the cart_items table, one row per
// (user, product). Lines outlive the browser session.
type DbCartStore struct {
	db     *gorm.DB
	userID string
}

func NewDbCartStore(db *gorm.DB, userID string) *DbCartStore {
	return &DbCartStore{db: db, userID: userID}
}

func (s *DbCartStore) Get() ([]CartLine, error) {
	var items []models.CartItem
	if err := s.db.Where("user_id = ?", s.userID).Find(&items).Error; err != nil {
		return nil, err
	}

	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return lines, nil
}

func (s *DbCartStore) GetOne(productID string) (*CartLine, error) {
	var item models.CartItem
	err := s.db.Where("user_id = ? AND product_id = ?", s.userID, productID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &CartLine{ProductID: item.ProductID, Quantity: item.Quantity}, nil
}

func (s *DbCartStore) Add(line CartLine) (bool, error) {
	item := models.CartItem{
		UserID:    s.userID,
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
		AddedAt:   time.Now(),
	}
	if err := s.db.Create(&item).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (s *DbCartStore) UpdateQuantity(productID string, qty int) (bool, error) {
	result := s.db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", s.userID, productID).
		Updates(map[string]any{"quantity": qty, "added_at": time.Now()})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *DbCartStore) Remove(productID string) (bool, error) {
	result := s.db.Where("user_id = ? AND product_id = ?", s.userID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
