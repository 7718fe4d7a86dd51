package services

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
)

const catalogPageSize = 20

// GetProductBasic fetches the lightweight product snapshot used during cart
// reconciliation and listings: id, name, prices and image, no associations.
func GetProductBasic(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	err := db.Select("id", "name", "price", "sale_price", "image", "category_id", "brand_id").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetProduct fetches the full product detail with category, brand and
// per-warehouse stock.
func GetProduct(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	err := db.Preload("Category").Preload("Brand").Preload("Warehouses").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetTotalQuantity is the stock oracle: total available quantity for a product
// summed across all warehouses. A missing product yields 0, not an error, so
// stock-ceiling callers treat "unknown" and "sold out" identically.
func GetTotalQuantity(db *gorm.DB, productID string) (int, error) {
	var total int64
	err := db.Model(&models.WarehouseProduct{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

// IsOutOfStock reports whether a product has no stock in any warehouse.
func IsOutOfStock(db *gorm.DB, productID string) (bool, error) {
	qty, err := GetTotalQuantity(db, productID)
	if err != nil {
		return false, err
	}
	return qty <= 0, nil
}

// ListProducts returns one catalog page plus the total page count.
// filterType selects the filter: "category", "brand", or "price" with a
// "min-max" band. sort one of price-asc, price-desc, name-az, name-za, newest.
func ListProducts(db *gorm.DB, page int, sort, filterType, filterValue string) ([]models.Product, int, error) {
	query := db.Model(&models.Product{})

	switch filterType {
	case "category":
		query = query.Where("category_id = ?", filterValue)
	case "brand":
		query = query.Where("brand_id = ?", filterValue)
	case "price":
		if min, max, ok := parsePriceBand(filterValue); ok {
			query = query.Where("COALESCE(sale_price, price) BETWEEN ? AND ?", min, max)
		}
	}

	return pagedProducts(query.Order(productOrder(sort)), page)
}

func parsePriceBand(band string) (float64, float64, bool) {
	lo, hi, found := strings.Cut(band, "-")
	if !found {
		return 0, 0, false
	}
	min, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return 0, 0, false
	}
	max, err := strconv.ParseFloat(hi, 64)
	if err != nil || max < min {
		return 0, 0, false
	}
	return min, max, true
}

// SearchProducts returns one page of products whose name matches q.
func SearchProducts(db *gorm.DB, q string, page int, sort string) ([]models.Product, int, error) {
	query := db.Model(&models.Product{}).
		Where("name LIKE ?", "%"+q+"%").
		Order(productOrder(sort))
	return pagedProducts(query, page)
}

// GetProductsByCategory returns one page of a category's products.
func GetProductsByCategory(db *gorm.DB, categoryID string, page int, sort string) ([]models.Product, int, error) {
	query := db.Model(&models.Product{}).
		Where("category_id = ?", categoryID).
		Order(productOrder(sort))
	return pagedProducts(query, page)
}

// GetSimilarProducts returns up to numToTake products sharing a category,
// excluding the product itself.
func GetSimilarProducts(db *gorm.DB, categoryID, excludeID string, numToTake int) ([]models.Product, error) {
	var products []models.Product
	err := db.Where("category_id = ? AND id <> ?", categoryID, excludeID).
		Limit(numToTake).
		Find(&products).Error
	return products, err
}

func pagedProducts(query *gorm.DB, page int) ([]models.Product, int, error) {
	if page <= 0 {
		page = 1
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	totalPages := int(math.Ceil(float64(count) / float64(catalogPageSize)))

	var products []models.Product
	err := query.Preload("Category").Preload("Brand").
		Offset((page - 1) * catalogPageSize).
		Limit(catalogPageSize).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, totalPages, nil
}

func productOrder(sort string) string {
	switch sort {
	case "price-asc":
		return "price ASC"
	case "price-desc":
		return "price DESC"
	case "name-az":
		return "name ASC"
	case "name-za":
		return "name DESC"
	case "newest":
		return "created_at DESC"
	default:
		return "id ASC"
	}
}
