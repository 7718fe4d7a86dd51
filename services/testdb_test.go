package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ai-software-engineering-group/tech-store-website/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Brand{},
		&models.Product{},
		&models.Warehouse{},
		&models.WarehouseProduct{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusEntry{},
		&models.Review{},
		&models.ReviewImage{},
		&models.ReviewReply{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, id string, price float64, salePrice *float64, stock int) models.Product {
	t.Helper()
	product := models.Product{ID: id, Name: "Product " + id, Price: price, SalePrice: salePrice}
	require.NoError(t, db.Create(&product).Error)
	if stock > 0 {
		seedStock(t, db, "wh-main", id, stock)
	}
	return product
}

func seedStock(t *testing.T, db *gorm.DB, warehouseID, productID string, qty int) {
	t.Helper()
	var warehouse models.Warehouse
	err := db.First(&warehouse, "id = ?", warehouseID).Error
	if err == gorm.ErrRecordNotFound {
		require.NoError(t, db.Create(&models.Warehouse{ID: warehouseID, Name: warehouseID}).Error)
	} else {
		require.NoError(t, err)
	}
	require.NoError(t, db.Create(&models.WarehouseProduct{
		WarehouseID: warehouseID,
		ProductID:   productID,
		Quantity:    qty,
	}).Error)
}
