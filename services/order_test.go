package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
)

func addCartItem(t *testing.T, db *gorm.DB, userID, productID string, qty int) {
	t.Helper()
	store := NewDbCartStore(db, userID)
	_, err := store.Add(CartLine{ProductID: productID, Quantity: qty})
	require.NoError(t, err)
}

func TestCheckCartStockReportsShortfalls(t *testing.T) {
	db := openTestDB(t)
	seedProduct(t, db, "plenty", 100, nil, 10)
	seedProduct(t, db, "low", 100, nil, 2)
	seedProduct(t, db, "gone", 100, nil, 0)

	addCartItem(t, db, "user-1", "plenty", 3)
	addCartItem(t, db, "user-1", "low", 5)
	addCartItem(t, db, "user-1", "gone", 1)

	messages, err := CheckCartStock(db, "user-1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Contains(t, messages, "Only 2 units of Product low are available")
	assert.Contains(t, messages, "Product Product gone is out of stock")
}

func TestPlaceOrderDeductsStockAndClearsCart(t *testing.T) {
	db := openTestDB(t)
	sale := 80.0
	seedProduct(t, db, "p1", 100, &sale, 5)
	seedProduct(t, db, "p2", 50, nil, 3)
	addCartItem(t, db, "user-1", "p1", 2)
	addCartItem(t, db, "user-1", "p2", 3)

	order := models.Order{
		ID:             "ord-1",
		UserID:         "user-1",
		RecipientName:  "Test Buyer",
		RecipientPhone: "0123456789",
	}
	require.NoError(t, PlaceOrder(db, &order))

	// Effective prices: 2x80 + 3x50.
	assert.Equal(t, 310.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)
	require.Len(t, order.Statuses, 1)

	qty, err := GetTotalQuantity(db, "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, qty)
	qty, err = GetTotalQuantity(db, "p2")
	require.NoError(t, err)
	assert.Equal(t, 0, qty)

	lines, err := NewDbCartStore(db, "user-1").Get()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestPlaceOrderSpansWarehouses(t *testing.T) {
	db := openTestDB(t)
	seedProduct(t, db, "p1", 100, nil, 0)
	seedStock(t, db, "wh-a", "p1", 2)
	seedStock(t, db, "wh-b", "p1", 4)
	addCartItem(t, db, "user-1", "p1", 5)

	order := models.Order{ID: "ord-1", UserID: "user-1", RecipientPhone: "0123456789"}
	require.NoError(t, PlaceOrder(db, &order))

	qty, err := GetTotalQuantity(db, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, qty)
}

func TestPlaceOrderInsufficientStockRollsBack(t *testing.T) {
	db := openTestDB(t)
	seedProduct(t, db, "p1", 100, nil, 1)
	addCartItem(t, db, "user-1", "p1", 3)

	order := models.Order{ID: "ord-1", UserID: "user-1"}
	err := PlaceOrder(db, &order)
	require.Error(t, err)

	// Nothing was deducted and the cart survives.
	qty, err := GetTotalQuantity(db, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, qty)
	lines, err := NewDbCartStore(db, "user-1").Get()
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := openTestDB(t)

	order := models.Order{ID: "ord-1", UserID: "user-1"}
	assert.Error(t, PlaceOrder(db, &order))
}

func TestGetOrderRequiresMatchingPhone(t *testing.T) {
	db := openTestDB(t)
	seedProduct(t, db, "p1", 100, nil, 5)
	addCartItem(t, db, "user-1", "p1", 1)

	order := models.Order{ID: "ord-1", UserID: "user-1", RecipientPhone: "0123456789"}
	require.NoError(t, PlaceOrder(db, &order))

	found, err := GetOrder(db, "ord-1", "0123456789")
	require.NoError(t, err)
	assert.Equal(t, "ord-1", found.ID)

	_, err = GetOrder(db, "ord-1", "0000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOrderStatusAppendsHistory(t *testing.T) {
	db := openTestDB(t)
	seedProduct(t, db, "p1", 100, nil, 5)
	addCartItem(t, db, "user-1", "p1", 1)

	order := models.Order{ID: "ord-1", UserID: "user-1", RecipientPhone: "0123456789"}
	require.NoError(t, PlaceOrder(db, &order))

	updated, err := UpdateOrderStatus(db, "ord-1", models.OrderStatusShipped)
	require.NoError(t, err)
	assert.True(t, updated)

	found, err := GetOrder(db, "ord-1", "0123456789")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, found.Status)
	require.Len(t, found.Statuses, 2)
	assert.Equal(t, models.OrderStatusShipped, found.Statuses[1].Status)

	updated, err = UpdateOrderStatus(db, "no-such-order", models.OrderStatusShipped)
	require.NoError(t, err)
	assert.False(t, updated)
}
