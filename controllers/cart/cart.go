package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
	"github.com/ai-software-engineering-group/tech-store-website/services"
)

// cartEntry is one cart line joined with its product snapshot.
type cartEntry struct {
	Product  *models.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// storeFor selects the cart backend once per request: the cart_items table
// when the request carries an identity claim, the signed cookie otherwise.
// A token that validated but carried no user id is a malformed request.
func storeFor(c *gin.Context, db *gorm.DB) (services.CartStore, bool) {
	if !c.GetBool("authenticated") {
		return services.NewCookieCartStore(c, cartCookieSecret()), true
	}

	userID := c.GetString("user_id")
	if userID == "" {
		return nil, false
	}
	return services.NewDbCartStore(db, userID), true
}

func cartCookieSecret() []byte {
	if secret := os.Getenv("COOKIE_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte(os.Getenv("JWT_SECRET"))
}

// GET /api/cart/count
func CountCartItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, db)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400})
			return
		}

		lines, err := store.Get()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: len(lines)})
	}
}

// GET /api/cart/all
//
// Lines are resolved against the product catalog fresh on every call, so
// prices are never stale. A line whose product no longer resolves (or whose
// product id is missing from a guest cookie) is dropped from the response,
// not from the underlying store.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, db)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400})
			return
		}

		lines, err := store.Get()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch cart"})
			return
		}

		entries := make([]cartEntry, 0, len(lines))
		for _, line := range lines {
			if line.ProductID == "" {
				continue
			}
			product, err := services.GetProductBasic(db, line.ProductID)
			if err != nil {
				if errors.Is(err, services.ErrNotFound) {
					continue
				}
				c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch cart"})
				return
			}
			entries = append(entries, cartEntry{Product: product, Quantity: line.Quantity})
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: entries})
	}
}

// POST /api/cart?id=<productId>
//
// Adds one unit. Repeated calls increment by at most 1 and saturate at the
// warehouse stock ceiling without erroring.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Query("id")
		if productID == "" {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "Product id is required"})
			return
		}

		warehouseQty, err := services.GetTotalQuantity(db, productID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to check stock"})
			return
		}
		if warehouseQty <= 0 {
			c.JSON(http.StatusOK, models.ApiResponse{
				Status:  false,
				Message: outOfStockMessage(db, productID),
			})
			return
		}

		store, ok := storeFor(c, db)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400})
			return
		}

		line, err := store.GetOne(productID)
		if err != nil && !errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch cart"})
			return
		}

		if line == nil {
			added, err := store.Add(services.CartLine{ProductID: productID, Quantity: 1})
			if err != nil {
				c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to add to cart"})
				return
			}
			c.JSON(http.StatusOK, models.ApiResponse{Status: added})
			return
		}

		qty, _ := services.ClampQuantity(line.Quantity+1, warehouseQty)
		updated, err := store.UpdateQuantity(productID, qty)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, models.ApiResponse{Status: updated})
	}
}

// PUT /api/cart?id=<productId>&type=<changeType>&qty=<int>
//
// type "plus" increments by qty, "minus" decrements, anything else sets the
// quantity outright. The resolved quantity is ceilinged at warehouse stock;
// a product whose stock dropped to zero is removed from the cart instead.
func UpdateQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Query("id")
		if productID == "" {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "Product id is required"})
			return
		}

		qty, err := strconv.Atoi(c.Query("qty"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "Invalid quantity"})
			return
		}
		changeType := c.Query("type")

		store, ok := storeFor(c, db)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400})
			return
		}

		line, err := store.GetOne(productID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ApiResponse{Status: false, StatusCode: 404, Message: "This product is not in your cart"})
				return
			}
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch cart"})
			return
		}

		// Fetched fresh on every call: price and stock must not be stale.
		product, err := services.GetProductBasic(db, productID)
		if err != nil {
			if !errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch product"})
				return
			}
			product = &models.Product{ID: productID, Name: productID}
		}

		warehouseQty, err := services.GetTotalQuantity(db, productID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to check stock"})
			return
		}

		if warehouseQty <= 0 {
			if _, err := store.Remove(productID); err != nil {
				c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to update cart"})
				return
			}
			c.JSON(http.StatusOK, models.ApiResponse{
				Status:  false,
				Message: fmt.Sprintf("Product %s is out of stock", product.Name),
			})
			return
		}

		resolved := services.ResolveQuantity(changeType, line.Quantity, qty)
		resolved, clamped := services.ClampQuantity(resolved, warehouseQty)

		message := ""
		if clamped {
			message = fmt.Sprintf("Only %d units of %s are available", warehouseQty, product.Name)
		}

		updated, err := store.UpdateQuantity(productID, resolved)
		if err != nil || !updated {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Failed to update cart"})
			return
		}

		totalPrice, err := cartTotal(db, store)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{
			Status:  true,
			Message: message,
			Data: gin.H{
				"quantity":          resolved,
				"totalPrice":        totalPrice,
				"productTotalPrice": services.LineTotal(*product, resolved),
			},
		})
	}
}

// DELETE /api/cart?id=<productId>
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Query("id")
		if productID == "" {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "Product id is required"})
			return
		}

		store, ok := storeFor(c, db)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400})
			return
		}

		removed, err := store.Remove(productID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to update cart"})
			return
		}
		if !removed {
			c.JSON(http.StatusNotFound, models.ApiResponse{Status: false, StatusCode: 404, Message: "This product is not in your cart"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true})
	}
}

// GET /api/admin/user-cart/:user_id
func GetUserCartForAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "user_id is required"})
			return
		}

		var items []models.CartItem
		if err := db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: items})
	}
}

// cartTotal recomputes the whole-cart total across the owner's lines at
// effective prices. Unresolvable lines contribute nothing.
func cartTotal(db *gorm.DB, store services.CartStore) (float64, error) {
	lines, err := store.Get()
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, line := range lines {
		if line.ProductID == "" {
			continue
		}
		product, err := services.GetProductBasic(db, line.ProductID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				continue
			}
			return 0, err
		}
		total += services.LineTotal(*product, line.Quantity)
	}
	return total, nil
}

func outOfStockMessage(db *gorm.DB, productID string) string {
	name := productID
	if product, err := services.GetProductBasic(db, productID); err == nil {
		name = product.Name
	}
	return fmt.Sprintf("Product %s is out of stock", name)
}
