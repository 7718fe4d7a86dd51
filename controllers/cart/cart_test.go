package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ai-software-engineering-group/tech-store-website/auth"
	"github.com/ai-software-engineering-group/tech-store-website/middleware"
	"github.com/ai-software-engineering-group/tech-store-website/models"
	"github.com/ai-software-engineering-group/tech-store-website/services"
)

const testUserID = "user-1"

type apiResponse struct {
	Status     bool           `json:"status"`
	StatusCode int            `json:"statusCode"`
	Message    string         `json:"message"`
	Errors     []string       `json:"errors"`
	Data       map[string]any `json:"data"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-jwt-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Warehouse{},
		&models.WarehouseProduct{},
		&models.CartItem{},
	))

	r := gin.New()
	cartGroup := r.Group("/api/cart")
	cartGroup.Use(middleware.OptionalToken)
	cartGroup.GET("/count", CountCartItems(db))
	cartGroup.GET("/all", GetCart(db))
	cartGroup.POST("", AddToCart(db))
	cartGroup.PUT("", UpdateQuantity(db))
	cartGroup.DELETE("", RemoveFromCart(db))
	return r, db
}

func seedProduct(t *testing.T, db *gorm.DB, id string, price float64, salePrice *float64, stock int) {
	t.Helper()
	require.NoError(t, db.Create(&models.Product{
		ID: id, Name: "Product " + id, Price: price, SalePrice: salePrice,
	}).Error)
	if stock > 0 {
		require.NoError(t, db.Create(&models.WarehouseProduct{
			WarehouseID: "wh-main", ProductID: id, Quantity: stock,
		}).Error)
	}
}

func setStock(t *testing.T, db *gorm.DB, productID string, qty int) {
	t.Helper()
	require.NoError(t, db.Model(&models.WarehouseProduct{}).
		Where("product_id = ?", productID).
		Update("quantity", qty).Error)
}

func userToken(t *testing.T) string {
	t.Helper()
	token, err := auth.IssueToken(testUserID, "user")
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, method, path, token, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: services.CartCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func cartCookieValue(w *httptest.ResponseRecorder) string {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == services.CartCookieName {
			return ck.Value
		}
	}
	return ""
}

func userLineQuantity(t *testing.T, db *gorm.DB, productID string) (int, bool) {
	t.Helper()
	var item models.CartItem
	err := db.Where("user_id = ? AND product_id = ?", testUserID, productID).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return 0, false
	}
	require.NoError(t, err)
	return item.Quantity, true
}

func TestAddToCartOutOfStock(t *testing.T) {
	r, db := newTestRouter(t)
	seedProduct(t, db, "p1", 100, nil, 0)
	token := userToken(t)

	w := doRequest(r, http.MethodPost, "/api/cart?id=p1", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse(t, w)
	assert.False(t, resp.Status)
	assert.Equal(t, "Product Product p1 is out of stock", resp.Message)

	_, exists := userLineQuantity(t, db, "p1")
	assert.False(t, exists)
}

func TestAddToCartGuestOutOfStockWritesNoCookie(t *testing.T) {
	r, db := newTestRouter(t)
	seedProduct(t, db, "p1", 100, nil, 0)

	w := doRequest(r, http.MethodPost, "/api/cart?id=p1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, parseResponse(t, w).Status)
	assert.Empty(t, cartCookieValue(w))
}

func TestAddToCartSaturatesAtStock(t *testing.T) {
	r, db := newTestRouter(t)
	seedProduct(t, db, "p1", 100, nil, 2)
	token := userToken(t)

	for i := 0; i < 4; i++ {
		w := doRequest(r, http.MethodPost, "/api/cart?id=p1", token, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, parseResponse(t, w).Status)
	}

	qty, exists := userLineQuantity(t, db, "p1")
	require.True(t, exists)
	assert.Equal(t, 2, qty)
}

func TestAddToCartGuestSaturatesAtStock(t *testing.T) {
	r, db := newTestRouter(t)
	seedProduct(t, db, "p1", 100, nil, 2)

	cookie := ""
	for i := 0; i < 4; i++ {
		w := doRequest(r, http.MethodPost, "/api/cart?id=p1", "", cookie)
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, parseResponse(t, w).Status)
		if v := cartCookieValue(w); v != "" {
			cookie = v
		}
	}

	lines := services.DecodeCartCookie(cookie, []byte("test-jwt-secret"))
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestUpdateQuantityNotInCart(t *testing.T) {
	r, db := newTestRouter(t)
	seedProduct(t, db, "p1", 100, nil, 3)

	w := doRequest(r, http.MethodPut, "/api/cart?id=p1&qty=2", userToken(t), "")
	require.Equal(t, http.StatusNotFound, w.Code)
	resp := parseResponse(t, w)
	assert.False(t, resp.Status)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestUpdateQuantityClampsToStock(t *testing.T) {
	r, db := newTestRouter(t)
	seedProduct(t, db, "p1", 100, nil, 2)
	token := userToken(t)

	doRequest(r, http.MethodPost, "/api/cart?id=p1", token, "")

	w := doRequest(r, http.MethodPut, "/api/cart?id=p1&qty=5", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse(t, w)
	assert.True(t, resp.Status)
	assert.Equal(t, "Only 2 units of Product p1 are available", resp.Message)
	assert.Equal(t, float64(2), resp.Data["quantity"])
	assert.Equal(t, float64(200), resp.Data["productTotalPrice"])
	assert.Equal(t, float64(200), resp.Data["totalPrice"])

	qty, _ := userLineQuantity(t, db, "p1")
	assert.Equal(t, 2, qty)
}

func TestUpdateQuantityPlusAndMinus(t *testing.T) {
	r, db := newTestRouter(t)
	seedProduct(t, db, "p1", 100, nil, 10)
	token := userToken(t)

	doRequest(r, http.MethodPost, "/api/cart?id=p1", token, "")

	w := doRequest(r, http.MethodPut, "/api/cart?id=p1&type=plus&qty=3", token, "")
	resp := parseResponse(t, w)
	require.True(t, resp.Status)
	assert.Equal(t, float64(4), resp.Data["quantity"])
	assert.Empty(t, resp.Message)

	w = doRequest(r, http.MethodPut, "/api/cart?id=p1&type=minus&qty=2", token, "")
	resp = parseResponse(t, w)
	require.True(t, resp.Status)
	assert.Equal(t, float64(2), resp.Data["quantity"])

	// Decrementing past one floors at one.
	w = doRequest(r, http.MethodPut, "/api/cart?id=p1&type=minus&qty=5", token, "")
	resp = parseResponse(t, w)
	require.True(t, resp.Status)
	assert.Equal(t, float64(1), resp.Data["quantity"])
}

func TestUpdateQuantityRemovesLineWhenStockGone(t *testing.T) {
	r, db := newTestRouter(t)
	seedProduct(t, db, "p1", 100, nil, 3)
	token := userToken(t)

	doRequest(r, http.MethodPost, "/api/cart?id=p1", token, "")
	setStock(t, db, "p1", 0)

	w := doRequest(r, http.MethodPut, "/api/cart?id=p1&qty=2", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse(t, w)
	assert.False(t, resp.Status)
	assert.Equal(t, "Product Product p1 is out of stock", resp.Message)

	_, exists := userLineQuantity(t, db, "p1")
	assert.False(t, exists)
}

func TestUpdateQuantityTotalUsesEffectivePrices(t *testing.T) {
	r, db := newTestRouter(t)
	sale := 80.0
	seedProduct(t, db, "p1", 100, &sale, 10)
	seedProduct(t, db, "p2", 50, nil, 10)
	token := userToken(t)

	doRequest(r, http.MethodPost, "/api/cart?id=p1", token, "")
	doRequest(r, http.MethodPost, "/api/cart?id=p2", token, "")

	w := doRequest(r, http.MethodPut, "/api/cart?id=p1&qty=2", token, "")
	resp := parseResponse(t, w)
	require.True(t, resp.Status)

	// 2x80 on sale plus 1x50 at list price.
	assert.Equal(t, float64(210), resp.Data["totalPrice"])
	assert.Equal(t, float64(160), resp.Data["productTotalPrice"])
}

func TestUpdateQuantityInvalidQty(t *testing.T) {
	r, db := newTestRouter(t)
	seedProduct(t, db, "p1", 100, nil, 3)

	w := doRequest(r, http.MethodPut, "/api/cart?id=p1&qty=abc", userToken(t), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveFromCart(t *testing.T) {
	r, db := newTestRouter(t)
	seedProduct(t, db, "p1", 100, nil, 3)
	token := userToken(t)

	doRequest(r, http.MethodPost, "/api/cart?id=p1", token, "")

	w := doRequest(r, http.MethodDelete, "/api/cart?id=p1", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, parseResponse(t, w).Status)

	w = doRequest(r, http.MethodDelete, "/api/cart?id=p1", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCartGuestDropsUnknownProducts(t *testing.T) {
	r, db := newTestRouter(t)
	seedProduct(t, db, "p1", 100, nil, 3)

	cookie := services.EncodeCartCookie([]services.CartLine{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "deleted", Quantity: 1},
		{ProductID: "", Quantity: 1},
	}, []byte("test-jwt-secret"))

	w := doRequest(r, http.MethodGet, "/api/cart/all", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status bool `json:"status"`
		Data   []struct {
			Product  models.Product `json:"product"`
			Quantity int            `json:"quantity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Status)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "p1", resp.Data[0].Product.ID)

	// Listing must not rewrite the cookie.
	assert.Empty(t, cartCookieValue(w))
}

func TestGetCartGuestCorruptCookie(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/cart/all", "", "tampered.cookie")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status bool  `json:"status"`
		Data   []any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Empty(t, resp.Data)
}

func TestCountCartItems(t *testing.T) {
	r, db := newTestRouter(t)
	seedProduct(t, db, "p1", 100, nil, 3)
	seedProduct(t, db, "p2", 50, nil, 3)
	token := userToken(t)

	doRequest(r, http.MethodPost, "/api/cart?id=p1", token, "")
	doRequest(r, http.MethodPost, "/api/cart?id=p2", token, "")

	w := doRequest(r, http.MethodGet, "/api/cart/count", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status bool    `json:"status"`
		Data   float64 `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(2), resp.Data)
}

func TestTokenWithoutUserIDIsBadRequest(t *testing.T) {
	r, _ := newTestRouter(t)

	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-jwt-secret"))
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/api/cart/all", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
