package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
	"github.com/ai-software-engineering-group/tech-store-website/services"
)

type PlaceOrderRequest struct {
	RecipientName   string `json:"recipient_name" binding:"required"`
	RecipientPhone  string `json:"recipient_phone" binding:"required"`
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	PaymentMethod   string `json:"payment_method" binding:"required"` // e.g. "card", "cod"
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusShipped,
		models.OrderStatusDelivered, models.OrderStatusCancelled:
		return models.OrderStatus(status), nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Generate unique order id, e.g. 20250908130500-4f1c...
func generateOrderID() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// GET /api/order/check?pId=<productId>
//
// Pre-checkout stock check: one product when pId is given, the whole cart
// otherwise. Any shortfall comes back as status=false with one advisory
// message per product.
func CheckQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400})
			return
		}

		if pID := c.Query("pId"); pID != "" {
			qty, err := services.GetTotalQuantity(db, pID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to check stock"})
				return
			}
			if qty <= 0 {
				name := pID
				if product, err := services.GetProductBasic(db, pID); err == nil {
					name = product.Name
				}
				c.JSON(http.StatusOK, models.ApiResponse{
					Status: false,
					Errors: []string{fmt.Sprintf("Product %s is out of stock", name)},
				})
				return
			}
			c.JSON(http.StatusOK, models.ApiResponse{Status: true})
			return
		}

		messages, err := services.CheckCartStock(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to check stock"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: len(messages) == 0, Errors: messages})
	}
}

// POST /api/order
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Errors: []string{err.Error()}})
			return
		}

		order := models.Order{
			ID:              generateOrderID(),
			UserID:          userID,
			RecipientName:   req.RecipientName,
			RecipientPhone:  req.RecipientPhone,
			DeliveryAddress: req.DeliveryAddress,
			PaymentMethod:   req.PaymentMethod,
			PaymentStatus:   models.PaymentStatusPending,
		}

		if err := services.PlaceOrder(db, &order); err != nil {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: err.Error()})
			return
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Message: "Order placed", Data: gin.H{
			"order_id": order.ID,
			"total":    order.TotalAmount,
		}})
	}
}

// GET /api/order/:orderId?phone=<recipientPhone>
//
// Order tracking: requires the recipient phone the order was placed with, so
// guests can track without an account.
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderId")
		phone := c.Query("phone")
		if orderID == "" || phone == "" {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "Order id and phone are required"})
			return
		}

		order, err := services.GetOrder(db, orderID, phone)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ApiResponse{Status: false, StatusCode: 404, Message: "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: order})
	}
}

// GET /api/admin/orders?page=
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page <= 0 {
			page = 1
		}

		orders, totalPages, err := services.ListOrders(db, page)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: gin.H{
			"orders":      orders,
			"currentPage": page,
			"totalPages":  totalPages,
		}})
	}
}

// PUT /api/admin/orders/:orderId/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderId")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Errors: []string{err.Error()}})
			return
		}

		status, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: err.Error()})
			return
		}

		updated, err := services.UpdateOrderStatus(db, orderID, status)
		if err != nil {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Failed to update order status"})
			return
		}
		if !updated {
			c.JSON(http.StatusNotFound, models.ApiResponse{Status: false, StatusCode: 404, Message: "Order not found"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Message: "Order status updated"})
	}
}
