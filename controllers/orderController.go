package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"scoop-shop-backend/models"
	"scoop-shop-backend/store"
)

var validate = validator.New()

func PlaceOrder(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}

		order := models.Order{
			Consumer: req.Consumer,
			Flavour:  req.Flavour,
			Quantity: req.Quantity,
			Phone:    req.Phone,
			Info:     req.Info,
		}

		created, err := orders.Create(c.Request.Context(), order)
		if err != nil {
			log.WithError(err).Error("placing order failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to place order", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": created})
	}
}

func GetOrders(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		allOrders, err := orders.ListAll(c.Request.Context())
		if err != nil {
			log.WithError(err).Error("fetching orders failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, allOrders)
	}
}

// DeleteOrder handles delivery confirmation: the order is removed by id and
// echoed back to the caller.
func DeleteOrder(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		deleted, err := orders.DeleteByID(c.Request.Context(), id)
		switch {
		case errors.Is(err, store.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		case err != nil:
			log.WithError(err).Error("deleting order failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete order", "error": err.Error()})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Order marked as delivered and deleted", "order": deleted})
		}
	}
}

func DeleteOrderByPhone(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.DeleteByPhoneRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}

		_, err := orders.DeleteByPhone(c.Request.Context(), req.Phone)
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		case err != nil:
			log.WithError(err).Error("deleting order by phone failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete order", "error": err.Error()})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
		}
	}
}
