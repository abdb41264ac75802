package handler

import (
	"errors"
	"log"
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles checkout and order history requests
type OrderHandler struct {
	service service.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	var req model.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	order, err := h.service.Checkout(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, service.ErrInsufficientStock) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error during checkout: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) OrderHistory(c *gin.Context) {
	name := c.Param("name")

	orders, err := h.service.OrdersFor(c.Request.Context(), name)
	if err != nil {
		log.Printf("Error getting order history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// RegisterOrderRoutes registers order routes behind authentication
func (h *OrderHandler) RegisterOrderRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	orderGroup := rg.Group("/orders")
	orderGroup.Use(authMW)
	{
		orderGroup.POST("", h.Checkout)
		orderGroup.GET("/:name", h.OrderHistory)
	}
}
