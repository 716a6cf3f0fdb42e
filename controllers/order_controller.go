package controllers

import (
	"SiriaExpress/models"
	"SiriaExpress/services"
	"SiriaExpress/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	OrderService *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{
		OrderService: services.NewOrderService(),
	}
}

func (o *OrderController) Checkout(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	order, err := o.OrderService.Checkout(c, userId.(string), req)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Order placed successfully", order)
}

func (o *OrderController) GetOrders(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	orders, err := o.OrderService.GetOrders(c, userId.(string))
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Orders fetched successfully", orders)
}

func (o *OrderController) GetOrderByID(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	role, _ := c.Get("role")
	isAdmin := role == string(models.RoleAdmin)

	order, err := o.OrderService.GetOrderByID(c, userId.(string), c.Param("id"), isAdmin)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order fetched successfully", order)
}

// GetOrderStatus returns the order status alongside the full step ladder,
// which is what the tracking page renders
func (o *OrderController) GetOrderStatus(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	role, _ := c.Get("role")
	isAdmin := role == string(models.RoleAdmin)

	order, err := o.OrderService.GetOrderByID(c, userId.(string), c.Param("id"), isAdmin)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order status fetched successfully", gin.H{
		"status":         order.Status,
		"step":           models.StatusIndex(order.Status),
		"steps":          models.StatusSteps,
		"estimated_time": order.EstimatedTime,
	})
}

func (o *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := o.OrderService.GetAllOrders(c)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Orders fetched successfully", orders)
}

func (o *OrderController) AdvanceOrderStatus(c *gin.Context) {
	order, err := o.OrderService.AdvanceStatus(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order status updated successfully", order)
}
