package controllers

import (
	"SiriaExpress/services"
	"SiriaExpress/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	CartService *services.CartService
}

func NewCartController() *CartController {
	return &CartController{
		CartService: services.NewCartService(),
	}
}

type addToCartRequest struct {
	MenuItemID     string                        `json:"menu_item_id" binding:"required"`
	Quantity       int                           `json:"quantity"`
	Customizations services.CustomizationRequest `json:"customizations"`
}

func (ct *CartController) GetCart(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	cart, err := ct.CartService.GetCart(c, userId.(string))
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cart fetched successfully", cart)
}

func (ct *CartController) AddItem(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	line, err := ct.CartService.AddItem(c, userId.(string), req.MenuItemID, req.Quantity, req.Customizations)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Item added to cart", line)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (ct *CartController) UpdateQuantity(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ct.CartService.UpdateQuantity(c, userId.(string), c.Param("id"), req.Quantity); err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Quantity updated successfully", nil)
}

func (ct *CartController) RemoveItem(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	if err := ct.CartService.RemoveItem(c, userId.(string), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Item removed from cart", nil)
}

func (ct *CartController) ClearCart(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	if err := ct.CartService.Clear(c, userId.(string)); err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cart cleared successfully", nil)
}
