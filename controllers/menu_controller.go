package controllers

import (
	"SiriaExpress/models"
	"SiriaExpress/services"
	"SiriaExpress/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	MenuService *services.MenuService
}

func NewMenuController() *MenuController {
	return &MenuController{
		MenuService: services.NewMenuService(),
	}
}

func (m *MenuController) GetCategories(c *gin.Context) {
	categories, err := m.MenuService.GetCategories(c)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Categories fetched successfully", categories)
}

func (m *MenuController) GetMenuItems(c *gin.Context) {
	items, err := m.MenuService.GetMenuItems(c)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu items fetched successfully", items)
}

func (m *MenuController) GetMenuItemByID(c *gin.Context) {
	itemID := c.Param("id")

	item, err := m.MenuService.GetMenuItemByID(c, itemID)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu item fetched successfully", item)
}

func (m *MenuController) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if item.Name == "" || item.Price < 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Name and a non-negative price are required")
		return
	}

	created, err := m.MenuService.CreateMenuItem(c, item)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Menu item created successfully", created)
}

func (m *MenuController) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	item.ID = c.Param("id")

	updated, err := m.MenuService.UpdateMenuItem(c, item)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu item updated successfully", updated)
}

func (m *MenuController) DeleteMenuItem(c *gin.Context) {
	if err := m.MenuService.DeleteMenuItem(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu item deleted successfully", nil)
}

func (m *MenuController) CreateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if category.Name == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Category name is required")
		return
	}

	created, err := m.MenuService.CreateCategory(c, category)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Category created successfully", created)
}

func (m *MenuController) UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	category.ID = c.Param("id")

	updated, err := m.MenuService.UpdateCategory(c, category)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", updated)
}

func (m *MenuController) DeleteCategory(c *gin.Context) {
	if err := m.MenuService.DeleteCategory(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category deleted successfully", nil)
}
