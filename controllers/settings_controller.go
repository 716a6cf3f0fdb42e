package controllers

import (
	"SiriaExpress/services"
	"SiriaExpress/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	SettingsService *services.SettingsService
}

func NewSettingsController() *SettingsController {
	return &SettingsController{
		SettingsService: services.NewSettingsService(),
	}
}

func (s *SettingsController) GetSettings(c *gin.Context) {
	settings, err := s.SettingsService.GetSettings(c)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings fetched successfully", settings)
}

func (s *SettingsController) UpdateSettings(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	settings, err := s.SettingsService.UpdateSettings(c, fields)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", settings)
}
