package controllers

import (
	"SiriaExpress/services"
	"SiriaExpress/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	StorageService *services.StorageService
}

func NewUploadController() *UploadController {
	return &UploadController{
		StorageService: services.NewStorageService(),
	}
}

// UploadImage accepts a multipart "image" field and returns the public URL
func (u *UploadController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Image file is required")
		return
	}

	url, err := u.StorageService.UploadImage(c, file)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Image uploaded successfully", gin.H{"url": url})
}
