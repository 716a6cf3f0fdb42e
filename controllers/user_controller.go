package controllers

import (
	"SiriaExpress/services"
	"SiriaExpress/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *services.UserService
}

func NewUserController() *UserController {
	return &UserController{
		UserService: services.NewUserService(),
	}
}

func (h *UserController) GetUserProfile(ctx *gin.Context) {
	userId, exists := ctx.Get("userId")
	if !exists {
		utils.ErrorResponse(ctx, http.StatusUnauthorized, "UserId is required")
		return
	}

	user, err := h.UserService.GetUserProfile(ctx, userId.(string))
	if err != nil {
		ctx.Error(err)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "User profile fetched successfully", user)
}
