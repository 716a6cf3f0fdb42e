package controllers

import (
	"SiriaExpress/services"
	"SiriaExpress/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{
		AuthService: services.NewAuthService(),
	}
}

// RegisterUser creates the Firebase identity and the profile document.
// Sign-in itself happens against Firebase directly from the storefront;
// this API only ever sees the resulting ID token.
func (a *AuthController) RegisterUser(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.AuthService.Register(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", user)
}

// CreateGuestSession issues a short-lived token for an anonymous cart
func (a *AuthController) CreateGuestSession(c *gin.Context) {
	session, err := a.AuthService.CreateGuestSession()
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Guest session created", session)
}
