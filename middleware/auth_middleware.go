package middleware

import (
	"SiriaExpress/config/database"
	"SiriaExpress/config/environment"
	"SiriaExpress/models"
	"SiriaExpress/utils"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and stores userId and role on
// the context. Firebase ID tokens identify registered users; HS256 guest
// tokens issued by the auth endpoints let the storefront cart work before
// sign-in.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization token is required")
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		if userId, ok := verifyGuestToken(tokenString); ok {
			c.Set("userId", userId)
			c.Set("role", string(models.RoleGuest))
			c.Next()
			return
		}

		token, err := database.GetFirebaseAuthClient().VerifyIDToken(c, tokenString)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set("userId", token.UID)
		c.Set("role", lookupRole(c, token.UID))
		c.Next()
	}
}

// AdminMiddleware gates the admin panel endpoints. Must run after
// AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != string(models.RoleAdmin) {
			utils.ErrorResponse(c, http.StatusForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}

func verifyGuestToken(tokenString string) (string, bool) {
	secret := environment.GetJWTSecret()
	if secret == "" {
		return "", false
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	if role, _ := claims["role"].(string); role != string(models.RoleGuest) {
		return "", false
	}
	userId, _ := claims["userId"].(string)
	return userId, userId != ""
}

func lookupRole(c *gin.Context, userId string) string {
	doc, err := database.GetFirestoreClient().Collection("users").Doc(userId).Get(c)
	if err != nil {
		return string(models.RoleCustomer)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil || user.Role == "" {
		return string(models.RoleCustomer)
	}
	return string(user.Role)
}
