package services

import (
	"SiriaExpress/config/database"
	"SiriaExpress/config/environment"
	"SiriaExpress/models"
	"SiriaExpress/utils"
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AuthService struct {
	FirestoreClient *firestore.Client
	AuthClient      *auth.Client
}

// NewAuthService initializes AuthService with the Firebase clients
func NewAuthService() *AuthService {
	return &AuthService{
		FirestoreClient: database.GetFirestoreClient(),
		AuthClient:      database.GetFirebaseAuthClient(),
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

// Register creates the identity in Firebase Auth and the profile document
// in Firestore. New accounts are always customers; the admin role is only
// ever set out-of-band.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	params := (&auth.UserToCreate{}).
		Email(req.Email).
		Password(req.Password).
		DisplayName(req.Name)

	record, err := s.AuthClient.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, utils.NewCustomError(http.StatusConflict, "Email already registered")
		}
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to create user")
	}

	now := time.Now()
	user := models.User{
		ID:        record.UID,
		Email:     req.Email,
		Name:      req.Name,
		Role:      models.RoleCustomer,
		CreatedAt: now,
		UpdatedAt: now,
	}

	docRef := s.FirestoreClient.Collection("users").Doc(record.UID)
	if _, err := docRef.Set(ctx, user); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to save user profile")
	}

	return &user, nil
}

// GuestSession represents an anonymous storefront session: a throwaway id
// plus the token that authorizes its cart
type GuestSession struct {
	GuestID   string    `json:"guest_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateGuestSession issues a 24h HS256 token so the storefront cart works
// before sign-in
func (s *AuthService) CreateGuestSession() (*GuestSession, error) {
	secret := environment.GetJWTSecret()
	if secret == "" {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Guest sessions are not configured")
	}

	guestID := "guest_" + uuid.NewString()
	expiresAt := time.Now().Add(24 * time.Hour)

	claims := jwt.MapClaims{
		"userId": guestID,
		"role":   string(models.RoleGuest),
		"exp":    expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Token generation failed")
	}

	return &GuestSession{
		GuestID:   guestID,
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}
