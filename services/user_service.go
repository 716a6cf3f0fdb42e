package services

import (
	"SiriaExpress/config/database"
	"SiriaExpress/models"
	"SiriaExpress/utils"
	"context"
	"net/http"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type UserService struct {
	FirestoreClient *firestore.Client
}

// NewUserService initializes UserService with FirestoreClient
func NewUserService() *UserService {
	return &UserService{
		FirestoreClient: database.GetFirestoreClient(),
	}
}

// GetUserProfile returns the stored profile for a user id
func (s *UserService) GetUserProfile(ctx context.Context, userId string) (*models.User, error) {
	doc, err := s.FirestoreClient.Collection("users").Doc(userId).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, utils.NewCustomError(http.StatusNotFound, "User not found")
		}
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch user profile")
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse user profile")
	}
	user.ID = doc.Ref.ID
	return &user, nil
}
