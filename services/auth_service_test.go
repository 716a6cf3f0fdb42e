package services

import (
	"testing"

	"SiriaExpress/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGuestSessionRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	s := &AuthService{}
	session, err := s.CreateGuestSession()
	require.NoError(t, err)

	assert.Contains(t, session.GuestID, "guest_")
	assert.NotEmpty(t, session.Token)

	token, err := jwt.Parse(session.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, session.GuestID, claims["userId"])
	assert.Equal(t, string(models.RoleGuest), claims["role"])
}

func TestCreateGuestSessionRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	s := &AuthService{}
	_, err := s.CreateGuestSession()
	assert.Error(t, err)
}
