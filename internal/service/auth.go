package service

import (
	"context"

	"sightstory/internal/models"

	"github.com/google/uuid"
)

// AuthService registers accounts and issues, verifies and revokes JWT pairs.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.TokenDetails, error)
	// Logout revokes the access token and, when refreshToken is set, its
	// refresh partner.
	Logout(ctx context.Context, userID uuid.UUID, accessUUID, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*models.TokenDetails, error)
	VerifyAccessToken(ctx context.Context, tokenString string) (*models.Claims, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
