package interfaces

import (
	"context"

	"sightstory/internal/models"

	"github.com/google/uuid"
)

// TokenRepository tracks live token UUIDs so tokens can be revoked.
type TokenRepository interface {
	// SetToken stores both UUIDs with their remaining lifetimes.
	SetToken(ctx context.Context, userID uuid.UUID, td *models.TokenDetails) error

	// DeleteTokens removes the given UUIDs (either may be empty) and returns
	// how many keys were deleted.
	DeleteTokens(ctx context.Context, userID uuid.UUID, accessUUID, refreshUUID string) (int64, error)

	// Lookups return models.ErrTokenNotFound for unknown or expired UUIDs.
	GetUserIDByAccessUUID(ctx context.Context, accessUUID string) (uuid.UUID, error)
	GetUserIDByRefreshUUID(ctx context.Context, refreshUUID string) (uuid.UUID, error)

	// DeleteTokensByUserID revokes every token of a user.
	DeleteTokensByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
