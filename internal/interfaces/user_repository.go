package interfaces

import (
	"context"

	"sightstory/internal/models"

	"github.com/google/uuid"
)

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser inserts user and fills in ID and timestamps.
	// Returns models.ErrUserAlreadyExists or models.ErrEmailAlreadyExists on conflicts.
	CreateUser(ctx context.Context, user *models.User) error

	// The getters return models.ErrUserNotFound when nothing matches.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
