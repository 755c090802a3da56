package interfaces

import (
	"context"
	"time"

	"sightstory/internal/models"

	"github.com/google/uuid"
)

// StoryRepository persists saved stories. Every owner-scoped method returns
// models.ErrStoryNotFound when the story does not exist or belongs to
// someone else.
type StoryRepository interface {
	Create(ctx context.Context, story *models.SavedStory) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.SavedStory, error)

	// ListByUser returns stories created strictly before the (cursorTime,
	// cursorID) keyset position, newest first. Zero values start at the top.
	ListByUser(ctx context.Context, userID uuid.UUID, cursorTime time.Time, cursorID uuid.UUID, limit int) ([]models.StorySummary, error)

	Delete(ctx context.Context, userID, id uuid.UUID) error

	// SetShareToken assigns token unless the story already has one and
	// returns the token now stored.
	SetShareToken(ctx context.Context, userID, id uuid.UUID, token string) (string, error)

	GetByShareToken(ctx context.Context, token string) (*models.SavedStory, error)
}
