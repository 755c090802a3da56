package interfaces

import (
	"context"

	"sightstory/internal/models"

	"github.com/google/uuid"
)

// UsageRepository stores usage events and aggregates them.
type UsageRepository interface {
	Record(ctx context.Context, event *models.UsageEvent) error
	Summary(ctx context.Context, userID uuid.UUID) (*models.UsageSummary, error)
}
