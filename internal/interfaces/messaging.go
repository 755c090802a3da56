package interfaces

import (
	"context"

	"sightstory/internal/messaging"
)

// SharePublisher hands share requests to the notification pipeline.
type SharePublisher interface {
	PublishShare(ctx context.Context, payload messaging.ShareStoryPayload) error
}
