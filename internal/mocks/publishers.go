package mocks

import (
	"context"

	"sightstory/internal/messaging"

	"github.com/stretchr/testify/mock"
)

// SharePublisher mocks interfaces.SharePublisher.
type SharePublisher struct {
	mock.Mock
}

func (m *SharePublisher) PublishShare(ctx context.Context, payload messaging.ShareStoryPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
