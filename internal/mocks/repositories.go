package mocks

import (
	"context"
	"time"

	"sightstory/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// UserRepository mocks interfaces.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

// TokenRepository mocks interfaces.TokenRepository.
type TokenRepository struct {
	mock.Mock
}

func (m *TokenRepository) SetToken(ctx context.Context, userID uuid.UUID, td *models.TokenDetails) error {
	args := m.Called(ctx, userID, td)
	return args.Error(0)
}

func (m *TokenRepository) DeleteTokens(ctx context.Context, userID uuid.UUID, accessUUID, refreshUUID string) (int64, error) {
	args := m.Called(ctx, userID, accessUUID, refreshUUID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TokenRepository) GetUserIDByAccessUUID(ctx context.Context, accessUUID string) (uuid.UUID, error) {
	args := m.Called(ctx, accessUUID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *TokenRepository) GetUserIDByRefreshUUID(ctx context.Context, refreshUUID string) (uuid.UUID, error) {
	args := m.Called(ctx, refreshUUID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *TokenRepository) DeleteTokensByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// StoryRepository mocks interfaces.StoryRepository.
type StoryRepository struct {
	mock.Mock
}

func (m *StoryRepository) Create(ctx context.Context, story *models.SavedStory) error {
	args := m.Called(ctx, story)
	return args.Error(0)
}

func (m *StoryRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.SavedStory, error) {
	args := m.Called(ctx, userID, id)
	s, _ := args.Get(0).(*models.SavedStory)
	return s, args.Error(1)
}

func (m *StoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, cursorTime time.Time, cursorID uuid.UUID, limit int) ([]models.StorySummary, error) {
	args := m.Called(ctx, userID, cursorTime, cursorID, limit)
	s, _ := args.Get(0).([]models.StorySummary)
	return s, args.Error(1)
}

func (m *StoryRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *StoryRepository) SetShareToken(ctx context.Context, userID, id uuid.UUID, token string) (string, error) {
	args := m.Called(ctx, userID, id, token)
	return args.String(0), args.Error(1)
}

func (m *StoryRepository) GetByShareToken(ctx context.Context, token string) (*models.SavedStory, error) {
	args := m.Called(ctx, token)
	s, _ := args.Get(0).(*models.SavedStory)
	return s, args.Error(1)
}

// UsageRepository mocks interfaces.UsageRepository.
type UsageRepository struct {
	mock.Mock
}

func (m *UsageRepository) Record(ctx context.Context, event *models.UsageEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *UsageRepository) Summary(ctx context.Context, userID uuid.UUID) (*models.UsageSummary, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(*models.UsageSummary)
	return s, args.Error(1)
}
