package mocks

import (
	"context"

	"sightstory/internal/models"
	"sightstory/internal/service"
	"sightstory/internal/story"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// AuthService mocks service.AuthService.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	args := m.Called(ctx, username, email, password)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, username, password string) (*models.TokenDetails, error) {
	args := m.Called(ctx, username, password)
	td, _ := args.Get(0).(*models.TokenDetails)
	return td, args.Error(1)
}

func (m *AuthService) Logout(ctx context.Context, userID uuid.UUID, accessUUID, refreshToken string) error {
	args := m.Called(ctx, userID, accessUUID, refreshToken)
	return args.Error(0)
}

func (m *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.TokenDetails, error) {
	args := m.Called(ctx, refreshToken)
	td, _ := args.Get(0).(*models.TokenDetails)
	return td, args.Error(1)
}

func (m *AuthService) VerifyAccessToken(ctx context.Context, tokenString string) (*models.Claims, error) {
	args := m.Called(ctx, tokenString)
	c, _ := args.Get(0).(*models.Claims)
	return c, args.Error(1)
}

func (m *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

// StoryService mocks service.StoryService.
type StoryService struct {
	mock.Mock
}

func (m *StoryService) Compose(ctx context.Context, userID uuid.UUID, words []string, name string) story.Story {
	args := m.Called(ctx, userID, words, name)
	return args.Get(0).(story.Story)
}

func (m *StoryService) Save(ctx context.Context, userID uuid.UUID, in service.SaveStoryInput) (*models.SavedStory, error) {
	args := m.Called(ctx, userID, in)
	s, _ := args.Get(0).(*models.SavedStory)
	return s, args.Error(1)
}

func (m *StoryService) Get(ctx context.Context, userID, id uuid.UUID) (*models.SavedStory, error) {
	args := m.Called(ctx, userID, id)
	s, _ := args.Get(0).(*models.SavedStory)
	return s, args.Error(1)
}

func (m *StoryService) List(ctx context.Context, userID uuid.UUID, cursor string, limit int) ([]models.StorySummary, string, error) {
	args := m.Called(ctx, userID, cursor, limit)
	s, _ := args.Get(0).([]models.StorySummary)
	return s, args.String(1), args.Error(2)
}

func (m *StoryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *StoryService) Share(ctx context.Context, userID, id uuid.UUID, in service.ShareInput) (string, error) {
	args := m.Called(ctx, userID, id, in)
	return args.String(0), args.Error(1)
}

func (m *StoryService) GetShared(ctx context.Context, token string) (*models.SharedStoryView, error) {
	args := m.Called(ctx, token)
	v, _ := args.Get(0).(*models.SharedStoryView)
	return v, args.Error(1)
}

// AnalyticsService mocks service.AnalyticsService.
type AnalyticsService struct {
	mock.Mock
}

func (m *AnalyticsService) Record(ctx context.Context, event models.UsageEvent) {
	m.Called(ctx, event)
}

func (m *AnalyticsService) Summary(ctx context.Context, userID uuid.UUID) (*models.UsageSummary, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(*models.UsageSummary)
	return s, args.Error(1)
}
