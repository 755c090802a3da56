package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"

	"sightstory/internal/config"
	"sightstory/internal/interfaces"
	"sightstory/internal/messaging"
	"sightstory/internal/models"
	"sightstory/internal/story"
	"sightstory/internal/utils"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	maxShareMessage = 500
)

// SaveStoryInput is a composed story submitted for persistence.
type SaveStoryInput struct {
	Title            string
	ProtagonistName  string
	Sentences        []string
	TargetWords      []string
	UsedWords        []string
	TotalTargetWords int
	CoveragePercent  int
	ScenesUsed       []string
}

// ShareInput asks for a story to be mailed to someone.
type ShareInput struct {
	RecipientEmail string
	Message        string
}

// StoryService composes stories and manages the saved ones.
type StoryService interface {
	Compose(ctx context.Context, userID uuid.UUID, words []string, name string) story.Story
	Save(ctx context.Context, userID uuid.UUID, in SaveStoryInput) (*models.SavedStory, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.SavedStory, error)
	// List returns a page of the user's stories and the cursor of the next
	// page, empty on the last one.
	List(ctx context.Context, userID uuid.UUID, cursor string, limit int) ([]models.StorySummary, string, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	// Share makes the story publicly readable and queues the e-mail. It
	// returns the public URL.
	Share(ctx context.Context, userID, id uuid.UUID, in ShareInput) (string, error)
	GetShared(ctx context.Context, token string) (*models.SharedStoryView, error)
}

var _ StoryService = (*storyService)(nil)

type storyService struct {
	composer  *story.Composer
	stories   interfaces.StoryRepository
	users     interfaces.UserRepository
	publisher interfaces.SharePublisher
	analytics AnalyticsService
	limiter   *rate.Limiter
	shared    *cache.Cache
	baseURL   string
	logger    *zap.Logger
}

// NewStoryService wires the composer to persistence, sharing and analytics.
func NewStoryService(
	composer *story.Composer,
	stories interfaces.StoryRepository,
	users interfaces.UserRepository,
	publisher interfaces.SharePublisher,
	analytics AnalyticsService,
	cfg *config.Config,
	logger *zap.Logger,
) StoryService {
	perMinute := max(cfg.ShareRatePerMinute, 1)
	return &storyService{
		composer:  composer,
		stories:   stories,
		users:     users,
		publisher: publisher,
		analytics: analytics,
		limiter:   rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), max(cfg.ShareBurst, 1)),
		shared:    cache.New(cfg.SharedStoryCacheTTL, 2*cfg.SharedStoryCacheTTL),
		baseURL:   strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:    logger.Named("StoryService"),
	}
}

func (s *storyService) Compose(ctx context.Context, userID uuid.UUID, words []string, name string) story.Story {
	result := s.composer.Compose(words, name)

	storiesComposedTotal.Inc()
	targetWordsRequested.Observe(float64(result.TotalTargetWords))
	coverage := result.CoveragePercent
	if result.TotalTargetWords > 0 {
		storyCoverage.Observe(float64(coverage))
	}
	s.analytics.Record(ctx, models.UsageEvent{
		UserID:          &userID,
		EventType:       models.EventStoryComposed,
		WordCount:       result.TotalTargetWords,
		CoveragePercent: &coverage,
	})
	s.logger.Debug("Story composed",
		zap.String("userID", userID.String()),
		zap.Strings("scenes", result.ScenesUsed),
		zap.Int("coverage", coverage))
	return result
}

func (s *storyService) Save(ctx context.Context, userID uuid.UUID, in SaveStoryInput) (*models.SavedStory, error) {
	in.Title = strings.TrimSpace(in.Title)
	switch {
	case in.Title == "":
		return nil, fmt.Errorf("title is required: %w", models.ErrInvalidInput)
	case len(in.Sentences) == 0:
		return nil, fmt.Errorf("a story needs at least one sentence: %w", models.ErrInvalidInput)
	case in.CoveragePercent < 0 || in.CoveragePercent > 100:
		return nil, fmt.Errorf("coverage must be within 0-100: %w", models.ErrInvalidInput)
	}
	name := strings.TrimSpace(in.ProtagonistName)
	if name == "" {
		name = story.DefaultProtagonist
	}

	saved := &models.SavedStory{
		UserID:           userID,
		Title:            in.Title,
		ProtagonistName:  name,
		Sentences:        in.Sentences,
		TargetWords:      in.TargetWords,
		UsedWords:        in.UsedWords,
		TotalTargetWords: in.TotalTargetWords,
		CoveragePercent:  in.CoveragePercent,
		ScenesUsed:       in.ScenesUsed,
	}
	if err := s.stories.Create(ctx, saved); err != nil {
		return nil, err
	}

	storiesSavedTotal.Inc()
	s.analytics.Record(ctx, models.UsageEvent{
		UserID:          &userID,
		EventType:       models.EventStorySaved,
		StoryID:         &saved.ID,
		WordCount:       saved.TotalTargetWords,
		CoveragePercent: &saved.CoveragePercent,
	})
	return saved, nil
}

func (s *storyService) Get(ctx context.Context, userID, id uuid.UUID) (*models.SavedStory, error) {
	return s.stories.GetByID(ctx, userID, id)
}

func (s *storyService) List(ctx context.Context, userID uuid.UUID, cursor string, limit int) ([]models.StorySummary, string, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	limit = min(limit, MaxPageSize)

	cursorTime, cursorID, err := utils.DecodeCursor(cursor)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", models.ErrInvalidInput, err)
	}

	// One extra row tells whether another page exists.
	items, err := s.stories.ListByUser(ctx, userID, cursorTime, cursorID, limit+1)
	if err != nil {
		return nil, "", err
	}
	var next string
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		next = utils.EncodeCursor(last.CreatedAt, last.ID)
	}
	return items, next, nil
}

func (s *storyService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	existing, err := s.stories.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.stories.Delete(ctx, userID, id); err != nil {
		return err
	}
	if existing.ShareToken != nil {
		s.shared.Delete(*existing.ShareToken)
	}
	return nil
}

func (s *storyService) Share(ctx context.Context, userID, id uuid.UUID, in ShareInput) (string, error) {
	recipient := strings.TrimSpace(in.RecipientEmail)
	if addr, err := mail.ParseAddress(recipient); err != nil || addr.Address != recipient {
		return "", fmt.Errorf("invalid recipient email: %w", models.ErrInvalidInput)
	}
	message := strings.TrimSpace(in.Message)
	if len(message) > maxShareMessage {
		return "", fmt.Errorf("message longer than %d characters: %w", maxShareMessage, models.ErrInvalidInput)
	}

	saved, err := s.stories.GetByID(ctx, userID, id)
	if err != nil {
		return "", err
	}
	if !s.limiter.Allow() {
		storiesSharedTotal.WithLabelValues("rate_limited").Inc()
		s.logger.Warn("Share rejected by rate limiter", zap.String("userID", userID.String()))
		return "", models.ErrShareRateLimited
	}

	token, err := s.stories.SetShareToken(ctx, userID, id, newShareToken())
	if err != nil {
		return "", err
	}
	shareURL := s.baseURL + "/shared/" + token

	senderName := ""
	if user, err := s.users.GetUserByID(ctx, userID); err == nil {
		senderName = user.DisplayName
	} else {
		s.logger.Warn("Could not load sender for share", zap.String("userID", userID.String()), zap.Error(err))
	}

	payload := messaging.ShareStoryPayload{
		StoryID:        saved.ID.String(),
		SenderUserID:   userID.String(),
		SenderName:     senderName,
		RecipientEmail: recipient,
		Message:        message,
		Title:          saved.Title,
		ShareURL:       shareURL,
		RequestedAt:    time.Now().UTC(),
	}
	if err := s.publisher.PublishShare(ctx, payload); err != nil {
		storiesSharedTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("failed to queue share notification: %w", err)
	}

	storiesSharedTotal.WithLabelValues("success").Inc()
	s.analytics.Record(ctx, models.UsageEvent{
		UserID:    &userID,
		EventType: models.EventStoryShared,
		StoryID:   &saved.ID,
	})
	s.logger.Info("Story shared", zap.String("storyID", saved.ID.String()), zap.String("userID", userID.String()))
	return shareURL, nil
}

func (s *storyService) GetShared(ctx context.Context, token string) (*models.SharedStoryView, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, models.ErrStoryNotFound
	}

	var view *models.SharedStoryView
	var storyID uuid.UUID
	if cached, ok := s.shared.Get(token); ok {
		entry := cached.(sharedEntry)
		view, storyID = entry.view, entry.storyID
	} else {
		saved, err := s.stories.GetByShareToken(ctx, token)
		if err != nil {
			if !errors.Is(err, models.ErrStoryNotFound) {
				s.logger.Error("Failed to load shared story", zap.Error(err))
			}
			return nil, err
		}
		view = &models.SharedStoryView{
			Title:           saved.Title,
			ProtagonistName: saved.ProtagonistName,
			Sentences:       slices.Clone(saved.Sentences),
			UsedWords:       slices.Clone(saved.UsedWords),
			CreatedAt:       saved.CreatedAt,
		}
		storyID = saved.ID
		s.shared.SetDefault(token, sharedEntry{view: view, storyID: storyID})
	}

	s.analytics.Record(ctx, models.UsageEvent{
		EventType: models.EventSharedStoryViewed,
		StoryID:   &storyID,
	})
	// Callers get their own slices; the cached view stays untouched.
	out := *view
	out.Sentences = slices.Clone(view.Sentences)
	out.UsedWords = slices.Clone(view.UsedWords)
	return &out, nil
}

type sharedEntry struct {
	view    *models.SharedStoryView
	storyID uuid.UUID
}

func newShareToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
