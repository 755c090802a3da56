package service

import (
	"context"
	"fmt"

	"sightstory/internal/interfaces"
	"sightstory/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalyticsService records usage events and reports per-user summaries.
type AnalyticsService interface {
	// Record stores event. Failures are logged and never returned.
	Record(ctx context.Context, event models.UsageEvent)
	Summary(ctx context.Context, userID uuid.UUID) (*models.UsageSummary, error)
}

var _ AnalyticsService = (*analyticsService)(nil)

type analyticsService struct {
	repo   interfaces.UsageRepository
	logger *zap.Logger
}

func NewAnalyticsService(repo interfaces.UsageRepository, logger *zap.Logger) AnalyticsService {
	return &analyticsService{repo: repo, logger: logger.Named("AnalyticsService")}
}

func (s *analyticsService) Record(ctx context.Context, event models.UsageEvent) {
	if err := s.repo.Record(ctx, &event); err != nil {
		s.logger.Warn("Dropping usage event", zap.String("eventType", string(event.EventType)), zap.Error(err))
	}
}

func (s *analyticsService) Summary(ctx context.Context, userID uuid.UUID) (*models.UsageSummary, error) {
	summary, err := s.repo.Summary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to build usage summary: %w", err)
	}
	// Every known event type is reported, zero or not.
	for _, t := range []models.UsageEventType{
		models.EventStoryComposed, models.EventStorySaved, models.EventStoryShared, models.EventSharedStoryViewed,
	} {
		if _, ok := summary.EventCounts[t]; !ok {
			summary.EventCounts[t] = 0
		}
	}
	return summary, nil
}
