package database

import (
	"context"
	"fmt"

	"sightstory/internal/interfaces"
	"sightstory/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var _ interfaces.UsageRepository = (*pgUsageRepository)(nil)

type pgUsageRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgUsageRepository creates a PostgreSQL-backed UsageRepository.
func NewPgUsageRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.UsageRepository {
	return &pgUsageRepository{
		db:     db,
		logger: logger.Named("PgUsageRepo"),
	}
}

const (
	recordUsageQuery = `
		INSERT INTO usage_events (user_id, event_type, story_id, word_count, coverage_percent)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	countUsageByTypeQuery = `
		SELECT event_type, COUNT(*) AS total
		FROM usage_events
		WHERE user_id = $1
		GROUP BY event_type`

	composeStatsQuery = `
		SELECT COALESCE(AVG(coverage_percent), 0)::float8 AS average_coverage,
		       COALESCE(SUM(word_count), 0)::bigint AS total_words
		FROM usage_events
		WHERE user_id = $1 AND event_type = $2`
)

func (r *pgUsageRepository) Record(ctx context.Context, event *models.UsageEvent) error {
	err := r.db.QueryRow(ctx, recordUsageQuery,
		event.UserID, event.EventType, event.StoryID, event.WordCount, event.CoveragePercent,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to record usage event", zap.String("eventType", string(event.EventType)), zap.Error(err))
		return fmt.Errorf("failed to record usage event: %w", err)
	}
	return nil
}

type eventCountRow struct {
	EventType models.UsageEventType `db:"event_type"`
	Total     int64                 `db:"total"`
}

type composeStatsRow struct {
	AverageCoverage float64 `db:"average_coverage"`
	TotalWords      int64   `db:"total_words"`
}

func (r *pgUsageRepository) Summary(ctx context.Context, userID uuid.UUID) (*models.UsageSummary, error) {
	var counts []eventCountRow
	if err := pgxscan.Select(ctx, r.db, &counts, countUsageByTypeQuery, userID); err != nil {
		r.logger.Error("Failed to count usage events", zap.String("userID", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to count usage events: %w", err)
	}

	var stats composeStatsRow
	if err := pgxscan.Get(ctx, r.db, &stats, composeStatsQuery, userID, models.EventStoryComposed); err != nil {
		r.logger.Error("Failed to aggregate compose events", zap.String("userID", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to aggregate compose events: %w", err)
	}

	summary := &models.UsageSummary{
		EventCounts:         make(map[models.UsageEventType]int64, len(counts)),
		AverageCoverage:     stats.AverageCoverage,
		TotalWordsRequested: stats.TotalWords,
	}
	for _, c := range counts {
		summary.EventCounts[c.EventType] = c.Total
	}
	return summary, nil
}
