package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sightstory/internal/interfaces"
	"sightstory/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var _ interfaces.StoryRepository = (*pgStoryRepository)(nil)

type pgStoryRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgStoryRepository creates a PostgreSQL-backed StoryRepository.
func NewPgStoryRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.StoryRepository {
	return &pgStoryRepository{
		db:     db,
		logger: logger.Named("PgStoryRepo"),
	}
}

const savedStoryFields = `id, user_id, title, protagonist_name, sentences, target_words, used_words,
	total_target_words, coverage_percent, scenes_used, share_token, shared_at, created_at, updated_at`

const (
	createStoryQuery = `
		INSERT INTO saved_stories (user_id, title, protagonist_name, sentences, target_words, used_words,
			total_target_words, coverage_percent, scenes_used)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	getStoryByIDQuery = `SELECT ` + savedStoryFields + ` FROM saved_stories WHERE id = $1 AND user_id = $2`

	getStoryByShareTokenQuery = `SELECT ` + savedStoryFields + ` FROM saved_stories WHERE share_token = $1`

	listStoriesFirstPageQuery = `
		SELECT id, title, protagonist_name, coverage_percent, created_at
		FROM saved_stories
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	listStoriesAfterCursorQuery = `
		SELECT id, title, protagonist_name, coverage_percent, created_at
		FROM saved_stories
		WHERE user_id = $1 AND (created_at, id) < ($2, $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4`

	deleteStoryQuery = `DELETE FROM saved_stories WHERE id = $1 AND user_id = $2`

	setShareTokenQuery = `
		UPDATE saved_stories
		SET share_token = COALESCE(share_token, $3), shared_at = COALESCE(shared_at, NOW())
		WHERE id = $1 AND user_id = $2
		RETURNING share_token`
)

func (r *pgStoryRepository) Create(ctx context.Context, story *models.SavedStory) error {
	logFields := []zap.Field{zap.String("userID", story.UserID.String()), zap.String("title", story.Title)}
	r.logger.Debug("Saving story", logFields...)

	err := r.db.QueryRow(ctx, createStoryQuery,
		story.UserID, story.Title, story.ProtagonistName, nonNil(story.Sentences), nonNil(story.TargetWords),
		nonNil(story.UsedWords), story.TotalTargetWords, story.CoveragePercent, nonNil(story.ScenesUsed),
	).Scan(&story.ID, &story.CreatedAt, &story.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to save story", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to insert saved story: %w", err)
	}
	r.logger.Info("Story saved", append(logFields, zap.String("storyID", story.ID.String()))...)
	return nil
}

func (r *pgStoryRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.SavedStory, error) {
	var story models.SavedStory
	if err := pgxscan.Get(ctx, r.db, &story, getStoryByIDQuery, id, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrStoryNotFound
		}
		r.logger.Error("Failed to get story", zap.String("storyID", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to get saved story %s: %w", id, err)
	}
	return &story, nil
}

func (r *pgStoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, cursorTime time.Time, cursorID uuid.UUID, limit int) ([]models.StorySummary, error) {
	logFields := []zap.Field{zap.String("userID", userID.String()), zap.Int("limit", limit)}

	stories := make([]models.StorySummary, 0, limit)
	var err error
	if cursorTime.IsZero() {
		err = pgxscan.Select(ctx, r.db, &stories, listStoriesFirstPageQuery, userID, limit)
	} else {
		logFields = append(logFields, zap.Time("cursorTime", cursorTime), zap.String("cursorID", cursorID.String()))
		err = pgxscan.Select(ctx, r.db, &stories, listStoriesAfterCursorQuery, userID, cursorTime, cursorID, limit)
	}
	if err != nil {
		r.logger.Error("Failed to list stories", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to list saved stories: %w", err)
	}
	r.logger.Debug("Listed stories", append(logFields, zap.Int("count", len(stories)))...)
	return stories, nil
}

func (r *pgStoryRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteStoryQuery, id, userID)
	if err != nil {
		r.logger.Error("Failed to delete story", zap.String("storyID", id.String()), zap.Error(err))
		return fmt.Errorf("failed to delete saved story %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrStoryNotFound
	}
	r.logger.Info("Story deleted", zap.String("storyID", id.String()), zap.String("userID", userID.String()))
	return nil
}

func (r *pgStoryRepository) SetShareToken(ctx context.Context, userID, id uuid.UUID, token string) (string, error) {
	var stored string
	err := r.db.QueryRow(ctx, setShareTokenQuery, id, userID, token).Scan(&stored)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", models.ErrStoryNotFound
		}
		r.logger.Error("Failed to set share token", zap.String("storyID", id.String()), zap.Error(err))
		return "", fmt.Errorf("failed to set share token for %s: %w", id, err)
	}
	return stored, nil
}

func (r *pgStoryRepository) GetByShareToken(ctx context.Context, token string) (*models.SavedStory, error) {
	var story models.SavedStory
	if err := pgxscan.Get(ctx, r.db, &story, getStoryByShareTokenQuery, token); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrStoryNotFound
		}
		r.logger.Error("Failed to get story by share token", zap.Error(err))
		return nil, fmt.Errorf("failed to get shared story: %w", err)
	}
	return &story, nil
}

// nonNil keeps NOT NULL text[] columns from receiving SQL NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
