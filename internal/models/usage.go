package models

import (
	"time"

	"github.com/google/uuid"
)

// UsageEventType names a tracked user action.
type UsageEventType string

const (
	EventStoryComposed     UsageEventType = "story_composed"
	EventStorySaved        UsageEventType = "story_saved"
	EventStoryShared       UsageEventType = "story_shared"
	EventSharedStoryViewed UsageEventType = "shared_story_viewed"
)

// UsageEvent is one row of usage_events.
type UsageEvent struct {
	ID              int64          `db:"id" json:"id"`
	UserID          *uuid.UUID     `db:"user_id" json:"user_id,omitempty"`
	EventType       UsageEventType `db:"event_type" json:"event_type"`
	StoryID         *uuid.UUID     `db:"story_id" json:"story_id,omitempty"`
	WordCount       int            `db:"word_count" json:"word_count"`
	CoveragePercent *int           `db:"coverage_percent" json:"coverage_percent,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
}

// UsageSummary aggregates a user's events.
type UsageSummary struct {
	EventCounts         map[UsageEventType]int64 `json:"event_counts"`
	AverageCoverage     float64                  `json:"average_coverage"`
	TotalWordsRequested int64                    `json:"total_words_requested"`
}
