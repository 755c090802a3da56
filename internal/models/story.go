package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedStory is a composed story persisted by its owner.
type SavedStory struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	UserID           uuid.UUID  `db:"user_id" json:"user_id"`
	Title            string     `db:"title" json:"title"`
	ProtagonistName  string     `db:"protagonist_name" json:"protagonist_name"`
	Sentences        []string   `db:"sentences" json:"sentences"`
	TargetWords      []string   `db:"target_words" json:"target_words"`
	UsedWords        []string   `db:"used_words" json:"used_words"`
	TotalTargetWords int        `db:"total_target_words" json:"total_target_words"`
	CoveragePercent  int        `db:"coverage_percent" json:"coverage_percent"`
	ScenesUsed       []string   `db:"scenes_used" json:"scenes_used"`
	ShareToken       *string    `db:"share_token" json:"share_token,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
	SharedAt         *time.Time `db:"shared_at" json:"shared_at,omitempty"`
}

// StorySummary is the list view of a saved story.
type StorySummary struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	ProtagonistName string    `db:"protagonist_name" json:"protagonist_name"`
	CoveragePercent int       `db:"coverage_percent" json:"coverage_percent"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// SharedStoryView is what an anonymous reader of a share link sees.
type SharedStoryView struct {
	Title           string    `json:"title"`
	ProtagonistName string    `json:"protagonist_name"`
	Sentences       []string  `json:"sentences"`
	UsedWords       []string  `json:"used_words"`
	CreatedAt       time.Time `json:"created_at"`
}
