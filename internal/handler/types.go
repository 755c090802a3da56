package handler

import "sightstory/internal/story"

const (
	maxTargetWords     = 200
	maxTargetWordLen   = 40
	maxProtagonistName = 40
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type meResponse struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	DisplayName string   `json:"display_name"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles,omitempty"`
}

// composeRequest takes target words either as a list or as free text split
// on commas and whitespace. Both may be given.
type composeRequest struct {
	Words []string `json:"words"`
	Text  string   `json:"text"`
	Name  string   `json:"name"`
}

type saveStoryRequest struct {
	Title            string   `json:"title" binding:"required"`
	ProtagonistName  string   `json:"protagonist_name"`
	Sentences        []string `json:"sentences" binding:"required,min=1"`
	TargetWords      []string `json:"target_words"`
	UsedWords        []string `json:"used_words"`
	TotalTargetWords int      `json:"total_target_words"`
	CoveragePercent  int      `json:"coverage_percent"`
	ScenesUsed       []string `json:"scenes_used"`
}

type shareStoryRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required,email"`
	Message        string `json:"message" binding:"max=500"`
}

type shareStoryResponse struct {
	ShareURL string `json:"share_url"`
}

type sceneResponse struct {
	ID        string        `json:"id"`
	Phase     story.Phase   `json:"phase"`
	PhaseName string        `json:"phase_name"`
	Setting   story.Setting `json:"setting"`
	Words     []string      `json:"words"`
}
