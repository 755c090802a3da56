package messaging

import "time"

const (
	// DefaultShareExchange is the durable fanout exchange share requests go to.
	DefaultShareExchange = "story_shares"
	shareExchangeType    = "fanout"
	shareMessageType     = "story.share.requested"
)

// ShareStoryPayload asks the mail sender to deliver a story link.
type ShareStoryPayload struct {
	StoryID        string    `json:"story_id"`
	SenderUserID   string    `json:"sender_user_id"`
	SenderName     string    `json:"sender_name"`
	RecipientEmail string    `json:"recipient_email"`
	Message        string    `json:"message,omitempty"`
	Title          string    `json:"title"`
	ShareURL       string    `json:"share_url"`
	RequestedAt    time.Time `json:"requested_at"`
}
