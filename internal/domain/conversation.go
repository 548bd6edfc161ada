package domain

import "github.com/google/uuid"

// Role identifies who authored a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a session's conversation history.
type Message struct {
	Role    Role
	Content string
}

// Session holds the ordered conversation and derived recommendation
// state for one user interaction lifetime. Sessions live in memory
// only; there is no cross-session persistence.
type Session struct {
	ID       string
	Messages []Message

	// CurrentRecommendations is the shortlist from the latest turn
	// that produced any recommendations. A turn with an empty result
	// leaves it untouched rather than clearing it.
	CurrentRecommendations []Recommendation
	UrgencyFlag            bool
}

// NewSession creates an empty session with a fresh ID.
func NewSession() *Session {
	return &Session{ID: uuid.NewString()}
}
