package models

import (
	"time"

	"github.com/google/uuid"
)

// Chat roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one message in a chat transcript. Turns are never modified
// after creation.
type ChatTurn struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewChatTurn creates a turn with a fresh ID and the current time.
func NewChatTurn(role, text string) ChatTurn {
	return ChatTurn{
		ID:        uuid.New(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}

// IsUser returns true if the turn was submitted by the user.
func (t *ChatTurn) IsUser() bool {
	return t.Role == RoleUser
}

// IsAssistant returns true if the turn is a generated reply.
func (t *ChatTurn) IsAssistant() bool {
	return t.Role == RoleAssistant
}
