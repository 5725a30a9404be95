package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole tags a transcript turn.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleAgent ChatRole = "agent"
)

// ChatTurn is a single entry in the chat transcript. The transcript is
// append-only for the lifetime of a session and is never persisted.
type ChatTurn struct {
	ID      string
	Role    ChatRole
	Content string
	SentAt  time.Time
}

// NewChatTurn creates a turn with a short unique ID.
func NewChatTurn(role ChatRole, content string) ChatTurn {
	return ChatTurn{
		ID:      uuid.New().String()[:8], // Short ID for convenience
		Role:    role,
		Content: content,
		SentAt:  time.Now(),
	}
}
