package model

import "time"

// Message roles as sent to the language model.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one stored conversation turn. UserID references users.id and
// is nil when the author has no stored profile (assistant turns always do).
type Message struct {
	ID       int64     `db:"id" json:"id"`
	Role     string    `db:"role" json:"role"`
	Content  string    `db:"content" json:"content"`
	ChatID   int64     `db:"chat_id" json:"chat_id"`
	Time     time.Time `db:"time" json:"time"`
	UserID   *int64    `db:"user_id" json:"user_id,omitempty"`
	IsActive bool      `db:"is_active" json:"is_active"`
}

// ChatMessage is the reduced {role, content} shape fed into a model call.
type ChatMessage struct {
	Role    string `db:"role" json:"role"`
	Content string `db:"content" json:"content"`
}
