package model

import "time"

// Event types written by the recording facade.
const (
	EventAssistantMessage   = "assistant_message"
	EventUserCommand        = "user_command"
	EventModelTranscription = "model_transcription"
)

// Event is one append-only analytics record. Only Type is required; Time
// is assigned by the database at insert and any caller-supplied value is
// ignored. Every other field is independently nullable.
type Event struct {
	ID   int64     `db:"id" json:"id"`
	Time time.Time `db:"time" json:"time"`
	Type string    `db:"type" json:"type"`

	UserID           *int64  `db:"user_id" json:"user_id,omitempty"`
	UserIsBot        *bool   `db:"user_is_bot" json:"user_is_bot,omitempty"`
	UserLanguageCode *string `db:"user_language_code" json:"user_language_code,omitempty"`
	UserUsername     *string `db:"user_username" json:"user_username,omitempty"`

	ChatID   *int64  `db:"chat_id" json:"chat_id,omitempty"`
	ChatType *string `db:"chat_type" json:"chat_type,omitempty"`

	MessageRole          *string `db:"message_role" json:"message_role,omitempty"`
	MessagesType         *string `db:"messages_type" json:"messages_type,omitempty"`
	MessageVoiceDuration *int    `db:"message_voice_duration" json:"message_voice_duration,omitempty"`
	MessageCommand       *string `db:"message_command" json:"message_command,omitempty"`
	ContentLength        *int    `db:"content_length" json:"content_length,omitempty"`

	UsageModel            *string `db:"usage_model" json:"usage_model,omitempty"`
	UsageObject           *string `db:"usage_object" json:"usage_object,omitempty"`
	UsageCompletionTokens *int    `db:"usage_completion_tokens" json:"usage_completion_tokens,omitempty"`
	UsagePromptTokens     *int    `db:"usage_prompt_tokens" json:"usage_prompt_tokens,omitempty"`
	UsageTotalTokens      *int    `db:"usage_total_tokens" json:"usage_total_tokens,omitempty"`
	APIKey                *string `db:"api_key" json:"api_key,omitempty"`
}
