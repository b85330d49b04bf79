package model

import "time"

// User is a bot user profile. ID is the internal row id; UserID is the
// external (messenger-assigned) identifier the rest of the system keys on.
type User struct {
	ID                  int64     `db:"id" json:"id"`
	UserID              int64     `db:"user_id" json:"user_id" validate:"required"`
	Username            string    `db:"username" json:"username"`
	DefaultLanguageCode string    `db:"default_language_code" json:"default_language_code"`
	LanguageCode        string    `db:"language_code" json:"language_code"`
	OpenAIAPIKey        *string   `db:"openai_api_key" json:"openai_api_key,omitempty"`
	UsageType           *string   `db:"usage_type" json:"usage_type,omitempty"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}
