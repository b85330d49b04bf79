package repository

import (
	"context"
	"fmt"

	"gptbot/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	// Insert appends one analytics event. The time column is assigned by
	// the database; any value on the passed struct is ignored. The stored
	// row is returned.
	Insert(ctx context.Context, e *model.Event) (*model.Event, error)
}

type eventRepo struct {
	pool *pgxpool.Pool
}

func NewEventRepo(pool *pgxpool.Pool) EventRepository {
	return &eventRepo{pool: pool}
}

func (r *eventRepo) Insert(ctx context.Context, e *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (
			time,
			type,

			user_id,
			user_is_bot,
			user_language_code,
			user_username,

			chat_id,
			chat_type,

			message_role,
			messages_type,
			message_voice_duration,
			message_command,
			content_length,

			usage_model,
			usage_object,
			usage_completion_tokens,
			usage_prompt_tokens,
			usage_total_tokens,
			api_key
		)
		VALUES (
			NOW(), $1,
			$2, $3, $4, $5,
			$6, $7,
			$8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18
		)
		RETURNING
			id, time, type,
			user_id, user_is_bot, user_language_code, user_username,
			chat_id, chat_type,
			message_role, messages_type, message_voice_duration, message_command, content_length,
			usage_model, usage_object, usage_completion_tokens, usage_prompt_tokens, usage_total_tokens, api_key
	`
	var stored model.Event
	err := r.pool.QueryRow(ctx, query,
		e.Type,

		e.UserID,
		e.UserIsBot,
		e.UserLanguageCode,
		e.UserUsername,

		e.ChatID,
		e.ChatType,

		e.MessageRole,
		e.MessagesType,
		e.MessageVoiceDuration,
		e.MessageCommand,
		e.ContentLength,

		e.UsageModel,
		e.UsageObject,
		e.UsageCompletionTokens,
		e.UsagePromptTokens,
		e.UsageTotalTokens,
		e.APIKey,
	).Scan(
		&stored.ID,
		&stored.Time,
		&stored.Type,
		&stored.UserID,
		&stored.UserIsBot,
		&stored.UserLanguageCode,
		&stored.UserUsername,
		&stored.ChatID,
		&stored.ChatType,
		&stored.MessageRole,
		&stored.MessagesType,
		&stored.MessageVoiceDuration,
		&stored.MessageCommand,
		&stored.ContentLength,
		&stored.UsageModel,
		&stored.UsageObject,
		&stored.UsageCompletionTokens,
		&stored.UsagePromptTokens,
		&stored.UsageTotalTokens,
		&stored.APIKey,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting %s event: %w", e.Type, err)
	}
	return &stored, nil
}
