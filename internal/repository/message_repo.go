package repository

import (
	"context"
	"fmt"

	"gptbot/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

// historyWindow is how far back a conversation stays warm: messages older
// than this are never fed into a model call.
const historyWindow = "16 hours"

type MessageRepository interface {
	// Insert stores one conversation turn with a server-assigned
	// timestamp. The user reference is resolved from the external
	// user_id; nil (or an unknown id) stores NULL.
	Insert(ctx context.Context, role, content string, chatID int64, userID *int64) (*model.Message, error)
	// ListRecent returns the chat's active messages inside the history
	// window, oldest first.
	ListRecent(ctx context.Context, chatID int64) ([]model.ChatMessage, error)
	// DeleteByChatID hard-deletes every message of the chat and returns
	// the number of rows removed.
	DeleteByChatID(ctx context.Context, chatID int64) (int64, error)
	// DeactivateByChatID soft-closes the conversation: history is kept
	// but no longer returned by ListRecent.
	DeactivateByChatID(ctx context.Context, chatID int64) (int64, error)
}

type messageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) MessageRepository {
	return &messageRepo{pool: pool}
}

func (r *messageRepo) Insert(ctx context.Context, role, content string, chatID int64, userID *int64) (*model.Message, error) {
	query := `
		INSERT INTO messages (role, content, chat_id, time, user_id)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, (SELECT id FROM users WHERE user_id = $4))
		RETURNING id, role, content, chat_id, time, user_id, is_active
	`
	var m model.Message
	err := r.pool.QueryRow(ctx, query, role, content, chatID, userID).Scan(
		&m.ID,
		&m.Role,
		&m.Content,
		&m.ChatID,
		&m.Time,
		&m.UserID,
		&m.IsActive,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting message for chat %d: %w", chatID, err)
	}
	return &m, nil
}

func (r *messageRepo) ListRecent(ctx context.Context, chatID int64) ([]model.ChatMessage, error) {
	query := `
		SELECT role, content
		FROM messages
		WHERE chat_id = $1
		  AND is_active = TRUE
		  AND time >= NOW() - INTERVAL '` + historyWindow + `'
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("querying messages for chat %d: %w", chatID, err)
	}
	defer rows.Close()

	var messages []model.ChatMessage
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.Role, &m.Content); err != nil {
			return nil, fmt.Errorf("scanning message row: %w", err)
		}
		messages = append(messages, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating message rows: %w", err)
	}

	return messages, nil
}

func (r *messageRepo) DeleteByChatID(ctx context.Context, chatID int64) (int64, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE chat_id = $1`, chatID)
	if err != nil {
		return 0, fmt.Errorf("deleting messages for chat %d: %w", chatID, err)
	}
	return result.RowsAffected(), nil
}

func (r *messageRepo) DeactivateByChatID(ctx context.Context, chatID int64) (int64, error) {
	result, err := r.pool.Exec(ctx, `UPDATE messages SET is_active = FALSE WHERE chat_id = $1`, chatID)
	if err != nil {
		return 0, fmt.Errorf("deactivating messages for chat %d: %w", chatID, err)
	}
	return result.RowsAffected(), nil
}
