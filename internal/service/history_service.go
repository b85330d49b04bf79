package service

import (
	"context"
	"errors"
	"fmt"

	"gptbot/internal/model"
	"gptbot/internal/repository"

	"github.com/rs/zerolog"
)

// ErrNoChat is returned when a request context carries no chat identity,
// so there is no conversation to read or write.
var ErrNoChat = errors.New("chat id is missing")

type HistoryService interface {
	// Recent returns the active conversation history for the request's
	// chat, oldest first, ready to feed into a model call.
	Recent(ctx context.Context, meta *model.Meta) ([]model.ChatMessage, error)
	// Append stores one conversation turn.
	Append(ctx context.Context, role, content string, chatID int64, userID *int64) (*model.Message, error)
	// Reset soft-closes the conversation; history stays in the table.
	Reset(ctx context.Context, chatID int64) (int64, error)
	// Purge hard-deletes the chat's messages and returns how many went.
	Purge(ctx context.Context, chatID int64) (int64, error)
}

type historyService struct {
	repo   repository.MessageRepository
	logger zerolog.Logger
}

func NewHistoryService(repo repository.MessageRepository, logger zerolog.Logger) HistoryService {
	return &historyService{
		repo:   repo,
		logger: logger.With().Str("service", "HistoryService").Logger(),
	}
}

func (s *historyService) Recent(ctx context.Context, meta *model.Meta) ([]model.ChatMessage, error) {
	if meta == nil || meta.Chat == nil {
		return nil, ErrNoChat
	}

	messages, err := s.repo.ListRecent(ctx, meta.Chat.ID)
	if err != nil {
		return nil, fmt.Errorf("listing recent messages: %w", err)
	}

	s.logger.Info().
		Int64("chat_id", meta.Chat.ID).
		Int("count", len(messages)).
		Msg("messages received from the database")

	return messages, nil
}

func (s *historyService) Append(ctx context.Context, role, content string, chatID int64, userID *int64) (*model.Message, error) {
	message, err := s.repo.Insert(ctx, role, content, chatID, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to insert message")
		return nil, fmt.Errorf("appending message: %w", err)
	}
	return message, nil
}

func (s *historyService) Reset(ctx context.Context, chatID int64) (int64, error) {
	count, err := s.repo.DeactivateByChatID(ctx, chatID)
	if err != nil {
		return 0, fmt.Errorf("deactivating messages: %w", err)
	}
	return count, nil
}

func (s *historyService) Purge(ctx context.Context, chatID int64) (int64, error) {
	count, err := s.repo.DeleteByChatID(ctx, chatID)
	if err != nil {
		return 0, fmt.Errorf("deleting messages: %w", err)
	}
	return count, nil
}
