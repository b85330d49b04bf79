package service

import (
	"context"
	"fmt"

	"gptbot/internal/model"
	"gptbot/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type UserService interface {
	// RegisterOrUpdate upserts the user's profile. The language code
	// falls back to the default language code when the client sent none.
	RegisterOrUpdate(ctx context.Context, u *model.User) (*model.User, error)
	GetByUserID(ctx context.Context, userID int64) (*model.User, error)
	TokensUsed(ctx context.Context, userID int64) (int64, error)
}

type userService struct {
	repo     repository.UserRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewUserService(repo repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) UserService {
	return &userService{
		repo:     repo,
		validate: validate,
		logger:   logger.With().Str("service", "UserService").Logger(),
	}
}

func (s *userService) RegisterOrUpdate(ctx context.Context, u *model.User) (*model.User, error) {
	if err := s.validate.Struct(u); err != nil {
		return nil, fmt.Errorf("validating user: %w", err)
	}

	if u.LanguageCode == "" {
		u.LanguageCode = u.DefaultLanguageCode
	}

	stored, err := s.repo.Upsert(ctx, u)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", u.UserID).Msg("Failed to upsert user")
		return nil, fmt.Errorf("upserting user: %w", err)
	}
	return stored, nil
}

func (s *userService) GetByUserID(ctx context.Context, userID int64) (*model.User, error) {
	u, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

func (s *userService) TokensUsed(ctx context.Context, userID int64) (int64, error) {
	total, err := s.repo.UsedTokens(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("getting used tokens: %w", err)
	}
	return total, nil
}
