package repository

import (
	"context"
	"errors"
	"fmt"

	"gptbot/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	// Upsert inserts the user or updates the existing row keyed on the
	// external user_id. Username and language codes are overwritten;
	// openai_api_key and usage_type keep the stored value unless the new
	// one is non-nil; created_at is set once and never regresses.
	Upsert(ctx context.Context, u *model.User) (*model.User, error)
	// GetByUserID returns (nil, nil) when no such user exists.
	GetByUserID(ctx context.Context, userID int64) (*model.User, error)
	// UsedTokens sums usage_total_tokens over all of the user's events,
	// zero when there are none.
	UsedTokens(ctx context.Context, userID int64) (int64, error)
}

type userRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) UserRepository {
	return &userRepo{pool: pool}
}

func (r *userRepo) Upsert(ctx context.Context, u *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (user_id, username, default_language_code, language_code, openai_api_key, usage_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE SET
			username = EXCLUDED.username,
			default_language_code = EXCLUDED.default_language_code,
			language_code = EXCLUDED.language_code,
			openai_api_key = COALESCE(EXCLUDED.openai_api_key, users.openai_api_key),
			usage_type = COALESCE(EXCLUDED.usage_type, users.usage_type),
			created_at = COALESCE(users.created_at, EXCLUDED.created_at)
		RETURNING id, user_id, username, default_language_code, language_code, openai_api_key, usage_type, created_at
	`
	var stored model.User
	err := r.pool.QueryRow(ctx, query,
		u.UserID,
		u.Username,
		u.DefaultLanguageCode,
		u.LanguageCode,
		u.OpenAIAPIKey,
		u.UsageType,
	).Scan(
		&stored.ID,
		&stored.UserID,
		&stored.Username,
		&stored.DefaultLanguageCode,
		&stored.LanguageCode,
		&stored.OpenAIAPIKey,
		&stored.UsageType,
		&stored.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upserting user %d: %w", u.UserID, err)
	}
	return &stored, nil
}

func (r *userRepo) GetByUserID(ctx context.Context, userID int64) (*model.User, error) {
	query := `
		SELECT id, user_id, username, default_language_code, language_code, openai_api_key, usage_type, created_at
		FROM users
		WHERE user_id = $1
	`
	var u model.User
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&u.ID,
		&u.UserID,
		&u.Username,
		&u.DefaultLanguageCode,
		&u.LanguageCode,
		&u.OpenAIAPIKey,
		&u.UsageType,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting user %d: %w", userID, err)
	}
	return &u, nil
}

func (r *userRepo) UsedTokens(ctx context.Context, userID int64) (int64, error) {
	query := `SELECT COALESCE(SUM(usage_total_tokens), 0) FROM events WHERE user_id = $1`
	var total int64
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing used tokens for user %d: %w", userID, err)
	}
	return total, nil
}
