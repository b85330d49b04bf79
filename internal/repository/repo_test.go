package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"gptbot/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// testPool connects to the database named by TEST_DATABASE_URL and makes
// sure the schema exists. Tests are skipped when the variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL is not set, skip database integration test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, storage.Schema)
	require.NoError(t, err)

	return pool
}

// uniqueID hands out ids that do not collide across test runs sharing a
// database.
func uniqueID() int64 {
	return time.Now().UnixNano()
}

func cleanupUser(t *testing.T, pool *pgxpool.Pool, userID int64) {
	t.Helper()
	t.Cleanup(func() {
		ctx := context.Background()
		_, _ = pool.Exec(ctx, `DELETE FROM events WHERE user_id = $1`, userID)
		_, _ = pool.Exec(ctx, `DELETE FROM messages WHERE user_id = (SELECT id FROM users WHERE user_id = $1)`, userID)
		_, _ = pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	})
}

func cleanupChat(t *testing.T, pool *pgxpool.Pool, chatID int64) {
	t.Helper()
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM messages WHERE chat_id = $1`, chatID)
	})
}

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }
func i64p(n int64) *int64   { return &n }
