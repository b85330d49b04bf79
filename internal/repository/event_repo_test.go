package repository

import (
	"context"
	"testing"
	"time"

	"gptbot/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertEventAssignsServerTime(t *testing.T) {
	pool := testPool(t)
	events := NewEventRepo(pool)
	ctx := context.Background()

	userID := uniqueID()
	cleanupUser(t, pool, userID)

	callerTime := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	stored, err := events.Insert(ctx, &model.Event{
		Time:   callerTime,
		Type:   model.EventUserCommand,
		UserID: i64p(userID),
	})
	require.NoError(t, err)

	assert.False(t, stored.Time.Equal(callerTime), "caller-supplied time must be ignored")
	assert.WithinDuration(t, time.Now(), stored.Time, time.Minute)
}

func TestInsertEventRoundTripsAllFields(t *testing.T) {
	pool := testPool(t)
	events := NewEventRepo(pool)
	ctx := context.Background()

	userID := uniqueID()
	cleanupUser(t, pool, userID)

	isBot := false
	in := &model.Event{
		Type:                  model.EventAssistantMessage,
		UserID:                i64p(userID),
		UserIsBot:             &isBot,
		UserLanguageCode:      strp("en"),
		UserUsername:          strp("dave"),
		ChatID:                i64p(42),
		ChatType:              strp("private"),
		MessageRole:           strp(model.RoleAssistant),
		MessagesType:          strp("text"),
		MessageVoiceDuration:  intp(9),
		MessageCommand:        strp("/ask"),
		ContentLength:         intp(11),
		UsageModel:            strp("gpt-4"),
		UsageObject:           strp("chat.completion"),
		UsageCompletionTokens: intp(3),
		UsagePromptTokens:     intp(5),
		UsageTotalTokens:      intp(8),
		APIKey:                strp("sk-test"),
	}

	stored, err := events.Insert(ctx, in)
	require.NoError(t, err)

	assert.NotZero(t, stored.ID)
	assert.Equal(t, in.Type, stored.Type)
	assert.Equal(t, in.UserID, stored.UserID)
	assert.Equal(t, in.UserIsBot, stored.UserIsBot)
	assert.Equal(t, in.UserLanguageCode, stored.UserLanguageCode)
	assert.Equal(t, in.ChatID, stored.ChatID)
	assert.Equal(t, in.MessageVoiceDuration, stored.MessageVoiceDuration)
	assert.Equal(t, in.UsageTotalTokens, stored.UsageTotalTokens)
	assert.Equal(t, in.APIKey, stored.APIKey)
}

func TestInsertEventMinimalFields(t *testing.T) {
	pool := testPool(t)
	events := NewEventRepo(pool)
	ctx := context.Background()

	userID := uniqueID()
	cleanupUser(t, pool, userID)

	stored, err := events.Insert(ctx, &model.Event{
		Type:   "user_message",
		UserID: i64p(userID),
	})
	require.NoError(t, err)

	assert.Equal(t, "user_message", stored.Type)
	assert.Nil(t, stored.ChatID)
	assert.Nil(t, stored.UsageTotalTokens)
	assert.Nil(t, stored.APIKey)
}
