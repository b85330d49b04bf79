package service

import (
	"context"
	"sync"

	"gptbot/internal/model"
)

type fakeEventRepo struct {
	mu     sync.Mutex
	err    error
	events []*model.Event
}

func (f *fakeEventRepo) Insert(ctx context.Context, e *model.Event) (*model.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
	return e, nil
}

func (f *fakeEventRepo) all() []*model.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*model.Event(nil), f.events...)
}

type insertedMessage struct {
	Role    string
	Content string
	ChatID  int64
	UserID  *int64
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	err      error
	recent   []model.ChatMessage
	inserted []insertedMessage
}

func (f *fakeMessageRepo) Insert(ctx context.Context, role, content string, chatID int64, userID *int64) (*model.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, insertedMessage{Role: role, Content: content, ChatID: chatID, UserID: userID})
	return &model.Message{Role: role, Content: content, ChatID: chatID, UserID: userID, IsActive: true}, nil
}

func (f *fakeMessageRepo) ListRecent(ctx context.Context, chatID int64) ([]model.ChatMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.recent, nil
}

func (f *fakeMessageRepo) DeleteByChatID(ctx context.Context, chatID int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.inserted)), nil
}

func (f *fakeMessageRepo) DeactivateByChatID(ctx context.Context, chatID int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.inserted)), nil
}

func (f *fakeMessageRepo) allInserted() []insertedMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]insertedMessage(nil), f.inserted...)
}

type fakeUserRepo struct {
	err      error
	upserted *model.User
	stored   *model.User
	tokens   int64
}

func (f *fakeUserRepo) Upsert(ctx context.Context, u *model.User) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.upserted = u
	return u, nil
}

func (f *fakeUserRepo) GetByUserID(ctx context.Context, userID int64) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stored, nil
}

func (f *fakeUserRepo) UsedTokens(ctx context.Context, userID int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.tokens, nil
}
