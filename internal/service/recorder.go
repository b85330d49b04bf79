package service

import (
	"context"
	"sync"

	"gptbot/internal/model"
	"gptbot/internal/repository"

	"github.com/rs/zerolog"
)

// transcriptionModel is the fixed model label stored on transcription
// events; the transcription call site does not report its model.
const transcriptionModel = "whisper-1"

// EventRecorder is the telemetry facade. Every Record method schedules its
// writes on a detached goroutine and returns immediately: completion is
// not observable by the caller, and failures are logged with the request's
// chat/user context instead of being returned. Telemetry must never delay
// or break the conversational flow.
type EventRecorder struct {
	events       repository.EventRepository
	messages     repository.MessageRepository
	noAnswerText string
	logger       zerolog.Logger

	wg sync.WaitGroup
}

func NewEventRecorder(events repository.EventRepository, messages repository.MessageRepository, noAnswerText string, logger zerolog.Logger) *EventRecorder {
	return &EventRecorder{
		events:       events,
		messages:     messages,
		noAnswerText: noAnswerText,
		logger:       logger.With().Str("service", "EventRecorder").Logger(),
	}
}

// Wait blocks until all scheduled writes have finished. Intended for
// graceful shutdown; regular callers never wait.
func (r *EventRecorder) Wait() {
	r.wg.Wait()
}

// AssistantReply stores the assistant's answer as a conversation turn and
// records the matching assistant_message event. The two writes are
// independent; neither is ordered before the other.
func (r *EventRecorder) AssistantReply(meta *model.Meta, result *model.CompletionResult, creds model.Credentials) {
	logger := r.requestLogger(meta)

	answer := ""
	if result != nil {
		answer = result.Content
	}
	if answer == "" {
		answer = r.noAnswerText
	}

	if meta == nil || meta.Chat == nil {
		logger.Error().Err(ErrNoChat).Msg("error in saving the answer to the database")
		return
	}
	chatID := meta.Chat.ID

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if _, err := r.messages.Insert(context.Background(), model.RoleAssistant, answer, chatID, nil); err != nil {
			logger.Error().Err(err).Msg("error in saving the answer to the database")
		}
	}()

	e := r.baseEvent(meta, model.EventAssistantMessage)
	e.MessageRole = ptr(model.RoleAssistant)
	e.MessagesType = ptr("text")
	e.ContentLength = ptr(len(answer))
	if result != nil {
		e.UsageModel = nonEmpty(result.Model)
		e.UsageObject = nonEmpty(result.Object)
		if result.Usage != nil {
			e.UsageCompletionTokens = ptr(result.Usage.CompletionTokens)
			e.UsagePromptTokens = ptr(result.Usage.PromptTokens)
			e.UsageTotalTokens = ptr(result.Usage.TotalTokens)
		}
	}
	e.APIKey = nonEmpty(creds.OpenAIKey)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		stored, err := r.events.Insert(context.Background(), e)
		if err != nil {
			logger.Error().Err(err).Msg("error in saving the answer event to the database")
			return
		}
		success := logger.Info()
		if stored.UsageTotalTokens != nil {
			success = success.Int("total_tokens", *stored.UsageTotalTokens)
		}
		success.Msg("answer saved to the database")
	}()
}

// Command records a user-issued bot command.
func (r *EventRecorder) Command(meta *model.Meta, command string) {
	e := r.baseEvent(meta, model.EventUserCommand)
	e.MessageRole = ptr(model.RoleUser)
	e.MessagesType = ptr("text")
	e.MessageCommand = ptr(command)

	r.submit(meta, e, command+" saved to the database")
}

// Simple records an event carrying nothing beyond its type and the
// role/message-type descriptors.
func (r *EventRecorder) Simple(meta *model.Meta, eventType, messageRole, messagesType string) {
	e := r.baseEvent(meta, eventType)
	e.MessageRole = ptr(messageRole)
	e.MessagesType = ptr(messagesType)

	r.submit(meta, e, messageRole+" saved to the database")
}

// UserMessage records an incoming user message of the given type. The
// voice duration is captured only for voice messages.
func (r *EventRecorder) UserMessage(meta *model.Meta, eventType, messageType, content string) {
	e := r.baseEvent(meta, eventType)
	e.MessageRole = ptr(model.RoleUser)
	e.MessagesType = ptr(messageType)
	e.ContentLength = ptr(len(content))
	if messageType == "voice" && meta != nil {
		e.MessageVoiceDuration = meta.VoiceDuration
	}

	r.submit(meta, e, messageType+" saved to the database")
}

// Transcription records a voice-to-text transcription and which API key
// paid for it.
func (r *EventRecorder) Transcription(meta *model.Meta, text string, creds model.Credentials) {
	e := r.baseEvent(meta, model.EventModelTranscription)
	e.ContentLength = ptr(len(text))
	e.UsageModel = ptr(transcriptionModel)
	e.APIKey = nonEmpty(creds.OpenAIKey)

	r.submit(meta, e, "model_transcription saved to the database")
}

// submit schedules the event insert and returns without waiting on it.
func (r *EventRecorder) submit(meta *model.Meta, e *model.Event, successMsg string) {
	logger := r.requestLogger(meta)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if _, err := r.events.Insert(context.Background(), e); err != nil {
			logger.Error().Err(err).Str("event_type", e.Type).Msg("error in saving the event to the database")
			return
		}
		logger.Info().Msg(successMsg)
	}()
}

// baseEvent snapshots the user and chat identity out of the request
// context; either part may be missing.
func (r *EventRecorder) baseEvent(meta *model.Meta, eventType string) *model.Event {
	e := &model.Event{Type: eventType}
	if meta == nil {
		return e
	}
	if meta.From != nil {
		e.UserID = ptr(meta.From.ID)
		e.UserIsBot = ptr(meta.From.IsBot)
		e.UserLanguageCode = nonEmpty(meta.From.LanguageCode)
		e.UserUsername = nonEmpty(meta.From.Username)
	}
	if meta.Chat != nil {
		e.ChatID = ptr(meta.Chat.ID)
		e.ChatType = nonEmpty(meta.Chat.Type)
	}
	return e
}

func (r *EventRecorder) requestLogger(meta *model.Meta) zerolog.Logger {
	logger := r.logger
	if meta != nil && meta.Chat != nil {
		logger = logger.With().Int64("chat_id", meta.Chat.ID).Logger()
	}
	if meta != nil && meta.From != nil {
		logger = logger.With().Int64("user_id", meta.From.ID).Logger()
	}
	return logger
}

func ptr[T any](v T) *T {
	return &v
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
