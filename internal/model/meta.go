package model

// Meta carries the request context the bot layer hands down with each
// call: who wrote, in which chat, and per-message metadata. Any part may
// be missing (e.g. channel posts have no sender).
type Meta struct {
	Chat *ChatMeta
	From *SenderMeta

	// VoiceDuration is set when the incoming message was a voice note.
	VoiceDuration *int
}

type ChatMeta struct {
	ID   int64
	Type string
}

type SenderMeta struct {
	ID           int64
	IsBot        bool
	LanguageCode string
	Username     string
}

// CompletionResult is the shape of a model response the recorder consumes:
// the generated text plus usage counters. Usage may be absent.
type CompletionResult struct {
	Content string
	Model   string
	Object  string
	Usage   *TokenUsage
}

type TokenUsage struct {
	CompletionTokens int
	PromptTokens     int
	TotalTokens      int
}

// Credentials identifies which API key a model call was billed against.
type Credentials struct {
	OpenAIKey string
}
