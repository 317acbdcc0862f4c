// Package assistant implements the learning chat. Questions go to the
// configured LLM provider; when none is configured, or when it fails, a
// keyword responder answers instead.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alphaquant/academy/internal/llm"
)

// ErrBlankQuestion is returned by Ask for empty or whitespace-only input.
var ErrBlankQuestion = errors.New("blank question")

// Purpose tags assistant requests in the LLM event log.
const Purpose = "assistant"

// Message is one chat entry.
type Message struct {
	Role    llm.Role
	Content string
}

// Config tunes model requests.
type Config struct {
	MaxTokens   int
	Temperature float64
	// HistoryLimit caps how many prior messages are sent with a question.
	HistoryLimit int
}

// DefaultConfig returns the assistant defaults.
func DefaultConfig() Config {
	return Config{MaxTokens: 1024, Temperature: 0.3, HistoryLimit: 12}
}

// Option customizes an Assistant.
type Option func(*Assistant)

// WithLogger sets the logger used for provider failures.
func WithLogger(l *zap.Logger) Option {
	return func(a *Assistant) { a.logger = l }
}

// WithConfig overrides DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(a *Assistant) { a.cfg = cfg }
}

// Assistant holds one conversation. It is safe for concurrent use.
type Assistant struct {
	provider llm.Provider
	fallback llm.Provider
	cfg      Config
	logger   *zap.Logger
	session  string

	mu      sync.Mutex
	history []Message
}

// New creates an Assistant that asks provider. A nil provider means only
// canned replies are given.
func New(provider llm.Provider, opts ...Option) *Assistant {
	a := &Assistant{
		provider: provider,
		fallback: NewCannedProvider(),
		cfg:      DefaultConfig(),
		logger:   zap.NewNop(),
		session:  uuid.NewString(),
		history:  []Message{{Role: llm.RoleAssistant, Content: Greeting}},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.provider == nil {
		a.provider = a.fallback
	}
	return a
}

// Session identifies this conversation in logs.
func (a *Assistant) Session() string {
	return a.session
}

// History returns a copy of the conversation, greeting first.
func (a *Assistant) History() []Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Message, len(a.history))
	copy(out, a.history)
	return out
}

// Ask appends text as a user message, obtains a reply and appends it.
// Blank input is ignored with ErrBlankQuestion. If the provider fails the
// canned responder answers; an error is returned only when both fail.
func (a *Assistant) Ask(ctx context.Context, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrBlankQuestion
	}

	a.mu.Lock()
	a.history = append(a.history, Message{Role: llm.RoleUser, Content: text})
	req := a.buildRequest()
	a.mu.Unlock()

	ctx = llm.WithPurpose(ctx, Purpose)

	reply, err := a.generate(ctx, a.provider, req)
	if err != nil && a.provider != a.fallback {
		a.logger.Warn("assistant provider failed, using canned reply",
			zap.String("session", a.session),
			zap.String("model", a.provider.ModelID()),
			zap.Error(err))
		reply, err = a.generate(ctx, a.fallback, req)
	}
	if err != nil {
		return Message{}, err
	}

	msg := Message{Role: llm.RoleAssistant, Content: reply}
	a.mu.Lock()
	a.history = append(a.history, msg)
	a.mu.Unlock()
	return msg, nil
}

// Reset starts a new conversation with the greeting only.
func (a *Assistant) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = []Message{{Role: llm.RoleAssistant, Content: Greeting}}
	a.session = uuid.NewString()
}

// buildRequest must be called with a.mu held. The greeting is not sent;
// providers expect the conversation to open with a user turn.
func (a *Assistant) buildRequest() llm.Request {
	msgs := a.history[1:]
	if limit := a.cfg.HistoryLimit; limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	// Trim to start on a user message after windowing.
	for len(msgs) > 0 && msgs[0].Role != llm.RoleUser {
		msgs = msgs[1:]
	}

	out := make([]llm.Message, len(msgs))
	for i, m := range msgs {
		out[i] = llm.Message{Role: m.Role, Content: m.Content}
	}
	return llm.Request{
		System:      systemPrompt,
		Messages:    out,
		Schema:      ReplySchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}
}

func (a *Assistant) generate(ctx context.Context, p llm.Provider, req llm.Request) (string, error) {
	resp, err := p.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("assistant reply: %w", err)
	}
	var out replyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse assistant reply: %w", err)
	}
	if strings.TrimSpace(out.Reply) == "" {
		return "", fmt.Errorf("assistant reply: empty")
	}
	return out.Reply, nil
}
