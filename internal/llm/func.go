package llm

import (
	"context"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// ResponderFunc produces a reply to a request without calling a model.
// When the request has a Schema the returned content must satisfy it.
type ResponderFunc func(ctx context.Context, req Request) (json.RawMessage, error)

// FuncProvider adapts a ResponderFunc to the Provider interface. Output is
// validated against the request schema like any remote provider's, and
// token usage is estimated at four bytes per token.
type FuncProvider struct {
	model string
	fn    ResponderFunc
}

// NewFuncProvider creates a FuncProvider reporting the given model ID.
func NewFuncProvider(model string, fn ResponderFunc) *FuncProvider {
	return &FuncProvider{model: model, fn: fn}
}

func (p *FuncProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := p.fn(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}

	in := estimateTokens(req.System)
	for _, m := range req.Messages {
		in += estimateTokens(m.Content)
	}
	out := estimateTokens(string(content))

	return &Response{
		Content:    content,
		Usage:      Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out},
		Model:      p.model,
		StopReason: StopEnd,
	}, nil
}

func (p *FuncProvider) ModelID() string {
	return p.model
}

// LastUserMessage returns the content of the most recent user message.
func LastUserMessage(req Request) string {
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == RoleUser {
			return req.Messages[i].Content
		}
	}
	return ""
}

func estimateTokens(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	return (utf8.RuneCountInString(s) + 3) / 4
}
