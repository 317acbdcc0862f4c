// Package llm talks to the hosted models behind the AI assistant. Each
// vendor adapter is a Provider; retry and event logging wrap it as
// decorators built by NewProvider.
package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider answers one request. When the request carries a Schema the
// returned Content has already been validated against it.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

var (
	_ Provider = (*AnthropicProvider)(nil)
	_ Provider = (*OpenAIProvider)(nil)
	_ Provider = (*OpenRouterProvider)(nil)
	_ Provider = (*GeminiProvider)(nil)
	_ Provider = (*FuncProvider)(nil)
	_ Provider = (*MockProvider)(nil)
	_ Provider = (*RetryProvider)(nil)
	_ Provider = (*LoggingProvider)(nil)
)

type Request struct {
	System   string
	Messages []Message

	// Schema asks for JSON output through the vendor's structured output
	// mode. Without it Content is the reply text.
	Schema *Schema

	MaxTokens   int
	Temperature float64 // 0 leaves the vendor default
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

// Schema is a named JSON Schema. Name doubles as the Anthropic tool name and
// the OpenAI schema name, and keys the compiled-validator cache, so it must
// be unique per definition ("assistant-reply").
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string // model that actually served the call
	StopReason string // StopEnd or StopMaxTokens
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// normalizeMessages drops blank and leading assistant turns and merges
// consecutive turns from the same role. The vendor APIs expect a
// conversation that opens with the user and alternates; a failed question
// leaves two user turns in a row.
func normalizeMessages(msgs []Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		text := strings.TrimSpace(m.Content)
		if text == "" {
			continue
		}
		if len(out) == 0 && m.Role != RoleUser {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Role == m.Role {
			out[n-1].Content += "\n\n" + text
			continue
		}
		out = append(out, Message{Role: m.Role, Content: text})
	}
	return out
}

// finishResponse applies the checks shared by every adapter. Truncated
// structured output is reported as ErrMaxTokensExceeded.
func finishResponse(req Request, resp *Response) (*Response, error) {
	if req.Schema == nil {
		return resp, nil
	}
	if resp.StopReason == StopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: resp.Content}
	}
	if err := validateResponse(req.Schema, resp.Content); err != nil {
		return nil, err
	}
	return resp, nil
}
