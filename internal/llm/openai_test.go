package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return newOpenAIProvider(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL + "/v1"}, "gpt-4o-mini")
}

func openAIReply(message map[string]any, finish string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{"index": 0, "message": message, "finish_reason": finish}},
			"usage":   map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
		})
	}
}

func openAIAPIError(status int, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": kind, "message": kind},
		})
	}
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	var sent openai.ChatCompletionRequest
	reply := openAIReply(map[string]any{"role": "assistant", "content": `{"reply":"Use df.rolling(20).mean()."}`}, "stop")
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&sent)
		reply(w, r)
	})

	resp, err := p.Generate(context.Background(), Request{
		System: "You are a quant finance tutor.",
		Messages: []Message{
			{Role: RoleAssistant, Content: "Hi! Ask me anything."},
			{Role: RoleUser, Content: "How do I compute a moving average?"},
		},
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.Equal(t, 40, resp.Usage.InputTokens)
	assert.Equal(t, 25, resp.Usage.OutputTokens)
	assert.Equal(t, StopEnd, resp.StopReason)

	// System prompt first, greeting dropped.
	require.Len(t, sent.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, sent.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, sent.Messages[1].Role)
}

func TestOpenAIProvider_Refusal(t *testing.T) {
	p := newTestOpenAIProvider(t, openAIReply(map[string]any{"role": "assistant", "refusal": "I can't help with that."}, "stop"))
	_, err := p.Generate(context.Background(), Request{Messages: pandasQuestion, MaxTokens: 100})

	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestOpenAIProvider_TruncatedReply(t *testing.T) {
	p := newTestOpenAIProvider(t, openAIReply(map[string]any{"role": "assistant", "content": `{"reply":"Use`}, "length"))
	_, err := p.Generate(context.Background(), Request{
		Messages:  pandasQuestion,
		Schema:    &Schema{Name: "openai-reply", Definition: map[string]any{"type": "object"}},
		MaxTokens: 4,
	})
	var maxTok *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &maxTok)
}

func TestOpenAIProvider_RateLimit(t *testing.T) {
	p := newTestOpenAIProvider(t, openAIAPIError(http.StatusTooManyRequests, "tokens"))
	_, err := p.Generate(context.Background(), Request{Messages: pandasQuestion, MaxTokens: 100})

	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)
}

func TestOpenAIProvider_ServerError(t *testing.T) {
	p := newTestOpenAIProvider(t, openAIAPIError(http.StatusInternalServerError, "server_error"))
	_, err := p.Generate(context.Background(), Request{Messages: pandasQuestion, MaxTokens: 100})

	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestNewOpenAIProvider(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{})
	assert.Error(t, err, "missing key")

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-4o", BaseURL: "https://openrouter.ai/api/v1"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", p.ModelID())
}
