package llm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// captureServer answers every request with body and remembers the last request
type captureServer struct {
	*httptest.Server
	mu   sync.Mutex
	path string
	body []byte
}

func newCaptureServer(t *testing.T, status int, body string) *captureServer {
	t.Helper()
	cs := &captureServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		cs.mu.Lock()
		cs.path = r.URL.Path
		cs.body = data
		cs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(cs.Close)
	return cs
}

func (cs *captureServer) request() (string, gjson.Result) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.path, gjson.ParseBytes(cs.body)
}

const claudeReply = `{
	"id": "msg_01",
	"type": "message",
	"role": "assistant",
	"model": "claude-3-5-haiku-latest",
	"content": [
		{"type": "text", "text": "Here you go: [{\"location\": \"Pune\", "},
		{"type": "text", "text": "\"jobs\": 420}] Anything else?"}
	],
	"stop_reason": "end_turn",
	"stop_sequence": null,
	"usage": {"input_tokens": 12, "output_tokens": 20}
}`

func newTestAnthropicClient(t *testing.T, status int, reply string) (*AnthropicClient, *captureServer) {
	t.Helper()
	cs := newCaptureServer(t, status, reply)
	config := DefaultAnthropicConfig()
	config.BaseURL = cs.URL + "/"
	client, err := NewAnthropicClient(config, "test-key")
	require.NoError(t, err)
	return client, cs
}

func TestAnthropicClient_GenerateJSON(t *testing.T) {
	client, cs := newTestAnthropicClient(t, http.StatusOK, claudeReply)

	text, err := client.GenerateJSON(context.Background(), "job market data", TierLite)
	require.NoError(t, err)
	assert.Equal(t, `[{"location": "Pune", "jobs": 420}]`, text)

	path, req := cs.request()
	assert.Equal(t, "/v1/messages", path)
	assert.Equal(t, "claude-3-5-haiku-latest", req.Get("model").String())
	assert.Equal(t, jsonOnlySystemPrompt, req.Get("system.0.text").String())
	assert.Equal(t, "job market data", req.Get("messages.0.content.0.text").String())
	assert.Equal(t, int64(4096), req.Get("max_tokens").Int())
}

func TestAnthropicClient_GenerateContent(t *testing.T) {
	client, cs := newTestAnthropicClient(t, http.StatusOK, claudeReply)

	text, err := client.GenerateContent(context.Background(), "improve this bullet", TierStandard)
	require.NoError(t, err)
	assert.Equal(t, `Here you go: [{"location": "Pune", "jobs": 420}] Anything else?`, text)

	_, req := cs.request()
	assert.False(t, req.Get("system").Exists())
	assert.Equal(t, "claude-sonnet-4-20250514", req.Get("model").String())
}

func TestAnthropicClient_NoTextBlocks(t *testing.T) {
	client, _ := newTestAnthropicClient(t, http.StatusOK, `{
		"id": "msg_02", "type": "message", "role": "assistant", "model": "claude-3-5-haiku-latest",
		"content": [], "stop_reason": "end_turn", "stop_sequence": null,
		"usage": {"input_tokens": 1, "output_tokens": 0}
	}`)

	_, err := client.GenerateContent(context.Background(), "hello", TierLite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}

func TestAnthropicClient_APIError(t *testing.T) {
	client, _ := newTestAnthropicClient(t, http.StatusBadRequest,
		`{"type": "error", "error": {"type": "invalid_request_error", "message": "bad prompt"}}`)

	_, err := client.GenerateJSON(context.Background(), "hello", TierLite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to call Claude API")
}

func chatCompletion(content string) string {
	return `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "gpt-4o",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": ` + content + `}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 10, "completion_tokens": 10, "total_tokens": 20}
	}`
}

func newTestOpenAIClient(t *testing.T, reply string) (*OpenAIClient, *captureServer) {
	t.Helper()
	cs := newCaptureServer(t, http.StatusOK, reply)
	config := DefaultOpenAIConfig()
	config.BaseURL = cs.URL
	client, err := NewOpenAIClient(config, "test-key")
	require.NoError(t, err)
	return client, cs
}

func TestOpenAIClient_GenerateJSON(t *testing.T) {
	client, cs := newTestOpenAIClient(t, chatCompletion(`"{\"data\": [{\"skill\": \"Go\"}]}"`))

	text, err := client.GenerateJSON(context.Background(), "skill demand as JSON", TierLite)
	require.NoError(t, err)
	assert.Equal(t, `{"data": [{"skill": "Go"}]}`, text)

	path, req := cs.request()
	assert.Equal(t, "/chat/completions", path)
	assert.Equal(t, "gpt-4o-mini", req.Get("model").String())
	assert.Equal(t, "json_object", req.Get("response_format.type").String())
	assert.Contains(t, req.Get("messages.0").Raw, "skill demand as JSON")
}

func TestOpenAIClient_GenerateContent(t *testing.T) {
	client, cs := newTestOpenAIClient(t, chatCompletion(`"Led migration of 40 services to Kubernetes"`))

	text, err := client.GenerateContent(context.Background(), "improve this bullet", TierAdvanced)
	require.NoError(t, err)
	assert.Equal(t, "Led migration of 40 services to Kubernetes", text)

	_, req := cs.request()
	assert.Equal(t, "gpt-4.1", req.Get("model").String())
	assert.NotEqual(t, "json_object", req.Get("response_format.type").String())
}

func TestExtractTextFromResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{
				genai.Text(`{"english": [], `),
				genai.Blob{MIMEType: "image/png", Data: []byte{0x1}},
				genai.Text(`"hindi": []}`),
			}},
		}},
	}

	text, err := extractTextFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"english": [], "hindi": []}`, text)
}

func TestExtractTextFromResponse_Empty(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil response", nil, "no candidates"},
		{"no candidates", &genai.GenerateContentResponse{}, "no candidates"},
		{"no content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, "no content"},
		{"no text parts", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}},
		}}}, "no text parts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractTextFromResponse(tt.resp)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
