package conversation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoer struct {
	status  int
	body    string
	lastReq *http.Request
	err     error
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

func completionBody(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(body)
}

func TestCompleteSuccess(t *testing.T) {
	doer := &fakeDoer{status: http.StatusOK, body: completionBody("Merhaba, size nasıl yardımcı olabilirim?")}
	client := NewOpenRouterClient("test-key", "", "http://localhost:8080", doer)

	resp, err := client.Complete(context.Background(), LLMRequest{
		Messages: []ChatMessage{{Role: ChatRoleUser, Content: "merhaba"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Merhaba, size nasıl yardımcı olabilirim?", resp.Text)

	require.NotNil(t, doer.lastReq)
	assert.Equal(t, "https://openrouter.ai/api/v1/chat/completions", doer.lastReq.URL.String())
	assert.Equal(t, "Bearer test-key", doer.lastReq.Header.Get("Authorization"))
	assert.Equal(t, "http://localhost:8080", doer.lastReq.Header.Get("HTTP-Referer"))
	assert.Equal(t, "Galeri AI Asistan", doer.lastReq.Header.Get("X-Title"))
}

func TestCompleteUsesDefaultModel(t *testing.T) {
	doer := &fakeDoer{status: http.StatusOK, body: completionBody("tamam")}
	client := NewOpenRouterClient("test-key", "", "", doer)

	_, err := client.Complete(context.Background(), LLMRequest{
		Messages: []ChatMessage{{Role: ChatRoleUser, Content: "merhaba"}},
	})
	require.NoError(t, err)

	payload, err := io.ReadAll(doer.lastReq.Body)
	require.NoError(t, err)
	var sent chatCompletionsRequest
	require.NoError(t, json.Unmarshal(payload, &sent))
	assert.Equal(t, "openai/gpt-3.5-turbo", sent.Model)
}

func TestCompleteEmptyAPIKey(t *testing.T) {
	client := NewOpenRouterClient("", "", "", &fakeDoer{})

	_, err := client.Complete(context.Background(), LLMRequest{
		Messages: []ChatMessage{{Role: ChatRoleUser, Content: "merhaba"}},
	})
	assert.ErrorContains(t, err, "OPENROUTER_API_KEY")
}

func TestCompleteAPIError(t *testing.T) {
	doer := &fakeDoer{status: http.StatusTooManyRequests, body: `{"error":{"message":"rate limited"}}`}
	client := NewOpenRouterClient("test-key", "", "", doer)

	_, err := client.Complete(context.Background(), LLMRequest{
		Messages: []ChatMessage{{Role: ChatRoleUser, Content: "merhaba"}},
	})
	assert.ErrorContains(t, err, "rate limited")
}

func TestCompleteNoChoices(t *testing.T) {
	doer := &fakeDoer{status: http.StatusOK, body: `{"choices":[]}`}
	client := NewOpenRouterClient("test-key", "", "", doer)

	_, err := client.Complete(context.Background(), LLMRequest{
		Messages: []ChatMessage{{Role: ChatRoleUser, Content: "merhaba"}},
	})
	assert.ErrorContains(t, err, "no choices")
}

func TestCompleteCustomBaseURL(t *testing.T) {
	doer := &fakeDoer{status: http.StatusOK, body: completionBody("ok")}
	client := NewOpenRouterClient("test-key", "https://example.test/v1/", "", doer)

	_, err := client.Complete(context.Background(), LLMRequest{
		Messages: []ChatMessage{{Role: ChatRoleUser, Content: "merhaba"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/v1/chat/completions", doer.lastReq.URL.String())
}
