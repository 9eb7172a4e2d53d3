package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, replyText string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "user", req.Contents[0].Role)
		assert.Len(t, req.SafetySettings, 4)
		assert.Equal(t, 1024, req.GenerationConfig.MaxOutputTokens)

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		resp := generateResponse{}
		resp.Candidates = []struct {
			Content content `json:"content"`
		}{
			{Content: content{Role: "model", Parts: []part{{Text: replyText}}}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestChatGenerate_Text(t *testing.T) {
	srv := chatServer(t, "Hello there!", http.StatusOK)
	defer srv.Close()

	svc := NewChatService(srv.URL, "test-key", "gemini-pro")
	reply, err := svc.Generate(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello there!", reply.Text)
	assert.Equal(t, "text", reply.Type)
	assert.False(t, reply.IsExplanation)
}

func TestChatGenerate_CodeAndExplanation(t *testing.T) {
	srv := chatServer(t, "Explanation: use a loop.\n```go\nfor {}\n```", http.StatusOK)
	defer srv.Close()

	svc := NewChatService(srv.URL, "test-key", "gemini-pro")
	reply, err := svc.Generate(context.Background(), "how do I loop")
	require.NoError(t, err)
	assert.Equal(t, "code", reply.Type)
	assert.True(t, reply.IsExplanation)
}

func TestChatGenerate_ProviderFailure(t *testing.T) {
	srv := chatServer(t, "", http.StatusTooManyRequests)
	defer srv.Close()

	svc := NewChatService(srv.URL, "test-key", "gemini-pro")
	_, err := svc.Generate(context.Background(), "hi")
	assert.Error(t, err)
}

func TestClassifyReply(t *testing.T) {
	assert.Equal(t, "code", classifyReply("see ```python\nprint(1)\n```"))
	assert.Equal(t, "text", classifyReply("plain answer"))
	assert.True(t, isExplanation("Here's how: do the thing"))
	assert.False(t, isExplanation("no hints here"))
}
