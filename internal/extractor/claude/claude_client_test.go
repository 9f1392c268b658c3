package claude_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docverify/internal/config"
	"docverify/internal/domain"
	"docverify/internal/extractor"
	"docverify/internal/extractor/claude"
	"docverify/internal/port"
)

func newTestClient(serverURL string) *claude.Client {
	cfg := &config.ExtractorProviderConfig{
		Provider:     "claude",
		APIKey:       "test-claude-key",
		DefaultModel: "claude-sonnet-4-20250514",
		TimeoutSecs:  30,
	}
	return claude.NewClientWithEndpoint(cfg, serverURL)
}

func successResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"content": []map[string]interface{}{
			{"type": "text", "text": text},
		},
		"stop_reason": "end_turn",
	}
}

func TestClient_Extract_PDF_Success(t *testing.T) {
	modelJSON := `{"rentAmount":"10000","pageSummaries":["One page."]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-claude-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "claude-sonnet-4-20250514", reqBody["model"])

		content := reqBody["messages"].([]interface{})[0].(map[string]interface{})["content"].([]interface{})
		require.Len(t, content, 2)

		docBlock := content[0].(map[string]interface{})
		assert.Equal(t, "document", docBlock["type"])
		source := docBlock["source"].(map[string]interface{})
		assert.Equal(t, "base64", source["type"])
		assert.Equal(t, "application/pdf", source["media_type"])
		assert.NotEmpty(t, source["data"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(modelJSON))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	out, err := c.Extract(context.Background(), port.ExtractInput{
		FileBytes:      []byte("%PDF-1.4 test content"),
		ContentType:    "application/pdf",
		Instruction:    "Extract the rental agreement fields.",
		ResponseSchema: json.RawMessage(`{"type":"OBJECT"}`),
	})

	require.NoError(t, err)
	assert.Equal(t, modelJSON, out.RawText)
	assert.Equal(t, "claude-sonnet-4-20250514", out.ModelUsed)
}

func TestClient_Extract_PicksFirstTextBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"content":[{"type":"thinking","thinking":"hmm"},{"type":"text","text":"{\"a\":1}"}]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	out, err := c.Extract(context.Background(), port.ExtractInput{
		FileBytes:   []byte("%PDF-1.4"),
		ContentType: "application/pdf",
		Instruction: "Extract.",
	})

	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, out.RawText)
}

func TestClient_Extract_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	out, err := c.Extract(context.Background(), port.ExtractInput{
		FileBytes:   []byte("%PDF-1.4"),
		ContentType: "application/pdf",
		Instruction: "Extract.",
	})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrExtractionEmptyResponse)
}

func TestClient_Extract_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "15")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error"}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.Extract(context.Background(), port.ExtractInput{
		FileBytes:   []byte("%PDF-1.4"),
		ContentType: "application/pdf",
		Instruction: "Extract.",
	})

	require.Error(t, err)
	var rlErr *extractor.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "claude", rlErr.Provider)
	assert.Equal(t, float64(15), rlErr.RetryAfter.Seconds())
}
