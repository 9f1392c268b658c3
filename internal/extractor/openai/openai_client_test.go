package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docverify/internal/config"
	"docverify/internal/domain"
	"docverify/internal/extractor"
	"docverify/internal/extractor/openai"
	"docverify/internal/port"
)

func newTestClient(serverURL string) *openai.Client {
	cfg := &config.ExtractorProviderConfig{
		Provider:     "openai",
		APIKey:       "test-openai-key",
		DefaultModel: "gpt-4o",
		TimeoutSecs:  30,
	}
	return openai.NewClientWithEndpoint(cfg, serverURL)
}

func successResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message":       map[string]interface{}{"role": "assistant", "content": text},
				"finish_reason": "stop",
			},
		},
	}
}

func TestClient_Extract_PDF_Success(t *testing.T) {
	modelJSON := `{"rentAmount":"10000","pageSummaries":["One page."]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-openai-key", r.Header.Get("Authorization"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "gpt-4o", reqBody["model"])

		respFormat := reqBody["response_format"].(map[string]interface{})
		assert.Equal(t, "json_object", respFormat["type"])

		messages := reqBody["messages"].([]interface{})
		require.Len(t, messages, 1)
		content := messages[0].(map[string]interface{})["content"].([]interface{})
		require.Len(t, content, 2)

		fileBlock := content[0].(map[string]interface{})
		assert.Equal(t, "file", fileBlock["type"])
		fileData := fileBlock["file"].(map[string]interface{})["file_data"].(string)
		assert.True(t, strings.HasPrefix(fileData, "data:application/pdf;base64,"))

		textBlock := content[1].(map[string]interface{})
		assert.Contains(t, textBlock["text"], "must conform to this schema")

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
	assert.Equal(t, "gpt-4o", out.ModelUsed)
}

func TestClient_Extract_ImageUsesImageURLBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))

		content := reqBody["messages"].([]interface{})[0].(map[string]interface{})["content"].([]interface{})
		imageBlock := content[0].(map[string]interface{})
		assert.Equal(t, "image_url", imageBlock["type"])
		url := imageBlock["image_url"].(map[string]interface{})["url"].(string)
		assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(`{}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.Extract(context.Background(), port.ExtractInput{
		FileBytes:   []byte{0x89, 0x50, 0x4E, 0x47},
		ContentType: "image/png",
		Instruction: "Extract.",
	})

	require.NoError(t, err)
}

func TestClient_Extract_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"choices":[]}`))
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
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_exceeded"}}`))
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
	assert.Equal(t, "openai", rlErr.Provider)
}
