package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docverify/internal/handler"
)

func TestDocumentTypes_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/document-types", handler.NewDocumentTypesHandler().List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/document-types", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			Type   string `json:"type"`
			Fields []struct {
				Key   string `json:"key"`
				Label string `json:"label"`
			} `json:"fields"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 4)
	assert.Equal(t, "sale", resp.Data[0].Type)
	assert.Equal(t, "gift", resp.Data[1].Type)
	assert.Equal(t, "rental", resp.Data[2].Type)
	assert.Equal(t, "authority", resp.Data[3].Type)

	for _, dt := range resp.Data {
		assert.NotEmpty(t, dt.Fields, dt.Type)
		for _, f := range dt.Fields {
			assert.NotEmpty(t, f.Key)
			assert.NotEmpty(t, f.Label)
		}
	}
}

func TestHealth_Probes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := handler.NewHealthHandler()
	r := gin.New()
	r.GET("/healthz", h.Liveness)
	r.GET("/readyz", h.Readiness)

	for _, path := range []string{"/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
