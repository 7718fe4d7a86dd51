package chatbotControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIntents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/chatbot/intents", GetIntents())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chatbot/intents", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status bool     `json:"status"`
		Data   []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Equal(t, Intents, resp.Data)
	assert.Contains(t, resp.Data, IntentTrackOrder)
	assert.Contains(t, resp.Data, IntentFindByBrand)
}
