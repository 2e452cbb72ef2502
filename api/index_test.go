package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandler_Liveness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("REQUIRE_API_KEY", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("FRONTEND_URL", "https://captions.example.com")
	t.Setenv("LIVENESS_MESSAGE", "Caption relay running on Vercel!")

	w := httptest.NewRecorder()
	Handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Caption relay running on Vercel!"}`, w.Body.String())

	// Without a key the relay answers with a structured error instead of crashing.
	w = httptest.NewRecorder()
	Handler(w, httptest.NewRequest(http.MethodPost, "/generate-caption/", strings.NewReader(`{"prompt": "a sunset"}`)))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "caption\"")
}
