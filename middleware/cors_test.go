package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func preflight(t *testing.T, method string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(CORS())
	server.POST("/api/generate", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/generate", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", method)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func TestCORSPreflight(t *testing.T) {
	w := preflight(t, http.MethodPost)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Equal(t, "http://example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflightRejectsUnservedMethod(t *testing.T) {
	w := preflight(t, http.MethodDelete)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Methods"))
}
