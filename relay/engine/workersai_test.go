package engine

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dreamcanvas/dream-api/relay/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(server *httptest.Server) *WorkersAI {
	return &WorkersAI{
		BaseURL:   server.URL,
		AccountId: "acct-123",
		APIToken:  "token-abc",
		client:    server.Client(),
	}
}

func TestWorkersAIRunScalar(t *testing.T) {
	var gotPath, gotAuth, gotContentType, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte("IMAGEBYTES"))
	}))
	defer server.Close()

	e := newTestEngine(server)
	raw, err := e.Run(context.Background(), "@cf/lykon/dreamshaper-8-lcm", &strategy.NormalizedInput{
		Fields: map[string]any{"prompt": "a fox", "seed": 7},
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("IMAGEBYTES"), raw)
	assert.Equal(t, "/accounts/acct-123/ai/run/@cf/lykon/dreamshaper-8-lcm", gotPath)
	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"prompt":"a fox","seed":7}`, gotBody)
}

func TestWorkersAIRunMultipart(t *testing.T) {
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"image":"QQ=="}`))
	}))
	defer server.Close()

	input := &strategy.NormalizedInput{
		Body:        []byte("--b\r\n--b--\r\n"),
		ContentType: "multipart/form-data; boundary=b",
	}
	e := newTestEngine(server)
	_, err := e.Run(context.Background(), "@cf/leonardo/lucid-origin", input)
	require.NoError(t, err)
	assert.Equal(t, input.ContentType, gotContentType)
}

func TestWorkersAIRunUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"errors":[{"message":"quota exceeded"}]}`))
	}))
	defer server.Close()

	e := newTestEngine(server)
	_, err := e.Run(context.Background(), "@cf/lykon/dreamshaper-8-lcm", &strategy.NormalizedInput{
		Fields: map[string]any{"prompt": "a"},
	})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "429"))
	assert.True(t, strings.Contains(err.Error(), "quota exceeded"))
}
