package controller

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dreamcanvas/dream-api/common/config"
	"github.com/dreamcanvas/dream-api/middleware"
	"github.com/dreamcanvas/dream-api/relay/strategy"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	calls        int
	lastModelKey string
	lastInput    *strategy.NormalizedInput
	response     []byte
	err          error
}

func (f *fakeEngine) Run(ctx context.Context, modelKey string, input *strategy.NormalizedInput) ([]byte, error) {
	f.calls++
	f.lastModelKey = modelKey
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func setupTest(t *testing.T, fake *fakeEngine) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	original := imageEngine
	imageEngine = fake
	t.Cleanup(func() { imageEngine = original })

	router := gin.New()
	router.POST("/api/generate", middleware.PasswordAuth(), RelayImageGenerate)
	return router
}

func generate(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateFastModelEndToEnd(t *testing.T) {
	envelope, err := json.Marshal(map[string]string{
		"image": base64.StdEncoding.EncodeToString([]byte("PNGDATA")),
	})
	require.NoError(t, err)
	fake := &fakeEngine{response: envelope}
	router := setupTest(t, fake)

	w := generate(router, `{"prompt":"a","model":"flux-1-schnell"}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "PNGDATA", w.Body.String())

	require.Equal(t, 1, fake.calls)
	assert.Equal(t, "@cf/black-forest-labs/flux-1-schnell", fake.lastModelKey)
	require.NotNil(t, fake.lastInput)
	assert.Equal(t, "a", fake.lastInput.Fields["prompt"])
	assert.Equal(t, 6, fake.lastInput.Fields["steps"])
	assert.Len(t, fake.lastInput.Fields, 2)
}

func TestGenerateDefaultModelPassthrough(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	fake := &fakeEngine{response: raw}
	router := setupTest(t, fake)

	w := generate(router, `{"prompt":"a fox","model":"dreamshaper-8-lcm","seed":12345}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, raw, w.Body.Bytes())

	assert.Equal(t, "@cf/lykon/dreamshaper-8-lcm", fake.lastModelKey)
	assert.Equal(t, 12345, fake.lastInput.Fields["seed"])
	assert.Equal(t, 20, fake.lastInput.Fields["num_steps"])
}

func TestGeneratePasswordRequired(t *testing.T) {
	originalPasswords := config.Passwords
	config.Passwords = []string{"secret"}
	defer func() { config.Passwords = originalPasswords }()

	fake := &fakeEngine{}
	router := setupTest(t, fake)

	w := generate(router, `{"prompt":"a","model":"flux-1-schnell"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Password is required"}`, w.Body.String())
	assert.Equal(t, 0, fake.calls, "the engine must never be invoked on auth failure")

	w = generate(router, `{"prompt":"a","model":"flux-1-schnell","password":"wrong"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Incorrect password"}`, w.Body.String())
	assert.Equal(t, 0, fake.calls)
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{"missing model", `{"prompt":"a"}`, http.StatusBadRequest, "Missing required parameter: prompt or model"},
		{"missing prompt", `{"model":"flux-1-schnell"}`, http.StatusBadRequest, "Missing required parameter: prompt or model"},
		{"unknown model", `{"prompt":"a","model":"gpt-image-42"}`, http.StatusBadRequest, "Model is invalid"},
		{"disabled model", `{"prompt":"a","model":"lucid-origin"}`, http.StatusBadRequest, "This model is currently disabled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEngine{}
			router := setupTest(t, fake)
			w := generate(router, tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			var envelope map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			assert.Equal(t, tt.wantErr, envelope["error"])
			assert.Equal(t, 0, fake.calls)
		})
	}
}

func TestGenerateEmptyPromptStillGenerates(t *testing.T) {
	// An empty prompt is present but falsy: it defaults instead of failing
	envelope, _ := json.Marshal(map[string]string{
		"image": base64.StdEncoding.EncodeToString([]byte("X")),
	})
	fake := &fakeEngine{response: envelope}
	router := setupTest(t, fake)

	w := generate(router, `{"prompt":"","model":"flux-1-schnell"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "cyberpunk cat", fake.lastInput.Fields["prompt"])
}

func TestGenerateInferenceFailure(t *testing.T) {
	fake := &fakeEngine{err: assert.AnError}
	router := setupTest(t, fake)

	w := generate(router, `{"prompt":"a","model":"flux-1-schnell"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Image generation failed", envelope["error"])
	assert.Equal(t, assert.AnError.Error(), envelope["details"])
}

func TestGenerateUpstreamEnvelopeErrors(t *testing.T) {
	tests := []struct {
		name     string
		response []byte
		wantErr  string
	}{
		{"unparseable", []byte("<html>bad gateway</html>"), "Failed to parse response"},
		{"no image field", []byte(`{"result":"ok"}`), "Invalid response format"},
		{"bad base64", []byte(`{"image":"%%%"}`), "Failed to process image data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEngine{response: tt.response}
			router := setupTest(t, fake)
			w := generate(router, `{"prompt":"a","model":"flux-1-schnell"}`)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			var envelope map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			assert.Equal(t, tt.wantErr, envelope["error"])
		})
	}
}

func TestGenerateMalformedBody(t *testing.T) {
	fake := &fakeEngine{}
	router := setupTest(t, fake)
	w := generate(router, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, fake.calls)
}
