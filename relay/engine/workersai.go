package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dreamcanvas/dream-api/common/config"
	"github.com/dreamcanvas/dream-api/relay/strategy"
	"github.com/dreamcanvas/dream-api/relay/util"
	"github.com/pkg/errors"
)

// WorkersAI invokes the Workers AI REST endpoint. One inbound generate
// request maps to exactly one call here, awaited synchronously; no retries.
type WorkersAI struct {
	BaseURL   string
	AccountId string
	APIToken  string

	client *http.Client
}

func NewWorkersAI() *WorkersAI {
	return &WorkersAI{
		BaseURL:   config.AiApiBase,
		AccountId: config.AiAccountId,
		APIToken:  config.AiApiToken,
		client:    util.HTTPClient,
	}
}

func (e *WorkersAI) requestURL(modelKey string) string {
	return fmt.Sprintf("%s/accounts/%s/ai/run/%s", e.BaseURL, e.AccountId, modelKey)
}

func (e *WorkersAI) Run(ctx context.Context, modelKey string, input *strategy.NormalizedInput) ([]byte, error) {
	var body io.Reader
	contentType := "application/json"
	if input.IsMultipart() {
		body = bytes.NewReader(input.Body)
		contentType = input.ContentType
	} else {
		encoded, err := json.Marshal(input.Fields)
		if err != nil {
			return nil, errors.Wrap(err, "marshal inputs")
		}
		body = bytes.NewReader(encoded)
	}

	// The request deliberately does not carry the client context: a client
	// disconnect must not cancel the in-flight upstream call. The timeout
	// is governed by the shared client (RELAY_TIMEOUT).
	req, err := http.NewRequest(http.MethodPost, e.requestURL(modelKey), body)
	if err != nil {
		return nil, errors.Wrap(err, "new request")
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+e.APIToken)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("upstream returned status %d: %s", resp.StatusCode, truncate(raw, 512))
	}
	return raw, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
