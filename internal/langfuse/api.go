package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const requestTimeout = 10 * time.Second

// APIError is a non-2xx answer from the Langfuse public API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("langfuse api returned %d", e.Status)
	}
	return fmt.Sprintf("langfuse api returned %d: %s", e.Status, e.Body)
}

// api is the authenticated transport shared by the ingestion client and
// the prompt loader.
type api struct {
	baseURL   string
	publicKey string
	secretKey string
	http      *http.Client
}

// newAPI returns nil unless the base URL and both keys are set.
func newAPI(baseURL, publicKey, secretKey string) *api {
	if baseURL == "" || publicKey == "" || secretKey == "" {
		return nil
	}
	return &api{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		publicKey: publicKey,
		secretKey: secretKey,
		http:      &http.Client{Timeout: requestTimeout},
	}
}

func (a *api) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	return a.do(ctx, http.MethodPost, path, nil, bytes.NewReader(body), out)
}

func (a *api) get(ctx context.Context, path string, query url.Values, out any) error {
	return a.do(ctx, http.MethodGet, path, query, nil, out)
}

func (a *api) do(ctx context.Context, method, path string, query url.Values, body io.Reader, out any) error {
	u, err := url.Parse(a.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid langfuse url: %w", err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.SetBasicAuth(a.publicKey, a.secretKey)

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data[:min(len(data), 512)]))}
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
