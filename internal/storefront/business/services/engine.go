package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultTimeout           = 10 * time.Second
	defaultRequestsPerSecond = 10
)

// EngineConfig tunes the shared HTTP machinery. Zero values fall back to the
// defaults above; Transport nil means http.DefaultTransport.
type EngineConfig struct {
	Timeout           time.Duration
	RequestsPerSecond float64
	Transport         http.RoundTripper
}

// RequestEngine is the single road to the store backend: one base URL, one
// timeout-bound client, one outbound rate limiter, one auth engine. Every
// remote client goes through DoJSON.
type RequestEngine struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	auth    AuthEngine
}

func NewRequestEngine(baseURL string, auth AuthEngine, cfg EngineConfig) *RequestEngine {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return &RequestEngine{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout, Transport: cfg.Transport},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		auth:    auth,
	}
}

// DoJSON sends one JSON request and decodes the response into out (when out
// is non-nil). accept lists the status codes that count as success; an empty
// list accepts any 2xx. Transport failures come back as *NetworkError,
// unaccepted statuses as *RemoteRejectionError.
func (e *RequestEngine) DoJSON(ctx context.Context, method, path string, body, out interface{}, accept ...int) error {
	if err := e.limiter.Wait(ctx); err != nil {
		return &NetworkError{Err: err}
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, e.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if e.auth != nil {
		e.auth.Authorize(req)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if !statusAccepted(resp.StatusCode, accept) {
		io.Copy(io.Discard, resp.Body)
		return &RemoteRejectionError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func statusAccepted(code int, accept []int) bool {
	if len(accept) == 0 {
		return code >= 200 && code < 300
	}
	for _, want := range accept {
		if code == want {
			return true
		}
	}
	return false
}
