package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dafibh/loanboard/loanboard-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// maxErrorBody caps how much of a failed response is kept for logging
const maxErrorBody = 512

// Client talks JSON to the loan backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client with its own http.Client bounded by timeout
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP creates a Client on top of an existing http.Client
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// StatusError is returned when the backend answers with a non-2xx status
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s %s returned %d", e.Method, e.Path, e.StatusCode)
}

// Unwrap lets callers match ErrBackendUnavailable, and ErrNotFound on 404
func (e *StatusError) Unwrap() []error {
	errs := []error{domain.ErrBackendUnavailable}
	if e.StatusCode == http.StatusNotFound {
		errs = append(errs, domain.ErrNotFound)
	}
	return errs
}

// do sends one request and decodes the JSON answer into out (when non-nil).
// op names the call in metrics and logs.
func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		observeBackendCall(op, time.Since(start), err)
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrBackendUnavailable, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(snippet),
		}
		log.Warn().
			Str("operation", op).
			Str("request_id", requestID).
			Int("status", resp.StatusCode).
			Str("body", statusErr.Body).
			Msg("Backend returned error status")
		return statusErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %s: empty response body", domain.ErrBackendUnavailable, op)
		}
		return fmt.Errorf("%w: decode %s response: %w", domain.ErrBackendUnavailable, op, err)
	}
	return nil
}
