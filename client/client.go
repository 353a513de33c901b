/*
Package client fetches agreement records from the grants backend.

PURPOSE:
  Thin HTTP client around the backend's agreement endpoint. Handles the
  encrypted-auth header, per-request timeout, and mapping of backend
  status codes onto the service's sentinel errors so handlers can
  branch with errors.Is.

ERROR MAPPING:
  404        -> agreement.ErrOfferNotFound
  401 / 403  -> agreement.ErrNotAuthorised
  other !2xx -> *agreement.BackendError carrying the backend's
                errorMessage (trimmed at the first '{', which is where
                the backend's messages start embedding stack payloads)

SEE ALSO:
  - agreement/errors.go: The sentinel errors produced here
  - api/handlers.go: The caller that maps them onto HTTP responses
*/
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/warp/agreement-engine/agreement"
)

// AuthHeader carries the caller's encrypted auth token through to the
// backend.
const AuthHeader = "x-encrypted-auth"

// Config holds the backend connection settings.
type Config struct {
	// BaseURL is the agreement endpoint root, without a trailing slash.
	BaseURL string

	// Timeout bounds each backend request. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout is applied when the config leaves Timeout unset.
const DefaultTimeout = 10 * time.Second

// Client is a grants-backend agreement client. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a backend client from the given config.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// GetAgreement fetches and decodes the agreement with the given id.
func (c *Client) GetAgreement(ctx context.Context, agreementID, auth string) (*agreement.Agreement, error) {
	body, err := c.do(ctx, http.MethodGet, agreementID, auth, nil)
	if err != nil {
		return nil, err
	}

	var a agreement.Agreement
	if err := json.Unmarshal(body, &a); err != nil {
		return nil, fmt.Errorf("decode agreement %s: %w", agreementID, err)
	}
	return &a, nil
}

// PostAction submits an action payload (e.g. accept-offer) for the
// agreement with the given id.
func (c *Client) PostAction(ctx context.Context, agreementID, auth string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode action payload: %w", err)
	}
	_, err = c.do(ctx, http.MethodPost, agreementID, auth, body)
	return err
}

func (c *Client) do(ctx context.Context, method, agreementID, auth string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+agreementID, reader)
	if err != nil {
		return nil, err
	}
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(AuthHeader, auth)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error while fetching agreement data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFor(resp, agreementID)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) errorFor(resp *http.Response, agreementID string) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("offer not found with ID %s: %w", agreementID, agreement.ErrOfferNotFound)
	case http.StatusUnauthorized, http.StatusForbidden:
		return agreement.ErrNotAuthorised
	}

	return &agreement.BackendError{
		StatusCode: resp.StatusCode,
		Message:    backendMessage(resp),
	}
}

// backendMessage digs an errorMessage out of an error body, trimming
// the embedded payload the backend appends after the first '{'.
func backendMessage(resp *http.Response) string {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var parsed struct {
		ErrorMessage string `json:"errorMessage"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.ErrorMessage != "" {
		msg, _, _ := strings.Cut(parsed.ErrorMessage, "{")
		return strings.TrimSpace(msg)
	}

	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
