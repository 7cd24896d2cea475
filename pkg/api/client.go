// Package api is a thin REST client for the Hub cloud platform.
//
// Commands consume it through narrow function values (list and get), so the
// interactive core never constructs HTTP requests itself. Non-2xx responses
// surface as StatusError, which the selection framework inspects to detect
// stale persisted defaults (403/404).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.hubforge.io"

// StatusError reports a non-2xx API response.
type StatusError struct {
	StatusCode int
	Method     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.URL, e.StatusCode)
}

// IsNotFound reports whether err is a 404-shaped API error.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

// IsForbidden reports whether err is a 403-shaped API error.
func IsForbidden(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusForbidden
}

// Client calls the Hub platform REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// ClientConfig configures a Client.
type ClientConfig struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates a Client. Zero-value config fields fall back to the
// production endpoint and a 30 second timeout.
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = &ClientConfig{}
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      config.Token,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Method: method, URL: url}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to parse response from %s: %w", url, err)
		}
	}

	return nil
}

// listEnvelope is the platform's standard list-response wrapper.
type listEnvelope[T any] struct {
	Items []T `json:"items"`
}

func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var envelope listEnvelope[T]
	if err := c.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Items, nil
}
