// Package api is the typed HTTP client for the storefront backend. It
// attaches the bearer token to every outgoing request and converts every
// 401 into a forced sign-out, mirroring the request/response interceptor
// pair the storefront relies on.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// ErrUnauthorized is returned when the backend answers 401. The configured
// OnUnauthorized hook has already run by the time the caller sees it.
var ErrUnauthorized = errors.New("unauthorized")

// TokenProvider supplies the bearer token for outgoing requests. An empty
// token means the request goes out unauthenticated.
type TokenProvider interface {
	Token() string
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client talks to the storefront REST backend.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenProvider
	onUnauthorized func()
}

// NewClient creates a client for the given API base URL (including the
// /api prefix when the backend uses one). tokens and onUnauthorized may be
// nil for anonymous use.
func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider, onUnauthorized func()) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     &http.Client{Timeout: timeout},
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
	}
}

var apiSuffix = regexp.MustCompile(`/?api/?$`)

// AssetsBase returns the origin that serves uploaded assets: the API base
// URL without its /api suffix.
func (c *Client) AssetsBase() string {
	return apiSuffix.ReplaceAllString(c.baseURL, "")
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Request, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// do executes a request and decodes the JSON response into out (when out is
// non-nil). 401 triggers the unauthorized hook and returns ErrUnauthorized;
// other non-2xx statuses become an *APIError carrying the backend message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// doRaw executes a request and returns the raw response body, for binary
// endpoints.
func (c *Client) doRaw(ctx context.Context, method, path string) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, nil, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return data, nil
}

// errorMessage extracts the backend's error text, which comes back as
// either {"error": ...} or {"message": ...}.
func errorMessage(body io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return "unexpected response"
	}
	if payload.Error != "" {
		return payload.Error
	}
	if payload.Message != "" {
		return payload.Message
	}
	return "unexpected response"
}
