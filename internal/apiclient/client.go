package apiclient

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

	"github.com/zenithlab/storefront-client/internal/apperr"
)

// TokenSource supplies the current bearer token, or "" when logged out.
type TokenSource func() string

// Client is a typed HTTP client for the Zenith storefront API. It performs
// no retries; transport failures surface as apperr.ErrUnavailable and the
// caller owns the retry policy.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
}

func New(baseURL string, timeout time.Duration, token TokenSource) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		token: token,
	}
}

// do executes one JSON request. fallback is the user-facing message used
// when the server rejects the call without a body of its own.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, fallback string) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %v: %w", fallback, err, apperr.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp, fallback)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError maps a non-2xx response onto the failure taxonomy, passing the
// server's message through verbatim when it supplies one.
func (c *Client) statusError(resp *http.Response, fallback string) error {
	msg := serverMessage(resp.Body)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", fallback, apperr.ErrAuthRequired)
	case http.StatusForbidden:
		if msg == "" {
			msg = "You do not have the required account type to purchase this product"
		}
		return fmt.Errorf("%s: %w", msg, apperr.ErrRestriction)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", fallback, apperr.ErrNotFound)
	default:
		if msg == "" {
			msg = fallback
		}
		return fmt.Errorf("%s (status %d): %w", msg, resp.StatusCode, apperr.ErrRemoteRejected)
	}
}

// serverMessage extracts a human-readable message from an error body, which
// may be plain text or a JSON object with a message/error field.
func serverMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	text := strings.TrimSpace(string(data))
	if text == "" || text[0] != '{' {
		return text
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return text
	}
	if payload.Message != "" {
		return payload.Message
	}
	if payload.Error != "" {
		return payload.Error
	}
	return text
}
