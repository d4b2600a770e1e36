package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the default base URL for the prompt worker API.
const DefaultBaseURL = "http://localhost:8787"

// DefaultTimeout is the default per-attempt HTTP timeout.
const DefaultTimeout = 60 * time.Second

// DefaultMaxRetries is the default number of attempts per logical request.
const DefaultMaxRetries = 3

// defaultUserAgent is the User-Agent header value for API requests.
const defaultUserAgent = "promptdeck-mcp/1.0"

// Client is a prompt worker API client. A single Client reuses one underlying
// HTTP connection pool across calls and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	userAgent  string
	sleep      func(time.Duration)
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTimeout sets the per-attempt HTTP timeout. The timeout bounds each
// attempt independently; there is no overall deadline spanning retries.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithMaxRetries sets how many attempts a request makes before giving up.
// Values below 1 are treated as 1.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n < 1 {
			n = 1
		}
		c.maxRetries = n
	}
}

// WithHTTPClient sets a custom HTTP client. It replaces the client configured
// by WithTimeout, so apply WithTimeout afterwards if both are needed.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithSleep replaces the backoff sleep function. Tests inject a recording
// function here to make retry timing deterministic.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Client) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// New creates a new prompt worker API client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		maxRetries: DefaultMaxRetries,
		userAgent:  defaultUserAgent,
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs one logical API request and returns the raw JSON response body.
//
// Only GET and POST are supported; any other method fails immediately with
// *UnsupportedMethodError and makes no attempts. Transport errors, status
// codes >= 400, and non-JSON bodies all count as a failed attempt. Failed
// attempts are retried up to the configured limit, sleeping 2^attempt seconds
// between attempts. Once attempts are exhausted, Do returns *NetworkError
// wrapping the last attempt's error.
func (c *Client) Do(ctx context.Context, method, endpoint string, params url.Values, body any) (json.RawMessage, error) {
	switch method {
	case http.MethodGet, http.MethodPost:
	default:
		return nil, &UnsupportedMethodError{Method: method}
	}

	u, err := url.Parse(c.baseURL + "/" + strings.TrimPrefix(endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing URL: %w", err)
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	// Marshal the body once up front; a body that cannot be encoded is a
	// programming error, not a transient failure.
	var reqBody []byte
	if method == http.MethodPost && body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := c.attempt(ctx, method, u.String(), reqBody)
		if err == nil {
			return data, nil
		}
		lastErr = err

		slog.Warn("request failed",
			slog.String("method", method),
			slog.String("url", u.String()),
			slog.Int("attempt", attempt+1),
			slog.Int("max_retries", c.maxRetries),
			slog.String("error", err.Error()),
		)

		if attempt == c.maxRetries-1 {
			break
		}
		c.sleep(time.Duration(1<<uint(attempt)) * time.Second)
	}

	slog.Error("retries exhausted",
		slog.String("method", method),
		slog.String("url", u.String()),
		slog.Int("attempts", c.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return nil, &NetworkError{Attempts: c.maxRetries, Cause: lastErr}
}

// attempt performs a single HTTP exchange and validates that the response
// body is JSON. The caller owns retry decisions.
func (c *Client) attempt(ctx context.Context, method, rawURL string, body []byte) (json.RawMessage, error) {
	start := time.Now()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.Debug("sending request",
		slog.String("method", method),
		slog.String("url", rawURL),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, parseAPIError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("decoding response: body is not valid JSON")
	}

	slog.Debug("request completed",
		slog.String("method", method),
		slog.String("url", rawURL),
		slog.Int("status", resp.StatusCode),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return json.RawMessage(data), nil
}

// parseAPIError extracts an APIError from an error response.
func parseAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var errResp errorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = resp.Status
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

// errorResponse is the JSON error shape some worker deployments return.
type errorResponse struct {
	Error string `json:"error"`
}
