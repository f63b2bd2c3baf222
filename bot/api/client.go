// Package api is the HTTP client for the internal profile API. Every call is
// authenticated with the shared internal token and, for user-scoped
// endpoints, the caller's Telegram ID.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m3rciful/anorbot/core/logger"
)

const (
	headerInternalToken  = "X-Internal-Token"
	headerTelegramUserID = "X-Telegram-User-Id"

	defaultTimeout     = 15 * time.Second
	defaultDialTimeout = 5 * time.Second
	defaultIdleTimeout = 30 * time.Second

	maxErrorBodyBytes = 512
)

// Config carries the connection settings for the profile API.
type Config struct {
	BaseURL       string
	InternalToken string
	Timeout       time.Duration
}

// Client talks to the profile API. Safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds a Client with a pooled transport. Requests are retried by the
// transport only on transport-level failures, never on HTTP error statuses.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	transport := &retryTransport{
		base: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DialContext:         (&net.Dialer{Timeout: defaultDialTimeout}).DialContext,
			ForceAttemptHTTP2:   true,
			MaxIdleConns:        50,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     defaultIdleTimeout,
		},
		maxRetries: 2,
		backoff:    300 * time.Millisecond,
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.InternalToken,
		http:    &http.Client{Timeout: timeout, Transport: transport},
	}
}

// do performs a request and decodes a JSON response into out when out is
// non-nil. tgID 0 skips the Telegram identity header for endpoints that are
// not user-scoped. Non-2xx statuses come back as *Error.
func (c *Client) do(ctx context.Context, tgID int64, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode body for %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set(headerInternalToken, c.token)
	if tgID != 0 {
		req.Header.Set(headerTelegramUserID, strconv.FormatInt(tgID, 10))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error(ctx, "api", "api.request.failed",
			slog.String("operation", method+" "+path),
			slog.Duration("duration_ms", logger.Took(start)),
			slog.String("err", logger.Sanitize(err.Error())),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		chunk, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		apiErr := &Error{
			Status: resp.StatusCode,
			Method: method,
			Path:   path,
			Body:   strings.TrimSpace(string(chunk)),
		}
		level := slog.LevelWarn
		if resp.StatusCode >= 500 {
			level = slog.LevelError
		}
		logger.Event(ctx, "api", level, "api.request.status",
			slog.String("operation", method+" "+path),
			slog.Int("status_code", resp.StatusCode),
			slog.Duration("duration_ms", logger.Took(start)),
		)
		return apiErr
	}

	if logger.ShouldSampleDebug() {
		logger.Debug(ctx, "api", "api.request.ok",
			slog.String("operation", method+" "+path),
			slog.Int("status_code", resp.StatusCode),
			slog.Duration("duration_ms", logger.Took(start)),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response of %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, tgID int64, path string, query url.Values, out any) error {
	return c.do(ctx, tgID, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, tgID int64, path string, query url.Values, body, out any) error {
	return c.do(ctx, tgID, http.MethodPost, path, query, body, out)
}

func (c *Client) put(ctx context.Context, tgID int64, path string, body, out any) error {
	return c.do(ctx, tgID, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, tgID int64, path string) error {
	return c.do(ctx, tgID, http.MethodDelete, path, nil, nil, nil)
}
