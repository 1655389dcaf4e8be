// Package swapi is a small client for the Star Wars API demo service. Response
// bodies are streamed straight into a skemalab schema.
package swapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/reoring/skemalab"
	"github.com/reoring/skemalab/internal/logger"
)

const (
	DefaultBaseURL   = "https://swapi.dev/api"
	DefaultTimeout   = 10 * time.Second
	DefaultMaxBytes  = 4 << 20
	defaultUserAgent = "skemalab"
)

type Config struct {
	// BaseURL is the API root without a trailing slash.
	BaseURL string
	// Timeout bounds a whole request including the body read.
	Timeout   time.Duration
	UserAgent string
	// MaxBytes caps the response body; larger bodies fail with a truncated issue.
	MaxBytes int64
}

// DefaultConfig returns the settings used for the public SWAPI instance.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		UserAgent: defaultUserAgent,
		MaxBytes:  DefaultMaxBytes,
	}
}

// Client issues GET requests against a SWAPI compatible server.
type Client struct {
	http     *http.Client
	baseURL  string
	ua       string
	maxBytes int64
	log      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Its Timeout wins over Config.Timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New builds a Client. Zero fields in cfg take their DefaultConfig values.
func New(cfg Config, opts ...Option) *Client {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = def.MaxBytes
	}
	c := &Client{
		http:     &http.Client{Timeout: cfg.Timeout},
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		ua:       cfg.UserAgent,
		maxBytes: cfg.MaxBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.L()
	}
	return c
}

// BaseURL reports the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("swapi: GET %s: unexpected status %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// IsNotFound reports whether err is a 404 StatusError.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// Get fetches path relative to the base URL and parses the body with s.
// Validation failures are returned as skemalab.Issues.
func Get[T any](ctx context.Context, c *Client, path string, s skemalab.Schema[T]) (T, error) {
	var zero T
	url := c.baseURL + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return zero, fmt.Errorf("swapi: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.ua)

	start := time.Now()
	c.log.Debug("swapi.request", "url", url)
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("swapi.error", "url", url, "elapsed", time.Since(start), "err", err)
		return zero, fmt.Errorf("swapi: GET %s: %w", url, err)
	}
	defer resp.Body.Close()
	c.log.Debug("swapi.response", "url", url, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBytes))
		return zero, &StatusError{Code: resp.StatusCode, URL: url}
	}
	return skemalab.StreamParse(ctx, s, resp.Body, skemalab.ParseOpt{MaxBytes: c.maxBytes})
}
