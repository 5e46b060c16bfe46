package sellerboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"
)

// Config configures report downloads.
type Config struct {
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
	RetryBase  time.Duration `mapstructure:"retry_base"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Timeout:    60 * time.Second,
		MaxRetries: 3,
		RetryBase:  200 * time.Millisecond,
	}
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is a non-2xx response to a report request.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("non-2xx: %d body=%s", e.StatusCode, e.Body)
}

// Client downloads Sellerboard reports.
type Client struct {
	httpc HTTPClient
	c     Config
}

// NewClient creates a report client. A nil httpc uses a plain http.Client
// with the configured timeout.
func NewClient(c *Config, httpc HTTPClient) *Client {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.Timeout == 0 {
		c.Timeout = 60 * time.Second
	}
	if c.RetryBase == 0 {
		c.RetryBase = 200 * time.Millisecond
	}
	if httpc == nil {
		httpc = &http.Client{Timeout: c.Timeout}
	}
	return &Client{httpc: httpc, c: *c}
}

// Fetch returns the report body. Transport errors, 429 and 5xx responses are
// retried with exponential backoff and jitter; other non-2xx responses fail
// immediately.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", errors.New("empty report url")
	}

	var lastErr error
	for attempt := 0; attempt <= c.c.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, c.backoff(attempt)); err != nil {
				return "", err
			}
		}
		body, err := c.get(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable(ctx, err) {
			break
		}
	}
	return "", lastErr
}

func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(b), nil
}

// CheckReachable probes url with HEAD, falling back to GET, and describes
// what happened. The result is informational only.
func (c *Client) CheckReachable(ctx context.Context, url string) []string {
	var steps []string
	for _, method := range []string{http.MethodHead, http.MethodGet} {
		status, err := c.probe(ctx, method, url)
		if err != nil {
			steps = append(steps, fmt.Sprintf("%s %s failed: %v", method, url, err))
			continue
		}
		steps = append(steps, fmt.Sprintf("%s %s: %d", method, url, status))
		if status < 400 {
			break
		}
	}
	return steps
}

func (c *Client) probe(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.c.RetryBase * time.Duration(1<<(attempt-1))
	return d + time.Duration(rand.Int64N(int64(c.c.RetryBase)/2+1))
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode == http.StatusTooManyRequests || se.StatusCode >= 500
	}
	return true
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
