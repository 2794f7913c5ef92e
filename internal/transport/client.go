package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"sync/atomic"
)

// Client issues requests against the REST API with retry-with-jitter and
// decodes JSON responses.
type Client struct {
	httpClient *http.Client
	retry      RetryConfig
	logger     *slog.Logger
	dumpDir    string
	dumpSeq    atomic.Int64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetryConfig overrides the retry policy.
func WithRetryConfig(cfg RetryConfig) Option {
	return func(c *Client) { c.retry = cfg }
}

// WithLogger overrides the logger used for retry diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithDumpDir makes the Client write the raw body of every successful
// response it reads for JSON decoding (before decoding it) to a file
// under dir, named after the requested path. Useful
// for diagnosing server-behavior disputes without re-running a capture
// proxy.
func WithDumpDir(dir string) Option {
	return func(c *Client) { c.dumpDir = dir }
}

// New builds a Client with sensible defaults, ready to override via opts.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		retry:      DefaultRetryConfig(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HTTPClient returns the underlying *http.Client, for callers that need
// to issue a raw (non-JSON) request the Do helper doesn't model.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Do executes req, retrying transient failures per the client's
// RetryConfig, and decodes a JSON response into result (ignored if nil
// or if the response is 204 No Content).
func (c *Client) Do(ctx context.Context, req Request, result any) error {
	ctx, cancel := context.WithTimeout(ctx, c.retry.Deadline)
	defer cancel()

	var bodyBytes []byte
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("transport: marshal request body: %w", err)
		}
		bodyBytes = encoded
	}

	targetURL, err := buildURL(req)
	if err != nil {
		return fmt.Errorf("transport: %w", err)
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			if err := c.retry.wait(ctx, attempt-1); err != nil {
				return fmt.Errorf("transport: %w", lastErr)
			}
			c.logger.Warn("retrying request", "method", req.Method, "url", targetURL, "attempt", attempt, "cause", lastErr)
		}

		var bodyReader io.Reader
		if bodyBytes != nil {
			bodyReader = bytes.NewReader(bodyBytes)
		}

		httpReq, err := http.NewRequestWithContext(ctx, req.Method, targetURL, bodyReader)
		if err != nil {
			return fmt.Errorf("transport: build request: %w", err)
		}
		if req.Body != nil {
			httpReq.Header.Set("Content-Type", "application/json")
		}
		if req.AccessToken != "" {
			httpReq.Header.Set("accessToken", req.AccessToken)
		}

		resp, doErr := c.httpClient.Do(httpReq)
		if doErr != nil {
			lastErr = &NetworkError{Err: doErr}
			if ctx.Err() != nil {
				return fmt.Errorf("transport: %w", lastErr)
			}
			continue
		}

		if c.retry.RetryableOn(resp.StatusCode) {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			lastErr = &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
			continue
		}

		if resp.StatusCode >= 400 {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
		}

		if resp.StatusCode == http.StatusNoContent || result == nil {
			resp.Body.Close()
			return nil
		}

		raw, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("transport: read response: %w", err)
		}
		if c.dumpDir != "" {
			c.dumpResponse(req, raw)
		}
		if err := json.Unmarshal(raw, result); err != nil {
			return fmt.Errorf("transport: decode response: %w", err)
		}
		return nil
	}
}

var dumpNameRe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// dumpResponse writes raw to a uniquely-named file under c.dumpDir,
// derived from req's path. Failures are logged, not returned: a dump
// is a debugging aid and must never fail a real request.
func (c *Client) dumpResponse(req Request, raw []byte) {
	seq := c.dumpSeq.Add(1)
	name := fmt.Sprintf("%03d-%s-%s.json", seq, req.Prefix, dumpNameRe.ReplaceAllString(req.Path, "_"))
	if err := os.WriteFile(filepath.Join(c.dumpDir, name), raw, 0o644); err != nil {
		c.logger.Warn("failed to dump response JSON", "path", req.Path, "cause", err)
	}
}

func buildURL(req Request) (string, error) {
	base := fmt.Sprintf("%s/rest/%s/%s", req.Host, req.Prefix, req.Path)
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if len(req.Query) > 0 {
		q := u.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
