package fetch

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"
)

const acceptEncoding = "gzip, deflate, br"

// Client issues the GET requests every other component relies on. Each
// request carries a fixed User-Agent and an Accept-Encoding header; there is
// no retry on failure.
type Client struct {
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a Client. A zero timeout leaves requests unbounded.
func New(userAgent string, timeout time.Duration, opts ...Option) *Client {
	client := &Client{
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Text fetches a page and returns its body as UTF-8 text. Bodies that arrive
// gzip-compressed are decompressed; bodies that are plain despite the
// advertised Accept-Encoding are used as-is.
func (c *Client) Text(ctx context.Context, url string) (string, error) {
	body, err := c.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read body of %s: %w", url, err)
	}

	if reader, err := gzip.NewReader(bytes.NewReader(data)); err == nil {
		if decoded, err := io.ReadAll(reader); err == nil {
			data = decoded
		}
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("body of %s is not valid UTF-8", url)
	}
	return string(data), nil
}

// Fetch issues a GET and returns the raw response body stream. The caller
// must close it. Because Accept-Encoding is set explicitly, the transport
// performs no transparent decompression and the bytes arrive verbatim.
func (c *Client) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Encoding", acceptEncoding)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	return resp.Body, nil
}
