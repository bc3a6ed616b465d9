package upstream

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

	"github.com/angelmondragon/storegate/pkg/logger"
	"github.com/angelmondragon/storegate/pkg/normalize"
)

const bodySnippetLimit = 512

// Client is the transport beneath every typed fetch function. It owns the
// base URL, bearer-token forwarding, and JSON decoding into the loose
// representation the normalizers consume. It performs no shape normalization
// itself and no retries: a non-2xx response surfaces as a StatusError exactly
// as the backend produced it.
type Client struct {
	baseURL string
	http    *http.Client
	logg    *logger.Logger
}

// Options configures the upstream client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Logger  *logger.Logger

	// HTTPClient overrides the default client, used by tests.
	HTTPClient *http.Client
}

// New builds a client for the legacy backend.
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("upstream base url is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parsing upstream base url: %w", err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{baseURL: base, http: httpClient, logg: opts.Logger}, nil
}

// Get performs a GET and decodes the body.
func (c *Client) Get(ctx context.Context, path string, query url.Values, token string) (any, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, token)
}

// Post performs a POST with a JSON payload and decodes the body.
func (c *Client) Post(ctx context.Context, path string, payload any, token string) (any, error) {
	return c.do(ctx, http.MethodPost, path, nil, payload, token)
}

// Put performs a PUT with a JSON payload and decodes the body.
func (c *Client) Put(ctx context.Context, path string, payload any, token string) (any, error) {
	return c.do(ctx, http.MethodPut, path, nil, payload, token)
}

// Delete performs a DELETE; the decoded body is usually nil.
func (c *Client) Delete(ctx context.Context, path string, token string) (any, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil, token)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any, token string) (any, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("building upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if c.logg != nil {
		c.logg.Debug(c.logg.WithUpstream(ctx, method, path), "upstream.request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, bodySnippetLimit))
		return nil, &StatusError{
			StatusCode:  resp.StatusCode,
			Method:      method,
			Path:        path,
			BodySnippet: strings.TrimSpace(string(snippet)),
		}
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	decoded, err := normalize.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding upstream response: %w", err)
	}
	return decoded, nil
}
