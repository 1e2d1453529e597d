package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nexuslabs/social-api/internal/api/metrics"
)

const (
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 4 << 20 // 4 MiB
)

// Client is the long-lived platform handle. It is constructed once in main
// and injected wherever the platform is reached; it is safe for concurrent
// use.
type Client struct {
	restURL string
	authURL string

	anonKey    string
	serviceKey string

	http *http.Client
	log  zerolog.Logger

	auth *AuthClient
}

// New validates cfg and returns a connected client. No network call is made;
// the platform is reached lazily per request.
func New(cfg Config, log zerolog.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("supabase: project URL is required")
	}
	if cfg.AnonKey == "" {
		return nil, fmt.Errorf("supabase: anon key is required")
	}

	base := strings.TrimRight(cfg.URL, "/")
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("supabase: invalid project URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	serviceKey := cfg.ServiceKey
	if serviceKey == "" {
		serviceKey = cfg.AnonKey
	}

	c := &Client{
		restURL:    base + "/rest/v1",
		authURL:    base + "/auth/v1",
		anonKey:    cfg.AnonKey,
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: timeout},
		log:        log,
	}
	c.auth = &AuthClient{client: c}
	return c, nil
}

// Auth returns the auth sub-client.
func (c *Client) Auth() *AuthClient {
	return c.auth
}

// From starts a data-plane query against a table.
func (c *Client) From(table string) *Query {
	return &Query{
		client:  c,
		table:   table,
		method:  http.MethodGet,
		columns: "*",
		headers: make(map[string]string),
	}
}

// Health pings the auth API's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	_, status, err := c.do(ctx, http.MethodGet, c.authURL+"/health", nil, nil, c.anonKey)
	if err != nil {
		return err
	}
	if status >= 400 {
		return fmt.Errorf("supabase: health check returned %d", status)
	}
	return nil
}

// authRequest performs an auth API call using the anon key. When bearer is
// non-empty it is sent as the user's access token.
func (c *Client) authRequest(ctx context.Context, method, path string, body []byte, bearer string) ([]byte, int, error) {
	if bearer == "" {
		bearer = c.anonKey
	}
	return c.do(ctx, method, c.authURL+path, body, nil, bearer)
}

// restRequest performs a data-plane call using the service key.
func (c *Client) restRequest(ctx context.Context, method, rawURL string, body []byte, headers map[string]string) ([]byte, int, error) {
	return c.do(ctx, method, rawURL, body, headers, c.serviceKey)
}

func (c *Client) do(ctx context.Context, method, rawURL string, body []byte, headers map[string]string, bearer string) ([]byte, int, error) {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("supabase: create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	service := "rest"
	if strings.HasPrefix(rawURL, c.authURL) {
		service = "auth"
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.PlatformRequestDuration.WithLabelValues(service, method).Observe(time.Since(start).Seconds())
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("service", service).Msg("platform request failed")
		return nil, 0, fmt.Errorf("supabase: %s %s: %w", method, service, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("supabase: read response: %w", err)
	}

	return respBody, resp.StatusCode, nil
}
