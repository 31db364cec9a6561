package github

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

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public GitHub REST API endpoint.
	DefaultBaseURL = "https://api.github.com"

	// DefaultTimeout bounds a single directory request.
	DefaultTimeout = 5 * time.Second

	// DefaultRequestDelay is the minimum spacing between two requests.
	DefaultRequestDelay = 100 * time.Millisecond

	// DefaultUserAgent identifies this tool to the directory service.
	DefaultUserAgent = "tops-of-github"

	// maxErrorBody caps how much of an error response is kept.
	maxErrorBody = 512

	// maxBody caps how much of a success response is decoded.
	maxBody = 1 << 20
)

// Client looks up accounts in the GitHub directory.
// A Client is safe for concurrent use, although this tool issues requests
// one at a time.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	token      string
	userAgent  string
	timeout    time.Duration
	delay      time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API base URL. It is mainly used by tests.
func WithBaseURL(raw string) Option {
	return func(c *Client) {
		u, err := url.Parse(strings.TrimRight(raw, "/"))
		if err != nil || u.Scheme == "" || u.Host == "" {
			c.baseURL = nil
			return
		}
		c.baseURL = u
	}
}

// WithToken sets the bearer token. An empty token means unauthenticated
// requests.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRequestDelay sets the minimum spacing between requests.
// Zero disables pacing.
func WithRequestDelay(d time.Duration) Option {
	return func(c *Client) {
		c.delay = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithHTTPClient sets the underlying HTTP client. Its transport is wrapped
// for header injection; the caller's client is not modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a directory client.
func NewClient(opts ...Option) (*Client, error) {
	base, _ := url.Parse(DefaultBaseURL) //nolint:errcheck // constant URL
	c := &Client{
		baseURL:   base,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
		delay:     DefaultRequestDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.baseURL == nil {
		return nil, ErrInvalidBaseURL
	}

	var baseTransport http.RoundTripper
	if c.httpClient != nil {
		baseTransport = c.httpClient.Transport
	}
	c.httpClient = &http.Client{
		Transport: &headerInjectingTransport{
			base:  baseTransport,
			token: c.token,
			headers: map[string]string{
				"Accept":               "application/vnd.github+json",
				"User-Agent":           c.userAgent,
				"X-GitHub-Api-Version": "2022-11-28",
			},
		},
		Timeout: c.timeout,
	}

	limit := rate.Inf
	if c.delay > 0 {
		limit = rate.Every(c.delay)
	}
	c.limiter = rate.NewLimiter(limit, 1)
	return c, nil
}

// Authenticated reports whether requests carry a bearer token.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// LookupUser fetches a user account.
func (c *Client) LookupUser(ctx context.Context, login string) (*Account, error) {
	return c.lookup(ctx, "users", login)
}

// LookupOrg fetches an organization account.
func (c *Client) LookupOrg(ctx context.Context, login string) (*Account, error) {
	return c.lookup(ctx, "orgs", login)
}

func (c *Client) lookup(ctx context.Context, kind, login string) (*Account, error) {
	if strings.TrimSpace(login) == "" {
		return nil, ErrEmptyLogin
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for request slot: %w", err)
	}

	endpoint := c.baseURL.JoinPath(kind, login)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", endpoint.Path, err)
	}
	defer resp.Body.Close()

	if err := classify(resp, endpoint.String()); err != nil {
		return nil, err
	}

	var acct Account
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&acct); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", kind, err)
	}
	if acct.Login == "" {
		acct.Login = login
	}
	return &acct, nil
}

// classify maps a non-success response to an error. It consumes part of the
// body for error responses only.
func classify(resp *http.Response, requestURL string) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) //nolint:errcheck // diagnostics only
	if isRateLimited(resp, body) {
		return fmt.Errorf("%w (status %d)", ErrRateLimited, resp.StatusCode)
	}
	return &StatusError{
		StatusCode: resp.StatusCode,
		URL:        requestURL,
		Body:       strings.TrimSpace(string(body)),
	}
}

func isRateLimited(resp *http.Response, body []byte) bool {
	if resp.StatusCode != http.StatusForbidden && resp.StatusCode != http.StatusTooManyRequests {
		return false
	}
	if resp.Header.Get("X-RateLimit-Remaining") == "0" {
		return true
	}
	return bytes.Contains(bytes.ToLower(body), []byte("rate limit"))
}
