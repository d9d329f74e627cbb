package api

// client.go carries the two request channels every domain service goes
// through: public (no credential) and private (bearer token, auto-logout on
// 401). Both share one timeout, one politeness rate limiter, and the error
// normalization in error.go.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"mindfulreader/internal/session"
)

const (
	// DefaultTimeout bounds every request.
	DefaultTimeout = 10 * time.Second

	// Outbound politeness: the API allows bursts but not sustained hammering.
	rateLimit = 5
	rateBurst = 10
)

// Client talks to the Mindful Reader REST API.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	session     *session.Store
	rateLimiter *rate.Limiter
}

// NewClient constructs a client for the API at baseURL. The session store
// supplies bearer tokens for the private channel and is cleared when the
// server rejects one.
func NewClient(baseURL string, timeout time.Duration, sess *session.Store) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		session:     sess,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get performs a public GET.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any, label string) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, false, label)
}

// post performs a public POST.
func (c *Client) post(ctx context.Context, path string, body, out any, label string) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, false, label)
}

// getPrivate performs a credentialed GET.
func (c *Client) getPrivate(ctx context.Context, path string, query url.Values, out any, label string) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, true, label)
}

// postPrivate performs a credentialed POST.
func (c *Client) postPrivate(ctx context.Context, path string, body, out any, label string) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, true, label)
}

// putPrivate performs a credentialed PUT.
func (c *Client) putPrivate(ctx context.Context, path string, body, out any, label string) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out, true, label)
}

// deletePrivate performs a credentialed DELETE.
func (c *Client) deletePrivate(ctx context.Context, path string, out any, label string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out, true, label)
}

// do runs one request end to end: marshal, send, normalize, decode. Every
// failure leaves through exactly one of the constructors in error.go.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, private bool, label string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return newRequestError(err, label)
		}
		reader = bytes.NewReader(payload)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return newRequestError(err, label)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if private {
		if token := c.session.GetToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		} else {
			// The server is responsible for rejecting; we just note it.
			log.Printf("api: no auth token found, proceeding without credentials")
		}
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return newRequestError(err, label)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return newTimeoutError(err, label)
		}
		return newNetworkError(err, label)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return newNetworkError(err, label)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if private && resp.StatusCode == http.StatusUnauthorized {
			// The server no longer honors this session; stop pretending
			// locally before the error propagates.
			log.Printf("api: session rejected by server, logging out")
			c.session.Logout(nil)
		}
		return newStatusError(resp.StatusCode, payload, label)
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return newRequestError(err, label)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
