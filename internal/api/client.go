// Package api is the HTTP client for the storefront backend. Business
// logic (pricing, inventory, order lifecycle, promotion math) lives on
// the server; this package only shapes requests, attaches auth, and
// normalizes responses and errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/minhtranvn/toystore/internal/errs"
)

// TokenSource supplies the bearer token for authenticated requests.
// An errs.ErrUnauthorized result means "not logged in".
type TokenSource interface {
	Token() (string, error)
}

// Client calls the storefront REST API. Construct it once and inject it;
// it is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *zap.Logger
	tokens  TokenSource
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTokenSource enables authenticated requests.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// New constructs a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// serverMessage is the error payload every endpoint returns on failure.
type serverMessage struct {
	Message string `json:"message"`
}

// get issues an unauthenticated-or-optional GET; the token is attached
// when one is available so user-scoped listings work transparently.
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, q, nil, "", out, false)
}

// send issues a mutation with a JSON body. Auth is required.
func (c *Client) send(ctx context.Context, method, path string, body any, out any) error {
	var r io.Reader
	if body != nil {
		r = jsonBody(body)
	}
	return c.do(ctx, method, path, nil, r, "application/json", out, true)
}

// jsonBody encodes v for transmission. Inputs are locally-built maps and
// structs, so encoding cannot fail.
func jsonBody(v any) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

// do performs one request. Every call sends both auth headers with the
// same token (two historical middlewares on the server accept one each)
// and a fresh request id.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body io.Reader, contentType string, out any, authRequired bool) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if id, err := uuid.NewV4(); err == nil {
		req.Header.Set("X-Request-Id", id.String())
	}

	if c.tokens != nil {
		token, err := c.tokens.Token()
		switch {
		case err == nil:
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("x-auth-token", token)
		case authRequired:
			return err
		}
	} else if authRequired {
		return fmt.Errorf("no credentials configured: %w", errs.ErrUnauthorized)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return fmt.Errorf("%s %s: %w", method, path, errs.ErrTimeout)
		}
		return fmt.Errorf("%s %s: %v: %w", method, path, err, errs.ErrUnavailable)
	}
	defer resp.Body.Close()

	c.log.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// statusError maps a non-2xx response to an error carrying the server's
// message field when present, else the transport-level status text.
func (c *Client) statusError(resp *http.Response) error {
	msg := http.StatusText(resp.StatusCode)
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var sm serverMessage
	if err := json.Unmarshal(body, &sm); err == nil && sm.Message != "" {
		msg = sm.Message
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s: %w", msg, errs.ErrUnauthorized)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, errs.ErrNotFound)
	default:
		return errors.New(msg)
	}
}

func isTimeout(err error) bool {
	var ue *url.Error
	return errors.As(err, &ue) && ue.Timeout()
}
