package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"securechat/internal/domain"
)

const defaultTimeout = 30 * time.Second

// Error is a backend failure carrying the server's message when one was
// given. Network-level failures are returned as-is, not wrapped in Error.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("backend: status %d", e.Status)
}

// Client talks JSON to the SecureChat backend under <base>/api.
type Client struct {
	base string
	http *http.Client
	log  *zap.Logger
}

// NewClient builds a client for the backend at base. Every request carries a
// bearer token when tokens holds one; onUnauthorized runs once per 401
// response (the independent expiry-detection path, parallel to the proactive
// token check). A nil httpc falls back to a default client.
func NewClient(base string, tokens domain.TokenSource, onUnauthorized func(), httpc *http.Client, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if httpc == nil {
		httpc = &http.Client{Timeout: defaultTimeout}
	}
	next := httpc.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	// Wrap a copy so the caller's client is left untouched.
	wrapped := *httpc
	wrapped.Transport = &authTransport{next: next, tokens: tokens, onUnauthorized: onUnauthorized}

	return &Client{
		base: strings.TrimRight(base, "/") + "/api",
		http: &wrapped,
		log:  log,
	}
}

// authTransport injects Authorization and a per-request ID, and fires the
// unauthorized hook on 401 responses.
type authTransport struct {
	next           http.RoundTripper
	tokens         domain.TokenSource
	onUnauthorized func()
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if t.tokens != nil {
		if tok, ok := t.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized && t.onUnauthorized != nil {
		t.onUnauthorized()
	}
	return resp, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return c.statusError(method, path, resp)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// statusError turns a non-2xx response into *Error, pulling the message from
// a {"message": ...} or {"error": ...} body when present.
func (c *Client) statusError(method, path string, resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
		Reason  string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body)
	msg := body.Message
	if msg == "" {
		msg = body.Reason
	}
	c.log.Debug("backend request failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("message", msg))
	return &Error{Status: resp.StatusCode, Message: msg}
}
