// Package api wraps the three remote operations of the notice service:
// register, login, and analyze. Each is a single request/response exchange
// with no retries; every failure mode (rejection, malformed payload,
// transport fault) surfaces as a recoverable *Error carrying a
// human-readable message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// uploadField is the multipart field name the analyzer expects.
const uploadField = "notice_pdf"

// Fallback messages when the server supplies none.
const (
	genericAuthFailure    = "Authentication failed. Please try again."
	genericAnalyzeFailure = "Failed to analyze the document."
)

// Error is a recoverable service failure. Message is always suitable to
// show the user.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// Client talks to the remote notice service.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	authTimeout    time.Duration
	analyzeTimeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeouts sets the per-call deadlines for auth and analyze requests.
func WithTimeouts(auth, analyze time.Duration) Option {
	return func(c *Client) {
		c.authTimeout = auth
		c.analyzeTimeout = analyze
	}
}

// New returns a client rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     &http.Client{},
		authTimeout:    15 * time.Second,
		analyzeTimeout: 90 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register creates an account and returns the new user profile.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (User, error) {
	return c.authCall(ctx, "/register", req)
}

// Login authenticates an existing account.
func (c *Client) Login(ctx context.Context, creds Credentials) (User, error) {
	return c.authCall(ctx, "/login", creds)
}

func (c *Client) authCall(ctx context.Context, path string, body any) (User, error) {
	ctx, cancel := context.WithTimeout(ctx, c.authTimeout)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return User{}, fmt.Errorf("encode %s body: %w", path, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return User{}, fmt.Errorf("build %s request: %w", path, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	env, err := c.do(httpReq, genericAuthFailure)
	if err != nil {
		return User{}, err
	}
	if env.User == nil {
		slog.Warn("auth response missing user payload", "path", path)
		return User{}, &Error{Message: genericAuthFailure}
	}
	return *env.User, nil
}

// Analyze uploads a document and returns its structured summary. A success
// envelope missing required identity fields is treated as a failure, not
// handed to the UI.
func (c *Client) Analyze(ctx context.Context, filename string, doc io.Reader) (Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, c.analyzeTimeout)
	defer cancel()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(uploadField, filename)
	if err != nil {
		return Summary{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, doc); err != nil {
		return Summary{}, fmt.Errorf("copy document: %w", err)
	}
	if err := mw.Close(); err != nil {
		return Summary{}, fmt.Errorf("finish multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/summarize", &buf)
	if err != nil {
		return Summary{}, fmt.Errorf("build /summarize request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	env, err := c.do(httpReq, genericAnalyzeFailure)
	if err != nil {
		return Summary{}, err
	}
	if env.Summary == nil || !env.Summary.Complete() {
		slog.Warn("analyze response structurally incomplete")
		return Summary{}, &Error{Message: genericAnalyzeFailure}
	}
	return *env.Summary, nil
}

// do runs the request and decodes the uniform envelope. Transport faults,
// non-success envelopes, and undecodable bodies all collapse into *Error.
func (c *Client) do(req *http.Request, fallback string) (envelope, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("request failed", "path", req.URL.Path, "err", err)
		return envelope{}, &Error{Message: fallback}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		slog.Warn("undecodable response", "path", req.URL.Path, "status", resp.StatusCode, "err", err)
		return envelope{}, &Error{Message: fallback}
	}
	slog.Debug("request done", "path", req.URL.Path, "status", resp.StatusCode, "success", env.Success, "elapsed", time.Since(start))

	if !env.Success {
		msg := strings.TrimSpace(env.Message)
		if msg == "" {
			msg = fallback
		}
		return envelope{}, &Error{Message: msg}
	}
	return env, nil
}
