// ABOUTME: HTTP client for the Campus Companion record store
// ABOUTME: Attaches the bearer credential and normalizes failures for the UI

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// TokenSource supplies the current credential for outgoing requests.
// The credential store satisfies this; callers are expected to prevent
// requests while no valid credential exists (the navigation guard does).
type TokenSource interface {
	Get() (string, bool)
}

// ErrorKind classifies a failed remote call.
type ErrorKind int

const (
	// KindTransport means the record store was unreachable.
	KindTransport ErrorKind = iota
	// KindRemote means the store answered with a non-2xx status.
	KindRemote
	// KindDecode means the store answered with an unparseable body.
	KindDecode
)

// APIError is the only error type that crosses the client boundary.
type APIError struct {
	Kind   ErrorKind
	Status int    // HTTP status for remote rejections, zero otherwise
	Reason string // server-supplied message, if any
	Err    error  // underlying cause, for logs
}

func (e *APIError) Error() string {
	switch {
	case e.Reason != "":
		return e.Reason
	case e.Kind == KindTransport:
		return fmt.Sprintf("cannot reach record store: %v", e.Err)
	case e.Kind == KindDecode:
		return fmt.Sprintf("invalid response from record store: %v", e.Err)
	default:
		return fmt.Sprintf("record store returned status %d", e.Status)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// UserMessage returns the message shown to the user, or empty when only the
// caller's action-specific fallback is appropriate.
func (e *APIError) UserMessage() string {
	if e.Reason != "" {
		return e.Reason
	}
	if e.Kind == KindTransport {
		return "Network error. Please check your internet connection."
	}
	return ""
}

// errorBody is the store's rejection payload.
type errorBody struct {
	Message string `json:"message"`
}

// Client talks to the record store over JSON/HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New creates a client for the given base URL. tokens may be nil for
// pre-login calls only.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
	}
}

// BaseURL returns the configured record store base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// do performs one JSON round-trip. body and out may be nil. All failures are
// converted to *APIError; nothing else escapes.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindDecode, Err: err}
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &APIError{Kind: KindTransport, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Get(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("request failed", "method", method, "path", path, "error", err)
		return &APIError{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.rejectionError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &APIError{Kind: KindDecode, Err: err}
		}
	}
	return nil
}

// rejectionError extracts the store's reason from a non-2xx response.
func (c *Client) rejectionError(resp *http.Response) error {
	apiErr := &APIError{Kind: KindRemote, Status: resp.StatusCode}
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Reason = body.Message
	}
	slog.Debug("request rejected", "status", resp.StatusCode, "reason", apiErr.Reason)
	return apiErr
}

// loginResponse is the auth endpoint's success payload.
type loginResponse struct {
	Token string `json:"token"`
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Login exchanges credentials for a signed token. It does not store the
// token; that is the session manager's job.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", payload, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &APIError{Kind: KindDecode, Err: fmt.Errorf("auth response missing token")}
	}
	return resp.Token, nil
}

// Register creates a new account. Registration does not authenticate; the
// caller logs in separately.
func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", input, nil)
}
