package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/logging"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-Id"

const defaultTimeout = 12 * time.Second

// envelope is the {success, message?, user?} body shared by every
// non-list endpoint.
type envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

// HTTPClient talks to the directory backend over HTTP/JSON. Session state
// lives entirely in the cookie jar of the underlying http.Client.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client. Apply it before
// WithTimeout and WithJar, which modify the current one.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

func WithJar(jar http.CookieJar) Option {
	return func(c *HTTPClient) { c.http.Jar = jar }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) Me(ctx context.Context) (models.User, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &env); err != nil {
		return models.User{}, err
	}
	if !env.Success {
		return models.User{}, fmt.Errorf("%w: %s", ErrUnauthorized, env.Message)
	}
	if env.User == nil {
		return models.User{}, fmt.Errorf("%w: user missing", ErrMalformedResponse)
	}
	return *env.User, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	return c.submit(ctx, http.MethodPost, "/auth/login", creds)
}

func (c *HTTPClient) Logout(ctx context.Context) (string, error) {
	return c.submit(ctx, http.MethodPost, "/auth/logout", nil)
}

func (c *HTTPClient) Signup(ctx context.Context, req models.SignupRequest) (string, error) {
	return c.submit(ctx, http.MethodPost, "/users", req)
}

func (c *HTTPClient) CreateUser(ctx context.Context, req models.CreateUserRequest) (string, error) {
	return c.submit(ctx, http.MethodPost, "/users/createUser", req)
}

func (c *HTTPClient) ListUsers(ctx context.Context, q models.PageQuery) (models.PageResult, error) {
	var body struct {
		Success *bool          `json:"success"`
		Message string         `json:"message"`
		Users   *[]models.User `json:"users"`
		Total   *int           `json:"total"`
		Page    int            `json:"page"`
	}
	if err := c.do(ctx, http.MethodGet, "/users", q.Values(), nil, &body); err != nil {
		return models.PageResult{}, err
	}
	switch {
	case body.Success != nil && !*body.Success:
		return models.PageResult{}, fmt.Errorf("%w: list rejected: %q", ErrMalformedResponse, body.Message)
	case body.Users == nil || body.Total == nil:
		return models.PageResult{}, fmt.Errorf("%w: list has no users or total", ErrMalformedResponse)
	case *body.Total < 0:
		return models.PageResult{}, fmt.Errorf("%w: negative total %d", ErrMalformedResponse, *body.Total)
	}
	return models.PageResult{Users: *body.Users, Total: *body.Total, Page: body.Page}, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, patch models.Patch) (string, error) {
	return c.submit(ctx, http.MethodPatch, userPath(patch.ID), patch)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int64) error {
	_, err := c.submit(ctx, http.MethodDelete, userPath(id), nil)
	return err
}

func userPath(id int64) string {
	return "/users/" + strconv.FormatInt(id, 10)
}

// submit sends a request answered by an envelope and turns success:false
// into a RejectedError.
func (c *HTTPClient) submit(ctx context.Context, method, path string, body any) (string, error) {
	var env envelope
	if err := c.do(ctx, method, path, nil, body, &env); err != nil {
		return "", err
	}
	if !env.Success {
		return "", &RejectedError{Message: env.Message}
	}
	return env.Message, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.With("request_id", requestID, "method", method, "path", path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(start))

	if err := mapStatus(resp.StatusCode); err != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

func mapStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrUnauthorized, code)
	case code >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, code)
	default:
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, code)
	}
}
