package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bobhenl/trivago-auth-main/internal/client/models"
	"github.com/bobhenl/trivago-auth-main/internal/logging"
)

// Request bodies, field names fixed by the service contract.
type emailRequest struct {
	Email string `json:"email"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type checkEmailResponse struct {
	EmailExist bool `json:"emailExist"`
}

type errorResponse struct {
	Msg string `json:"msg"`
}

// HTTPClient implements Client over HTTPS. The cookie jar carries the
// session credential the service sets on login, so every subsequent call
// replays it implicitly.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the service at baseURL. timeout bounds
// every request end to end.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Jar: jar, Timeout: timeout},
		log:     log,
	}, nil
}

func (c *HTTPClient) CheckEmail(ctx context.Context, email string) (bool, error) {
	var out checkEmailResponse
	if err := c.post(ctx, "/auth", emailRequest{Email: email}, &out); err != nil {
		return false, err
	}
	return out.EmailExist, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) error {
	return c.post(ctx, "/auth/login", credentialsRequest{Email: email, Password: password}, nil)
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) error {
	return c.post(ctx, "/auth/register", credentialsRequest{Email: email, Password: password}, nil)
}

func (c *HTTPClient) RequestReset(ctx context.Context, email string) error {
	return c.post(ctx, "/auth/forgot-password", emailRequest{Email: email}, nil)
}

func (c *HTTPClient) ChangePassword(ctx context.Context, token, newPassword string) error {
	return c.post(ctx, "/auth/change-password", changePasswordRequest{Token: token, NewPassword: newPassword}, nil)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil)
}

func (c *HTTPClient) GetProfile(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	req, err := c.newRequest(ctx, http.MethodGet, "/user", nil)
	if err != nil {
		return models.Profile{}, err
	}
	if err := c.do(req, &p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (c *HTTPClient) GoogleAuthURL() string {
	return c.baseURL + "/auth/google"
}

func (c *HTTPClient) post(ctx context.Context, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body *bytes.Buffer) (*http.Request, error) {
	var r *http.Request
	var err error
	if body == nil {
		r, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	} else {
		r, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	}
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("X-Request-Id", uuid.NewString())
	return r, nil
}

// do executes the request and decodes the response into out (if non-nil).
// Any non-2xx status is a failure carrying the body's `msg` when present.
func (c *HTTPClient) do(req *http.Request, out any) error {
	ctx := req.Context()
	c.log.Debug(ctx, "request", "method", req.Method, "url", req.URL.String(),
		"request_id", req.Header.Get("X-Request-Id"))

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Error(ctx, "request failed", "method", req.Method, "url", req.URL.String(), "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{Status: resp.StatusCode}
		var body errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiErr.Msg = body.Msg
		}
		c.log.Warn(ctx, "server error", "method", req.Method, "url", req.URL.String(),
			"status", resp.StatusCode, "msg", apiErr.Msg)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.log.Error(ctx, "malformed response", "method", req.Method, "url", req.URL.String(), "error", err)
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

var _ Client = (*HTTPClient)(nil)
