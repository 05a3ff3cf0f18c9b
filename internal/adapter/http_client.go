// Package adapter contains the outbound API client used by the authctl
// command-line tool to talk to a running filmoteka-auth server.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pzawadzki/filmoteka-auth/models"
)

// HTTPClientConfig holds the connection settings for [NewAPIClient].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// APIClient is the boundary the client-side code uses to reach the server.
type APIClient interface {
	// Login exchanges credentials for a bearer token and remembers it for
	// subsequent calls.
	Login(ctx context.Context, username, password string) (models.TokenResponse, error)

	// UserDetails fetches the identity and roles of the logged-in user.
	UserDetails(ctx context.Context) (models.UserDisplay, error)

	// CreateUser creates a new account; requires an admin token.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.UserDisplay, error)

	// Token returns the bearer token obtained by the last successful Login.
	Token() string
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewAPIClient constructs an [APIClient] over resty with sane defaults.
func NewAPIClient(cfg HTTPClientConfig) APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}
}

func (h *httpAPIClient) setToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Login(ctx context.Context, username, password string) (models.TokenResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Username: username, Password: password}).
		Post("/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	var token models.TokenResponse
	if err := json.Unmarshal(resp.Body(), &token); err != nil {
		return models.TokenResponse{}, fmt.Errorf("login decode response: %w", err)
	}

	h.setToken(token.AccessToken)
	return token, nil
}

func (h *httpAPIClient) UserDetails(ctx context.Context) (models.UserDisplay, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		Get("/user_details")
	if err != nil {
		return models.UserDisplay{}, fmt.Errorf("user details request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserDisplay{}, err
	}

	var details models.UserDisplay
	if err := json.Unmarshal(resp.Body(), &details); err != nil {
		return models.UserDisplay{}, fmt.Errorf("user details decode response: %w", err)
	}

	return details, nil
}

func (h *httpAPIClient) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.UserDisplay, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(h.Token()).
		SetBody(req).
		Post("/users")
	if err != nil {
		return models.UserDisplay{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserDisplay{}, err
	}

	var created models.UserDisplay
	if err := json.Unmarshal(resp.Body(), &created); err != nil {
		return models.UserDisplay{}, fmt.Errorf("create user decode response: %w", err)
	}

	return created, nil
}

// mapHTTPError converts non-2xx responses into client-side sentinel errors,
// preserving the server's detail message where available.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	detail := serverDetail(resp)

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	default:
		return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode(), detail)
	}
}

func serverDetail(resp *resty.Response) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return resp.Status()
}
