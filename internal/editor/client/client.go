// Package client is the editor's HTTP client for the auth service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/framepeach/framepeach/internal/common"
)

// User is the account payload returned by the auth service.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Token     string `json:"token,omitempty"`
}

type apiResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
}

// Client talks to the auth service and remembers the session token from
// the last successful login.
type Client struct {
	baseURL string
	http    *http.Client

	token string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Token returns the session token, empty when not logged in.
func (c *Client) Token() string {
	return c.token
}

// Logout drops the session token.
func (c *Client) Logout() {
	c.token = ""
}

func (c *Client) do(ctx context.Context, method, path string, body any) (int, *apiResponse, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var env apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("decoding response: %w", err)
	}
	return resp.StatusCode, &env, nil
}

// statusError maps an error response to the shared sentinels so callers
// can branch with errors.Is.
func statusError(status int, env *apiResponse) error {
	var sentinel error
	switch status {
	case http.StatusBadRequest:
		sentinel = common.ErrorValidation
		if env != nil && strings.Contains(env.Message, "exists") {
			sentinel = common.ErrorAlreadyExists
		}
	case http.StatusUnauthorized:
		sentinel = common.ErrorUnauthorized
	case http.StatusNotFound:
		sentinel = common.ErrorNotFound
	default:
		sentinel = common.ErrorInternal
	}
	if env != nil && env.Message != "" {
		return fmt.Errorf("%s: %w", env.Message, sentinel)
	}
	return sentinel
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, firstName, lastName, email, password string) error {
	status, env, err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"firstname": firstName,
		"lastname":  lastName,
		"email":     email,
		"password":  password,
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return statusError(status, env)
	}
	return nil
}

// Login authenticates and stores the session token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	status, env, err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK || env.User == nil {
		return nil, statusError(status, env)
	}

	c.token = env.User.Token
	return env.User, nil
}

// Me returns the account behind the stored session token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	status, env, err := c.do(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK || env.User == nil {
		return nil, statusError(status, env)
	}
	return env.User, nil
}

// Ping checks whether the auth service is reachable. Used by the editor's
// online/offline mode watcher.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check status %d: %w", resp.StatusCode, common.ErrorInternal)
	}
	return nil
}
