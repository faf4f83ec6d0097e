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
	"strings"
	"sync"
	"time"

	"taskpurse/internal/client/models"
)

// RESTClient talks JSON over HTTP to the reference server. It holds the
// access/refresh token pair and transparently refreshes an expired access
// token once per request.
type RESTClient struct {
	baseURL string
	http    *http.Client

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

// NewRESTClient builds a client for the given endpoint, e.g.
// "http://127.0.0.1:8080".
func NewRESTClient(endpointURL string) (*RESTClient, error) {
	u, err := url.Parse(endpointURL)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint url: %w", err)
	}
	if u.Scheme == "" {
		u.Scheme = "http"
	}
	return &RESTClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Timeout: 12 * time.Second},
	}, nil
}

func (c *RESTClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *RESTClient) tokens() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

func (c *RESTClient) setTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = access
	c.refreshToken = refresh
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// do performs one JSON request/response round trip. A 401 response triggers
// a single token refresh followed by one retry of the original request, the
// same recovery the access-token interceptor used to do.
func (c *RESTClient) do(ctx context.Context, method, path string, body any, out any) error {
	err := c.doOnce(ctx, method, path, body, out)
	if !errors.Is(err, ErrUnauthorized) {
		return err
	}

	_, refresh := c.tokens()
	if refresh == "" {
		return err
	}

	var pair tokenPair
	if rerr := c.doOnce(ctx, http.MethodPost, "/api/v1/auth/refresh",
		map[string]string{"refresh_token": refresh}, &pair); rerr != nil {
		return err
	}
	c.setTokens(pair.AccessToken, pair.RefreshToken)

	return c.doOnce(ctx, method, path, body, out)
}

func (c *RESTClient) doOnce(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access, _ := c.tokens(); access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	return c.mapStatusError(resp)
}

func (c *RESTClient) mapTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return ErrUnavailable
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUnavailable
	}
	// connection refused, DNS failure and friends
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// mapStatusError converts an HTTP error status into a sentinel error,
// keeping the server's own message text so screens can surface it verbatim.
func (c *RESTClient) mapStatusError(resp *http.Response) error {
	msg := resp.Status
	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err == nil && er.Error != "" {
		msg = er.Error
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrUnavailable, msg)
	default:
		return fmt.Errorf("server error: %s", msg)
	}
}

// --- auth ---

func (c *RESTClient) SignUp(ctx context.Context, email string, password []byte) error {
	body := map[string]string{"email": email, "password": string(password)}
	return c.do(ctx, http.MethodPost, "/api/v1/auth/signup", body, nil)
}

func (c *RESTClient) SignIn(ctx context.Context, email string, password []byte) error {
	body := map[string]string{"email": email, "password": string(password)}
	var pair tokenPair
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/signin", body, &pair); err != nil {
		return err
	}
	c.setTokens(pair.AccessToken, pair.RefreshToken)
	return nil
}

func (c *RESTClient) SignOut(ctx context.Context) error {
	_, refresh := c.tokens()
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/signout",
		map[string]string{"refresh_token": refresh}, nil)
	c.setTokens("", "")
	return err
}

func (c *RESTClient) CurrentUser(ctx context.Context) (*Session, error) {
	var s Session
	if err := c.do(ctx, http.MethodGet, "/api/v1/session", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *RESTClient) Ping(ctx context.Context) error {
	var status struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/ping", nil, &status); err != nil {
		return err
	}
	if status.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

// --- tasks ---

func (c *RESTClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	var rows []models.Task
	if err := c.do(ctx, http.MethodGet, "/api/v1/tasks", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *RESTClient) GetTask(ctx context.Context, id string) (*models.Task, error) {
	var row models.Task
	if err := c.do(ctx, http.MethodGet, "/api/v1/tasks/"+url.PathEscape(id), nil, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (c *RESTClient) CreateTask(ctx context.Context, draft models.Task) (*models.Task, error) {
	var row models.Task
	if err := c.do(ctx, http.MethodPost, "/api/v1/tasks", draft, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (c *RESTClient) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) error {
	return c.do(ctx, http.MethodPatch, "/api/v1/tasks/"+url.PathEscape(id), patch, nil)
}

func (c *RESTClient) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/tasks/"+url.PathEscape(id), nil, nil)
}

// --- budget items ---

func (c *RESTClient) ListBudgetItems(ctx context.Context) ([]models.BudgetItem, error) {
	var rows []models.BudgetItem
	if err := c.do(ctx, http.MethodGet, "/api/v1/budget-items", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *RESTClient) GetBudgetItem(ctx context.Context, id string) (*models.BudgetItem, error) {
	var row models.BudgetItem
	if err := c.do(ctx, http.MethodGet, "/api/v1/budget-items/"+url.PathEscape(id), nil, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (c *RESTClient) CreateBudgetItem(ctx context.Context, draft models.BudgetItem) (*models.BudgetItem, error) {
	var row models.BudgetItem
	if err := c.do(ctx, http.MethodPost, "/api/v1/budget-items", draft, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (c *RESTClient) UpdateBudgetItem(ctx context.Context, id string, patch models.BudgetItemPatch) error {
	return c.do(ctx, http.MethodPatch, "/api/v1/budget-items/"+url.PathEscape(id), patch, nil)
}

func (c *RESTClient) DeleteBudgetItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/budget-items/"+url.PathEscape(id), nil, nil)
}
