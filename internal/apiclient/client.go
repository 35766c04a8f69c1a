// Package apiclient is a thin HTTP client for the daykeep server.
// Sessions are an explicit value on the client, never ambient state:
// Login and Signup store the returned token, ClearSession drops it.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"daykeep/internal/models"
)

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// Client talks to one daykeep server on behalf of at most one session.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New returns a client with no active session.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetSession installs a previously obtained token.
func (c *Client) SetSession(token string) {
	c.token = token
}

// ClearSession forgets the current token.
func (c *Client) ClearSession() {
	c.token = ""
}

// Authenticated reports whether the client holds a session token.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

type authResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Signup registers a new account and starts a session.
func (c *Client) Signup(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/signup", body, &resp); err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// Login authenticates an existing account and starts a session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", body, &resp); err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// ListTodos fetches the session user's todos in creation order.
func (c *Client) ListTodos(ctx context.Context) ([]models.Todo, error) {
	var todos []models.Todo
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// CreateTodo adds a todo and returns the stored copy.
func (c *Client) CreateTodo(ctx context.Context, description string) (models.Todo, error) {
	body := map[string]string{"description": description}
	var todo models.Todo
	if err := c.do(ctx, http.MethodPost, "/todos", body, &todo); err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

// UpdateTodo patches a todo. Nil fields are left unchanged.
func (c *Client) UpdateTodo(ctx context.Context, todoID int64, description *string, completed *bool) (models.Todo, error) {
	body := map[string]any{}
	if description != nil {
		body["description"] = *description
	}
	if completed != nil {
		body["completed"] = *completed
	}
	var todo models.Todo
	path := fmt.Sprintf("/todos/%d", todoID)
	if err := c.do(ctx, http.MethodPut, path, body, &todo); err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

// DeleteTodo removes a todo and returns the deleted copy.
func (c *Client) DeleteTodo(ctx context.Context, todoID int64) (models.Todo, error) {
	var resp struct {
		Message     string      `json:"message"`
		DeletedTodo models.Todo `json:"deletedTodo"`
	}
	path := fmt.Sprintf("/todos/%d", todoID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return models.Todo{}, err
	}
	return resp.DeletedTodo, nil
}

// ListEvents fetches every calendar event of the session user.
func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent adds a calendar event. Time and emoji may be empty.
func (c *Client) CreateEvent(ctx context.Context, name, date, eventTime, emoji string) (models.Event, error) {
	body := map[string]string{
		"event_name": name,
		"event_date": date,
		"event_time": eventTime,
		"emoji":      emoji,
	}
	var event models.Event
	if err := c.do(ctx, http.MethodPost, "/events", body, &event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

// DeleteEvent removes a calendar event.
func (c *Client) DeleteEvent(ctx context.Context, eventID int64) error {
	path := fmt.Sprintf("/events/%d", eventID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error == "" {
			envelope.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
