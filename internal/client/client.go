// Package client implements the consumer side of the room API: an HTTP client,
// a reconciliation session that merges optimistic local taps with polled server
// state, and a poller driving the refresh loop.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/NachoLave/SushiLibre/internal/models"
)

// Client is an HTTP client for the room API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config holds configuration for the API client
type Config struct {
	// BaseURL is the server address, e.g. http://localhost:8080
	BaseURL string

	// HTTPClient overrides the default client (10s timeout) when set
	HTTPClient *http.Client
}

// APIError is a non-2xx response from the server
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// IsNotFound reports whether err is a 404 from the server
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsConflict reports whether err is a 409 from the server
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict
}

// New creates a new API client
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

type roomResponse struct {
	Room *models.Room `json:"room"`
}

type recordResponse struct {
	Room *models.FinishedRoom `json:"room"`
}

type recordsResponse struct {
	Rooms []*models.FinishedRoom `json:"rooms"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// CreateRoom creates a room with the given user as creator
func (c *Client) CreateRoom(ctx context.Context, nombre, userID string) (*models.Room, error) {
	payload := map[string]string{"nombre": nombre, "userId": userID}

	var resp roomResponse
	if err := c.call(ctx, http.MethodPost, "/api/rooms", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Room, nil
}

// GetRoom fetches the current snapshot of a room
func (c *Client) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	var resp roomResponse
	if err := c.call(ctx, http.MethodGet, "/api/rooms/"+roomID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Room, nil
}

// JoinRoom adds the user to a room
func (c *Client) JoinRoom(ctx context.Context, roomID, userID, nombre string) (*models.Room, error) {
	payload := map[string]string{"userId": userID, "nombre": nombre}

	var resp roomResponse
	if err := c.call(ctx, http.MethodPost, "/api/rooms/"+roomID+"/participants", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Room, nil
}

// UpdateParticipant patches the user's count and/or finished flag
func (c *Client) UpdateParticipant(ctx context.Context, roomID, userID string, piezas *int, finalizado *bool) (*models.Room, error) {
	payload := map[string]interface{}{"userId": userID}
	if piezas != nil {
		payload["piezas"] = *piezas
	}
	if finalizado != nil {
		payload["finalizado"] = *finalizado
	}

	var resp roomResponse
	if err := c.call(ctx, http.MethodPatch, "/api/rooms/"+roomID+"/participants", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Room, nil
}

// FinishRoom forces the room into its finished state
func (c *Client) FinishRoom(ctx context.Context, roomID string) (*models.Room, error) {
	payload := map[string]bool{"finalizado": true}

	var resp roomResponse
	if err := c.call(ctx, http.MethodPatch, "/api/rooms/"+roomID, payload, &resp); err != nil {
		return nil, err
	}
	return resp.Room, nil
}

// FinishedRoom fetches the archived record of a finished room
func (c *Client) FinishedRoom(ctx context.Context, roomID string) (*models.FinishedRoom, error) {
	var resp recordResponse
	if err := c.call(ctx, http.MethodGet, "/api/finished-rooms/"+roomID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Room, nil
}

// FinishedRooms fetches all archived records, most recent first
func (c *Client) FinishedRooms(ctx context.Context) ([]*models.FinishedRoom, error) {
	var resp recordsResponse
	if err := c.call(ctx, http.MethodGet, "/api/finished-rooms", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Rooms, nil
}

func (c *Client) call(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr errorResponse
		if err := json.Unmarshal(data, &apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("unmarshal: %w", err)
		}
	}

	return nil
}
