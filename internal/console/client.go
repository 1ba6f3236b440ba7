// Package console holds the client side of the projects API: an HTTP
// client and the local mirror state the terminal UI renders.
package console

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/webprojects/webprojects/internal/projects/domain"
)

const DefaultBaseURL = "http://localhost:5050"

// ErrInvalidResponse is returned when a create call succeeds at the
// transport level but the service does not answer 201 with a record.
var ErrInvalidResponse = errors.New("invalid response from server")

// StatusError is an unexpected HTTP status from the service.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("projects api returned status %d: %s", e.Code, e.Body)
}

// Client talks to the projects API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the API root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches every project.
func (c *Client) List(ctx context.Context) ([]domain.Project, error) {
	status, body, err := c.do(ctx, http.MethodGet, c.projectsURL(), nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusError(status, body)
	}

	var items []domain.Project
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return items, nil
}

// Create submits a new project and returns the stored record.
func (c *Client) Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	status, body, err := c.do(ctx, http.MethodPost, c.projectsURL(), in)
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, statusError(status, body))
	}
	if len(bytes.TrimSpace(body)) == 0 || bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, fmt.Errorf("%w: missing project", ErrInvalidResponse)
	}

	var p domain.Project
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &p, nil
}

// Update replaces the fields of project id and returns the server's copy.
func (c *Client) Update(ctx context.Context, id int, in domain.ProjectInput) (*domain.Project, error) {
	status, body, err := c.do(ctx, http.MethodPut, c.projectURL(id), in)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusError(status, body)
	}

	var p domain.Project
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &p, nil
}

// Delete removes project id.
func (c *Client) Delete(ctx context.Context, id int) error {
	status, body, err := c.do(ctx, http.MethodDelete, c.projectURL(id), nil)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent && status != http.StatusOK {
		return statusError(status, body)
	}
	return nil
}

func (c *Client) projectsURL() string {
	return c.baseURL + "/api/projects"
}

func (c *Client) projectURL(id int) string {
	return c.projectsURL() + "/" + strconv.Itoa(id)
}

func (c *Client) do(ctx context.Context, method, url string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to call projects api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func statusError(status int, body []byte) error {
	if status == http.StatusNotFound {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, strings.TrimSpace(string(body)))
	}
	return &StatusError{Code: status, Body: strings.TrimSpace(string(body))}
}
