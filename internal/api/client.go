// Package api provides the HTTP client for the realty backend REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/models"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8000"

// agentType selects which backend agent answers chat messages.
const agentType = "real_estate"

// Client is an HTTP client for the realty API. All endpoints live under
// the /api prefix of the configured base URL. Every operation is a
// single fire-and-wait request; there are no retries or batching.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL. An empty base URL falls
// back to DefaultBaseURL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// HealthResponse is the reply from GET /api/.
type HealthResponse struct {
	Message string `json:"message"`
}

// Health checks that the backend API is reachable.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.get(ctx, "/api/", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListOptions narrows ListProperties. Zero values mean no filter and the
// server applies its own defaults.
type ListOptions struct {
	Status       string
	PropertyType string
	MinPrice     *int
	MaxPrice     *int
	Bedrooms     *int
	Limit        int
}

// ListProperties returns properties in whatever order the API yields them.
func (c *Client) ListProperties(ctx context.Context, opts ListOptions) ([]models.Property, error) {
	q := url.Values{}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.PropertyType != "" {
		q.Set("property_type", opts.PropertyType)
	}
	if opts.MinPrice != nil {
		q.Set("min_price", strconv.Itoa(*opts.MinPrice))
	}
	if opts.MaxPrice != nil {
		q.Set("max_price", strconv.Itoa(*opts.MaxPrice))
	}
	if opts.Bedrooms != nil {
		q.Set("bedrooms", strconv.Itoa(*opts.Bedrooms))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}

	path := "/api/properties"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var props []models.Property
	if err := c.get(ctx, path, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// GetProperty returns a single property by id.
func (c *Client) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var p models.Property
	if err := c.get(ctx, "/api/properties/"+url.PathEscape(id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProperty creates a new listing and returns the server's record.
func (c *Client) CreateProperty(ctx context.Context, payload models.PropertyPayload) (*models.Property, error) {
	var p models.Property
	if err := c.post(ctx, "/api/properties", payload, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProperty replaces the fields of an existing listing.
func (c *Client) UpdateProperty(ctx context.Context, id string, payload models.PropertyPayload) (*models.Property, error) {
	var p models.Property
	if err := c.put(ctx, "/api/properties/"+url.PathEscape(id), payload, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteResponse is the confirmation from DELETE /api/properties/{id}.
type DeleteResponse struct {
	Message string `json:"message"`
}

// DeleteProperty removes a listing.
func (c *Client) DeleteProperty(ctx context.Context, id string) (*DeleteResponse, error) {
	var resp DeleteResponse
	if err := c.doDelete(ctx, "/api/properties/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// chatRequest is the body for POST /api/chat.
type chatRequest struct {
	Message   string `json:"message"`
	AgentType string `json:"agent_type"`
}

// ChatResponse is the agent's reply. Success false means the agent ran
// but could not answer; callers treat it like a failed send.
type ChatResponse struct {
	Success      bool     `json:"success"`
	Response     string   `json:"response"`
	AgentType    string   `json:"agent_type"`
	Capabilities []string `json:"capabilities"`
	Error        *string  `json:"error,omitempty"`
}

// SendChatMessage forwards one user message to the real-estate agent.
func (c *Client) SendChatMessage(ctx context.Context, message string) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.post(ctx, "/api/chat", chatRequest{Message: message, AgentType: agentType}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SeedResponse is the reply from POST /api/seed-properties.
type SeedResponse struct {
	Message string `json:"message"`
}

// SeedProperties asks the backend to load its sample listings. The
// server skips seeding when properties already exist.
func (c *Client) SeedProperties(ctx context.Context) (*SeedResponse, error) {
	var resp SeedResponse
	if err := c.post(ctx, "/api/seed-properties", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with an optional JSON body.
func (c *Client) post(ctx context.Context, path string, body, result any) error {
	return c.send(ctx, http.MethodPost, path, body, result)
}

// put performs a PUT request with a JSON body.
func (c *Client) put(ctx context.Context, path string, body, result any) error {
	return c.send(ctx, http.MethodPut, path, body, result)
}

// doDelete performs a DELETE request.
func (c *Client) doDelete(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

func (c *Client) send(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, result)
}

// do executes an HTTP request, mapping failures to the NetworkError /
// ServerError taxonomy and decoding the body into result.
func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// FastAPI reports errors as {"detail": "..."}.
		var errResp struct {
			Detail string `json:"detail"`
		}
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Detail != "" {
			msg = errResp.Detail
		}
		return &ServerError{StatusCode: resp.StatusCode, Message: msg}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
