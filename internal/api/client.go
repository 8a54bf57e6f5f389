// Package api implements the REST client for the GestorVerde backend.
//
// Every call is bounded by the configured request timeout, carries an
// X-Request-Id for correlation, and attaches the session's bearer token on
// authenticated routes. HTTP outcomes are mapped onto sentinel errors
// (see errors.go) so callers can branch with errors.Is while still having
// access to the server's message via *APIError.
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

	"github.com/gestorverde/gestorverde/internal/config"
	"github.com/gestorverde/gestorverde/internal/models"
	"github.com/google/uuid"
)

// TokenSource supplies the current bearer token. An empty string means
// anonymous; authenticated routes will then fail server-side with 401.
type TokenSource interface {
	Token() string
}

// Client is the backend surface the rest of the application depends on.
type Client interface {
	SignIn(ctx context.Context, creds Credentials) (string, error)
	SignUp(ctx context.Context, reg Registration) (string, error)
	DeleteAccount(ctx context.Context) error

	AllTerrains(ctx context.Context, page, size int) (*models.Page[models.Terrain], error)
	MyTerrains(ctx context.Context, email string, page, size int) (*models.Page[models.Terrain], error)
	Terrain(ctx context.Context, id int64) (*models.Terrain, error)
	CreateTerrain(ctx context.Context, t *models.Terrain) (*models.Terrain, error)
	UpdateTerrain(ctx context.Context, id int64, t *models.Terrain) (*models.Terrain, error)
	DeleteTerrain(ctx context.Context, id int64) error

	SeedTypes(ctx context.Context) ([]models.SeedType, error)
	CreateCrop(ctx context.Context, p *models.CropPayload) (*models.Crop, error)
	UpdateCrop(ctx context.Context, id int64, p *models.CropPayload) (*models.Crop, error)
	DeleteCrop(ctx context.Context, id int64) error
}

// HTTPClient is the concrete Client over net/http.
type HTTPClient struct {
	baseURL   string
	endpoints config.Endpoints
	timeout   time.Duration
	tokens    TokenSource
	http      *http.Client
}

// NewHTTPClient builds a client from configuration. tokens may be nil for a
// purely anonymous client (sign-in/sign-up only).
func NewHTTPClient(cfg *config.Config, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL:   strings.TrimRight(cfg.APIBaseURL, "/"),
		endpoints: cfg.Endpoints,
		timeout:   cfg.RequestTimeout,
		tokens:    tokens,
		http:      &http.Client{},
	}
}

// expandID substitutes the ":id" placeholder in a route template.
func expandID(path string, id int64) string {
	return strings.Replace(path, ":id", strconv.FormatInt(id, 10), 1)
}

// do performs one round trip. body (if non-nil) is JSON-encoded; out (if
// non-nil) receives the decoded response body. withAuth attaches the bearer
// token.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any, withAuth bool) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withAuth && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// mapError converts a non-2xx response into an *APIError carrying the
// server's {"error": "..."} message when one is present.
func (c *HTTPClient) mapError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(data) > 0 {
		var payload struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &payload) == nil {
			if payload.Error != "" {
				apiErr.Message = payload.Error
			} else {
				apiErr.Message = payload.Message
			}
		}
	}
	return apiErr
}
