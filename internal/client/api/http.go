package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type listResponse struct {
	Data       []models.Record `json:"data"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
}

type apiError struct {
	Error string `json:"error"`
}

// HTTPClient implements Client over the REST endpoints described by the
// API: POST /login, GET /users?page=N, PUT /users/{id}, DELETE /users/{id}.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	status, data, err := c.request(ctx, http.MethodPost, "/login", "", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	switch {
	case status >= 200 && status < 300:
		var out loginResponse
		if err := json.Unmarshal(data, &out); err != nil || out.Token == "" {
			return "", fmt.Errorf("%w: malformed login response", common.ErrServer)
		}
		return out.Token, nil
	case status >= 400 && status < 500:
		// the API reports bad credentials with a 4xx and an error message
		if msg := errorMessage(data); msg != "" {
			return "", fmt.Errorf("%w: %s", common.ErrUnauthorized, msg)
		}
		return "", common.ErrUnauthorized
	default:
		return "", fmt.Errorf("%w: status %d", common.ErrServer, status)
	}
}

func (c *HTTPClient) ListPage(ctx context.Context, page int, token string) (models.Page, error) {
	path := fmt.Sprintf("/users?page=%d", page)
	status, data, err := c.request(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return models.Page{}, err
	}
	if err := classifyStatus(status); err != nil {
		return models.Page{}, err
	}

	var out listResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return models.Page{}, fmt.Errorf("%w: malformed list response", common.ErrServer)
	}

	p := models.Page{Records: out.Data, Number: out.Page, TotalPages: out.TotalPages}
	if p.Number == 0 {
		p.Number = page
	}
	if p.TotalPages < 1 {
		p.TotalPages = 1
	}
	return p, nil
}

func (c *HTTPClient) UpdateRecord(ctx context.Context, id int, fields models.RecordFields, token string) (models.Record, error) {
	path := fmt.Sprintf("/users/%d", id)
	status, data, err := c.request(ctx, http.MethodPut, path, token, fields)
	if err != nil {
		return models.Record{}, err
	}
	if err := classifyStatus(status); err != nil {
		return models.Record{}, err
	}

	var rec models.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return models.Record{}, fmt.Errorf("%w: malformed update response", common.ErrServer)
	}
	// some backends echo only the submitted fields
	if rec.ID == 0 {
		rec.ID = id
	}
	return rec, nil
}

func (c *HTTPClient) DeleteRecord(ctx context.Context, id int, token string) error {
	path := fmt.Sprintf("/users/%d", id)
	status, _, err := c.request(ctx, http.MethodDelete, path, token, nil)
	if err != nil {
		return err
	}
	return classifyStatus(status)
}

// request performs one HTTP round trip and returns the status and raw body.
// Only build and transport failures produce an error here; status handling
// belongs to the operation.
func (c *HTTPClient) request(ctx context.Context, method, path, token string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, err
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "req_id", reqID, "error", err)
		return 0, nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}

	c.log.Debug(ctx, "request completed", "method", method, "path", path, "req_id", reqID, "status", resp.StatusCode)
	return resp.StatusCode, data, nil
}

// classifyStatus maps an HTTP status onto the error taxonomy. 2xx is nil.
func classifyStatus(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return common.ErrUnauthorized
	case status == http.StatusNotFound:
		return common.ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", common.ErrServer, status)
	}
}

func errorMessage(data []byte) string {
	var e apiError
	if err := json.Unmarshal(data, &e); err != nil {
		return ""
	}
	return e.Error
}
