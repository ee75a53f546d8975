// Package backend talks to the upstream events service that owns all
// event and registration data. The admin service is a thin front over
// this API: every call either returns a decoded payload or one opaque
// error, with no retries and no caching.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/remix-pengkefei/ai-training-admin/internal/model"
)

// API is what the rest of the service sees of the events backend.
type API interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	CreateEvent(ctx context.Context, in model.EventInput) (*model.Event, error)
	UpdateEvent(ctx context.Context, id string, in model.EventInput) (*model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListRegistrations(ctx context.Context, eventID string) ([]model.Registration, error)
	UploadImage(ctx context.Context, filename string, file io.Reader) (string, error)
}

// Client is the HTTP implementation of API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client for the given base URL,
// e.g. "http://localhost:3001/api".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// doRequest performs one request and returns the raw response body.
func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[Backend] ERROR: %s %s failed: %v", method, path, err)
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		log.Printf("[Backend] ERROR: %s %s returned %d: %s", method, path, resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("backend error %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

func (c *Client) ListEvents(ctx context.Context) ([]model.Event, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, "/events", nil, "")
	if err != nil {
		return nil, err
	}

	var events []model.Event
	if err := json.Unmarshal(respBody, &events); err != nil {
		return nil, fmt.Errorf("failed to parse events: %w", err)
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, "/events/"+id, nil, "")
	if err != nil {
		return nil, err
	}

	var event model.Event
	if err := json.Unmarshal(respBody, &event); err != nil {
		return nil, fmt.Errorf("failed to parse event: %w", err)
	}
	return &event, nil
}

func (c *Client) CreateEvent(ctx context.Context, in model.EventInput) (*model.Event, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event: %w", err)
	}

	respBody, err := c.doRequest(ctx, http.MethodPost, "/events", bytes.NewReader(payload), "application/json")
	if err != nil {
		return nil, err
	}

	var event model.Event
	if err := json.Unmarshal(respBody, &event); err != nil {
		return nil, fmt.Errorf("failed to parse created event: %w", err)
	}
	return &event, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, in model.EventInput) (*model.Event, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event: %w", err)
	}

	respBody, err := c.doRequest(ctx, http.MethodPut, "/events/"+id, bytes.NewReader(payload), "application/json")
	if err != nil {
		return nil, err
	}

	var event model.Event
	if err := json.Unmarshal(respBody, &event); err != nil {
		return nil, fmt.Errorf("failed to parse updated event: %w", err)
	}
	return &event, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, "/events/"+id, nil, "")
	return err
}

func (c *Client) ListRegistrations(ctx context.Context, eventID string) ([]model.Registration, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, "/events/"+eventID+"/registrations", nil, "")
	if err != nil {
		return nil, err
	}

	var regs []model.Registration
	if err := json.Unmarshal(respBody, &regs); err != nil {
		return nil, fmt.Errorf("failed to parse registrations: %w", err)
	}
	return regs, nil
}

// uploadResponse is the backend's reply to an image upload.
type uploadResponse struct {
	URL string `json:"url"`
}

// UploadImage forwards an image to the backend's multipart upload
// endpoint (field name "image") and returns the stored URL.
func (c *Client) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to buffer upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to finish upload form: %w", err)
	}

	respBody, err := c.doRequest(ctx, http.MethodPost, "/upload", &buf, mw.FormDataContentType())
	if err != nil {
		return "", err
	}

	var upload uploadResponse
	if err := json.Unmarshal(respBody, &upload); err != nil {
		return "", fmt.Errorf("failed to parse upload response: %w", err)
	}
	return upload.URL, nil
}
