package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/deepgram/simplechat/internal/domain/chat/models"
	"github.com/deepgram/simplechat/pkg/logger"
)

// Sender performs one chat round trip
type Sender interface {
	Send(ctx context.Context, message string) (string, error)
}

// Client posts messages to the chat endpoint over HTTP
type Client struct {
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
	token      string
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds each Send. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithToken sends a bearer token with each request
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Send posts {"message": message} and returns the "response" field of the
// reply. Every failure is a *RequestFailure.
func (c *Client) Send(ctx context.Context, message string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(models.ChatRequest{Message: message})
	if err != nil {
		return "", &RequestFailure{Kind: FailureTransport, Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &RequestFailure{Kind: FailureTransport, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	logger.Debug(logger.CLIENT, "Sending %d characters to %s (request %s)", len(message), c.endpoint, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &RequestFailure{Kind: FailureTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// the error body has no fixed schema; drain so the connection is reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return "", &RequestFailure{Kind: FailureStatus, StatusCode: resp.StatusCode}
	}

	var payload struct {
		Response *string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", &RequestFailure{Kind: FailureDecode, StatusCode: resp.StatusCode, Err: fmt.Errorf("invalid response body: %w", err)}
	}
	if payload.Response == nil {
		return "", &RequestFailure{Kind: FailureDecode, StatusCode: resp.StatusCode, Err: errors.New(`invalid response body: missing "response" field`)}
	}

	logger.Debug(logger.CLIENT, "Received %d characters (request %s)", len(*payload.Response), requestID)
	return *payload.Response, nil
}
