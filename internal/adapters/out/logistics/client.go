// Package logistics implements the outbound adapters for the logistics
// backend: the REST client performing route state transitions and the TCP
// connectivity probe.
package logistics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// DefaultCallTimeout bounds every transition call. The remote state is
// uncertain after a timeout, so calls are never retried automatically.
const DefaultCallTimeout = 10 * time.Second

// invalidCodeMessage is the exact error body the backend returns when the
// confirmation code does not match its record.
const invalidCodeMessage = "Invalid confirmation code"

// Client is the HTTP implementation of ports.RouteTransitionClient. Each
// call fetches a fresh bearer token from the session; when no session is
// active the request goes out without an Authorization header and the server
// decides.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    ports.SessionProvider
	timeout    time.Duration
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the per-call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a transition client against the given base URL.
func NewClient(baseURL string, session ports.SessionProvider, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		session:    session,
		timeout:    DefaultCallTimeout,
		logger:     logger.With("component", "transition_client"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

var _ ports.RouteTransitionClient = (*Client)(nil)

type assignRequest struct {
	RouteUUID string `json:"routeUUID"`
	UserID    string `json:"userID"`
}

type routeRequest struct {
	RouteUUID string `json:"routeUUID"`
}

type confirmRequest struct {
	RouteUUID string `json:"routeUUID"`
	Code      string `json:"codigo"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Reserve transitions available -> pending, assigning the courier.
func (c *Client) Reserve(ctx context.Context, routeID kernel.UUID, courierID string) error {
	status, body, err := c.post(ctx, "reserve route", "/api/route/assign",
		assignRequest{RouteUUID: routeID.String(), UserID: courierID})
	if err != nil {
		return err
	}
	return rejectedUnlessOK("reserve route", status, body)
}

// Release transitions pending -> available. The backend clears the courier
// assignment on an empty userID.
func (c *Client) Release(ctx context.Context, routeID kernel.UUID) error {
	status, body, err := c.post(ctx, "release route", "/api/route/unassign",
		assignRequest{RouteUUID: routeID.String(), UserID: ""})
	if err != nil {
		return err
	}
	return rejectedUnlessOK("release route", status, body)
}

// Start transitions pending -> in_progress.
func (c *Client) Start(ctx context.Context, routeID kernel.UUID) error {
	status, body, err := c.post(ctx, "start route", "/api/route/start",
		routeRequest{RouteUUID: routeID.String()})
	if err != nil {
		return err
	}
	return rejectedUnlessOK("start route", status, body)
}

// Complete transitions in_progress -> completed. A 400 response carrying the
// backend's invalid-code message maps to an InvalidConfirmationCodeError so
// callers can re-prompt instead of failing the delivery.
func (c *Client) Complete(ctx context.Context, routeID kernel.UUID, confirmationCode string) error {
	status, body, err := c.post(ctx, "complete delivery", "/api/package/confirm",
		confirmRequest{RouteUUID: routeID.String(), Code: confirmationCode})
	if err != nil {
		return err
	}

	if status == http.StatusBadRequest {
		var errResp errorResponse
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Error == invalidCodeMessage {
			return errs.NewInvalidConfirmationCodeError(routeID.String())
		}
	}

	return rejectedUnlessOK("complete delivery", status, body)
}

// Cancel transitions pending or in_progress -> cancelled.
func (c *Client) Cancel(ctx context.Context, routeID kernel.UUID) error {
	status, body, err := c.post(ctx, "cancel delivery", "/api/route/cancel",
		routeRequest{RouteUUID: routeID.String()})
	if err != nil {
		return err
	}
	return rejectedUnlessOK("cancel delivery", status, body)
}

// post sends one JSON request bounded by the call timeout and returns the
// response status and body. Transport failures are already mapped; status
// interpretation is left to the caller.
func (c *Client) post(ctx context.Context, operation, path string, payload any) (int, []byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("encode %s request: %w", operation, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	// A fresh token per call; an expired or absent session does not block
	// the request, the server rejects it if authentication was required.
	if token, tokenErr := c.session.FreshIDToken(ctx); tokenErr != nil {
		c.logger.DebugContext(ctx, "sending transition without session token",
			"operation", operation, "error", tokenErr)
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, nil, errs.NewTimeoutErrorWithCause(operation, err)
		}
		return 0, nil, errs.NewNetworkUnavailableErrorWithCause(operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, body, nil
}

func rejectedUnlessOK(operation string, status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}
	return errs.NewTransitionRejectedError(operation, status, string(body))
}
