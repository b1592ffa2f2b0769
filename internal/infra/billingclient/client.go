package billingclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/pkg/errs"
)

// Client talks to the billing API of a running service. It implements billing.Writer.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default client, which has no timeout of its own; requests are
// bounded by the caller's context unless hc sets one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ billing.Writer = (*Client)(nil)

// FetchInputs reads the stored inputs of a reservation.
func (c *Client) FetchInputs(ctx context.Context, reservationID string) (billing.Inputs, error) {
	var in billing.Inputs
	path := "/api/reservations/" + url.PathEscape(reservationID) + "/billing/inputs"
	if err := c.do(ctx, http.MethodGet, path, nil, &in); err != nil {
		return billing.Inputs{}, err
	}
	return in, nil
}

// PersistCorrection sends the recalculated total and billed minutes to the admin endpoint.
func (c *Client) PersistCorrection(ctx context.Context, reservationID string, correction billing.Correction) error {
	path := "/api/admin/reservations/" + url.PathEscape(reservationID) + "/billing"
	if err := c.do(ctx, http.MethodPatch, path, correction, nil); err != nil {
		return err
	}
	c.logger.Info("billing correction persisted",
		"reservation_id", reservationID,
		"total_amount", correction.TotalAmount,
		"services", len(correction.Services))
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, fmt.Sprintf("%s %s", method, path))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Wrap(err, "read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("billing api request failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode)
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw, resp.StatusCode)}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Wrap(err, "decode response body")
	}
	return nil
}

// APIError is a non-2xx answer from the billing API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// errorMessage prefers "error" over "message"; either may be a string or an object carrying "message".
func errorMessage(raw []byte, status int) string {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err == nil {
		for _, key := range []string{"error", "message"} {
			if msg := messageFrom(body[key]); msg != "" {
				return msg
			}
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("request failed with status %d", status)
}

func messageFrom(field json.RawMessage) string {
	if len(field) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(field, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(field, &obj); err == nil {
		return strings.TrimSpace(obj.Message)
	}
	return ""
}
