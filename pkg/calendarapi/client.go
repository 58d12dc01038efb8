package calendarapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client is the HTTP wrapper for the calendar backend REST API. The bearer
// token is passed per call since one client serves every user.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithRateLimit caps outbound requests to perSec with the given burst.
func WithRateLimit(perSec float64, burst int) Option {
	return func(c *Client) {
		if perSec <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSec), max(burst, 1))
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a new backend client.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListCalendars lists the caller's calendars via GET /api/calendars.
func (c *Client) ListCalendars(ctx context.Context, token string) ([]Calendar, error) {
	var out []Calendar
	if err := c.do(ctx, http.MethodGet, "/api/calendars", token, nil, &out); err != nil {
		return nil, fmt.Errorf("list calendars: %w", err)
	}
	return out, nil
}

// ListShares lists the shares granted to the caller via GET /api/shares.
func (c *Client) ListShares(ctx context.Context, token string) ([]Share, error) {
	var out []Share
	if err := c.do(ctx, http.MethodGet, "/api/shares", token, nil, &out); err != nil {
		return nil, fmt.Errorf("list shares: %w", err)
	}
	return out, nil
}

// ListEvents lists the events of one calendar.
func (c *Client) ListEvents(ctx context.Context, token, calendarID string) ([]Event, error) {
	var out []Event
	path := "/api/calendars/" + url.PathEscape(calendarID) + "/events"
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, fmt.Errorf("list events of %s: %w", calendarID, err)
	}
	return out, nil
}

// CreateEvent creates an event in a calendar.
func (c *Client) CreateEvent(ctx context.Context, token, calendarID string, req EventRequest) (*Event, error) {
	var out Event
	path := "/api/calendars/" + url.PathEscape(calendarID) + "/events"
	if err := c.do(ctx, http.MethodPost, path, token, req, &out); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return &out, nil
}

// DeleteEvent deletes an event via DELETE /api/events/{id}.
func (c *Client) DeleteEvent(ctx context.Context, token, eventID string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/events/"+url.PathEscape(eventID), token, nil, nil); err != nil {
		return fmt.Errorf("delete event %s: %w", eventID, err)
	}
	return nil
}

// CreateCalendar creates an owned calendar.
func (c *Client) CreateCalendar(ctx context.Context, token string, req CalendarRequest) (*Calendar, error) {
	var out Calendar
	if err := c.do(ctx, http.MethodPost, "/api/calendars", token, req, &out); err != nil {
		return nil, fmt.Errorf("create calendar: %w", err)
	}
	return &out, nil
}

// ShareCalendar invites a user, by email, to one of the caller's calendars.
func (c *Client) ShareCalendar(ctx context.Context, token string, req ShareRequest) (*ShareInvite, error) {
	var out ShareInvite
	if err := c.do(ctx, http.MethodPost, "/api/shares", token, req, &out); err != nil {
		return nil, fmt.Errorf("share calendar %s: %w", req.CalendarID, err)
	}
	return &out, nil
}

// DeleteCalendar deletes an owned calendar and its events.
func (c *Client) DeleteCalendar(ctx context.Context, token, calendarID string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/calendars/"+url.PathEscape(calendarID), token, nil, nil); err != nil {
		return fmt.Errorf("delete calendar %s: %w", calendarID, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call calendar API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		apiErr := &APIError{Status: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &msg) == nil && msg.Message != "" {
			apiErr.Message = msg.Message
		} else {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
