package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"podly/internal/telemetry"
)

// Client handles booking-service API interactions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new booking-service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, payload, out interface{}) error {
	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	// metric label excludes query parameters to keep cardinality bounded
	metricPath := path
	if i := strings.IndexByte(metricPath, '?'); i >= 0 {
		metricPath = metricPath[:i]
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		telemetry.ObserveAPIRequest(metricPath, 0)
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()
	telemetry.ObserveAPIRequest(metricPath, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// Profile fetches the identity belonging to token. A 403 means the token is
// expired or invalid; any other error means the profile could not be
// verified right now.
func (c *Client) Profile(ctx context.Context, token string) (*Identity, error) {
	var identity Identity
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/profile", token, nil, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}
	var result struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", "", payload, &result); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", fmt.Errorf("login response contained no token")
	}
	return result.Token, nil
}

// Register creates a new account. The service returns a confirmation only;
// the caller logs in separately.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/v1/auth/register", "", req, nil)
}

// Slots lists the slots for a pod on a given date (YYYY-MM-DD).
func (c *Client) Slots(ctx context.Context, podID, date string) ([]Slot, error) {
	q := url.Values{}
	q.Set("pod_id", podID)
	q.Set("date", date)
	var slots []Slot
	if err := c.do(ctx, http.MethodGet, "/api/v1/slots/?"+q.Encode(), "", nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// Stores lists all store locations.
func (c *Client) Stores(ctx context.Context) ([]Store, error) {
	var stores []Store
	if err := c.do(ctx, http.MethodGet, "/api/v1/stores/", "", nil, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// Store fetches a single store by id.
func (c *Client) Store(ctx context.Context, id string) (*Store, error) {
	var store Store
	if err := c.do(ctx, http.MethodGet, "/api/v1/stores/"+url.PathEscape(id), "", nil, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

// Pods lists the pods of a store.
func (c *Client) Pods(ctx context.Context, storeID string) ([]Pod, error) {
	q := url.Values{}
	q.Set("store_id", storeID)
	var pods []Pod
	if err := c.do(ctx, http.MethodGet, "/api/v1/pods/?"+q.Encode(), "", nil, &pods); err != nil {
		return nil, err
	}
	return pods, nil
}

// Pod fetches a single pod by id.
func (c *Client) Pod(ctx context.Context, id string) (*Pod, error) {
	var pod Pod
	if err := c.do(ctx, http.MethodGet, "/api/v1/pods/"+url.PathEscape(id), "", nil, &pod); err != nil {
		return nil, err
	}
	return &pod, nil
}

// Bookings lists the authenticated user's bookings, most recent first.
func (c *Client) Bookings(ctx context.Context, token string, limit int) ([]Booking, error) {
	path := "/api/v1/bookings/"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var bookings []Booking
	if err := c.do(ctx, http.MethodGet, path, token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking submits a booking draft.
func (c *Client) CreateBooking(ctx context.Context, token string, req BookingRequest) (*Booking, error) {
	var booking Booking
	if err := c.do(ctx, http.MethodPost, "/api/v1/bookings/", token, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
