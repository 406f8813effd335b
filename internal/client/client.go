// Package client is a small HTTP client for the hospital availability API,
// used by polling frontends and operational tooling.
package client

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

	"hospital-bed-backend/internal/models"
)

// DefaultTimeout bounds every request when the caller supplies no timeout.
const DefaultTimeout = 10 * time.Second

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("%s (%s)", e.Message, strings.Join(e.Errors, "; "))
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken attaches a bearer token to subsequent requests. Required for
// submissions and deletions.
func (c *Client) SetToken(token string) {
	c.token = token
}

// ListHospitals fetches hospitals matching the optional search and region
// filters, newest submission first.
func (c *Client) ListHospitals(ctx context.Context, search, region string) ([]models.Hospital, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if region != "" {
		query.Set("region", region)
	}

	var hospitals []models.Hospital
	if err := c.get(ctx, "/api/hospitals", query, &hospitals); err != nil {
		return nil, err
	}
	return hospitals, nil
}

// History fetches the daily average availability for one hospital over the
// last days days.
func (c *Client) History(ctx context.Context, hospitalID uint, days int) ([]models.DailyAvailability, error) {
	query := url.Values{}
	if days > 0 {
		query.Set("days", strconv.Itoa(days))
	}

	var daily []models.DailyAvailability
	path := fmt.Sprintf("/api/hospitals/%d/history", hospitalID)
	if err := c.get(ctx, path, query, &daily); err != nil {
		return nil, err
	}
	return daily, nil
}

// Stats fetches the dashboard totals.
func (c *Client) Stats(ctx context.Context) (*models.BedStats, error) {
	var stats models.BedStats
	if err := c.get(ctx, "/api/hospitals/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Submit sends one availability submission. The returned bool is true when
// the server created a new hospital rather than updating an existing one.
func (c *Client) Submit(ctx context.Context, input *models.HospitalInput) (*models.Hospital, bool, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/hospitals", bytes.NewReader(body))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, false, decodeError(resp)
	}

	var hospital models.Hospital
	if err := json.NewDecoder(resp.Body).Decode(&hospital); err != nil {
		return nil, false, err
	}
	return &hospital, resp.StatusCode == http.StatusCreated, nil
}

// Delete removes a hospital and its history.
func (c *Client) Delete(ctx context.Context, hospitalID uint) error {
	path := fmt.Sprintf("%s/api/hospitals/%d", c.baseURL, hospitalID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = resp.Status
	}
	return apiErr
}
