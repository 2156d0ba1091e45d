// Package strava is the API client for the Strava activity feed.
package strava

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	shared "github.com/trekline/server/pkg"
	httputil "github.com/trekline/server/pkg/infrastructure/http"
	"github.com/trekline/server/pkg/infrastructure/oauth"
)

const baseURL = "https://www.strava.com/api/v3"

// PageSize is the provider's standard page size. A page with fewer
// results signals end-of-feed.
const PageSize = 200

// ErrMalformedResponse marks payloads the provider returned but we could
// not decode.
var ErrMalformedResponse = errors.New("malformed response")

// Activity is one entry of the athlete's activity feed. Distances arrive
// in meters; Miles is the single place they are converted for display.
type Activity struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	DistanceMeters float64   `json:"distance"`
	MovingTime     int       `json:"moving_time"`
	StartDate      time.Time `json:"start_date"`
}

// Miles returns the activity distance in miles.
func (a Activity) Miles() float64 {
	return a.DistanceMeters / shared.MetersPerMile
}

// Client is an authenticated Strava API client.
type Client struct {
	client *http.Client
}

// NewClient creates a client over an already-authenticating *http.Client
// (normally oauth.NewHTTPClient; tests inject a fake transport).
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{client: httpClient}
}

// NewClientWithTokenSource builds the usual production client.
func NewClientWithTokenSource(source oauth.TokenSource) *Client {
	return NewClient(oauth.NewHTTPClient(source))
}

// ListActivities fetches one page of the athlete's activities, newest
// first. page is 1-based. after limits results to activities started
// after the given unix timestamp; pass 0 for no cursor.
func (c *Client) ListActivities(ctx context.Context, page int, after int64) ([]Activity, error) {
	u := baseURL + "/athlete/activities?page=" + strconv.Itoa(page) + "&per_page=" + strconv.Itoa(PageSize)
	if after > 0 {
		u += "&after=" + strconv.FormatInt(after, 10)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := httputil.ParseErrorResponse(resp); err != nil {
		return nil, err
	}

	var activities []Activity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return activities, nil
}
