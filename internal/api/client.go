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
)

// Client talks to a leaderboard Server over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ Backend = (*Client)(nil)

// NewClient creates a client for the server at baseURL
// (e.g. "http://localhost:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// RegisterUser registers or touches username on the server.
func (c *Client) RegisterUser(ctx context.Context, username string) (User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodPost, "/api/register", registerRequest{Username: username}, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// SubmitRun reports a finished run.
func (c *Client) SubmitRun(ctx context.Context, run RunSubmission) (User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodPost, "/api/submit-run", run, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// Leaderboard fetches ranked users.
func (c *Client) Leaderboard(ctx context.Context, by Order, limit int) ([]LeaderboardRow, error) {
	q := url.Values{}
	q.Set("by", string(ParseOrder(string(by))))
	q.Set("limit", strconv.Itoa(ClampLimit(limit)))

	var resp leaderboardResponse
	if err := c.do(ctx, http.MethodGet, "/api/leaderboard?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: cannot encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: cannot build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		json.NewDecoder(resp.Body).Decode(&e) //nolint:errcheck // Best-effort error body
		return statusError(resp.StatusCode, e.Error)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: cannot decode response: %w", err)
	}
	return nil
}

// statusError maps a failed response back onto the package's sentinel
// errors so callers can use errors.Is on either Backend.
func statusError(status int, msg string) error {
	switch status {
	case http.StatusNotFound:
		if msg == ErrUserNotFound.Error() {
			return ErrUserNotFound
		}
	case http.StatusBadRequest:
		for _, sentinel := range []error{ErrInvalidUsername, ErrInvalidScore, ErrInvalidLevel} {
			if msg == sentinel.Error() {
				return sentinel
			}
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return fmt.Errorf("api: server returned %d: %s", status, msg)
}
