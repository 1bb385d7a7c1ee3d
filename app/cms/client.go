package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Query describes a posts lookup against the content API. The zero value of
// Limit requests all documents.
type Query struct {
	Limit  int
	Depth  int
	Draft  bool
	Status string // where[_status][equals]
	Slug   string // where[slug][equals]
}

// Client is a thin HTTP client for the content API.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, userAgent string, timeoutSeconds int) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		userAgent:  userAgent,
		timeout:    time.Duration(timeoutSeconds) * time.Second,
		httpClient: &http.Client{},
	}
}

// FetchPosts performs a single GET /api/posts call and decodes the docs
// array. Non-2xx responses and transport failures surface as errors; the
// caller decides how to degrade.
func (c *Client) FetchPosts(ctx context.Context, q Query) ([]Post, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", c.postsURL(q), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var parsed postsResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return parsed.Docs, nil
}

func (c *Client) postsURL(q Query) string {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(q.Limit))
	params.Set("depth", strconv.Itoa(q.Depth))
	params.Set("draft", strconv.FormatBool(q.Draft))
	if q.Status != "" {
		params.Set("where[_status][equals]", q.Status)
	}
	if q.Slug != "" {
		params.Set("where[slug][equals]", q.Slug)
	}

	return c.baseURL + "/api/posts?" + params.Encode()
}
