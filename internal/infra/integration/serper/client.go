package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://google.serper.dev"

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FindFounder runs a LinkedIn-restricted search for an engineer/founder
// profile at the given company website and extracts a display name from the
// first ranked result. Returns (nil, nil) when the search came back empty.
func (c *Client) FindFounder(ctx context.Context, website string) (*FounderResult, error) {
	query := fmt.Sprintf("site:linkedin.com/in (engineer OR developer OR CTO) %s", website)

	jsonBody, err := json.Marshal(searchRequest{Q: query})
	if err != nil {
		return nil, fmt.Errorf("marshal serper query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/search", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serper request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("serper rejected search (status %d): %s", resp.StatusCode, string(body))
	}

	var response searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode serper response: %w", err)
	}

	if len(response.Organic) == 0 {
		return nil, nil
	}

	first := response.Organic[0]
	return &FounderResult{
		Name: NameFromTitle(first.Title),
		Link: first.Link,
	}, nil
}

// NameFromTitle pulls a display name out of a result title. Profile titles
// usually look like "Name - Role - Company | LinkedIn", so everything before
// the first " - " or " | " is taken as the name. Heuristic, not a guarantee.
func NameFromTitle(title string) string {
	name := strings.SplitN(title, " - ", 2)[0]
	name = strings.SplitN(name, " | ", 2)[0]
	return strings.TrimSpace(name)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}
