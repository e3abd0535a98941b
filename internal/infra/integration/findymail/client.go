package findymail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://app.findymail.com"

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

// FindEmail resolves a likely address for name at domain. Returns "" when
// the provider has no match; Findymail tends to answer 404 in that case,
// which is reported as an error and treated the same way upstream.
func (c *Client) FindEmail(ctx context.Context, name, domain string) (string, error) {
	jsonBody, err := json.Marshal(searchRequest{Name: name, Domain: domain})
	if err != nil {
		return "", fmt.Errorf("marshal findymail query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/search/name", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("findymail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("findymail rejected search (status %d): %s", resp.StatusCode, string(body))
	}

	var response searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("decode findymail response: %w", err)
	}

	if response.Email != "" {
		return response.Email, nil
	}
	return response.Contact.Email, nil
}
