package serper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameFromTitle(t *testing.T) {
	assert.Equal(t, "Jane Doe", NameFromTitle("Jane Doe - CTO - Acme | LinkedIn"))
	assert.Equal(t, "Jane Doe", NameFromTitle("Jane Doe | LinkedIn"))
	assert.Equal(t, "Jane Doe", NameFromTitle("  Jane Doe  "))
	assert.Equal(t, "Jane Doe", NameFromTitle("Jane Doe"))
}

func TestFindFounderTakesFirstResult(t *testing.T) {
	var gotKey, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		gotQuery = req["q"]

		json.NewEncoder(w).Encode(map[string]any{
			"organic": []map[string]string{
				{"title": "Jane Doe - CTO - Acme | LinkedIn", "link": "https://linkedin.com/in/janedoe"},
				{"title": "Bob Other - Engineer | LinkedIn", "link": "https://linkedin.com/in/bob"},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	founder, err := client.FindFounder(context.Background(), "https://acme.io")

	assert.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "site:linkedin.com/in (engineer OR developer OR CTO) https://acme.io", gotQuery)
	assert.Equal(t, "Jane Doe", founder.Name)
	assert.Equal(t, "https://linkedin.com/in/janedoe", founder.Link)
}

func TestFindFounderEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"organic": []any{}})
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	founder, err := client.FindFounder(context.Background(), "https://acme.io")

	assert.NoError(t, err)
	assert.Nil(t, founder)
}

func TestFindFounderProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Unauthorized"}`, http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient("bad-key", server.URL)
	founder, err := client.FindFounder(context.Background(), "https://acme.io")

	assert.Error(t, err)
	assert.Nil(t, founder)
	assert.Contains(t, err.Error(), "status 403")
}
