package kiwi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the production Tequila search endpoint.
const DefaultBaseURL = "https://api.tequila.kiwi.com/v2/search"

// maxResponseBytes caps how much of the search response is read. Tequila
// responses are a few hundred KB at most; anything larger is misbehavior.
const maxResponseBytes = 8 << 20

// Client calls the Tequila search API. The HTTP client is injected so tests
// and callers control transport concerns such as timeouts and proxies.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a search client. A nil httpClient falls back to a client
// with a conservative request timeout; an empty baseURL falls back to the
// production endpoint.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{httpClient: httpClient, baseURL: baseURL, apiKey: apiKey}
}

// Search issues the flight search and returns the raw JSON body. Transport
// failures, non-2xx statuses, and bodies that are not valid JSON are all
// surfaced as errors; interpreting the document is left to the formatter.
func (c *Client) Search(ctx context.Context, query SearchQuery) ([]byte, error) {
	searchURL := c.baseURL + "?" + query.Values().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("flight search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("flight search failed: %s", resp.Status)
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("failed to parse API response: body is not valid JSON")
	}

	return body, nil
}
