package directus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hinatano/liveboard/internal/utils"
)

// Client fetches schedule rows from a Directus instance.
type Client struct {
	baseURL    string
	token      string
	collection string
	http       *http.Client
}

// NewClient creates a Directus API client.
// token may be empty when the collection has public read access.
func NewClient(baseURL, token, collection string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		collection: collection,
		http:       &http.Client{Timeout: timeout},
	}
}

// FetchRaw retrieves all rows of the schedule collection.
func (c *Client) FetchRaw(ctx context.Context) ([]RawItem, error) {
	endpoint := fmt.Sprintf("%s/items/%s", c.baseURL, url.PathEscape(c.collection))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directus request: %w", err)
	}

	q := req.URL.Query()
	q.Set("fields", itemFields)
	q.Set("limit", "-1")
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directus request failed: %w", err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		// Drain a little of the body so the error is actionable in logs.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("directus returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode directus response: %w", err)
	}

	return list.Data, nil
}
