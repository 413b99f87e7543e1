package tour

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gobodhi/tour-cms/data"
)

var (
	fallbackOnce sync.Once
	fallbackDoc  Document
)

// Fallback returns the bundled copy of the published document. It is the
// document of last resort, so a decode problem degrades to an empty
// document with the default CTA rather than an error.
func Fallback() *Document {
	fallbackOnce.Do(func() {
		if err := json.Unmarshal(data.TourData, &fallbackDoc); err != nil {
			log.Printf("Bundled tour data is invalid: %v", err)
			fallbackDoc = Document{CTA: DefaultCTA()}
		}
	})
	return fallbackDoc.clone()
}

// Client fetches the published tour document. One attempt per load, no
// retry; any failure falls back to the bundled document.
type Client struct {
	URL        string
	HTTPClient *http.Client

	// now stubs time for tests; the timestamp only busts caches.
	now func() time.Time
}

// NewClient creates a client for the published raw-content URL.
func NewClient(url string) *Client {
	return &Client{
		URL:        url,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		now:        time.Now,
	}
}

// Load fetches and decodes the published document. The URL gets a
// cache-busting query parameter on every call. On any fetch or decode
// failure the bundled fallback is returned and the failure is logged,
// never surfaced.
func (c *Client) Load(ctx context.Context) *Document {
	doc, err := c.fetch(ctx)
	if err != nil {
		log.Printf("Failed to fetch tour data, using fallback: %v", err)
		return Fallback()
	}
	return doc
}

func (c *Client) fetch(ctx context.Context) (*Document, error) {
	url := fmt.Sprintf("%s?t=%d", c.URL, c.now().UnixMilli())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode tour data: %w", err)
	}

	return &doc, nil
}
