package adapters

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"freight-quoter/internal/features/tariffs/ports"
)

// HTTPLoader downloads the catalog sheet, e.g. a published spreadsheet CSV export.
type HTTPLoader struct {
	client *http.Client
	url    string
}

// NewHTTPLoader creates an HTTPLoader. The client should come from httpclient.NewClient.
func NewHTTPLoader(client *http.Client, url string) *HTTPLoader {
	return &HTTPLoader{client: client, url: url}
}

// Load fetches and parses the sheet.
func (l *HTTPLoader) Load(ctx context.Context) (*ports.LoadResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog source returned status: %d", resp.StatusCode)
	}

	return ParseCSV(resp.Body)
}

// Source returns the URL.
func (l *HTTPLoader) Source() string {
	return l.url
}

// NewLoader picks the loader for a configured source: http(s) URLs are downloaded
// with client, anything else is treated as a file path.
func NewLoader(source string, client *http.Client) ports.CatalogLoader {
	lower := strings.ToLower(source)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewHTTPLoader(client, source)
	}
	return NewFileLoader(source)
}
