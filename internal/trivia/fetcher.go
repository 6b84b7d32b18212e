package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Card is one prefetched trivia entry shown on the reveal screen.
type Card struct {
	Title     string    `json:"title"`
	Extract   string    `json:"extract"`
	ImageURL  string    `json:"image_url,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Fetcher retrieves one fresh trivia card from an external source.
type Fetcher interface {
	Fetch(ctx context.Context) (*Card, error)
}

// httpFetcher pulls random-article summaries from a REST endpoint shaped like
// the Wikipedia page summary API.
type httpFetcher struct {
	client   *http.Client
	endpoint string
}

// NewHTTPFetcher creates a Fetcher against the given summary endpoint.
func NewHTTPFetcher(endpoint string, timeout time.Duration) Fetcher {
	return &httpFetcher{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
	}
}

type summaryResponse struct {
	Title     string `json:"title"`
	Extract   string `json:"extract"`
	Thumbnail struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

func (f *httpFetcher) Fetch(ctx context.Context) (*Card, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build trivia request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trivia fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trivia fetch failed: status %d", resp.StatusCode)
	}

	var summary summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("failed to decode trivia response: %w", err)
	}
	if summary.Title == "" {
		return nil, fmt.Errorf("trivia response missing title")
	}

	return &Card{
		Title:     summary.Title,
		Extract:   summary.Extract,
		ImageURL:  summary.Thumbnail.Source,
		FetchedAt: time.Now(),
	}, nil
}
