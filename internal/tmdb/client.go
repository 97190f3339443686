package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkeray/cineglass/internal/domain"
)

const (
	// DefaultBaseURL is the TMDB v3 API root
	DefaultBaseURL = "https://api.themoviedb.org/3"

	defaultTimeout = 30 * time.Second
	userAgent      = "Cineglass/1.0"
)

// Client is the HTTP client for the TMDB v3 API. It implements the catalog
// source interfaces for all three kinds via the typed adapters in catalog.go.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new TMDB API client
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// get performs an authenticated GET request and decodes the JSON body into dest
func (c *Client) get(ctx context.Context, path string, query url.Values, dest interface{}) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("tmdb request", "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("tmdb request failed", "path", path, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrNoConnection, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.ErrAuthFailed
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		c.logger.Error("tmdb request error", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", domain.ErrBadResponse, resp.StatusCode)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		c.logger.Error("tmdb decode error", "path", path, "error", err, "bodyLen", len(body))
		return fmt.Errorf("%w: %v", domain.ErrBadResponse, err)
	}
	return nil
}

func pageQuery(language string, page int) url.Values {
	q := url.Values{}
	q.Set("language", language)
	q.Set("page", fmt.Sprint(page))
	return q
}

func searchQuery(query, language string, page int) url.Values {
	q := pageQuery(language, page)
	q.Set("query", query)
	q.Set("include_adult", "false")
	return q
}

func discoverQuery(genreID int, language string) url.Values {
	q := url.Values{}
	q.Set("language", language)
	q.Set("with_genres", fmt.Sprint(genreID))
	q.Set("include_adult", "false")
	q.Set("certification_country", "US")
	q.Set("certification.lte", "R")
	q.Set("page", "1")
	return q
}
