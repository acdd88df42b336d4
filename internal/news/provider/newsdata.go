package provider

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/coinpulse/crypto-news-search/internal/config"
	"github.com/coinpulse/crypto-news-search/internal/models"
	"github.com/coinpulse/crypto-news-search/internal/news/query"
)

// NewsDataName identifies NewsData.io in NewsItem.Provider.
const NewsDataName = "NewsData.io"

// invalidKeyMessage is the substring NewsData.io puts in 401 bodies when the
// key itself is bad. Generic 401s (e.g. from an intermediary) stay
// HTTPError so they are not mistaken for a rejected credential.
const invalidKeyMessage = "The provided API key is not valid"

// NewsDataClient fetches news from the NewsData.io latest-news endpoint.
type NewsDataClient struct {
	apiKey     string
	baseURL    string
	language   string
	maxResults int
	categories string
	httpClient *http.Client
}

// NewNewsDataClient builds a client from process configuration. A missing
// API key is not an error here: it surfaces as ErrMissingCredential on first
// Fetch.
func NewNewsDataClient(cfg *config.Config) *NewsDataClient {
	maxResults := cfg.NewsMaxResults
	if maxResults <= 0 || maxResults > 10 {
		maxResults = 10
	}
	return &NewsDataClient{
		apiKey:     cfg.NewsDataAPIKey,
		baseURL:    cfg.NewsDataBaseURL,
		language:   cfg.NewsLanguage,
		maxResults: maxResults,
		categories: cfg.NewsCategories,
		httpClient: &http.Client{Timeout: cfg.ProviderTimeout},
	}
}

// Name implements NewsProvider.
func (c *NewsDataClient) Name() string {
	return NewsDataName
}

// Fetch performs one authenticated retrieval for a canonical term. No
// retries: retry policy belongs to the caller, which needs the error kinds
// intact to decide.
func (c *NewsDataClient) Fetch(ctx context.Context, term string) ([]models.NewsItem, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}

	providerQuery := query.ProviderQuery(term)

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("q", providerQuery)
	params.Set("language", c.language)
	params.Set("size", strconv.Itoa(c.maxResults))
	params.Set("category", c.categories)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building provider request: %w", err)
	}

	log.Printf("Fetching from %s with query: %s", NewsDataName, providerQuery)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized && strings.Contains(string(body), invalidKeyMessage) {
			return nil, ErrAuthentication
		}
		return nil, &HTTPError{Status: resp.StatusCode, Body: string(body)}
	}

	items, err := parseNewsDataResponse(body)
	if err != nil {
		log.Printf("%s response rejected: %v", NewsDataName, err)
		return nil, err
	}

	log.Printf("Found %d news items from %s", len(items), NewsDataName)
	return items, nil
}

var _ NewsProvider = (*NewsDataClient)(nil)
