package marketplace

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/houndmaster/houndmaster/internal/adapter"
	"github.com/houndmaster/houndmaster/internal/config"
	"github.com/houndmaster/houndmaster/internal/domain"
	"github.com/houndmaster/houndmaster/internal/ratelimit"
)

// Page is one page of the collections listing, cursor-paginated and sorted
// by recency upstream.
type Page struct {
	Collections  []domain.Collection `json:"collections"`
	Continuation *string             `json:"continuation"`
}

// Query holds the listing request parameters
type Query struct {
	Limit            int
	MinFloorAskPrice float64
	Continuation     string
}

// Client defines the interface for the collections-listing API to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/marketplace_client.go -package=mocks -mock_names=Client=MockMarketplaceClient
type Client interface {
	// GetCollections fetches one page of collections, newest-updated first
	GetCollections(ctx context.Context, chain domain.Chain, query Query) (*Page, error)
}

// MagicEdenClient implements the client against the Magic Eden RTP API
type MagicEdenClient struct {
	httpClient adapter.HTTPClient
	limiter    ratelimit.Limiter
	baseURL    string
	json       adapter.JSON
}

// NewClient creates a new listing API client
func NewClient(httpClient adapter.HTTPClient, limiter ratelimit.Limiter, baseURL string, json adapter.JSON) Client {
	return &MagicEdenClient{
		httpClient: httpClient,
		limiter:    limiter,
		baseURL:    baseURL,
		json:       json,
	}
}

// GetCollections fetches one page of collections, newest-updated first
func (c *MagicEdenClient) GetCollections(ctx context.Context, chain domain.Chain, query Query) (*Page, error) {
	params := url.Values{}
	params.Set("sortBy", "updatedAt")
	params.Set("sortDirection", "desc")
	params.Set("includeMintStages", "true")
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.MinFloorAskPrice > 0 {
		params.Set("minFloorAskPrice", strconv.FormatFloat(query.MinFloorAskPrice, 'f', -1, 64))
	}
	if query.Continuation != "" {
		params.Set("continuation", query.Continuation)
	}

	requestURL := fmt.Sprintf("%s/%s/collections/v7?%s", c.baseURL, chain, params.Encode())

	headers := map[string]string{
		"accept": "application/json",
	}

	respBody, err := ratelimit.Schedule(ctx, c.limiter, config.ProviderMarketplace, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, requestURL, headers)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call listing API: %w", err)
	}

	var page Page
	if err := c.json.Unmarshal(respBody, &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal listing response: %w", err)
	}

	return &page, nil
}
