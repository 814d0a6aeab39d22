package listing

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/houndmaster/houndmaster/internal/adapter"
	"github.com/houndmaster/houndmaster/internal/config"
	"github.com/houndmaster/houndmaster/internal/domain"
	"github.com/houndmaster/houndmaster/internal/logger"
	"github.com/houndmaster/houndmaster/internal/providers/marketplace"
)

// Filters control accumulation and the recent/old split. Zero values fall
// back to the configured defaults.
type Filters struct {
	MaxAgeMonths        int     `json:"maxAgeMonths"`
	MinFloorPrice       float64 `json:"minFloorPrice"`
	MinTotalCollections int     `json:"minTotalCollections"`
	PageLimit           int     `json:"limit"`
}

// Result partitions accumulated collections by deployment age. Both buckets
// contain only collections that passed the volume filters, flattened to
// their summary shape and sorted newest deployment first.
type Result struct {
	Recent []domain.CollectionSummary `json:"recent"`
	Old    []domain.CollectionSummary `json:"old"`
}

// Fetcher defines the interface for listing retrieval to enable mocking
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/listing_fetcher.go -package=mocks -mock_names=Fetcher=MockListingFetcher
type Fetcher interface {
	// FetchCollections accumulates liquid collections and partitions them by age
	FetchCollections(ctx context.Context, chain domain.Chain, filters Filters) (*Result, error)
}

type fetcher struct {
	client marketplace.Client
	clock  adapter.Clock
	cfg    config.MarketplaceConfig
}

// NewFetcher creates a new listing fetcher
func NewFetcher(client marketplace.Client, clock adapter.Clock, cfg config.MarketplaceConfig) Fetcher {
	return &fetcher{
		client: client,
		clock:  clock,
		cfg:    cfg,
	}
}

// FetchCollections pages through the listing API newest-updated-first,
// keeps collections with positive 7-day volume and at least one unit of
// all-time volume, and stops once enough have accumulated or pages run out.
// An upstream error mid-pagination returns what was accumulated so far.
func (f *fetcher) FetchCollections(ctx context.Context, chain domain.Chain, filters Filters) (*Result, error) {
	filters = f.applyDefaults(filters)

	accumulated := make([]domain.Collection, 0, filters.MinTotalCollections)
	continuation := ""

	for {
		page, err := f.client.GetCollections(ctx, chain, marketplace.Query{
			Limit:            filters.PageLimit,
			MinFloorAskPrice: filters.MinFloorPrice,
			Continuation:     continuation,
		})
		if err != nil {
			// Partial results are success, not failure
			logger.WarnCtx(ctx, "listing page fetch failed, returning partial results",
				zap.String("chain", string(chain)),
				zap.Int("accumulated", len(accumulated)),
				zap.Error(err))
			break
		}

		for _, collection := range page.Collections {
			if hasTradingActivity(&collection) {
				accumulated = append(accumulated, collection)
			}
		}

		if len(accumulated) >= filters.MinTotalCollections {
			break
		}
		if page.Continuation == nil || *page.Continuation == "" {
			break
		}
		continuation = *page.Continuation
	}

	return f.partitionByAge(accumulated, filters.MaxAgeMonths), nil
}

func (f *fetcher) applyDefaults(filters Filters) Filters {
	if filters.MaxAgeMonths <= 0 {
		filters.MaxAgeMonths = f.cfg.MaxAgeMonths
	}
	if filters.MinFloorPrice <= 0 {
		filters.MinFloorPrice = f.cfg.MinFloorPrice
	}
	if filters.MinTotalCollections <= 0 {
		filters.MinTotalCollections = f.cfg.MinTotalCollections
	}
	if filters.PageLimit <= 0 {
		filters.PageLimit = f.cfg.PageLimit
	}
	return filters
}

// hasTradingActivity keeps only collections with real liquidity: traded in
// the last 7 days and at least one unit of all-time volume.
func hasTradingActivity(c *domain.Collection) bool {
	if c.Volume == nil {
		return false
	}
	return c.Volume.Day7 > 0 && c.Volume.AllTime >= 1
}

// partitionByAge splits collections at the maxAgeMonths boundary and flattens
// each bucket to summaries. A deployment exactly on the boundary counts as
// recent; collections with a missing or unparseable timestamp never do.
func (f *fetcher) partitionByAge(collections []domain.Collection, maxAgeMonths int) *Result {
	cutoff := f.clock.Now().AddDate(0, -maxAgeMonths, 0)

	recent := make([]domain.Collection, 0, len(collections))
	old := make([]domain.Collection, 0)

	for _, collection := range collections {
		deployedAt, ok := collection.DeployedAtTime()
		if ok && !deployedAt.Before(cutoff) {
			recent = append(recent, collection)
		} else {
			old = append(old, collection)
		}
	}

	sortByDeploymentDesc(recent)
	sortByDeploymentDesc(old)

	return &Result{
		Recent: summarize(recent),
		Old:    summarize(old),
	}
}

func sortByDeploymentDesc(collections []domain.Collection) {
	sort.SliceStable(collections, func(i, j int) bool {
		ti, _ := collections[i].DeployedAtTime()
		tj, _ := collections[j].DeployedAtTime()
		return ti.After(tj)
	})
}

func summarize(collections []domain.Collection) []domain.CollectionSummary {
	summaries := make([]domain.CollectionSummary, 0, len(collections))
	for i := range collections {
		summaries = append(summaries, collections[i].Summary())
	}
	return summaries
}
