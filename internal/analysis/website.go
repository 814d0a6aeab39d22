package analysis

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/houndmaster/houndmaster/internal/adapter"
	"github.com/houndmaster/houndmaster/internal/config"
	"github.com/houndmaster/houndmaster/internal/domain"
	"github.com/houndmaster/houndmaster/internal/logger"
	"github.com/houndmaster/houndmaster/internal/providers/gemini"
	"github.com/houndmaster/houndmaster/internal/scraper"
	"github.com/houndmaster/houndmaster/internal/store"
	"github.com/houndmaster/houndmaster/internal/store/schema"
)

type websiteService struct {
	Name     string `json:"name"`
	Details  string `json:"details"`
	Priority string `json:"priority"`
}

type websiteSummaryResponse struct {
	ProjectDescription string            `json:"project_description"`
	Roadmap            *string           `json:"roadmap"`
	Services           []websiteService  `json:"services"`
	Confidence         domain.Confidence `json:"confidence"`
}

// WebsiteAnalyzer summarizes a project's website, cached per contract
//
//go:generate mockgen -source=website.go -destination=../mocks/website_analyzer.go -package=mocks -mock_names=WebsiteAnalyzer=MockWebsiteAnalyzer
type WebsiteAnalyzer interface {
	// Analyze returns the cached summary when fresh, otherwise scrapes the
	// site and summarizes it. Scrape and parse failures degrade to a
	// low-confidence result instead of an error.
	Analyze(ctx context.Context, address string, chain domain.Chain, websiteURL string) (*domain.WebsiteSummary, error)
}

type websiteAnalyzer struct {
	store   store.Store
	scraper scraper.Scraper
	llm     gemini.Client
	clock   adapter.Clock
	json    adapter.JSON
	cfg     config.AnalysisConfig
}

// NewWebsiteAnalyzer creates a new website analyzer
func NewWebsiteAnalyzer(st store.Store, sc scraper.Scraper, llm gemini.Client, clock adapter.Clock, json adapter.JSON, cfg config.AnalysisConfig) WebsiteAnalyzer {
	return &websiteAnalyzer{
		store:   st,
		scraper: sc,
		llm:     llm,
		clock:   clock,
		json:    json,
		cfg:     cfg,
	}
}

// Analyze returns the cached summary when fresh, otherwise scrapes and summarizes
func (w *websiteAnalyzer) Analyze(ctx context.Context, address string, chain domain.Chain, websiteURL string) (*domain.WebsiteSummary, error) {
	if websiteURL == "" {
		return nil, fmt.Errorf("no website url for %s", address)
	}
	address = strings.ToLower(address)

	cached, err := w.store.GetWebsiteAnalysis(ctx, address, chain)
	if err != nil {
		logger.WarnCtx(ctx, "failed to read cached website analysis",
			zap.String("address", address), zap.Error(err))
	}
	if cached != nil && w.clock.Since(cached.AnalyzedAt) < w.cfg.WebsiteCacheTTL {
		return summaryFromRecord(cached), nil
	}

	scraped, err := w.scraper.ScrapeWebsite(ctx, websiteURL)
	if err != nil {
		logger.WarnCtx(ctx, "website scrape failed",
			zap.String("url", websiteURL), zap.Error(err))
		return failedSummary("Failed to analyze website"), nil
	}
	if scraped.Content == "" {
		return failedSummary("No content could be extracted from the website"), nil
	}

	response, err := w.llm.GenerateText(ctx, websiteSummaryPrompt(scraped.Content))
	if err != nil {
		logger.WarnCtx(ctx, "website summarization failed",
			zap.String("url", websiteURL), zap.Error(err))
		return failedSummary("Failed to analyze website"), nil
	}

	var parsed websiteSummaryResponse
	if err := w.json.Unmarshal([]byte(stripCodeFence(response)), &parsed); err != nil {
		logger.WarnCtx(ctx, "malformed website summary response",
			zap.String("url", websiteURL), zap.Error(err))
		return failedSummary("Failed to analyze website"), nil
	}

	summary := &domain.WebsiteSummary{
		ProjectDescription: stripEmphasis(parsed.ProjectDescription),
		ServicesAnalysis:   formatServices(parsed.Services),
		Confidence:         parsed.Confidence,
	}
	if parsed.Roadmap != nil {
		roadmap := stripEmphasis(*parsed.Roadmap)
		summary.Roadmap = &roadmap
	}
	if !domain.IsValidConfidence(summary.Confidence) {
		summary.Confidence = domain.ConfidenceLow
	}

	record := &schema.WebsiteAnalysis{
		Address:            address,
		Chain:              string(chain),
		WebsiteURL:         websiteURL,
		ProjectDescription: summary.ProjectDescription,
		Roadmap:            summary.Roadmap,
		ServicesAnalysis:   summary.ServicesAnalysis,
		Confidence:         string(summary.Confidence),
		RawContent:         scraped.Content,
		SourceURLs:         strings.Join(scraped.SourceURLs, "\n"),
		AnalyzedAt:         w.clock.Now(),
	}
	if err := w.store.SaveWebsiteAnalysis(ctx, record); err != nil {
		logger.WarnCtx(ctx, "failed to persist website analysis",
			zap.String("address", address), zap.Error(err))
	}

	return summary, nil
}

var priorityRank = map[string]int{"high": 0, "medium": 1, "low": 2}

// formatServices orders service recommendations high to low priority and
// joins them into one display block
func formatServices(services []websiteService) string {
	sort.SliceStable(services, func(i, j int) bool {
		ri, iOK := priorityRank[strings.ToLower(services[i].Priority)]
		rj, jOK := priorityRank[strings.ToLower(services[j].Priority)]
		if !iOK {
			ri = len(priorityRank)
		}
		if !jOK {
			rj = len(priorityRank)
		}
		return ri < rj
	})

	lines := make([]string, 0, len(services))
	for _, svc := range services {
		lines = append(lines, fmt.Sprintf("- %s (%s priority): %s",
			stripEmphasis(svc.Name), strings.ToLower(svc.Priority), stripEmphasis(svc.Details)))
	}
	return strings.Join(lines, "\n")
}

func summaryFromRecord(record *schema.WebsiteAnalysis) *domain.WebsiteSummary {
	return &domain.WebsiteSummary{
		ProjectDescription: record.ProjectDescription,
		Roadmap:            record.Roadmap,
		ServicesAnalysis:   record.ServicesAnalysis,
		Confidence:         domain.Confidence(record.Confidence),
	}
}

func failedSummary(reason string) *domain.WebsiteSummary {
	return &domain.WebsiteSummary{
		ProjectDescription: reason,
		ServicesAnalysis:   "",
		Confidence:         domain.ConfidenceLow,
	}
}
