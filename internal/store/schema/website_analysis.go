package schema

import (
	"time"
)

// WebsiteAnalysis represents the website_analyses table - the cached summary
// of a project's website, owned by the contract it was analyzed for. Rows
// older than the cache TTL are treated as absent and recomputed in place.
type WebsiteAnalysis struct {
	// Address is the lowercased contract address the analysis belongs to
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Chain is the network the contract lives on
	Chain string `gorm:"column:chain;primaryKey;type:text"`
	// WebsiteURL is the project website that was scraped
	WebsiteURL string `gorm:"column:website_url;not null;type:text"`
	// ProjectDescription summarizes what the project claims to be
	ProjectDescription string `gorm:"column:project_description;not null;type:text"`
	// Roadmap is the extracted roadmap, when the site publishes one
	Roadmap *string `gorm:"column:roadmap;type:text"`
	// ServicesAnalysis is the formatted service-recommendation block
	ServicesAnalysis string `gorm:"column:services_analysis;not null;type:text"`
	// Confidence grades how much content backed the summary
	Confidence string `gorm:"column:confidence;not null;type:text"`
	// RawContent is the scraped text the summary was derived from
	RawContent string `gorm:"column:raw_content;not null;type:text"`
	// SourceURLs lists the scraped pages, newline separated
	SourceURLs string `gorm:"column:source_urls;not null;type:text"`
	// AnalyzedAt is when the summary was produced
	AnalyzedAt time.Time `gorm:"column:analyzed_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the WebsiteAnalysis model
func (WebsiteAnalysis) TableName() string {
	return "website_analyses"
}
