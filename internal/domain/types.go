package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Chain identifies a supported EVM network. The set is closed: every external
// boundary validates against it instead of passing raw strings around.
type Chain string

const (
	ChainEthereum Chain = "ethereum"
	ChainBase     Chain = "base"
	ChainApechain Chain = "apechain"
	ChainAbstract Chain = "abstract"
	ChainPolygon  Chain = "polygon"
	ChainArbitrum Chain = "arbitrum"
)

// SupportedChains lists every valid chain, in display order
var SupportedChains = []Chain{
	ChainEthereum,
	ChainBase,
	ChainApechain,
	ChainAbstract,
	ChainPolygon,
	ChainArbitrum,
}

// IsValidChain checks if a chain is part of the supported set
func IsValidChain(chain Chain) bool {
	for _, c := range SupportedChains {
		if c == chain {
			return true
		}
	}
	return false
}

// SupportedChainNames returns the chain identifiers as plain strings,
// used in validation error messages.
func SupportedChainNames() []string {
	names := make([]string, 0, len(SupportedChains))
	for _, c := range SupportedChains {
		names = append(names, string(c))
	}
	return names
}

// IsValidAddress checks that an address is a 0x-prefixed 20-byte hex string
func IsValidAddress(address string) bool {
	return strings.HasPrefix(address, "0x") && common.IsHexAddress(address)
}

// Confidence is the coarse label attached to any inferred result
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// IsValidConfidence checks if a confidence label is one of the known values
func IsValidConfidence(c Confidence) bool {
	return c == ConfidenceHigh || c == ConfidenceMedium || c == ConfidenceLow
}

// Price represents a marketplace price quote
type Price struct {
	Currency struct {
		Symbol   string `json:"symbol"`
		Decimals int    `json:"decimals"`
	} `json:"currency"`
	Amount struct {
		Native  float64 `json:"native"`
		Decimal float64 `json:"decimal"`
	} `json:"amount"`
}

// FloorAsk represents the lowest listed price for a collection
type FloorAsk struct {
	Price *Price `json:"price"`
}

// Volume holds trading volume over rolling windows
type Volume struct {
	Day1    float64 `json:"1day"`
	Day7    float64 `json:"7day"`
	Day30   float64 `json:"30day"`
	AllTime float64 `json:"allTime"`
}

// MintStage is a priced phase of primary sale with a supply allotment
type MintStage struct {
	Stage     string     `json:"stage"`
	Kind      string     `json:"kind"`
	Price     string     `json:"price"`
	Supply    string     `json:"supply"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}

// Collection is an NFT project's metadata and market stats as reported by the
// listing API. Immutable once fetched for a session.
type Collection struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Symbol             string      `json:"symbol"`
	ContractDeployedAt string      `json:"contractDeployedAt"`
	PrimaryContract    string      `json:"primaryContract"`
	ExternalURL        string      `json:"externalUrl"`
	TwitterUsername    string      `json:"twitterUsername"`
	DiscordURL         string      `json:"discordUrl"`
	TokenCount         string      `json:"tokenCount"`
	Supply             string      `json:"supply"`
	RemainingSupply    string      `json:"remainingSupply"`
	Volume             *Volume     `json:"volume"`
	FloorAsk           *FloorAsk   `json:"floorAsk"`
	MintStages         []MintStage `json:"mintStages"`
	SampleImages       []string    `json:"sampleImages"`
}

// DeployedAtTime parses the deployment timestamp. Returns a zero time and
// false when the timestamp is missing or unparseable; callers treat that as
// "not recent".
func (c *Collection) DeployedAtTime() (time.Time, bool) {
	if c.ContractDeployedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, c.ContractDeployedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TotalMintValue sums price x supply across all mint stages. Exposed on the
// collection summary only; it does not gate accumulation.
func (c *Collection) TotalMintValue() float64 {
	var total float64
	for _, stage := range c.MintStages {
		price, _ := strconv.ParseFloat(stage.Price, 64)
		supply, _ := strconv.ParseFloat(stage.Supply, 64)
		total += price * supply
	}
	return total
}

// CollectionSummary is the listing-response shape of a collection: market
// stats flattened for display
type CollectionSummary struct {
	Name            string      `json:"name"`
	MintValue       float64     `json:"mintValue"`
	WeeklyVolume    float64     `json:"weeklyVolume"`
	FloorPrice      *Price      `json:"floorPrice,omitempty"`
	DeployedAt      string      `json:"deployedAt"`
	TotalSupply     string      `json:"totalSupply,omitempty"`
	RemainingSupply string      `json:"remainingSupply,omitempty"`
	MintStages      []MintStage `json:"mintStages"`
	ExternalURL     string      `json:"externalUrl,omitempty"`
	TokenCount      string      `json:"tokenCount,omitempty"`
	PrimaryContract string      `json:"primaryContract,omitempty"`
	TwitterUsername string      `json:"twitterUsername,omitempty"`
	DiscordURL      string      `json:"discordUrl,omitempty"`
	SampleImages    []string    `json:"sampleImages,omitempty"`
}

// Summary flattens the collection into its listing-response shape
func (c *Collection) Summary() CollectionSummary {
	s := CollectionSummary{
		Name:            c.Name,
		MintValue:       c.TotalMintValue(),
		DeployedAt:      c.ContractDeployedAt,
		TotalSupply:     c.Supply,
		RemainingSupply: c.RemainingSupply,
		MintStages:      c.MintStages,
		ExternalURL:     c.ExternalURL,
		TokenCount:      c.TokenCount,
		PrimaryContract: c.PrimaryContract,
		TwitterUsername: c.TwitterUsername,
		DiscordURL:      c.DiscordURL,
		SampleImages:    c.SampleImages,
	}
	if c.Volume != nil {
		s.WeeklyVolume = c.Volume.Day7
	}
	if c.FloorAsk != nil {
		s.FloorPrice = c.FloorAsk.Price
	}
	return s
}

// ContractData is the per-address result of a verification lookup.
// Missing fields mean the corresponding fetch failed or the contract is
// unverified; they never abort the rest of the batch.
type ContractData struct {
	Address      string     `json:"address"`
	SourceCode   *string    `json:"sourceCode,omitempty"`
	ABI          *string    `json:"abi,omitempty"`
	Balance      *string    `json:"balance,omitempty"`
	LastVerified *time.Time `json:"lastVerified,omitempty"`
}

// MintAnalysisResult is the outcome of the mint-revenue pipeline.
// TotalRaised is an integer string in wei; nil when it could not be inferred.
// Produced fresh per request, never persisted.
type MintAnalysisResult struct {
	TotalRaised      *string    `json:"totalRaised"`
	Currency         *string    `json:"currency"`
	Confidence       Confidence `json:"confidence"`
	Explanation      string     `json:"explanation"`
	MissingInfo      []string   `json:"missingInfo,omitempty"`
	MintCount        *int       `json:"mintCount,omitempty"`
	AverageMintPrice *string    `json:"averageMintPrice,omitempty"`
}

// WebsiteSummary is the LLM-derived summary of a project website
type WebsiteSummary struct {
	ProjectDescription string     `json:"project_description"`
	Roadmap            *string    `json:"roadmap"`
	ServicesAnalysis   string     `json:"services_analysis"`
	Confidence         Confidence `json:"confidence"`
}

// ProjectAnalysis merges the contract and website analyses for one address
type ProjectAnalysis struct {
	ContractAnalysis MintAnalysisResult `json:"contractAnalysis"`
	WebsiteAnalysis  *WebsiteSummary    `json:"websiteAnalysis,omitempty"`
}
