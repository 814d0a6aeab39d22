package rest

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/houndmaster/houndmaster/internal/analysis"
	"github.com/houndmaster/houndmaster/internal/domain"
	"github.com/houndmaster/houndmaster/internal/listing"
	"github.com/houndmaster/houndmaster/internal/verification"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetListings fetches filtered collections partitioned by deployment age
	// GET /api/v1/listings?chain=<chain>&max_age_months=<n>&min_floor_price=<f>&min_total=<n>&limit=<n>
	GetListings(c *gin.Context)

	// GetContractData resolves verification data for a batch of contracts
	// POST /api/v1/contracts/data
	GetContractData(c *gin.Context)

	// AnalyzeContract runs the full analysis pipeline for one contract
	// POST /api/v1/contracts/analyze
	AnalyzeContract(c *gin.Context)

	// AnalyzeContracts runs the analysis pipeline for a batch of contracts
	// POST /api/v1/contracts/analyze/batch
	AnalyzeContracts(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	listings     listing.Fetcher
	verification verification.Service
	coordinator  analysis.Coordinator
}

// NewHandler creates a new REST API handler
func NewHandler(listings listing.Fetcher, verificationSvc verification.Service, coordinator analysis.Coordinator) Handler {
	return &handler{
		listings:     listings,
		verification: verificationSvc,
		coordinator:  coordinator,
	}
}

// validateWebsiteURL rejects a non-empty website URL that is not an absolute
// http(s) URL. An empty URL is fine: analysis then skips the website step.
func validateWebsiteURL(raw string) error {
	if raw == "" {
		return nil
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("invalid website url %q", raw)
	}
	return nil
}

// parseChain validates the chain identifier against the supported set
func parseChain(raw string) (domain.Chain, error) {
	chain := domain.Chain(raw)
	if raw == "" {
		return "", fmt.Errorf("chain is required")
	}
	if !domain.IsValidChain(chain) {
		return "", fmt.Errorf("unsupported chain %q, expected one of: %s",
			raw, strings.Join(domain.SupportedChainNames(), ", "))
	}
	return chain, nil
}

// GetListings fetches filtered collections partitioned by deployment age
func (h *handler) GetListings(c *gin.Context) {
	chain, err := parseChain(c.Query("chain"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var filters listing.Filters
	if err := parseIntQuery(c, "max_age_months", &filters.MaxAgeMonths); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := parseFloatQuery(c, "min_floor_price", &filters.MinFloorPrice); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := parseIntQuery(c, "min_total", &filters.MinTotalCollections); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := parseIntQuery(c, "limit", &filters.PageLimit); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.listings.FetchCollections(c.Request.Context(), chain, filters)
	if err != nil {
		respondInternalError(c, err, "Failed to fetch listings", zap.String("chain", string(chain)))
		return
	}

	c.JSON(http.StatusOK, result)
}

type contractDataRequest struct {
	ContractAddresses []string `json:"contractAddresses"`
	Chain             string   `json:"chain"`
}

// GetContractData resolves verification data for a batch of contracts
func (h *handler) GetContractData(c *gin.Context) {
	var req contractDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	chain, err := parseChain(req.Chain)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if len(req.ContractAddresses) == 0 {
		respondBadRequest(c, "contractAddresses is required")
		return
	}
	for _, address := range req.ContractAddresses {
		if !domain.IsValidAddress(address) {
			respondValidationError(c, fmt.Sprintf("invalid ethereum address %q", address))
			return
		}
	}

	results, err := h.verification.GetOrFetchContractData(c.Request.Context(), req.ContractAddresses, chain)
	if err != nil {
		respondInternalError(c, err, "Failed to fetch contract data", zap.String("chain", string(chain)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"contracts": results})
}

type analyzeRequest struct {
	Address    string `json:"address"`
	Chain      string `json:"chain"`
	WebsiteURL string `json:"websiteUrl"`
}

// AnalyzeContract runs the full analysis pipeline for one contract
func (h *handler) AnalyzeContract(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	chain, err := parseChain(req.Chain)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if !domain.IsValidAddress(req.Address) {
		respondValidationError(c, fmt.Sprintf("invalid ethereum address %q", req.Address))
		return
	}
	if err := validateWebsiteURL(req.WebsiteURL); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.coordinator.Analyze(c.Request.Context(), req.Address, chain, req.WebsiteURL)
	if err != nil {
		if errors.Is(err, domain.ErrAnalysisInProgress) {
			respondConflict(c, "Analysis already in progress for this contract")
			return
		}
		respondInternalError(c, err, "Failed to analyze contract",
			zap.String("address", req.Address),
			zap.String("chain", string(chain)))
		return
	}

	c.JSON(http.StatusOK, result)
}

type analyzeBatchRequest struct {
	Chain     string             `json:"chain"`
	Contracts []analysis.Request `json:"contracts"`
}

// AnalyzeContracts runs the analysis pipeline for a batch of contracts
func (h *handler) AnalyzeContracts(c *gin.Context) {
	var req analyzeBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	chain, err := parseChain(req.Chain)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if len(req.Contracts) == 0 {
		respondBadRequest(c, "contracts is required")
		return
	}
	for _, contract := range req.Contracts {
		if !domain.IsValidAddress(contract.Address) {
			respondValidationError(c, fmt.Sprintf("invalid ethereum address %q", contract.Address))
			return
		}
		if err := validateWebsiteURL(contract.WebsiteURL); err != nil {
			respondValidationError(c, err.Error())
			return
		}
	}

	results, err := h.coordinator.AnalyzeAll(c.Request.Context(), chain, req.Contracts)
	if err != nil {
		respondInternalError(c, err, "Failed to analyze contracts", zap.String("chain", string(chain)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseIntQuery(c *gin.Context, name string, dst *int) error {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fmt.Errorf("%s must be a non-negative integer", name)
	}
	*dst = value
	return nil
}

func parseFloatQuery(c *gin.Context, name string, dst *float64) error {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return fmt.Errorf("%s must be a non-negative number", name)
	}
	*dst = value
	return nil
}
