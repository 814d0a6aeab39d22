package analysis

import (
	"context"
	"strings"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/houndmaster/houndmaster/internal/config"
	"github.com/houndmaster/houndmaster/internal/domain"
	"github.com/houndmaster/houndmaster/internal/logger"
)

// Request names one contract to analyze, with an optional project website
type Request struct {
	Address    string `json:"address"`
	WebsiteURL string `json:"websiteUrl,omitempty"`
}

// Coordinator fans analyses out over the contract and website analyzers and
// suppresses duplicate requests for contracts already being analyzed
//
//go:generate mockgen -source=coordinator.go -destination=../mocks/coordinator.go -package=mocks -mock_names=Coordinator=MockCoordinator
type Coordinator interface {
	// Analyze runs the contract analyzer and, when a website URL is known,
	// the website analyzer concurrently for one contract. Returns
	// domain.ErrAnalysisInProgress if the contract is already being analyzed.
	Analyze(ctx context.Context, address string, chain domain.Chain, websiteURL string) (*domain.ProjectAnalysis, error)

	// AnalyzeAll analyzes a batch concurrently. Addresses already in flight
	// or failing individually are omitted from the result map, never failing
	// the batch.
	AnalyzeAll(ctx context.Context, chain domain.Chain, requests []Request) (map[string]domain.ProjectAnalysis, error)
}

type coordinator struct {
	contracts ContractAnalyzer
	websites  WebsiteAnalyzer
	cfg       config.AnalysisConfig
	pool      pond.Pool

	mu       sync.Mutex
	inFlight map[string]bool
}

// NewCoordinator creates a new analysis coordinator
func NewCoordinator(contracts ContractAnalyzer, websites WebsiteAnalyzer, cfg config.AnalysisConfig) Coordinator {
	return &coordinator{
		contracts: contracts,
		websites:  websites,
		cfg:       cfg,
		pool:      pond.NewPool(10),
		inFlight:  make(map[string]bool),
	}
}

// Analyze runs the contract and website analyzers concurrently for one contract
func (c *coordinator) Analyze(ctx context.Context, address string, chain domain.Chain, websiteURL string) (*domain.ProjectAnalysis, error) {
	if !domain.IsValidChain(chain) {
		return nil, domain.ErrUnsupportedChain
	}
	if !domain.IsValidAddress(address) {
		return nil, domain.ErrInvalidAddress
	}
	address = strings.ToLower(address)

	key := address + "_" + string(chain)
	if !c.markInFlight(key) {
		return nil, domain.ErrAnalysisInProgress
	}
	defer c.clearInFlight(key)

	// The pipeline has several unbounded upstream waits; the deadline keeps a
	// stuck scrape or model call from pinning the in-flight slot forever.
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ContractDeadline)
	defer cancel()

	var (
		wg             sync.WaitGroup
		contractResult *domain.MintAnalysisResult
		contractErr    error
		websiteResult  *domain.WebsiteSummary
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		contractResult, contractErr = c.contracts.Analyze(ctx, address, chain)
	}()

	if websiteURL != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			summary, err := c.websites.Analyze(ctx, address, chain, websiteURL)
			if err != nil {
				logger.WarnCtx(ctx, "website analysis failed",
					zap.String("address", address),
					zap.String("url", websiteURL),
					zap.Error(err))
				return
			}
			websiteResult = summary
		}()
	}

	wg.Wait()

	if contractErr != nil {
		return nil, contractErr
	}

	return &domain.ProjectAnalysis{
		ContractAnalysis: *contractResult,
		WebsiteAnalysis:  websiteResult,
	}, nil
}

// AnalyzeAll analyzes a batch concurrently with wait-for-all semantics
func (c *coordinator) AnalyzeAll(ctx context.Context, chain domain.Chain, requests []Request) (map[string]domain.ProjectAnalysis, error) {
	if !domain.IsValidChain(chain) {
		return nil, domain.ErrUnsupportedChain
	}

	batchID := uuid.NewString()
	logger.InfoCtx(ctx, "starting analysis batch",
		zap.String("batch_id", batchID),
		zap.String("chain", string(chain)),
		zap.Int("contracts", len(requests)))

	results := make(map[string]domain.ProjectAnalysis, len(requests))
	var mu sync.Mutex

	group := c.pool.NewGroup()
	for _, req := range requests {
		req := req
		group.Submit(func() {
			address := strings.ToLower(req.Address)
			result, err := c.Analyze(ctx, address, chain, req.WebsiteURL)
			if err != nil {
				logger.WarnCtx(ctx, "analysis skipped",
					zap.String("batch_id", batchID),
					zap.String("address", address),
					zap.Error(err))
				return
			}
			mu.Lock()
			results[address] = *result
			mu.Unlock()
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "analysis batch finished",
		zap.String("batch_id", batchID),
		zap.Int("analyzed", len(results)),
		zap.Int("requested", len(requests)))

	return results, nil
}

func (c *coordinator) markInFlight(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight[key] {
		return false
	}
	c.inFlight[key] = true
	return true
}

func (c *coordinator) clearInFlight(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, key)
}
