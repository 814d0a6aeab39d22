package analysis

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"go.uber.org/zap"

	"github.com/houndmaster/houndmaster/internal/adapter"
	"github.com/houndmaster/houndmaster/internal/domain"
	"github.com/houndmaster/houndmaster/internal/logger"
	"github.com/houndmaster/houndmaster/internal/providers/ethereum"
	"github.com/houndmaster/houndmaster/internal/providers/gemini"
	"github.com/houndmaster/houndmaster/internal/verification"
)

// maxExternalPriceCandidates bounds how many referenced contracts are
// inspected when the price lives outside the minting contract
const maxExternalPriceCandidates = 3

// analysisState enumerates the stages of the mint-revenue pipeline. Every
// analysis walks these states in order; each state either produces a terminal
// result or advances.
type analysisState int

const (
	stateLoadEvidence analysisState = iota
	stateAnalyzeSource
	stateResolveExternalPrice
	stateSupplyMath
	stateScanEvents
	stateExhausted
)

// sourceAnalysis is the model's reading of the contract source
type sourceAnalysis struct {
	MintPrice       *string           `json:"mintPrice"`
	IsVariablePrice bool              `json:"isVariablePrice"`
	IsExternalPrice bool              `json:"isExternalPrice"`
	MaxSupply       *float64          `json:"maxSupply"`
	Currency        string            `json:"currency"`
	MintFunctions   []string          `json:"mintFunctions"`
	Confidence      domain.Confidence `json:"confidence"`
	Explanation     string            `json:"explanation"`
}

type candidateAddresses struct {
	Addresses []string `json:"addresses"`
}

type externalPrice struct {
	MintPrice  *string           `json:"mintPrice"`
	Currency   string            `json:"currency"`
	Confidence domain.Confidence `json:"confidence"`
}

type eventsAnalysis struct {
	TotalRaised      string            `json:"totalRaised"`
	Currency         string            `json:"currency"`
	MintCount        *int              `json:"mintCount"`
	AverageMintPrice *string           `json:"averageMintPrice"`
	Confidence       domain.Confidence `json:"confidence"`
	Explanation      string            `json:"explanation"`
}

// ContractAnalyzer infers mint revenue for a contract
//
//go:generate mockgen -source=contract.go -destination=../mocks/contract_analyzer.go -package=mocks -mock_names=ContractAnalyzer=MockContractAnalyzer
type ContractAnalyzer interface {
	// Analyze runs the mint-revenue pipeline for one contract. A result is
	// always produced; missing evidence lowers confidence instead of failing.
	Analyze(ctx context.Context, address string, chain domain.Chain) (*domain.MintAnalysisResult, error)
}

type contractAnalyzer struct {
	verification verification.Service
	llm          gemini.Client
	onchain      ethereum.Client
	json         adapter.JSON
}

// NewContractAnalyzer creates a new contract analyzer
func NewContractAnalyzer(verificationSvc verification.Service, llm gemini.Client, onchain ethereum.Client, json adapter.JSON) ContractAnalyzer {
	return &contractAnalyzer{
		verification: verificationSvc,
		llm:          llm,
		onchain:      onchain,
		json:         json,
	}
}

// evidence carries everything gathered so far across state transitions
type evidence struct {
	address string
	chain   domain.Chain

	sourceCode *string
	abiJSON    *string
	analysis   *sourceAnalysis
	priceWei   *big.Int
	events     []ethereum.MintEvent
}

// Analyze runs the mint-revenue pipeline for one contract
func (a *contractAnalyzer) Analyze(ctx context.Context, address string, chain domain.Chain) (*domain.MintAnalysisResult, error) {
	if !domain.IsValidChain(chain) {
		return nil, domain.ErrUnsupportedChain
	}
	if !domain.IsValidAddress(address) {
		return nil, domain.ErrInvalidAddress
	}

	ev := &evidence{address: strings.ToLower(address), chain: chain}
	state := stateLoadEvidence

	for {
		var result *domain.MintAnalysisResult
		var err error

		switch state {
		case stateLoadEvidence:
			state, result, err = a.loadEvidence(ctx, ev)
		case stateAnalyzeSource:
			state, result, err = a.analyzeSource(ctx, ev)
		case stateResolveExternalPrice:
			state = a.resolveExternalPrice(ctx, ev)
		case stateSupplyMath:
			state, result = a.computeFromSupply(ctx, ev)
		case stateScanEvents:
			state, result = a.analyzeEvents(ctx, ev)
		case stateExhausted:
			result = exhaustedResult(ev)
		}

		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
	}
}

func (a *contractAnalyzer) loadEvidence(ctx context.Context, ev *evidence) (analysisState, *domain.MintAnalysisResult, error) {
	data, err := a.verification.GetOrFetchContractData(ctx, []string{ev.address}, ev.chain)
	if err != nil {
		return 0, nil, err
	}

	contractData := data[ev.address]
	ev.sourceCode = contractData.SourceCode
	ev.abiJSON = contractData.ABI

	if ev.sourceCode == nil {
		missing := []string{"verified contract source code"}
		if ev.abiJSON == nil {
			missing = append(missing, "contract abi")
		}
		return 0, &domain.MintAnalysisResult{
			Confidence:  domain.ConfidenceLow,
			Explanation: "No verified source code found",
			MissingInfo: missing,
		}, nil
	}

	return stateAnalyzeSource, nil, nil
}

func (a *contractAnalyzer) analyzeSource(ctx context.Context, ev *evidence) (analysisState, *domain.MintAnalysisResult, error) {
	response, err := a.llm.GenerateText(ctx, sourceCodePrompt(*ev.sourceCode))
	if err != nil {
		return 0, nil, fmt.Errorf("source analysis failed: %w", err)
	}

	var analysis sourceAnalysis
	if err := a.json.Unmarshal([]byte(stripCodeFence(response)), &analysis); err != nil {
		return 0, &domain.MintAnalysisResult{
			Confidence:  domain.ConfidenceLow,
			Explanation: "Model returned a malformed source code analysis",
			MissingInfo: []string{"parseable source code analysis"},
		}, nil
	}
	ev.analysis = &analysis

	if analysis.IsExternalPrice && analysis.MintPrice == nil {
		return stateResolveExternalPrice, nil, nil
	}
	return stateSupplyMath, nil, nil
}

// resolveExternalPrice chases the price into referenced contracts: ask the
// model for candidates, fetch each one's source through the verification
// cache, and stop at the first extracted price. Unresolved is not terminal;
// the pipeline falls through with no price.
func (a *contractAnalyzer) resolveExternalPrice(ctx context.Context, ev *evidence) analysisState {
	response, err := a.llm.GenerateText(ctx, externalPriceCandidatesPrompt(*ev.sourceCode))
	if err != nil {
		logger.WarnCtx(ctx, "external price candidate lookup failed",
			zap.String("address", ev.address), zap.Error(err))
		return stateSupplyMath
	}

	var candidates candidateAddresses
	if err := a.json.Unmarshal([]byte(stripCodeFence(response)), &candidates); err != nil {
		logger.WarnCtx(ctx, "malformed candidate address response",
			zap.String("address", ev.address), zap.Error(err))
		return stateSupplyMath
	}

	inspected := 0
	for _, candidate := range candidates.Addresses {
		if inspected >= maxExternalPriceCandidates {
			break
		}
		if !domain.IsValidAddress(candidate) {
			continue
		}
		inspected++

		candidate = strings.ToLower(candidate)
		data, err := a.verification.GetOrFetchContractData(ctx, []string{candidate}, ev.chain)
		if err != nil || data[candidate].SourceCode == nil {
			continue
		}

		priceResponse, err := a.llm.GenerateText(ctx, externalPriceExtractionPrompt(*data[candidate].SourceCode))
		if err != nil {
			continue
		}
		var price externalPrice
		if err := a.json.Unmarshal([]byte(stripCodeFence(priceResponse)), &price); err != nil {
			continue
		}
		if price.MintPrice != nil {
			ev.analysis.MintPrice = price.MintPrice
			if price.Currency != "" {
				ev.analysis.Currency = price.Currency
			}
			break
		}
	}

	return stateSupplyMath
}

// computeFromSupply multiplies a trusted fixed price by the on-chain supply.
// Applies only when the source analysis is high confidence with a fixed,
// parseable price; otherwise falls through to the event scan.
func (a *contractAnalyzer) computeFromSupply(ctx context.Context, ev *evidence) (analysisState, *domain.MintAnalysisResult) {
	analysis := ev.analysis
	if analysis.Confidence != domain.ConfidenceHigh || analysis.IsVariablePrice || analysis.MintPrice == nil {
		return stateScanEvents, nil
	}

	priceWei, err := parsePriceToWei(*analysis.MintPrice)
	if err != nil {
		return 0, &domain.MintAnalysisResult{
			Currency:    currencyOf(analysis),
			Confidence:  domain.ConfidenceLow,
			Explanation: fmt.Sprintf("Source analysis reported mint price %q, which is not a usable amount", *analysis.MintPrice),
			MissingInfo: []string{"accurate price information"},
		}
	}
	ev.priceWei = priceWei

	if ev.abiJSON == nil {
		return stateScanEvents, nil
	}

	supply, err := a.onchain.ReadSupply(ctx, ev.chain, ev.address, *ev.abiJSON)
	if err != nil {
		logger.WarnCtx(ctx, "supply read failed",
			zap.String("address", ev.address),
			zap.String("chain", string(ev.chain)),
			zap.Error(err))
		return stateScanEvents, nil
	}

	totalRaised := new(big.Int).Mul(priceWei, supply).String()
	return 0, &domain.MintAnalysisResult{
		TotalRaised: &totalRaised,
		Currency:    currencyOf(analysis),
		Confidence:  domain.ConfidenceHigh,
		Explanation: fmt.Sprintf("Calculated from fixed mint price of %s %s * total supply of %s",
			*analysis.MintPrice, analysis.Currency, supply.String()),
	}
}

// analyzeEvents hands the mint-event logs plus the earlier source analysis to
// the model for an estimate. No events means the pipeline is out of evidence.
func (a *contractAnalyzer) analyzeEvents(ctx context.Context, ev *evidence) (analysisState, *domain.MintAnalysisResult) {
	events, err := a.onchain.GetMintEvents(ctx, ev.chain, ev.address)
	if err != nil {
		logger.WarnCtx(ctx, "mint event scan failed",
			zap.String("address", ev.address),
			zap.String("chain", string(ev.chain)),
			zap.Error(err))
		return stateExhausted, nil
	}
	ev.events = events
	if len(events) == 0 {
		return stateExhausted, nil
	}

	eventsJSON, err := a.json.Marshal(events)
	if err != nil {
		return stateExhausted, nil
	}
	analysisJSON, err := a.json.Marshal(ev.analysis)
	if err != nil {
		return stateExhausted, nil
	}

	response, err := a.llm.GenerateText(ctx, mintEventsPrompt(string(eventsJSON), string(analysisJSON)))
	if err != nil {
		logger.WarnCtx(ctx, "event analysis failed",
			zap.String("address", ev.address), zap.Error(err))
		return stateExhausted, nil
	}

	var result eventsAnalysis
	if err := a.json.Unmarshal([]byte(stripCodeFence(response)), &result); err != nil {
		return 0, &domain.MintAnalysisResult{
			Confidence:  domain.ConfidenceLow,
			Explanation: "Model returned a malformed event analysis",
			MissingInfo: []string{"parseable event analysis"},
		}
	}

	confidence := result.Confidence
	if !domain.IsValidConfidence(confidence) {
		confidence = domain.ConfidenceLow
	}

	out := &domain.MintAnalysisResult{
		Confidence:       confidence,
		Explanation:      result.Explanation,
		MintCount:        result.MintCount,
		AverageMintPrice: result.AverageMintPrice,
	}
	if result.TotalRaised != "" {
		out.TotalRaised = &result.TotalRaised
	}
	if result.Currency != "" {
		out.Currency = &result.Currency
	}
	return 0, out
}

// exhaustedResult enumerates every ingredient that is actually absent
func exhaustedResult(ev *evidence) *domain.MintAnalysisResult {
	var missing []string
	if ev.sourceCode == nil {
		missing = append(missing, "verified contract source code")
	}
	if ev.abiJSON == nil {
		missing = append(missing, "contract abi")
	}
	if len(ev.events) == 0 {
		missing = append(missing, "mint event logs")
	}
	if ev.analysis == nil || ev.analysis.MintPrice == nil {
		missing = append(missing, "accurate price information")
	}
	missing = append(missing, "total supply data")

	return &domain.MintAnalysisResult{
		Currency:    currencyOf(ev.analysis),
		Confidence:  domain.ConfidenceLow,
		Explanation: "Could not determine total raised from available data",
		MissingInfo: missing,
	}
}

func currencyOf(analysis *sourceAnalysis) *string {
	if analysis == nil || analysis.Currency == "" {
		return nil
	}
	return &analysis.Currency
}
