package verification

import (
	"context"
	"strings"
	"sync"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/houndmaster/houndmaster/internal/adapter"
	"github.com/houndmaster/houndmaster/internal/domain"
	"github.com/houndmaster/houndmaster/internal/logger"
	"github.com/houndmaster/houndmaster/internal/providers/explorer"
	"github.com/houndmaster/houndmaster/internal/store"
	"github.com/houndmaster/houndmaster/internal/store/schema"
)

// Service is the read-through cache over contract verification data. Source
// code and ABI are fetched once and persisted; balance is always fetched
// fresh because it changes continuously.
//
//go:generate mockgen -source=store.go -destination=../mocks/verification_service.go -package=mocks -mock_names=Service=MockVerificationService
type Service interface {
	// GetOrFetchContractData resolves verification data for a batch of
	// addresses concurrently. Per-address and per-field failures are logged
	// and surface as absent fields, never as a batch error.
	GetOrFetchContractData(ctx context.Context, addresses []string, chain domain.Chain) (map[string]domain.ContractData, error)
}

type service struct {
	store    store.Store
	explorer explorer.Client
	clock    adapter.Clock
	pool     pond.Pool
}

// NewService creates a new verification service. maxConcurrency bounds how
// many addresses of a batch are resolved at once; the shared rate limiter
// still paces the underlying explorer calls.
func NewService(st store.Store, explorerClient explorer.Client, clock adapter.Clock, maxConcurrency int) Service {
	if maxConcurrency <= 0 {
		maxConcurrency = 10
	}
	return &service{
		store:    st,
		explorer: explorerClient,
		clock:    clock,
		pool:     pond.NewPool(maxConcurrency),
	}
}

// GetOrFetchContractData resolves verification data for a batch of addresses
func (s *service) GetOrFetchContractData(ctx context.Context, addresses []string, chain domain.Chain) (map[string]domain.ContractData, error) {
	if !domain.IsValidChain(chain) {
		return nil, domain.ErrUnsupportedChain
	}

	results := make(map[string]domain.ContractData, len(addresses))
	var mu sync.Mutex

	group := s.pool.NewGroup()
	for _, address := range addresses {
		address := strings.ToLower(address)
		group.Submit(func() {
			data := s.fetchOne(ctx, address, chain)
			mu.Lock()
			results[address] = data
			mu.Unlock()
		})
	}
	if err := group.Wait(); err != nil {
		// Tasks never return errors; Wait only fails if the pool was stopped
		return nil, err
	}

	return results, nil
}

// fetchOne resolves one address. Each of the three fields is independently
// fault-tolerant: a failed fetch leaves the field nil and moves on.
func (s *service) fetchOne(ctx context.Context, address string, chain domain.Chain) domain.ContractData {
	data := domain.ContractData{Address: address}

	if err := s.store.EnsureContract(ctx, address, chain); err != nil {
		logger.WarnCtx(ctx, "failed to ensure contract row",
			zap.String("address", address),
			zap.String("chain", string(chain)),
			zap.Error(err))
	}

	if sourceCode := s.resolveSourceCode(ctx, address, chain); sourceCode != nil {
		data.SourceCode = sourceCode
	}
	if abiJSON := s.resolveABI(ctx, address, chain); abiJSON != nil {
		data.ABI = abiJSON
	}

	if balance, err := s.explorer.GetBalance(ctx, chain, address); err != nil {
		logger.WarnCtx(ctx, "failed to fetch balance",
			zap.String("address", address),
			zap.String("chain", string(chain)),
			zap.Error(err))
	} else {
		data.Balance = &balance
	}

	if contract, err := s.store.GetContract(ctx, address, chain); err != nil {
		logger.WarnCtx(ctx, "failed to read contract row",
			zap.String("address", address),
			zap.String("chain", string(chain)),
			zap.Error(err))
	} else if contract != nil {
		data.LastVerified = contract.LastVerified
	}

	return data
}

// resolveSourceCode returns the cached source, fetching and persisting it on
// a miss. Unverified contracts report an empty source body and stay uncached
// so a later verification is picked up.
func (s *service) resolveSourceCode(ctx context.Context, address string, chain domain.Chain) *string {
	cached, err := s.store.GetSourceCode(ctx, address, chain)
	if err != nil {
		logger.WarnCtx(ctx, "failed to read cached source code",
			zap.String("address", address),
			zap.String("chain", string(chain)),
			zap.Error(err))
	}
	if cached != nil {
		return &cached.SourceCode
	}

	fetched, err := s.explorer.GetSourceCode(ctx, chain, address)
	if err != nil {
		logger.WarnCtx(ctx, "failed to fetch source code",
			zap.String("address", address),
			zap.String("chain", string(chain)),
			zap.Error(err))
		return nil
	}
	if fetched.SourceCode == "" {
		logger.DebugCtx(ctx, "contract source not verified",
			zap.String("address", address),
			zap.String("chain", string(chain)))
		return nil
	}

	record := &schema.ContractSourceCode{
		Address:              address,
		Chain:                string(chain),
		SourceCode:           fetched.SourceCode,
		ConstructorArguments: fetched.ConstructorArguments,
		EVMVersion:           fetched.EVMVersion,
	}
	if err := s.store.SaveSourceCode(ctx, record); err != nil {
		logger.WarnCtx(ctx, "failed to persist source code",
			zap.String("address", address),
			zap.String("chain", string(chain)),
			zap.Error(err))
	}

	// Compilation and proxy metadata lives on the contract row
	verification := store.ContractVerification{
		CompilerVersion:  fetched.CompilerVersion,
		OptimizationUsed: fetched.OptimizationUsed == "1",
		Runs:             fetched.Runs,
		LicenseType:      fetched.LicenseType,
		Proxy:            fetched.Proxy == "1",
	}
	if fetched.ContractName != "" {
		verification.Name = &fetched.ContractName
	}
	if fetched.Implementation != "" {
		verification.Implementation = &fetched.Implementation
	}
	if err := s.store.MarkContractVerified(ctx, address, chain, verification, s.clock.Now()); err != nil {
		logger.WarnCtx(ctx, "failed to mark contract verified",
			zap.String("address", address),
			zap.String("chain", string(chain)),
			zap.Error(err))
	}

	return &fetched.SourceCode
}

// resolveABI returns the cached ABI, fetching and persisting it on a miss
func (s *service) resolveABI(ctx context.Context, address string, chain domain.Chain) *string {
	cached, err := s.store.GetABI(ctx, address, chain)
	if err != nil {
		logger.WarnCtx(ctx, "failed to read cached abi",
			zap.String("address", address),
			zap.String("chain", string(chain)),
			zap.Error(err))
	}
	if cached != nil {
		return &cached.ABI
	}

	fetched, err := s.explorer.GetABI(ctx, chain, address)
	if err != nil {
		logger.WarnCtx(ctx, "failed to fetch abi",
			zap.String("address", address),
			zap.String("chain", string(chain)),
			zap.Error(err))
		return nil
	}

	record := &schema.ContractABI{
		Address: address,
		Chain:   string(chain),
		ABI:     fetched,
	}
	if err := s.store.SaveABI(ctx, record); err != nil {
		logger.WarnCtx(ctx, "failed to persist abi",
			zap.String("address", address),
			zap.String("chain", string(chain)),
			zap.Error(err))
	}

	return &fetched
}
