package store

import (
	"context"
	"time"

	"github.com/houndmaster/houndmaster/internal/domain"
	"github.com/houndmaster/houndmaster/internal/store/schema"
)

// ContractVerification is the explorer-reported metadata recorded on the
// contract row when its source code is first fetched
type ContractVerification struct {
	Name             *string
	CompilerVersion  string
	OptimizationUsed bool
	Runs             string
	LicenseType      string
	Proxy            bool
	Implementation   *string
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// EnsureContract creates the contract row if it does not exist yet
	EnsureContract(ctx context.Context, address string, chain domain.Chain) error
	// GetContract retrieves a contract row, or nil when none exists
	GetContract(ctx context.Context, address string, chain domain.Chain) (*schema.Contract, error)
	// MarkContractVerified records verification metadata and the fetch time
	// on the contract row
	MarkContractVerified(ctx context.Context, address string, chain domain.Chain, verification ContractVerification, verifiedAt time.Time) error

	// GetSourceCode retrieves the stored source snapshot, or nil when none exists
	GetSourceCode(ctx context.Context, address string, chain domain.Chain) (*schema.ContractSourceCode, error)
	// SaveSourceCode upserts the source snapshot for a contract
	SaveSourceCode(ctx context.Context, record *schema.ContractSourceCode) error

	// GetABI retrieves the stored ABI snapshot, or nil when none exists
	GetABI(ctx context.Context, address string, chain domain.Chain) (*schema.ContractABI, error)
	// SaveABI upserts the ABI snapshot for a contract
	SaveABI(ctx context.Context, record *schema.ContractABI) error

	// GetWebsiteAnalysis retrieves the cached analysis for a contract, or nil when none exists
	GetWebsiteAnalysis(ctx context.Context, address string, chain domain.Chain) (*schema.WebsiteAnalysis, error)
	// SaveWebsiteAnalysis upserts the cached analysis for a contract
	SaveWebsiteAnalysis(ctx context.Context, record *schema.WebsiteAnalysis) error
}
