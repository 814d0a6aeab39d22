package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/houndmaster/houndmaster/internal/domain"
	"github.com/houndmaster/houndmaster/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults: 20 open, 5 idle,
// 5 minutes max lifetime, 10 minutes max idle time.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// EnsureContract creates the contract row if it does not exist yet
func (s *pgStore) EnsureContract(ctx context.Context, address string, chain domain.Chain) error {
	contract := schema.Contract{
		Address: address,
		Chain:   string(chain),
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}, {Name: "chain"}},
		DoNothing: true,
	}).Create(&contract).Error; err != nil {
		return fmt.Errorf("failed to ensure contract: %w", err)
	}

	return nil
}

// GetContract retrieves a contract row, or nil when none exists
func (s *pgStore) GetContract(ctx context.Context, address string, chain domain.Chain) (*schema.Contract, error) {
	var contract schema.Contract
	err := s.db.WithContext(ctx).
		Where("address = ? AND chain = ?", address, string(chain)).
		First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}

	return &contract, nil
}

// MarkContractVerified records verification metadata and the fetch time on
// the contract row
func (s *pgStore) MarkContractVerified(ctx context.Context, address string, chain domain.Chain, verification ContractVerification, verifiedAt time.Time) error {
	updates := map[string]interface{}{
		"compiler_version":  verification.CompilerVersion,
		"optimization_used": verification.OptimizationUsed,
		"runs":              verification.Runs,
		"license_type":      verification.LicenseType,
		"proxy":             verification.Proxy,
		"implementation":    verification.Implementation,
		"last_verified":     verifiedAt,
	}
	if verification.Name != nil {
		updates["name"] = *verification.Name
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Contract{}).
		Where("address = ? AND chain = ?", address, string(chain)).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to mark contract verified: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrContractNotFound
	}

	return nil
}

// GetSourceCode retrieves the stored source snapshot, or nil when none exists
func (s *pgStore) GetSourceCode(ctx context.Context, address string, chain domain.Chain) (*schema.ContractSourceCode, error) {
	var record schema.ContractSourceCode
	err := s.db.WithContext(ctx).
		Where("address = ? AND chain = ?", address, string(chain)).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get source code: %w", err)
	}

	return &record, nil
}

// SaveSourceCode upserts the source snapshot for a contract
func (s *pgStore) SaveSourceCode(ctx context.Context, record *schema.ContractSourceCode) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}, {Name: "chain"}},
		DoUpdates: clause.AssignmentColumns([]string{"source_code", "constructor_arguments", "evm_version", "updated_at"}),
	}).Create(record).Error; err != nil {
		return fmt.Errorf("failed to save source code: %w", err)
	}

	return nil
}

// GetABI retrieves the stored ABI snapshot, or nil when none exists
func (s *pgStore) GetABI(ctx context.Context, address string, chain domain.Chain) (*schema.ContractABI, error) {
	var record schema.ContractABI
	err := s.db.WithContext(ctx).
		Where("address = ? AND chain = ?", address, string(chain)).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get abi: %w", err)
	}

	return &record, nil
}

// SaveABI upserts the ABI snapshot for a contract
func (s *pgStore) SaveABI(ctx context.Context, record *schema.ContractABI) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}, {Name: "chain"}},
		DoUpdates: clause.AssignmentColumns([]string{"abi", "updated_at"}),
	}).Create(record).Error; err != nil {
		return fmt.Errorf("failed to save abi: %w", err)
	}

	return nil
}

// GetWebsiteAnalysis retrieves the cached analysis for a contract, or nil when none exists
func (s *pgStore) GetWebsiteAnalysis(ctx context.Context, address string, chain domain.Chain) (*schema.WebsiteAnalysis, error) {
	var record schema.WebsiteAnalysis
	err := s.db.WithContext(ctx).
		Where("address = ? AND chain = ?", address, string(chain)).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get website analysis: %w", err)
	}

	return &record, nil
}

// SaveWebsiteAnalysis upserts the cached analysis for a contract
func (s *pgStore) SaveWebsiteAnalysis(ctx context.Context, record *schema.WebsiteAnalysis) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}, {Name: "chain"}},
		DoUpdates: clause.AssignmentColumns([]string{"website_url", "project_description", "roadmap", "services_analysis", "confidence", "raw_content", "source_urls", "analyzed_at", "updated_at"}),
	}).Create(record).Error; err != nil {
		return fmt.Errorf("failed to save website analysis: %w", err)
	}

	return nil
}
