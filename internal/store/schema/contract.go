package schema

import (
	"time"
)

// Contract represents the contracts table - one row per contract per chain.
// The same address can exist on several chains, so the primary key is the
// (address, chain) pair.
type Contract struct {
	// Address is the lowercased contract address
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Chain is the network the contract lives on
	Chain string `gorm:"column:chain;primaryKey;type:text"`
	// Name is the contract name reported by the block explorer, if verified
	Name *string `gorm:"column:name;type:text"`
	// CompilerVersion is the solc version the source was verified against
	CompilerVersion string `gorm:"column:compiler_version;type:text"`
	// OptimizationUsed is set when the source was compiled with the optimizer
	OptimizationUsed bool `gorm:"column:optimization_used;not null;default:false"`
	// Runs is the optimizer runs setting as reported by the explorer
	Runs string `gorm:"column:runs;type:text"`
	// LicenseType is the source license reported by the explorer
	LicenseType string `gorm:"column:license_type;type:text"`
	// Proxy is set when the explorer flags the contract as a proxy
	Proxy bool `gorm:"column:proxy;not null;default:false"`
	// Implementation is the implementation address behind a proxy, if any
	Implementation *string `gorm:"column:implementation;type:text"`
	// LastVerified is when source code and ABI were last fetched for this row
	LastVerified *time.Time `gorm:"column:last_verified;type:timestamptz"`
	// CreatedAt is the timestamp when this contract was first seen
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this contract was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Contract model
func (Contract) TableName() string {
	return "contracts"
}
