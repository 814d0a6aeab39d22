package schema

import (
	"time"
)

// ContractSourceCode represents the contract_source_code table - the verified
// source fetched from the block explorer, kept as an immutable snapshot per
// (address, chain).
type ContractSourceCode struct {
	// Address is the lowercased contract address
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Chain is the network the contract lives on
	Chain string `gorm:"column:chain;primaryKey;type:text"`
	// SourceCode is the flattened verified source
	SourceCode string `gorm:"column:source_code;not null;type:text"`
	// ConstructorArguments is the ABI-encoded constructor argument blob
	ConstructorArguments string `gorm:"column:constructor_arguments;type:text"`
	// EVMVersion is the EVM target the source was compiled for
	EVMVersion string `gorm:"column:evm_version;type:text"`
	// CreatedAt is the timestamp when this snapshot was stored
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this snapshot was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ContractSourceCode model
func (ContractSourceCode) TableName() string {
	return "contract_source_code"
}
