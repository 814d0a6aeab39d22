package schema

import (
	"time"
)

// ContractABI represents the contract_abis table - the verified ABI fetched
// from the block explorer, one snapshot per (address, chain).
type ContractABI struct {
	// Address is the lowercased contract address
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Chain is the network the contract lives on
	Chain string `gorm:"column:chain;primaryKey;type:text"`
	// ABI is the verified ABI as a JSON string
	ABI string `gorm:"column:abi;not null;type:text"`
	// CreatedAt is the timestamp when this snapshot was stored
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this snapshot was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ContractABI model
func (ContractABI) TableName() string {
	return "contract_abis"
}
