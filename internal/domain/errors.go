package domain

import "errors"

var (
	// ErrUnsupportedChain is returned when a chain identifier is not in the supported set
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrInvalidAddress is returned when an address is not a valid Ethereum address
	ErrInvalidAddress = errors.New("invalid ethereum address format")

	// ErrAnalysisInProgress is returned when an analysis for the same contract is already running
	ErrAnalysisInProgress = errors.New("analysis already in progress for this contract")

	// ErrContractNotFound is returned when a contract row does not exist
	ErrContractNotFound = errors.New("contract not found")

	// ErrNoSupplyFunction is returned when a verified ABI exposes no supply view function
	ErrNoSupplyFunction = errors.New("contract abi exposes no supply function")
)
