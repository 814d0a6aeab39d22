package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"sync"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/houndmaster/houndmaster/internal/adapter"
	"github.com/houndmaster/houndmaster/internal/config"
	"github.com/houndmaster/houndmaster/internal/domain"
	"github.com/houndmaster/houndmaster/internal/logger"
)

// supplyNameRe matches view functions that plausibly report a token supply
var supplyNameRe = regexp.MustCompile(`(?i)^(?:total|max|_max|_total)?supply$`)

// supplyNamePriority orders supply candidates from most to least canonical
var supplyNamePriority = []string{"totalSupply", "maxSupply", "_maxSupply", "supply"}

// mintEventSignatures is the catalogue of event signatures scanned for mint
// activity. Transfer is handled separately so the from-zero topic filter can
// be applied server-side.
var mintEventSignatures = []string{
	"Mint(address,uint256)",
	"Mint(address,uint256,uint256)",
	"MintedNFT(address,uint256)",
	"MintedNFT(address,uint256,uint256)",
	"Minted(address,uint256)",
	"Minted(address,uint256,uint256)",
	"PublicMint(address,uint256)",
	"BatchMint(address,uint256[])",
	"Sale(address,uint256,uint256)",
	"Purchase(address,uint256,uint256)",
	"TokenPurchased(address,uint256,uint256)",
}

const transferSignature = "Transfer(address,address,uint256)"

// MintEvent is one decoded-enough log entry handed to downstream analysis
type MintEvent struct {
	Event       string   `json:"event"`
	TxHash      string   `json:"txHash"`
	BlockNumber uint64   `json:"blockNumber"`
	Topics      []string `json:"topics"`
	Data        string   `json:"data"`
}

// Client defines the interface for on-chain reads to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/ethereum_client.go -package=mocks -mock_names=Client=MockEthereumClient
type Client interface {
	// ReadSupply calls the contract's supply view function chosen from its ABI.
	// It returns domain.ErrNoSupplyFunction when the ABI exposes none.
	ReadSupply(ctx context.Context, chain domain.Chain, contractAddress string, abiJSON string) (*big.Int, error)

	// GetMintEvents scans the chain for mint-shaped logs emitted by the contract
	GetMintEvents(ctx context.Context, chain domain.Chain, contractAddress string) ([]MintEvent, error)

	// Close releases all dialed connections
	Close()
}

// RPCClient implements on-chain reads over per-chain JSON-RPC connections,
// dialed lazily on first use.
type RPCClient struct {
	dialer adapter.EthClientDialer
	cfg    config.RPCConfig
	json   adapter.JSON

	mu      sync.Mutex
	clients map[domain.Chain]adapter.EthClient
}

// NewClient creates a new on-chain read client
func NewClient(dialer adapter.EthClientDialer, cfg config.RPCConfig, json adapter.JSON) Client {
	return &RPCClient{
		dialer:  dialer,
		cfg:     cfg,
		json:    json,
		clients: make(map[domain.Chain]adapter.EthClient),
	}
}

func (c *RPCClient) clientFor(ctx context.Context, chain domain.Chain) (adapter.EthClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.clients[chain]; ok {
		return client, nil
	}

	rpcURL, err := c.cfg.RPCURL(string(chain))
	if err != nil {
		return nil, err
	}

	client, err := c.dialer.Dial(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s rpc: %w", chain, err)
	}

	c.clients[chain] = client
	return client, nil
}

// Close releases all dialed connections
func (c *RPCClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for chain, client := range c.clients {
		client.Close()
		delete(c.clients, chain)
	}
}

// abiFunction is the subset of an ABI entry needed to pick a supply function
type abiFunction struct {
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	StateMutability string     `json:"stateMutability"`
	Inputs          []abiParam `json:"inputs"`
	Outputs         []abiParam `json:"outputs"`
}

type abiParam struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// findSupplyFunction picks the supply view function to call from a verified
// ABI. Candidates must be view functions taking no inputs and returning a
// single uint256; among candidates the canonical names win.
func findSupplyFunction(json adapter.JSON, abiJSON string) (string, error) {
	var entries []abiFunction
	if err := json.Unmarshal([]byte(abiJSON), &entries); err != nil {
		return "", fmt.Errorf("failed to parse contract abi: %w", err)
	}

	candidates := make(map[string]bool)
	for _, entry := range entries {
		if entry.Type != "function" {
			continue
		}
		if entry.StateMutability != "view" && entry.StateMutability != "pure" {
			continue
		}
		if len(entry.Inputs) != 0 {
			continue
		}
		if len(entry.Outputs) != 1 || entry.Outputs[0].Type != "uint256" {
			continue
		}
		if !supplyNameRe.MatchString(entry.Name) {
			continue
		}
		candidates[entry.Name] = true
	}

	if len(candidates) == 0 {
		return "", domain.ErrNoSupplyFunction
	}

	for _, name := range supplyNamePriority {
		if candidates[name] {
			return name, nil
		}
	}

	// Fall back to any remaining match, e.g. nonstandard casing
	for name := range candidates {
		return name, nil
	}
	return "", domain.ErrNoSupplyFunction
}

// ReadSupply calls the contract's supply view function chosen from its ABI
func (c *RPCClient) ReadSupply(ctx context.Context, chain domain.Chain, contractAddress string, abiJSON string) (*big.Int, error) {
	fnName, err := findSupplyFunction(c.json, abiJSON)
	if err != nil {
		return nil, err
	}

	client, err := c.clientFor(ctx, chain)
	if err != nil {
		return nil, err
	}

	callABI, err := abi.JSON(strings.NewReader(fmt.Sprintf(
		`[{"constant":true,"inputs":[],"name":"%s","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"}]`,
		fnName)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse supply call abi: %w", err)
	}

	callData, err := callABI.Pack(fnName)
	if err != nil {
		return nil, fmt.Errorf("failed to pack supply call: %w", err)
	}

	contract := common.HexToAddress(contractAddress)
	result, err := client.CallContract(ctx, goethereum.CallMsg{
		To:   &contract,
		Data: callData,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", fnName, err)
	}

	var supply *big.Int
	if err := callABI.UnpackIntoInterface(&supply, fnName, result); err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", fnName, err)
	}

	return supply, nil
}

// GetMintEvents scans the chain for mint-shaped logs emitted by the contract.
// Individual signature scans are best-effort: a signature whose query fails is
// skipped rather than failing the whole scan.
func (c *RPCClient) GetMintEvents(ctx context.Context, chain domain.Chain, contractAddress string) ([]MintEvent, error) {
	client, err := c.clientFor(ctx, chain)
	if err != nil {
		return nil, err
	}

	contract := common.HexToAddress(contractAddress)
	events := make([]MintEvent, 0)

	// ERC-721 mints are Transfer events from the zero address
	transferTopic := crypto.Keccak256Hash([]byte(transferSignature))
	zeroTopic := common.Hash{}
	transferLogs, err := client.FilterLogs(ctx, goethereum.FilterQuery{
		FromBlock: big.NewInt(0),
		Addresses: []common.Address{contract},
		Topics:    [][]common.Hash{{transferTopic}, {zeroTopic}},
	})
	if err != nil {
		logger.WarnCtx(ctx, "transfer log scan failed",
			zap.String("contract", contractAddress),
			zap.String("chain", string(chain)),
			zap.Error(err))
	} else {
		for _, l := range transferLogs {
			events = append(events, newMintEvent(transferSignature, l.TxHash.Hex(), l.BlockNumber, l.Topics, l.Data))
		}
	}

	for _, signature := range mintEventSignatures {
		topic := crypto.Keccak256Hash([]byte(signature))
		logs, err := client.FilterLogs(ctx, goethereum.FilterQuery{
			FromBlock: big.NewInt(0),
			Addresses: []common.Address{contract},
			Topics:    [][]common.Hash{{topic}},
		})
		if err != nil {
			logger.WarnCtx(ctx, "mint log scan failed",
				zap.String("contract", contractAddress),
				zap.String("signature", signature),
				zap.Error(err))
			continue
		}
		for _, l := range logs {
			events = append(events, newMintEvent(signature, l.TxHash.Hex(), l.BlockNumber, l.Topics, l.Data))
		}
	}

	return events, nil
}

func newMintEvent(signature, txHash string, blockNumber uint64, topics []common.Hash, data []byte) MintEvent {
	hexTopics := make([]string, 0, len(topics))
	for _, t := range topics {
		hexTopics = append(hexTopics, t.Hex())
	}
	return MintEvent{
		Event:       signature,
		TxHash:      txHash,
		BlockNumber: blockNumber,
		Topics:      hexTopics,
		Data:        "0x" + common.Bytes2Hex(data),
	}
}
