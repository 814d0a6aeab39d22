package explorer

import (
	"context"
	"fmt"
	"net/url"

	"github.com/houndmaster/houndmaster/internal/adapter"
	"github.com/houndmaster/houndmaster/internal/config"
	"github.com/houndmaster/houndmaster/internal/domain"
	"github.com/houndmaster/houndmaster/internal/ratelimit"
)

// envelope is the common block-explorer API response shape. Status is "1" on
// success; on failure Message is "NOTOK" and Result carries the error text.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  any    `json:"result"`
}

// SourceCodeResult is one entry of the getsourcecode result array
type SourceCodeResult struct {
	SourceCode           string `json:"SourceCode"`
	ABI                  string `json:"ABI"`
	ContractName         string `json:"ContractName"`
	CompilerVersion      string `json:"CompilerVersion"`
	OptimizationUsed     string `json:"OptimizationUsed"`
	Runs                 string `json:"Runs"`
	ConstructorArguments string `json:"ConstructorArguments"`
	EVMVersion           string `json:"EVMVersion"`
	LicenseType          string `json:"LicenseType"`
	Proxy                string `json:"Proxy"`
	Implementation       string `json:"Implementation"`
}

// ContractCreation is one entry of the getcontractcreation result array
type ContractCreation struct {
	ContractAddress string `json:"contractAddress"`
	ContractCreator string `json:"contractCreator"`
	TxHash          string `json:"txHash"`
}

// Client defines the interface for the block-explorer API to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/explorer_client.go -package=mocks -mock_names=Client=MockExplorerClient
type Client interface {
	// GetSourceCode fetches the verified source code record of a contract
	GetSourceCode(ctx context.Context, chain domain.Chain, address string) (*SourceCodeResult, error)
	// GetABI fetches the verified ABI of a contract as a JSON string
	GetABI(ctx context.Context, chain domain.Chain, address string) (string, error)
	// GetContractCreation fetches the deployer and creation transaction of a contract
	GetContractCreation(ctx context.Context, chain domain.Chain, address string) (*ContractCreation, error)
	// GetBalance fetches the current native-token balance of an address in wei
	GetBalance(ctx context.Context, chain domain.Chain, address string) (string, error)
}

// EtherscanClient implements the client against Etherscan-compatible APIs
type EtherscanClient struct {
	httpClient adapter.HTTPClient
	limiter    ratelimit.Limiter
	cfg        config.ExplorerConfig
	json       adapter.JSON
}

// NewClient creates a new block-explorer API client
func NewClient(httpClient adapter.HTTPClient, limiter ratelimit.Limiter, cfg config.ExplorerConfig, json adapter.JSON) Client {
	return &EtherscanClient{
		httpClient: httpClient,
		limiter:    limiter,
		cfg:        cfg,
		json:       json,
	}
}

func (c *EtherscanClient) request(ctx context.Context, chain domain.Chain, module, action, address string, extra url.Values) ([]byte, error) {
	baseURL, err := c.cfg.ExplorerURL(string(chain))
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("module", module)
	params.Set("action", action)
	params.Set("address", address)
	if c.cfg.APIKey != "" {
		params.Set("apikey", c.cfg.APIKey)
	}
	for key, values := range extra {
		for _, v := range values {
			params.Add(key, v)
		}
	}

	requestURL := fmt.Sprintf("%s?%s", baseURL, params.Encode())

	respBody, err := ratelimit.Schedule(ctx, c.limiter, config.ProviderExplorer, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, requestURL, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call block-explorer API: %w", err)
	}

	return respBody, nil
}

// checkEnvelope re-marshals the result payload into dst after verifying the
// status flag, so each action can decode its own result shape.
func (c *EtherscanClient) checkEnvelope(respBody []byte, dst any) error {
	var env envelope
	if err := c.json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to unmarshal block-explorer response: %w", err)
	}

	if env.Status != "1" {
		detail := env.Message
		if text, ok := env.Result.(string); ok && text != "" {
			detail = fmt.Sprintf("%s: %s", env.Message, text)
		}
		return fmt.Errorf("block-explorer API error: %s", detail)
	}

	raw, err := c.json.Marshal(env.Result)
	if err != nil {
		return fmt.Errorf("failed to re-marshal block-explorer result: %w", err)
	}

	if err := c.json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to unmarshal block-explorer result: %w", err)
	}

	return nil
}

// GetSourceCode fetches the verified source code record of a contract
func (c *EtherscanClient) GetSourceCode(ctx context.Context, chain domain.Chain, address string) (*SourceCodeResult, error) {
	respBody, err := c.request(ctx, chain, "contract", "getsourcecode", address, nil)
	if err != nil {
		return nil, err
	}

	var results []SourceCodeResult
	if err := c.checkEnvelope(respBody, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("empty getsourcecode result for %s", address)
	}

	return &results[0], nil
}

// GetABI fetches the verified ABI of a contract as a JSON string
func (c *EtherscanClient) GetABI(ctx context.Context, chain domain.Chain, address string) (string, error) {
	respBody, err := c.request(ctx, chain, "contract", "getabi", address, nil)
	if err != nil {
		return "", err
	}

	var abiJSON string
	if err := c.checkEnvelope(respBody, &abiJSON); err != nil {
		return "", err
	}

	return abiJSON, nil
}

// GetContractCreation fetches the deployer and creation transaction of a contract
func (c *EtherscanClient) GetContractCreation(ctx context.Context, chain domain.Chain, address string) (*ContractCreation, error) {
	extra := url.Values{}
	extra.Set("contractaddresses", address)

	respBody, err := c.request(ctx, chain, "contract", "getcontractcreation", address, extra)
	if err != nil {
		return nil, err
	}

	var results []ContractCreation
	if err := c.checkEnvelope(respBody, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("empty getcontractcreation result for %s", address)
	}

	return &results[0], nil
}

// GetBalance fetches the current native-token balance of an address in wei
func (c *EtherscanClient) GetBalance(ctx context.Context, chain domain.Chain, address string) (string, error) {
	extra := url.Values{}
	extra.Set("tag", "latest")

	respBody, err := c.request(ctx, chain, "account", "balance", address, extra)
	if err != nil {
		return "", err
	}

	var balance string
	if err := c.checkEnvelope(respBody, &balance); err != nil {
		return "", err
	}

	return balance, nil
}
