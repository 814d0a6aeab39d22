package explorer_test

import (
	"context"
	"errors"
	"net/url"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houndmaster/houndmaster/internal/adapter"
	"github.com/houndmaster/houndmaster/internal/config"
	"github.com/houndmaster/houndmaster/internal/domain"
	"github.com/houndmaster/houndmaster/internal/logger"
	"github.com/houndmaster/houndmaster/internal/mocks"
	"github.com/houndmaster/houndmaster/internal/providers/explorer"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const testAddress = "0x1234567890abcdef1234567890abcdef12345678"

func setupTestClient(t *testing.T) (*mocks.MockHTTPClient, explorer.Client) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := explorer.NewClient(httpClient, nil, config.ExplorerConfig{
		APIKey: "test-key",
		URLs: map[string]string{
			"ethereum": "https://api.etherscan.example/api",
			"base":     "https://api.basescan.example/api",
		},
	}, adapter.NewJSON())

	return httpClient, client
}

func TestGetSourceCode_Success(t *testing.T) {
	httpClient, client := setupTestClient(t)

	httpClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, requestURL string, _ map[string]string) ([]byte, error) {
			parsed, err := url.Parse(requestURL)
			require.NoError(t, err)
			assert.Equal(t, "api.etherscan.example", parsed.Host)
			params := parsed.Query()
			assert.Equal(t, "contract", params.Get("module"))
			assert.Equal(t, "getsourcecode", params.Get("action"))
			assert.Equal(t, testAddress, params.Get("address"))
			assert.Equal(t, "test-key", params.Get("apikey"))

			return []byte(`{
				"status": "1",
				"message": "OK",
				"result": [{
					"SourceCode": "contract Hound {}",
					"ABI": "[]",
					"ContractName": "Hound",
					"CompilerVersion": "v0.8.24",
					"Proxy": "0",
					"Implementation": ""
				}]
			}`), nil
		})

	result, err := client.GetSourceCode(context.Background(), domain.ChainEthereum, testAddress)

	require.NoError(t, err)
	assert.Equal(t, "contract Hound {}", result.SourceCode)
	assert.Equal(t, "Hound", result.ContractName)
	assert.Equal(t, "v0.8.24", result.CompilerVersion)
	assert.Equal(t, "0", result.Proxy)
}

func TestGetSourceCode_UnconfiguredChain(t *testing.T) {
	_, client := setupTestClient(t)

	result, err := client.GetSourceCode(context.Background(), domain.ChainApechain, testAddress)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "no block explorer configured")
}

func TestGetABI_Success(t *testing.T) {
	httpClient, client := setupTestClient(t)

	httpClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`{"status":"1","message":"OK","result":"[{\"type\":\"function\",\"name\":\"totalSupply\"}]"}`), nil)

	abiJSON, err := client.GetABI(context.Background(), domain.ChainEthereum, testAddress)

	require.NoError(t, err)
	assert.Equal(t, `[{"type":"function","name":"totalSupply"}]`, abiJSON)
}

func TestGetABI_NotVerified(t *testing.T) {
	httpClient, client := setupTestClient(t)

	// Unverified contracts come back as a NOTOK envelope with the detail in
	// the result field
	httpClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`{"status":"0","message":"NOTOK","result":"Contract source code not verified"}`), nil)

	abiJSON, err := client.GetABI(context.Background(), domain.ChainEthereum, testAddress)

	assert.Error(t, err)
	assert.Empty(t, abiJSON)
	assert.Contains(t, err.Error(), "NOTOK")
	assert.Contains(t, err.Error(), "Contract source code not verified")
}

func TestGetBalance_Success(t *testing.T) {
	httpClient, client := setupTestClient(t)

	httpClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, requestURL string, _ map[string]string) ([]byte, error) {
			parsed, err := url.Parse(requestURL)
			require.NoError(t, err)
			params := parsed.Query()
			assert.Equal(t, "account", params.Get("module"))
			assert.Equal(t, "balance", params.Get("action"))
			assert.Equal(t, "latest", params.Get("tag"))
			return []byte(`{"status":"1","message":"OK","result":"1000000000000000000"}`), nil
		})

	balance, err := client.GetBalance(context.Background(), domain.ChainEthereum, testAddress)

	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", balance)
}

func TestGetContractCreation_Success(t *testing.T) {
	httpClient, client := setupTestClient(t)

	httpClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, requestURL string, _ map[string]string) ([]byte, error) {
			parsed, err := url.Parse(requestURL)
			require.NoError(t, err)
			params := parsed.Query()
			assert.Equal(t, "getcontractcreation", params.Get("action"))
			assert.Equal(t, testAddress, params.Get("contractaddresses"))
			return []byte(`{
				"status": "1",
				"message": "OK",
				"result": [{
					"contractAddress": "` + testAddress + `",
					"contractCreator": "0xdeployer000000000000000000000000000000aa",
					"txHash": "0xcreation"
				}]
			}`), nil
		})

	creation, err := client.GetContractCreation(context.Background(), domain.ChainEthereum, testAddress)

	require.NoError(t, err)
	assert.Equal(t, testAddress, creation.ContractAddress)
	assert.Equal(t, "0xcreation", creation.TxHash)
}

func TestGetContractCreation_EmptyResult(t *testing.T) {
	httpClient, client := setupTestClient(t)

	httpClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`{"status":"1","message":"OK","result":[]}`), nil)

	creation, err := client.GetContractCreation(context.Background(), domain.ChainEthereum, testAddress)

	assert.Error(t, err)
	assert.Nil(t, creation)
	assert.Contains(t, err.Error(), "empty getcontractcreation result")
}

func TestGetBalance_RequestError(t *testing.T) {
	httpClient, client := setupTestClient(t)

	httpClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout"))

	balance, err := client.GetBalance(context.Background(), domain.ChainBase, testAddress)

	assert.Error(t, err)
	assert.Empty(t, balance)
	assert.Contains(t, err.Error(), "failed to call block-explorer API")
}

func TestGetSourceCode_MalformedEnvelope(t *testing.T) {
	httpClient, client := setupTestClient(t)

	httpClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`<html>maintenance</html>`), nil)

	result, err := client.GetSourceCode(context.Background(), domain.ChainEthereum, testAddress)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to unmarshal block-explorer response")
}
