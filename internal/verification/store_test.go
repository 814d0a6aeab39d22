package verification_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houndmaster/houndmaster/internal/domain"
	"github.com/houndmaster/houndmaster/internal/logger"
	"github.com/houndmaster/houndmaster/internal/mocks"
	"github.com/houndmaster/houndmaster/internal/providers/explorer"
	"github.com/houndmaster/houndmaster/internal/store"
	"github.com/houndmaster/houndmaster/internal/store/schema"
	"github.com/houndmaster/houndmaster/internal/verification"
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

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type testServiceMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	explorer *mocks.MockExplorerClient
	clock    *mocks.MockClock
}

func setupTestService(t *testing.T) (*testServiceMocks, verification.Service) {
	ctrl := gomock.NewController(t)

	tm := &testServiceMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		explorer: mocks.NewMockExplorerClient(ctrl),
		clock:    mocks.NewMockClock(ctrl),
	}

	return tm, verification.NewService(tm.store, tm.explorer, tm.clock, 4)
}

func TestGetOrFetchContractData_UnsupportedChain(t *testing.T) {
	tm, service := setupTestService(t)
	defer tm.ctrl.Finish()

	results, err := service.GetOrFetchContractData(context.Background(), []string{testAddress}, domain.Chain("solana"))

	assert.ErrorIs(t, err, domain.ErrUnsupportedChain)
	assert.Nil(t, results)
}

func TestGetOrFetchContractData_CacheMiss_FetchesAndPersists(t *testing.T) {
	tm, service := setupTestService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	chain := domain.ChainEthereum

	tm.store.EXPECT().EnsureContract(gomock.Any(), testAddress, chain).Return(nil)

	// Source code: miss, fetch, persist, mark verified
	tm.store.EXPECT().GetSourceCode(gomock.Any(), testAddress, chain).Return(nil, nil)
	tm.explorer.EXPECT().GetSourceCode(gomock.Any(), chain, testAddress).Return(&explorer.SourceCodeResult{
		SourceCode:           "contract Hound {}",
		ContractName:         "Hound",
		CompilerVersion:      "v0.8.24",
		OptimizationUsed:     "1",
		Runs:                 "200",
		ConstructorArguments: "1388",
		EVMVersion:           "cancun",
		LicenseType:          "MIT",
		Proxy:                "0",
	}, nil)
	// The source row holds only the blobs; compilation metadata goes on the
	// contract row via MarkContractVerified
	tm.store.EXPECT().SaveSourceCode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *schema.ContractSourceCode) error {
			assert.Equal(t, testAddress, record.Address)
			assert.Equal(t, string(chain), record.Chain)
			assert.Equal(t, "contract Hound {}", record.SourceCode)
			assert.Equal(t, "1388", record.ConstructorArguments)
			assert.Equal(t, "cancun", record.EVMVersion)
			return nil
		})
	tm.clock.EXPECT().Now().Return(testNow)
	tm.store.EXPECT().MarkContractVerified(gomock.Any(), testAddress, chain, gomock.Any(), testNow).
		DoAndReturn(func(_ context.Context, _ string, _ domain.Chain, v store.ContractVerification, _ time.Time) error {
			require.NotNil(t, v.Name)
			assert.Equal(t, "Hound", *v.Name)
			assert.Equal(t, "v0.8.24", v.CompilerVersion)
			assert.True(t, v.OptimizationUsed)
			assert.Equal(t, "200", v.Runs)
			assert.Equal(t, "MIT", v.LicenseType)
			assert.False(t, v.Proxy)
			assert.Nil(t, v.Implementation)
			return nil
		})

	// ABI: miss, fetch, persist
	tm.store.EXPECT().GetABI(gomock.Any(), testAddress, chain).Return(nil, nil)
	tm.explorer.EXPECT().GetABI(gomock.Any(), chain, testAddress).Return(`[{"type":"function"}]`, nil)
	tm.store.EXPECT().SaveABI(gomock.Any(), gomock.Any()).Return(nil)

	// Balance is always fetched fresh
	tm.explorer.EXPECT().GetBalance(gomock.Any(), chain, testAddress).Return("1000000000000000000", nil)

	verifiedAt := testNow
	tm.store.EXPECT().GetContract(gomock.Any(), testAddress, chain).Return(&schema.Contract{
		Address:      testAddress,
		Chain:        string(chain),
		LastVerified: &verifiedAt,
	}, nil)

	results, err := service.GetOrFetchContractData(ctx, []string{testAddress}, chain)

	require.NoError(t, err)
	require.Contains(t, results, testAddress)
	data := results[testAddress]
	require.NotNil(t, data.SourceCode)
	assert.Equal(t, "contract Hound {}", *data.SourceCode)
	require.NotNil(t, data.ABI)
	assert.Equal(t, `[{"type":"function"}]`, *data.ABI)
	require.NotNil(t, data.Balance)
	assert.Equal(t, "1000000000000000000", *data.Balance)
	require.NotNil(t, data.LastVerified)
	assert.Equal(t, verifiedAt, *data.LastVerified)
}

func TestGetOrFetchContractData_CacheHit_SkipsExplorerFetch(t *testing.T) {
	tm, service := setupTestService(t)
	defer tm.ctrl.Finish()

	chain := domain.ChainBase

	tm.store.EXPECT().EnsureContract(gomock.Any(), testAddress, chain).Return(nil)

	tm.store.EXPECT().GetSourceCode(gomock.Any(), testAddress, chain).Return(&schema.ContractSourceCode{
		Address:    testAddress,
		Chain:      string(chain),
		SourceCode: "contract Cached {}",
	}, nil)
	tm.store.EXPECT().GetABI(gomock.Any(), testAddress, chain).Return(&schema.ContractABI{
		Address: testAddress,
		Chain:   string(chain),
		ABI:     `[]`,
	}, nil)

	// No GetSourceCode/GetABI explorer expectations: a cached row must not
	// trigger a refetch. Balance alone goes upstream.
	tm.explorer.EXPECT().GetBalance(gomock.Any(), chain, testAddress).Return("0", nil)

	tm.store.EXPECT().GetContract(gomock.Any(), testAddress, chain).Return(nil, nil)

	results, err := service.GetOrFetchContractData(context.Background(), []string{testAddress}, chain)

	require.NoError(t, err)
	data := results[testAddress]
	require.NotNil(t, data.SourceCode)
	assert.Equal(t, "contract Cached {}", *data.SourceCode)
	require.NotNil(t, data.ABI)
	assert.Nil(t, data.LastVerified)
}

func TestGetOrFetchContractData_UnverifiedSourceNotCached(t *testing.T) {
	tm, service := setupTestService(t)
	defer tm.ctrl.Finish()

	chain := domain.ChainEthereum

	tm.store.EXPECT().EnsureContract(gomock.Any(), testAddress, chain).Return(nil)

	// Empty source body means the explorer has no verified source; nothing
	// gets persisted so a later verification is picked up
	tm.store.EXPECT().GetSourceCode(gomock.Any(), testAddress, chain).Return(nil, nil)
	tm.explorer.EXPECT().GetSourceCode(gomock.Any(), chain, testAddress).Return(&explorer.SourceCodeResult{
		SourceCode: "",
	}, nil)

	tm.store.EXPECT().GetABI(gomock.Any(), testAddress, chain).Return(nil, nil)
	tm.explorer.EXPECT().GetABI(gomock.Any(), chain, testAddress).Return("", errors.New("contract not verified"))

	tm.explorer.EXPECT().GetBalance(gomock.Any(), chain, testAddress).Return("42", nil)
	tm.store.EXPECT().GetContract(gomock.Any(), testAddress, chain).Return(nil, nil)

	results, err := service.GetOrFetchContractData(context.Background(), []string{testAddress}, chain)

	require.NoError(t, err)
	data := results[testAddress]
	assert.Nil(t, data.SourceCode)
	assert.Nil(t, data.ABI)
	require.NotNil(t, data.Balance)
	assert.Equal(t, "42", *data.Balance)
}

func TestGetOrFetchContractData_FieldFailuresDoNotAbortBatch(t *testing.T) {
	tm, service := setupTestService(t)
	defer tm.ctrl.Finish()

	chain := domain.ChainEthereum
	upstreamErr := errors.New("explorer timeout")

	tm.store.EXPECT().EnsureContract(gomock.Any(), testAddress, chain).Return(nil)

	tm.store.EXPECT().GetSourceCode(gomock.Any(), testAddress, chain).Return(nil, nil)
	tm.explorer.EXPECT().GetSourceCode(gomock.Any(), chain, testAddress).Return(nil, upstreamErr)

	tm.store.EXPECT().GetABI(gomock.Any(), testAddress, chain).Return(nil, nil)
	tm.explorer.EXPECT().GetABI(gomock.Any(), chain, testAddress).Return("", upstreamErr)

	tm.explorer.EXPECT().GetBalance(gomock.Any(), chain, testAddress).Return("", upstreamErr)
	tm.store.EXPECT().GetContract(gomock.Any(), testAddress, chain).Return(nil, upstreamErr)

	results, err := service.GetOrFetchContractData(context.Background(), []string{testAddress}, chain)

	// Every field failed but the batch still succeeds with an empty record
	require.NoError(t, err)
	require.Contains(t, results, testAddress)
	data := results[testAddress]
	assert.Equal(t, testAddress, data.Address)
	assert.Nil(t, data.SourceCode)
	assert.Nil(t, data.ABI)
	assert.Nil(t, data.Balance)
	assert.Nil(t, data.LastVerified)
}

func TestGetOrFetchContractData_LowercasesAddresses(t *testing.T) {
	tm, service := setupTestService(t)
	defer tm.ctrl.Finish()

	chain := domain.ChainEthereum
	mixedCase := "0x1234567890ABCDEF1234567890ABCDEF12345678"

	tm.store.EXPECT().EnsureContract(gomock.Any(), testAddress, chain).Return(nil)
	tm.store.EXPECT().GetSourceCode(gomock.Any(), testAddress, chain).Return(&schema.ContractSourceCode{
		SourceCode: "contract Hound {}",
	}, nil)
	tm.store.EXPECT().GetABI(gomock.Any(), testAddress, chain).Return(&schema.ContractABI{ABI: `[]`}, nil)
	tm.explorer.EXPECT().GetBalance(gomock.Any(), chain, testAddress).Return("0", nil)
	tm.store.EXPECT().GetContract(gomock.Any(), testAddress, chain).Return(nil, nil)

	results, err := service.GetOrFetchContractData(context.Background(), []string{mixedCase}, chain)

	require.NoError(t, err)
	require.Contains(t, results, testAddress)
	assert.Equal(t, testAddress, results[testAddress].Address)
}

func TestGetOrFetchContractData_MultipleAddresses(t *testing.T) {
	tm, service := setupTestService(t)
	defer tm.ctrl.Finish()

	chain := domain.ChainEthereum
	addresses := []string{
		"0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		"0xcccccccccccccccccccccccccccccccccccccccc",
	}

	for _, address := range addresses {
		tm.store.EXPECT().EnsureContract(gomock.Any(), address, chain).Return(nil)
		tm.store.EXPECT().GetSourceCode(gomock.Any(), address, chain).Return(&schema.ContractSourceCode{
			SourceCode: "contract Hound {}",
		}, nil)
		tm.store.EXPECT().GetABI(gomock.Any(), address, chain).Return(&schema.ContractABI{ABI: `[]`}, nil)
		tm.explorer.EXPECT().GetBalance(gomock.Any(), chain, address).Return("1", nil)
		tm.store.EXPECT().GetContract(gomock.Any(), address, chain).Return(nil, nil)
	}

	results, err := service.GetOrFetchContractData(context.Background(), addresses, chain)

	require.NoError(t, err)
	assert.Len(t, results, 3)
	for _, address := range addresses {
		assert.Contains(t, results, address)
	}
}
