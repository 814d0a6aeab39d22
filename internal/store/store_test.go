package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houndmaster/houndmaster/internal/domain"
	"github.com/houndmaster/houndmaster/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestSourceCode creates a source snapshot for a contract
func buildTestSourceCode(address string, chain domain.Chain) *schema.ContractSourceCode {
	return &schema.ContractSourceCode{
		Address:              address,
		Chain:                string(chain),
		SourceCode:           "contract Hound { uint256 public constant MINT_PRICE = 0.01 ether; }",
		ConstructorArguments: "0000000000000000000000000000000000000000000000000000000000001388",
		EVMVersion:           "cancun",
	}
}

// buildTestVerification creates explorer-reported contract metadata
func buildTestVerification(name string) ContractVerification {
	impl := "0x9999999999999999999999999999999999999999"
	return ContractVerification{
		Name:             &name,
		CompilerVersion:  "v0.8.24+commit.e11b9ed9",
		OptimizationUsed: true,
		Runs:             "200",
		LicenseType:      "MIT",
		Proxy:            true,
		Implementation:   &impl,
	}
}

// buildTestWebsiteAnalysis creates a cached website summary for a contract
func buildTestWebsiteAnalysis(address string, chain domain.Chain, analyzedAt time.Time) *schema.WebsiteAnalysis {
	roadmap := "Q3: reveal, Q4: staking"
	return &schema.WebsiteAnalysis{
		Address:            address,
		Chain:              string(chain),
		WebsiteURL:         "https://hound.example",
		ProjectDescription: "A pack of 5000 hounds.",
		Roadmap:            &roadmap,
		ServicesAnalysis:   "- Audit (high priority): verify the contract",
		Confidence:         string(domain.ConfidenceHigh),
		RawContent:         "=== Content from https://hound.example ===\nA pack of 5000 hounds.",
		SourceURLs:         "https://hound.example\nhttps://hound.example/roadmap",
		AnalyzedAt:         analyzedAt,
	}
}

// =============================================================================
// Test: EnsureContract / GetContract
// =============================================================================

func testEnsureContract(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("creates the row and is idempotent", func(t *testing.T) {
		address := "0x1111111111111111111111111111111111111111"

		err := store.EnsureContract(ctx, address, domain.ChainEthereum)
		require.NoError(t, err)

		contract, err := store.GetContract(ctx, address, domain.ChainEthereum)
		require.NoError(t, err)
		require.NotNil(t, contract)
		assert.Equal(t, address, contract.Address)
		assert.Equal(t, string(domain.ChainEthereum), contract.Chain)
		assert.Nil(t, contract.Name)
		assert.Nil(t, contract.LastVerified)
		assert.False(t, contract.CreatedAt.IsZero())

		// Second call must not fail or reset the existing row
		err = store.EnsureContract(ctx, address, domain.ChainEthereum)
		require.NoError(t, err)

		again, err := store.GetContract(ctx, address, domain.ChainEthereum)
		require.NoError(t, err)
		require.NotNil(t, again)
		assert.Equal(t, contract.CreatedAt.UTC(), again.CreatedAt.UTC())
	})

	t.Run("same address on another chain is a separate row", func(t *testing.T) {
		address := "0x2222222222222222222222222222222222222222"

		require.NoError(t, store.EnsureContract(ctx, address, domain.ChainEthereum))
		require.NoError(t, store.EnsureContract(ctx, address, domain.ChainBase))

		onBase, err := store.GetContract(ctx, address, domain.ChainBase)
		require.NoError(t, err)
		require.NotNil(t, onBase)
		assert.Equal(t, string(domain.ChainBase), onBase.Chain)
	})
}

func testGetContract(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("returns nil without error when the row does not exist", func(t *testing.T) {
		contract, err := store.GetContract(ctx, "0x3333333333333333333333333333333333333333", domain.ChainEthereum)
		require.NoError(t, err)
		assert.Nil(t, contract)
	})
}

// =============================================================================
// Test: MarkContractVerified
// =============================================================================

func testMarkContractVerified(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("records metadata and verification time on the contract row", func(t *testing.T) {
		address := "0x4444444444444444444444444444444444444444"
		require.NoError(t, store.EnsureContract(ctx, address, domain.ChainEthereum))

		verification := buildTestVerification("Hound")
		verifiedAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		err := store.MarkContractVerified(ctx, address, domain.ChainEthereum, verification, verifiedAt)
		require.NoError(t, err)

		contract, err := store.GetContract(ctx, address, domain.ChainEthereum)
		require.NoError(t, err)
		require.NotNil(t, contract)
		require.NotNil(t, contract.Name)
		assert.Equal(t, "Hound", *contract.Name)
		assert.Equal(t, "v0.8.24+commit.e11b9ed9", contract.CompilerVersion)
		assert.True(t, contract.OptimizationUsed)
		assert.Equal(t, "200", contract.Runs)
		assert.Equal(t, "MIT", contract.LicenseType)
		assert.True(t, contract.Proxy)
		require.NotNil(t, contract.Implementation)
		assert.Equal(t, *verification.Implementation, *contract.Implementation)
		require.NotNil(t, contract.LastVerified)
		assert.True(t, contract.LastVerified.Equal(verifiedAt))
	})

	t.Run("nil name keeps the existing name", func(t *testing.T) {
		address := "0x5555555555555555555555555555555555555555"
		require.NoError(t, store.EnsureContract(ctx, address, domain.ChainEthereum))

		first := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		require.NoError(t, store.MarkContractVerified(ctx, address, domain.ChainEthereum, buildTestVerification("Hound"), first))

		second := first.Add(24 * time.Hour)
		require.NoError(t, store.MarkContractVerified(ctx, address, domain.ChainEthereum, ContractVerification{}, second))

		contract, err := store.GetContract(ctx, address, domain.ChainEthereum)
		require.NoError(t, err)
		require.NotNil(t, contract)
		require.NotNil(t, contract.Name)
		assert.Equal(t, "Hound", *contract.Name)
		require.NotNil(t, contract.LastVerified)
		assert.True(t, contract.LastVerified.Equal(second))
	})

	t.Run("returns ErrContractNotFound for a missing row", func(t *testing.T) {
		err := store.MarkContractVerified(ctx, "0x6666666666666666666666666666666666666666", domain.ChainEthereum, ContractVerification{}, time.Now().UTC())
		require.ErrorIs(t, err, domain.ErrContractNotFound)
	})
}

// =============================================================================
// Test: SaveSourceCode / GetSourceCode
// =============================================================================

func testSourceCode(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("round-trips a snapshot", func(t *testing.T) {
		address := "0x7777777777777777777777777777777777777777"
		record := buildTestSourceCode(address, domain.ChainEthereum)

		err := store.SaveSourceCode(ctx, record)
		require.NoError(t, err)

		got, err := store.GetSourceCode(ctx, address, domain.ChainEthereum)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, record.SourceCode, got.SourceCode)
		assert.Equal(t, record.ConstructorArguments, got.ConstructorArguments)
		assert.Equal(t, "cancun", got.EVMVersion)
	})

	t.Run("saving again replaces the snapshot", func(t *testing.T) {
		address := "0x8888888888888888888888888888888888888888"
		record := buildTestSourceCode(address, domain.ChainEthereum)
		require.NoError(t, store.SaveSourceCode(ctx, record))

		updated := buildTestSourceCode(address, domain.ChainEthereum)
		updated.SourceCode = "contract HoundV2 {}"
		updated.ConstructorArguments = ""
		require.NoError(t, store.SaveSourceCode(ctx, updated))

		got, err := store.GetSourceCode(ctx, address, domain.ChainEthereum)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "contract HoundV2 {}", got.SourceCode)
		assert.Equal(t, "", got.ConstructorArguments)
	})

	t.Run("returns nil without error when no snapshot exists", func(t *testing.T) {
		got, err := store.GetSourceCode(ctx, "0x9999999999999999999999999999999999999990", domain.ChainEthereum)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// Test: SaveABI / GetABI
// =============================================================================

func testABI(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("round-trips and replaces a snapshot", func(t *testing.T) {
		address := "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
		record := &schema.ContractABI{
			Address: address,
			Chain:   string(domain.ChainEthereum),
			ABI:     `[{"type":"function","name":"totalSupply"}]`,
		}

		require.NoError(t, store.SaveABI(ctx, record))

		got, err := store.GetABI(ctx, address, domain.ChainEthereum)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, record.ABI, got.ABI)

		record.ABI = `[{"type":"function","name":"maxSupply"}]`
		require.NoError(t, store.SaveABI(ctx, record))

		got, err = store.GetABI(ctx, address, domain.ChainEthereum)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, `[{"type":"function","name":"maxSupply"}]`, got.ABI)
	})

	t.Run("returns nil without error when no snapshot exists", func(t *testing.T) {
		got, err := store.GetABI(ctx, "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", domain.ChainEthereum)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// Test: SaveWebsiteAnalysis / GetWebsiteAnalysis
// =============================================================================

func testWebsiteAnalysis(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("round-trips a cached summary", func(t *testing.T) {
		address := "0xcccccccccccccccccccccccccccccccccccccccc"
		analyzedAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		record := buildTestWebsiteAnalysis(address, domain.ChainEthereum, analyzedAt)

		require.NoError(t, store.SaveWebsiteAnalysis(ctx, record))

		got, err := store.GetWebsiteAnalysis(ctx, address, domain.ChainEthereum)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, record.WebsiteURL, got.WebsiteURL)
		assert.Equal(t, record.ProjectDescription, got.ProjectDescription)
		require.NotNil(t, got.Roadmap)
		assert.Equal(t, *record.Roadmap, *got.Roadmap)
		assert.Equal(t, record.ServicesAnalysis, got.ServicesAnalysis)
		assert.Equal(t, record.Confidence, got.Confidence)
		assert.Equal(t, record.RawContent, got.RawContent)
		assert.Equal(t, record.SourceURLs, got.SourceURLs)
		assert.True(t, got.AnalyzedAt.Equal(analyzedAt))
	})

	t.Run("re-analysis replaces the cached summary in place", func(t *testing.T) {
		address := "0xdddddddddddddddddddddddddddddddddddddddd"
		first := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		require.NoError(t, store.SaveWebsiteAnalysis(ctx, buildTestWebsiteAnalysis(address, domain.ChainEthereum, first)))

		updated := buildTestWebsiteAnalysis(address, domain.ChainEthereum, first.Add(48*time.Hour))
		updated.ProjectDescription = "Rebranded to 10000 hounds."
		updated.Roadmap = nil
		updated.Confidence = string(domain.ConfidenceLow)
		updated.SourceURLs = "https://hound.example"
		require.NoError(t, store.SaveWebsiteAnalysis(ctx, updated))

		got, err := store.GetWebsiteAnalysis(ctx, address, domain.ChainEthereum)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Rebranded to 10000 hounds.", got.ProjectDescription)
		assert.Equal(t, string(domain.ConfidenceLow), got.Confidence)
		assert.Equal(t, "https://hound.example", got.SourceURLs)
		assert.True(t, got.AnalyzedAt.Equal(first.Add(48*time.Hour)))
	})

	t.Run("same address on another chain is cached independently", func(t *testing.T) {
		address := "0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"
		analyzedAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		require.NoError(t, store.SaveWebsiteAnalysis(ctx, buildTestWebsiteAnalysis(address, domain.ChainEthereum, analyzedAt)))

		onBase, err := store.GetWebsiteAnalysis(ctx, address, domain.ChainBase)
		require.NoError(t, err)
		assert.Nil(t, onBase)
	})

	t.Run("returns nil without error when nothing is cached", func(t *testing.T) {
		got, err := store.GetWebsiteAnalysis(ctx, "0xffffffffffffffffffffffffffffffffffffff00", domain.ChainEthereum)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// RunStoreTests runs the full store suite against an implementation. Each test
// gets a fresh store from initDB and cleanupDB runs afterwards.
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"EnsureContract", testEnsureContract},
		{"GetContract", testGetContract},
		{"MarkContractVerified", testMarkContractVerified},
		{"SourceCode", testSourceCode},
		{"ABI", testABI},
		{"WebsiteAnalysis", testWebsiteAnalysis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
