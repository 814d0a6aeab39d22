package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houndmaster/houndmaster/internal/domain"
)

func TestIsValidChain(t *testing.T) {
	for _, chain := range domain.SupportedChains {
		assert.True(t, domain.IsValidChain(chain), "chain %s should be valid", chain)
	}

	assert.False(t, domain.IsValidChain(domain.Chain("solana")))
	assert.False(t, domain.IsValidChain(domain.Chain("")))
	assert.False(t, domain.IsValidChain(domain.Chain("Ethereum")))
}

func TestSupportedChainNames(t *testing.T) {
	names := domain.SupportedChainNames()

	assert.Len(t, names, len(domain.SupportedChains))
	assert.Contains(t, names, "ethereum")
	assert.Contains(t, names, "apechain")
}

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"lowercase", "0x1234567890abcdef1234567890abcdef12345678", true},
		{"checksummed", "0x5AAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", true},
		{"missing 0x prefix", "1234567890abcdef1234567890abcdef12345678", false},
		{"too short", "0x1234", false},
		{"too long", "0x1234567890abcdef1234567890abcdef123456789a", false},
		{"non-hex characters", "0x1234567890abcdef1234567890abcdef1234567g", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsValidAddress(tt.address))
		})
	}
}

func TestIsValidConfidence(t *testing.T) {
	assert.True(t, domain.IsValidConfidence(domain.ConfidenceHigh))
	assert.True(t, domain.IsValidConfidence(domain.ConfidenceMedium))
	assert.True(t, domain.IsValidConfidence(domain.ConfidenceLow))
	assert.False(t, domain.IsValidConfidence(domain.Confidence("very high")))
	assert.False(t, domain.IsValidConfidence(domain.Confidence("")))
}

func TestDeployedAtTime(t *testing.T) {
	t.Run("valid timestamp", func(t *testing.T) {
		c := domain.Collection{ContractDeployedAt: "2025-05-01T10:30:00Z"}

		deployedAt, ok := c.DeployedAtTime()

		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC), deployedAt)
	})

	t.Run("missing timestamp", func(t *testing.T) {
		c := domain.Collection{}

		deployedAt, ok := c.DeployedAtTime()

		assert.False(t, ok)
		assert.True(t, deployedAt.IsZero())
	})

	t.Run("unparseable timestamp", func(t *testing.T) {
		c := domain.Collection{ContractDeployedAt: "May 1st 2025"}

		_, ok := c.DeployedAtTime()

		assert.False(t, ok)
	})
}

func TestTotalMintValue(t *testing.T) {
	t.Run("sums across stages", func(t *testing.T) {
		c := domain.Collection{
			MintStages: []domain.MintStage{
				{Stage: "allowlist", Price: "0.01", Supply: "1000"},
				{Stage: "public", Price: "0.02", Supply: "4000"},
			},
		}

		assert.InDelta(t, 90.0, c.TotalMintValue(), 1e-9)
	})

	t.Run("no stages", func(t *testing.T) {
		c := domain.Collection{}

		assert.Zero(t, c.TotalMintValue())
	})

	t.Run("unparseable stage contributes nothing", func(t *testing.T) {
		c := domain.Collection{
			MintStages: []domain.MintStage{
				{Stage: "public", Price: "free", Supply: "1000"},
				{Stage: "vip", Price: "1", Supply: "5"},
			},
		}

		assert.InDelta(t, 5.0, c.TotalMintValue(), 1e-9)
	})
}

func TestCollectionSummary(t *testing.T) {
	t.Run("flattens market stats and socials", func(t *testing.T) {
		floor := &domain.Price{}
		floor.Amount.Native = 0.04
		floor.Currency.Symbol = "ETH"

		c := domain.Collection{
			Name:               "Hounds",
			ContractDeployedAt: "2025-05-01T10:30:00Z",
			PrimaryContract:    "0xabc",
			ExternalURL:        "https://hound.example",
			TwitterUsername:    "houndpack",
			DiscordURL:         "https://discord.gg/hounds",
			TokenCount:         "1200",
			Supply:             "1500",
			RemainingSupply:    "300",
			Volume:             &domain.Volume{Day7: 2.5, AllTime: 40},
			FloorAsk:           &domain.FloorAsk{Price: floor},
			MintStages: []domain.MintStage{
				{Stage: "public", Price: "0.05", Supply: "1000"},
			},
		}

		s := c.Summary()

		assert.Equal(t, "Hounds", s.Name)
		assert.InDelta(t, 50.0, s.MintValue, 1e-9)
		assert.InDelta(t, 2.5, s.WeeklyVolume, 1e-9)
		require.NotNil(t, s.FloorPrice)
		assert.InDelta(t, 0.04, s.FloorPrice.Amount.Native, 1e-9)
		assert.Equal(t, "2025-05-01T10:30:00Z", s.DeployedAt)
		assert.Equal(t, "0xabc", s.PrimaryContract)
		assert.Equal(t, "houndpack", s.TwitterUsername)
		assert.Equal(t, "https://discord.gg/hounds", s.DiscordURL)
		assert.Equal(t, "1500", s.TotalSupply)
		assert.Equal(t, "300", s.RemainingSupply)
	})

	t.Run("missing market stats default to zero values", func(t *testing.T) {
		c := domain.Collection{Name: "Bare"}

		s := c.Summary()

		assert.Zero(t, s.MintValue)
		assert.Zero(t, s.WeeklyVolume)
		assert.Nil(t, s.FloorPrice)
	})
}
