package ethereum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houndmaster/houndmaster/internal/adapter"
	"github.com/houndmaster/houndmaster/internal/domain"
)

func viewFn(name string) string {
	return `{"type":"function","stateMutability":"view","name":"` + name + `","inputs":[],"outputs":[{"name":"","type":"uint256"}]}`
}

func TestFindSupplyFunction_PrefersTotalSupply(t *testing.T) {
	abiJSON := `[` + viewFn("maxSupply") + `,` + viewFn("totalSupply") + `,` + viewFn("supply") + `]`

	name, err := findSupplyFunction(adapter.NewJSON(), abiJSON)

	require.NoError(t, err)
	assert.Equal(t, "totalSupply", name)
}

func TestFindSupplyFunction_PriorityOrder(t *testing.T) {
	tests := []struct {
		name      string
		functions []string
		want      string
	}{
		{"maxSupply over supply", []string{"supply", "maxSupply"}, "maxSupply"},
		{"_maxSupply over supply", []string{"supply", "_maxSupply"}, "_maxSupply"},
		{"supply alone", []string{"supply"}, "supply"},
		{"_totalSupply falls through to any match", []string{"_totalSupply"}, "_totalSupply"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := make([]string, 0, len(tt.functions))
			for _, fn := range tt.functions {
				parts = append(parts, viewFn(fn))
			}
			abiJSON := "[" + parts[0]
			for _, p := range parts[1:] {
				abiJSON += "," + p
			}
			abiJSON += "]"

			name, err := findSupplyFunction(adapter.NewJSON(), abiJSON)
			require.NoError(t, err)
			assert.Equal(t, tt.want, name)
		})
	}
}

func TestFindSupplyFunction_RejectsNonCandidates(t *testing.T) {
	tests := []struct {
		name    string
		abiJSON string
	}{
		{
			"takes inputs",
			`[{"type":"function","stateMutability":"view","name":"totalSupply","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]}]`,
		},
		{
			"wrong output type",
			`[{"type":"function","stateMutability":"view","name":"totalSupply","inputs":[],"outputs":[{"name":"","type":"string"}]}]`,
		},
		{
			"state changing",
			`[{"type":"function","stateMutability":"nonpayable","name":"totalSupply","inputs":[],"outputs":[{"name":"","type":"uint256"}]}]`,
		},
		{
			"unrelated name",
			`[` + viewFn("balanceOfAll") + `]`,
		},
		{
			"event not function",
			`[{"type":"event","name":"totalSupply","inputs":[]}]`,
		},
		{
			"empty abi",
			`[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := findSupplyFunction(adapter.NewJSON(), tt.abiJSON)
			assert.ErrorIs(t, err, domain.ErrNoSupplyFunction)
			assert.Empty(t, name)
		})
	}
}

func TestFindSupplyFunction_AcceptsPure(t *testing.T) {
	abiJSON := `[{"type":"function","stateMutability":"pure","name":"maxSupply","inputs":[],"outputs":[{"name":"","type":"uint256"}]}]`

	name, err := findSupplyFunction(adapter.NewJSON(), abiJSON)

	require.NoError(t, err)
	assert.Equal(t, "maxSupply", name)
}

func TestFindSupplyFunction_MalformedABI(t *testing.T) {
	name, err := findSupplyFunction(adapter.NewJSON(), "not an abi")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoSupplyFunction)
	assert.Empty(t, name)
}
