package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToWei_NativeUnits(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  string
	}{
		{"bare number", "0.01", "10000000000000000"},
		{"eth suffix", "0.01 ETH", "10000000000000000"},
		{"ether suffix", "1 ether", "1000000000000000000"},
		{"matic suffix", "2.5 MATIC", "2500000000000000000"},
		{"pol suffix", "0.5 pol", "500000000000000000"},
		{"ape suffix", "10 APE", "10000000000000000000"},
		{"whole number", "3", "3000000000000000000"},
		{"surrounding whitespace", "  0.05 eth  ", "50000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wei, err := parsePriceToWei(tt.price)
			require.NoError(t, err)
			assert.Equal(t, tt.want, wei.String())
		})
	}
}

func TestParsePriceToWei_Wei(t *testing.T) {
	wei, err := parsePriceToWei("10000000000000000 wei")
	require.NoError(t, err)
	assert.Equal(t, "10000000000000000", wei.String())
}

func TestParsePriceToWei_Gwei(t *testing.T) {
	wei, err := parsePriceToWei("1.5 gwei")
	require.NoError(t, err)
	assert.Equal(t, "1500000000", wei.String())
}

func TestParsePriceToWei_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		price string
	}{
		{"variable name", "mintPrice"},
		{"sentence", "the price is 0.01 ETH"},
		{"negative", "-1"},
		{"empty", ""},
		{"fractional wei", "1.5 wei"},
		{"too many decimals", "0.0000000000000000001"},
		{"unknown unit", "5 doge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wei, err := parsePriceToWei(tt.price)
			assert.Error(t, err)
			assert.Nil(t, wei)
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"whitespace around fence", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"inner backticks preserved", "```json\n{\"a\":\"`x`\"}\n```", "{\"a\":\"`x`\"}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.in))
		})
	}
}

func TestStripEmphasis(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "a **bold** claim", "a bold claim"},
		{"italic", "an *italic* aside", "an italic aside"},
		{"mixed", "**Phase 1**: launch, *then* more", "Phase 1: launch, then more"},
		{"plain text untouched", "nothing to strip", "nothing to strip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripEmphasis(tt.in))
		})
	}
}
