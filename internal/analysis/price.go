package analysis

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// priceRe accepts a decimal number with an optional unit suffix. Anything
// else, such as a variable name or a sentence, is rejected.
var priceRe = regexp.MustCompile(`(?i)^\s*([0-9]+(?:\.[0-9]+)?)\s*(wei|gwei|eth|ether|matic|pol|ape)?\s*$`)

const nativeDecimals = 18

// parsePriceToWei converts a model-reported price string into wei. Prices
// without a unit are assumed to be denominated in the chain's native token.
func parsePriceToWei(price string) (*big.Int, error) {
	m := priceRe.FindStringSubmatch(price)
	if m == nil {
		return nil, fmt.Errorf("unparseable price %q", price)
	}

	number := m[1]
	unit := strings.ToLower(m[2])

	switch unit {
	case "wei":
		if strings.Contains(number, ".") {
			return nil, fmt.Errorf("fractional wei price %q", price)
		}
		wei, ok := new(big.Int).SetString(number, 10)
		if !ok {
			return nil, fmt.Errorf("unparseable price %q", price)
		}
		return wei, nil
	case "gwei":
		return scaleDecimal(number, 9)
	default:
		return scaleDecimal(number, nativeDecimals)
	}
}

// scaleDecimal multiplies a decimal string by 10^decimals without going
// through floating point
func scaleDecimal(number string, decimals int) (*big.Int, error) {
	whole, frac, _ := strings.Cut(number, ".")
	if len(frac) > decimals {
		return nil, fmt.Errorf("price %q has more than %d decimal places", number, decimals)
	}
	frac += strings.Repeat("0", decimals-len(frac))

	wei, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, fmt.Errorf("unparseable price %q", number)
	}
	return wei, nil
}
