package shared

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// TinybarsPerHbar is the number of tinybars in one hbar.
const TinybarsPerHbar = 100_000_000

// HbarToTinybars converts a display-unit hbar amount to tinybars, rounding
// toward zero. The amount must be finite.
func HbarToTinybars(hbar float64) (int64, error) {
	rat := new(big.Rat)
	if _, ok := rat.SetString(formatFloat(hbar)); !ok {
		return 0, fmt.Errorf("invalid hbar amount %v", hbar)
	}
	rat.Mul(rat, big.NewRat(TinybarsPerHbar, 1))

	quo := new(big.Int).Quo(rat.Num(), rat.Denom())
	if !quo.IsInt64() {
		return 0, fmt.Errorf("hbar amount %v overflows tinybars", hbar)
	}
	return quo.Int64(), nil
}

// TinybarsToHbar converts a tinybar amount to display-unit hbar.
func TinybarsToHbar(tinybars int64) float64 {
	return float64(tinybars) / TinybarsPerHbar
}

// ToBaseUnits converts a display-unit token amount to base units using the
// token's decimals, rounding toward zero.
func ToBaseUnits(amount float64, decimals uint32) (*big.Int, error) {
	rat := new(big.Rat)
	if _, ok := rat.SetString(formatFloat(amount)); !ok {
		return nil, fmt.Errorf("invalid token amount %v", amount)
	}

	factor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	rat.Mul(rat, new(big.Rat).SetInt(factor))

	return new(big.Int).Quo(rat.Num(), rat.Denom()), nil
}

// ToDisplayUnits converts a base-unit token amount back to a display string
// with trailing zeros trimmed.
func ToDisplayUnits(base *big.Int, decimals uint32) string {
	if base == nil {
		return "0"
	}

	factor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	rat := new(big.Rat).SetFrac(base, factor)

	display := rat.FloatString(int(decimals))
	if !strings.Contains(display, ".") {
		return display
	}
	display = strings.TrimRight(display, "0")
	return strings.TrimSuffix(display, ".")
}

// formatFloat renders the shortest decimal string that round-trips the
// value, so high-decimals tokens keep sub-1e-12 amounts intact. NaN and
// infinities render as non-numeric strings the big.Rat parse rejects.
func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
