// Package format renders addresses and token amounts for display.
package format

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"oracle-sdk/pkg/apperrors"
)

// IsAddress reports whether s is a 20-byte hex address, with or without 0x.
func IsAddress(s string) bool {
	return common.IsHexAddress(s)
}

// Checksum returns the EIP-55 form of a hex address.
func Checksum(s string) (string, error) {
	if !common.IsHexAddress(s) {
		return "", fmt.Errorf("%w: %q is not a hex address", apperrors.ErrInvalidInput, s)
	}
	return common.HexToAddress(s).Hex(), nil
}

// ShortAddress abbreviates a checksummed address to its first lead hex digits
// and last tail hex digits, e.g. "0x1234…abcd". Non-positive counts default to 4.
func ShortAddress(s string, lead, tail int) (string, error) {
	full, err := Checksum(s)
	if err != nil {
		return "", err
	}
	if lead <= 0 {
		lead = 4
	}
	if tail <= 0 {
		tail = 4
	}

	digits := full[2:]
	if lead+tail >= len(digits) {
		return full, nil
	}
	return "0x" + digits[:lead] + "…" + digits[len(digits)-tail:], nil
}

// FormatUnits renders an integer amount of base units as a decimal string
// with the given number of decimals, dropping trailing zeros.
func FormatUnits(amount *big.Int, decimals int32) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -decimals).String()
}

// ParseUnits converts a decimal string into base units. Amounts with more
// fractional digits than decimals are rejected.
func ParseUnits(s string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a decimal amount: %v", apperrors.ErrInvalidInput, s, err)
	}

	shifted := d.Shift(decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, fmt.Errorf("%w: %q has more than %d decimals", apperrors.ErrInvalidInput, s, decimals)
	}
	return shifted.BigInt(), nil
}
