// Package license implements the fee parsing and pre-flight checks for
// setLibraryLicense and purchaseLibraryLicense.
package license

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"

	"github.com/Doner357/TacoPKM-CLI/internal/xerrors"
)

// ParseFee parses a "<amount> <unit>" string where unit is one of
// eth/ether/gwei/wei (case-insensitive); "0", "0 eth", and "none" all map
// to zero wei.
func ParseFee(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") || s == "0" {
		return big.NewInt(0), nil
	}

	fields := strings.Fields(s)
	if len(fields) == 1 {
		// A bare number with no unit is assumed to already be wei.
		fields = append(fields, "wei")
	}
	if len(fields) != 2 {
		return nil, xerrors.Newf(xerrors.KindValidation, "invalid fee %q: expected \"<amount> <unit>\"", s)
	}

	amount, ok := new(big.Float).SetString(fields[0])
	if !ok {
		return nil, xerrors.Newf(xerrors.KindValidation, "invalid fee amount %q", fields[0])
	}

	var multiplier *big.Float
	switch strings.ToLower(fields[1]) {
	case "eth", "ether":
		multiplier = new(big.Float).SetInt(big.NewInt(params.Ether))
	case "gwei":
		multiplier = new(big.Float).SetInt(big.NewInt(params.GWei))
	case "wei":
		multiplier = big.NewFloat(1)
	default:
		return nil, xerrors.Newf(xerrors.KindValidation, "invalid fee unit %q: want eth, ether, gwei, or wei", fields[1])
	}

	wei := new(big.Float).Mul(amount, multiplier)
	result, _ := wei.Int(nil)
	if result.Sign() < 0 {
		return nil, xerrors.Newf(xerrors.KindValidation, "fee %q must not be negative", s)
	}
	return result, nil
}

// FormatWei renders a wei amount as "<eth> eth" for human-facing messages.
func FormatWei(wei *big.Int) string {
	f := new(big.Float).SetInt(wei)
	f.Quo(f, new(big.Float).SetInt(big.NewInt(params.Ether)))
	return fmt.Sprintf("%s eth", f.Text('f', -1))
}

// ParseAmountFlag is a convenience for the --amount flag on
// purchase-license, which accepts the same "<amount> <unit>" grammar; an
// empty value returns nil, meaning "unset".
func ParseAmountFlag(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	return ParseFee(s)
}
