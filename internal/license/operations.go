package license

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Doner357/TacoPKM-CLI/internal/model"
	"github.com/Doner357/TacoPKM-CLI/internal/xerrors"
)

// CheckSetLicense runs the pre-flight checks for setLibraryLicense, before
// any transaction is submitted. warning is
// non-empty when fee > 0 and required is false — a suspicious but legal
// combination the caller's UI should surface.
func CheckSetLicense(lib model.LibraryRecord, caller common.Address, fee *big.Int, required bool) (warning string, err error) {
	if caller != lib.Owner {
		return "", xerrors.New(xerrors.KindPermission, "only the library owner may change its license terms")
	}
	if lib.IsPrivate && required {
		return "", xerrors.New(xerrors.KindPolicy, "a private library cannot also require a license")
	}
	if fee.Sign() > 0 && !required {
		warning = "a non-zero fee was set but license is not required; the fee will never be collected"
	}
	return warning, nil
}

// CheckPurchaseLicense runs the pre-flight checks for purchaseLibraryLicense.
func CheckPurchaseLicense(lib model.LibraryRecord, caller common.Address, alreadyLicensed bool) error {
	if caller == lib.Owner {
		return xerrors.New(xerrors.KindPermission, "the owner does not need a license for their own library")
	}
	if lib.IsPrivate {
		return xerrors.New(xerrors.KindPolicy, "private libraries are not licensed; ask the owner for authorization instead")
	}
	if !lib.LicenseRequired {
		return xerrors.New(xerrors.KindPolicy, "this library does not require a license")
	}
	if alreadyLicensed {
		return xerrors.New(xerrors.KindConflict, "the caller already holds a license for this library")
	}
	return nil
}

// ResolvePurchaseAmount implements "if amount is unspecified, send exactly
// the on-chain fee; reject amount < fee; warn on overpayment".
func ResolvePurchaseAmount(fee *big.Int, requested *big.Int) (amount *big.Int, warning string, err error) {
	if requested == nil {
		return new(big.Int).Set(fee), "", nil
	}
	if requested.Cmp(fee) < 0 {
		return nil, "", xerrors.Newf(xerrors.KindFunds, "amount %s is less than the required license fee %s", FormatWei(requested), FormatWei(fee))
	}
	if requested.Cmp(fee) > 0 {
		warning = "amount exceeds the license fee; the contract is responsible for any refund"
	}
	return requested, warning, nil
}
