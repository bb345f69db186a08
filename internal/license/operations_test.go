package license

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Doner357/TacoPKM-CLI/internal/model"
	"github.com/Doner357/TacoPKM-CLI/internal/xerrors"
)

var owner = common.HexToAddress("0x1111111111111111111111111111111111111111")
var other = common.HexToAddress("0x2222222222222222222222222222222222222222")

func TestCheckSetLicenseRejectsNonOwner(t *testing.T) {
	lib := model.LibraryRecord{Owner: owner}
	_, err := CheckSetLicense(lib, other, big.NewInt(0), true)
	require.Error(t, err)
	var xerr *xerrors.Error
	require.True(t, xerrors.As(err, &xerr))
	assert.Equal(t, xerrors.KindPermission, xerr.Kind)
}

func TestCheckSetLicenseRejectsPrivateRequired(t *testing.T) {
	lib := model.LibraryRecord{Owner: owner, IsPrivate: true}
	_, err := CheckSetLicense(lib, owner, big.NewInt(0), true)
	require.Error(t, err)
	var xerr *xerrors.Error
	require.True(t, xerrors.As(err, &xerr))
	assert.Equal(t, xerrors.KindPolicy, xerr.Kind)
}

func TestCheckSetLicenseWarnsFeeWithoutRequired(t *testing.T) {
	lib := model.LibraryRecord{Owner: owner}
	warning, err := CheckSetLicense(lib, owner, big.NewInt(1), false)
	require.NoError(t, err)
	assert.NotEmpty(t, warning)
}

func TestCheckSetLicenseOK(t *testing.T) {
	lib := model.LibraryRecord{Owner: owner}
	warning, err := CheckSetLicense(lib, owner, big.NewInt(1), true)
	require.NoError(t, err)
	assert.Empty(t, warning)
}

func TestCheckPurchaseLicenseRejectsOwner(t *testing.T) {
	lib := model.LibraryRecord{Owner: owner, LicenseRequired: true}
	err := CheckPurchaseLicense(lib, owner, false)
	require.Error(t, err)
	var xerr *xerrors.Error
	require.True(t, xerrors.As(err, &xerr))
	assert.Equal(t, xerrors.KindPermission, xerr.Kind)
}

func TestCheckPurchaseLicenseRejectsPrivate(t *testing.T) {
	lib := model.LibraryRecord{Owner: owner, IsPrivate: true}
	err := CheckPurchaseLicense(lib, other, false)
	require.Error(t, err)
	var xerr *xerrors.Error
	require.True(t, xerrors.As(err, &xerr))
	assert.Equal(t, xerrors.KindPolicy, xerr.Kind)
}

func TestCheckPurchaseLicenseRejectsNotRequired(t *testing.T) {
	lib := model.LibraryRecord{Owner: owner}
	err := CheckPurchaseLicense(lib, other, false)
	require.Error(t, err)
	var xerr *xerrors.Error
	require.True(t, xerrors.As(err, &xerr))
	assert.Equal(t, xerrors.KindPolicy, xerr.Kind)
}

func TestCheckPurchaseLicenseRejectsAlreadyLicensed(t *testing.T) {
	lib := model.LibraryRecord{Owner: owner, LicenseRequired: true}
	err := CheckPurchaseLicense(lib, other, true)
	require.Error(t, err)
	var xerr *xerrors.Error
	require.True(t, xerrors.As(err, &xerr))
	assert.Equal(t, xerrors.KindConflict, xerr.Kind)
}

func TestCheckPurchaseLicenseOK(t *testing.T) {
	lib := model.LibraryRecord{Owner: owner, LicenseRequired: true}
	require.NoError(t, CheckPurchaseLicense(lib, other, false))
}

// TestResolvePurchaseAmountDefaultsToFee verifies that with licenseFee =
// 0.01 eth and no --amount given, the caller submits exactly the on-chain
// fee.
func TestResolvePurchaseAmountDefaultsToFee(t *testing.T) {
	fee, err := ParseFee("0.01 eth")
	require.NoError(t, err)

	amount, warning, err := ResolvePurchaseAmount(fee, nil)
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, 0, fee.Cmp(amount))
}

func TestResolvePurchaseAmountRejectsUnderpay(t *testing.T) {
	fee := big.NewInt(100)
	_, _, err := ResolvePurchaseAmount(fee, big.NewInt(99))
	require.Error(t, err)
	var xerr *xerrors.Error
	require.True(t, xerrors.As(err, &xerr))
	assert.Equal(t, xerrors.KindFunds, xerr.Kind)
}

func TestResolvePurchaseAmountWarnsOverpay(t *testing.T) {
	fee := big.NewInt(100)
	amount, warning, err := ResolvePurchaseAmount(fee, big.NewInt(200))
	require.NoError(t, err)
	assert.NotEmpty(t, warning)
	assert.Equal(t, 0, big.NewInt(200).Cmp(amount))
}

func TestResolvePurchaseAmountExact(t *testing.T) {
	fee := big.NewInt(100)
	amount, warning, err := ResolvePurchaseAmount(fee, big.NewInt(100))
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, 0, fee.Cmp(amount))
}
