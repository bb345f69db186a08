package access

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Doner357/TacoPKM-CLI/internal/model"
)

type fakeChecker struct {
	access  bool
	licensed bool
	err     error
}

func (f fakeChecker) HasAccess(ctx context.Context, name model.LibraryName, user common.Address) (bool, error) {
	return f.access, f.err
}
func (f fakeChecker) HasUserLicense(ctx context.Context, name model.LibraryName, user common.Address) (bool, error) {
	return f.licensed, f.err
}

var owner = common.HexToAddress("0x1111111111111111111111111111111111111111")
var other = common.HexToAddress("0x2222222222222222222222222222222222222222")

func baseLib() model.LibraryRecord {
	return model.LibraryRecord{Name: "lib", Owner: owner, LicenseFee: big.NewInt(0)}
}

func TestDecideNoWallet(t *testing.T) {
	s, err := Decide(context.Background(), fakeChecker{}, baseLib(), Caller{})
	require.NoError(t, err)
	assert.Equal(t, StateNoWallet, s)
}

func TestDecideOwner(t *testing.T) {
	s, err := Decide(context.Background(), fakeChecker{}, baseLib(), Caller{Address: owner, Known: true})
	require.NoError(t, err)
	assert.Equal(t, StateOwner, s)
}

func TestDecidePrivateUnauthorized(t *testing.T) {
	lib := baseLib()
	lib.IsPrivate = true
	s, err := Decide(context.Background(), fakeChecker{access: false}, lib, Caller{Address: other, Known: true})
	require.NoError(t, err)
	assert.Equal(t, StatePrivateUnauthorized, s)
}

func TestDecidePublicLicensedUnowned(t *testing.T) {
	lib := baseLib()
	lib.LicenseRequired = true
	s, err := Decide(context.Background(), fakeChecker{access: false}, lib, Caller{Address: other, Known: true})
	require.NoError(t, err)
	assert.Equal(t, StatePublicLicensedUnowned, s)
}

func TestDecidePublicLicensedOwned(t *testing.T) {
	lib := baseLib()
	lib.LicenseRequired = true
	s, err := Decide(context.Background(), fakeChecker{access: true, licensed: true}, lib, Caller{Address: other, Known: true})
	require.NoError(t, err)
	assert.Equal(t, StatePublicLicensedOwned, s)
}

func TestDecidePrivateAuthorized(t *testing.T) {
	lib := baseLib()
	lib.IsPrivate = true
	s, err := Decide(context.Background(), fakeChecker{access: true, licensed: false}, lib, Caller{Address: other, Known: true})
	require.NoError(t, err)
	assert.Equal(t, StatePrivateAuthorized, s)
}

func TestDecidePublicOpen(t *testing.T) {
	lib := baseLib()
	s, err := Decide(context.Background(), fakeChecker{access: true, licensed: false}, lib, Caller{Address: other, Known: true})
	require.NoError(t, err)
	assert.Equal(t, StatePublicOpen, s)
}

func TestVisibleWithoutWallet(t *testing.T) {
	lib := baseLib()
	assert.True(t, VisibleWithoutWallet(lib))
	lib.IsPrivate = true
	assert.False(t, VisibleWithoutWallet(lib))
}
