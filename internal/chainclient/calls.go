package chainclient

import (
	"context"
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/Doner357/TacoPKM-CLI/internal/model"
	"github.com/Doner357/TacoPKM-CLI/internal/xerrors"
)

// Balance returns addr's ETH balance on the connected network, for
// `wallet balance`.
func (c *Client) Balance(ctx context.Context, addr common.Address) (*big.Int, error) {
	bal, err := c.ec.BalanceAt(ctx, addr, nil)
	if err != nil {
		return nil, c.translate(err)
	}
	return bal, nil
}

// Owner returns the registry contract's own owner.
func (c *Client) Owner(ctx context.Context) (common.Address, error) {
	var out []any
	if err := c.call(ctx, &out, "owner"); err != nil {
		return common.Address{}, err
	}
	return *abiArg[common.Address](out, 0), nil
}

// GetAllLibraryNames enumerates every registered library name. The result
// is potentially unbounded; callers are expected to warn on a large result
// rather than this package imposing a limit.
func (c *Client) GetAllLibraryNames(ctx context.Context) ([]model.LibraryName, error) {
	var out []any
	if err := c.call(ctx, &out, "getAllLibraryNames"); err != nil {
		return nil, err
	}
	raw := *abiArg[[]string](out, 0)
	names := make([]model.LibraryName, len(raw))
	for i, n := range raw {
		names[i] = model.LibraryName(n)
	}
	return names, nil
}

// GetLibraryInfo reads a library's record. A record that is both private
// and license-required fails LibraryRecord.Valid and is reported as
// KindBadRecord.
func (c *Client) GetLibraryInfo(ctx context.Context, name model.LibraryName) (model.LibraryRecord, error) {
	var out []any
	if err := c.call(ctx, &out, "getLibraryInfo", string(name)); err != nil {
		return model.LibraryRecord{}, err
	}
	rec := model.LibraryRecord{
		Name:            name,
		Owner:           *abiArg[common.Address](out, 0),
		Description:     *abiArg[string](out, 1),
		Tags:            *abiArg[[]string](out, 2),
		IsPrivate:       *abiArg[bool](out, 3),
		Language:        *abiArg[string](out, 4),
		LicenseFee:      *abiArg[*big.Int](out, 5),
		LicenseRequired: *abiArg[bool](out, 6),
	}
	if !rec.Valid() {
		return model.LibraryRecord{}, xerrors.Newf(xerrors.KindBadRecord, "library %s is marked both private and license-required", name)
	}
	return rec, nil
}

// GetVersionNumbers returns every published version of name, in
// contract-declared order.
func (c *Client) GetVersionNumbers(ctx context.Context, name model.LibraryName) ([]string, error) {
	var out []any
	if err := c.call(ctx, &out, "getVersionNumbers", string(name)); err != nil {
		return nil, err
	}
	return *abiArg[[]string](out, 0), nil
}

type rawDependency struct {
	Name              string
	VersionConstraint string
}

// GetVersionInfo reads one version's record.
func (c *Client) GetVersionInfo(ctx context.Context, name model.LibraryName, version string) (model.VersionRecord, error) {
	var out []any
	if err := c.call(ctx, &out, "getVersionInfo", string(name), version); err != nil {
		return model.VersionRecord{}, err
	}
	deps := *abiArg[[]rawDependency](out, 4)
	converted := make([]model.Dependency, len(deps))
	for i, d := range deps {
		converted[i] = model.Dependency{Name: model.LibraryName(d.Name), Constraint: d.VersionConstraint}
	}
	return model.VersionRecord{
		IPFSHash:     *abiArg[string](out, 0),
		Publisher:    *abiArg[common.Address](out, 1),
		PublishedAt:  (*abiArg[*big.Int](out, 2)).Int64(),
		Deprecated:   *abiArg[bool](out, 3),
		Dependencies: converted,
	}, nil
}

// HasAccess reports whether user may read name.
func (c *Client) HasAccess(ctx context.Context, name model.LibraryName, user common.Address) (bool, error) {
	var out []any
	if err := c.call(ctx, &out, "hasAccess", string(name), user); err != nil {
		return false, err
	}
	return *abiArg[bool](out, 0), nil
}

// HasUserLicense reports whether user already holds a purchased license
// for name.
func (c *Client) HasUserLicense(ctx context.Context, name model.LibraryName, user common.Address) (bool, error) {
	var out []any
	if err := c.call(ctx, &out, "hasUserLicense", string(name), user); err != nil {
		return false, err
	}
	return *abiArg[bool](out, 0), nil
}

// RegisterLibrary registers a new library, owned by the loaded signer.
func (c *Client) RegisterLibrary(ctx context.Context, name model.LibraryName, description string, tags []string, language string, isPrivate bool) error {
	_, err := c.transact(ctx, nil, "registerLibrary", string(name), description, tags, language, isPrivate)
	return err
}

// PublishVersion commits a new version record.
func (c *Client) PublishVersion(ctx context.Context, name model.LibraryName, version, ipfsHash string, deps []model.Dependency) error {
	rawDeps := make([]rawDependency, len(deps))
	for i, d := range deps {
		rawDeps[i] = rawDependency{Name: string(d.Name), VersionConstraint: d.Constraint}
	}
	_, err := c.transact(ctx, nil, "publishVersion", string(name), version, ipfsHash, rawDeps)
	return err
}

// DeprecateVersion marks a version deprecated.
func (c *Client) DeprecateVersion(ctx context.Context, name model.LibraryName, version string) error {
	_, err := c.transact(ctx, nil, "deprecateVersion", string(name), version)
	return err
}

// AuthorizeUser grants a user ACL access to a private library.
func (c *Client) AuthorizeUser(ctx context.Context, name model.LibraryName, user common.Address) error {
	_, err := c.transact(ctx, nil, "authorizeUser", string(name), user)
	return err
}

// RevokeAuthorization revokes a user's ACL access to a private library.
func (c *Client) RevokeAuthorization(ctx context.Context, name model.LibraryName, user common.Address) error {
	_, err := c.transact(ctx, nil, "revokeAuthorization", string(name), user)
	return err
}

// DeleteLibrary removes a library record; the contract is authoritative
// on whether published versions block deletion.
func (c *Client) DeleteLibrary(ctx context.Context, name model.LibraryName) error {
	_, err := c.transact(ctx, nil, "deleteLibrary", string(name))
	return err
}

// SetLibraryLicense updates a library's license fee/requirement.
func (c *Client) SetLibraryLicense(ctx context.Context, name model.LibraryName, fee *big.Int, required bool) error {
	_, err := c.transact(ctx, nil, "setLibraryLicense", string(name), fee, required)
	return err
}

// PurchaseLibraryLicense sends value wei to purchase a license.
func (c *Client) PurchaseLibraryLicense(ctx context.Context, name model.LibraryName, value *big.Int) error {
	_, err := c.transact(ctx, value, "purchaseLibraryLicense", string(name))
	return err
}

// TransferOwnership transfers contract ownership (used by abandon-registry).
func (c *Client) TransferOwnership(ctx context.Context, newOwner common.Address) error {
	_, err := c.transact(ctx, nil, "transferOwnership", newOwner)
	return err
}

// abiArg extracts and type-asserts the i-th unpacked return value. It
// panics on a type mismatch, which can only happen if the bundled ABI and
// this file's call sites have drifted apart — a programmer error, not a
// runtime condition callers should handle.
func abiArg[T any](out []any, i int) *T {
	v := *ethabi.ConvertType(out[i], new(T)).(*T)
	return &v
}
