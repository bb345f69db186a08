// Package access implements the combined public/private/license decision
// — the single source of truth for installer pre-flight, info rendering,
// and purchase/authorize command prompts.
package access

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Doner357/TacoPKM-CLI/internal/model"
)

// State is one of the seven possible access outcomes.
// Exactly one is ever returned for a given (library, caller): private +
// license-required is never produced (asserted by model.LibraryRecord.Valid,
// read upstream in chainclient).
type State string

const (
	StateOwner                 State = "OWNER"
	StatePublicOpen            State = "PUBLIC_OPEN"
	StatePublicLicensedOwned   State = "PUBLIC_LICENSED_OWNED"
	StatePublicLicensedUnowned State = "PUBLIC_LICENSED_UNOWNED"
	StatePrivateAuthorized     State = "PRIVATE_AUTHORIZED"
	StatePrivateUnauthorized   State = "PRIVATE_UNAUTHORIZED"
	StateNoWallet              State = "NO_WALLET"
)

// Checker is the minimal chain surface the gate needs; chainclient.Client
// satisfies it, and tests pass a fake.
type Checker interface {
	HasAccess(ctx context.Context, name model.LibraryName, user common.Address) (bool, error)
	HasUserLicense(ctx context.Context, name model.LibraryName, user common.Address) (bool, error)
}

// Caller distinguishes "no wallet loaded" from "wallet loaded but zero
// address", since the zero address is a legal (if unusual) account.
type Caller struct {
	Address common.Address
	Known   bool
}

// Decide derives a caller's access State for lib from its ownership,
// access-list, and license-ownership facts, in that priority order.
func Decide(ctx context.Context, checker Checker, lib model.LibraryRecord, caller Caller) (State, error) {
	if !caller.Known {
		return StateNoWallet, nil
	}
	if caller.Address == lib.Owner {
		return StateOwner, nil
	}

	has, err := checker.HasAccess(ctx, lib.Name, caller.Address)
	if err != nil {
		return "", err
	}
	if !has {
		if lib.LicenseRequired {
			return StatePublicLicensedUnowned, nil
		}
		if lib.IsPrivate {
			return StatePrivateUnauthorized, nil
		}
		// hasAccess is false but the library is neither licensed nor
		// private: treat as open (the contract's own default grant).
		return StatePublicOpen, nil
	}

	licensed, err := checker.HasUserLicense(ctx, lib.Name, caller.Address)
	if err != nil {
		return "", err
	}
	if licensed {
		return StatePublicLicensedOwned, nil
	}
	if lib.IsPrivate {
		return StatePrivateAuthorized, nil
	}
	return StatePublicOpen, nil
}

// VisibleWithoutWallet reports whether an unauthenticated caller may at
// least see a library's existence: true only when the library is neither
// private nor license-required.
func VisibleWithoutWallet(lib model.LibraryRecord) bool {
	return !lib.IsPrivate && !lib.LicenseRequired
}

// DenialReason composes a human explanation for an access denial by
// inspecting the library record, for use in resolver/installer error
// messages.
func DenialReason(lib model.LibraryRecord) string {
	switch {
	case lib.IsPrivate:
		return "library " + string(lib.Name) + " is private; ask the owner (" + lib.Owner.Hex() + ") to authorize your address"
	case lib.LicenseRequired:
		return "library " + string(lib.Name) + " requires a purchased license; run `tpkm purchase-license " + string(lib.Name) + "`"
	default:
		return "access to library " + string(lib.Name) + " was denied"
	}
}
