package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// LibraryRecord mirrors the on-chain library record read by getLibraryInfo.
type LibraryRecord struct {
	Name            LibraryName
	Owner           common.Address
	Description     string
	Language        string
	Tags            []string
	IsPrivate       bool
	LicenseFee      *big.Int
	LicenseRequired bool
}

// Valid reports whether the record satisfies the contract's own invariant:
// a private library can never also require a license.
func (r LibraryRecord) Valid() bool {
	if r.IsPrivate && r.LicenseRequired {
		return false
	}
	return true
}

// Dependency is a single edge in a VersionRecord's dependency list.
type Dependency struct {
	Name       LibraryName
	Constraint string
}

// VersionRecord mirrors the on-chain version record read by getVersionInfo.
type VersionRecord struct {
	IPFSHash     string
	Publisher    common.Address
	PublishedAt  int64
	Deprecated   bool
	Dependencies []Dependency
}

// ZeroAddress is the sentinel used by the contract for "no value".
var ZeroAddress = common.Address{}

// HasUsableArtifact reports whether the record points at something the
// installer can actually download: a non-empty CID not sitting on a
// zero-address-like sentinel value.
func (v VersionRecord) HasUsableArtifact() bool {
	if v.IPFSHash == "" {
		return false
	}
	// Some buggy publishers write the zero address's hex form as a
	// placeholder CID; reject it defensively the same way the original
	// registry's gateway does.
	if v.IPFSHash == ZeroAddress.Hex() {
		return false
	}
	return true
}
