package netprofile

import (
	"fmt"

	"github.com/Doner357/TacoPKM-CLI/internal/envconfig"
)

// DefaultIPFSURL is the fallback used when no IPFS endpoint is configured
// anywhere.
const DefaultIPFSURL = "http://127.0.0.1:5001/api/v0"

// Effective is the resolved (rpc, contract, ipfs) triple a chain-touching
// command actually uses.
type Effective struct {
	RPCURL          string
	ContractAddress string
	IPFSURL         string
	Source          string // "profile:<name>" or "env", for diagnostics
}

// Resolve implements the network configuration precedence chain:
//  1. a valid active profile from the store
//  2. RPC_URL / CONTRACT_ADDRESS / IPFS_API_URL
//  3. fail for chain endpoints with guidance; default for IPFS alone.
//
// A partial/invalid active profile is never fatal: it downgrades to (2)
// with a warning appended to warnings.
func Resolve(store *Store, env envconfig.Env) (Effective, []string, error) {
	var warnings []string

	if profile, ok, warning := store.ValidActiveProfile(); ok {
		ipfs := env.IPFSAPIURL
		if ipfs == "" {
			ipfs = DefaultIPFSURL
		}
		return Effective{
			RPCURL:          profile.RPCURL,
			ContractAddress: profile.ContractAddress,
			IPFSURL:         ipfs,
			Source:          "profile:" + store.Active(),
		}, warnings, nil
	} else if warning != "" {
		warnings = append(warnings, warning)
	}

	ipfs := env.IPFSAPIURL
	if ipfs == "" {
		ipfs = DefaultIPFSURL
	}

	if env.RPCURL == "" || env.ContractAddress == "" {
		return Effective{}, warnings, fmt.Errorf(
			"no usable network configuration: set an active profile with `tpkm config add` / `tpkm config set-active`, " +
				"or set RPC_URL and CONTRACT_ADDRESS in the environment or a .env file")
	}
	if err := ValidateRPC(env.RPCURL); err != nil {
		return Effective{}, warnings, fmt.Errorf("RPC_URL is invalid: %w", err)
	}
	if err := ValidateAddress(env.ContractAddress); err != nil {
		return Effective{}, warnings, fmt.Errorf("CONTRACT_ADDRESS is invalid: %w", err)
	}

	return Effective{
		RPCURL:          env.RPCURL,
		ContractAddress: env.ContractAddress,
		IPFSURL:         ipfs,
		Source:          "env",
	}, warnings, nil
}
