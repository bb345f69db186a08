// Package envconfig loads the .env file (if present) and reads the
// environment variables TacoPKM consumes. It is the ambient configuration
// layer, and the precedence-fallback source used by internal/netprofile.
package envconfig

import (
	"os"

	"github.com/joho/godotenv"
)

// Env is the subset of the process environment TacoPKM cares about.
type Env struct {
	RPCURL          string
	ContractAddress string
	IPFSAPIURL      string
	WalletPassword  string
	Debug           bool
	SentryDSN       string
}

// Load reads a .env file from the working directory if one exists. A
// missing file is not an error — godotenv.Load's own error is ignored — and
// Load then snapshots the environment variables TacoPKM reads.
func Load() Env {
	_ = godotenv.Load()

	return Env{
		RPCURL:          os.Getenv("RPC_URL"),
		ContractAddress: os.Getenv("CONTRACT_ADDRESS"),
		IPFSAPIURL:      os.Getenv("IPFS_API_URL"),
		WalletPassword:  os.Getenv("TPKM_WALLET_PASSWORD"),
		Debug:           os.Getenv("DEBUG") != "",
		SentryDSN:       os.Getenv("TPKM_SENTRY_DSN"),
	}
}
