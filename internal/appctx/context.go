// Package appctx builds the single, explicit, non-global value every
// command operates against, threaded through as a parameter rather than
// held in process-wide singletons. One Context is built per invocation via
// a fixed control flow: ensure-network (load profile, open chain+IPFS) →
// optional load-wallet (decrypt keystore) → core operation.
package appctx

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Doner357/TacoPKM-CLI/internal/chainclient"
	"github.com/Doner357/TacoPKM-CLI/internal/envconfig"
	"github.com/Doner357/TacoPKM-CLI/internal/ipfsclient"
	"github.com/Doner357/TacoPKM-CLI/internal/keystore"
	"github.com/Doner357/TacoPKM-CLI/internal/logging"
	"github.com/Doner357/TacoPKM-CLI/internal/netprofile"
	"github.com/Doner357/TacoPKM-CLI/internal/ui"
	"github.com/Doner357/TacoPKM-CLI/internal/xerrors"
)

// Context is threaded through every command handler. Chain and IPFS stay
// nil until EnsureNetwork populates them; commands that only touch the
// local profile/keystore stores (config, wallet, init) never need them.
// Signer is nil until LoadWallet succeeds.
type Context struct {
	Env envconfig.Env

	Network netprofile.Effective
	Chain   *chainclient.Client
	IPFS    *ipfsclient.Client

	UI  ui.UI
	Log *logrus.Logger

	Signer *keystore.Signer

	home string
}

// logAdapter lets *logrus.Logger satisfy the small Warn(format, args...)
// interfaces internal/publisher and internal/resolver consumers expect,
// without those packages importing logrus directly.
type logAdapter struct{ log *logrus.Logger }

func (l logAdapter) Warn(format string, args ...any) { l.log.Warnf(format, args...) }

// Logger adapts c's logrus.Logger to the Warn(format, args...) interfaces
// used by internal/publisher and internal/resolver callers.
func (c *Context) Logger() logAdapter { return logAdapter{log: c.Log} }

// Build assembles the base Context shared by every command: environment,
// logger, home directory, UI. It never touches the network — commands
// that need the chain or IPFS call EnsureNetwork explicitly, so purely
// local commands (config, wallet, init) work before any profile exists.
func Build(uiImpl ui.UI) (*Context, error) {
	env := envconfig.Load()
	log := logging.New(env.Debug, env.SentryDSN)

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("locating home directory: %w", err)
	}

	return &Context{
		Env:  env,
		UI:   uiImpl,
		Log:  log,
		home: home,
	}, nil
}

// EnsureNetwork resolves the effective network profile and dials the chain
// and IPFS clients, populating c.Network/c.Chain/c.IPFS.
func (c *Context) EnsureNetwork(ctx context.Context) ([]string, error) {
	store, err := netprofile.Open(netprofile.Path(c.home))
	if err != nil {
		return nil, err
	}
	effective, warnings, err := netprofile.Resolve(store, c.Env)
	if err != nil {
		return warnings, xerrors.New(xerrors.KindConfigMissing, err.Error()).WithCause(err)
	}
	c.Network = effective

	chain, err := chainclient.Dial(ctx, effective.RPCURL, effective.ContractAddress)
	if err != nil {
		return warnings, err
	}
	c.Chain = chain

	ipfs, err := ipfsclient.Dial(ctx, effective.IPFSURL)
	if err != nil {
		return warnings, err
	}
	c.IPFS = ipfs

	return warnings, nil
}

// LoadWallet decrypts the local keystore and attaches the resulting signer
// to both c and c.Chain; the decrypted signer lives only for this process's
// lifetime. The password comes from TPKM_WALLET_PASSWORD if set, otherwise
// the UI prompts for it. c.Chain may be nil (a wallet-only command); in
// that case only c.Signer is populated.
func (c *Context) LoadWallet() error {
	ks := keystore.Open(keystore.Path(c.home))

	password := c.Env.WalletPassword
	if password == "" {
		var err error
		password, err = c.UI.Password("Wallet password")
		if err != nil {
			return err
		}
	}

	signer, err := ks.Decrypt(password)
	if err != nil {
		return err
	}
	c.Signer = signer
	if c.Chain != nil {
		c.Chain.LoadWallet(signer)
	}
	return nil
}

// HomeDir returns the resolved home directory Build used for the keystore
// and network-profile store paths.
func (c *Context) HomeDir() string { return c.home }
