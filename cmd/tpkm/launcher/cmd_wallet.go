package launcher

import (
	"context"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/Doner357/TacoPKM-CLI/flags"
	"github.com/Doner357/TacoPKM-CLI/internal/appctx"
	localkeystore "github.com/Doner357/TacoPKM-CLI/internal/keystore"
	"github.com/Doner357/TacoPKM-CLI/internal/license"
)

func walletCommand() cli.Command {
	return cli.Command{
		Name:  "wallet",
		Usage: "Manage the local encrypted keystore",
		Subcommands: []cli.Command{
			{
				Name:  "create",
				Usage: "Create a new keystore (confirms before overwriting)",
				Flags: flags.WalletFlags(),
				Action: action(needs{}, func(app *appctx.Context, c *cli.Context) error {
					return walletCreateOrImport(app, c, "")
				}),
			},
			{
				Name:      "import",
				Usage:     "Import an existing private key (confirms before overwriting)",
				ArgsUsage: "<privateKey>",
				Flags:     flags.WalletFlags(),
				Action: action(needs{}, func(app *appctx.Context, c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.NewExitError("usage: tpkm wallet import <privateKey>", 1)
					}
					return walletCreateOrImport(app, c, c.Args().First())
				}),
			},
			{
				Name:  "address",
				Usage: "Print the wallet address",
				Action: action(needs{wallet: true}, func(app *appctx.Context, c *cli.Context) error {
					app.UI.Info(app.Signer.Address().Hex())
					return nil
				}),
			},
			{
				Name:  "balance",
				Usage: "Print the ETH balance on the active network",
				Action: action(needs{network: true, wallet: true}, func(app *appctx.Context, c *cli.Context) error {
					bal, err := app.Chain.Balance(context.Background(), app.Signer.Address())
					if err != nil {
						return err
					}
					app.UI.Info(fmt.Sprintf("%s (%s wei)", license.FormatWei(bal), bal.String()))
					return nil
				}),
			},
		},
	}
}

func walletCreateOrImport(app *appctx.Context, c *cli.Context, privateKey string) error {
	path := localkeystore.Path(app.HomeDir())
	ks := localkeystore.Open(path)
	if ks.Exists() {
		ok, err := app.UI.Confirm("A keystore already exists; overwrite it?", false)
		if err != nil {
			return err
		}
		if !ok {
			app.UI.Info("aborted")
			return nil
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing existing keystore: %w", err)
		}
	}

	password := c.String("password")
	if password == "" {
		password = app.Env.WalletPassword
	}
	if password == "" {
		var err error
		password, err = app.UI.Password("New wallet password")
		if err != nil {
			return err
		}
	}

	var addr common.Address
	var err error
	if privateKey == "" {
		addr, err = ks.Create(password)
	} else {
		addr, err = ks.Import(privateKey, password)
	}
	if err != nil {
		return err
	}
	app.UI.Info("wallet address: " + addr.Hex())
	return nil
}
