package launcher

import (
	"context"
	"fmt"
	"strings"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/Doner357/TacoPKM-CLI/flags"
	"github.com/Doner357/TacoPKM-CLI/internal/access"
	"github.com/Doner357/TacoPKM-CLI/internal/appctx"
	"github.com/Doner357/TacoPKM-CLI/internal/model"
)

// splitNameVersion parses "<name>" or "<name>@<version>".
func splitNameVersion(arg string) (model.LibraryName, string, error) {
	at := strings.LastIndex(arg, "@")
	raw, version := arg, ""
	if at > 0 {
		raw, version = arg[:at], arg[at+1:]
	}
	name, err := model.ParseLibraryName(raw)
	return name, version, err
}

// bestEffortSigner loads the local wallet without prompting when it is not
// strictly required — info/install both work for unauthenticated callers
// too — so `info`/`install` only ask for a password when one was already
// supplied out of band.
func bestEffortSigner(app *appctx.Context) access.Caller {
	if app.Env.WalletPassword == "" {
		return access.Caller{}
	}
	if err := app.LoadWallet(); err != nil {
		return access.Caller{}
	}
	return access.Caller{Address: app.Signer.Address(), Known: true}
}

func infoCommand() cli.Command {
	return cli.Command{
		Name:      "info",
		Usage:     "Show a library's registry record",
		ArgsUsage: "<name>[@<version>]",
		Flags:     flags.InfoFlags(),
		Action: action(needs{network: true}, func(app *appctx.Context, c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.NewExitError("usage: tpkm info <name>[@<version>] [--versions]", 1)
			}
			ctx := context.Background()
			name, version, err := splitNameVersion(c.Args().First())
			if err != nil {
				return err
			}

			lib, err := app.Chain.GetLibraryInfo(ctx, name)
			if err != nil {
				return err
			}

			caller := bestEffortSigner(app)
			state, err := access.Decide(ctx, app.Chain, lib, caller)
			if err != nil {
				return err
			}
			if state == access.StateNoWallet && !access.VisibleWithoutWallet(lib) {
				app.UI.Warn("this library's details are gated; load a wallet to see more")
			}

			app.UI.Info(fmt.Sprintf("name:        %s", lib.Name))
			app.UI.Info(fmt.Sprintf("owner:       %s", lib.Owner.Hex()))
			app.UI.Info(fmt.Sprintf("description: %s", lib.Description))
			app.UI.Info(fmt.Sprintf("language:    %s", lib.Language))
			app.UI.Info(fmt.Sprintf("tags:        %s", strings.Join(lib.Tags, ", ")))
			app.UI.Info(fmt.Sprintf("private:     %t", lib.IsPrivate))
			app.UI.Info(fmt.Sprintf("license:     required=%t fee=%s", lib.LicenseRequired, lib.LicenseFee.String()))
			app.UI.Info(fmt.Sprintf("access:      %s", state))

			if version != "" {
				v, err := app.Chain.GetVersionInfo(ctx, name, version)
				if err != nil {
					return err
				}
				app.UI.Info(fmt.Sprintf("version %s: publisher=%s deprecated=%t ipfs=%s", version, v.Publisher.Hex(), v.Deprecated, v.IPFSHash))
				return nil
			}

			if c.Bool("versions") {
				versions, err := app.Chain.GetVersionNumbers(ctx, name)
				if err != nil {
					return err
				}
				for _, v := range versions {
					app.UI.Info("  " + v)
				}
			}
			return nil
		}),
	}
}
