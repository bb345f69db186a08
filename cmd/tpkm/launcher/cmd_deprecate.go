package launcher

import (
	"context"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/Doner357/TacoPKM-CLI/internal/appctx"
)

func deprecateCommand() cli.Command {
	return cli.Command{
		Name:      "deprecate",
		Usage:     "Mark a published version deprecated",
		ArgsUsage: "<name>@<version>",
		Action: action(needs{network: true, wallet: true}, func(app *appctx.Context, c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.NewExitError("usage: tpkm deprecate <name>@<version>", 1)
			}
			name, version, err := splitNameVersion(c.Args().First())
			if err != nil {
				return err
			}
			if version == "" {
				return cli.NewExitError("usage: tpkm deprecate <name>@<version>", 1)
			}
			if err := app.Chain.DeprecateVersion(context.Background(), name, version); err != nil {
				return err
			}
			app.UI.Info("deprecated " + string(name) + "@" + version)
			return nil
		}),
	}
}
