package launcher

import (
	"context"
	"fmt"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/Doner357/TacoPKM-CLI/internal/appctx"
	"github.com/Doner357/TacoPKM-CLI/internal/resolver"
)

// installRoot is where resolved artifacts land, relative to the caller's
// working directory.
const installRoot = "tpkm_installed_libs"

func installCommand() cli.Command {
	return cli.Command{
		Name:      "install",
		Usage:     "Resolve and install a library and its dependencies",
		ArgsUsage: "<name>[@<version>]",
		Action: action(needs{network: true}, func(app *appctx.Context, c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.NewExitError("usage: tpkm install <name>[@<version>]", 1)
			}
			name, version, err := splitNameVersion(c.Args().First())
			if err != nil {
				return err
			}
			caller := bestEffortSigner(app)

			stop := app.UI.Spinner("resolving " + string(name))
			fetcher := resolver.IPFSFetcher{Store: app.IPFS}
			result, err := resolver.Install(context.Background(), app.Chain, fetcher, installRoot, name, version, caller)
			if err != nil {
				stop("failed")
				return err
			}
			stop("done")

			for lib, r := range result.Resolved {
				app.UI.Info(fmt.Sprintf("installed %s@%s", lib, r.Version))
			}
			for _, w := range result.Warnings {
				app.UI.Warn(fmt.Sprintf("%s@%s: %s", w.Name, w.Version, w.Message))
			}
			return nil
		}),
	}
}
