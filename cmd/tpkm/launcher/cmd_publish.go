package launcher

import (
	"context"
	"fmt"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/Doner357/TacoPKM-CLI/flags"
	"github.com/Doner357/TacoPKM-CLI/internal/appctx"
	"github.com/Doner357/TacoPKM-CLI/internal/publisher"
)

func publishCommand() cli.Command {
	return cli.Command{
		Name:      "publish",
		Usage:     "Build and publish the library in a directory",
		ArgsUsage: "<directory>",
		Flags:     flags.PublishFlags(),
		Action: action(needs{network: true, wallet: true}, func(app *appctx.Context, c *cli.Context) error {
			dir := c.Args().First()
			if dir == "" {
				dir = "."
			}
			stop := app.UI.Spinner("building and publishing")
			result, err := publisher.Publish(context.Background(), app.Chain, app.IPFS, app.Logger(), dir, c.String("version"), app.Signer.Address())
			if err != nil {
				stop("failed")
				return err
			}
			stop("done")
			app.UI.Info(fmt.Sprintf("published %s@%s (cid %s)", result.Name, result.Version, result.CID))
			return nil
		}),
	}
}
