package launcher

import (
	"context"
	"fmt"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/Doner357/TacoPKM-CLI/internal/appctx"
)

// listSoftThreshold is the point past which `list` warns that the
// registry may be large enough that a full enumeration is not the best
// way to browse it; enumeration is always best-effort rather than paginated.
const listSoftThreshold = 500

func listCommand() cli.Command {
	return cli.Command{
		Name:  "list",
		Usage: "List every registered library name",
		Action: action(needs{network: true}, func(app *appctx.Context, c *cli.Context) error {
			names, err := app.Chain.GetAllLibraryNames(context.Background())
			if err != nil {
				return err
			}
			if len(names) > listSoftThreshold {
				app.UI.Warn(fmt.Sprintf("registry has %d libraries; this listing may take a while and is not paginated", len(names)))
			}
			for _, n := range names {
				app.UI.Info(n.String())
			}
			return nil
		}),
	}
}
