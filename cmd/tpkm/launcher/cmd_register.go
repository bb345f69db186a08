package launcher

import (
	"context"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/Doner357/TacoPKM-CLI/flags"
	"github.com/Doner357/TacoPKM-CLI/internal/appctx"
	"github.com/Doner357/TacoPKM-CLI/internal/model"
)

func registerCommand() cli.Command {
	return cli.Command{
		Name:      "register",
		Usage:     "Register a new library",
		ArgsUsage: "<name>",
		Flags:     flags.RegisterFlags(),
		Action: action(needs{network: true, wallet: true}, func(app *appctx.Context, c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.NewExitError("usage: tpkm register <name> [--description] [--tags] [--language] [--private]", 1)
			}
			name, err := model.ParseLibraryName(c.Args().First())
			if err != nil {
				return err
			}
			tags := flags.ParseTags(c.String("tags"))
			if err := app.Chain.RegisterLibrary(context.Background(), name, c.String("description"), tags, c.String("language"), c.Bool("private")); err != nil {
				return err
			}
			app.UI.Info("registered " + string(name))
			return nil
		}),
	}
}
