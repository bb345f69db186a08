package launcher

import (
	"context"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/Doner357/TacoPKM-CLI/internal/appctx"
	"github.com/Doner357/TacoPKM-CLI/internal/model"
)

func deleteCommand() cli.Command {
	return cli.Command{
		Name:      "delete",
		Usage:     "Delete a library you own",
		ArgsUsage: "<name>",
		Action: action(needs{network: true, wallet: true}, func(app *appctx.Context, c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.NewExitError("usage: tpkm delete <name>", 1)
			}
			name, err := model.ParseLibraryName(c.Args().First())
			if err != nil {
				return err
			}

			ctx := context.Background()
			versions, err := app.Chain.GetVersionNumbers(ctx, name)
			if err != nil {
				return err
			}
			if len(versions) > 0 {
				app.UI.Warn("this library still has published versions; the registry contract may refuse the deletion")
			}

			ok, err := app.UI.Confirm("Delete "+string(name)+"? This cannot be undone.", false)
			if err != nil {
				return err
			}
			if !ok {
				app.UI.Info("aborted")
				return nil
			}
			typedOK, err := app.UI.ConfirmTyped("Type the library name to confirm", string(name))
			if err != nil {
				return err
			}
			if !typedOK {
				app.UI.Info("aborted")
				return nil
			}

			if err := app.Chain.DeleteLibrary(ctx, name); err != nil {
				return err
			}
			app.UI.Info("deleted " + string(name))
			return nil
		}),
	}
}
