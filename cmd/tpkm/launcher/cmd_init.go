package launcher

import (
	"path/filepath"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/Doner357/TacoPKM-CLI/internal/appctx"
	"github.com/Doner357/TacoPKM-CLI/internal/libconfig"
)

func initCommand() cli.Command {
	return cli.Command{
		Name:      "init",
		Usage:     "Write a starter lib.config.json in the current directory",
		ArgsUsage: "[name]",
		Action: action(needs{}, func(app *appctx.Context, c *cli.Context) error {
			name := c.Args().First()
			if name == "" {
				wd, err := filepath.Abs(".")
				if err != nil {
					return err
				}
				name = filepath.Base(wd)
			}
			if err := libconfig.WriteTemplate(".", name); err != nil {
				return err
			}
			app.UI.Info("wrote " + libconfig.FileName)
			return nil
		}),
	}
}
