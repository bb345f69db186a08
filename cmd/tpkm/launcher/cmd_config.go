package launcher

import (
	"fmt"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/Doner357/TacoPKM-CLI/flags"
	"github.com/Doner357/TacoPKM-CLI/internal/appctx"
	"github.com/Doner357/TacoPKM-CLI/internal/netprofile"
)

func configCommand() cli.Command {
	return cli.Command{
		Name:  "config",
		Usage: "Manage named network profiles",
		Subcommands: []cli.Command{
			{
				Name:      "add",
				Usage:     "Upsert a network profile",
				ArgsUsage: "<name>",
				Flags:     flags.ConfigAddFlags(),
				Action: action(needs{}, func(app *appctx.Context, c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.NewExitError("usage: tpkm config add <name> --rpc <url> --contract <address>", 1)
					}
					store, err := openStore(app)
					if err != nil {
						return err
					}
					return store.Add(c.Args().First(), c.String("rpc"), c.String("contract"), c.Bool("set-active"))
				}),
			},
			{
				Name:      "set-active",
				Usage:     "Select the active network profile",
				ArgsUsage: "<name>",
				Action: action(needs{}, func(app *appctx.Context, c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.NewExitError("usage: tpkm config set-active <name>", 1)
					}
					store, err := openStore(app)
					if err != nil {
						return err
					}
					return store.SetActive(c.Args().First())
				}),
			},
			{
				Name:  "list",
				Usage: "List every network profile",
				Action: action(needs{}, func(app *appctx.Context, c *cli.Context) error {
					store, err := openStore(app)
					if err != nil {
						return err
					}
					active := store.Active()
					for name, p := range store.List() {
						marker := " "
						if name == active {
							marker = "*"
						}
						app.UI.Info(fmt.Sprintf("%s %s  rpc=%s contract=%s", marker, name, p.RPCURL, p.ContractAddress))
					}
					return nil
				}),
			},
			{
				Name:      "show",
				Usage:     "Show one profile (or the active one, if no name given)",
				ArgsUsage: "[name]",
				Action: action(needs{}, func(app *appctx.Context, c *cli.Context) error {
					store, err := openStore(app)
					if err != nil {
						return err
					}
					name, p, ok := store.Show(c.Args().First())
					if !ok {
						return cli.NewExitError("no such profile", 1)
					}
					app.UI.Info(fmt.Sprintf("%s  rpc=%s contract=%s", name, p.RPCURL, p.ContractAddress))
					return nil
				}),
			},
			{
				Name:      "remove",
				Usage:     "Remove a network profile",
				ArgsUsage: "<name>",
				Action: action(needs{}, func(app *appctx.Context, c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.NewExitError("usage: tpkm config remove <name>", 1)
					}
					store, err := openStore(app)
					if err != nil {
						return err
					}
					removedActive, err := store.Remove(c.Args().First())
					if err != nil {
						return err
					}
					if removedActive {
						app.UI.Warn("removed the active profile; set a new one with `tpkm config set-active`")
					}
					return nil
				}),
			},
		},
	}
}

func openStore(app *appctx.Context) (*netprofile.Store, error) {
	return netprofile.Open(netprofile.Path(app.HomeDir()))
}
