package launcher

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/Doner357/TacoPKM-CLI/internal/appctx"
	"github.com/Doner357/TacoPKM-CLI/internal/model"
)

func authorizeCommand() cli.Command {
	return cli.Command{
		Name:      "authorize",
		Usage:     "Grant a user access to a private library",
		ArgsUsage: "<name> <userAddress>",
		Action: action(needs{network: true, wallet: true}, func(app *appctx.Context, c *cli.Context) error {
			name, user, err := parseAccessArgs(c)
			if err != nil {
				return err
			}
			if err := app.Chain.AuthorizeUser(context.Background(), name, user); err != nil {
				return err
			}
			app.UI.Info("authorized " + user.Hex() + " for " + string(name))
			return nil
		}),
	}
}

func revokeCommand() cli.Command {
	return cli.Command{
		Name:      "revoke",
		Usage:     "Revoke a user's access to a private library",
		ArgsUsage: "<name> <userAddress>",
		Action: action(needs{network: true, wallet: true}, func(app *appctx.Context, c *cli.Context) error {
			name, user, err := parseAccessArgs(c)
			if err != nil {
				return err
			}
			if err := app.Chain.RevokeAuthorization(context.Background(), name, user); err != nil {
				return err
			}
			app.UI.Info("revoked " + user.Hex() + " for " + string(name))
			return nil
		}),
	}
}

func parseAccessArgs(c *cli.Context) (model.LibraryName, common.Address, error) {
	if c.NArg() != 2 {
		return "", common.Address{}, cli.NewExitError("usage: tpkm authorize|revoke <name> <userAddress>", 1)
	}
	name, err := model.ParseLibraryName(c.Args().Get(0))
	if err != nil {
		return "", common.Address{}, err
	}
	raw := c.Args().Get(1)
	if !common.IsHexAddress(raw) {
		return "", common.Address{}, cli.NewExitError("invalid user address "+raw, 1)
	}
	return name, common.HexToAddress(raw), nil
}
