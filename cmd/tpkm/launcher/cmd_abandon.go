package launcher

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/Doner357/TacoPKM-CLI/flags"
	"github.com/Doner357/TacoPKM-CLI/internal/appctx"
)

func abandonRegistryCommand() cli.Command {
	return cli.Command{
		Name:  "abandon-registry",
		Usage: "Permanently transfer registry ownership away (irreversible)",
		Flags: flags.AbandonFlags(),
		Action: action(needs{network: true, wallet: true}, func(app *appctx.Context, c *cli.Context) error {
			raw := c.String("burn-address")
			if !common.IsHexAddress(raw) {
				return cli.NewExitError("usage: tpkm abandon-registry --burn-address <address>", 1)
			}
			newOwner := common.HexToAddress(raw)

			ok, err := app.UI.Confirm("Transfer registry ownership to "+newOwner.Hex()+"? This is irreversible.", false)
			if err != nil {
				return err
			}
			if !ok {
				app.UI.Info("aborted")
				return nil
			}
			typedOK, err := app.UI.ConfirmTyped("Type \"yes\" to confirm", "yes")
			if err != nil {
				return err
			}
			if !typedOK {
				app.UI.Info("aborted")
				return nil
			}

			if err := app.Chain.TransferOwnership(context.Background(), newOwner); err != nil {
				return err
			}
			app.UI.Info("registry ownership transferred to " + newOwner.Hex())
			return nil
		}),
	}
}
