package launcher

import (
	"context"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/Doner357/TacoPKM-CLI/flags"
	"github.com/Doner357/TacoPKM-CLI/internal/appctx"
	"github.com/Doner357/TacoPKM-CLI/internal/license"
	"github.com/Doner357/TacoPKM-CLI/internal/model"
)

func setLicenseCommand() cli.Command {
	return cli.Command{
		Name:      "set-license",
		Usage:     "Set a library's license fee and requirement",
		ArgsUsage: "<name>",
		Flags:     flags.LicenseFlags(),
		Action: action(needs{network: true, wallet: true}, func(app *appctx.Context, c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.NewExitError("usage: tpkm set-license <name> [--fee] [--required]", 1)
			}
			name, err := model.ParseLibraryName(c.Args().First())
			if err != nil {
				return err
			}
			fee, err := license.ParseFee(c.String("fee"))
			if err != nil {
				return err
			}
			required := c.Bool("required")

			ctx := context.Background()
			lib, err := app.Chain.GetLibraryInfo(ctx, name)
			if err != nil {
				return err
			}
			warning, err := license.CheckSetLicense(lib, app.Signer.Address(), fee, required)
			if err != nil {
				return err
			}
			if warning != "" {
				app.UI.Warn(warning)
			}

			if err := app.Chain.SetLibraryLicense(ctx, name, fee, required); err != nil {
				return err
			}
			app.UI.Info("updated license terms for " + string(name))
			return nil
		}),
	}
}

func purchaseLicenseCommand() cli.Command {
	return cli.Command{
		Name:      "purchase-license",
		Usage:     "Purchase a license for a library that requires one",
		ArgsUsage: "<name>",
		Flags:     flags.LicenseFlags(),
		Action: action(needs{network: true, wallet: true}, func(app *appctx.Context, c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.NewExitError("usage: tpkm purchase-license <name> [--amount]", 1)
			}
			name, err := model.ParseLibraryName(c.Args().First())
			if err != nil {
				return err
			}
			requested, err := license.ParseAmountFlag(c.String("amount"))
			if err != nil {
				return err
			}

			ctx := context.Background()
			lib, err := app.Chain.GetLibraryInfo(ctx, name)
			if err != nil {
				return err
			}
			alreadyLicensed, err := app.Chain.HasUserLicense(ctx, name, app.Signer.Address())
			if err != nil {
				return err
			}
			if err := license.CheckPurchaseLicense(lib, app.Signer.Address(), alreadyLicensed); err != nil {
				return err
			}

			amount, warning, err := license.ResolvePurchaseAmount(lib.LicenseFee, requested)
			if err != nil {
				return err
			}
			if warning != "" {
				app.UI.Warn(warning)
			}

			if err := app.Chain.PurchaseLibraryLicense(ctx, name, amount); err != nil {
				return err
			}
			app.UI.Info("purchased a license for " + string(name) + " (" + license.FormatWei(amount) + ")")
			return nil
		}),
	}
}
