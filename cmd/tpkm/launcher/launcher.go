// Package launcher assembles the tpkm CLI app: one urfave/cli.v1 app, flags
// drawn from the flags package, one Action per verb.
package launcher

import (
	cli "gopkg.in/urfave/cli.v1"

	"github.com/Doner357/TacoPKM-CLI/flags"
)

const (
	version = "0.1.0"
	usage   = "the TacoPKM command line interface"
)

// Launch builds the app and runs it against args (normally os.Args).
func Launch(args []string) error {
	app := flags.NewApp(version, usage)
	app.Commands = []cli.Command{
		initCommand(),
		registerCommand(),
		publishCommand(),
		installCommand(),
		listCommand(),
		infoCommand(),
		deprecateCommand(),
		authorizeCommand(),
		revokeCommand(),
		setLicenseCommand(),
		purchaseLicenseCommand(),
		deleteCommand(),
		abandonRegistryCommand(),
		walletCommand(),
		configCommand(),
	}
	return app.Run(args)
}
