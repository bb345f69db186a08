package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// ConfigAddFlags returns the CLI flags for `config add`.
func ConfigAddFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "rpc",
			Usage: "RPC endpoint URL for this profile",
		},
		cli.StringFlag{
			Name:  "contract",
			Usage: "Registry contract address for this profile",
		},
		cli.BoolFlag{
			Name:  "set-active",
			Usage: "Make this profile active immediately",
		},
	}
}
