package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// WalletFlags returns the CLI flags for `wallet create` / `wallet import`.
func WalletFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "password",
			Usage: "Wallet password (otherwise read from TPKM_WALLET_PASSWORD or prompted)",
		},
	}
}

// RegisterFlags returns the CLI flags for `register`.
func RegisterFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "description",
			Usage: "Library description",
		},
		cli.StringFlag{
			Name:  "tags",
			Usage: "Comma-separated tags",
		},
		cli.StringFlag{
			Name:  "language",
			Usage: "Primary implementation language",
		},
		cli.BoolFlag{
			Name:  "private",
			Usage: "Register as a private library",
		},
	}
}

// PublishFlags returns the CLI flags for `publish`.
func PublishFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "version",
			Usage: "Override the version declared in lib.config.json",
		},
	}
}

// InfoFlags returns the CLI flags for `info`.
func InfoFlags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "versions",
			Usage: "Also list every published version after the summary",
		},
	}
}

// LicenseFlags returns the CLI flags for `set-license` / `purchase-license`.
func LicenseFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "fee",
			Usage: "License fee, as \"<amount> <unit>\" (eth|gwei|wei); used by set-license",
		},
		cli.BoolFlag{
			Name:  "required",
			Usage: "Require a purchased license for access; used by set-license",
		},
		cli.StringFlag{
			Name:  "amount",
			Usage: "Amount to send, as \"<amount> <unit>\"; defaults to the on-chain fee; used by purchase-license",
		},
	}
}

// AbandonFlags returns the CLI flags for `abandon-registry`.
func AbandonFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "burn-address",
			Usage: "Address to transfer registry ownership to",
		},
	}
}
