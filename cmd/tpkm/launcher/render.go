package launcher

import (
	"context"
	"fmt"
	"os"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/sirupsen/logrus"

	"github.com/Doner357/TacoPKM-CLI/internal/appctx"
	"github.com/Doner357/TacoPKM-CLI/internal/ui"
	"github.com/Doner357/TacoPKM-CLI/internal/xerrors"
)

// needs describes what a command requires beyond the base Context (env,
// logger, home, UI) that every command gets for free.
type needs struct {
	network bool // dial chain + IPFS
	wallet  bool // decrypt the local keystore
}

// action wraps a command body with context construction and the single
// error-rendering choke point: one classified line, an optional hint, and
// the full cause chain only under DEBUG.
func action(n needs, fn func(*appctx.Context, *cli.Context) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		app, err := appctx.Build(ui.NewConsoleUI())
		if err != nil {
			render(nil, err)
			return cli.NewExitError("", 1)
		}

		if n.network {
			warnings, err := app.EnsureNetwork(context.Background())
			for _, w := range warnings {
				app.UI.Warn(w)
			}
			if err != nil {
				render(app.Log, err)
				return cli.NewExitError("", 1)
			}
		}
		if n.wallet {
			if err := app.LoadWallet(); err != nil {
				render(app.Log, err)
				return cli.NewExitError("", 1)
			}
		}

		if err := fn(app, c); err != nil {
			render(app.Log, err)
			return cli.NewExitError("", 1)
		}
		return nil
	}
}

// render prints the classified one-liner (+ hint, + cause chain under
// DEBUG) to stderr: one line of classified message, an optional hint line,
// a stack trace only if DEBUG is set. Errors that never made it through
// xerrors.Translate (Kind == UNKNOWN) or arrived as a bare error are also
// logged at Error level, so the crash-reporting hook attached to log sees
// every failure a user wasn't given a classified explanation for.
func render(log *logrus.Logger, err error) {
	var xerr *xerrors.Error
	if xerrors.As(err, &xerr) {
		fmt.Fprintf(os.Stderr, "error: [%s] %s\n", xerr.Kind, xerr.Message)
		if xerr.Hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", xerr.Hint)
		}
		if os.Getenv("DEBUG") != "" {
			for cause := xerr.Unwrap(); cause != nil; {
				fmt.Fprintf(os.Stderr, "  caused by: %v\n", cause)
				u, ok := cause.(interface{ Unwrap() error })
				if !ok {
					break
				}
				cause = u.Unwrap()
			}
		}
		if log != nil && xerr.Kind == xerrors.KindUnknown {
			log.WithError(xerr).Error("unclassified error")
		}
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	if log != nil {
		log.WithError(err).Error("unclassified error")
	}
}
