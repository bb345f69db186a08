// Package logging configures the process-wide structured logger:
// sirupsen/logrus for structured output, with an optional
// evalphobia/logrus_sentry + getsentry/raven-go hook for crash reporting.
package logging

import (
	"os"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

// New builds the process logger. debug raises the level to Debug and adds
// full timestamps to formatted entries; sentryDSN, when non-empty, attaches
// a hook that reports Error+ entries to Sentry.
func New(debug bool, sentryDSN string) *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stderr

	if debug {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	if sentryDSN != "" {
		hook, err := logrus_sentry.NewSentryHook(sentryDSN, []logrus.Level{
			logrus.ErrorLevel,
			logrus.FatalLevel,
			logrus.PanicLevel,
		})
		if err != nil {
			log.WithError(err).Warn("could not attach sentry hook; continuing without crash reporting")
		} else {
			hook.Timeout = 0
			log.AddHook(hook)
		}
	}

	return log
}
