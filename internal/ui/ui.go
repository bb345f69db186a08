// Package ui defines the injectable terminal capability used by every core
// operation that needs to prompt, warn, or show progress. Core code never
// touches promptui/spinner/color directly; it only ever sees the UI
// interface, so it stays testable with a ScriptedUI and silent in
// non-interactive runs.
package ui

// UI is the capability surface core operations depend on.
type UI interface {
	// Confirm asks a yes/no question, defaulting to defaultYes when the
	// user just presses enter. It is a blocking suspension point and must
	// never be skipped by default flags.
	Confirm(prompt string, defaultYes bool) (bool, error)

	// ConfirmTyped asks the user to type an exact phrase (e.g. the
	// library name, or "yes") to proceed; used by two-step destructive
	// confirmations (delete, abandon-registry).
	ConfirmTyped(prompt, mustType string) (bool, error)

	// Password prompts for a secret without echoing it.
	Password(prompt string) (string, error)

	// Info prints an informational line.
	Info(msg string)
	// Warn prints a warning line.
	Warn(msg string)
	// Error prints an error line.
	Error(msg string)

	// Spinner starts a progress indicator with the given label and
	// returns a function that stops it, optionally replacing the label
	// with a final status line.
	Spinner(label string) func(finalMsg string)
}
