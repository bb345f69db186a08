package ui

import "fmt"

// ScriptedUI replays recorded answers in order; it is how core operations
// are tested without a real terminal. Each recorded answer is consumed
// exactly once, in call order.
type ScriptedUI struct {
	Confirms  []bool
	Typed     []bool
	Passwords []string

	Infos, Warns, Errors []string

	confirmIdx, typedIdx, passwordIdx int
}

func (s *ScriptedUI) Confirm(prompt string, defaultYes bool) (bool, error) {
	if s.confirmIdx >= len(s.Confirms) {
		return false, fmt.Errorf("scripted UI: no recorded answer for confirm %q", prompt)
	}
	v := s.Confirms[s.confirmIdx]
	s.confirmIdx++
	return v, nil
}

func (s *ScriptedUI) ConfirmTyped(prompt, mustType string) (bool, error) {
	if s.typedIdx >= len(s.Typed) {
		return false, fmt.Errorf("scripted UI: no recorded answer for typed confirm %q", prompt)
	}
	v := s.Typed[s.typedIdx]
	s.typedIdx++
	return v, nil
}

func (s *ScriptedUI) Password(prompt string) (string, error) {
	if s.passwordIdx >= len(s.Passwords) {
		return "", fmt.Errorf("scripted UI: no recorded password for %q", prompt)
	}
	v := s.Passwords[s.passwordIdx]
	s.passwordIdx++
	return v, nil
}

func (s *ScriptedUI) Info(msg string)  { s.Infos = append(s.Infos, msg) }
func (s *ScriptedUI) Warn(msg string)  { s.Warns = append(s.Warns, msg) }
func (s *ScriptedUI) Error(msg string) { s.Errors = append(s.Errors, msg) }

func (s *ScriptedUI) Spinner(label string) func(finalMsg string) {
	return func(finalMsg string) {}
}

// SilentUI powers non-interactive runs: every prompt fails closed (returns
// "no"/empty) rather than blocking, and status lines are dropped.
type SilentUI struct{}

func (SilentUI) Confirm(prompt string, defaultYes bool) (bool, error)   { return false, nil }
func (SilentUI) ConfirmTyped(prompt, mustType string) (bool, error)     { return false, nil }
func (SilentUI) Password(prompt string) (string, error)                { return "", fmt.Errorf("no interactive session: cannot prompt for %q", prompt) }
func (SilentUI) Info(msg string)                                       {}
func (SilentUI) Warn(msg string)                                       {}
func (SilentUI) Error(msg string)                                      {}
func (SilentUI) Spinner(label string) func(finalMsg string)            { return func(string) {} }
