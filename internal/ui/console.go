package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
)

// ConsoleUI is the interactive implementation: promptui for prompts,
// briandowns/spinner for progress, fatih/color for status coloring.
type ConsoleUI struct{}

// NewConsoleUI builds the default interactive UI.
func NewConsoleUI() *ConsoleUI { return &ConsoleUI{} }

func (ConsoleUI) Confirm(prompt string, defaultYes bool) (bool, error) {
	p := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
		Default:   yesNo(defaultYes),
	}
	result, err := p.Run()
	if err != nil {
		// promptui returns ErrAbort when the user answers "n"; that is a
		// valid "no", not a failure.
		if err == promptui.ErrAbort {
			return false, nil
		}
		return false, err
	}
	return strings.EqualFold(result, "y") || strings.EqualFold(result, "yes"), nil
}

func yesNo(defaultYes bool) string {
	if defaultYes {
		return "y"
	}
	return "n"
}

func (ConsoleUI) ConfirmTyped(prompt, mustType string) (bool, error) {
	p := promptui.Prompt{
		Label: fmt.Sprintf("%s (type %q to confirm)", prompt, mustType),
	}
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	return result == mustType, nil
}

func (ConsoleUI) Password(prompt string) (string, error) {
	p := promptui.Prompt{
		Label: prompt,
		Mask:  '*',
	}
	return p.Run()
}

func (ConsoleUI) Info(msg string) {
	color.New(color.FgCyan).Println(msg)
}

func (ConsoleUI) Warn(msg string) {
	color.New(color.FgYellow).Println("warning:", msg)
}

func (ConsoleUI) Error(msg string) {
	color.New(color.FgRed).Println("error:", msg)
}

func (ConsoleUI) Spinner(label string) func(finalMsg string) {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " " + label
	s.Start()
	return func(finalMsg string) {
		s.Stop()
		if finalMsg != "" {
			color.New(color.FgGreen).Println(finalMsg)
		}
	}
}
