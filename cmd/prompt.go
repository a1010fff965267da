package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chrisdamba/foodadmin/internal/mutation"
)

// terminal asks on the error stream and reads answers from the command's
// input, so table output on stdout stays clean.
type terminal struct {
	a   *App
	yes bool
}

func (a *App) prompter() mutation.Prompter {
	return &terminal{a: a, yes: a.cfg.AssumeYes}
}

func (t *terminal) Confirm(prompt string) (bool, error) {
	if t.yes {
		return true, nil
	}
	answer, err := t.Ask(prompt + " [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Ask reads one line. End of input is an empty answer.
func (t *terminal) Ask(prompt string) (string, error) {
	fmt.Fprintf(t.a.errOut, "%s ", prompt)
	line, err := t.a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

type console struct {
	out, errOut io.Writer
}

func (a *App) notifier() mutation.Notifier {
	return console{out: a.out, errOut: a.errOut}
}

func (c console) Success(msg string) { fmt.Fprintln(c.out, msg) }
func (c console) Failure(msg string) { fmt.Fprintln(c.errOut, "Error:", msg) }

// ask prompts for a value the user left off the command line.
func (a *App) ask(value *string, prompt string) error {
	if *value != "" {
		return nil
	}
	answer, err := (&terminal{a: a}).Ask(prompt)
	if err != nil {
		return err
	}
	*value = answer
	return nil
}
