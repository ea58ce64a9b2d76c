// Package prompt asks the operator questions on the terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/herd/internal/ui/output"
	"go.trai.ch/herd/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Terminal implements ports.Prompter.
type Terminal struct {
	in     io.Reader
	reader *bufio.Reader
	out    *termenv.Output
}

// NewTerminal creates a prompter reading from in and writing questions to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:     in,
		reader: bufio.NewReader(in),
		out:    output.New(out),
	}
}

// Password reads a secret. Input is not echoed when in is a terminal.
func (t *Terminal) Password(label string) (string, error) {
	t.ask(label + ": ")

	if f, ok := t.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(t.out)
		if err != nil {
			return "", zerr.With(zerr.Wrap(domain.ErrPromptFailed, err.Error()), "prompt", label)
		}
		return string(secret), nil
	}
	return t.line(label)
}

// Prompt reads a line of text.
func (t *Terminal) Prompt(label string) (string, error) {
	t.ask(label + ": ")
	return t.line(label)
}

// Confirm asks a yes/no question until it gets an answer. An empty answer yields def.
func (t *Terminal) Confirm(label string, def bool) (bool, error) {
	hint := " [y/N] "
	if def {
		hint = " [Y/n] "
	}
	for {
		t.ask(label + hint)
		answer, err := t.line(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		_, _ = fmt.Fprintln(t.out, "I didn't understand you. Please specify '(y)es' or '(n)o'.")
	}
}

func (t *Terminal) ask(question string) {
	_, _ = fmt.Fprint(t.out, output.Paint(t.out, question, style.Iris))
}

func (t *Terminal) line(label string) (string, error) {
	s, err := t.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", zerr.With(zerr.Wrap(domain.ErrPromptFailed, "no answer"), "prompt", label)
	}
	return strings.TrimSpace(s), nil
}
