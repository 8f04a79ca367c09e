package resolve

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/SixArm/ssh-keygen-pro/internal/errors"
)

// Prompter asks the operator for one value. Implementations return the
// raw entry; an empty string means the operator accepted the default.
type Prompter interface {
	Prompt(title, description, defaultValue string) (string, error)
}

// NewPrompter picks the interactive form when stdin is a terminal and a
// plain line reader otherwise, so piped and redirected input still work.
func NewPrompter() Prompter {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return &FormPrompter{}
	}
	return NewLinePrompter(os.Stdin, os.Stdout)
}

// FormPrompter renders each prompt as a huh input form on the terminal.
type FormPrompter struct{}

// Prompt shows a single-field form. The default appears as the
// placeholder, so submitting without typing returns the empty string.
func (p *FormPrompter) Prompt(title, description, defaultValue string) (string, error) {
	var entered string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				Placeholder(defaultValue).
				Value(&entered),
		),
	)

	if err := form.Run(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrInput,
			"Failed to get user input",
			"Pass the value as an argument instead: ssh-keygen-pro <user-id> <unique-id> <algorithm>")
	}

	return entered, nil
}

// LinePrompter reads one line per prompt. EOF counts as an empty answer,
// so `ssh-keygen-pro < /dev/null` takes every default.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter reads answers from in and writes prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Prompt(title, description, defaultValue string) (string, error) {
	fmt.Fprintf(p.out, "%s (%s) [%s]: ", title, description, defaultValue)

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.WrapWithCode(err, errors.ErrInput,
			"Couldn't read from standard input",
			"Pass the value as an argument instead: ssh-keygen-pro <user-id> <unique-id> <algorithm>")
	}

	return strings.TrimRight(line, "\r\n"), nil
}
