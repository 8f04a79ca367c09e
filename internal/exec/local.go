// Package exec invokes external programs, chiefly ssh-keygen.
//
// Programs are started argv-style with no shell in between: the key file
// names this tool derives contain '=' and arbitrary user text, so every
// argument must reach the program verbatim.
package exec

import (
	"bytes"
	"io"
	"os/exec"

	"github.com/SixArm/ssh-keygen-pro/internal/errors"
)

// Runner executes an external program with explicit standard streams.
//
// Run returns the program's exit code. A non-nil error means the program
// could not be started at all; a non-zero exit code with a nil error means
// it ran and failed on its own terms.
type Runner interface {
	Run(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error)
}

// Local runs programs on the local machine.
type Local struct {
	// Dir is the working directory for invoked programs. Empty means
	// inherit the current process's directory.
	Dir string
}

// NewLocal returns a Runner that executes in the current directory.
func NewLocal() *Local {
	return &Local{}
}

// Run starts name with args, wiring the given streams straight through.
// Passing the caller's terminal streams lets interactive programs such as
// ssh-keygen run their own passphrase prompts.
func (l *Local) Run(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	command := exec.Command(name, args...)

	if l.Dir != "" {
		command.Dir = l.Dir
	}

	command.Stdin = stdin
	command.Stdout = stdout
	command.Stderr = stderr

	runErr := command.Run()
	if runErr != nil {
		// Exit error means the program ran but returned non-zero.
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		// Actual start failure.
		return -1, errors.WrapWithCode(runErr, errors.ErrKeygen,
			"Couldn't run "+name,
			"Make sure it's installed and on your PATH.")
	}

	return 0, nil
}

// Capture runs name with args through runner with no stdin and collects
// stdout and stderr. Meant for short probe commands such as version banners.
func Capture(runner Runner, name string, args []string) (stdout, stderr []byte, exitCode int, err error) {
	var outBuf, errBuf bytes.Buffer
	exitCode, err = runner.Run(name, args, nil, &outBuf, &errBuf)
	return outBuf.Bytes(), errBuf.Bytes(), exitCode, err
}
