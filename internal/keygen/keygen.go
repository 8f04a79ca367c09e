// Package keygen produces SSH key pairs by driving the ssh-keygen utility.
//
// Each invocation of the tool yields two pairs from the same resolved
// inputs: one whose private key is protected by an operator-supplied
// passphrase, and one with no passphrase for use by automation. ssh-keygen
// does the cryptography and owns the passphrase dialogue; this package only
// decides the arguments and the order of the two runs.
package keygen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/SixArm/ssh-keygen-pro/internal/algo"
	"github.com/SixArm/ssh-keygen-pro/internal/errors"
	"github.com/SixArm/ssh-keygen-pro/internal/exec"
	"github.com/SixArm/ssh-keygen-pro/internal/logger"
	"github.com/SixArm/ssh-keygen-pro/internal/naming"
)

// PublicKeySuffix is the extension ssh-keygen appends to the public half.
const PublicKeySuffix = ".pub"

// DefaultBin is the collaborating executable, resolved via PATH.
const DefaultBin = "ssh-keygen"

// Request carries everything one generation run needs.
type Request struct {
	UserID    string
	UniqueID  string
	Algorithm string
	Params    algo.Params

	// Dir is the output directory. Empty means the current directory.
	Dir string

	// ExtraArgs are appended verbatim to every ssh-keygen invocation.
	ExtraArgs []string
}

// KeyPair reports one produced pair of key files.
type KeyPair struct {
	Variant     naming.Variant
	Stem        string
	PrivatePath string
	PublicPath  string
}

// Generator runs ssh-keygen once per variant.
type Generator struct {
	bin    string
	runner exec.Runner
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    logger.Logger
}

// New returns a Generator that invokes bin through runner with the
// process's own standard streams, so ssh-keygen can prompt for the
// passphrase itself.
func New(bin string, runner exec.Runner) *Generator {
	if bin == "" {
		bin = DefaultBin
	}
	return &Generator{
		bin:    bin,
		runner: runner,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		log:    logger.NewEnvLogger("[keygen]"),
	}
}

// SetStreams redirects the streams handed to ssh-keygen.
func (g *Generator) SetStreams(stdin io.Reader, stdout, stderr io.Writer) {
	g.stdin = stdin
	g.stdout = stdout
	g.stderr = stderr
}

// SetLogger replaces the debug logger.
func (g *Generator) SetLogger(log logger.Logger) {
	g.log = log
}

// Generate produces the passphrase-protected pair and then the automation
// pair. The passphrase variant runs first so the interactive dialogue
// happens before any non-interactive work. The first failure stops the
// run; files already written stay on disk.
func (g *Generator) Generate(req Request) ([]KeyPair, error) {
	pairs := make([]KeyPair, 0, 2)
	for _, variant := range naming.Variants() {
		pair, err := g.generateVariant(req, variant)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

func (g *Generator) generateVariant(req Request, variant naming.Variant) (KeyPair, error) {
	stem := naming.Stem(req.UserID, req.UniqueID, req.Algorithm, variant)
	path := stem
	if req.Dir != "" {
		path = filepath.Join(req.Dir, stem)
	}

	args := []string{"-t", req.Params.KeyType}
	if req.Params.KDFRounds > 0 {
		args = append(args, "-a", strconv.Itoa(req.Params.KDFRounds))
	}
	if req.Params.BitLength > 0 {
		args = append(args, "-b", strconv.Itoa(req.Params.BitLength))
	}
	args = append(args, "-C", stem, "-f", path)
	if variant == naming.WithAutomation {
		// Only the automation variant pins an empty passphrase. The
		// other run leaves ssh-keygen free to ask for one.
		args = append(args, "-N", "")
	}
	args = append(args, req.ExtraArgs...)

	g.log.Debug("running %s %v", g.bin, args)

	exitCode, err := g.runner.Run(g.bin, args, g.stdin, g.stdout, g.stderr)
	if err != nil {
		return KeyPair{}, err
	}
	if exitCode != 0 {
		return KeyPair{}, errors.WrapWithCode(errors.NewExitError(exitCode), errors.ErrKeygen,
			fmt.Sprintf("%s exited with code %d while generating the %s key", g.bin, exitCode, variant.Label()),
			"Check the ssh-keygen output above. A file with the same name may already exist.")
	}

	return KeyPair{
		Variant:     variant,
		Stem:        stem,
		PrivatePath: path,
		PublicPath:  path + PublicKeySuffix,
	}, nil
}
