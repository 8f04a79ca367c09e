package cli

import (
	"io"
	"os"

	"github.com/SixArm/ssh-keygen-pro/internal/algo"
	"github.com/SixArm/ssh-keygen-pro/internal/config"
	"github.com/SixArm/ssh-keygen-pro/internal/exec"
	"github.com/SixArm/ssh-keygen-pro/internal/keygen"
	"github.com/SixArm/ssh-keygen-pro/internal/resolve"
	"github.com/SixArm/ssh-keygen-pro/internal/ui"
)

// GenerateOptions carries one generation run's inputs and collaborators.
// Tests substitute the Prompter and Runner; the command wires real ones.
type GenerateOptions struct {
	// Args are the positional inputs in user, unique, algorithm order.
	// Missing or empty entries are resolved interactively.
	Args []string

	// ExtraArgs are forwarded verbatim to every ssh-keygen invocation.
	ExtraArgs []string

	// Dir is the output directory. Empty means the current directory.
	Dir string

	// KeygenBin is the collaborating executable. Empty means ssh-keygen
	// from PATH.
	KeygenBin string

	// Defaults seed the prompts, typically from the config file.
	Defaults resolve.Defaults

	Prompter resolve.Prompter
	Runner   exec.Runner

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// defaultGenerateOptions assembles the real pipeline: config file defaults,
// terminal-aware prompting, local process execution, the process's streams.
func defaultGenerateOptions(positional, extra []string) (GenerateOptions, error) {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return GenerateOptions{}, err
	}
	if err := config.Validate(cfg); err != nil {
		return GenerateOptions{}, err
	}

	opts := GenerateOptions{
		Args:      positional,
		ExtraArgs: extra,
		Dir:       cfg.Dir,
		KeygenBin: cfg.KeygenBin,
		Defaults: resolve.Defaults{
			UserID:    cfg.User,
			Algorithm: cfg.Algorithm,
		},
		Prompter: resolve.NewPrompter(),
		Runner:   exec.NewLocal(),
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}

	// Flags beat config file values.
	if rootDirFlag != "" {
		opts.Dir = rootDirFlag
	}
	if rootKeygenBinFlag != "" {
		opts.KeygenBin = rootKeygenBinFlag
	}

	return opts, nil
}

// Generate runs the whole pipeline: resolve the three inputs, map the
// algorithm to generation parameters, then drive ssh-keygen once per
// variant and report the produced files.
func Generate(opts GenerateOptions) error {
	resolver := resolve.NewResolver(opts.Prompter, opts.Defaults)
	in, err := resolver.Resolve(opts.Args)
	if err != nil {
		return err
	}

	// The algorithm gate: empty inputs default, but an unrecognized
	// algorithm never silently becomes a different one.
	params, err := algo.Map(in.Algorithm)
	if err != nil {
		return err
	}

	gen := keygen.New(opts.KeygenBin, opts.Runner)
	gen.SetStreams(opts.Stdin, opts.Stdout, opts.Stderr)

	pairs, err := gen.Generate(keygen.Request{
		UserID:    in.UserID,
		UniqueID:  in.UniqueID,
		Algorithm: in.Algorithm,
		Params:    params,
		Dir:       opts.Dir,
		ExtraArgs: opts.ExtraArgs,
	})
	if err != nil {
		return err
	}

	reports := make([]ui.KeyPairReport, 0, len(pairs))
	for _, pair := range pairs {
		reports = append(reports, ui.KeyPairReport{
			Label:       pair.Variant.Label(),
			PrivatePath: pair.PrivatePath,
			PublicPath:  pair.PublicPath,
		})
	}

	_, err = io.WriteString(opts.Stdout, "\n"+ui.RenderReport(reports))
	return err
}
