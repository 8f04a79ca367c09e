package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SixArm/ssh-keygen-pro/internal/errors"
	"github.com/SixArm/ssh-keygen-pro/internal/ui"
)

// Global flags available to all commands
var (
	cfgFile     string
	noColorFlag bool
)

// Root command flags (generation is the root command's job)
var (
	rootDirFlag       string
	rootKeygenBinFlag string
)

// rootCmd is the base command. Running the bare binary generates a key
// pair; everything else is a subcommand.
var rootCmd = &cobra.Command{
	Use:   "ssh-keygen-pro [user-id] [unique-id] [algorithm] [-- ssh-keygen args]",
	Short: "Generate paired SSH keys: one with a passphrase, one for automation",
	Long: `Generate two SSH key pairs from one identity: a passphrase-protected key
for people and a passphrase-free key for automation.

Positional arguments are used verbatim; anything you leave out is asked
for interactively, with a sensible default an empty answer accepts. The
unique identifier defaults to a fresh random token so repeated runs never
collide on file names.

File names and key comments share one stem:

  {user-id}={unique-id}=ssh-{algorithm}-with-{passphrase|automation}

Arguments after -- go to ssh-keygen unchanged, for expert overrides.

Examples:
  ssh-keygen-pro
  ssh-keygen-pro alice@example.com
  ssh-keygen-pro alice@example.com 8af247255f409533f43c14cae2c07b97 ed25519
  ssh-keygen-pro alice@example.com "" rsa
  ssh-keygen-pro alice@example.com -- -Z aes256-gcm@openssh.com`,
	Args:          rootArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		positional, extra := splitDashArgs(cmd, args)
		opts, err := defaultGenerateOptions(positional, extra)
		if err != nil {
			return err
		}
		return Generate(opts)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: search for .ssh-keygen-pro.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")

	rootCmd.Flags().StringVar(&rootDirFlag, "dir", "", "directory to write key files to (default: current directory)")
	rootCmd.Flags().StringVar(&rootKeygenBinFlag, "keygen-bin", "", "ssh-keygen executable to invoke")
}

// rootArgs accepts at most the three inputs before '--'. Anything after
// the dash belongs to ssh-keygen and isn't ours to count.
func rootArgs(cmd *cobra.Command, args []string) error {
	n := cmd.ArgsLenAtDash()
	if n < 0 {
		n = len(args)
	}
	if n > 3 {
		return errors.New(errors.ErrInput,
			fmt.Sprintf("Too many arguments: expected at most 3, got %d", n),
			"Usage: ssh-keygen-pro [user-id] [unique-id] [algorithm] [-- ssh-keygen args]")
	}
	return nil
}

// splitDashArgs separates our positional inputs from the pass-through
// ssh-keygen arguments after '--'.
func splitDashArgs(cmd *cobra.Command, args []string) (positional, extra []string) {
	if at := cmd.ArgsLenAtDash(); at >= 0 {
		return args[:at], args[at:]
	}
	return args, nil
}

// Config returns the config file path from the --config flag,
// or empty string if not set.
func Config() string {
	return cfgFile
}

// Execute runs the root command and exits non-zero on failure. When the
// failure carries ssh-keygen's own exit code, that code is relayed.
func Execute() {
	cobra.OnInitialize(func() {
		if noColorFlag {
			ui.DisableColors()
		}
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if code, ok := errors.GetExitCode(err); ok && code > 0 {
			os.Exit(code)
		}
		os.Exit(1)
	}
}
