package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/SixArm/ssh-keygen-pro/internal/algo"
	"github.com/SixArm/ssh-keygen-pro/internal/config"
	"github.com/SixArm/ssh-keygen-pro/internal/errors"
	"github.com/SixArm/ssh-keygen-pro/internal/ui"
)

var (
	initUserFlag      string
	initAlgorithmFlag string
	initDirFlag       string
	initForce         bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .ssh-keygen-pro.yaml configuration",
	Long: `Create a configuration file holding your preferred prompt defaults.

The config never overrides anything you pass on the command line or type
at a prompt; it only changes what an empty answer falls back to, and
where key files are written.

Examples:
  ssh-keygen-pro init
  ssh-keygen-pro init --user alice@example.com --algorithm ed25519
  ssh-keygen-pro init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			User:           initUserFlag,
			Algorithm:      initAlgorithmFlag,
			Dir:            initDirFlag,
			Overwrite:      initForce,
			NonInteractive: !term.IsTerminal(int(os.Stdin.Fd())),
		})
	},
}

func init() {
	initCmd.Flags().StringVar(&initUserFlag, "user", "", "default user identifier to offer at the prompt")
	initCmd.Flags().StringVar(&initAlgorithmFlag, "algorithm", "", "default key algorithm (ed25519 or rsa)")
	initCmd.Flags().StringVar(&initDirFlag, "dir", "", "directory key files are written to")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	rootCmd.AddCommand(initCmd)
}

// InitOptions holds options for the init command.
type InitOptions struct {
	User           string // Pre-specified default user identifier
	Algorithm      string // Pre-specified default algorithm
	Dir            string // Pre-specified output directory
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use flags and defaults
}

// Init creates a new .ssh-keygen-pro.yaml configuration file in the
// current directory.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	user := opts.User
	algorithm := opts.Algorithm
	dir := opts.Dir

	if !opts.NonInteractive {
		algorithmOptions := make([]huh.Option[string], 0, len(algo.Names()))
		for _, name := range algo.Names() {
			algorithmOptions = append(algorithmOptions, huh.NewOption(name, name))
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Default user identifier").
					Description("Offered at the prompt when you don't pass one, usually an email address").
					Placeholder("alice@example.com").
					Value(&user),
			),
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Default key algorithm").
					Description("Offered at the prompt when you don't pass one").
					Options(algorithmOptions...).
					Value(&algorithm),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Output directory (optional)").
					Description("Where key files land; supports ~, ${USER} and ${HOME}. Empty means the current directory").
					Placeholder("~/.ssh").
					Value(&dir),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Pass values as flags instead: ssh-keygen-pro init --user <id> --algorithm <name>")
		}
	}

	// A configured algorithm must be one this tool can generate.
	if algorithm != "" {
		if _, err := algo.Map(algorithm); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Can't configure algorithm '%s'", algorithm),
				"Use one of: "+strings.Join(algo.Names(), ", "))
		}
	}

	// Build config
	cfg := config.DefaultConfig()
	cfg.User = user
	cfg.Algorithm = algorithm
	cfg.Dir = dir

	// Marshal to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	// Add a header comment
	header := `# ssh-keygen-pro configuration
# Values here seed the interactive prompts; command-line arguments
# and typed answers always win.
# See: https://github.com/SixArm/ssh-keygen-pro for documentation

`
	content := header + string(data)

	// Write config file
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  ssh-keygen-pro          - Generate a key pair using your defaults")
	fmt.Println("  ssh-keygen-pro doctor   - Check your environment")

	return nil
}
