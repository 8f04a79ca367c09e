package config

import (
	"fmt"
	"strings"

	"github.com/SixArm/ssh-keygen-pro/internal/algo"
	"github.com/SixArm/ssh-keygen-pro/internal/errors"
)

// Validate checks the config for values that can't work. Loading doesn't
// validate; a bad configured default only matters if a command is about
// to rely on it, so callers decide when to validate.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but ssh-keygen-pro only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest ssh-keygen-pro: https://github.com/SixArm/ssh-keygen-pro/releases")
	}

	// A configured default algorithm has to be one we can hand to
	// ssh-keygen with known strength parameters.
	if cfg.Algorithm != "" {
		if _, err := algo.Map(cfg.Algorithm); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Config sets algorithm '%s', which this tool can't generate", cfg.Algorithm),
				"Use one of: "+strings.Join(algo.Names(), ", "))
		}
	}

	// Dir is expanded at load time, so anything ${...} left over is a
	// variable we don't know about.
	if strings.Contains(cfg.Dir, "${") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Config dir has an unexpanded variable: %s", cfg.Dir),
			"Only ${USER} and ${HOME} are supported in dir.")
	}

	return nil
}
