package doctor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/SixArm/ssh-keygen-pro/internal/config"
)

// ConfigFileCheck reports whether a config file exists. No config at all is
// a pass: every setting has a built-in default.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return "CONFIG" }

func (c *ConfigFileCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Error finding config: %v", err),
			Suggestion: "Check file permissions or run 'ssh-keygen-pro init' to create a config",
		}
	}

	if path == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No config file (built-in defaults apply)",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", filepath.Base(path)),
	}
}

func (c *ConfigFileCheck) Fix() error {
	return nil
}

// ConfigValuesCheck verifies that a config file, if present, loads cleanly
// and carries values the generator can actually use.
type ConfigValuesCheck struct {
	ConfigPath string
}

func (c *ConfigValuesCheck) Name() string     { return "config_values" }
func (c *ConfigValuesCheck) Category() string { return "CONFIG" }

func (c *ConfigValuesCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil || path == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass, // Nothing to validate
			Message: "No config to validate",
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Failed to load config: %v", err),
			Suggestion: "Check the YAML syntax in your config file",
		}
	}

	if err := config.Validate(cfg); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Config error: %v", err),
			Suggestion: "Fix the configuration errors in " + filepath.Base(path),
		}
	}

	var details []string
	if cfg.Algorithm != "" {
		// Validate already ran this through the algorithm table; show the value.
		details = append(details, "algorithm: "+cfg.Algorithm)
	}
	if cfg.User != "" {
		details = append(details, "user: "+cfg.User)
	}
	if cfg.Dir != "" {
		details = append(details, "dir: "+cfg.Dir)
	}

	msg := "Config values valid"
	if len(details) > 0 {
		msg = fmt.Sprintf("Config values valid (%s)", strings.Join(details, ", "))
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: msg,
	}
}

func (c *ConfigValuesCheck) Fix() error {
	return nil // Config issues require manual intervention
}

// NewConfigChecks creates all config-related checks.
func NewConfigChecks(configPath string) []Check {
	return []Check{
		&ConfigFileCheck{ConfigPath: configPath},
		&ConfigValuesCheck{ConfigPath: configPath},
	}
}
