package doctor

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kevinburke/ssh_config"
)

// SSHDirCheck verifies ~/.ssh exists with sane permissions. Keys usually
// land there, and OpenSSH refuses group/world-accessible key material.
type SSHDirCheck struct{}

func (c *SSHDirCheck) Name() string     { return "ssh_dir" }
func (c *SSHDirCheck) Category() string { return "ENVIRONMENT" }

func (c *SSHDirCheck) Run() CheckResult {
	home, err := os.UserHomeDir()
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Cannot determine home directory",
			Suggestion: "Check HOME environment variable",
		}
	}

	sshDir := filepath.Join(home, ".ssh")
	info, err := os.Stat(sshDir)
	if err != nil {
		if os.IsNotExist(err) {
			return CheckResult{
				Name:       c.Name(),
				Status:     StatusWarn,
				Message:    "~/.ssh does not exist",
				Suggestion: "Create it with: mkdir -m 700 ~/.ssh",
				Fixable:    true,
			}
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot access ~/.ssh: %v", err),
			Suggestion: "Check directory permissions",
		}
	}

	if !info.IsDir() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "~/.ssh exists but is not a directory",
			Suggestion: "Move the file aside and create the directory: mkdir -m 700 ~/.ssh",
		}
	}

	perm := info.Mode().Perm()
	if perm&0077 != 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("~/.ssh has loose permissions (%o)", perm),
			Suggestion: "Fix: chmod 700 ~/.ssh",
			Fixable:    true,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "~/.ssh exists with correct permissions",
	}
}

func (c *SSHDirCheck) Fix() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	sshDir := filepath.Join(home, ".ssh")
	info, err := os.Stat(sshDir)
	if err != nil {
		if os.IsNotExist(err) {
			return os.Mkdir(sshDir, 0700)
		}
		return err
	}

	if info.Mode().Perm()&0077 != 0 {
		if err := os.Chmod(sshDir, 0700); err != nil {
			return fmt.Errorf("failed to fix permissions on %s: %w", sshDir, err)
		}
	}

	return nil
}

// SSHConfigParseCheck verifies ~/.ssh/config parses, when one exists.
// Generation doesn't read it, but a broken config usually surfaces the
// moment someone tries to use the new keys.
type SSHConfigParseCheck struct {
	// Path overrides the config location, for tests. Empty means ~/.ssh/config.
	Path string
}

func (c *SSHConfigParseCheck) Name() string     { return "ssh_config_parse" }
func (c *SSHConfigParseCheck) Category() string { return "ENVIRONMENT" }

func (c *SSHConfigParseCheck) Run() CheckResult {
	path := c.Path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return CheckResult{
				Name:    c.Name(),
				Status:  StatusPass, // Skip if we can't locate it
				Message: "Cannot locate ssh config",
			}
		}
		path = filepath.Join(home, ".ssh", "config")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return CheckResult{
				Name:    c.Name(),
				Status:  StatusPass,
				Message: "No ssh config (nothing to parse)",
			}
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Cannot read ssh config: %v", err),
			Suggestion: "Check permissions on " + path,
		}
	}

	cfg, err := ssh_config.Decode(bytes.NewReader(content))
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("ssh config has syntax errors: %v", err),
			Suggestion: "Fix the syntax in " + path,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("ssh config parses (%d host block%s)", len(cfg.Hosts), pluralize(len(cfg.Hosts))),
	}
}

func (c *SSHConfigParseCheck) Fix() error {
	return nil // Syntax errors require manual intervention
}

// RandomSourceCheck verifies the system random source works. Unique IDs
// come from crypto/rand, so a broken source blocks generation entirely.
type RandomSourceCheck struct{}

func (c *RandomSourceCheck) Name() string     { return "random_source" }
func (c *RandomSourceCheck) Category() string { return "ENVIRONMENT" }

func (c *RandomSourceCheck) Run() CheckResult {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("System random source failed: %v", err),
			Suggestion: "Check /dev/urandom is available",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "System random source OK",
	}
}

func (c *RandomSourceCheck) Fix() error {
	return nil
}

// NewEnvChecks creates all environment checks.
func NewEnvChecks() []Check {
	return []Check{
		&SSHDirCheck{},
		&SSHConfigParseCheck{},
		&RandomSourceCheck{},
	}
}
