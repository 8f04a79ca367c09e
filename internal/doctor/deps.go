package doctor

import (
	"fmt"
	osexec "os/exec"
	"regexp"
	"strings"

	"github.com/SixArm/ssh-keygen-pro/internal/exec"
)

// KeygenBinaryCheck verifies the ssh-keygen binary is available.
type KeygenBinaryCheck struct {
	// Bin is the binary to look for, typically "ssh-keygen" or the
	// keygen_bin override from config.
	Bin string
}

func (c *KeygenBinaryCheck) Name() string     { return "keygen_binary" }
func (c *KeygenBinaryCheck) Category() string { return "DEPENDENCIES" }

func (c *KeygenBinaryCheck) Run() CheckResult {
	bin := c.Bin
	if bin == "" {
		bin = "ssh-keygen"
	}

	path, err := osexec.LookPath(bin)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s not found", bin),
			Suggestion: "Install OpenSSH: brew install openssh (macOS) or apt install openssh-client (Linux)",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s found at %s", bin, path),
	}
}

func (c *KeygenBinaryCheck) Fix() error {
	return nil // System package installation is out of scope
}

// OpenSSHVersionCheck reports the installed OpenSSH version.
type OpenSSHVersionCheck struct {
	// Runner executes the probe. Nil means run locally.
	Runner exec.Runner
}

func (c *OpenSSHVersionCheck) Name() string     { return "openssh_version" }
func (c *OpenSSHVersionCheck) Category() string { return "DEPENDENCIES" }

func (c *OpenSSHVersionCheck) Run() CheckResult {
	runner := c.Runner
	if runner == nil {
		runner = exec.NewLocal()
	}

	// ssh -V prints its banner on stderr.
	stdout, stderr, exitCode, err := exec.Capture(runner, "ssh", []string{"-V"})
	if err != nil || exitCode != 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Cannot determine OpenSSH version",
			Suggestion: "Run 'ssh -V' to check your OpenSSH installation",
		}
	}

	version := parseOpenSSHVersion(string(stdout) + string(stderr))
	if version == "unknown" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: "Unrecognized ssh version output",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("OpenSSH %s", version),
	}
}

func (c *OpenSSHVersionCheck) Fix() error {
	return nil
}

// parseOpenSSHVersion extracts the version from ssh -V output.
func parseOpenSSHVersion(output string) string {
	// ssh -V output: "OpenSSH_9.6p1 Ubuntu-3ubuntu13, OpenSSL 3.0.13 30 Jan 2024"
	re := regexp.MustCompile(`OpenSSH_(\d+\.\d+\w*)`)
	matches := re.FindStringSubmatch(output)
	if len(matches) >= 2 {
		return matches[1]
	}

	// Fallback: look for any version-like pattern on the first line
	re = regexp.MustCompile(`(\d+\.\d+\.?\d*)`)
	matches = re.FindStringSubmatch(strings.Split(output, "\n")[0])
	if len(matches) >= 1 {
		return matches[1]
	}

	return "unknown"
}

// NewDepsChecks creates all dependency checks. keygenBin is the configured
// ssh-keygen binary, or empty for the default.
func NewDepsChecks(keygenBin string) []Check {
	return []Check{
		&KeygenBinaryCheck{Bin: keygenBin},
		&OpenSSHVersionCheck{},
	}
}
