package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .ssh-keygen-pro.yaml configuration file.
//
// Everything here is optional. Config values only change what prompts
// offer as defaults and where files land; they never override an explicit
// command-line argument.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// User is the default user identifier offered at the prompt,
	// typically an email address.
	User string `yaml:"user" mapstructure:"user"`

	// Algorithm is the default key algorithm offered at the prompt.
	Algorithm string `yaml:"algorithm" mapstructure:"algorithm"`

	// Dir is the directory key files are written to. Supports ~, ${USER}
	// and ${HOME}. Empty means the current directory.
	Dir string `yaml:"dir" mapstructure:"dir"`

	// KeygenBin overrides the ssh-keygen executable, e.g. a full path to
	// a specific build.
	KeygenBin string `yaml:"keygen_bin" mapstructure:"keygen_bin"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:   CurrentConfigVersion,
		KeygenBin: "ssh-keygen",
	}
}
