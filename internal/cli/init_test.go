package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SixArm/ssh-keygen-pro/internal/config"
)

func TestInit_NonInteractive_CreatesConfig(t *testing.T) {
	tmpDir := t.TempDir()
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	err := os.Chdir(tmpDir)
	require.NoError(t, err)

	// Isolate from real user config
	t.Setenv("HOME", tmpDir)

	opts := InitOptions{
		NonInteractive: true,
		User:           "alice@example.com",
		Algorithm:      "ed25519",
		Dir:            "~/.ssh",
	}

	err = Init(opts)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, config.ConfigFileName)
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.Contains(t, string(content), "version: 1")
	assert.Contains(t, string(content), "alice@example.com")
	assert.Contains(t, string(content), "ed25519")
	assert.Contains(t, string(content), "~/.ssh")

	// The written file must load and validate cleanly.
	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))
	assert.Equal(t, "alice@example.com", cfg.User)
	assert.Equal(t, "ed25519", cfg.Algorithm)
}

func TestInit_NonInteractive_EmptyFlagsCreateMinimalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	err := os.Chdir(tmpDir)
	require.NoError(t, err)

	t.Setenv("HOME", tmpDir)

	err = Init(InitOptions{NonInteractive: true})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(tmpDir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), "version: 1")

	// Empty values must still load to a usable config with defaults.
	cfg, err := config.Load(filepath.Join(tmpDir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, "ssh-keygen", cfg.KeygenBin)
}

func TestInit_NonInteractive_ConfigExists(t *testing.T) {
	tmpDir := t.TempDir()
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	err := os.Chdir(tmpDir)
	require.NoError(t, err)

	t.Setenv("HOME", tmpDir)

	// Create existing config
	configPath := filepath.Join(tmpDir, config.ConfigFileName)
	err = os.WriteFile(configPath, []byte("existing: config"), 0644)
	require.NoError(t, err)

	opts := InitOptions{
		NonInteractive: true,
		User:           "alice@example.com",
		Overwrite:      false, // Don't overwrite
	}

	err = Init(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_NonInteractive_ForceOverwrite(t *testing.T) {
	tmpDir := t.TempDir()
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	err := os.Chdir(tmpDir)
	require.NoError(t, err)

	t.Setenv("HOME", tmpDir)

	// Create existing config
	configPath := filepath.Join(tmpDir, config.ConfigFileName)
	err = os.WriteFile(configPath, []byte("existing: config"), 0644)
	require.NoError(t, err)

	opts := InitOptions{
		NonInteractive: true,
		User:           "alice@example.com",
		Overwrite:      true, // Force overwrite
	}

	err = Init(opts)
	require.NoError(t, err)

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "alice@example.com")
	assert.NotContains(t, string(content), "existing: config")
}

func TestInit_NonInteractive_RejectsUnknownAlgorithm(t *testing.T) {
	tmpDir := t.TempDir()
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	err := os.Chdir(tmpDir)
	require.NoError(t, err)

	t.Setenv("HOME", tmpDir)

	opts := InitOptions{
		NonInteractive: true,
		Algorithm:      "dsa",
	}

	err = Init(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dsa")

	// Nothing should have been written.
	_, err = os.Stat(filepath.Join(tmpDir, config.ConfigFileName))
	assert.True(t, os.IsNotExist(err), "no config file should exist after a rejected init")
}

func TestInitCommandFlags(t *testing.T) {
	for _, name := range []string{"user", "algorithm", "dir", "force"} {
		assert.NotNil(t, initCmd.Flags().Lookup(name), "init flag %s", name)
	}
}
