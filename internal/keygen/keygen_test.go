package keygen

import (
	"errors"
	"io"
	"os"
	osexec "os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SixArm/ssh-keygen-pro/internal/algo"
	sshkgerrors "github.com/SixArm/ssh-keygen-pro/internal/errors"
	"github.com/SixArm/ssh-keygen-pro/internal/exec"
	"github.com/SixArm/ssh-keygen-pro/internal/logger"
	"github.com/SixArm/ssh-keygen-pro/internal/naming"
)

// fakeRunner records invocations instead of executing anything.
type fakeRunner struct {
	names     []string
	argLists  [][]string
	exitCodes []int // per call, defaults to 0
	startErr  error
}

func (f *fakeRunner) Run(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	if f.startErr != nil {
		return -1, f.startErr
	}
	f.names = append(f.names, name)
	f.argLists = append(f.argLists, append([]string(nil), args...))
	if n := len(f.names) - 1; n < len(f.exitCodes) {
		return f.exitCodes[n], nil
	}
	return 0, nil
}

func testRequest(t *testing.T, algorithm string) Request {
	t.Helper()
	params, err := algo.Map(algorithm)
	require.NoError(t, err)
	return Request{
		UserID:    "alice@example.com",
		UniqueID:  "8af247255f409533f43c14cae2c07b97",
		Algorithm: algorithm,
		Params:    params,
	}
}

func newTestGenerator(runner exec.Runner) *Generator {
	g := New("ssh-keygen", runner)
	g.SetStreams(strings.NewReader(""), io.Discard, io.Discard)
	g.SetLogger(logger.Noop())
	return g
}

func TestGenerate_Ed25519Arguments(t *testing.T) {
	runner := &fakeRunner{}
	g := newTestGenerator(runner)

	pairs, err := g.Generate(testRequest(t, algo.Ed25519))

	require.NoError(t, err)
	require.Len(t, pairs, 2)
	require.Len(t, runner.argLists, 2)

	stemPass := "alice@example.com=8af247255f409533f43c14cae2c07b97=ssh-ed25519-with-passphrase"
	stemAuto := "alice@example.com=8af247255f409533f43c14cae2c07b97=ssh-ed25519-with-automation"

	assert.Equal(t, []string{"-t", "ed25519", "-a", "100", "-C", stemPass, "-f", stemPass}, runner.argLists[0])
	assert.Equal(t, []string{"-t", "ed25519", "-a", "100", "-C", stemAuto, "-f", stemAuto, "-N", ""}, runner.argLists[1])
}

func TestGenerate_RSAArguments(t *testing.T) {
	runner := &fakeRunner{}
	g := newTestGenerator(runner)

	_, err := g.Generate(testRequest(t, algo.RSA))

	require.NoError(t, err)
	require.Len(t, runner.argLists, 2)

	stemPass := "alice@example.com=8af247255f409533f43c14cae2c07b97=ssh-rsa-with-passphrase"

	assert.Equal(t, []string{"-t", "rsa", "-b", "4096", "-C", stemPass, "-f", stemPass}, runner.argLists[0])
	assert.NotContains(t, runner.argLists[0], "-a")
	assert.NotContains(t, runner.argLists[1], "-a")
}

func TestGenerate_PassphraseVariantRunsFirst(t *testing.T) {
	runner := &fakeRunner{}
	g := newTestGenerator(runner)

	pairs, err := g.Generate(testRequest(t, algo.Ed25519))

	require.NoError(t, err)
	assert.Equal(t, naming.WithPassphrase, pairs[0].Variant)
	assert.Equal(t, naming.WithAutomation, pairs[1].Variant)
	assert.Contains(t, runner.argLists[0][5], "with-passphrase")
	assert.Contains(t, runner.argLists[1][5], "with-automation")
}

func TestGenerate_EmptyPassphraseOnlyForAutomation(t *testing.T) {
	runner := &fakeRunner{}
	g := newTestGenerator(runner)

	_, err := g.Generate(testRequest(t, algo.Ed25519))

	require.NoError(t, err)
	assert.NotContains(t, runner.argLists[0], "-N")
	require.Contains(t, runner.argLists[1], "-N")

	// The directive's value is the empty string.
	args := runner.argLists[1]
	last := len(args) - 1
	assert.Equal(t, "-N", args[last-1])
	assert.Equal(t, "", args[last])
}

func TestGenerate_ExtraArgsForwardedToBothRuns(t *testing.T) {
	runner := &fakeRunner{}
	g := newTestGenerator(runner)

	req := testRequest(t, algo.Ed25519)
	req.ExtraArgs = []string{"-Z", "aes256-gcm@openssh.com", "-v"}

	_, err := g.Generate(req)

	require.NoError(t, err)
	for _, args := range runner.argLists {
		n := len(args)
		assert.Equal(t, []string{"-Z", "aes256-gcm@openssh.com", "-v"}, args[n-3:])
	}
}

func TestGenerate_OutputDirPrefixesPathNotComment(t *testing.T) {
	runner := &fakeRunner{}
	g := newTestGenerator(runner)

	req := testRequest(t, algo.Ed25519)
	req.Dir = "/tmp/keys"

	pairs, err := g.Generate(req)

	require.NoError(t, err)

	stem := "alice@example.com=8af247255f409533f43c14cae2c07b97=ssh-ed25519-with-passphrase"
	args := runner.argLists[0]

	// -C carries the bare stem, -f the directory-qualified path.
	assert.Equal(t, stem, args[5])
	assert.Equal(t, filepath.Join("/tmp/keys", stem), args[7])
	assert.Equal(t, filepath.Join("/tmp/keys", stem), pairs[0].PrivatePath)
	assert.Equal(t, filepath.Join("/tmp/keys", stem)+".pub", pairs[0].PublicPath)
}

func TestGenerate_ReportsFourPaths(t *testing.T) {
	runner := &fakeRunner{}
	g := newTestGenerator(runner)

	pairs, err := g.Generate(testRequest(t, algo.Ed25519))

	require.NoError(t, err)
	require.Len(t, pairs, 2)

	seen := map[string]bool{}
	for _, pair := range pairs {
		seen[pair.PrivatePath] = true
		seen[pair.PublicPath] = true
		assert.Equal(t, pair.PrivatePath+PublicKeySuffix, pair.PublicPath)
	}
	assert.Len(t, seen, 4, "the four reported paths must be distinct")
}

func TestGenerate_FailsFastOnFirstVariant(t *testing.T) {
	runner := &fakeRunner{exitCodes: []int{1}}
	g := newTestGenerator(runner)

	pairs, err := g.Generate(testRequest(t, algo.Ed25519))

	require.Error(t, err)
	assert.Nil(t, pairs)
	assert.Len(t, runner.argLists, 1, "second variant must not run after a failure")

	code, ok := sshkgerrors.GetExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 1, code)
}

func TestGenerate_SecondVariantFailurePropagatesExitCode(t *testing.T) {
	runner := &fakeRunner{exitCodes: []int{0, 3}}
	g := newTestGenerator(runner)

	_, err := g.Generate(testRequest(t, algo.Ed25519))

	require.Error(t, err)
	assert.Len(t, runner.argLists, 2)

	code, ok := sshkgerrors.GetExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 3, code)
	assert.Contains(t, err.Error(), "automation")
}

func TestGenerate_StartFailurePropagates(t *testing.T) {
	startErr := errors.New("no such binary")
	runner := &fakeRunner{startErr: startErr}
	g := newTestGenerator(runner)

	_, err := g.Generate(testRequest(t, algo.Ed25519))

	require.Error(t, err)
	assert.ErrorIs(t, err, startErr)
}

func TestNew_EmptyBinFallsBackToDefault(t *testing.T) {
	runner := &fakeRunner{}
	g := New("", runner)
	g.SetStreams(strings.NewReader(""), io.Discard, io.Discard)
	g.SetLogger(logger.Noop())

	_, err := g.Generate(testRequest(t, algo.Ed25519))

	require.NoError(t, err)
	require.NotEmpty(t, runner.names)
	assert.Equal(t, DefaultBin, runner.names[0])
}

// requireSSHKeygen skips the test when the real binary isn't available.
func requireSSHKeygen(t *testing.T) {
	t.Helper()
	if _, err := osexec.LookPath("ssh-keygen"); err != nil {
		t.Skip("ssh-keygen not found in PATH, skipping integration test")
	}
}

func TestGenerateVariant_AutomationWithRealSSHKeygen(t *testing.T) {
	requireSSHKeygen(t)

	tempDir := t.TempDir()
	g := newTestGenerator(exec.NewLocal())

	req := testRequest(t, algo.Ed25519)
	req.Dir = tempDir

	pair, err := g.generateVariant(req, naming.WithAutomation)
	require.NoError(t, err)

	// Both halves exist on disk.
	_, err = os.Stat(pair.PrivatePath)
	require.NoError(t, err)
	_, err = os.Stat(pair.PublicPath)
	require.NoError(t, err)

	// ssh-keygen embedded the stem as the key comment.
	pub, err := os.ReadFile(pair.PublicPath)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(string(pub)), pair.Stem),
		"public key comment should be the stem: %s", string(pub))
}

func TestGenerate_BothVariantsWithRealSSHKeygen(t *testing.T) {
	requireSSHKeygen(t)

	tempDir := t.TempDir()
	g := New("ssh-keygen", exec.NewLocal())
	g.SetLogger(logger.Noop())
	// Without a terminal ssh-keygen reads the passphrase and its
	// confirmation from stdin.
	g.SetStreams(strings.NewReader("correct horse battery\ncorrect horse battery\n"), io.Discard, io.Discard)

	req := testRequest(t, algo.Ed25519)
	req.Dir = tempDir

	pairs, err := g.Generate(req)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Len(t, entries, 4, "two private keys and two public keys")

	for _, pair := range pairs {
		_, err := os.Stat(pair.PrivatePath)
		assert.NoError(t, err)
		_, err = os.Stat(pair.PublicPath)
		assert.NoError(t, err)
	}
}
