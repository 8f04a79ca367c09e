package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePairs() []KeyPairReport {
	return []KeyPairReport{
		{
			Label:       "passphrase",
			PrivatePath: "alice@example.com=0123456789abcdef0123456789abcdef=ssh-ed25519-with-passphrase",
			PublicPath:  "alice@example.com=0123456789abcdef0123456789abcdef=ssh-ed25519-with-passphrase.pub",
		},
		{
			Label:       "automation",
			PrivatePath: "alice@example.com=0123456789abcdef0123456789abcdef=ssh-ed25519-with-automation",
			PublicPath:  "alice@example.com=0123456789abcdef0123456789abcdef=ssh-ed25519-with-automation.pub",
		},
	}
}

func TestRenderReport_ListsAllPaths(t *testing.T) {
	pairs := samplePairs()
	out := RenderReport(pairs)

	for _, pair := range pairs {
		assert.Contains(t, out, pair.PrivatePath)
		assert.Contains(t, out, pair.PublicPath)
	}
}

func TestRenderReport_CountsFiles(t *testing.T) {
	out := RenderReport(samplePairs())

	assert.Contains(t, out, "Generated 4 key files")
	assert.Contains(t, out, SymbolSuccess)
}

func TestRenderReport_SinglePairCountsTwoFiles(t *testing.T) {
	out := RenderReport(samplePairs()[:1])

	assert.Contains(t, out, "Generated 2 key files")
}

func TestRenderReport_VariantHeadings(t *testing.T) {
	out := RenderReport(samplePairs())

	assert.Contains(t, out, "with passphrase")
	assert.Contains(t, out, "with automation")
}

func TestRenderReport_OrderFollowsInput(t *testing.T) {
	out := RenderReport(samplePairs())

	passphraseAt := strings.Index(out, "with passphrase")
	automationAt := strings.Index(out, "with automation")
	require.GreaterOrEqual(t, passphraseAt, 0)
	require.GreaterOrEqual(t, automationAt, 0)
	assert.Less(t, passphraseAt, automationAt,
		"passphrase variant should be reported before automation")
}

func TestRenderReport_PrivateBeforePublic(t *testing.T) {
	pairs := samplePairs()
	out := RenderReport(pairs)

	privateAt := strings.Index(out, pairs[0].PrivatePath)
	publicAt := strings.Index(out, pairs[0].PublicPath)
	assert.Less(t, privateAt, publicAt,
		"private path should be listed before its public counterpart")
}

func TestRenderReport_Empty(t *testing.T) {
	assert.Empty(t, RenderReport(nil))
	assert.Empty(t, RenderReport([]KeyPairReport{}))
}
