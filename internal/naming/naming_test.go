package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStem(t *testing.T) {
	tests := []struct {
		name      string
		userID    string
		uniqueID  string
		algorithm string
		variant   Variant
		want      string
	}{
		{
			name:      "ed25519 passphrase variant",
			userID:    "alice@example.com",
			uniqueID:  "8af247255f409533f43c14cae2c07b97",
			algorithm: "ed25519",
			variant:   WithPassphrase,
			want:      "alice@example.com=8af247255f409533f43c14cae2c07b97=ssh-ed25519-with-passphrase",
		},
		{
			name:      "ed25519 automation variant",
			userID:    "alice@example.com",
			uniqueID:  "8af247255f409533f43c14cae2c07b97",
			algorithm: "ed25519",
			variant:   WithAutomation,
			want:      "alice@example.com=8af247255f409533f43c14cae2c07b97=ssh-ed25519-with-automation",
		},
		{
			name:      "rsa passphrase variant",
			userID:    "bob@example.com",
			uniqueID:  "0123456789abcdef0123456789abcdef",
			algorithm: "rsa",
			variant:   WithPassphrase,
			want:      "bob@example.com=0123456789abcdef0123456789abcdef=ssh-rsa-with-passphrase",
		},
		{
			name:      "non-email identifier used verbatim",
			userID:    "build server 01",
			uniqueID:  "deadbeefdeadbeefdeadbeefdeadbeef",
			algorithm: "ed25519",
			variant:   WithAutomation,
			want:      "build server 01=deadbeefdeadbeefdeadbeefdeadbeef=ssh-ed25519-with-automation",
		},
		{
			name:      "identifier containing separator is not escaped",
			userID:    "a=b",
			uniqueID:  "deadbeefdeadbeefdeadbeefdeadbeef",
			algorithm: "ed25519",
			variant:   WithPassphrase,
			want:      "a=b=deadbeefdeadbeefdeadbeefdeadbeef=ssh-ed25519-with-passphrase",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stem(tt.userID, tt.uniqueID, tt.algorithm, tt.variant)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVariantLabel(t *testing.T) {
	assert.Equal(t, "passphrase", WithPassphrase.Label())
	assert.Equal(t, "automation", WithAutomation.Label())
	assert.Equal(t, "unknown", Variant(99).Label())
}

func TestVariants_GenerationOrder(t *testing.T) {
	variants := Variants()

	require.Len(t, variants, 2)
	assert.Equal(t, WithPassphrase, variants[0], "passphrase key is generated first")
	assert.Equal(t, WithAutomation, variants[1])
}

func TestSplit_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		userID    string
		uniqueID  string
		algorithm string
		variant   Variant
	}{
		{
			name:      "ed25519 passphrase",
			userID:    "alice@example.com",
			uniqueID:  "8af247255f409533f43c14cae2c07b97",
			algorithm: "ed25519",
			variant:   WithPassphrase,
		},
		{
			name:      "rsa automation",
			userID:    "bob@example.com",
			uniqueID:  "0123456789abcdef0123456789abcdef",
			algorithm: "rsa",
			variant:   WithAutomation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem := Stem(tt.userID, tt.uniqueID, tt.algorithm, tt.variant)

			fields, err := Split(stem)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, fields.UserID)
			assert.Equal(t, tt.uniqueID, fields.UniqueID)
			assert.Equal(t, tt.algorithm, fields.Algorithm)
			assert.Equal(t, tt.variant, fields.Variant)
		})
	}
}

func TestSplit_AmbiguousStem(t *testing.T) {
	// A user identifier containing '=' produces extra fields; Split refuses
	// to guess where the identifier ends.
	stem := Stem("a=b", "deadbeefdeadbeefdeadbeefdeadbeef", "ed25519", WithPassphrase)

	_, err := Split(stem)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestSplit_Malformed(t *testing.T) {
	tests := []struct {
		name string
		stem string
	}{
		{name: "too few fields", stem: "alice@example.com=ssh-ed25519-with-passphrase"},
		{name: "no ssh prefix", stem: "a=b=ed25519-with-passphrase"},
		{name: "missing variant marker", stem: "a=b=ssh-ed25519-passphrase"},
		{name: "unknown variant label", stem: "a=b=ssh-ed25519-with-backup"},
		{name: "empty string", stem: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(tt.stem)
			assert.Error(t, err)
		})
	}
}

func TestSplit_VariantLabelsOnly(t *testing.T) {
	// "-with-" may also appear inside the algorithm segment of hypothetical
	// names; the first occurrence wins and the remainder must be a known label.
	_, err := Split("u=n=ssh-algo-with-extra-with-passphrase")
	assert.Error(t, err)
}
