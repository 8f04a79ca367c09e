package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SixArm/ssh-keygen-pro/internal/errors"
)

func TestMap_Ed25519(t *testing.T) {
	params, err := Map("ed25519")

	require.NoError(t, err)
	assert.Equal(t, "ed25519", params.KeyType)
	assert.Equal(t, 100, params.KDFRounds)
	assert.Zero(t, params.BitLength, "ed25519 takes KDF rounds, not a bit length")
}

func TestMap_RSA(t *testing.T) {
	params, err := Map("rsa")

	require.NoError(t, err)
	assert.Equal(t, "rsa", params.KeyType)
	assert.Equal(t, 4096, params.BitLength)
	assert.Zero(t, params.KDFRounds, "rsa takes a bit length, not KDF rounds")
}

func TestMap_Unrecognized(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
	}{
		{name: "dsa is rejected", algorithm: "dsa"},
		{name: "ecdsa is rejected", algorithm: "ecdsa"},
		{name: "empty string is rejected", algorithm: ""},
		{name: "uppercase is rejected", algorithm: "ED25519"},
		{name: "padded name is rejected", algorithm: " ed25519"},
		{name: "arbitrary value is rejected", algorithm: "quantum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Map(tt.algorithm)

			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrAlgo))
			assert.Contains(t, err.Error(), "'"+tt.algorithm+"'",
				"error should name the offending value")
		})
	}
}

func TestMap_SuggestsCloseMatches(t *testing.T) {
	tests := []struct {
		name       string
		algorithm  string
		wantInErr  string
		wantAbsent string
	}{
		{
			name:      "digit typo suggests ed25519",
			algorithm: "ed25518",
			wantInErr: "Did you mean 'ed25519'?",
		},
		{
			name:      "dsa suggests rsa",
			algorithm: "dsa",
			wantInErr: "Did you mean 'rsa'?",
		},
		{
			name:      "uppercase suggests lowercase form",
			algorithm: "ED25519",
			wantInErr: "Did you mean 'ed25519'?",
		},
		{
			name:       "nothing close omits the did-you-mean",
			algorithm:  "quantum",
			wantAbsent: "Did you mean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Map(tt.algorithm)
			require.Error(t, err)

			if tt.wantInErr != "" {
				assert.Contains(t, err.Error(), tt.wantInErr)
			}
			if tt.wantAbsent != "" {
				assert.NotContains(t, err.Error(), tt.wantAbsent)
			}
			assert.Contains(t, err.Error(), "Pick from: ed25519, rsa",
				"the full list should always be offered")
		})
	}
}

func TestMap_ExactlyOneStrengthParameter(t *testing.T) {
	// Every recognized algorithm carries exactly one strength parameter.
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			params, err := Map(name)
			require.NoError(t, err)

			hasRounds := params.KDFRounds > 0
			hasBits := params.BitLength > 0
			assert.NotEqual(t, hasRounds, hasBits,
				"exactly one of KDFRounds/BitLength should be set")
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()

	require.Len(t, names, 2, "the recognized set is closed at two algorithms")
	assert.Equal(t, Default, names[0], "default algorithm should be listed first")
	assert.Equal(t, []string{"ed25519", "rsa"}, names)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "ed25519", Default)

	// The default must always map cleanly.
	_, err := Map(Default)
	assert.NoError(t, err)
}
