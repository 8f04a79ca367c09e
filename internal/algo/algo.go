// Package algo maps symbolic key-algorithm names to the concrete
// ssh-keygen generation parameters for each.
package algo

import (
	"fmt"
	"strings"

	"github.com/SixArm/ssh-keygen-pro/internal/errors"
	"github.com/SixArm/ssh-keygen-pro/internal/util"
)

// Recognized algorithm names.
const (
	Ed25519 = "ed25519"
	RSA     = "rsa"
)

// Default is the algorithm used when the operator doesn't choose one.
// Ed25519 is the strongest-by-default choice among the recognized set.
const Default = Ed25519

// Params holds the concrete generation parameters for an algorithm.
// Exactly one of KDFRounds and BitLength is non-zero: ed25519 keys take a
// KDF round count (-a), RSA keys take a modulus bit length (-b).
type Params struct {
	KeyType   string
	KDFRounds int
	BitLength int
}

// table is deliberately closed: unknown names must fail, never fall back
// to a different algorithm.
var table = map[string]Params{
	Ed25519: {KeyType: "ed25519", KDFRounds: 100},
	RSA:     {KeyType: "rsa", BitLength: 4096},
}

// Map resolves an algorithm name to its generation parameters via
// exact-match lookup. Unrecognized names are a terminal error naming the
// offending value; silently substituting a different cryptographic
// algorithm would be unsafe, so there is no default here.
func Map(algorithm string) (Params, error) {
	params, ok := table[algorithm]
	if !ok {
		suggestion := fmt.Sprintf("Pick from: %s", strings.Join(Names(), ", "))
		if similar := util.SuggestSimilar(algorithm, Names(), 3); len(similar) > 0 {
			suggestion = fmt.Sprintf("Did you mean '%s'? %s", similar[0], suggestion)
		}
		return Params{}, errors.New(errors.ErrAlgo,
			fmt.Sprintf("'%s' isn't a recognized algorithm", algorithm),
			suggestion)
	}
	return params, nil
}

// Names returns the recognized algorithm names, default first.
func Names() []string {
	return []string{Ed25519, RSA}
}
