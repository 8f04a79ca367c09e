// Package naming derives the deterministic stem that names a generated key
// pair. The stem doubles as the key's embedded comment and its file path
// prefix, so inspecting a key's metadata reveals its own naming lineage.
package naming

import (
	"fmt"
	"strings"

	"github.com/SixArm/ssh-keygen-pro/internal/errors"
)

// Separator joins the stem fields. '=' cannot appear in a well-formed
// email-shaped user identifier, which keeps stems splittable. Identifiers
// are not escaped or validated: one that contains '=' produces an ambiguous
// stem. Known limitation, kept deliberately.
const Separator = "="

// Variant selects between the two keys generated per run.
type Variant int

const (
	// WithPassphrase lets ssh-keygen solicit a passphrase from the operator.
	WithPassphrase Variant = iota
	// WithAutomation passes an explicitly empty passphrase for unattended use.
	WithAutomation
)

// Label returns the variant's stem label.
func (v Variant) Label() string {
	switch v {
	case WithPassphrase:
		return "passphrase"
	case WithAutomation:
		return "automation"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	return v.Label()
}

// Variants returns both variants in generation order: the passphrase key is
// always produced before the automation key.
func Variants() []Variant {
	return []Variant{WithPassphrase, WithAutomation}
}

// Stem builds the naming stem for one key variant:
//
//	{user}={unique}=ssh-{algorithm}-with-{passphrase|automation}
//
// The inputs are used verbatim.
func Stem(userID, uniqueID, algorithm string, variant Variant) string {
	return strings.Join([]string{
		userID,
		uniqueID,
		fmt.Sprintf("ssh-%s-with-%s", algorithm, variant.Label()),
	}, Separator)
}

// Fields holds a stem split back into its parts.
type Fields struct {
	UserID    string
	UniqueID  string
	Algorithm string
	Variant   Variant
}

// Split is the inverse of Stem. A stem whose user identifier contained the
// separator is ambiguous and rejected rather than guessed at.
func Split(stem string) (Fields, error) {
	parts := strings.Split(stem, Separator)
	if len(parts) > 3 {
		return Fields{}, errors.New(errors.ErrInput,
			fmt.Sprintf("'%s' is ambiguous: it has %d '%s'-separated fields instead of 3", stem, len(parts), Separator),
			"The user identifier probably contained the separator character")
	}
	if len(parts) < 3 {
		return Fields{}, errors.New(errors.ErrInput,
			fmt.Sprintf("'%s' doesn't look like a generated key name", stem),
			"Expected {user}={unique}=ssh-{algorithm}-with-{variant}")
	}

	algorithm, variant, err := parseSuffix(parts[2])
	if err != nil {
		return Fields{}, err
	}

	return Fields{
		UserID:    parts[0],
		UniqueID:  parts[1],
		Algorithm: algorithm,
		Variant:   variant,
	}, nil
}

// parseSuffix decodes the trailing "ssh-{algorithm}-with-{label}" field.
func parseSuffix(s string) (string, Variant, error) {
	rest, ok := strings.CutPrefix(s, "ssh-")
	if !ok {
		return "", 0, errors.New(errors.ErrInput,
			fmt.Sprintf("'%s' doesn't start with 'ssh-'", s),
			"Expected ssh-{algorithm}-with-{variant}")
	}

	algorithm, label, ok := strings.Cut(rest, "-with-")
	if !ok {
		return "", 0, errors.New(errors.ErrInput,
			fmt.Sprintf("'%s' is missing the '-with-' variant marker", s),
			"Expected ssh-{algorithm}-with-{variant}")
	}

	switch label {
	case WithPassphrase.Label():
		return algorithm, WithPassphrase, nil
	case WithAutomation.Label():
		return algorithm, WithAutomation, nil
	default:
		return "", 0, errors.New(errors.ErrInput,
			fmt.Sprintf("'%s' isn't a known key variant", label),
			"Expected 'passphrase' or 'automation'")
	}
}
