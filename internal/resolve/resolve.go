// Package resolve obtains the three generation inputs in a fixed order:
// user identifier, then unique identifier, then algorithm. Each input
// comes from its positional argument when one was given, otherwise from a
// prompt whose empty answer selects a computed default. Resolution never
// rejects a value; whether an algorithm is usable is decided later.
package resolve

import (
	"strings"

	"github.com/SixArm/ssh-keygen-pro/internal/algo"
	"github.com/SixArm/ssh-keygen-pro/internal/logger"
)

// DefaultUserID stands in when the operator supplies no user identifier
// at all. It is deliberately a placeholder, not a guess at identity.
const DefaultUserID = "example@example.com"

// Inputs is the resolved triple. All fields are non-empty.
type Inputs struct {
	UserID    string
	UniqueID  string
	Algorithm string
}

// Defaults overrides the built-in prompt defaults, typically from a
// config file. Zero values keep the built-ins: DefaultUserID for the
// user and algo.Default for the algorithm. The unique identifier's
// default is always a fresh token and cannot be configured.
type Defaults struct {
	UserID    string
	Algorithm string
}

// Resolver fills in whatever the command line left out.
type Resolver struct {
	prompter Prompter
	defaults Defaults
	log      logger.Logger
}

// NewResolver returns a Resolver that prompts through prompter.
func NewResolver(prompter Prompter, defaults Defaults) *Resolver {
	if defaults.UserID == "" {
		defaults.UserID = DefaultUserID
	}
	if defaults.Algorithm == "" {
		defaults.Algorithm = algo.Default
	}
	return &Resolver{
		prompter: prompter,
		defaults: defaults,
		log:      logger.NewEnvLogger("[resolve]"),
	}
}

// SetLogger replaces the debug logger.
func (r *Resolver) SetLogger(log logger.Logger) {
	r.log = log
}

// Resolve produces the input triple from the positional arguments in
// user, unique, algorithm order. A present argument is used verbatim and
// suppresses its prompt; an empty argument counts as absent.
func (r *Resolver) Resolve(args []string) (Inputs, error) {
	var in Inputs

	if v, ok := argAt(args, 0); ok {
		in.UserID = v
	} else {
		v, err := r.ask("User identifier", "Usually an email address", r.defaults.UserID)
		if err != nil {
			return Inputs{}, err
		}
		in.UserID = v
	}

	if v, ok := argAt(args, 1); ok {
		in.UniqueID = v
	} else {
		// Generated fresh per invocation, never reused.
		token, err := NewToken()
		if err != nil {
			return Inputs{}, err
		}
		v, err := r.ask("Unique identifier", "Random token that keeps the file names distinct", token)
		if err != nil {
			return Inputs{}, err
		}
		in.UniqueID = v
	}

	if v, ok := argAt(args, 2); ok {
		in.Algorithm = v
	} else {
		v, err := r.ask("Key algorithm", strings.Join(algo.Names(), " or "), r.defaults.Algorithm)
		if err != nil {
			return Inputs{}, err
		}
		in.Algorithm = v
	}

	r.log.Debug("resolved user=%s unique=%s algorithm=%s", in.UserID, in.UniqueID, in.Algorithm)
	return in, nil
}

// ask prompts once and substitutes the fallback for an empty answer.
func (r *Resolver) ask(title, description, fallback string) (string, error) {
	entered, err := r.prompter.Prompt(title, description, fallback)
	if err != nil {
		return "", err
	}
	if entered == "" {
		r.log.Debug("%s defaulted to %q", title, fallback)
		return fallback, nil
	}
	return entered, nil
}

// argAt reports the positional argument at i, treating empty as absent.
func argAt(args []string, i int) (string, bool) {
	if i < len(args) && args[i] != "" {
		return args[i], true
	}
	return "", false
}
