package resolve

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/SixArm/ssh-keygen-pro/internal/errors"
)

// TokenHexLength is the length of a generated unique identifier.
const TokenHexLength = 32

const tokenBytes = 16

// NewToken draws 16 bytes from the OS random source and renders them as
// 32 lowercase hexadecimal characters. Every call yields a fresh value,
// which is what keeps concurrent invocations from colliding on file names.
func NewToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrInput,
			"Couldn't read from the system random source",
			"This shouldn't happen - please report this bug")
	}
	return hex.EncodeToString(buf), nil
}
