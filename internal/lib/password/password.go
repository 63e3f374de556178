// Package password encodes and verifies stored passwords.
//
// Encoded values carry their scheme as a prefix, e.g.
//
//	{bcrypt}$2a$10$N9qo8uLOickgx2ZMRZoMye...
//	{noop}plain-text
//
// A value without a prefix is read as bcrypt.
package password

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemeBcrypt = "bcrypt"
	SchemeNoop   = "noop"

	// Cost is the bcrypt work factor for new hashes.
	Cost = bcrypt.DefaultCost
)

var ErrUnknownScheme = errors.New("unknown password encoding scheme")

// dummyHash is compared against when a user does not exist, so the
// response time does not reveal which usernames are valid.
var dummyHash = mustHash("not-a-real-password")

func mustHash(raw string) []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(raw), Cost)
	if err != nil {
		panic(err)
	}
	return h
}

// Encode hashes raw with bcrypt and returns it with the {bcrypt} prefix.
func Encode(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return "{" + SchemeBcrypt + "}" + string(hash), nil
}

// Matches reports whether raw corresponds to the encoded value.
func Matches(raw, encoded string) (bool, error) {
	scheme, value := split(encoded)

	switch scheme {
	case SchemeBcrypt:
		err := bcrypt.CompareHashAndPassword([]byte(value), []byte(raw))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil

	case SchemeNoop:
		return subtle.ConstantTimeCompare([]byte(raw), []byte(value)) == 1, nil

	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownScheme, scheme)
	}
}

// BurnCompare spends one bcrypt comparison and always fails.
func BurnCompare(raw string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(raw))
}

func split(encoded string) (scheme, value string) {
	if strings.HasPrefix(encoded, "{") {
		if end := strings.Index(encoded, "}"); end > 0 {
			return encoded[1:end], encoded[end+1:]
		}
	}
	return SchemeBcrypt, encoded
}
