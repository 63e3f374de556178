package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestEncode(t *testing.T) {
	encoded, err := Encode("admin123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "{bcrypt}$2a$"))

	ok, err := Matches("admin123", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Matches("wrong", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatches_Unprefixed(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.MinCost)
	require.NoError(t, err)

	ok, err := Matches("user123", string(hash))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatches_Noop(t *testing.T) {
	ok, err := Matches("plain", "{noop}plain")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Matches("other", "{noop}plain")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatches_UnknownScheme(t *testing.T) {
	_, err := Matches("x", "{sha256}abc")
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestMatches_CorruptHash(t *testing.T) {
	ok, err := Matches("x", "{bcrypt}not-a-hash")
	assert.False(t, ok)
	assert.Error(t, err)
}
