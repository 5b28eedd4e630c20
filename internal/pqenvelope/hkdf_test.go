package pqenvelope

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAEADKeyDeterministic(t *testing.T) {
	sharedSecret := make([]byte, 32)
	_, err := rand.Read(sharedSecret)
	require.NoError(t, err)

	keyA, err := DeriveAEADKey(sharedSecret, nil, "")
	require.NoError(t, err)
	keyB, err := DeriveAEADKey(sharedSecret, nil, "")
	require.NoError(t, err)

	assert.True(t, bytes.Equal(keyA, keyB))
	assert.Len(t, keyA, AEADKeySize)
}

func TestDeriveAEADKeyDiffersBySecret(t *testing.T) {
	secretA := bytes.Repeat([]byte{0x01}, 32)
	secretB := bytes.Repeat([]byte{0x02}, 32)

	keyA, err := DeriveAEADKey(secretA, nil, "")
	require.NoError(t, err)
	keyB, err := DeriveAEADKey(secretB, nil, "")
	require.NoError(t, err)

	assert.False(t, bytes.Equal(keyA, keyB))
}

func TestDeriveAEADKeyWithSalt(t *testing.T) {
	secret := bytes.Repeat([]byte{0x03}, 32)
	salt := []byte("a-salt-value")

	withSalt, err := DeriveAEADKey(secret, salt, "")
	require.NoError(t, err)
	withoutSalt, err := DeriveAEADKey(secret, nil, "")
	require.NoError(t, err)

	assert.False(t, bytes.Equal(withSalt, withoutSalt))
}
