package pqenvelope

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKEMRoundTrip(t *testing.T) {
	for _, ps := range []ParameterSet{MLKEM512, MLKEM768, MLKEM1024} {
		t.Run(string(ps), func(t *testing.T) {
			material, err := GenerateKeyPair(ps)
			require.NoError(t, err)
			pub, err := ImportPublic(ps, material.PublicKey)
			require.NoError(t, err)
			priv, err := ImportPrivate(ps, material.PrivateKey)
			require.NoError(t, err)

			ciphertext, sharedSecret, err := Encapsulate(ps, pub)
			require.NoError(t, err)

			recovered, err := Decapsulate(ps, priv, ciphertext)
			require.NoError(t, err)

			assert.True(t, bytes.Equal(sharedSecret, recovered))
		})
	}
}

func TestEnvelopeRoundTripVariousSizes(t *testing.T) {
	material, err := GenerateKeyPair(MLKEM768)
	require.NoError(t, err)
	pub, err := ImportPublic(MLKEM768, material.PublicKey)
	require.NoError(t, err)
	priv, err := ImportPrivate(MLKEM768, material.PrivateKey)
	require.NoError(t, err)

	sizes := []int{0, 1, 64, 4096, 1 << 20}
	for _, size := range sizes {
		plaintext := bytes.Repeat([]byte{0xAB}, size)
		env, err := SealFor(MLKEM768, pub, plaintext)
		require.NoError(t, err)

		recovered, err := OpenWith(MLKEM768, priv, env)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(plaintext, recovered))
	}
}

func TestEnvelopeProbabilistic(t *testing.T) {
	material, err := GenerateKeyPair(MLKEM768)
	require.NoError(t, err)
	pub, err := ImportPublic(MLKEM768, material.PublicKey)
	require.NoError(t, err)

	plaintext := []byte("anchorpq integrity payload")
	envA, err := SealFor(MLKEM768, pub, plaintext)
	require.NoError(t, err)
	envB, err := SealFor(MLKEM768, pub, plaintext)
	require.NoError(t, err)

	assert.False(t, bytes.Equal(envA.EncapsulatedKey, envB.EncapsulatedKey))
	assert.False(t, bytes.Equal(envA.SealedPayload, envB.SealedPayload))
}

func TestTamperDetection(t *testing.T) {
	material, err := GenerateKeyPair(MLKEM768)
	require.NoError(t, err)
	pub, err := ImportPublic(MLKEM768, material.PublicKey)
	require.NoError(t, err)
	priv, err := ImportPrivate(MLKEM768, material.PrivateKey)
	require.NoError(t, err)

	env, err := SealFor(MLKEM768, pub, []byte("integrity payload"))
	require.NoError(t, err)

	tampered := make([]byte, len(env.SealedPayload))
	copy(tampered, env.SealedPayload)
	tampered[len(tampered)-1] ^= 0xFF
	env.SealedPayload = tampered

	_, err = OpenWith(MLKEM768, priv, env)
	require.Error(t, err)
	var cerr *CryptoError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, CodeAuthenticationFailed, cerr.Code)
}

func TestWrongKeyDetection(t *testing.T) {
	materialA, err := GenerateKeyPair(MLKEM768)
	require.NoError(t, err)
	pubA, err := ImportPublic(MLKEM768, materialA.PublicKey)
	require.NoError(t, err)

	materialB, err := GenerateKeyPair(MLKEM768)
	require.NoError(t, err)
	privB, err := ImportPrivate(MLKEM768, materialB.PrivateKey)
	require.NoError(t, err)

	env, err := SealFor(MLKEM768, pubA, []byte("integrity payload"))
	require.NoError(t, err)

	_, err = OpenWith(MLKEM768, privB, env)
	require.Error(t, err)
}

func TestEnvelopeWireFramingRoundTrip(t *testing.T) {
	env := &Envelope{EncapsulatedKey: []byte("kem-bytes"), SealedPayload: []byte("sealed-bytes")}
	raw := env.ToBytes()

	parsed, err := EnvelopeFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, env.EncapsulatedKey, parsed.EncapsulatedKey)
	assert.Equal(t, env.SealedPayload, parsed.SealedPayload)
}

func TestEnvelopeFromBytesRejectsOverrun(t *testing.T) {
	raw := []byte{0x00, 0x00, 0xFF, 0xFF} // declares 65535 bytes of KEM data with none present
	_, err := EnvelopeFromBytes(raw)
	require.Error(t, err)
	var cerr *CryptoError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, CodeInvalidEnvelope, cerr.Code)
}

func TestEnvelopeTransportRoundTrip(t *testing.T) {
	env := &Envelope{EncapsulatedKey: []byte("kem-bytes"), SealedPayload: []byte("sealed-bytes")}
	transport := env.ToTransport(1234567890, []byte("nonce-bytes"))

	parsed, err := EnvelopeFromTransport(transport)
	require.NoError(t, err)
	assert.Equal(t, env.EncapsulatedKey, parsed.EncapsulatedKey)
	assert.Equal(t, env.SealedPayload, parsed.SealedPayload)
}
