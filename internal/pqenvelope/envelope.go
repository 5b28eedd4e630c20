package pqenvelope

import (
	"github.com/cloudflare/circl/kem"
)

// Envelope is the wire form of a sealed message: a KEM ciphertext and the
// AEAD-sealed payload it unlocks.
type Envelope struct {
	EncapsulatedKey []byte
	SealedPayload   []byte
}

// SealFor encapsulates a fresh shared secret to pub, derives an AEAD key
// from it, and seals plaintext. Each call uses independent randomness: two
// calls against the same pub and plaintext yield distinct EncapsulatedKey
// and distinct SealedPayload.
func SealFor(parameterSet ParameterSet, pub kem.PublicKey, plaintext []byte) (*Envelope, error) {
	ciphertext, sharedSecret, err := Encapsulate(parameterSet, pub)
	if err != nil {
		return nil, err
	}

	key, err := DeriveAEADKey(sharedSecret, nil, DefaultInfo)
	if err != nil {
		return nil, err
	}

	sealed, err := Seal(key, plaintext)
	if err != nil {
		return nil, err
	}

	return &Envelope{EncapsulatedKey: ciphertext, SealedPayload: sealed}, nil
}

// OpenWith decapsulates env.EncapsulatedKey with priv, derives the AEAD key,
// and opens env.SealedPayload.
func OpenWith(parameterSet ParameterSet, priv kem.PrivateKey, env *Envelope) ([]byte, error) {
	sharedSecret, err := Decapsulate(parameterSet, priv, env.EncapsulatedKey)
	if err != nil {
		return nil, err
	}

	key, err := DeriveAEADKey(sharedSecret, nil, DefaultInfo)
	if err != nil {
		return nil, err
	}

	return Open(key, env.SealedPayload)
}
