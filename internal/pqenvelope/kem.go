package pqenvelope

import (
	"github.com/cloudflare/circl/kem"
)

// KeyPairMaterial is the raw byte form of a freshly generated KEM key pair,
// together with the parameter set it was generated under.
type KeyPairMaterial struct {
	ParameterSet ParameterSet
	PublicKey    []byte
	PrivateKey   []byte
}

// GenerateKeyPair generates a new ML-KEM key pair under parameterSet using a
// cryptographically secure RNG.
func GenerateKeyPair(parameterSet ParameterSet) (*KeyPairMaterial, error) {
	scheme, err := schemeFor(parameterSet)
	if err != nil {
		return nil, err
	}

	pk, sk, err := scheme.GenerateKeyPair()
	if err != nil {
		return nil, newCryptoError(CodeKeyGenerationFailed, "KEM key generation failed", err)
	}

	pkBytes, err := pk.MarshalBinary()
	if err != nil {
		return nil, newCryptoError(CodeKeyGenerationFailed, "failed to marshal public key", err)
	}
	skBytes, err := sk.MarshalBinary()
	if err != nil {
		return nil, newCryptoError(CodeKeyGenerationFailed, "failed to marshal private key", err)
	}

	return &KeyPairMaterial{
		ParameterSet: parameterSet,
		PublicKey:    pkBytes,
		PrivateKey:   skBytes,
	}, nil
}

// ExportPublic returns the public key in its standard portable encoding.
// It always round-trips through ImportPublic for the same parameter set.
func ExportPublic(pub kem.PublicKey) ([]byte, error) {
	b, err := pub.MarshalBinary()
	if err != nil {
		return nil, newCryptoError(CodeInvalidPublicKey, "failed to marshal public key", err)
	}
	return b, nil
}

// ImportPublic parses a public key under parameterSet. Fails with
// CodeInvalidPublicKey on structural or parameter mismatch.
func ImportPublic(parameterSet ParameterSet, raw []byte) (kem.PublicKey, error) {
	scheme, err := schemeFor(parameterSet)
	if err != nil {
		return nil, err
	}
	pk, err := scheme.UnmarshalBinaryPublicKey(raw)
	if err != nil {
		return nil, newCryptoError(CodeInvalidPublicKey, "malformed public key", err)
	}
	return pk, nil
}

// ImportPrivate parses a private key under parameterSet.
func ImportPrivate(parameterSet ParameterSet, raw []byte) (kem.PrivateKey, error) {
	scheme, err := schemeFor(parameterSet)
	if err != nil {
		return nil, err
	}
	sk, err := scheme.UnmarshalBinaryPrivateKey(raw)
	if err != nil {
		return nil, newCryptoError(CodeInvalidPrivateKey, "malformed private key", err)
	}
	return sk, nil
}

// Encapsulate performs KEM encapsulation against pub. Probabilistic: two
// calls against the same public key yield distinct ciphertexts and distinct
// shared secrets.
func Encapsulate(parameterSet ParameterSet, pub kem.PublicKey) (ciphertext, sharedSecret []byte, err error) {
	scheme, err := schemeFor(parameterSet)
	if err != nil {
		return nil, nil, err
	}
	ct, ss, err := scheme.Encapsulate(pub)
	if err != nil {
		return nil, nil, newCryptoError(CodeEncapsulationFailed, "KEM encapsulation failed", err)
	}
	return ct, ss, nil
}

// Decapsulate recovers the shared secret from ciphertext using priv.
// Deterministic given inputs; MUST yield the same shared secret as the
// corresponding Encapsulate call. Fails with CodeDecapsulationFailed on
// malformed input.
func Decapsulate(parameterSet ParameterSet, priv kem.PrivateKey, ciphertext []byte) ([]byte, error) {
	scheme, err := schemeFor(parameterSet)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) != scheme.CiphertextSize() {
		return nil, newCryptoError(CodeDecapsulationFailed, "ciphertext has wrong length", nil)
	}
	ss, err := scheme.Decapsulate(priv, ciphertext)
	if err != nil {
		return nil, newCryptoError(CodeDecapsulationFailed, "KEM decapsulation failed", err)
	}
	return ss, nil
}
