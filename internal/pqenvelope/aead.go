package pqenvelope

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"io"
)

// IVSize is the AES-GCM nonce length in bytes.
const IVSize = 12

// TagSize is the AES-GCM authentication tag length in bytes.
const TagSize = 16

// Seal encrypts plaintext under key with AES-256-GCM using a fresh random
// IV, and returns IV ‖ CIPHERTEXT ‖ TAG. No associated data is bound.
func Seal(key, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, newCryptoError(CodeEncryptionFailed, "failed to generate IV", err)
	}

	sealed := gcm.Seal(iv, iv, plaintext, nil)
	return sealed, nil
}

// Open decrypts sealed (IV ‖ CIPHERTEXT ‖ TAG) under key. Rejects inputs
// shorter than IVSize+TagSize with CodeInvalidCiphertext. A tag verification
// failure is reported as CodeAuthenticationFailed, distinguished from other
// internal failures (CodeDecryptionFailed).
func Open(key, sealed []byte) ([]byte, error) {
	if len(sealed) < IVSize+TagSize {
		return nil, newCryptoError(CodeInvalidCiphertext, "sealed payload shorter than IV+tag", nil)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	iv, ciphertext := sealed[:IVSize], sealed[IVSize:]
	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, newCryptoError(CodeAuthenticationFailed, "GCM tag verification failed", nil)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != AEADKeySize {
		return nil, newCryptoError(CodeDecryptionFailed, "AEAD key has wrong size", nil)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, newCryptoError(CodeDecryptionFailed, "failed to create AES cipher", err)
	}
	gcm, err := cipher.NewGCMWithTagSize(block, TagSize)
	if err != nil {
		return nil, newCryptoError(CodeDecryptionFailed, "failed to create GCM", err)
	}
	return gcm, nil
}
