package pqenvelope

import (
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"
)

// DefaultInfo is the fixed HKDF expand-phase info string for all AEAD keys
// derived in this package.
const DefaultInfo = "AnchorPQ-v1-IntegrityVerification"

// AEADKeySize is the derived key length in bytes (256 bits).
const AEADKeySize = 32

// DeriveAEADKey derives a 32-byte AEAD key from sharedSecret via HKDF with
// SHA3-256. When salt is empty, the extract phase is skipped and
// sharedSecret is used directly as the pseudo-random key — this matches the
// "skip-extract" mode where the KEM shared secret is already
// high-entropy and uniformly distributed. info defaults to DefaultInfo when
// empty.
func DeriveAEADKey(sharedSecret, salt []byte, info string) ([]byte, error) {
	if info == "" {
		info = DefaultInfo
	}

	var reader io.Reader
	if len(salt) == 0 {
		reader = hkdf.Expand(sha3.New256, sharedSecret, []byte(info))
	} else {
		reader = hkdf.New(sha3.New256, sharedSecret, salt, []byte(info))
	}

	key := make([]byte, AEADKeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, newCryptoError(CodeKeyDerivationFailed, "HKDF expand failed", err)
	}
	return key, nil
}
