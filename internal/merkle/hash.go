/*
Package merkle implements the deterministic hash and Merkle tree engine that
binds a build artifact's contents to a single root fingerprint.

ALGORITHMS SUPPORTED:
  - SHA-256, SHA-384, SHA-512 (stdlib crypto/sha256, crypto/sha512)
  - SHA3-256, SHA3-512 (golang.org/x/crypto/sha3)

The combining rule for internal nodes is a single digest over the
concatenation of the two children: parent = H(left || right). No separator,
no length prefix, no domain tag — this matches the wire-level determinism
spec.md requires so two independent implementations of this package produce
byte-identical roots for the same leaf sequence.
*/
package merkle

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Algorithm identifies a supported digest family.
type Algorithm string

const (
	SHA256   Algorithm = "SHA-256"
	SHA384   Algorithm = "SHA-384"
	SHA512   Algorithm = "SHA-512"
	SHA3_256 Algorithm = "SHA3-256"
	SHA3_512 Algorithm = "SHA3-512"
)

// Hash is an opaque, fixed-width digest. Equality is byte-for-byte.
type Hash []byte

// Hex renders the hash as lowercase hexadecimal.
func (h Hash) Hex() string {
	return hex.EncodeToString(h)
}

// Equal reports whether two hashes are byte-identical using a constant-time
// comparison (see ConstantTimeEquals).
func (h Hash) Equal(other Hash) bool {
	return ConstantTimeEquals(h, other)
}

// HashBytes computes the digest of data under the given algorithm.
func HashBytes(data []byte, alg Algorithm) (Hash, error) {
	switch alg {
	case SHA256:
		sum := sha256.Sum256(data)
		return Hash(sum[:]), nil
	case SHA384:
		sum := sha512.Sum384(data)
		return Hash(sum[:]), nil
	case SHA512:
		sum := sha512.Sum512(data)
		return Hash(sum[:]), nil
	case SHA3_256:
		sum := sha3.Sum256(data)
		return Hash(sum[:]), nil
	case SHA3_512:
		sum := sha3.Sum512(data)
		return Hash(sum[:]), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
}

// HashConcat computes a single digest over left||right with no separator.
// This is the Merkle combining rule used at every internal node.
func HashConcat(left, right Hash, alg Algorithm) (Hash, error) {
	buf := make([]byte, 0, len(left)+len(right))
	buf = append(buf, left...)
	buf = append(buf, right...)
	return HashBytes(buf, alg)
}

// ConstantTimeEquals reports whether a and b are byte-identical without
// leaking the position of the first differing byte through timing. Length
// mismatch short-circuits immediately: the fingerprint length is a public
// constant, so this does not leak secret information.
func ConstantTimeEquals(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
