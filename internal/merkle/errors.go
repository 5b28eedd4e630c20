package merkle

import "errors"

// Sentinel errors for the hash and Merkle tree engine. Callers should use
// errors.Is to test for a specific failure rather than comparing strings.
var (
	// ErrUnsupportedAlgorithm is returned when a digest algorithm name is
	// not one of the supported families.
	ErrUnsupportedAlgorithm = errors.New("merkle: unsupported digest algorithm")

	// ErrEmptyInput is returned by MerkleTree constructors given a zero-length
	// leaf sequence.
	ErrEmptyInput = errors.New("merkle: leaf sequence is empty")

	// ErrIndexOutOfRange is returned by Proof when the requested leaf index
	// does not exist in the tree.
	ErrIndexOutOfRange = errors.New("merkle: leaf index out of range")
)
