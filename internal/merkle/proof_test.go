package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProofRoundTripEvenLeafCount(t *testing.T) {
	leaves := leafHashes(t, []string{"a", "b", "c", "d", "e", "f"}, SHA256)
	tree, err := New(leaves, SHA256)
	require.NoError(t, err)

	for i := range leaves {
		proof, err := tree.Proof(i)
		require.NoError(t, err)
		ok, err := VerifyProof(leaves[i], proof, tree.Root(), SHA256)
		require.NoError(t, err)
		assert.Truef(t, ok, "leaf %d failed to verify", i)
	}
}

func TestProofRoundTripOddLeafCount(t *testing.T) {
	leaves := leafHashes(t, []string{"a", "b", "c", "d", "e"}, SHA256)
	tree, err := New(leaves, SHA256)
	require.NoError(t, err)

	for i := range leaves {
		proof, err := tree.Proof(i)
		require.NoError(t, err)
		ok, err := VerifyProof(leaves[i], proof, tree.Root(), SHA256)
		require.NoError(t, err)
		assert.Truef(t, ok, "leaf %d failed to verify", i)
	}
}

func TestProofRejectsOutOfRangeIndex(t *testing.T) {
	leaves := leafHashes(t, []string{"a", "b", "c"}, SHA256)
	tree, err := New(leaves, SHA256)
	require.NoError(t, err)

	_, err = tree.Proof(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = tree.Proof(len(leaves))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestProofRejectsWrongLeaf(t *testing.T) {
	leaves := leafHashes(t, []string{"a", "b", "c", "d"}, SHA256)
	tree, err := New(leaves, SHA256)
	require.NoError(t, err)

	proof, err := tree.Proof(0)
	require.NoError(t, err)

	otherLeaf, err := HashBytes([]byte("not-a-real-leaf"), SHA256)
	require.NoError(t, err)

	ok, err := VerifyProof(otherLeaf, proof, tree.Root(), SHA256)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProofRejectsTamperedRoot(t *testing.T) {
	leaves := leafHashes(t, []string{"a", "b", "c", "d"}, SHA256)
	tree, err := New(leaves, SHA256)
	require.NoError(t, err)

	proof, err := tree.Proof(2)
	require.NoError(t, err)

	tamperedRoot := make(Hash, len(tree.Root()))
	copy(tamperedRoot, tree.Root())
	tamperedRoot[0] ^= 0xFF

	ok, err := VerifyProof(leaves[2], proof, tamperedRoot, SHA256)
	require.NoError(t, err)
	assert.False(t, ok)
}
