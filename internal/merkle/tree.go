package merkle

// MerkleTree is an immutable value built from an ordered, non-empty sequence
// of leaf hashes. It retains every level so proofs can be extracted after
// construction.
//
// Odd-node policy: when a level has an odd count of nodes, the final node is
// paired with itself to form its parent. The leaf slice passed to New is
// never mutated or appended to — the duplication only happens transiently
// while building the next level up.
type MerkleTree struct {
	algorithm Algorithm
	levels    [][]Hash // levels[0] is the leaf level, levels[len-1] is the root
}

// New constructs and fully computes a Merkle tree over leafHashes under alg.
// Fails with ErrEmptyInput if leafHashes is empty.
func New(leafHashes []Hash, alg Algorithm) (*MerkleTree, error) {
	if len(leafHashes) == 0 {
		return nil, ErrEmptyInput
	}
	if _, err := HashBytes(nil, alg); err != nil {
		return nil, err
	}

	leaves := make([]Hash, len(leafHashes))
	copy(leaves, leafHashes)

	levels := [][]Hash{leaves}
	current := leaves
	for len(current) > 1 {
		next := make([]Hash, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			left := current[i]
			right := left
			if i+1 < len(current) {
				right = current[i+1]
			}
			parent, err := HashConcat(left, right, alg)
			if err != nil {
				return nil, err
			}
			next = append(next, parent)
		}
		levels = append(levels, next)
		current = next
	}

	return &MerkleTree{algorithm: alg, levels: levels}, nil
}

// Root returns the top hash of the tree.
func (t *MerkleTree) Root() Hash {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// RootHex returns the root as lowercase hexadecimal.
func (t *MerkleTree) RootHex() string {
	return t.Root().Hex()
}

// LeafCount returns the number of leaves the tree was built from.
func (t *MerkleTree) LeafCount() int {
	return len(t.levels[0])
}

// Algorithm returns the digest family the tree was built under.
func (t *MerkleTree) Algorithm() Algorithm {
	return t.algorithm
}
