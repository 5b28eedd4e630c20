package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashBytesSupportedAlgorithms(t *testing.T) {
	algs := []Algorithm{SHA256, SHA384, SHA512, SHA3_256, SHA3_512}
	for _, alg := range algs {
		h, err := HashBytes([]byte("anchorpq"), alg)
		require.NoErrorf(t, err, "algorithm %s", alg)
		assert.NotEmpty(t, h)
	}
}

func TestHashBytesUnsupportedAlgorithm(t *testing.T) {
	_, err := HashBytes([]byte("x"), Algorithm("SHA1"))
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestHashBytesDeterministic(t *testing.T) {
	a, err := HashBytes([]byte("payload"), SHA3_256)
	require.NoError(t, err)
	b, err := HashBytes([]byte("payload"), SHA3_256)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestConstantTimeEqualsLengthMismatch(t *testing.T) {
	assert.False(t, ConstantTimeEquals([]byte{1, 2, 3}, []byte{1, 2}))
}

func TestConstantTimeEqualsDetectsDifference(t *testing.T) {
	assert.False(t, ConstantTimeEquals([]byte{1, 2, 3}, []byte{1, 2, 4}))
	assert.True(t, ConstantTimeEquals([]byte{1, 2, 3}, []byte{1, 2, 3}))
}

func TestHashConcatNoSeparator(t *testing.T) {
	left, err := HashBytes([]byte("left"), SHA256)
	require.NoError(t, err)
	right, err := HashBytes([]byte("right"), SHA256)
	require.NoError(t, err)

	combined, err := HashConcat(left, right, SHA256)
	require.NoError(t, err)

	manual := make([]byte, 0, len(left)+len(right))
	manual = append(manual, left...)
	manual = append(manual, right...)
	want, err := HashBytes(manual, SHA256)
	require.NoError(t, err)

	assert.True(t, combined.Equal(want))
}
